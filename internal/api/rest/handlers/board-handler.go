package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/kanbanlab/board_service/internal/domain"
	"github.com/kanbanlab/board_service/internal/dto"
	"github.com/kanbanlab/board_service/internal/helper/utils"
	"github.com/kanbanlab/board_service/internal/services"
)

type BoardHandler struct {
	svc       services.BoardService
	columnSvc services.ColumnService
}

func NewBoardHandler(svc services.BoardService, columnSvc services.ColumnService) *BoardHandler {
	return &BoardHandler{svc: svc, columnSvc: columnSvc}
}

func (h *BoardHandler) SetupRoutes(app *fiber.App) {
	boards := app.Group("/boards")

	boards.Post("/", h.Create)
	boards.Get("/", h.List)
	boards.Get("/:boardID", h.Get)
	boards.Patch("/:boardID", h.Update)
	boards.Get("/:boardID/columns", h.ListColumns)
}

func (h *BoardHandler) Create(ctx *fiber.Ctx) error {
	var requestBody dto.BoardCreate
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}
	if strings.TrimSpace(requestBody.Name) == "" {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "name is required")
	}

	board, err := h.svc.Create(requestBody)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, board)
}

func (h *BoardHandler) List(ctx *fiber.Ctx) error {
	boards, err := h.svc.List()
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, boards)
}

func (h *BoardHandler) Get(ctx *fiber.Ctx) error {
	boardID, err := ctx.ParamsInt("boardID")
	if err != nil || boardID <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid board id")
	}

	board, err := h.svc.Get(uint(boardID))
	if err != nil {
		if domain.IsNotFound(err) {
			return utils.ResponseError(ctx, fiber.StatusNotFound, err.Error())
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, board)
}

func (h *BoardHandler) Update(ctx *fiber.Ctx) error {
	boardID, err := ctx.ParamsInt("boardID")
	if err != nil || boardID <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid board id")
	}

	var requestBody dto.BoardUpdate
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	board, err := h.svc.Update(uint(boardID), requestBody)
	if err != nil {
		if domain.IsNotFound(err) {
			return utils.ResponseError(ctx, fiber.StatusNotFound, err.Error())
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, board)
}

func (h *BoardHandler) ListColumns(ctx *fiber.Ctx) error {
	boardID, err := ctx.ParamsInt("boardID")
	if err != nil || boardID <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid board id")
	}

	columns, err := h.columnSvc.ListByBoard(uint(boardID))
	if err != nil {
		if domain.IsNotFound(err) {
			return utils.ResponseError(ctx, fiber.StatusNotFound, err.Error())
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, columns)
}
