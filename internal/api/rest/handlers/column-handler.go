package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/kanbanlab/board_service/internal/domain"
	"github.com/kanbanlab/board_service/internal/dto"
	"github.com/kanbanlab/board_service/internal/helper/utils"
	"github.com/kanbanlab/board_service/internal/services"
)

type ColumnHandler struct {
	svc     services.ColumnService
	cardSvc services.CardService
}

func NewColumnHandler(svc services.ColumnService, cardSvc services.CardService) *ColumnHandler {
	return &ColumnHandler{svc: svc, cardSvc: cardSvc}
}

func (h *ColumnHandler) SetupRoutes(app *fiber.App) {
	columns := app.Group("/columns")

	columns.Post("/", h.Create)
	columns.Get("/", h.List)
	columns.Patch("/:columnID", h.Update)
	columns.Delete("/:columnID", h.Delete)
	columns.Get("/:columnID/cards", h.ListCards)
}

func (h *ColumnHandler) Create(ctx *fiber.Ctx) error {
	var requestBody dto.ColumnCreate
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}
	if strings.TrimSpace(requestBody.Title) == "" || requestBody.BoardID == 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "title and board_id are required")
	}

	column, err := h.svc.Create(requestBody)
	if err != nil {
		if domain.IsNotFound(err) {
			return utils.ResponseError(ctx, fiber.StatusNotFound, err.Error())
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, column)
}

func (h *ColumnHandler) List(ctx *fiber.Ctx) error {
	columns, err := h.svc.ListAll()
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, columns)
}

func (h *ColumnHandler) Update(ctx *fiber.Ctx) error {
	columnID, err := ctx.ParamsInt("columnID")
	if err != nil || columnID <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid column id")
	}

	var requestBody dto.ColumnUpdate
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	column, err := h.svc.Update(uint(columnID), requestBody)
	if err != nil {
		if domain.IsNotFound(err) {
			return utils.ResponseError(ctx, fiber.StatusNotFound, err.Error())
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, column)
}

func (h *ColumnHandler) Delete(ctx *fiber.Ctx) error {
	columnID, err := ctx.ParamsInt("columnID")
	if err != nil || columnID <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid column id")
	}

	if err := h.svc.Delete(uint(columnID)); err != nil {
		if domain.IsNotFound(err) {
			return utils.ResponseError(ctx, fiber.StatusNotFound, err.Error())
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (h *ColumnHandler) ListCards(ctx *fiber.Ctx) error {
	columnID, err := ctx.ParamsInt("columnID")
	if err != nil || columnID <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid column id")
	}

	cards, err := h.cardSvc.ListByColumn(uint(columnID))
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, cards)
}
