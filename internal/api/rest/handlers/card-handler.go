package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/kanbanlab/board_service/internal/domain"
	"github.com/kanbanlab/board_service/internal/dto"
	"github.com/kanbanlab/board_service/internal/helper/utils"
	"github.com/kanbanlab/board_service/internal/services"
)

type CardHandler struct {
	svc services.CardService
}

func NewCardHandler(svc services.CardService) *CardHandler {
	return &CardHandler{svc: svc}
}

func (h *CardHandler) SetupRoutes(app *fiber.App) {
	cards := app.Group("/cards")

	cards.Post("/", h.Create)
	cards.Get("/", h.List)
	cards.Patch("/:cardID", h.Update)
	cards.Delete("/:cardID", h.Delete)
	cards.Get("/:cardID/history", h.History)
}

func (h *CardHandler) Create(ctx *fiber.Ctx) error {
	var requestBody dto.CardCreate
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}
	if strings.TrimSpace(requestBody.Title) == "" || requestBody.ColumnID == 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "title and column_id are required")
	}

	card, err := h.svc.Create(requestBody, actorID(ctx))
	if err != nil {
		if domain.IsNotFound(err) {
			return utils.ResponseError(ctx, fiber.StatusNotFound, err.Error())
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, card)
}

func (h *CardHandler) List(ctx *fiber.Ctx) error {
	cards, err := h.svc.List()
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, cards)
}

func (h *CardHandler) Update(ctx *fiber.Ctx) error {
	cardID, err := ctx.ParamsInt("cardID")
	if err != nil || cardID <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid card id")
	}

	var requestBody dto.CardUpdate
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	card, err := h.svc.Update(uint(cardID), requestBody, actorID(ctx))
	if err != nil {
		if domain.IsNotFound(err) {
			return utils.ResponseError(ctx, fiber.StatusNotFound, err.Error())
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, card)
}

func (h *CardHandler) Delete(ctx *fiber.Ctx) error {
	cardID, err := ctx.ParamsInt("cardID")
	if err != nil || cardID <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid card id")
	}

	if err := h.svc.Delete(uint(cardID), actorID(ctx)); err != nil {
		if domain.IsNotFound(err) {
			return utils.ResponseError(ctx, fiber.StatusNotFound, err.Error())
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (h *CardHandler) History(ctx *fiber.Ctx) error {
	cardID, err := ctx.ParamsInt("cardID")
	if err != nil || cardID <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid card id")
	}

	entries, err := h.svc.History(uint(cardID))
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, entries)
}

// actorID reads the caller-asserted X-User-ID header. It is trusted input;
// a malformed value counts as absent.
func actorID(ctx *fiber.Ctx) *uint {
	v := strings.TrimSpace(ctx.Get("X-User-ID"))
	if v == "" {
		return nil
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return nil
	}
	id := uint(n)
	return &id
}
