package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/kanbanlab/board_service/internal/api/rest/middleware"
	"github.com/kanbanlab/board_service/internal/domain"
	"github.com/kanbanlab/board_service/internal/dto"
	"github.com/kanbanlab/board_service/internal/helper"
	"github.com/kanbanlab/board_service/internal/helper/utils"
	"github.com/kanbanlab/board_service/internal/services"
)

type UserHandler struct {
	svc  services.UserService
	auth helper.Auth
}

func NewUserHandler(svc services.UserService, auth helper.Auth) *UserHandler {
	return &UserHandler{svc: svc, auth: auth}
}

func (h *UserHandler) SetupRoutes(app *fiber.App) {
	app.Post("/login", h.Login)
	app.Get("/me", middleware.AuthMiddleware(h.auth), h.Me)

	users := app.Group("/users")

	users.Post("/", h.Register)
	users.Get("/", h.List)
	users.Patch("/:userID", h.Update)
	users.Post("/:userID/change_password", h.ChangePassword)
	users.Post("/:userID/reset_password", h.ResetPassword)
}

func (h *UserHandler) Register(ctx *fiber.Ctx) error {
	var requestBody dto.UserCreate
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}
	if strings.TrimSpace(requestBody.Name) == "" || requestBody.Password == "" {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "name and password are required")
	}

	user, err := h.svc.Register(requestBody)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, user)
}

func (h *UserHandler) List(ctx *fiber.Ctx) error {
	users, err := h.svc.List()
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, users)
}

func (h *UserHandler) Login(ctx *fiber.Ctx) error {
	var requestBody dto.LoginRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "name and password are required")
	}

	user, token, err := h.svc.Login(requestBody.Name, requestBody.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return utils.ResponseError(ctx, fiber.StatusUnauthorized, "Invalid credentials")
		}
		if errors.Is(err, domain.ErrAccountInactive) {
			return utils.ResponseError(ctx, fiber.StatusForbidden, err.Error())
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{
		"user":  user,
		"token": token,
	})
}

func (h *UserHandler) Me(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
	}

	user, err := h.svc.Get(uint(claims.UserID))
	if err != nil {
		if domain.IsNotFound(err) {
			return utils.ResponseError(ctx, fiber.StatusNotFound, err.Error())
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, user)
}

func (h *UserHandler) Update(ctx *fiber.Ctx) error {
	userID, err := ctx.ParamsInt("userID")
	if err != nil || userID <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid user id")
	}

	var requestBody dto.UserUpdate
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	user, err := h.svc.Update(uint(userID), requestBody)
	if err != nil {
		if domain.IsNotFound(err) {
			return utils.ResponseError(ctx, fiber.StatusNotFound, err.Error())
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, user)
}

func (h *UserHandler) ChangePassword(ctx *fiber.Ctx) error {
	return h.setPassword(ctx, false)
}

func (h *UserHandler) ResetPassword(ctx *fiber.Ctx) error {
	return h.setPassword(ctx, true)
}

// No server-side admin check here; the reference behavior leaves reset
// authorization to the client. See DESIGN.md.
func (h *UserHandler) setPassword(ctx *fiber.Ctx, adminReset bool) error {
	userID, err := ctx.ParamsInt("userID")
	if err != nil || userID <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid user id")
	}

	var requestBody dto.PasswordChange
	if err := ctx.BodyParser(&requestBody); err != nil || requestBody.NewPassword == "" {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "new_password is required")
	}

	var user *domain.User
	if adminReset {
		user, err = h.svc.ResetPassword(uint(userID), requestBody.NewPassword)
	} else {
		user, err = h.svc.ChangePassword(uint(userID), requestBody.NewPassword)
	}
	if err != nil {
		if domain.IsNotFound(err) {
			return utils.ResponseError(ctx, fiber.StatusNotFound, err.Error())
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, user)
}
