package handlers

import (
	"errors"

	"github.com/GoAbroadHQ/portal_service/internal/dto"
	"github.com/GoAbroadHQ/portal_service/internal/helper/utils"
	"github.com/GoAbroadHQ/portal_service/internal/repository"
	"github.com/GoAbroadHQ/portal_service/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	userSvc services.UserService
	appSvc  services.ApplicationService
}

func NewAdminHandler(userSvc services.UserService, appSvc services.ApplicationService) *AdminHandler {
	return &AdminHandler{userSvc: userSvc, appSvc: appSvc}
}

func (h *AdminHandler) ListApplications(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 100)
	offset := ctx.QueryInt("offset", 0)

	apps, err := h.appSvc.ListAll(limit, offset)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return ctx.JSON(apps)
}

func (h *AdminHandler) UpdateApplicationStatus(ctx *fiber.Ctx) error {
	appID, err := ctx.ParamsInt("id")
	if err != nil || appID <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid application id")
	}

	var requestBody dto.StatusUpdateRequest
	if err := ctx.BodyParser(&requestBody); err != nil || requestBody.Status == "" {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "status is required")
	}

	app, err := h.appSvc.UpdateStatus(uint(appID), requestBody)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return utils.ResponseError(ctx, fiber.StatusNotFound, "application not found")
		}
		if errors.Is(err, repository.ErrConflict) {
			return utils.ResponseError(ctx, fiber.StatusConflict, "application was updated by someone else, retry")
		}
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	return ctx.JSON(app)
}

func (h *AdminHandler) Stats(ctx *fiber.Ctx) error {
	stats, err := h.appSvc.Stats()
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return ctx.JSON(stats)
}

func (h *AdminHandler) ListUsers(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 100)
	offset := ctx.QueryInt("offset", 0)

	users, err := h.userSvc.ListUsers(limit, offset)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return ctx.JSON(users)
}

// DeleteUser cascades to the user's applications and their stored blobs.
func (h *AdminHandler) DeleteUser(ctx *fiber.Ctx) error {
	adminID := ctx.Locals("userID").(uint)

	userID, err := ctx.ParamsInt("id")
	if err != nil || userID <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid user id")
	}

	if err := h.userSvc.DeleteUser(ctx.UserContext(), uint(userID), adminID); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	return ctx.JSON(fiber.Map{"message": "user deleted successfully"})
}

// DeleteApplication lets an admin remove any application.
func (h *AdminHandler) DeleteApplication(ctx *fiber.Ctx) error {
	appID, err := ctx.ParamsInt("id")
	if err != nil || appID <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid application id")
	}

	if err := h.appSvc.Delete(ctx.UserContext(), uint(appID), 0, true); err != nil {
		return utils.ResponseError(ctx, fiber.StatusNotFound, "application not found")
	}
	return ctx.JSON(fiber.Map{"message": "application deleted successfully"})
}
