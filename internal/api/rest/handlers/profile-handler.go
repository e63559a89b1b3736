package handlers

import (
	"github.com/GoAbroadHQ/portal_service/internal/domain"
	"github.com/GoAbroadHQ/portal_service/internal/dto"
	"github.com/GoAbroadHQ/portal_service/internal/helper/utils"
	"github.com/GoAbroadHQ/portal_service/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ProfileHandler struct {
	svc services.UserService
}

func NewProfileHandler(svc services.UserService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

func toUserResponse(user *domain.User) dto.UserResponse {
	return dto.UserResponse{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		Phone:   user.Phone,
		IsAdmin: user.IsAdmin,
		Profile: user.Profile,
	}
}

func (h *ProfileHandler) GetProfile(ctx *fiber.Ctx) error {
	userID := ctx.Locals("userID").(uint)

	user, err := h.svc.GetProfile(userID)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusNotFound, "user not found")
	}

	return ctx.JSON(toUserResponse(user))
}

// UpdateProfile backs both PUT /api/profile and PUT /api/profile/kyc; the
// completion flag is recomputed on every call.
func (h *ProfileHandler) UpdateProfile(ctx *fiber.Ctx) error {
	userID := ctx.Locals("userID").(uint)

	var requestBody dto.UpdateProfileRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	user, err := h.svc.UpdateProfile(userID, requestBody)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	return ctx.JSON(fiber.Map{
		"message": "profile updated successfully",
		"user":    toUserResponse(user),
	})
}

func (h *ProfileHandler) UploadDocument(ctx *fiber.Ctx) error {
	userID := ctx.Locals("userID").(uint)

	docType := ctx.FormValue("document_type")
	if docType == "" {
		docType = ctx.FormValue("type")
	}
	if docType == "" {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "document type is required")
	}

	fh, err := ctx.FormFile("document")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "no file uploaded")
	}

	file, err := readFormFile(fh, docType, maxUploadSize)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	record, err := h.svc.UploadProfileDocument(ctx.UserContext(), userID, docType, *file)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	return ctx.JSON(fiber.Map{
		"message":  "document uploaded successfully",
		"document": record,
	})
}

func (h *ProfileHandler) Status(ctx *fiber.Ctx) error {
	userID := ctx.Locals("userID").(uint)

	status, err := h.svc.ProfileStatus(userID)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusNotFound, "user not found")
	}
	return ctx.JSON(status)
}

func (h *ProfileHandler) PendingDocuments(ctx *fiber.Ctx) error {
	userID := ctx.Locals("userID").(uint)

	pending, err := h.svc.PendingDocuments(userID)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusNotFound, "user not found")
	}
	return ctx.JSON(pending)
}
