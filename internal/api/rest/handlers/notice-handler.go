package handlers

import (
	"github.com/GoAbroadHQ/portal_service/internal/dto"
	"github.com/GoAbroadHQ/portal_service/internal/helper/utils"
	"github.com/GoAbroadHQ/portal_service/internal/services"
	"github.com/gofiber/fiber/v2"
)

const maxNoticeImageSize = 5 * 1024 * 1024

type NoticeHandler struct {
	svc services.ContentService
}

func NewNoticeHandler(svc services.ContentService) *NoticeHandler {
	return &NoticeHandler{svc: svc}
}

func (h *NoticeHandler) ListActive(ctx *fiber.Ctx) error {
	notices, err := h.svc.ListActiveNotices()
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return ctx.JSON(notices)
}

func (h *NoticeHandler) ListAll(ctx *fiber.Ctx) error {
	notices, err := h.svc.ListAllNotices()
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return ctx.JSON(notices)
}

func (h *NoticeHandler) noticeImage(ctx *fiber.Ctx) (*dto.FileInput, error) {
	fh, err := ctx.FormFile("image")
	if err != nil {
		// image is optional
		return nil, nil
	}
	return readFormFile(fh, "image", maxNoticeImageSize)
}

func (h *NoticeHandler) Create(ctx *fiber.Ctx) error {
	creatorID := ctx.Locals("userID").(uint)

	input := dto.NoticeUpsertRequest{
		Title:   ctx.FormValue("title"),
		Content: ctx.FormValue("content"),
	}

	image, err := h.noticeImage(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	notice, err := h.svc.CreateNotice(ctx.UserContext(), creatorID, input, image)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	return ctx.Status(fiber.StatusCreated).JSON(notice)
}

func (h *NoticeHandler) Update(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid notice id")
	}

	input := dto.NoticeUpsertRequest{
		Title:   ctx.FormValue("title"),
		Content: ctx.FormValue("content"),
	}

	image, err := h.noticeImage(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	notice, err := h.svc.UpdateNotice(ctx.UserContext(), uint(id), input, image)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusNotFound, err.Error())
	}
	return ctx.JSON(notice)
}

func (h *NoticeHandler) Delete(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid notice id")
	}

	if err := h.svc.DeleteNotice(ctx.UserContext(), uint(id)); err != nil {
		return utils.ResponseError(ctx, fiber.StatusNotFound, "notice not found")
	}
	return ctx.JSON(fiber.Map{"message": "notice deleted successfully"})
}
