package handlers

import (
	"github.com/GoAbroadHQ/portal_service/internal/dto"
	"github.com/GoAbroadHQ/portal_service/internal/helper/utils"
	"github.com/GoAbroadHQ/portal_service/internal/services"
	"github.com/gofiber/fiber/v2"
)

type BlogHandler struct {
	svc services.ContentService
}

func NewBlogHandler(svc services.ContentService) *BlogHandler {
	return &BlogHandler{svc: svc}
}

func (h *BlogHandler) ListPublished(ctx *fiber.Ctx) error {
	result, err := h.svc.ListPublishedBlogs(
		ctx.Query("category"),
		ctx.QueryInt("page", 1),
		ctx.QueryInt("limit", 6),
	)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	return ctx.JSON(result)
}

func (h *BlogHandler) Get(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid blog id")
	}

	blog, err := h.svc.GetPublishedBlog(uint(id))
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusNotFound, "blog not found")
	}
	return ctx.JSON(blog)
}

func (h *BlogHandler) Create(ctx *fiber.Ctx) error {
	authorID := ctx.Locals("userID").(uint)

	var requestBody dto.BlogUpsertRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	blog, err := h.svc.CreateBlog(authorID, requestBody)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	return ctx.Status(fiber.StatusCreated).JSON(blog)
}

func (h *BlogHandler) ListAll(ctx *fiber.Ctx) error {
	blogs, err := h.svc.ListAllBlogs()
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return ctx.JSON(blogs)
}

func (h *BlogHandler) Update(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid blog id")
	}

	var requestBody dto.BlogUpsertRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	blog, err := h.svc.UpdateBlog(uint(id), requestBody)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusNotFound, err.Error())
	}
	return ctx.JSON(blog)
}

func (h *BlogHandler) Delete(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid blog id")
	}

	if err := h.svc.DeleteBlog(uint(id)); err != nil {
		return utils.ResponseError(ctx, fiber.StatusNotFound, "blog not found")
	}
	return ctx.JSON(fiber.Map{"message": "blog deleted successfully"})
}
