package handlers

import (
	"strconv"

	"github.com/GoAbroadHQ/portal_service/internal/dto"
	"github.com/GoAbroadHQ/portal_service/internal/helper/utils"
	"github.com/GoAbroadHQ/portal_service/internal/services"
	"github.com/gofiber/fiber/v2"
)

type UniversityHandler struct {
	svc services.UniversityService
}

func NewUniversityHandler(svc services.UniversityService) *UniversityHandler {
	return &UniversityHandler{svc: svc}
}

func (h *UniversityHandler) List(ctx *fiber.Ctx) error {
	query := dto.UniversityQuery{
		Country: ctx.Query("country"),
		Search:  ctx.Query("search"),
		Page:    ctx.QueryInt("page", 1),
		Limit:   ctx.QueryInt("limit", 10),
	}

	result, err := h.svc.List(query)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return ctx.JSON(result)
}

func (h *UniversityHandler) Get(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid university id")
	}

	university, err := h.svc.Get(uint(id))
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusNotFound, "university not found")
	}
	return ctx.JSON(university)
}

func (h *UniversityHandler) CalculateScholarships(ctx *fiber.Ctx) error {
	gpaStr := ctx.Query("gpa")
	gpa, err := strconv.ParseFloat(gpaStr, 64)
	if err != nil || gpa < 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "a valid gpa query parameter is required")
	}

	results, err := h.svc.CalculateScholarships(gpa)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return ctx.JSON(results)
}

func (h *UniversityHandler) Autocomplete(ctx *fiber.Ctx) error {
	suggestions, err := h.svc.Autocomplete(ctx.Query("q"))
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return ctx.JSON(suggestions)
}

func (h *UniversityHandler) Create(ctx *fiber.Ctx) error {
	var requestBody dto.UniversityUpsertRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	university, err := h.svc.Create(requestBody)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}
	return ctx.Status(fiber.StatusCreated).JSON(university)
}

func (h *UniversityHandler) Update(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid university id")
	}

	var requestBody dto.UniversityUpsertRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	university, err := h.svc.Update(uint(id), requestBody)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusNotFound, err.Error())
	}
	return ctx.JSON(university)
}
