package handlers

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/GoAbroadHQ/portal_service/internal/dto"
	"github.com/GoAbroadHQ/portal_service/internal/helper/utils"
	"github.com/GoAbroadHQ/portal_service/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ApplicationHandler struct {
	svc services.ApplicationService
}

func NewApplicationHandler(svc services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{svc: svc}
}

func respondSubmitError(ctx *fiber.Ctx, err error) error {
	var fieldErr *services.FieldError
	if errors.As(err, &fieldErr) {
		return utils.ResponseFieldErrors(ctx, fieldErr.Fields)
	}
	return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
}

// Submit is the "simple" JSON path: no new files, the KYC document list is
// copied into the application.
func (h *ApplicationHandler) Submit(ctx *fiber.Ctx) error {
	userID := ctx.Locals("userID").(uint)

	var requestBody dto.ApplicationSubmitRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	app, err := h.svc.Submit(ctx.UserContext(), userID, requestBody, nil)
	if err != nil {
		return respondSubmitError(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(app)
}

// SubmitMultipart accepts the same submission fields as form values plus up
// to six named document files.
func (h *ApplicationHandler) SubmitMultipart(ctx *fiber.Ctx) error {
	userID := ctx.Locals("userID").(uint)

	form, err := ctx.MultipartForm()
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "multipart form is required")
	}

	requestBody, err := parseSubmissionForm(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	var files []dto.FileInput
	for field, docType := range services.MultipartDocumentFields {
		headers := form.File[field]
		if len(headers) == 0 {
			continue
		}
		file, err := readFormFile(headers[0], docType, maxUploadSize)
		if err != nil {
			return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
		}
		files = append(files, *file)
	}

	app, err := h.svc.Submit(ctx.UserContext(), userID, *requestBody, files)
	if err != nil {
		return respondSubmitError(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(app)
}

// parseSubmissionForm reads the submission fields out of multipart form
// values, with personal/academic info as nested JSON strings the way the
// form posts them.
func parseSubmissionForm(ctx *fiber.Ctx) (*dto.ApplicationSubmitRequest, error) {
	var req dto.ApplicationSubmitRequest

	req.Course = ctx.FormValue("course")
	req.Intake = ctx.FormValue("intake")
	req.CustomUniversity = ctx.FormValue("custom_university")

	if v := ctx.FormValue("university_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return nil, errors.New("invalid university_id")
		}
		uid := uint(id)
		req.UniversityID = &uid
	}

	if v := ctx.FormValue("personal_info"); v != "" {
		if err := json.Unmarshal([]byte(v), &req.PersonalInfo); err != nil {
			return nil, errors.New("invalid personal_info")
		}
	}
	if v := ctx.FormValue("academic_info"); v != "" {
		if err := json.Unmarshal([]byte(v), &req.AcademicInfo); err != nil {
			return nil, errors.New("invalid academic_info")
		}
	}

	return &req, nil
}

func (h *ApplicationHandler) AddDocuments(ctx *fiber.Ctx) error {
	userID := ctx.Locals("userID").(uint)

	appID, err := ctx.ParamsInt("id")
	if err != nil || appID <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid application id")
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "multipart form is required")
	}

	headers := form.File["documents"]
	if len(headers) == 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "no files uploaded")
	}
	if len(headers) > 5 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "at most 5 documents per request")
	}

	var files []dto.FileInput
	for _, fh := range headers {
		file, err := readFormFile(fh, "other", maxUploadSize)
		if err != nil {
			return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
		}
		files = append(files, *file)
	}

	app, err := h.svc.AddDocuments(ctx.UserContext(), userID, uint(appID), files)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	return ctx.JSON(app)
}

func (h *ApplicationHandler) ListMine(ctx *fiber.Ctx) error {
	userID := ctx.Locals("userID").(uint)

	apps, err := h.svc.ListMine(userID)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return ctx.JSON(apps)
}

func (h *ApplicationHandler) Get(ctx *fiber.Ctx) error {
	userID := ctx.Locals("userID").(uint)

	appID, err := ctx.ParamsInt("id")
	if err != nil || appID <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid application id")
	}

	app, err := h.svc.GetOwned(userID, uint(appID))
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusNotFound, "application not found")
	}
	return ctx.JSON(app)
}

func (h *ApplicationHandler) Delete(ctx *fiber.Ctx) error {
	userID := ctx.Locals("userID").(uint)

	appID, err := ctx.ParamsInt("id")
	if err != nil || appID <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid application id")
	}

	if err := h.svc.Delete(ctx.UserContext(), uint(appID), userID, false); err != nil {
		return utils.ResponseError(ctx, fiber.StatusNotFound, "application not found")
	}
	return ctx.JSON(fiber.Map{"message": "application deleted successfully"})
}
