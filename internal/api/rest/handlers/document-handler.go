package handlers

import (
	"os"

	"github.com/GoAbroadHQ/portal_service/internal/helper/utils"
	"github.com/GoAbroadHQ/portal_service/pkg/localstore"
	pkgutils "github.com/GoAbroadHQ/portal_service/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

// DocumentHandler streams locally stored files. Cloudinary-backed records
// carry their own https URLs and never hit this endpoint.
type DocumentHandler struct {
	store *localstore.LocalUploader
}

func NewDocumentHandler(store *localstore.LocalUploader) *DocumentHandler {
	return &DocumentHandler{store: store}
}

func (h *DocumentHandler) Serve(ctx *fiber.Ctx) error {
	if h.store == nil {
		return utils.ResponseError(ctx, fiber.StatusNotFound, "local storage is not enabled")
	}

	filename := ctx.Params("*")
	if filename == "" {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "file name is required")
	}

	path, err := h.store.Resolve(filename)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid file name")
	}

	if _, err := os.Stat(path); err != nil {
		return utils.ResponseError(ctx, fiber.StatusNotFound, "file not found")
	}

	ctx.Set(fiber.HeaderContentType, pkgutils.ContentTypeByExt(filename))
	ctx.Set(fiber.HeaderContentDisposition, `inline; filename="`+filename+`"`)
	return ctx.SendFile(path)
}
