package utils

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

func ResponseError(ctx *fiber.Ctx, status int, msg string) error {
	return ctx.Status(status).JSON(fiber.Map{
		"error": msg,
	})
}

func ResponseSuccess(ctx *fiber.Ctx, status int, data interface{}) error {
	return ctx.Status(status).JSON(fiber.Map{"data": data})
}

// ResponseFieldErrors aggregates missing-field names into one 400 message.
func ResponseFieldErrors(ctx *fiber.Ctx, fields []string) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":  "missing required fields: " + strings.Join(fields, ", "),
		"fields": fields,
	})
}
