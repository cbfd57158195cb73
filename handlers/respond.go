package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/parlacomsolucoes-sys/escala-parlacom-sub000/pkg/apperror"
)

// writeError maps application error codes onto HTTP statuses. Storage
// failures are logged with their cause and surfaced with a generic
// message and an opaque code only.
func writeError(c *fiber.Ctx, logger *zap.Logger, err error) error {
	code := apperror.GetCode(err)
	switch code {
	case apperror.CodeValidation:
		body := fiber.Map{"error": err.Error()}
		var appErr *apperror.Error
		if errors.As(err, &appErr) && appErr.Field != "" {
			body["field"] = appErr.Field
		}
		return c.Status(fiber.StatusBadRequest).JSON(body)
	case apperror.CodeConflict:
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case apperror.CodeNotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case apperror.CodeNotModified:
		return c.SendStatus(fiber.StatusNotModified)
	case apperror.CodeUnauthorized:
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	default:
		logger.Error("internal error", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
			"code":  string(apperror.CodeStorage),
		})
	}
}

func nowUTC() time.Time {
	return time.Now().UTC()
}
