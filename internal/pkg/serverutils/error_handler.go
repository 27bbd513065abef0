package serverutils

import (
	"errors"

	"notes-backend/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts errors bubbling out of handlers into
// the API error shapes: 400 with per-field messages, otherwise a
// {"detail": ...} body. Unknown errors become a logged 500.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var appErr *AppError
		if errors.As(err, &appErr) {
			if appErr.Fields != nil {
				return ctx.Status(appErr.Code).JSON(appErr.Fields)
			}
			return ctx.Status(appErr.Code).JSON(fiber.Map{"detail": appErr.Detail})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(fiber.Map{"detail": fiberErr.Message})
		}

		log.Error("http", "unhandled error", map[string]interface{}{
			"path":   ctx.Path(),
			"method": ctx.Method(),
			"error":  err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Internal server error."})
	}
}
