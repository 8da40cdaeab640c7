package serverutils

import (
	"errors"

	"profile-chat-be/internal/dto"
	"profile-chat-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ErrorHandlerMiddleware converts returned errors into the fixed response
// shapes: 422 for validation failures, the fiber status for *fiber.Error,
// and a generic 500 for everything else. Full detail is logged server-side
// only, keyed by an incident id.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var verr *ValidationError
		if errors.As(err, &verr) {
			return ctx.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
				Detail: verr.Detail,
			})
		}

		var ferr *fiber.Error
		if errors.As(err, &ferr) {
			return ctx.Status(ferr.Code).JSON(dto.ErrorResponse{Detail: ferr.Message})
		}

		incidentId := uuid.NewString()
		log.Error("http", "unhandled request error", map[string]interface{}{
			"incident_id": incidentId,
			"path":        ctx.Path(),
			"error":       err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Detail: "An internal server error occurred.",
		})
	}
}
