package handlers

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/middleware"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
)

// ErrorHandler is the app-level fallback for errors returned up the handler
// chain. Fiber errors keep their code and service errors go through
// errorStatus. Server errors reach Sentry here and the log via RequestLog.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := errorStatus(err)
	message := err.Error()

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= fiber.StatusInternalServerError {
		middleware.SetRequestError(c, err)
		if hub := sentryfiber.GetHubFromContext(c); hub != nil {
			hub.CaptureException(err)
		}
		message = "Internal server error"
	}

	return c.Status(code).JSON(dto.Response{
		Success: false,
		Message: message,
	})
}
