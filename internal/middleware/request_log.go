package middleware

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
)

const requestErrorKey = "request_error"

// SetRequestError records the cause of a failed request for RequestLog. It
// lets handlers hide server errors from the client without losing them.
func SetRequestError(c *fiber.Ctx, err error) {
	c.Locals(requestErrorKey, err)
}

// RequestLog emits one structured record per request. Errors returned down the
// chain are rendered through the app error handler first so the logged status
// is the one the client sees. 5xx responses log at ERROR so they reach the
// persistent log sink, and nothing else logs them.
func RequestLog() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		if chainErr := c.Next(); chainErr != nil {
			if _, set := c.Locals(requestErrorKey).(error); !set {
				SetRequestError(c, chainErr)
			}
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		attrs := []any{
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"latency_ms", float64(time.Since(start).Microseconds()) / 1000,
		}
		if id, ok := c.Locals("requestid").(string); ok {
			attrs = append(attrs, "request_id", id)
		}
		if userID, idErr := CurrentUserID(c); idErr == nil {
			attrs = append(attrs, "user_id", userID.String())
		}
		if cause, ok := c.Locals(requestErrorKey).(error); ok {
			attrs = append(attrs, "error", cause.Error())
		}

		switch {
		case status >= fiber.StatusInternalServerError:
			slog.Error("request completed", attrs...)
		case status >= fiber.StatusBadRequest:
			slog.Warn("request completed", attrs...)
		default:
			slog.Debug("request completed", attrs...)
		}
		return nil
	}
}
