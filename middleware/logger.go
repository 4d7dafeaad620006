package middleware

import (
	"log/slog"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestLogger logs each request after it has been handled. Form posts
// always answer with a redirect, so a failed save or open is only visible
// as the error flash carried in the Location header.
func RequestLogger(logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		requestID := uuid.NewString()

		c.Locals("requestID", requestID)
		c.Set("X-Request-ID", requestID)

		err := c.Next()

		status := c.Response().StatusCode()
		attrs := []slog.Attr{
			slog.String("request_id", requestID),
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
		}

		flash := flashError(c)
		if flash != "" {
			attrs = append(attrs, slog.String("flash", flash))
		}
		if err != nil {
			attrs = append(attrs, slog.String("error", err.Error()))
		}

		level, msg := outcome(status, flash, err)
		logger.LogAttrs(c.Context(), level, msg, attrs...)

		return err
	}
}

func outcome(status int, flash string, err error) (slog.Level, string) {
	switch {
	case err != nil:
		return slog.LevelError, "request error"
	case status >= 500:
		return slog.LevelError, "server error"
	case status == fiber.StatusForbidden:
		return slog.LevelWarn, "request rejected"
	case status >= 400:
		return slog.LevelWarn, "client error"
	case flash != "":
		return slog.LevelWarn, "action failed"
	default:
		return slog.LevelDebug, "request completed"
	}
}

// flashError extracts the error flash from a redirect back to the page
func flashError(c *fiber.Ctx) string {
	location := string(c.Response().Header.Peek(fiber.HeaderLocation))
	if location == "" {
		return ""
	}
	u, err := url.Parse(location)
	if err != nil {
		return ""
	}
	return u.Query().Get("error")
}
