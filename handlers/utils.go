package handlers

import (
	"errors"
	"log/slog"
	"net/url"
	"quick-notes/validator"

	"github.com/gofiber/fiber/v2"
)

const msgSelectNote = "Выберите заметку"

func success(c *fiber.Ctx, data fiber.Map) error {
	return c.JSON(data)
}

func created(c *fiber.Ctx, data fiber.Map) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": message})
}

func validationError(c *fiber.Ctx, err error) error {
	var details validator.ValidationErrors
	if errors.As(err, &details) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"details": details,
		})
	}
	return badRequest(c, err.Error())
}

func serverErrorWithDetails(c *fiber.Ctx, message string, err error) error {
	logServerError(c, message, err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": message})
}

func logServerError(c *fiber.Ctx, message string, err error) {
	requestID := ""
	if id, ok := c.Locals("requestID").(string); ok {
		requestID = id
	}

	slog.Error("server error",
		"request_id", requestID,
		"method", c.Method(),
		"path", c.Path(),
		"message", message,
		"error", err,
	)
}

// noteID reads the :id route param. A missing, malformed or non-positive id
// means no row was selected.
func noteID(c *fiber.Ctx) (int64, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, false
	}
	return int64(id), true
}

// redirectWith sends the browser back to the page with a flash message
func redirectWith(c *fiber.Ctx, key, message string) error {
	target := "/"
	if message != "" {
		target += "?" + key + "=" + url.QueryEscape(message)
	}
	return c.Redirect(target, fiber.StatusSeeOther)
}
