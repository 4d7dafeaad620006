package handlers

import (
	"quick-notes/app"
	"quick-notes/models"

	"github.com/gofiber/fiber/v2"
)

const msgSaved = "Сохранено!"

// fileError reports a failed file operation with its cause so the UI can
// show it to the user as is
func fileError(c *fiber.Ctx, err error) error {
	logServerError(c, "file operation failed", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}

// GetBuffer returns the editor's current text and file path
func GetBuffer(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(a.EditorService.Buffer())
	}
}

// SetBuffer replaces the editor text
func SetBuffer(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.SetTextRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		return c.JSON(a.EditorService.SetText(req.Text))
	}
}

// CreateFile writes the buffer to a newly chosen file
func CreateFile(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.PathRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		path, err := a.EditorService.Create(req.Path)
		if err != nil {
			return fileError(c, err)
		}
		return success(c, fiber.Map{"message": msgSaved, "path": path})
	}
}

// OpenFile loads a text file into the buffer
func OpenFile(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.PathRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		buf, err := a.EditorService.Open(req.Path)
		if err != nil {
			return fileError(c, err)
		}
		return c.JSON(buf)
	}
}

// SaveFile writes the buffer to <name>.txt in the notes directory
func SaveFile(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.SaveRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		path, err := a.EditorService.SaveNamed(req.Name)
		if err != nil {
			return fileError(c, err)
		}
		if path == "" {
			return success(c, fiber.Map{"saved": false})
		}
		return success(c, fiber.Map{"saved": true, "message": msgSaved, "path": path})
	}
}

// AppendText adds a paragraph to the buffer
func AppendText(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.AppendRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		return c.JSON(a.EditorService.Append(req.Text))
	}
}

// ListFiles returns the text files that can be opened
func ListFiles(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		files, err := a.EditorService.Files()
		if err != nil {
			return fileError(c, err)
		}
		return success(c, fiber.Map{"files": files})
	}
}

// ==================== HTML FORMS ====================

// EditorForm is the single form on the editor page
type EditorForm struct {
	Text   string `form:"text"`
	Path   string `form:"path"`
	Name   string `form:"name"`
	Append string `form:"append"`
}

// EditorAction syncs the submitted text into the buffer, runs the action
// named by the button and redirects back to the editor
func EditorAction(a *app.App, action string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var form EditorForm
		if err := c.BodyParser(&form); err != nil {
			return redirectWith(c, "error", "Invalid form")
		}
		a.EditorService.SetText(form.Text)

		switch action {
		case "create":
			if form.Path == "" {
				break
			}
			if _, err := a.EditorService.Create(form.Path); err != nil {
				logServerError(c, "file operation failed", err)
				return redirectWith(c, "error", err.Error())
			}
			return redirectWith(c, "msg", msgSaved)

		case "open":
			if form.Path == "" {
				break
			}
			if _, err := a.EditorService.Open(form.Path); err != nil {
				logServerError(c, "file operation failed", err)
				return redirectWith(c, "error", err.Error())
			}

		case "save":
			if form.Name == "" {
				break
			}
			if err := a.Validator.Validate(&models.SaveRequest{Name: form.Name}); err != nil {
				return redirectWith(c, "error", err.Error())
			}
			if _, err := a.EditorService.SaveNamed(form.Name); err != nil {
				logServerError(c, "file operation failed", err)
				return redirectWith(c, "error", err.Error())
			}
			return redirectWith(c, "msg", msgSaved)

		case "append":
			a.EditorService.Append(form.Append)
		}

		return redirectWith(c, "", "")
	}
}
