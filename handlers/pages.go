package handlers

import (
	"quick-notes/app"
	"quick-notes/views"

	"github.com/a-h/templ"
	"github.com/gofiber/fiber/v2"
)

func flashFrom(c *fiber.Ctx) views.Flash {
	return views.Flash{Message: c.Query("msg"), Error: c.Query("error")}
}

func render(c *fiber.Ctx, component templ.Component) error {
	c.Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(c.Context(), c.Response().BodyWriter())
}

// TablePage renders the notes grid, reloading every row from storage
func TablePage(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		notes, err := a.NoteService.List()
		if err != nil {
			logServerError(c, "Failed to load notes", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to load notes")
		}
		return render(c, views.TablePage(notes, flashFrom(c)))
	}
}

// EditorPage renders the free-text editor
func EditorPage(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		flash := flashFrom(c)
		files, err := a.EditorService.Files()
		if err != nil {
			// The page is still usable without the file list
			logServerError(c, "Failed to list files", err)
			files = nil
		}
		return render(c, views.EditorPage(a.EditorService.Buffer(), files, flash))
	}
}
