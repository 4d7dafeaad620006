package setup

import (
	"quick-notes/app"
	"quick-notes/handlers"

	"github.com/gofiber/fiber/v2"
)

func health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// RegisterTableRoutes registers the notes table UI and API
func RegisterTableRoutes(fiberApp *fiber.App, application *app.App) {
	fiberApp.Get("/", handlers.TablePage(application))
	fiberApp.Get("/health", health)

	// Form posts from the page, each redirects back to the table
	fiberApp.Post("/notes", handlers.SubmitNote(application))
	fiberApp.Post("/notes/:id/edit", handlers.SubmitEdit(application))
	fiberApp.Post("/notes/:id/delete", handlers.SubmitDelete(application))

	api := fiberApp.Group("/api")
	api.Get("/notes", handlers.ListNotes(application))
	api.Post("/notes", handlers.CreateNote(application))
	api.Put("/notes", handlers.NoSelection)
	api.Delete("/notes", handlers.NoSelection)
	api.Get("/notes/:id", handlers.GetNote(application))
	api.Put("/notes/:id", handlers.UpdateNote(application))
	api.Delete("/notes/:id", handlers.DeleteNote(application))
}

// RegisterEditorRoutes registers the free-text editor UI and API
func RegisterEditorRoutes(fiberApp *fiber.App, application *app.App) {
	fiberApp.Get("/", handlers.EditorPage(application))
	fiberApp.Get("/health", health)

	for _, action := range []string{"text", "create", "open", "save", "append"} {
		fiberApp.Post("/editor/"+action, handlers.EditorAction(application, action))
	}

	api := fiberApp.Group("/api/editor")
	api.Get("/", handlers.GetBuffer(application))
	api.Put("/", handlers.SetBuffer(application))
	api.Get("/files", handlers.ListFiles(application))
	api.Post("/create", handlers.CreateFile(application))
	api.Post("/open", handlers.OpenFile(application))
	api.Post("/save", handlers.SaveFile(application))
	api.Post("/append", handlers.AppendText(application))
}
