package handlers

import (
	"errors"
	"quick-notes/app"
	"quick-notes/models"
	"quick-notes/services"

	"github.com/gofiber/fiber/v2"
)

// ListNotes returns the full current row set
func ListNotes(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		notes, err := a.NoteService.List()
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch notes", err)
		}
		return success(c, fiber.Map{"notes": notes})
	}
}

// GetNote retrieves a single note by id
func GetNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := noteID(c)
		if !ok {
			return badRequest(c, msgSelectNote)
		}

		note, err := a.NoteService.Get(id)
		if errors.Is(err, services.ErrNoteNotFound) {
			return notFound(c, "Note not found")
		}
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch note", err)
		}

		return success(c, fiber.Map{"note": note})
	}
}

// CreateNote adds a note. Priority is clamped to 1-5.
func CreateNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateNoteRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		note, err := a.NoteService.Create(req.Text, req.Priority)
		if errors.Is(err, services.ErrEmptyText) {
			return badRequest(c, err.Error())
		}
		if err != nil {
			return serverErrorWithDetails(c, "Failed to create note", err)
		}

		return created(c, fiber.Map{"note": note})
	}
}

// UpdateNote overwrites text and priority. A missing id is a no-op.
func UpdateNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := noteID(c)
		if !ok {
			return badRequest(c, msgSelectNote)
		}

		var req models.UpdateNoteRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		note, err := a.NoteService.Update(id, req.Text, req.Priority)
		if errors.Is(err, services.ErrEmptyText) {
			return badRequest(c, err.Error())
		}
		if err != nil {
			return serverErrorWithDetails(c, "Failed to update note", err)
		}
		if note == nil {
			return success(c, fiber.Map{"updated": false})
		}

		return success(c, fiber.Map{"updated": true, "note": note})
	}
}

// DeleteNote removes a note. Deleting a missing id is a no-op.
func DeleteNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := noteID(c)
		if !ok {
			return badRequest(c, msgSelectNote)
		}

		deleted, err := a.NoteService.Delete(id)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to delete note", err)
		}

		return success(c, fiber.Map{"deleted": deleted})
	}
}

// NoSelection answers edit and delete requests that name no row
func NoSelection(c *fiber.Ctx) error {
	return badRequest(c, msgSelectNote)
}

// ==================== HTML FORMS ====================

// SubmitNote handles the add form and reloads the table
func SubmitNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateNoteRequest
		if err := c.BodyParser(&req); err != nil {
			return redirectWith(c, "error", "Invalid form")
		}

		// Blank text is a cancelled dialog, nothing to insert
		if _, err := a.NoteService.Create(req.Text, req.Priority); err != nil && !errors.Is(err, services.ErrEmptyText) {
			logServerError(c, "Failed to create note", err)
			return redirectWith(c, "error", err.Error())
		}
		return redirectWith(c, "", "")
	}
}

// SubmitEdit handles a row's edit form and reloads the table
func SubmitEdit(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := noteID(c)
		if !ok {
			return redirectWith(c, "error", msgSelectNote)
		}

		var req models.UpdateNoteRequest
		if err := c.BodyParser(&req); err != nil {
			return redirectWith(c, "error", "Invalid form")
		}

		if _, err := a.NoteService.Update(id, req.Text, req.Priority); err != nil && !errors.Is(err, services.ErrEmptyText) {
			logServerError(c, "Failed to update note", err)
			return redirectWith(c, "error", err.Error())
		}
		return redirectWith(c, "", "")
	}
}

// SubmitDelete handles a row's delete button and reloads the table
func SubmitDelete(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := noteID(c)
		if !ok {
			return redirectWith(c, "error", msgSelectNote)
		}

		if _, err := a.NoteService.Delete(id); err != nil {
			logServerError(c, "Failed to delete note", err)
			return redirectWith(c, "error", err.Error())
		}
		return redirectWith(c, "", "")
	}
}
