package app

import (
	"log/slog"
	"quick-notes/database"
	"quick-notes/services"
	"quick-notes/validator"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	Repo          *database.Repository
	NoteService   *services.NoteService
	EditorService *services.EditorService
	Validator     *validator.Validator
	Logger        *slog.Logger
}

// New creates a new App instance with all dependencies.
// editor may be nil when only the table UI is served.
func New(repo *database.Repository, editor *services.EditorService, logger *slog.Logger) *App {
	return &App{
		Repo:          repo,
		NoteService:   services.NewNoteService(repo),
		EditorService: editor,
		Validator:     validator.New(),
		Logger:        logger,
	}
}
