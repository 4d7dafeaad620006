package setup

import (
	"log/slog"
	"quick-notes/app"
	"quick-notes/database"
	"quick-notes/services"
	"quick-notes/storage"
)

// InitDatabase opens the SQLite database, runs migrations and, if asked,
// inserts the sample row
func InitDatabase(dbPath string, seed bool, logger *slog.Logger) (*database.DB, error) {
	db, err := database.New(dbPath)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}

	if seed {
		if err := db.Seed(); err != nil {
			db.Close()
			return nil, err
		}
	}

	logger.Info("database initialized", "path", dbPath, "seeded", seed)
	return db, nil
}

// InitTableApp wires the dependencies of the notes table UI
func InitTableApp(db *database.DB, logger *slog.Logger) *app.App {
	repo := database.NewRepository(db)
	return app.New(repo, nil, logger)
}

// InitEditorApp wires the dependencies of the free-text editor
func InitEditorApp(db *database.DB, notesDir string, logger *slog.Logger) (*app.App, error) {
	store, err := storage.NewFileStore(notesDir)
	if err != nil {
		return nil, err
	}
	logger.Info("text store initialized", "dir", notesDir)

	repo := database.NewRepository(db)
	return app.New(repo, services.NewEditorService(store), logger), nil
}

// Shutdown releases everything the process owns
func Shutdown(db *database.DB, logger *slog.Logger) {
	logger.Info("shutting down services...")

	if db != nil {
		db.Close()
		logger.Info("database closed")
	}
}
