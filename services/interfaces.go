package services

import "quick-notes/models"

// NoteRepository defines the interface for note data access
type NoteRepository interface {
	ListNotes() ([]models.Note, error)
	GetNote(id int64) (*models.Note, error)
	CreateNote(text string, priority int) (*models.Note, error)
	UpdateNote(id int64, text string, priority int) (bool, error)
	DeleteNote(id int64) (bool, error)
}
