package services

import (
	"fmt"
	"quick-notes/models"
	"strings"
)

// NoteService handles business logic for the notes table
type NoteService struct {
	repo NoteRepository
}

// NewNoteService creates a new note service
func NewNoteService(repo NoteRepository) *NoteService {
	return &NoteService{repo: repo}
}

// ClampPriority forces p into the range the input surface accepts
func ClampPriority(p int) int {
	if p < models.MinPriority {
		return models.MinPriority
	}
	if p > models.MaxPriority {
		return models.MaxPriority
	}
	return p
}

// List returns the full current row set
func (ns *NoteService) List() ([]models.Note, error) {
	notes, err := ns.repo.ListNotes()
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

// Get retrieves a note by id
func (ns *NoteService) Get(id int64) (*models.Note, error) {
	note, err := ns.repo.GetNote(id)
	if err != nil {
		return nil, fmt.Errorf("get note %d: %w", id, err)
	}
	if note == nil {
		return nil, ErrNoteNotFound
	}
	return note, nil
}

// Create stores a new note. Storage assigns the id.
func (ns *NoteService) Create(text string, priority int) (*models.Note, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}

	note, err := ns.repo.CreateNote(text, ClampPriority(priority))
	if err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}
	return note, nil
}

// Update overwrites text and priority of an existing note.
// A missing id is a no-op and yields a nil note.
func (ns *NoteService) Update(id int64, text string, priority int) (*models.Note, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}

	priority = ClampPriority(priority)
	ok, err := ns.repo.UpdateNote(id, text, priority)
	if err != nil {
		return nil, fmt.Errorf("update note %d: %w", id, err)
	}
	if !ok {
		return nil, nil
	}

	return &models.Note{ID: id, Text: text, Priority: priority}, nil
}

// Delete removes a note. Deleting a missing id is a no-op.
func (ns *NoteService) Delete(id int64) (bool, error) {
	ok, err := ns.repo.DeleteNote(id)
	if err != nil {
		return false, fmt.Errorf("delete note %d: %w", id, err)
	}
	return ok, nil
}
