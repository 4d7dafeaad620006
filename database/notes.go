package database

import (
	"database/sql"
	"quick-notes/models"
)

type Repository struct {
	db *DB
}

func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// ListNotes returns every row ordered by id
func (r *Repository) ListNotes() ([]models.Note, error) {
	rows, err := r.db.Query(`
		SELECT id, COALESCE(text, ''), COALESCE(priority, 0)
		FROM notes
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// Initialize with empty slice to avoid returning nil
	notes := make([]models.Note, 0)
	for rows.Next() {
		var note models.Note
		if err := rows.Scan(&note.ID, &note.Text, &note.Priority); err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}

	return notes, rows.Err()
}

// GetNote retrieves a single note by id, nil if it doesn't exist
func (r *Repository) GetNote(id int64) (*models.Note, error) {
	var note models.Note
	err := r.db.QueryRow(`
		SELECT id, COALESCE(text, ''), COALESCE(priority, 0)
		FROM notes
		WHERE id = ?
	`, id).Scan(&note.ID, &note.Text, &note.Priority)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &note, nil
}

// CreateNote inserts a note and returns it with the id assigned by storage
func (r *Repository) CreateNote(text string, priority int) (*models.Note, error) {
	res, err := r.db.Exec(`INSERT INTO notes (text, priority) VALUES (?, ?)`, text, priority)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &models.Note{ID: id, Text: text, Priority: priority}, nil
}

// UpdateNote overwrites text and priority. Reports false if no row has the id.
func (r *Repository) UpdateNote(id int64, text string, priority int) (bool, error) {
	res, err := r.db.Exec(`UPDATE notes SET text = ?, priority = ? WHERE id = ?`, text, priority, id)
	if err != nil {
		return false, err
	}
	return affected(res)
}

// DeleteNote removes a note by id. Reports false if no row has the id.
func (r *Repository) DeleteNote(id int64) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	return affected(res)
}

func (r *Repository) CountNotes() (int, error) {
	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM notes`).Scan(&n)
	return n, err
}

func affected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
