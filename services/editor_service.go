package services

import (
	"fmt"
	"quick-notes/models"
	"quick-notes/storage"
	"sync"
)

// EditorService owns the single free-text buffer of the editor and moves
// it to and from text files.
type EditorService struct {
	mu     sync.Mutex
	store  storage.TextStore
	buffer models.Buffer
}

// NewEditorService creates an editor with an empty buffer
func NewEditorService(store storage.TextStore) *EditorService {
	return &EditorService{store: store}
}

// Buffer returns a copy of the current document
func (es *EditorService) Buffer() models.Buffer {
	es.mu.Lock()
	defer es.mu.Unlock()
	return es.buffer
}

// SetText replaces the buffer content, keeping its file path
func (es *EditorService) SetText(text string) models.Buffer {
	es.mu.Lock()
	defer es.mu.Unlock()
	es.buffer.Text = text
	return es.buffer
}

// Create writes the buffer to a newly chosen file. A path without an
// extension gets .txt.
func (es *EditorService) Create(path string) (string, error) {
	if path == "" {
		return "", ErrNoPath
	}
	return es.writeTo(es.store.Resolve(storage.WithTextExt(path)))
}

// Open replaces the buffer with the content of path. On failure the buffer
// is left untouched.
func (es *EditorService) Open(path string) (models.Buffer, error) {
	if path == "" {
		return es.Buffer(), ErrNoPath
	}

	target := es.store.Resolve(path)
	content, err := es.store.Read(target)
	if err != nil {
		return es.Buffer(), fmt.Errorf("open %s: %w", path, err)
	}

	es.mu.Lock()
	defer es.mu.Unlock()
	es.buffer = models.Buffer{Text: content, Path: target}
	return es.buffer, nil
}

// SaveNamed writes the buffer to <name>.txt in the notes directory.
// An empty name means the dialog was cancelled and nothing is written.
func (es *EditorService) SaveNamed(name string) (string, error) {
	if name == "" {
		return "", nil
	}
	return es.writeTo(es.store.Resolve(name + storage.TextExt))
}

// Append adds text as a new paragraph. Empty text is ignored.
func (es *EditorService) Append(text string) models.Buffer {
	es.mu.Lock()
	defer es.mu.Unlock()

	if text == "" {
		return es.buffer
	}
	if es.buffer.Text == "" {
		es.buffer.Text = text
	} else {
		es.buffer.Text += "\n" + text
	}
	return es.buffer
}

// Files lists the text files available to open
func (es *EditorService) Files() ([]string, error) {
	files, err := es.store.List()
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	return files, nil
}

func (es *EditorService) writeTo(path string) (string, error) {
	es.mu.Lock()
	defer es.mu.Unlock()

	if err := es.store.Write(path, es.buffer.Text); err != nil {
		return "", fmt.Errorf("save %s: %w", path, err)
	}
	es.buffer.Path = path
	return path, nil
}
