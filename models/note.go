package models

// Note is a single row of the notes table.
type Note struct {
	ID       int64  `json:"id" yaml:"id"`
	Text     string `json:"text" yaml:"text"`
	Priority int    `json:"priority" yaml:"priority"`
}

// Priority bounds accepted by the input surface. Storage does not enforce them.
const (
	MinPriority     = 1
	MaxPriority     = 5
	DefaultPriority = MinPriority
)

type CreateNoteRequest struct {
	Text     string `json:"text" form:"text" validate:"required,notetext"`
	Priority int    `json:"priority" form:"priority"`
}

type UpdateNoteRequest struct {
	Text     string `json:"text" form:"text" validate:"required,notetext"`
	Priority int    `json:"priority" form:"priority"`
}
