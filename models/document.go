package models

// Buffer is the editor's in-memory document.
type Buffer struct {
	Text string `json:"text"`
	Path string `json:"path"`
}

type SetTextRequest struct {
	Text string `json:"text" form:"text"`
}

type PathRequest struct {
	Path string `json:"path" form:"path" validate:"required"`
}

type SaveRequest struct {
	Name string `json:"name" form:"name" validate:"omitempty,filename"`
}

type AppendRequest struct {
	Text string `json:"text" form:"text"`
}
