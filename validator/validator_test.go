package validator

import (
	"testing"

	"quick-notes/models"

	"github.com/stretchr/testify/assert"
)

func TestValidator_CreateNote(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		req       models.CreateNoteRequest
		wantError bool
		errorMsg  string
	}{
		{
			name:      "Valid note request",
			req:       models.CreateNoteRequest{Text: "buy milk", Priority: 3},
			wantError: false,
		},
		{
			name:      "Missing text",
			req:       models.CreateNoteRequest{Text: "", Priority: 1},
			wantError: true,
			errorMsg:  "text is required",
		},
		{
			name:      "Blank text",
			req:       models.CreateNoteRequest{Text: "   \n", Priority: 1},
			wantError: true,
			errorMsg:  "text must not be blank",
		},
		{
			name:      "Out of range priority is left to clamping",
			req:       models.CreateNoteRequest{Text: "x", Priority: 42},
			wantError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)

			if tt.wantError {
				assert.Error(t, err)
				if tt.errorMsg != "" {
					assert.Contains(t, err.Error(), tt.errorMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_Save(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		req       models.SaveRequest
		wantError bool
	}{
		{name: "Plain name", req: models.SaveRequest{Name: "groceries"}},
		{name: "Name with dots", req: models.SaveRequest{Name: "todo.2025"}},
		{name: "Unicode name", req: models.SaveRequest{Name: "заметка"}},
		{name: "Empty name is a cancelled dialog", req: models.SaveRequest{Name: ""}},
		{name: "Slash", req: models.SaveRequest{Name: "../etc/passwd"}, wantError: true},
		{name: "Backslash", req: models.SaveRequest{Name: `a\b`}, wantError: true},
		{name: "Parent dir", req: models.SaveRequest{Name: ".."}, wantError: true},
		{name: "Blank", req: models.SaveRequest{Name: "   "}, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)
			if tt.wantError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "name must be a plain file name")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_PathRequired(t *testing.T) {
	v := New()

	err := v.Validate(&models.PathRequest{})
	assert.Error(t, err)

	errs, ok := err.(ValidationErrors)
	assert.True(t, ok)
	assert.Len(t, errs, 1)
	assert.Equal(t, "path", errs[0].Field)
	assert.Equal(t, "required", errs[0].Tag)
}
