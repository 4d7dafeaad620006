package views

import (
	"bytes"
	"context"
	"quick-notes/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTablePage(t *testing.T) {
	var buf bytes.Buffer
	notes := []models.Note{
		{ID: 1, Text: "sample", Priority: 1},
		{ID: 2, Text: `<script>x</script>`, Priority: 4},
	}

	err := TablePage(notes, Flash{}).Render(context.Background(), &buf)
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, `<tr id="note-1">`)
	assert.Contains(t, html, `<tr id="note-2">`)
	assert.Contains(t, html, `action="/notes/2/edit"`)
	assert.Contains(t, html, `value="4"`)
	assert.NotContains(t, html, `<script>x</script>`)
	assert.Contains(t, html, `&lt;script&gt;`)
	assert.NotContains(t, html, `role="alertdialog"`)
}

func TestEditorPage(t *testing.T) {
	var buf bytes.Buffer

	err := EditorPage(models.Buffer{Text: "a & b", Path: "/tmp/x.txt"}, []string{"x.txt"}, Flash{}).
		Render(context.Background(), &buf)
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, `a &amp; b</textarea>`)
	assert.Contains(t, html, `/tmp/x.txt`)
	assert.Contains(t, html, `<option value="x.txt">`)
	assert.Contains(t, html, `formaction="/editor/save"`)
}

func TestAlert(t *testing.T) {
	var buf bytes.Buffer

	err := Alert(Flash{Error: `open </script>: no such file`}).Render(context.Background(), &buf)
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, `<dialog class="alert error" role="alertdialog" open>`)
	assert.Contains(t, html, `<p>open &lt;/script&gt;: no such file</p>`)
	assert.Contains(t, html, `<form method="dialog">`)
	assert.NotContains(t, html, `<script`)
	assert.NotContains(t, html, `role="status"`)

	buf.Reset()
	err = Alert(Flash{Message: "saved"}).Render(context.Background(), &buf)
	require.NoError(t, err)
	assert.Equal(t, `<div class="alert info" role="status">saved</div>`, buf.String())
}
