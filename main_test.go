package main

import (
	"bytes"
	"os"
	"path/filepath"
	"quick-notes/models"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer
	notes := []models.Note{{ID: 1, Text: "sample", Priority: 1}, {ID: 12, Text: "later", Priority: 5}}

	require.NoError(t, printTable(&buf, notes))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.Contains(t, lines[2], "later")
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	notes := []models.Note{{ID: 1, Text: "sample", Priority: 1}, {ID: 2, Text: "многострочная\nзаметка", Priority: 3}}

	require.NoError(t, writeYAML(&buf, notes))

	var decoded exportDoc
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, notes, decoded.Notes)
}

func TestExportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "notes.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("stale content that is much longer than the export"), 0644))

	notes := []models.Note{{ID: 3, Text: "kept", Priority: 2}}
	require.NoError(t, exportFile(path, notes))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded exportDoc
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, notes, decoded.Notes)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestExportFile_UnwritableTarget(t *testing.T) {
	dir := t.TempDir()
	// The target is a directory, so the final rename fails
	target := filepath.Join(dir, "notes.yaml")
	require.NoError(t, os.Mkdir(target, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "child"), []byte("x"), 0644))

	err := exportFile(target, []models.Note{{ID: 1, Text: "x", Priority: 1}})
	assert.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
