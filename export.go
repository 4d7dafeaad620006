package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"quick-notes/models"
	"quick-notes/storage"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Dump the notes table as YAML",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		notes, err := loadNotes()
		if err != nil {
			fatal("Failed to load notes", err)
		}

		if exportOut == "" {
			if err := writeYAML(os.Stdout, notes); err != nil {
				fatal("Failed to write YAML", err)
			}
			return
		}

		if err := exportFile(exportOut, notes); err != nil {
			fatal("Failed to export notes", err)
		}
	},
}

type exportDoc struct {
	Notes []models.Note `yaml:"notes"`
}

func writeYAML(w io.Writer, notes []models.Note) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(exportDoc{Notes: notes}); err != nil {
		return err
	}
	return enc.Close()
}

// exportFile encodes in memory first and replaces path in one step, so a
// failed export never leaves a partial file behind
func exportFile(path string, notes []models.Note) error {
	var buf bytes.Buffer
	if err := writeYAML(&buf, notes); err != nil {
		return err
	}
	store := &storage.FileStore{Dir: filepath.Dir(path)}
	return store.Write(path, buf.String())
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Write to file instead of stdout")
}
