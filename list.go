package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"quick-notes/config"
	"quick-notes/config/setup"
	"quick-notes/models"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every row of the notes table",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		notes, err := loadNotes()
		if err != nil {
			fatal("Failed to list notes", err)
		}

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(notes); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		if err := printTable(os.Stdout, notes); err != nil {
			fatal("Failed to print notes", err)
		}
	},
}

// loadNotes reads the table database without keeping it open
func loadNotes() ([]models.Note, error) {
	logger := slog.Default()

	db, err := setup.InitDatabase(config.AppConfig.TableDBPath, false, logger)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	return setup.InitTableApp(db, logger).NoteService.List()
}

func printTable(w io.Writer, notes []models.Note) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tPRIORITY\tTEXT")
	for _, n := range notes {
		fmt.Fprintf(tw, "%d\t%d\t%s\n", n.ID, n.Priority, n.Text)
	}
	return tw.Flush()
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
}
