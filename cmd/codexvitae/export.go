// ABOUTME: CLI command for exporting the unified views as CSV.
// ABOUTME: Produces journal_view.csv and time_view.csv for the chart renderer.
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cbatts/codexvitae/internal/db"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the unified views as CSV",
	Long: `Write journal_view.csv and time_view.csv to the output directory.

Examples:
  codexvitae export              # Write into the current directory
  codexvitae export -o ./csv`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := os.MkdirAll(exportOutput, 0750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}

		journal, err := db.QueryJournalView(dbConn)
		if err != nil {
			return err
		}
		journalPath := filepath.Join(exportOutput, "journal_view.csv")
		if err := writeCSV(journalPath, []string{"date", "mood", "entry"},
			len(journal), func(i int) []string {
				r := journal[i]
				return []string{r.Date, formatFloat(r.Mood), r.Entry}
			}); err != nil {
			return err
		}

		times, err := db.QueryTimeView(dbConn)
		if err != nil {
			return err
		}
		timePath := filepath.Join(exportOutput, "time_view.csv")
		if err := writeCSV(timePath, []string{"date", "prd_hours", "dst_hours", "neut_hours"},
			len(times), func(i int) []string {
				r := times[i]
				return []string{r.Date, formatFloat(r.PrdHours), formatFloat(r.DstHours), formatFloat(r.NeutHours)}
			}); err != nil {
			return err
		}

		color.Green("✓ Exported views")
		fmt.Printf("  %s (%d rows)\n", journalPath, len(journal))
		fmt.Printf("  %s (%d rows)\n", timePath, len(times))
		return nil
	},
}

func writeCSV(path string, header []string, n int, row func(int) []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	for i := 0; i < n; i++ {
		if err := w.Write(row(i)); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", ".", "output directory")
	rootCmd.AddCommand(exportCmd)
}
