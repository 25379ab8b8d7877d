// ABOUTME: CLI command for printing the unified views.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cbatts/codexvitae/internal/db"
)

var viewLimit int

var viewCmd = &cobra.Command{
	Use:       "view <journal|time>",
	Short:     "Print a unified view",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"journal", "time"},
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "journal":
			rows, err := db.QueryJournalView(dbConn)
			if err != nil {
				return err
			}
			rows = tail(rows, viewLimit)
			for _, r := range rows {
				entry := r.Entry
				if len(entry) > 60 {
					entry = entry[:57] + "..."
				}
				fmt.Printf("%s  %s  %s\n",
					color.New(color.Faint).Sprint(r.Date),
					moodColor(r.Mood).Sprintf("%+.2f", r.Mood),
					entry)
			}
		case "time":
			rows, err := db.QueryTimeView(dbConn)
			if err != nil {
				return err
			}
			rows = tail(rows, viewLimit)
			for _, r := range rows {
				fmt.Printf("%s  prd %5.2fh  dst %5.2fh  neut %5.2fh\n",
					color.New(color.Faint).Sprint(r.Date),
					r.PrdHours, r.DstHours, r.NeutHours)
			}
		default:
			return fmt.Errorf("unknown view: %s", args[0])
		}
		return nil
	},
}

func tail[T any](rows []T, limit int) []T {
	if limit > 0 && len(rows) > limit {
		return rows[len(rows)-limit:]
	}
	return rows
}

func moodColor(mood float64) *color.Color {
	switch {
	case mood > 0.25:
		return color.New(color.FgGreen)
	case mood < -0.25:
		return color.New(color.FgRed)
	default:
		return color.New(color.FgYellow)
	}
}

func init() {
	viewCmd.Flags().IntVarP(&viewLimit, "limit", "n", 30, "show at most this many recent rows")
	rootCmd.AddCommand(viewCmd)
}
