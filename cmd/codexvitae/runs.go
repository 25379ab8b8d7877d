// ABOUTME: CLI command for inspecting the ETL run log.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cbatts/codexvitae/internal/db"
	"github.com/cbatts/codexvitae/internal/models"
)

var runsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show recent ETL runs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		runs, err := db.ListRuns(dbConn, runsLimit)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Println("No runs recorded yet.")
			return nil
		}

		for _, r := range runs {
			status := color.GreenString("ok")
			if r.Status == models.RunStatusFailed {
				status = color.RedString("failed")
			}
			fmt.Printf("%s  %-8s %-15s %5d rows  %s\n",
				color.New(color.Faint).Sprint(r.StartedAt.Format("2006-01-02 15:04:05")),
				r.ID.String()[:8], r.Source, r.RowsWritten, status)
			if r.Error != "" {
				fmt.Printf("           %s\n", color.New(color.Faint).Sprint(r.Error))
			}
		}
		return nil
	},
}

func init() {
	runsCmd.Flags().IntVarP(&runsLimit, "limit", "n", 20, "show at most this many runs")
	rootCmd.AddCommand(runsCmd)
}
