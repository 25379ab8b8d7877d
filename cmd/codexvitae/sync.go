// ABOUTME: CLI command for the incremental load.
// ABOUTME: Covers the recent window across email and RescueTime sources.
package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Incremental load over the last two weeks",
	Long: `Fetch new journal emails, diet reports, and RescueTime summaries for
the recent window and upsert them. Re-running is safe: rows are keyed by
date, so overlap replaces instead of duplicating.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		runner := newRunner(cmd.Context())
		if runner.Mail == nil && runner.Feed == nil {
			color.Yellow("No sources configured; set GMAIL_TOKEN_PATH or RESCUETIME_API_KEY")
			return nil
		}

		if err := runner.Sync(cmd.Context()); err != nil {
			color.Red("✗ Sync finished with failures")
			return err
		}
		color.Green("✓ Sync complete")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}
