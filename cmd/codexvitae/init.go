// ABOUTME: CLI command for initializing the database and config.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	initJournalQuery  string
	initReportQuery   string
	initBackfillFrom  string
	initExtractDir    string
	initMoodCharts    string
	initBulletJournal string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the database and save configuration",
	Long: `Create the database schema and persist source settings.

Examples:
  codexvitae init
  codexvitae init --journal-query "from:my@remarkable.com" \
    --report-query "from:no-reply@mynetdiary.com" \
    --from 2020-04-06 \
    --extract ~/exist_full_extract`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// The schema was created when PersistentPreRunE opened the database;
		// all that is left is persisting the settings.
		if initJournalQuery != "" {
			cfg.JournalQuery = initJournalQuery
		}
		if initReportQuery != "" {
			cfg.ReportQuery = initReportQuery
		}
		if initBackfillFrom != "" {
			cfg.BackfillFrom = initBackfillFrom
		}
		if initExtractDir != "" {
			cfg.ExtractDir = initExtractDir
		}
		if initMoodCharts != "" {
			cfg.MoodChartsCSV = initMoodCharts
		}
		if initBulletJournal != "" {
			cfg.BulletJournalCSV = initBulletJournal
		}
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		color.Green("✓ Database ready")
		fmt.Printf("  %s\n", cfg.GetDBPath())
		return nil
	},
}

func init() {
	initCmd.Flags().StringVar(&initJournalQuery, "journal-query", "", "Gmail query matching journal emails")
	initCmd.Flags().StringVar(&initReportQuery, "report-query", "", "Gmail query matching weekly diet reports")
	initCmd.Flags().StringVar(&initBackfillFrom, "from", "", "ISO date historical email loads start at")
	initCmd.Flags().StringVar(&initExtractDir, "extract", "", "Exist full-extract directory")
	initCmd.Flags().StringVar(&initMoodCharts, "mood-charts", "", "mood chart CSV path")
	initCmd.Flags().StringVar(&initBulletJournal, "bullet-journal", "", "bullet journal CSV path")
	rootCmd.AddCommand(initCmd)
}
