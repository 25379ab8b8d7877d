// ABOUTME: CLI command for the full historical load.
// ABOUTME: Loads Exist extracts, journal CSVs, email history, and RescueTime.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cbatts/codexvitae/internal/config"
	"github.com/cbatts/codexvitae/internal/etl"
	"github.com/cbatts/codexvitae/internal/models"
)

var (
	backfillFrom    string
	backfillTo      string
	backfillExtract string
	backfillMood    string
	backfillBullet  string
)

var backfillCmd = &cobra.Command{
	Use:   "backfill",
	Short: "Load every source over its full history",
	Long: `Run a full historical load. Email history is fetched in date-bounded
windows to stay under the provider's page cap. Sources are independent:
one failing is recorded and the rest still load.

Examples:
  codexvitae backfill
  codexvitae backfill --from 2020-04-06 --extract ~/exist_full_extract`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := etl.BackfillOptions{
			ExtractDir:       firstNonEmpty(backfillExtract, cfg.ExtractDir),
			MoodChartsCSV:    firstNonEmpty(backfillMood, cfg.MoodChartsCSV),
			BulletJournalCSV: firstNonEmpty(backfillBullet, cfg.BulletJournalCSV),
		}
		opts.ExtractDir = config.ExpandPath(opts.ExtractDir)
		opts.MoodChartsCSV = config.ExpandPath(opts.MoodChartsCSV)
		opts.BulletJournalCSV = config.ExpandPath(opts.BulletJournalCSV)

		fromStr := firstNonEmpty(backfillFrom, cfg.BackfillFrom)
		if fromStr != "" {
			from, err := time.Parse(models.DateFormat, fromStr)
			if err != nil {
				return fmt.Errorf("invalid --from date: %s", fromStr)
			}
			opts.From = from
		}
		opts.To = time.Now().AddDate(0, 0, 1)
		if backfillTo != "" {
			to, err := time.Parse(models.DateFormat, backfillTo)
			if err != nil {
				return fmt.Errorf("invalid --to date: %s", backfillTo)
			}
			opts.To = to
		}

		runner := newRunner(cmd.Context())
		if err := runner.Backfill(cmd.Context(), opts); err != nil {
			color.Red("✗ Backfill finished with failures")
			return err
		}

		color.Green("✓ Backfill complete")
		return nil
	},
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func init() {
	backfillCmd.Flags().StringVar(&backfillFrom, "from", "", "ISO start date for email history")
	backfillCmd.Flags().StringVar(&backfillTo, "to", "", "ISO end date for email history (default tomorrow)")
	backfillCmd.Flags().StringVar(&backfillExtract, "extract", "", "Exist full-extract directory")
	backfillCmd.Flags().StringVar(&backfillMood, "mood-charts", "", "mood chart CSV path")
	backfillCmd.Flags().StringVar(&backfillBullet, "bullet-journal", "", "bullet journal CSV path")
	rootCmd.AddCommand(backfillCmd)
}
