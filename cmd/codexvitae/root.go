// ABOUTME: Root Cobra command for the codexvitae CLI.
// ABOUTME: Opens config and database in PersistentPre/PostRunE.
package main

import (
	"database/sql"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/cbatts/codexvitae/internal/config"
	"github.com/cbatts/codexvitae/internal/db"
)

var (
	cfg    *config.Config
	dbConn *sql.DB
	logger *charmlog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "codexvitae",
	Short: "Personal life-log ETL",
	Long: `Codexvitae pulls a personal quantified-self archive into one SQLite
database: handwritten journal emails, weekly diet reports, RescueTime
device time, Exist.io extracts, and hand-kept journal CSVs.

Every source lands in its own date-keyed table; two views unify them:

  journal_view   date, mood (normalized to [-1, 1]), entry
  time_view      date, productive/distracting/neutral hours

QUICK START:

  $ codexvitae init                     # Create the database
  $ codexvitae backfill --extract ~/exist_full_extract
  $ codexvitae sync                     # Incremental load, last two weeks
  $ codexvitae view journal             # Inspect the unified journal
  $ codexvitae export -o ./csv          # Views as CSV for the chart renderer

CONFIGURATION:

  Settings live in ~/.config/codexvitae/config.json (see 'codexvitae init').
  Secrets come from the environment or a .env file in the working directory:

    RESCUETIME_API_KEY   RescueTime API key
    GMAIL_TOKEN_PATH     OAuth2 token JSON for the Gmail API`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional; absence is the common case.
		_ = godotenv.Load()

		logger = charmlog.NewWithOptions(os.Stderr, charmlog.Options{
			ReportTimestamp: true,
		})

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		dbConn, err = db.InitDB(cfg.GetDBPath())
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if dbConn != nil {
			return dbConn.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
