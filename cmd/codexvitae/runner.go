// ABOUTME: Shared runner construction for the load commands.
// ABOUTME: Wires Gmail and RescueTime clients from config and environment.
package main

import (
	"context"

	"github.com/cbatts/codexvitae/internal/config"
	"github.com/cbatts/codexvitae/internal/etl"
	"github.com/cbatts/codexvitae/internal/gmail"
	"github.com/cbatts/codexvitae/internal/rescuetime"
)

// newRunner builds an ETL runner from whatever credentials are present.
// Missing credentials leave that client nil; the runner skips nil sources,
// so a partially configured install still loads what it can.
func newRunner(ctx context.Context) *etl.Runner {
	r := &etl.Runner{
		DB:         dbConn,
		Log:        logger,
		JournalQry: cfg.JournalQuery,
		ReportQry:  cfg.ReportQuery,
	}

	if path := config.GmailTokenPath(); path != "" && cfg.JournalQuery != "" {
		ts, err := gmail.TokenFromFile(path)
		if err != nil {
			logger.Warn("gmail token unusable, skipping email sources", "err", err)
		} else {
			r.Mail = gmail.NewClient(ctx, ts)
		}
	}

	if key := config.RescueTimeKey(); key != "" {
		r.Feed = rescuetime.NewClient(key)
	}

	return r
}
