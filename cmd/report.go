package cmd

import (
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"awardlog/importer"
	"awardlog/internal/classify"
	"awardlog/output"
	"awardlog/report"
)

type reportOptions struct {
	InputPath       string
	FirstNameFilter string
	TimeOutput      string
	EmailOutput     string
}

// runReports writes the email report and then the time report. A failure
// while classifying leaves both files untouched; a failure after the email
// report is written leaves it in place.
func runReports(opts reportOptions, now time.Time) error {
	log := zap.L().With(zap.String("command", "awardlog"), zap.String("run_id", uuid.NewString()))

	result, err := importer.Run(opts.InputPath)
	if err != nil {
		return eris.Wrapf(err, "import roster %s", opts.InputPath)
	}

	people := report.Filter(result.People, opts.FirstNameFilter)
	log.Info("roster loaded",
		zap.String("input", opts.InputPath),
		zap.String("filter", opts.FirstNameFilter),
		zap.Int("rows", result.RowsRead),
		zap.Int("matched", len(people)),
	)

	stale, err := classify.Stale(people, now)
	if err != nil {
		return eris.Wrap(err, "classify last logs")
	}
	identities := report.Notifications(stale)
	if err := output.WriteEmailReport(opts.EmailOutput, identities); err != nil {
		return eris.Wrap(err, "write email report")
	}
	log.Info("email report written",
		zap.String("path", opts.EmailOutput),
		zap.Int("stale", len(stale)),
		zap.Int("lines", len(identities)),
	)

	entries := report.AggregateTime(people)
	if err := output.WriteTimeReport(opts.TimeOutput, entries); err != nil {
		return eris.Wrap(err, "write time report")
	}
	log.Info("time report written",
		zap.String("path", opts.TimeOutput),
		zap.Int("lines", len(entries)),
	)

	return nil
}
