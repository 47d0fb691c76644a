package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/report"
	"github.com/akyairhashvil/pomo/internal/util"
)

type reportCmd struct {
	Out   string `type:"path" help:"Output PDF path (defaults to the documents directory)."`
	Days  int    `default:"7" help:"Totals window in days."`
	Limit int    `default:"200" help:"Maximum completions listed."`
}

func (c *reportCmd) Run(app *appContext) error {
	now := time.Now()
	out := c.Out
	if out == "" {
		out = filepath.Join(util.ReportsDir(config.AppName), report.FileName(now))
	}
	days := c.Days
	if days < 1 {
		days = 1
	}
	since := startOfDay(now).AddDate(0, 0, -(days - 1))

	records, err := app.store.ListPhases(app.ctx, c.Limit)
	if err != nil {
		return err
	}
	totals, err := app.store.PhaseTotals(app.ctx, since)
	if err != nil {
		return err
	}
	data := report.Data{
		GeneratedAt: now,
		Since:       since,
		Totals:      totals,
		Records:     records,
	}
	if err := report.SavePDF(out, data); err != nil {
		return err
	}
	util.Logger.Info().Str("path", out).Int("records", len(records)).Msg("report written")
	fmt.Fprintf(app.stdout, "Report written to %s\n", out)
	return nil
}
