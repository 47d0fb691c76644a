package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/timer"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

type historyCmd struct {
	Limit int  `default:"${history_limit}" help:"Number of completions to show."`
	Clear bool `help:"Delete all recorded completions."`
}

func (c *historyCmd) Run(app *appContext) error {
	if c.Clear {
		if err := app.store.ClearHistory(app.ctx); err != nil {
			return err
		}
		fmt.Fprintln(app.stdout, "History cleared.")
		return nil
	}
	records, err := app.store.ListPhases(app.ctx, c.Limit)
	if err != nil {
		return err
	}
	totals, err := app.store.PhaseTotals(app.ctx, startOfDay(time.Now()))
	if err != nil {
		return err
	}
	fmt.Fprintln(app.stdout, renderHistory(records, totals))
	return nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func renderHistory(records []models.PhaseRecord, today models.PhaseTotals) string {
	var b strings.Builder
	if len(records) == 0 {
		b.WriteString("No completed phases yet.\n")
	} else {
		rows := make([][]string, 0, len(records))
		for _, r := range records {
			rows = append(rows, []string{
				strconv.FormatInt(r.ID, 10),
				r.Phase.Label(),
				timer.FormatRemaining(r.Seconds),
				r.CompletedAt.Local().Format("2006-01-02 15:04"),
			})
		}
		t := table.New().
			Border(lipgloss.RoundedBorder()).
			Headers("#", "Phase", "Length", "Completed").
			Rows(rows...)
		b.WriteString(t.String())
		b.WriteString("\n")
	}

	work, brk := today[models.PhaseWork], today[models.PhaseBreak]
	fmt.Fprintf(&b, "Today: %d work (%s), %d break (%s)",
		work.Count, timer.FormatDuration(time.Duration(work.Seconds)*time.Second),
		brk.Count, timer.FormatDuration(time.Duration(brk.Seconds)*time.Second))
	return b.String()
}
