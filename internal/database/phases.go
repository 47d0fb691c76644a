package database

import (
	"context"
	"fmt"
	"time"

	"github.com/akyairhashvil/pomo/internal/models"
)

// RecordPhase appends a completed phase and returns its row ID.
func (d *Database) RecordPhase(ctx context.Context, rec models.PhaseRecord) (int64, error) {
	if !rec.Phase.Valid() {
		return 0, wrapPhaseErr("record", 0, fmt.Errorf("%w: %q", ErrInvalidPhase, rec.Phase))
	}
	if rec.CompletedAt.IsZero() {
		rec.CompletedAt = time.Now()
	}
	res, err := d.DB.ExecContext(ctx,
		"INSERT INTO phases (phase, seconds, completed_at) VALUES (?, ?, ?)",
		string(rec.Phase), rec.Seconds, toUnix(rec.CompletedAt))
	if err != nil {
		return 0, wrapPhaseErr("record", 0, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, wrapPhaseErr("record", 0, err)
	}
	return id, nil
}

// ListPhases returns the most recent completions, newest first.
func (d *Database) ListPhases(ctx context.Context, limit int) ([]models.PhaseRecord, error) {
	if limit <= 0 {
		return nil, wrapPhaseErr("list", 0, ErrInvalidLimit)
	}
	rows, err := d.DB.QueryContext(ctx, `
		SELECT id, phase, seconds, completed_at
		FROM phases
		ORDER BY completed_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, wrapPhaseErr("list", 0, err)
	}
	defer rows.Close()

	var out []models.PhaseRecord
	for rows.Next() {
		var (
			rec   models.PhaseRecord
			phase string
			at    int64
		)
		if err := rows.Scan(&rec.ID, &phase, &rec.Seconds, &at); err != nil {
			return nil, wrapPhaseErr("list", 0, err)
		}
		rec.Phase = models.Phase(phase)
		rec.CompletedAt = fromUnix(at)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapPhaseErr("list", 0, err)
	}
	return out, nil
}

// PhaseTotals aggregates completions at or after since.
func (d *Database) PhaseTotals(ctx context.Context, since time.Time) (models.PhaseTotals, error) {
	rows, err := d.DB.QueryContext(ctx, `
		SELECT phase, COUNT(*), COALESCE(SUM(seconds), 0)
		FROM phases
		WHERE completed_at >= ?
		GROUP BY phase`, toUnix(since))
	if err != nil {
		return nil, wrapPhaseErr("totals", 0, err)
	}
	defer rows.Close()

	totals := models.PhaseTotals{}
	for rows.Next() {
		var (
			phase string
			t     models.PhaseTotal
		)
		if err := rows.Scan(&phase, &t.Count, &t.Seconds); err != nil {
			return nil, wrapPhaseErr("totals", 0, err)
		}
		totals[models.Phase(phase)] = t
	}
	if err := rows.Err(); err != nil {
		return nil, wrapPhaseErr("totals", 0, err)
	}
	return totals, nil
}

// ClearHistory deletes every recorded phase.
func (d *Database) ClearHistory(ctx context.Context) error {
	_, err := d.DB.ExecContext(ctx, "DELETE FROM phases")
	return wrapPhaseErr("clear", 0, err)
}
