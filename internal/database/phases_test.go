package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/testutil"
)

func TestRecordAndListPhases(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	base := time.Date(2024, 5, 6, 9, 0, 0, 0, time.UTC)

	records := []models.PhaseRecord{
		{Phase: models.PhaseWork, Seconds: 1500, CompletedAt: base},
		{Phase: models.PhaseBreak, Seconds: 300, CompletedAt: base.Add(5 * time.Minute)},
		{Phase: models.PhaseWork, Seconds: 1500, CompletedAt: base.Add(30 * time.Minute)},
	}
	for _, rec := range records {
		id, err := db.RecordPhase(ctx, rec)
		if err != nil {
			t.Fatalf("RecordPhase failed: %v", err)
		}
		if id <= 0 {
			t.Fatalf("expected positive id, got %d", id)
		}
	}

	got, err := db.ListPhases(ctx, 2)
	if err != nil {
		t.Fatalf("ListPhases failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if !got[0].CompletedAt.Equal(base.Add(30*time.Minute)) || got[0].Phase != models.PhaseWork {
		t.Fatalf("newest row = %+v", got[0])
	}
	if got[1].Phase != models.PhaseBreak || got[1].Seconds != 300 {
		t.Fatalf("second row = %+v", got[1])
	}
}

func TestRecordPhaseRejectsUnknownPhase(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	_, err := db.RecordPhase(ctx, models.PhaseRecord{Phase: "nap", Seconds: 60})
	if !errors.Is(err, ErrInvalidPhase) {
		t.Fatalf("err = %v, want ErrInvalidPhase", err)
	}
	var opErr *OpError
	if !errors.As(err, &opErr) || opErr.Op != "record" || opErr.Resource != "phase" {
		t.Fatalf("expected OpError, got %#v", err)
	}
}

func TestRecordPhaseStampsZeroTime(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	before := time.Now().Add(-time.Second)

	if _, err := db.RecordPhase(ctx, models.PhaseRecord{Phase: models.PhaseBreak, Seconds: 300}); err != nil {
		t.Fatalf("RecordPhase failed: %v", err)
	}
	got, err := db.ListPhases(ctx, 1)
	if err != nil {
		t.Fatalf("ListPhases failed: %v", err)
	}
	if got[0].CompletedAt.Before(before.Truncate(time.Second)) {
		t.Fatalf("CompletedAt = %v, expected now", got[0].CompletedAt)
	}
}

func TestListPhasesRejectsNonPositiveLimit(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	if _, err := db.ListPhases(ctx, 0); !errors.Is(err, ErrInvalidLimit) {
		t.Fatalf("err = %v, want ErrInvalidLimit", err)
	}
}

func TestPhaseTotalsSince(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	day := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)

	seed := []models.PhaseRecord{
		{Phase: models.PhaseWork, Seconds: 1500, CompletedAt: day.Add(-time.Hour)},
		{Phase: models.PhaseWork, Seconds: 1500, CompletedAt: day.Add(9 * time.Hour)},
		{Phase: models.PhaseWork, Seconds: 1500, CompletedAt: day.Add(10 * time.Hour)},
		{Phase: models.PhaseBreak, Seconds: 300, CompletedAt: day.Add(11 * time.Hour)},
	}
	for _, rec := range seed {
		if _, err := db.RecordPhase(ctx, rec); err != nil {
			t.Fatalf("RecordPhase failed: %v", err)
		}
	}

	totals, err := db.PhaseTotals(ctx, day)
	if err != nil {
		t.Fatalf("PhaseTotals failed: %v", err)
	}
	if w := totals[models.PhaseWork]; w.Count != 2 || w.Seconds != 3000 {
		t.Fatalf("work totals = %+v", w)
	}
	if b := totals[models.PhaseBreak]; b.Count != 1 || b.Seconds != 300 {
		t.Fatalf("break totals = %+v", b)
	}
}

func TestClearHistory(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	if _, err := db.RecordPhase(ctx, models.PhaseRecord{Phase: models.PhaseWork, Seconds: 1500}); err != nil {
		t.Fatalf("RecordPhase failed: %v", err)
	}
	if err := db.ClearHistory(ctx); err != nil {
		t.Fatalf("ClearHistory failed: %v", err)
	}
	got, err := db.ListPhases(ctx, 10)
	if err != nil {
		t.Fatalf("ListPhases failed: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty history, got %d rows", len(got))
	}
}

func TestListPhasesMatchesRecordedDay(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	want := testutil.Day(time.Date(2024, 5, 6, 12, 0, 0, 0, time.UTC), 4)
	for i := len(want) - 1; i >= 0; i-- {
		rec := want[i]
		rec.ID = 0
		if _, err := db.RecordPhase(ctx, rec); err != nil {
			t.Fatalf("RecordPhase failed: %v", err)
		}
	}

	got, err := db.ListPhases(ctx, 10)
	if err != nil {
		t.Fatalf("ListPhases failed: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		g, w := got[i], want[i]
		if g.ID != w.ID || g.Phase != w.Phase || g.Seconds != w.Seconds || !g.CompletedAt.Equal(w.CompletedAt) {
			t.Fatalf("row %d = %+v, want %+v", i, g, w)
		}
	}
}
