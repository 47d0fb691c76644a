package testutil

import (
	"time"

	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/timer"
)

// PhaseRecordBuilder provides fluent API for creating test history rows.
type PhaseRecordBuilder struct {
	rec models.PhaseRecord
}

func NewPhaseRecord() *PhaseRecordBuilder {
	return &PhaseRecordBuilder{
		rec: models.PhaseRecord{
			Phase:       models.PhaseWork,
			Seconds:     timer.WorkSeconds,
			CompletedAt: time.Date(2024, 5, 6, 9, 25, 0, 0, time.UTC),
		},
	}
}

// Break switches the record to a break phase with its nominal length.
func (b *PhaseRecordBuilder) Break() *PhaseRecordBuilder {
	b.rec.Phase = models.PhaseBreak
	b.rec.Seconds = timer.BreakSeconds
	return b
}

func (b *PhaseRecordBuilder) At(t time.Time) *PhaseRecordBuilder {
	b.rec.CompletedAt = t
	return b
}

func (b *PhaseRecordBuilder) WithID(id int64) *PhaseRecordBuilder {
	b.rec.ID = id
	return b
}

func (b *PhaseRecordBuilder) Build() models.PhaseRecord {
	return b.rec
}

// Day returns n alternating work/break records ending at end, newest first,
// the order ListPhases returns.
func Day(end time.Time, n int) []models.PhaseRecord {
	out := make([]models.PhaseRecord, 0, n)
	at := end
	for i := 0; i < n; i++ {
		b := NewPhaseRecord().At(at).WithID(int64(n - i))
		if (n-1-i)%2 == 1 {
			b.Break()
		}
		rec := b.Build()
		out = append(out, rec)
		at = at.Add(-time.Duration(rec.Seconds) * time.Second)
	}
	return out
}
