package models

import "time"

// Phase enumerates the two alternating countdown modes.
type Phase string

const (
	PhaseWork  Phase = "work"
	PhaseBreak Phase = "break"
)

// Valid reports whether p is a known phase.
func (p Phase) Valid() bool {
	return p == PhaseWork || p == PhaseBreak
}

// Next returns the phase that follows p.
func (p Phase) Next() Phase {
	if p == PhaseWork {
		return PhaseBreak
	}
	return PhaseWork
}

// Label is the heading shown above the countdown.
func (p Phase) Label() string {
	if p == PhaseBreak {
		return "Break Time"
	}
	return "Work Time"
}

// PhaseRecord is one completed phase in the history log.
type PhaseRecord struct {
	ID          int64
	Phase       Phase
	Seconds     int // nominal duration of the completed phase
	CompletedAt time.Time
}

// PhaseTotal aggregates completions of a single phase.
type PhaseTotal struct {
	Count   int
	Seconds int
}

// PhaseTotals aggregates history by phase.
type PhaseTotals map[Phase]PhaseTotal
