// Package timer implements the Pomodoro countdown: a two-phase state machine,
// the derived progress gradient, and the periodic tick source that drives it.
package timer

import (
	"time"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/models"
)

// Nominal durations in whole seconds.
var (
	WorkSeconds  = int(config.WorkDuration / time.Second)
	BreakSeconds = int(config.BreakDuration / time.Second)
)

// Nominal returns the full countdown length of p in seconds.
func Nominal(p models.Phase) int {
	if p == models.PhaseBreak {
		return BreakSeconds
	}
	return WorkSeconds
}

// TransitionKind classifies the effect of a single operation.
type TransitionKind int

const (
	TransitionNone TransitionKind = iota
	TransitionStarted
	TransitionPaused
	TransitionReset
	TransitionTicked
	TransitionCompleted
)

func (k TransitionKind) String() string {
	switch k {
	case TransitionStarted:
		return "started"
	case TransitionPaused:
		return "paused"
	case TransitionReset:
		return "reset"
	case TransitionTicked:
		return "ticked"
	case TransitionCompleted:
		return "completed"
	default:
		return "none"
	}
}

// Transition describes what an operation did. From and To differ only for
// TransitionCompleted.
type Transition struct {
	Kind TransitionKind
	From models.Phase
	To   models.Phase
}

// Machine holds the countdown state. It is not safe for concurrent use; a
// single event loop owns it.
type Machine struct {
	phase     models.Phase
	remaining int
	running   bool
}

// NewMachine returns a paused machine at the start of a work phase.
func NewMachine() *Machine {
	return &Machine{
		phase:     models.PhaseWork,
		remaining: WorkSeconds,
	}
}

func (m *Machine) Phase() models.Phase { return m.phase }
func (m *Machine) Remaining() int      { return m.remaining }
func (m *Machine) Running() bool       { return m.running }

// Toggle flips the running flag.
func (m *Machine) Toggle() Transition {
	m.running = !m.running
	kind := TransitionPaused
	if m.running {
		kind = TransitionStarted
	}
	return Transition{Kind: kind, From: m.phase, To: m.phase}
}

// Reset stops the countdown and refills the current phase.
func (m *Machine) Reset() Transition {
	m.running = false
	m.remaining = Nominal(m.phase)
	return Transition{Kind: TransitionReset, From: m.phase, To: m.phase}
}

// Tick advances the countdown by one second. It does nothing while paused.
// Reaching zero completes the phase within the same call.
func (m *Machine) Tick() Transition {
	if !m.running {
		return Transition{Kind: TransitionNone, From: m.phase, To: m.phase}
	}
	if m.remaining > 0 {
		m.remaining--
	}
	if m.remaining == 0 {
		return m.complete()
	}
	return Transition{Kind: TransitionTicked, From: m.phase, To: m.phase}
}

func (m *Machine) complete() Transition {
	from := m.phase
	m.running = false
	m.phase = from.Next()
	m.remaining = Nominal(m.phase)
	return Transition{Kind: TransitionCompleted, From: from, To: m.phase}
}

// Snapshot is an immutable view of the machine with derived display values.
type Snapshot struct {
	Phase     models.Phase
	Remaining int
	Running   bool
	Progress  float64
	Color     RGB
	Clock     string
}

// Snapshot captures the current state.
func (m *Machine) Snapshot() Snapshot {
	return Snapshot{
		Phase:     m.phase,
		Remaining: m.remaining,
		Running:   m.running,
		Progress:  Progress(m.phase, m.remaining),
		Color:     Gradient(m.phase, m.remaining),
		Clock:     FormatRemaining(m.remaining),
	}
}
