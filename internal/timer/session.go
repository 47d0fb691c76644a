package timer

import (
	"context"
	"errors"
	"time"

	"github.com/akyairhashvil/pomo/internal/clock"
	"github.com/akyairhashvil/pomo/internal/models"
)

// ErrSessionClosed is returned by Send after Run has returned.
var ErrSessionClosed = errors.New("timer session closed")

// Intent is a user request forwarded into the session.
type Intent int

const (
	IntentToggle Intent = iota + 1
	IntentReset
)

func (i Intent) String() string {
	switch i {
	case IntentToggle:
		return "toggle"
	case IntentReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Completion describes a finished phase.
type Completion struct {
	From    models.Phase
	To      models.Phase
	Seconds int
	At      time.Time
}

// Session serializes intents and ticks onto a single Machine. Only the
// goroutine running Run touches the machine.
type Session struct {
	machine    *Machine
	ticks      *TickSource
	clock      clock.Clock
	onComplete func(Completion)

	intents chan Intent
	updates chan Snapshot
	stopped chan struct{}
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithCompletionHook registers fn to run on the session goroutine after each
// completed phase.
func WithCompletionHook(fn func(Completion)) SessionOption {
	return func(s *Session) { s.onComplete = fn }
}

// WithClock sets the clock used to stamp completions.
func WithClock(c clock.Clock) SessionOption {
	return func(s *Session) { s.clock = c }
}

// WithMachine replaces the initial machine.
func WithMachine(m *Machine) SessionOption {
	return func(s *Session) { s.machine = m }
}

// NewSession builds a session around ticks.
func NewSession(ticks *TickSource, opts ...SessionOption) *Session {
	s := &Session{
		machine: NewMachine(),
		ticks:   ticks,
		clock:   clock.System,
		intents: make(chan Intent),
		updates: make(chan Snapshot),
		stopped: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Updates delivers a snapshot on start and after every state change. The
// consumer must drain it; it is closed when Run returns.
func (s *Session) Updates() <-chan Snapshot { return s.updates }

// Send forwards an intent to the running session.
func (s *Session) Send(ctx context.Context, in Intent) error {
	select {
	case s.intents <- in:
		return nil
	case <-s.stopped:
		return ErrSessionClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run processes intents and ticks until ctx is done. The tick subscription is
// released before Run returns.
func (s *Session) Run(ctx context.Context) error {
	defer close(s.updates)
	defer close(s.stopped)
	defer s.ticks.Stop()

	if err := s.publish(ctx); err != nil {
		return err
	}

	var sub *Subscription
	for {
		var tickC <-chan Tick
		if sub != nil {
			tickC = sub.C
		}

		var tr Transition
		select {
		case <-ctx.Done():
			return ctx.Err()
		case in := <-s.intents:
			tr = s.apply(in)
		case t, ok := <-tickC:
			if !ok {
				sub = nil
				continue
			}
			if t.Sub != sub.ID {
				continue
			}
			tr = s.machine.Tick()
		}

		if tr.Kind == TransitionCompleted && s.onComplete != nil {
			s.onComplete(Completion{
				From:    tr.From,
				To:      tr.To,
				Seconds: Nominal(tr.From),
				At:      s.clock.Now(),
			})
		}
		sub = s.ticks.Sync(ctx, s.machine.Running())
		if tr.Kind == TransitionNone {
			continue
		}
		if err := s.publish(ctx); err != nil {
			return err
		}
	}
}

func (s *Session) apply(in Intent) Transition {
	switch in {
	case IntentToggle:
		return s.machine.Toggle()
	case IntentReset:
		return s.machine.Reset()
	default:
		return Transition{Kind: TransitionNone, From: s.machine.Phase(), To: s.machine.Phase()}
	}
}

func (s *Session) publish(ctx context.Context) error {
	select {
	case s.updates <- s.machine.Snapshot():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
