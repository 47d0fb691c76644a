package timer

import (
	"context"
	"sync"
	"time"

	"github.com/akyairhashvil/pomo/internal/clock"
)

// Tick is one periodic trigger, stamped with the subscription that produced
// it so consumers can drop ticks from a subscription they already released.
type Tick struct {
	Sub uint64
	At  time.Time
}

// Subscription is a live periodic trigger. It owns one ticker and one
// forwarding goroutine; both are gone once Done is closed.
type Subscription struct {
	ID uint64
	C  <-chan Tick

	cancel context.CancelFunc
	done   chan struct{}
}

// Done is closed after the forwarding goroutine has exited and C is closed.
func (s *Subscription) Done() <-chan struct{} { return s.done }

func (s *Subscription) released() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

func (s *Subscription) release() {
	s.cancel()
	<-s.done
}

func (s *Subscription) forward(ctx context.Context, ticker clock.Ticker, out chan<- Tick) {
	defer close(s.done)
	defer close(out)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case at := <-ticker.Chan():
			select {
			case out <- Tick{Sub: s.ID, At: at}:
			case <-ctx.Done():
				return
			}
		}
	}
}

// TickSource hands out at most one live Subscription at a time.
type TickSource struct {
	clock    clock.Clock
	interval time.Duration

	mu   sync.Mutex
	seq  uint64
	live *Subscription
}

// NewTickSource returns a source firing every interval on c.
func NewTickSource(c clock.Clock, interval time.Duration) *TickSource {
	if c == nil {
		c = clock.System
	}
	return &TickSource{clock: c, interval: interval}
}

// Start acquires the periodic trigger. If one is already live it is returned
// unchanged. Cancelling ctx releases the subscription as Stop would.
func (s *TickSource) Start(ctx context.Context) *Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.live != nil && !s.live.released() {
		return s.live
	}

	s.seq++
	subCtx, cancel := context.WithCancel(ctx)
	out := make(chan Tick)
	sub := &Subscription{
		ID:     s.seq,
		C:      out,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	ticker := s.clock.NewTicker(s.interval)
	go sub.forward(subCtx, ticker, out)
	s.live = sub
	return sub
}

// Stop releases the live subscription and waits for its goroutine to exit.
// It is safe to call when nothing is live.
func (s *TickSource) Stop() {
	s.mu.Lock()
	sub := s.live
	s.live = nil
	s.mu.Unlock()
	if sub != nil {
		sub.release()
	}
}

// Active reports whether a subscription is live.
func (s *TickSource) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.live != nil && !s.live.released()
}

// Current returns the live subscription, or nil.
func (s *TickSource) Current() *Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.live == nil || s.live.released() {
		return nil
	}
	return s.live
}

// Sync acquires the trigger while running and releases it otherwise. It
// returns the live subscription, or nil when released.
func (s *TickSource) Sync(ctx context.Context, running bool) *Subscription {
	if running {
		return s.Start(ctx)
	}
	s.Stop()
	return nil
}
