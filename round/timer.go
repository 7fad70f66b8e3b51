package round

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// ErrTimeUp is the cause of a round context that ended because its timer
// expired.
var ErrTimeUp = errors.New("time's up")

// TimerState is where a Timer is in its lifecycle.
type TimerState int32

const (
	TimerRunning TimerState = iota
	TimerCancelled
	TimerExpired
)

func (s TimerState) String() string {
	switch s {
	case TimerRunning:
		return "running"
	case TimerCancelled:
		return "cancelled"
	case TimerExpired:
		return "expired"
	}
	return "unknown"
}

// Timer is the countdown for a single round. It runs in its own goroutine
// and ends either Cancelled (Stop was called first) or Expired (the budget
// ran out first), never both.
type Timer struct {
	clock    clockwork.Clock
	budget   time.Duration
	tick     time.Duration
	reporter Reporter

	state    atomic.Int32
	stop     chan struct{}
	g        errgroup.Group
	started  time.Time
	deadline time.Time

	ctx    context.Context
	cancel context.CancelCauseFunc
}

// NewTimer makes an unstarted countdown of budget that checks the clock every
// tick. reporter may be nil.
func NewTimer(clock clockwork.Clock, budget, tick time.Duration, reporter Reporter) *Timer {
	if tick <= 0 {
		tick = time.Second
	}
	return &Timer{
		clock:    clock,
		budget:   budget,
		tick:     tick,
		reporter: reporter,
		stop:     make(chan struct{}),
	}
}

// Start begins the countdown. The returned context ends when the timer
// expires (with cause ErrTimeUp), when the timer goroutine exits, or when
// ctx ends. Start must be called once.
func (t *Timer) Start(ctx context.Context) context.Context {
	t.ctx, t.cancel = context.WithCancelCause(ctx)
	t.started = t.clock.Now()
	t.deadline = t.started.Add(t.budget)
	t.g.Go(func() error {
		return t.run(ctx, t.deadline)
	})
	return t.ctx
}

func (t *Timer) run(parent context.Context, deadline time.Time) error {
	defer t.cancel(context.Canceled)
	for {
		remaining := deadline.Sub(t.clock.Now())
		if remaining <= 0 {
			t.expire()
			return nil
		}
		log.Debug().Dur("remaining", remaining).Msg("round-timer-tick")
		wait := min(t.tick, remaining)
		tm := t.clock.NewTimer(wait)
		select {
		case <-t.stop:
			tm.Stop()
			log.Debug().Msg("round-timer-cancelled")
			return nil
		case <-parent.Done():
			tm.Stop()
			t.state.CompareAndSwap(int32(TimerRunning), int32(TimerCancelled))
			return parent.Err()
		case <-tm.Chan():
		}
	}
}

func (t *Timer) expire() {
	if !t.state.CompareAndSwap(int32(TimerRunning), int32(TimerExpired)) {
		return
	}
	log.Debug().Msg("round-timer-expired")
	t.cancel(ErrTimeUp)
	if t.reporter != nil {
		t.reporter.TimeUp()
	}
}

// Stop cancels a running timer. It reports whether this call did the
// cancelling; calling it again, or after expiry, is a no-op. Once the
// deadline has been reached Stop no longer cancels, and the timer goroutine
// goes on to expire.
func (t *Timer) Stop() bool {
	if !t.deadline.IsZero() && !t.clock.Now().Before(t.deadline) {
		log.Debug().Msg("round-timer-stop-at-deadline")
		return false
	}
	if !t.state.CompareAndSwap(int32(TimerRunning), int32(TimerCancelled)) {
		return false
	}
	close(t.stop)
	return true
}

// Wait blocks until the timer goroutine has exited. It returns the parent
// context's error if that is what ended the timer.
func (t *Timer) Wait() error {
	return t.g.Wait()
}

// State is the current lifecycle state.
func (t *Timer) State() TimerState {
	return TimerState(t.state.Load())
}

// Expired reports whether the budget ran out before Stop.
func (t *Timer) Expired() bool {
	return t.State() == TimerExpired
}

// StartedAt is the clock time Start was called.
func (t *Timer) StartedAt() time.Time {
	return t.started
}
