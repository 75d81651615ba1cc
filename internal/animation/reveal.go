// Package animation holds the reveal state machine charts and progress bars use.
package animation

import (
	"sync"
	"time"
)

// Phase is the reveal state of one animated slide.
type Phase int

const (
	// Resting shows zero fill.
	Resting Phase = iota
	// ScheduledReveal waits for the delay timer.
	ScheduledReveal
	// Revealed shows the target fill; the backend interpolates toward it.
	Revealed
)

func (p Phase) String() string {
	switch p {
	case Resting:
		return "resting"
	case ScheduledReveal:
		return "scheduled"
	case Revealed:
		return "revealed"
	default:
		return "unknown"
	}
}

// Timer is a cancellable pending call.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type clock struct{}

func (clock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// SystemScheduler schedules with time.AfterFunc.
var SystemScheduler Scheduler = clock{}

// DefaultDelay is the pause between becoming visible and revealing.
const DefaultDelay = 100 * time.Millisecond

// Option configures a Reveal.
type Option func(*Reveal)

// WithScheduler replaces the system scheduler.
func WithScheduler(s Scheduler) Option {
	return func(r *Reveal) {
		if s != nil {
			r.sched = s
		}
	}
}

// WithDelay overrides DefaultDelay.
func WithDelay(d time.Duration) Option {
	return func(r *Reveal) { r.delay = d }
}

// OnChange registers a hook called after every phase change, outside the lock.
func OnChange(fn func(Phase)) Option {
	return func(r *Reveal) { r.onChange = fn }
}

// Reveal moves between Resting, ScheduledReveal and Revealed as the owning
// slide becomes visible or hidden.
type Reveal struct {
	mu       sync.Mutex
	sched    Scheduler
	delay    time.Duration
	phase    Phase
	timer    Timer
	token    uint64
	onChange func(Phase)
}

// New returns a resting Reveal.
func New(opts ...Option) *Reveal {
	r := &Reveal{sched: SystemScheduler, delay: DefaultDelay}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Phase returns the current phase.
func (r *Reveal) Phase() Phase {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.phase
}

// Revealed reports whether the reveal has fired.
func (r *Reveal) Revealed() bool {
	return r.Phase() == Revealed
}

// SetVisible drives the state machine. Becoming visible schedules the reveal,
// replacing any timer still pending. Becoming hidden cancels it and rests.
func (r *Reveal) SetVisible(visible bool) {
	r.mu.Lock()
	before := r.phase

	if !visible {
		r.cancelLocked()
		r.phase = Resting
	} else if r.phase != Revealed {
		r.cancelLocked()
		r.token++
		token := r.token
		r.timer = r.sched.AfterFunc(r.delay, func() { r.fire(token) })
		r.phase = ScheduledReveal
	}

	after := r.phase
	hook := r.onChange
	r.mu.Unlock()

	if hook != nil && before != after {
		hook(after)
	}
}

// Stop cancels any pending reveal and rests.
func (r *Reveal) Stop() {
	r.SetVisible(false)
}

func (r *Reveal) fire(token uint64) {
	r.mu.Lock()
	if token != r.token || r.phase != ScheduledReveal {
		r.mu.Unlock()
		return
	}
	r.phase = Revealed
	r.timer = nil
	hook := r.onChange
	r.mu.Unlock()

	if hook != nil {
		hook(Revealed)
	}
}

func (r *Reveal) cancelLocked() {
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
	// Bumping the token makes a timer that already fired but has not yet
	// taken the lock a no-op.
	r.token++
}
