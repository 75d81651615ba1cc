package script

import (
	"sync"
	"time"
)

// CopiedWindow is how long the "copied" state lasts after a copy.
const CopiedWindow = 2 * time.Second

// CopyFeedback tracks the transient "copied" indicator. Each copy restarts
// the window.
type CopyFeedback struct {
	mu     sync.Mutex
	until  time.Time
	window time.Duration
	now    func() time.Time
}

// NewCopyFeedback returns feedback with the default window. A nil clock uses time.Now.
func NewCopyFeedback(now func() time.Time) *CopyFeedback {
	if now == nil {
		now = time.Now
	}
	return &CopyFeedback{window: CopiedWindow, now: now}
}

// Mark records a successful copy and returns how long the indicator stays on.
func (f *CopyFeedback) Mark() time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.until = f.now().Add(f.window)
	return f.window
}

// Copied reports whether the indicator is still on.
func (f *CopyFeedback) Copied() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now().Before(f.until)
}

// Label is the copy button caption for the current state.
func (f *CopyFeedback) Label() string {
	if f.Copied() {
		return "Copied!"
	}
	return "Copy"
}
