package deck

import (
	"context"
	"sync"

	"github.com/alexisbeaulieu97/slidepreview/internal/domain/slide"
)

// Holder keeps the deck currently shown by a front-end, or the error that
// prevented loading it.
type Holder struct {
	mu      sync.RWMutex
	slides  slide.Sequence
	err     error
	version uint64
}

// NewHolder starts with slides.
func NewHolder(slides slide.Sequence) *Holder {
	return &Holder{slides: slides}
}

// Slides returns the current sequence. Callers must not mutate it.
func (h *Holder) Slides() slide.Sequence {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.slides
}

// Err returns the last load failure, cleared by Replace.
func (h *Holder) Err() error {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.err
}

// Replace swaps the deck and returns the new version.
func (h *Holder) Replace(slides slide.Sequence) uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.slides = slides
	h.err = nil
	h.version++
	return h.version
}

// Fail records a load failure. The previous slides stay available.
func (h *Holder) Fail(err error) uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.err = err
	h.version++
	return h.version
}

// Version counts replacements and failures.
func (h *Holder) Version() uint64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.version
}

// Reload loads from src into h.
func (h *Holder) Reload(ctx context.Context, src Source) (uint64, error) {
	slides, err := src.Load(ctx)
	if err != nil {
		return h.Fail(err), err
	}
	return h.Replace(slides), nil
}
