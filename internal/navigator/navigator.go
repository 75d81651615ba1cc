// Package navigator tracks the active slide of a deck.
package navigator

import (
	"fmt"

	"github.com/alexisbeaulieu97/slidepreview/internal/domain/slide"
	"github.com/alexisbeaulieu97/slidepreview/internal/domain/style"
	"github.com/alexisbeaulieu97/slidepreview/internal/render"
)

// Navigator holds the active index over an immutable sequence. Next and Prev
// wrap; GoTo rejects indices outside the deck.
type Navigator struct {
	slides slide.Sequence
	active int
}

// Thumbnail is one entry of the thumbnail strip.
type Thumbnail struct {
	Index  int
	Active bool
	Tree   render.Tree
}

// New returns a navigator positioned on the first slide.
func New(slides slide.Sequence) *Navigator {
	return &Navigator{slides: slides}
}

// Len returns the number of slides.
func (n *Navigator) Len() int {
	return len(n.slides)
}

// Index returns the active index.
func (n *Navigator) Index() int {
	return n.active
}

// Slides returns the sequence being navigated.
func (n *Navigator) Slides() slide.Sequence {
	return n.slides
}

// Next advances, wrapping from the last slide to the first.
func (n *Navigator) Next() int {
	if len(n.slides) > 0 {
		n.active = (n.active + 1) % len(n.slides)
	}
	return n.active
}

// Prev steps back, wrapping from the first slide to the last.
func (n *Navigator) Prev() int {
	if len(n.slides) > 0 {
		n.active = (n.active - 1 + len(n.slides)) % len(n.slides)
	}
	return n.active
}

// GoTo jumps to index i. An index outside the deck leaves the position
// unchanged and returns false.
func (n *Navigator) GoTo(i int) bool {
	if i < 0 || i >= len(n.slides) {
		return false
	}
	n.active = i
	return true
}

// Current returns the active slide; false when the deck is empty.
func (n *Navigator) Current() (slide.Slide, bool) {
	if len(n.slides) == 0 {
		return nil, false
	}
	return n.slides[n.active], true
}

// ShowControls reports whether prev/next controls and thumbnails are shown.
func (n *Navigator) ShowControls() bool {
	return len(n.slides) > 1
}

// Position returns the 1-based "n / total" label.
func (n *Navigator) Position() string {
	if len(n.slides) == 0 {
		return "0 / 0"
	}
	return fmt.Sprintf("%d / %d", n.active+1, len(n.slides))
}

// Active renders the active slide with its reveal armed.
func (n *Navigator) Active(cfg style.Configuration) (render.Tree, bool) {
	s, ok := n.Current()
	if !ok {
		return render.Tree{}, false
	}
	return render.Render(s, cfg, true), true
}

// Thumbnails renders every slide once at rest, marking the active one.
func (n *Navigator) Thumbnails(cfg style.Configuration) []Thumbnail {
	out := make([]Thumbnail, len(n.slides))
	for i, s := range n.slides {
		out[i] = Thumbnail{
			Index:  i,
			Active: i == n.active,
			Tree:   render.Render(s, cfg, false),
		}
	}
	return out
}
