package preview

import (
	"github.com/alexisbeaulieu97/slidepreview/internal/animation"
	"github.com/alexisbeaulieu97/slidepreview/internal/domain/slide"
)

// ViewState is what the preview pane shows.
type ViewState int

const (
	StateLoading ViewState = iota
	StateFailed
	StateEmpty
	StateReady
)

// Tab selects the main pane.
type Tab int

const (
	TabPreview Tab = iota
	TabScript
)

// DeckLoadedMsg carries the result of a deck (re)load.
type DeckLoadedMsg struct {
	Slides slide.Sequence
	Err    error
}

// PhaseMsg reports a reveal phase change for activation Gen.
type PhaseMsg struct {
	Gen   uint64
	Phase animation.Phase
}

// FrameMsg advances the reveal spring of activation Gen by one frame.
type FrameMsg struct {
	Gen uint64
}

// CopyResetMsg fires when the copied indicator window has elapsed.
type CopyResetMsg struct{}
