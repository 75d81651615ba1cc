// Package preview is the terminal deck previewer.
package preview

import (
	"sync/atomic"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"

	"github.com/alexisbeaulieu97/slidepreview/internal/animation"
	"github.com/alexisbeaulieu97/slidepreview/internal/deck"
	"github.com/alexisbeaulieu97/slidepreview/internal/domain/style"
	"github.com/alexisbeaulieu97/slidepreview/internal/editor"
	"github.com/alexisbeaulieu97/slidepreview/internal/logger"
	"github.com/alexisbeaulieu97/slidepreview/internal/navigator"
	"github.com/alexisbeaulieu97/slidepreview/internal/script"
	"github.com/alexisbeaulieu97/slidepreview/internal/themes"
)

// MultiplierStep is how far one +/- key press moves the font size multiplier.
const MultiplierStep = 0.05

// Options wires a Model to its collaborators.
type Options struct {
	Source    deck.Source
	Holder    *deck.Holder
	Store     *editor.Store
	Catalog   *themes.Catalog
	Clipboard *script.Clipboard
	Feedback  *script.CopyFeedback
	// Scheduler drives reveal delays; nil uses the system clock.
	Scheduler animation.Scheduler
	Logger    *logger.Logger
}

// Model is the previewer state.
type Model struct {
	source   deck.Source
	holder   *deck.Holder
	store    *editor.Store
	catalog  *themes.Catalog
	clip     *script.Clipboard
	feedback *script.CopyFeedback
	sched    animation.Scheduler
	log      *logger.Logger

	keys    keyMap
	help    help.Model
	spinner spinner.Model
	script  viewport.Model

	state  ViewState
	tab    Tab
	err    error
	status string
	code   string
	nav    *navigator.Navigator

	// Reveal state of the active slide. gen increments on every activation so
	// messages from an earlier slide are ignored; active mirrors it for the
	// reveal hook, which runs off the update loop.
	reveal   *animation.Reveal
	events   chan PhaseMsg
	active   *atomic.Uint64
	gen      uint64
	phase    animation.Phase
	spring   harmonica.Spring
	progress float64
	velocity float64

	width  int
	height int
}

// NewModel returns a model in the loading state.
func NewModel(opts Options) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = titleStyle

	holder := opts.Holder
	if holder == nil {
		holder = deck.NewHolder(nil)
	}
	feedback := opts.Feedback
	if feedback == nil {
		feedback = script.NewCopyFeedback(nil)
	}
	clip := opts.Clipboard
	if clip == nil {
		clip = script.NewClipboard(nil)
	}
	sched := opts.Scheduler
	if sched == nil {
		sched = animation.SystemScheduler
	}

	return Model{
		source:   opts.Source,
		holder:   holder,
		store:    opts.Store,
		catalog:  opts.Catalog,
		clip:     clip,
		feedback: feedback,
		sched:    sched,
		log:      opts.Logger.Named("preview"),
		keys:     defaultKeyMap(),
		help:     help.New(),
		spinner:  s,
		script:   viewport.New(0, 0),
		state:    StateLoading,
		nav:      navigator.New(nil),
		events:   make(chan PhaseMsg, 1),
		active:   new(atomic.Uint64),
	}
}

// Init starts the spinner, the first deck load and the reveal listener.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		loadDeck(m.holder, m.source),
		waitForPhase(m.events),
	)
}

// State returns what the preview pane currently shows.
func (m Model) State() ViewState {
	return m.state
}

// Navigator exposes the active deck position.
func (m Model) Navigator() *navigator.Navigator {
	return m.nav
}

// Progress is the reveal progress the active slide is painted with.
func (m Model) Progress() float64 {
	if m.phase != animation.Revealed {
		return 0
	}
	return m.progress
}

// config is the style snapshot the preview renders with.
func (m Model) config() style.Configuration {
	if m.store == nil {
		return style.Default()
	}
	return m.store.Snapshot()
}
