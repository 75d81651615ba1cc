package preview

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/slidepreview/internal/animation"
	"github.com/alexisbeaulieu97/slidepreview/internal/deck"
	"github.com/alexisbeaulieu97/slidepreview/internal/domain/slide"
	"github.com/alexisbeaulieu97/slidepreview/internal/editor"
	"github.com/alexisbeaulieu97/slidepreview/internal/logger"
	"github.com/alexisbeaulieu97/slidepreview/internal/script"
	"github.com/alexisbeaulieu97/slidepreview/internal/themes"
)

type fakeTimer struct {
	fn      func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	t.stopped = true
	return true
}

type fakeScheduler struct {
	mu     sync.Mutex
	timers []*fakeTimer
}

func (s *fakeScheduler) AfterFunc(_ time.Duration, f func()) animation.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &fakeTimer{fn: f}
	s.timers = append(s.timers, t)
	return t
}

func (s *fakeScheduler) fire(i int) {
	s.mu.Lock()
	t := s.timers[i]
	s.mu.Unlock()
	t.fn()
}

type fixture struct {
	model Model
	sched *fakeScheduler
	store *editor.Store
	clip  *bytes.Buffer
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	catalog := themes.NewCatalog()
	store, err := editor.NewStore(catalog, "", logger.Discard())
	require.NoError(t, err)

	sched := &fakeScheduler{}
	clip := &bytes.Buffer{}
	now := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

	m := NewModel(Options{
		Store:     store,
		Catalog:   catalog,
		Clipboard: script.NewClipboard(clip),
		Feedback:  script.NewCopyFeedback(func() time.Time { return now }),
		Scheduler: sched,
		Logger:    logger.Discard(),
	})
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	return fixture{model: m, sched: sched, store: store, clip: clip}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func press(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var threeSlides = slide.Sequence{
	slide.Title{Title: "Kickoff", Date: "Today"},
	slide.Content{Title: "Agenda", Points: []string{"One"}},
	slide.Closing{},
}

func TestNewModelStartsLoading(t *testing.T) {
	t.Parallel()

	m := NewModel(Options{})
	assert.Equal(t, StateLoading, m.State())
	assert.Equal(t, "Initializing...", m.View())
	assert.NotNil(t, m.Init())
}

func TestUpdate_WindowSizeMsg(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	assert.Equal(t, 100, f.model.width)
	assert.Equal(t, 40, f.model.height)
	assert.Equal(t, 100, f.model.script.Width)
	assert.Equal(t, 40-chromeLines, f.model.script.Height)
}

func TestUpdate_SpinnerOnlyWhileLoading(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	_, cmd := f.model.Update(f.model.spinner.Tick())
	assert.NotNil(t, cmd)

	m := update(t, f.model, DeckLoadedMsg{Slides: threeSlides})
	_, cmd = m.Update(spinner.TickMsg{})
	assert.Nil(t, cmd)
}

func TestUpdate_DeckLoadedStates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		msg   DeckLoadedMsg
		state ViewState
		want  string
	}{
		{name: "ready", msg: DeckLoadedMsg{Slides: threeSlides}, state: StateReady, want: "‹ 1 / 3 ›"},
		{name: "empty", msg: DeckLoadedMsg{Slides: slide.Sequence{}}, state: StateEmpty, want: EmptyMessage},
		{name: "failed", msg: DeckLoadedMsg{Err: errors.New("service unavailable")}, state: StateFailed, want: "Could not load slides: service unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := update(t, newFixture(t).model, tt.msg)
			assert.Equal(t, tt.state, m.State())
			assert.Contains(t, m.View(), tt.want)
		})
	}
}

func TestUpdate_SingleSlideHidesControls(t *testing.T) {
	t.Parallel()

	m := update(t, newFixture(t).model, DeckLoadedMsg{Slides: slide.Sequence{slide.Title{Title: "Solo"}}})
	view := m.View()
	assert.Contains(t, view, "Solo")
	assert.NotContains(t, view, "1 / 1")
}

func TestUpdate_Navigation(t *testing.T) {
	t.Parallel()

	m := update(t, newFixture(t).model, DeckLoadedMsg{Slides: threeSlides})

	steps := []struct {
		msg  tea.KeyMsg
		want int
	}{
		{tea.KeyMsg{Type: tea.KeyRight}, 1},
		{press("3"), 2},
		{tea.KeyMsg{Type: tea.KeyRight}, 0},
		{tea.KeyMsg{Type: tea.KeyLeft}, 2},
		{tea.KeyMsg{Type: tea.KeyHome}, 0},
		{tea.KeyMsg{Type: tea.KeyEnd}, 2},
		{press("9"), 2},
		{press("1"), 0},
	}
	for _, s := range steps {
		m = update(t, m, s.msg)
		assert.Equal(t, s.want, m.Navigator().Index(), s.msg.String())
	}
	assert.Contains(t, m.View(), "Kickoff")
}

func TestUpdate_RevealDrivesProgress(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	m := update(t, f.model, DeckLoadedMsg{Slides: slide.Sequence{
		slide.Progress{Title: "Status", Items: []slide.ProgressItem{{Label: "Build", Percent: 60}}},
		slide.Title{Title: "Static"},
	}})
	require.Len(t, f.sched.timers, 1)

	assert.Equal(t, animation.ScheduledReveal, m.phase)
	assert.Zero(t, m.Progress())
	assert.Empty(t, m.events, "only the reveal itself is reported")

	f.sched.fire(0)
	msg := waitForPhase(m.events)()
	assert.Equal(t, PhaseMsg{Gen: m.gen, Phase: animation.Revealed}, msg)

	next, cmd := m.Update(msg)
	m = next.(Model)
	assert.NotNil(t, cmd)
	assert.Zero(t, m.Progress())

	m = update(t, m, FrameMsg{Gen: m.gen})
	first := m.Progress()
	assert.Greater(t, first, 0.0)

	for i := 0; i < 600 && m.Progress() < 1; i++ {
		m = update(t, m, FrameMsg{Gen: m.gen})
	}
	assert.Equal(t, 1.0, m.Progress())

	// Leaving the slide rests the fill.
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, animation.Resting, m.phase)
	assert.Zero(t, m.Progress())
	assert.Len(t, f.sched.timers, 1, "static slides schedule nothing")
}

func TestUpdate_LeavingCancelsPendingReveal(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	m := update(t, f.model, DeckLoadedMsg{Slides: slide.Sequence{
		slide.BarChart{Title: "Sales", Data: []slide.Datum{{Label: "A", Value: 1}}},
		slide.Title{Title: "Static"},
	}})
	require.Len(t, f.sched.timers, 1)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.True(t, f.sched.timers[0].stopped)

	// A timer that fires after cancellation does nothing.
	f.sched.fire(0)
	assert.Equal(t, animation.Resting, m.phase)
	assert.Zero(t, m.Progress())
}

func TestUpdate_RevealSurvivesRapidNavigation(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	var charts slide.Sequence
	for i := 0; i < 6; i++ {
		charts = append(charts, slide.BarChart{Title: "Sales", Data: []slide.Datum{{Label: "A", Value: float64(i + 1)}}})
	}
	m := update(t, f.model, DeckLoadedMsg{Slides: charts})

	// Nobody drains the events while the user pages through the deck.
	for i := 0; i < 5; i++ {
		m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	}
	require.Len(t, f.sched.timers, 6)
	assert.Equal(t, 5, m.Navigator().Index())
	assert.Empty(t, m.events)

	// Late timers of slides already left are not reported.
	f.sched.fire(2)
	f.sched.fire(5)
	require.Len(t, m.events, 1)

	msg := waitForPhase(m.events)()
	assert.Equal(t, PhaseMsg{Gen: m.gen, Phase: animation.Revealed}, msg)

	m = update(t, m, msg)
	assert.Equal(t, animation.Revealed, m.phase)
	for i := 0; i < 600 && m.Progress() < 1; i++ {
		m = update(t, m, FrameMsg{Gen: m.gen})
	}
	assert.Equal(t, 1.0, m.Progress())
}

func TestPublishPhaseKeepsLatest(t *testing.T) {
	t.Parallel()

	events := make(chan PhaseMsg, 1)
	publishPhase(events, PhaseMsg{Gen: 1, Phase: animation.Revealed})
	publishPhase(events, PhaseMsg{Gen: 2, Phase: animation.Revealed})

	require.Len(t, events, 1)
	assert.Equal(t, uint64(2), (<-events).Gen)
}

func TestUpdate_StaleRevealIgnored(t *testing.T) {
	t.Parallel()

	m := update(t, newFixture(t).model, DeckLoadedMsg{Slides: threeSlides})
	before := m.phase

	m = update(t, m, PhaseMsg{Gen: m.gen + 7, Phase: animation.Revealed})
	assert.Equal(t, before, m.phase)

	m = update(t, m, FrameMsg{Gen: m.gen + 7})
	assert.Zero(t, m.Progress())
}

func TestUpdate_CopyScript(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	m := update(t, f.model, DeckLoadedMsg{Slides: threeSlides})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, TabScript, m.tab)
	assert.Contains(t, m.View(), "[c] Copy")
	assert.Contains(t, m.View(), "1. "+script.Instructions[0])

	next, cmd := m.Update(press("c"))
	m = next.(Model)
	require.NotNil(t, cmd)
	assert.Contains(t, f.clip.String(), "]52;c;")
	assert.Contains(t, m.View(), "Copied!")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, TabPreview, m.tab)
}

func TestUpdate_CopyWithoutScriptIsNoop(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	_, cmd := f.model.Update(press("c"))
	assert.Nil(t, cmd)
	assert.Zero(t, f.clip.Len())
}

func TestUpdate_ThemeAndSize(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	m := update(t, f.model, DeckLoadedMsg{Slides: threeSlides})

	m = update(t, m, press("t"))
	assert.Equal(t, "midnight", f.store.Theme())
	assert.Contains(t, m.View(), "theme midnight")

	m = update(t, m, press("+"))
	assert.InDelta(t, 1.05, f.store.Snapshot().Fonts.SizeMultiplier, 1e-9)
	assert.Contains(t, m.code, `"fontSizeMultiplier": 1.05`)

	for i := 0; i < 5; i++ {
		m = update(t, m, press("-"))
	}
	assert.InDelta(t, 0.8, f.store.Snapshot().Fonts.SizeMultiplier, 1e-9)
	assert.Empty(t, m.status)

	// At the bounds the keys stop quietly, like the editor slider.
	version := f.store.Version()
	m = update(t, m, press("-"))
	assert.InDelta(t, 0.8, f.store.Snapshot().Fonts.SizeMultiplier, 1e-9)
	assert.Empty(t, m.status)
	assert.Equal(t, version, f.store.Version())

	_, err := f.store.SetFontSizeMultiplier(1.5)
	require.NoError(t, err)
	m = update(t, m, press("+"))
	assert.InDelta(t, 1.5, f.store.Snapshot().Fonts.SizeMultiplier, 1e-9)
	assert.Empty(t, m.status)
	assert.NotContains(t, m.View(), "outside")
}

func TestUpdate_HelpAndQuit(t *testing.T) {
	t.Parallel()

	m := newFixture(t).model
	m = update(t, m, press("?"))
	assert.True(t, m.help.ShowAll)

	_, cmd := m.Update(press("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestLoadDeck(t *testing.T) {
	t.Parallel()

	holder := deck.NewHolder(nil)
	msg := loadDeck(holder, deck.Static(threeSlides))().(DeckLoadedMsg)
	require.NoError(t, msg.Err)
	assert.Len(t, msg.Slides, 3)
	assert.Len(t, holder.Slides(), 3)

	msg = loadDeck(holder, nil)().(DeckLoadedMsg)
	assert.Len(t, msg.Slides, 3)

	_, err := holder.Reload(context.Background(), deck.FileSource{Path: "/does/not/exist.json"})
	require.Error(t, err)
	msg = loadDeck(holder, nil)().(DeckLoadedMsg)
	assert.Error(t, msg.Err)
}
