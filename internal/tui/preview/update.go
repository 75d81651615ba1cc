package preview

import (
	"math"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"

	"github.com/alexisbeaulieu97/slidepreview/internal/animation"
	"github.com/alexisbeaulieu97/slidepreview/internal/domain/style"
	"github.com/alexisbeaulieu97/slidepreview/internal/navigator"
	"github.com/alexisbeaulieu97/slidepreview/internal/script"
)

const (
	settleEpsilon = 1e-3
	springDamping = 1.0
	// chromeLines is the height taken by the header, tabs, instructions and footer.
	chromeLines = 14
)

// Update handles incoming messages and returns the updated model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.script.Width = msg.Width
		m.script.Height = max(1, msg.Height-chromeLines)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if m.state != StateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case DeckLoadedMsg:
		return m.handleDeckLoaded(msg)

	case PhaseMsg:
		next := waitForPhase(m.events)
		if msg.Gen != m.gen {
			return m, next
		}
		m.phase = msg.Phase
		if msg.Phase == animation.Revealed {
			m.progress, m.velocity = 0, 0
			return m, tea.Batch(next, frameCmd(m.gen))
		}
		return m, next

	case FrameMsg:
		if msg.Gen != m.gen || m.phase != animation.Revealed {
			return m, nil
		}
		m.progress, m.velocity = m.spring.Update(m.progress, m.velocity, 1)
		if math.Abs(1-m.progress) < settleEpsilon && math.Abs(m.velocity) < settleEpsilon {
			m.progress, m.velocity = 1, 0
			return m, nil
		}
		return m, frameCmd(m.gen)

	case CopyResetMsg:
		return m, nil
	}

	return m, nil
}

func (m Model) handleDeckLoaded(msg DeckLoadedMsg) (tea.Model, tea.Cmd) {
	m.stopReveal()
	if msg.Err != nil {
		m.state = StateFailed
		m.err = msg.Err
		m.log.Errorw(msg.Err, "deck load failed", "source", sourceName(m))
		return m, nil
	}

	m.err = nil
	m.nav = navigator.New(msg.Slides)
	for _, issue := range msg.Slides.Issues() {
		m.log.Warnw("slide kept as placeholder", "slide", issue.Index+1, "type", issue.Tag, "error", issue.Err.Error())
	}
	m.log.Infow("deck loaded", "slides", m.nav.Len())
	m.regenerate()
	if m.nav.Len() == 0 {
		m.state = StateEmpty
		return m, nil
	}
	m.state = StateReady
	m.activate()
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.stopReveal()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		if m.tab == TabPreview {
			m.tab = TabScript
		} else {
			m.tab = TabPreview
		}
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		return m.copyScript()

	case key.Matches(msg, m.keys.Reload):
		if m.source == nil {
			return m, nil
		}
		m.state = StateLoading
		m.stopReveal()
		return m, tea.Batch(m.spinner.Tick, loadDeck(m.holder, m.source))

	case key.Matches(msg, m.keys.Theme):
		if m.store == nil || m.catalog == nil {
			return m, nil
		}
		if _, err := m.store.ApplyTheme(m.catalog.Next(m.store.Theme())); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.status = ""
		m.regenerate()
		return m, nil

	case key.Matches(msg, m.keys.Bigger):
		return m.stepMultiplier(MultiplierStep)

	case key.Matches(msg, m.keys.Smaller):
		return m.stepMultiplier(-MultiplierStep)
	}

	if m.tab == TabScript {
		var cmd tea.Cmd
		m.script, cmd = m.script.Update(msg)
		return m, cmd
	}
	if m.state != StateReady {
		return m, nil
	}

	before := m.nav.Index()
	switch {
	case key.Matches(msg, m.keys.Next):
		m.nav.Next()
	case key.Matches(msg, m.keys.Prev):
		m.nav.Prev()
	case key.Matches(msg, m.keys.First):
		m.nav.GoTo(0)
	case key.Matches(msg, m.keys.Last):
		m.nav.GoTo(m.nav.Len() - 1)
	case key.Matches(msg, m.keys.Jump):
		m.nav.GoTo(int(msg.Runes[0] - '1'))
	}
	if m.nav.Index() != before {
		m.activate()
	}
	return m, nil
}

func (m Model) copyScript() (tea.Model, tea.Cmd) {
	if m.code == "" {
		return m, nil
	}
	if err := m.clip.Copy(m.code); err != nil {
		m.status = "copy failed: " + err.Error()
		m.log.Error(err, "copy script")
		return m, nil
	}
	m.status = ""
	return m, copyResetCmd(m.feedback.Mark())
}

func (m Model) stepMultiplier(delta float64) (tea.Model, tea.Cmd) {
	if m.store == nil {
		return m, nil
	}
	current := m.store.Snapshot().Multiplier()
	next := style.SnapMultiplier(math.Min(style.MaxMultiplier, math.Max(style.MinMultiplier, current+delta)))
	if math.Abs(next-current) < 1e-9 {
		return m, nil
	}
	if _, err := m.store.SetFontSizeMultiplier(next); err != nil {
		m.status = err.Error()
		return m, nil
	}
	m.status = ""
	m.regenerate()
	return m, nil
}

// activate restarts the reveal for the slide the navigator points at.
func (m *Model) activate() {
	m.stopReveal()

	tree, ok := m.nav.Active(m.config())
	if !ok || !tree.Animated() {
		return
	}

	gen, events, active := m.gen, m.events, m.active
	m.spring = harmonica.NewSpring(harmonica.FPS(60), springFrequency(tree.Animation.Duration.Seconds()), springDamping)
	m.reveal = animation.New(
		animation.WithScheduler(m.sched),
		animation.WithDelay(tree.Animation.Delay),
		animation.OnChange(func(p animation.Phase) {
			// Only the reveal of the slide on screen reaches the model.
			if p != animation.Revealed || active.Load() != gen {
				return
			}
			publishPhase(events, PhaseMsg{Gen: gen, Phase: p})
		}),
	)
	m.reveal.SetVisible(true)
	m.phase = m.reveal.Phase()
}

// stopReveal cancels the active reveal and retires its generation.
func (m *Model) stopReveal() {
	if m.reveal != nil {
		m.reveal.Stop()
		m.reveal = nil
	}
	m.gen++
	m.active.Store(m.gen)
	m.phase = animation.Resting
	m.progress, m.velocity = 0, 0
}

// publishPhase leaves msg as the only pending event, replacing an older one.
func publishPhase(events chan PhaseMsg, msg PhaseMsg) {
	for {
		select {
		case events <- msg:
			return
		default:
		}
		select {
		case <-events:
		default:
		}
	}
}

// springFrequency settles a critically damped spring in roughly d seconds.
func springFrequency(d float64) float64 {
	if d <= 0 {
		return 10
	}
	return 5 / d
}

// regenerate rebuilds the export script for the current deck and style.
func (m *Model) regenerate() {
	code, err := script.Generate(m.nav.Slides(), m.config())
	if err != nil {
		m.code = ""
		m.status = "script generation failed: " + err.Error()
		m.log.Error(err, "generate script")
		return
	}
	m.code = code
	m.script.SetContent(code)
}

func sourceName(m Model) string {
	if m.source == nil {
		return ""
	}
	return m.source.String()
}
