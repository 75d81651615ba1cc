package preview

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/slidepreview/internal/deck"
)

// frameInterval paces the reveal spring.
const frameInterval = time.Second / 60

// loadDeck reloads the holder from src. With no source the holder's current
// contents are reported as is.
func loadDeck(holder *deck.Holder, src deck.Source) tea.Cmd {
	return func() tea.Msg {
		if src == nil {
			return DeckLoadedMsg{Slides: holder.Slides(), Err: holder.Err()}
		}
		_, err := holder.Reload(context.Background(), src)
		return DeckLoadedMsg{Slides: holder.Slides(), Err: err}
	}
}

// waitForPhase blocks until a reveal hook reports a phase change.
func waitForPhase(events <-chan PhaseMsg) tea.Cmd {
	return func() tea.Msg {
		return <-events
	}
}

func frameCmd(gen uint64) tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return FrameMsg{Gen: gen}
	})
}

func copyResetCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return CopyResetMsg{}
	})
}
