package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/slidepreview/internal/script"
	"github.com/alexisbeaulieu97/slidepreview/internal/tui/slideview"
)

// EmptyMessage is shown when the deck has no slides.
const EmptyMessage = "No slides to preview."

// View renders the current model state.
func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	if m.tab == TabScript {
		b.WriteString(m.renderScript())
	} else {
		b.WriteString(m.renderPreview())
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(errorBannerStyle.Render(m.status))
	}

	b.WriteString("\n")
	b.WriteString(footerStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) renderHeader() string {
	theme := "default"
	if m.store != nil {
		theme = m.store.Theme()
	}
	cfg := m.config()
	summary := mutedStyle.Render(fmt.Sprintf("theme %s · %s · %.2fx", theme, cfg.Fonts.Family, cfg.Multiplier()))
	return lipgloss.JoinHorizontal(lipgloss.Top, titleStyle.Render("Slide Preview"), summary)
}

func (m Model) renderTabs() string {
	names := []struct {
		tab   Tab
		label string
	}{
		{TabPreview, "Preview"},
		{TabScript, "Script"},
	}
	tabs := make([]string, 0, len(names))
	for _, n := range names {
		if n.tab == m.tab {
			tabs = append(tabs, activeTabStyle.Render(n.label))
		} else {
			tabs = append(tabs, tabStyle.Render(n.label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)
}

func (m Model) renderPreview() string {
	switch m.state {
	case StateLoading:
		target := "deck"
		if m.source != nil {
			target = m.source.String()
		}
		return fmt.Sprintf("%s Loading %s...", m.spinner.View(), target)
	case StateFailed:
		return errorBannerStyle.Render("Could not load slides: " + m.err.Error())
	case StateEmpty:
		return mutedStyle.Render(EmptyMessage)
	}

	tree, ok := m.nav.Active(m.config())
	if !ok {
		return mutedStyle.Render(EmptyMessage)
	}
	slide := slideview.Paint(tree, slideview.Options{Width: m.width, Progress: m.Progress()})
	if !m.nav.ShowControls() {
		return slide
	}
	return lipgloss.JoinVertical(lipgloss.Left, slide, controlsStyle.Render("‹ "+m.nav.Position()+" ›"))
}

func (m Model) renderScript() string {
	if m.code == "" {
		return mutedStyle.Render("No script generated yet.")
	}
	label := mutedStyle.Render("[c] " + m.feedback.Label())
	if m.feedback.Copied() {
		label = copiedStyle.Render("✓ " + m.feedback.Label())
	}
	steps := make([]string, len(script.Instructions))
	for i, step := range script.Instructions {
		steps[i] = fmt.Sprintf("%d. %s", i+1, step)
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.script.View(), label, mutedStyle.Render(strings.Join(steps, "\n")))
}
