package slideview

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/slidepreview/internal/contrast"
)

var (
	frameStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			Padding(0, 1)

	noticeStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.DoubleBorder()).
			Padding(0, 1)

	headingRuleStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.ThickBorder()).
				BorderBottom(true)

	tableCellStyle = lipgloss.NewStyle().Padding(0, 1)

	tableHeaderStyle = tableCellStyle.Bold(true)

	imageStyle = lipgloss.NewStyle().Italic(true)
)

const (
	bullet    = "•"
	swatch    = "■"
	marker    = "●"
	point     = "●"
	rule      = "─"
	fullCell  = '█'
	emptyCell = '░'
)

// color converts a hex string into a lipgloss color. Invalid or empty
// values yield NoColor so the terminal default applies.
func color(hex string) lipgloss.TerminalColor {
	norm, ok := contrast.Normalize(hex)
	if !ok {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(norm)
}

// Blend mixes fg over bg at the given opacity, approximating translucent
// text on terminals that have no alpha channel. Unparseable inputs return fg.
func Blend(fg, bg string, opacity float64) string {
	f, ok := contrast.Parse(fg)
	if !ok {
		return fg
	}
	b, ok := contrast.Parse(bg)
	if !ok {
		return fg
	}
	if opacity <= 0 {
		opacity = 0
	} else if opacity > 1 {
		opacity = 1
	}
	return b.BlendRgb(f, opacity).Clamped().Hex()
}
