package render

import (
	"time"

	"github.com/alexisbeaulieu97/slidepreview/internal/contrast"
	"github.com/alexisbeaulieu97/slidepreview/internal/domain/slide"
	"github.com/alexisbeaulieu97/slidepreview/internal/domain/style"
)

// Reveal timings.
const (
	RevealDelay    = 100 * time.Millisecond
	RevealDuration = 700 * time.Millisecond
	LineDuration   = 1500 * time.Millisecond
)

// UntitledLabel is shown for placeholder slides that carry no title.
const UntitledLabel = "Untitled slide"

// ClosingMessage is the closing slide's fixed text.
const ClosingMessage = "Thank you for your attention"

// renderer carries the per-pass values every layout reads.
type renderer struct {
	cfg  style.Configuration
	bg   string
	text string
}

// Render produces the visual tree for one slide. It never fails: unknown
// variants become a placeholder and degenerate values are guarded. visible
// only arms the reveal animation.
func Render(s slide.Slide, cfg style.Configuration, visible bool) Tree {
	typ := slide.Type("")
	if s != nil {
		typ = s.Type()
	}

	r := newRenderer(typ, cfg)
	frame := &Node{
		Kind: KindFrame,
		Role: string(typ),
		Style: Style{
			Background: r.bg,
			Color:      r.text,
			FontFamily: cfg.Fonts.Family,
		},
	}

	tree := Tree{Type: typ, Root: frame}

	switch v := s.(type) {
	case slide.Title:
		frame.Append(r.title(v))
	case slide.Section:
		frame.Append(r.section(v)...)
	case slide.Closing:
		frame.Append(r.closing())
	case slide.Content:
		frame.Append(r.content(v))
	case slide.Compare:
		frame.Append(r.compare(v))
	case slide.Process:
		frame.Append(r.process(v))
	case slide.Timeline:
		frame.Append(r.timeline(v))
	case slide.Diagram:
		frame.Append(r.diagram(v))
	case slide.Cards:
		frame.Append(r.cards(v))
	case slide.Table:
		frame.Append(r.table(v))
	case slide.Progress:
		frame.Append(r.progress(v))
		tree.Animation = reveal(RevealDuration, visible)
	case slide.BarChart:
		frame.Append(r.barChart(v))
		tree.Animation = reveal(RevealDuration, visible)
	case slide.LineChart:
		frame.Append(r.lineChart(v))
		tree.Animation = reveal(LineDuration, visible)
	case slide.PieChart:
		frame.Append(r.pieChart(v))
		tree.Animation = reveal(RevealDuration, visible)
	default:
		frame.Append(r.placeholder(s))
	}

	if decorated(typ) {
		frame.Append(r.ornaments()...)
		if cfg.FooterText != "" {
			frame.Append(&Node{
				Kind:  KindText,
				Role:  "footer",
				Text:  cfg.FooterText,
				Style: Style{FontSize: r.size(style.SizeSmall), Opacity: 0.7},
			})
		}
	}

	return tree
}

func reveal(d time.Duration, visible bool) *Animation {
	return &Animation{Delay: RevealDelay, Duration: d, Armed: visible}
}

// decorated reports whether corner ornaments and the footer are drawn.
func decorated(t slide.Type) bool {
	switch t {
	case slide.TypeTitle, slide.TypeSection, slide.TypeClosing:
		return false
	default:
		return true
	}
}

func newRenderer(t slide.Type, cfg style.Configuration) *renderer {
	bgRole, textRole := style.ColorBackgroundWhite, style.ColorReadableOnWhite
	if t == slide.TypeSection {
		bgRole, textRole = style.ColorBackgroundGray, style.ColorReadableOnGray
	}

	bg := cfg.ColorOr(bgRole, contrast.White)
	preferred := cfg.ColorOr(textRole, cfg.Color(style.ColorTextPrimary))

	return &renderer{
		cfg:  cfg,
		bg:   bg,
		text: contrast.ResolveTextColor(bg, preferred),
	}
}

func (r *renderer) size(role string) float64 {
	return r.cfg.FontSize(role)
}

func (r *renderer) color(role string) string {
	return r.cfg.Color(role)
}

// chartColor cycles the five-color chart palette.
func (r *renderer) chartColor(i int) string {
	palette := [...]string{
		style.ColorPrimaryBlue,
		style.ColorGoogleGreen,
		style.ColorGoogleYellow,
		style.ColorGoogleRed,
		style.ColorNeutralGray,
	}
	return r.color(palette[i%len(palette)])
}

// header builds the underlined title and optional subhead shared by list and chart slides.
func (r *renderer) header(title, subhead string) []*Node {
	nodes := []*Node{{
		Kind: KindHeading,
		Role: style.SizeContentTitle,
		Text: title,
		Style: Style{
			FontSize:    r.size(style.SizeContentTitle),
			Bold:        true,
			BorderColor: r.color(style.ColorPrimaryBlue),
		},
	}}
	if subhead != "" {
		nodes = append(nodes, &Node{
			Kind:  KindText,
			Role:  style.SizeSubhead,
			Text:  subhead,
			Style: Style{FontSize: r.size(style.SizeSubhead), Opacity: 0.8},
		})
	}
	return nodes
}

// ornaments are circles offset by X and Y from the frame's bottom-right corner.
func (r *renderer) ornaments() []*Node {
	return []*Node{
		{
			Kind:     KindOrnament,
			Role:     "corner",
			Style:    Style{Background: r.color(style.ColorPrimaryBlue), Opacity: 0.1},
			Geometry: &Geometry{X: -40, Y: -40, R: 60},
		},
		{
			Kind:     KindOrnament,
			Role:     "corner",
			Style:    Style{Background: r.color(style.ColorGoogleGreen), Opacity: 0.15},
			Geometry: &Geometry{X: 20, Y: -30, R: 45},
		},
	}
}

func (r *renderer) placeholder(s slide.Slide) *Node {
	title, tag := UntitledLabel, ""
	if s != nil {
		if h := s.Heading(); h != "" {
			title = h
		}
		tag = string(s.Type())
	}

	message := "Preview is not available for '" + tag + "' slides."
	if u, ok := s.(slide.Unknown); ok && u.Malformed() {
		message = "This '" + tag + "' slide has fields that could not be read: " + u.Err.Error()
	}

	noticeBg := r.color(style.ColorGoogleYellow)
	if noticeBg == "" {
		noticeBg = contrast.White
	}

	return (&Node{Kind: KindColumn, Role: "placeholder", Style: Style{Align: "center"}}).Append(
		&Node{
			Kind:  KindHeading,
			Role:  style.SizeContentTitle,
			Text:  title,
			Style: Style{FontSize: r.size(style.SizeContentTitle), Bold: true},
		},
		&Node{
			Kind:  KindText,
			Role:  "unsupported",
			Text:  message,
			Style: Style{FontSize: r.size(style.SizeBody), Color: r.color(style.ColorNeutralGray)},
		},
		&Node{
			Kind: KindNotice,
			Role: "export",
			Text: "This slide type cannot be previewed yet, but the generated script still includes it.",
			Style: Style{
				FontSize:   r.size(style.SizeSmall),
				Background: noticeBg,
				Color:      contrast.ResolveTextColor(noticeBg, r.text),
			},
		},
	)
}
