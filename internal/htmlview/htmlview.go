// Package htmlview paints render trees as HTML and serves the editor page.
// CSS transitions perform the reveal interpolation; the page script only arms
// the reveal after its delay.
package htmlview

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/alexisbeaulieu97/slidepreview/internal/animation"
	"github.com/alexisbeaulieu97/slidepreview/internal/contrast"
	"github.com/alexisbeaulieu97/slidepreview/internal/domain/style"
	"github.com/alexisbeaulieu97/slidepreview/internal/editor"
	"github.com/alexisbeaulieu97/slidepreview/internal/navigator"
	"github.com/alexisbeaulieu97/slidepreview/internal/render"
	"github.com/alexisbeaulieu97/slidepreview/internal/script"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

var templates = template.Must(template.New("htmlview").Funcs(template.FuncMap{
	"num":    num,
	"picker": picker,
}).ParseFS(templateFS, "templates/*.gohtml"))

type slideView struct {
	Type     string
	Root     element
	Revealed bool
	Armed    bool
	DelayMS  int64
	Vars     template.CSS
}

// Slide renders one tree. Static slides are always drawn final. Animated ones
// are drawn resting unless phase is Revealed; a ScheduledReveal slide is
// marked so the page script reveals it after the delay.
func Slide(tree render.Tree, phase animation.Phase) (template.HTML, error) {
	view := slideView{Type: string(tree.Type), Revealed: true}
	if tree.Root != nil {
		view.Root = build(tree.Root)
	}
	if a := tree.Animation; a != nil {
		view.Revealed = phase == animation.Revealed
		view.Armed = a.Armed && phase == animation.ScheduledReveal
		view.DelayMS = a.Delay.Milliseconds()
		view.Vars = template.CSS(fmt.Sprintf("--reveal-duration: %dms", a.Duration.Milliseconds()))
	}
	return execute("slide", view)
}

type thumbView struct {
	Index  int
	Number int
	Active bool
	Slide  template.HTML
}

// Thumbnails renders the strip. Thumbnails are resting snapshots.
func Thumbnails(thumbs []navigator.Thumbnail) (template.HTML, error) {
	views := make([]thumbView, 0, len(thumbs))
	for _, t := range thumbs {
		html, err := Slide(t.Tree, animation.Resting)
		if err != nil {
			return "", err
		}
		views = append(views, thumbView{Index: t.Index, Number: t.Index + 1, Active: t.Active, Slide: html})
	}
	return execute("thumbnails", views)
}

// LogoField is a logo input of the editor panel.
type LogoField struct {
	Slot  string
	Label string
	Value string
	// Inline is true for uploaded data URLs, which are not echoed into the URL field.
	Inline bool
}

// Boot is handed to the page script.
type Boot struct {
	Index    int   `json:"index"`
	Total    int   `json:"total"`
	CopiedMS int64 `json:"copiedMs"`
}

// PageData is everything the editor page shows.
type PageData struct {
	Title          string
	Themes         []string
	Theme          string
	Fields         []editor.ColorField
	Fonts          []string
	Font           string
	Multiplier     float64
	MinMultiplier  float64
	MaxMultiplier  float64
	MultiplierStep float64
	Footer         string
	Logos          []LogoField
	Slide          template.HTML
	Thumbnails     template.HTML
	Position       string
	ShowControls   bool
	Total          int
	Script         string
	Instructions   []string
	Error          string
	Boot           Boot
}

// NewPageData fills the editor controls from a style snapshot.
func NewPageData(themes []string, theme string, cfg style.Configuration) PageData {
	return PageData{
		Title:          "Slide preview",
		Themes:         themes,
		Theme:          theme,
		Fields:         editor.Fields(cfg),
		Fonts:          style.FontFaces,
		Font:           cfg.Fonts.Family,
		Multiplier:     cfg.Multiplier(),
		MinMultiplier:  style.MinMultiplier,
		MaxMultiplier:  style.MaxMultiplier,
		MultiplierStep: style.MultiplierStep,
		Footer:         cfg.FooterText,
		Logos: []LogoField{
			logoField(style.LogoHeader, "Header", cfg.Logos.Header),
			logoField(style.LogoClosing, "Closing", cfg.Logos.Closing),
		},
		Instructions: script.Instructions,
		Boot:         Boot{CopiedMS: script.CopiedWindow.Milliseconds()},
	}
}

func logoField(slot, label, value string) LogoField {
	return LogoField{Slot: slot, Label: label, Value: value, Inline: len(value) > 5 && value[:5] == "data:"}
}

// WithDeck fills the preview half of the page from a navigator.
func (p PageData) WithDeck(nav *navigator.Navigator, cfg style.Configuration) (PageData, error) {
	p.Total = nav.Len()
	p.Position = nav.Position()
	p.ShowControls = nav.ShowControls()
	p.Boot.Index = nav.Index()
	p.Boot.Total = nav.Len()

	if tree, ok := nav.Active(cfg); ok {
		html, err := Slide(tree, animation.ScheduledReveal)
		if err != nil {
			return p, err
		}
		p.Slide = html
	}
	thumbs, err := Thumbnails(nav.Thumbnails(cfg))
	if err != nil {
		return p, err
	}
	p.Thumbnails = thumbs
	return p, nil
}

// Page writes the editor page.
func Page(w io.Writer, data PageData) error {
	if err := templates.ExecuteTemplate(w, "page", data); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}

// DocumentData is a standalone snapshot of a whole deck.
type DocumentData struct {
	Title  string
	Slides []template.HTML
}

// Document writes every slide, fully revealed, into one HTML file.
func Document(w io.Writer, trees []render.Tree, title string) error {
	data := DocumentData{Title: title}
	for _, tree := range trees {
		html, err := Slide(tree, animation.Revealed)
		if err != nil {
			return err
		}
		data.Slides = append(data.Slides, html)
	}
	if err := templates.ExecuteTemplate(w, "document", data); err != nil {
		return fmt.Errorf("render document: %w", err)
	}
	return nil
}

func execute(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}

// picker returns the #rrggbb form a color input accepts.
func picker(c string) string {
	hex, ok := contrast.Normalize(c)
	if !ok {
		return "#000000"
	}
	return hex
}
