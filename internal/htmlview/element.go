package htmlview

import (
	"fmt"
	"html/template"
	"regexp"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/slidepreview/internal/contrast"
	"github.com/alexisbeaulieu97/slidepreview/internal/render"
)

// element is a render node translated into the markup the templates emit.
type element struct {
	Tag      string
	Class    string
	Style    template.CSS
	Src      template.URL
	Text     string
	Runs     []render.Run
	Children []element

	// SVG attributes.
	ViewBox string
	Geo     *render.Geometry
	Fill    string
	Stroke  string
}

var (
	roleSanitizer = regexp.MustCompile(`[^A-Za-z0-9_-]`)
	fontSanitizer = regexp.MustCompile(`[^A-Za-z0-9 .-]`)
)

func htmlTag(k render.Kind) string {
	switch k {
	case render.KindHeading:
		return "h2"
	case render.KindText:
		return "p"
	case render.KindList:
		return "ul"
	case render.KindItem:
		return "li"
	case render.KindTable:
		return "table"
	case render.KindTableRow:
		return "tr"
	case render.KindHeaderCell:
		return "th"
	case render.KindCell:
		return "td"
	case render.KindLabel, render.KindConnector, render.KindMarker:
		return "span"
	case render.KindCanvas:
		return "svg"
	case render.KindImage:
		return "img"
	default:
		return "div"
	}
}

func build(n *render.Node) element {
	el := element{
		Tag:   htmlTag(n.Kind),
		Class: classes(n),
		Text:  n.Text,
		Runs:  n.Runs,
		Style: template.CSS(htmlStyle(n)),
	}
	if n.Kind == render.KindImage {
		el.Src = safeURL(n.Src)
	}
	if n.Kind == render.KindCanvas {
		if g := n.Geometry; g != nil {
			el.ViewBox = fmt.Sprintf("0 0 %s %s", num(g.Width), num(g.Height))
		}
		for _, c := range n.Children {
			el.Children = append(el.Children, buildSVG(c))
		}
		return el
	}
	for _, c := range n.Children {
		el.Children = append(el.Children, build(c))
	}
	return el
}

func buildSVG(n *render.Node) element {
	el := element{Class: classes(n), Text: n.Text, Geo: n.Geometry}
	if el.Geo == nil {
		el.Geo = &render.Geometry{}
	}
	switch n.Kind {
	case render.KindLine:
		el.Tag = "line"
		el.Stroke = safeColor(n.Style.Color)
	case render.KindLabel:
		el.Tag = "text"
		el.Fill = safeColor(n.Style.Color)
		if n.Style.FontSize > 0 {
			el.Style = template.CSS("font-size: " + num(n.Style.FontSize) + "pt")
		}
	case render.KindCircle:
		el.Tag = "circle"
		el.Fill = safeColor(n.Style.Background)
	case render.KindPath:
		el.Tag = "path"
		if n.Style.Background != "" {
			el.Fill = safeColor(n.Style.Background)
		} else {
			el.Fill = "none"
			el.Stroke = safeColor(n.Style.Color)
		}
		if n.Fill != nil && n.Fill.Axis == render.AxisStroke {
			el.Style = template.CSS("--len: " + num(el.Geo.Length))
		}
	default:
		el.Tag = "g"
	}
	return el
}

func classes(n *render.Node) string {
	parts := []string{"n-" + string(n.Kind)}
	if n.Role != "" {
		parts = append(parts, "r-"+roleSanitizer.ReplaceAllString(n.Role, ""))
	}
	if n.Fill != nil {
		parts = append(parts, "fill-"+string(n.Fill.Axis))
	}
	return strings.Join(parts, " ")
}

func htmlStyle(n *render.Node) string {
	var decls []string
	add := func(prop, value string) {
		if value != "" {
			decls = append(decls, prop+": "+value)
		}
	}

	s := n.Style
	add("color", safeColor(s.Color))
	add("background", safeColor(s.Background))
	if border := safeColor(s.BorderColor); border != "" {
		switch n.Kind {
		case render.KindHeading:
			add("border-bottom", "4px solid "+border)
		case render.KindMarker:
			add("border", "3px solid "+border)
		default:
			add("border", "1px solid "+border)
		}
	}
	if s.FontFamily != "" {
		if family := strings.TrimSpace(fontSanitizer.ReplaceAllString(s.FontFamily, "")); family != "" {
			add("font-family", "'"+family+"', sans-serif")
		}
	}
	if s.FontSize > 0 {
		add("font-size", num(s.FontSize)+"pt")
	}
	if s.Bold {
		add("font-weight", "700")
	}
	if s.Opacity > 0 {
		add("opacity", num(s.Opacity))
	}
	if s.Columns > 0 {
		add("grid-template-columns", "repeat("+strconv.Itoa(s.Columns)+", minmax(0, 1fr))")
	}
	switch s.Align {
	case "center", "left", "right":
		add("text-align", s.Align)
	}

	if n.Kind == render.KindOrnament && n.Geometry != nil {
		g := n.Geometry
		add("bottom", num(g.Y)+"px")
		add("right", num(g.X)+"px")
		add("width", num(2*g.R)+"px")
		add("height", num(2*g.R)+"px")
	}
	if f := n.Fill; f != nil && (f.Axis == render.AxisHeight || f.Axis == render.AxisWidth) {
		add("--fill", num(f.Target)+"%")
	}
	return strings.Join(decls, "; ")
}

// safeColor drops anything that is not a hex color so config values never
// reach the stylesheet unchecked.
func safeColor(c string) string {
	if !contrast.Valid(c) {
		return ""
	}
	hex, _ := contrast.Normalize(c)
	return hex
}

func safeURL(src string) template.URL {
	switch {
	case strings.HasPrefix(src, "https://"), strings.HasPrefix(src, "http://"):
		return template.URL(src)
	case strings.HasPrefix(src, "data:image/") && strings.Contains(src, ","):
		return template.URL(src)
	default:
		return ""
	}
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
