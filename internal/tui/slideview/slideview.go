// Package slideview paints render trees as terminal text.
package slideview

import (
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/alexisbeaulieu97/slidepreview/internal/render"
)

// DefaultWidth is used when Options.Width is unset.
const DefaultWidth = 80

const (
	minWidth   = 24
	plotRows   = 10
	fixedGap   = 1
	barGutter  = 12
	valueWidth = 8
)

// Options controls one paint.
type Options struct {
	// Width is the number of terminal columns available, border included.
	Width int
	// Progress is the reveal progress of animated fills, from 0 to 1.
	// Static trees ignore it.
	Progress float64
}

type painter struct {
	progress float64
}

// scope is what a node inherits from its ancestors.
type scope struct {
	width int
	fg    string
	bg    string
	align string
}

func (s scope) narrow(w int) scope {
	if w < 1 {
		w = 1
	}
	s.width = w
	return s
}

// Paint draws the tree inside a rounded frame of opts.Width columns.
func Paint(t render.Tree, opts Options) string {
	if t.Root == nil {
		return ""
	}
	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}
	if width < minWidth {
		width = minWidth
	}

	p := painter{progress: clamp01(opts.Progress)}
	if !t.Animated() {
		p.progress = 1
	}

	root := t.Root
	s := scope{
		width: width - frameStyle.GetHorizontalFrameSize(),
		fg:    root.Style.Color,
		bg:    root.Style.Background,
	}
	body := p.column(root, s)

	return frameStyle.
		BorderForeground(color(s.fg)).
		Width(width - frameStyle.GetHorizontalBorderSize()).
		Render(body)
}

func (p painter) paint(n *render.Node, s scope) string {
	switch n.Kind {
	case render.KindOrnament, render.KindRail:
		return ""
	case render.KindFrame, render.KindColumn:
		return p.column(n, s)
	case render.KindRow:
		return p.row(n, s)
	case render.KindGrid:
		return p.grid(n, s)
	case render.KindPanel:
		return p.panel(n, s)
	case render.KindHeading:
		return p.heading(n, s)
	case render.KindList:
		return p.list(n, s)
	case render.KindItem:
		return p.item(n, s, bullet)
	case render.KindTable:
		return p.table(n, s)
	case render.KindBar:
		return p.track(n, s)
	case render.KindCanvas:
		if n.Role == "piechart" {
			return p.pie(n, s)
		}
		return p.plot(n, s)
	case render.KindMarker:
		return lipgloss.NewStyle().
			Foreground(color(n.Style.Background)).
			Width(s.width).
			Align(lipgloss.Center).
			Render(marker)
	case render.KindImage:
		return imageStyle.Width(s.width).Align(lipgloss.Center).Render("[" + n.Role + " logo]")
	case render.KindNotice:
		return p.notice(n, s)
	default:
		return p.text(n, s)
	}
}

// ink is the character style of a node: color, weight and background.
func (p painter) ink(n *render.Node, s scope) lipgloss.Style {
	fg := s.fg
	if n.Style.Color != "" {
		fg = n.Style.Color
	}
	if o := n.Style.Opacity; o > 0 && o < 1 {
		fg = Blend(fg, s.bg, o)
	}
	st := lipgloss.NewStyle().Bold(n.Style.Bold).Foreground(color(fg))
	if n.Style.Background != "" && n.Kind != render.KindItem {
		st = st.Background(color(n.Style.Background))
	}
	return st
}

func align(n *render.Node, s scope) lipgloss.Position {
	a := n.Style.Align
	if a == "" {
		a = s.align
	}
	switch a {
	case "center":
		return lipgloss.Center
	case "right":
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}

// runs renders the node's text, bolding emphasized runs.
func runs(n *render.Node, ink lipgloss.Style) string {
	if len(n.Runs) == 0 {
		return ink.Render(n.Text)
	}
	var b strings.Builder
	for _, r := range n.Runs {
		if r.Emphasis {
			b.WriteString(ink.Bold(true).Render(r.Text))
		} else {
			b.WriteString(ink.Render(r.Text))
		}
	}
	return b.String()
}

func (p painter) text(n *render.Node, s scope) string {
	if n.Content() == "" {
		return ""
	}
	pos := align(n, s)
	if n.Kind == render.KindWatermark {
		pos = lipgloss.Right
	}
	return lipgloss.NewStyle().Width(s.width).Align(pos).Render(runs(n, p.ink(n, s)))
}

func (p painter) heading(n *render.Node, s scope) string {
	ink := p.ink(n, s)
	st := lipgloss.NewStyle()
	if n.Style.BorderColor != "" {
		st = headingRuleStyle.BorderForeground(color(n.Style.BorderColor))
	}
	st = st.Width(s.width).Align(align(n, s))
	if n.Style.Background != "" {
		st = st.Background(color(n.Style.Background))
	}
	return st.Render(runs(n, ink))
}

func (p painter) column(n *render.Node, s scope) string {
	if n.Style.Color != "" {
		s.fg = n.Style.Color
	}
	if n.Style.Align != "" {
		s.align = n.Style.Align
	}
	var parts []string
	for _, c := range n.Children {
		if out := p.paint(c, s); out != "" {
			parts = append(parts, out)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// fixed reports whether a node in a row keeps its natural width.
func fixed(n *render.Node) bool {
	switch n.Kind {
	case render.KindLabel, render.KindConnector:
		return true
	default:
		return false
	}
}

func (p painter) row(n *render.Node, s scope) string {
	var kids []*render.Node
	var rail *render.Node
	for _, c := range n.Children {
		if c.Kind == render.KindRail {
			rail = c
			continue
		}
		kids = append(kids, c)
	}
	if n.Role == "bars" {
		return p.bars(kids, s)
	}
	if len(kids) == 0 {
		return ""
	}

	widths := make([]int, len(kids))
	remaining, flexible := s.width, 0
	for i, c := range kids {
		if fixed(c) {
			widths[i] = lipgloss.Width(c.Content()) + 2*fixedGap
			remaining -= widths[i]
		} else {
			flexible++
		}
	}
	if flexible > 0 {
		share := remaining / flexible
		for i := range kids {
			if widths[i] == 0 {
				widths[i] = share
			}
		}
	}

	parts := make([]string, 0, len(kids))
	for i, c := range kids {
		cell := p.paint(c, s.narrow(widths[i]))
		parts = append(parts, lipgloss.NewStyle().Width(widths[i]).Render(cell))
	}
	out := lipgloss.JoinHorizontal(lipgloss.Top, parts...)

	if rail != nil {
		line := lipgloss.NewStyle().
			Foreground(color(rail.Style.Background)).
			Render(strings.Repeat(rule, s.width))
		out = lipgloss.JoinVertical(lipgloss.Left, out, line)
	}
	return out
}

func (p painter) grid(n *render.Node, s scope) string {
	cols := n.Style.Columns
	if cols < 1 {
		cols = 1
	}
	if len(n.Children) < cols && len(n.Children) > 0 {
		cols = len(n.Children)
	}
	cw := s.width / cols

	var rows []string
	for start := 0; start < len(n.Children); start += cols {
		end := min(start+cols, len(n.Children))
		var cells []string
		for _, c := range n.Children[start:end] {
			out := p.paint(c, s.narrow(cw-fixedGap))
			cells = append(cells, lipgloss.NewStyle().Width(cw).Render(out))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (p painter) panel(n *render.Node, s scope) string {
	st := lipgloss.NewStyle()
	if n.Style.BorderColor != "" {
		st = panelStyle.BorderForeground(color(n.Style.BorderColor))
	}
	inner := s.narrow(s.width - st.GetHorizontalFrameSize())
	if n.Style.Background != "" {
		inner.bg = n.Style.Background
	}

	var body string
	if n.Content() != "" {
		body = lipgloss.NewStyle().Width(inner.width).Align(align(n, s)).Render(runs(n, p.ink(n, inner)))
	} else {
		body = p.column(n, inner)
	}
	return st.Width(s.width - st.GetHorizontalBorderSize()).Render(body)
}

func (p painter) list(n *render.Node, s scope) string {
	var items []string
	for _, c := range n.Children {
		mark := bullet
		if c.Role == "swatch" {
			mark = lipgloss.NewStyle().Foreground(color(c.Style.Background)).Render(swatch)
		}
		items = append(items, p.item(c, s, mark))
	}
	return lipgloss.JoinVertical(lipgloss.Left, items...)
}

func (p painter) item(n *render.Node, s scope, mark string) string {
	prefix := mark + " "
	w := lipgloss.Width(prefix)
	body := lipgloss.NewStyle().Width(max(1, s.width-w)).Render(runs(n, p.ink(n, s)))
	return lipgloss.JoinHorizontal(lipgloss.Top, prefix, body)
}

func (p painter) table(n *render.Node, s scope) string {
	var headers []string
	var rows [][]string
	border := s.fg
	for _, tr := range n.Children {
		cells := make([]string, 0, len(tr.Children))
		for _, c := range tr.Children {
			cells = append(cells, c.Content())
			if c.Style.BorderColor != "" {
				border = c.Style.BorderColor
			}
		}
		if tr.Role == "head" {
			headers = cells
			continue
		}
		rows = append(rows, cells)
	}
	if len(headers) == 0 && len(rows) == 0 {
		return ""
	}

	fg := color(s.fg)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(color(border))).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle.Foreground(fg)
			}
			return tableCellStyle.Foreground(fg)
		}).
		Headers(headers...).
		Rows(rows...)
	return t.Render()
}

// meter draws a horizontal fill of the given ratio.
func meter(width int, ratio float64, fill, empty string) string {
	bar := progress.New(
		progress.WithSolidFill(fill),
		progress.WithoutPercentage(),
		progress.WithFillCharacters(fullCell, emptyCell),
		progress.WithWidth(max(1, width)),
	)
	if empty != "" {
		bar.EmptyColor = empty
	}
	return bar.ViewAs(clamp01(ratio))
}

// track draws a progress item's bar. The track's child carries the fill.
func (p painter) track(n *render.Node, s scope) string {
	fill := n
	for _, c := range n.Children {
		if c.Fill != nil {
			fill = c
		}
	}
	ratio := 0.0
	if fill.Fill != nil {
		ratio = fill.Fill.At(p.progress) / 100
	}
	return meter(s.width, ratio, fill.Style.Background, n.Style.Background)
}

// bars lays a bar chart on its side: one line per category.
func (p painter) bars(columns []*render.Node, s scope) string {
	width := s.width - barGutter - valueWidth - 2*fixedGap
	var lines []string
	for _, col := range columns {
		var label, value string
		var bar *render.Node
		for _, c := range col.Children {
			switch c.Role {
			case "category":
				label = c.Text
			case "value":
				value = c.Text
			case "column":
				bar = c
			}
		}
		ratio := 0.0
		fill := s.fg
		if bar != nil && bar.Fill != nil {
			ratio = bar.Fill.At(p.progress) / 100
			fill = bar.Style.Background
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(barGutter).MaxWidth(barGutter).Render(label),
			" ",
			meter(width, ratio, fill, ""),
			" ",
			lipgloss.NewStyle().Width(valueWidth).Bold(true).Render(value),
		))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// pie shows each wedge's share as a segment of one bar; the legend carries the numbers.
func (p painter) pie(n *render.Node, s scope) string {
	reveal := 1.0
	if n.Fill != nil {
		reveal = n.Fill.At(p.progress)
	}
	var b strings.Builder
	used := 0
	for _, w := range n.Children {
		if w.Geometry == nil {
			continue
		}
		cells := int(math.Round(w.Geometry.Sweep / (2 * math.Pi) * float64(s.width) * reveal))
		cells = min(cells, s.width-used)
		if cells <= 0 {
			continue
		}
		used += cells
		b.WriteString(lipgloss.NewStyle().
			Foreground(color(w.Style.Background)).
			Render(strings.Repeat(string(fullCell), cells)))
	}
	if used < s.width {
		b.WriteString(lipgloss.NewStyle().Faint(true).Render(strings.Repeat(string(emptyCell), s.width-used)))
	}
	return b.String()
}

type cell struct {
	r     rune
	color string
}

// plot draws a line chart canvas onto a character grid. Points appear left
// to right as the reveal progresses.
func (p painter) plot(n *render.Node, s scope) string {
	geo := n.Geometry
	if geo == nil || geo.Width <= 0 || geo.Height <= 0 {
		return ""
	}

	var ymax, ymin, axis string
	var xlabels, points []*render.Node
	for _, c := range n.Children {
		switch c.Role {
		case "ymax":
			ymax = c.Text
		case "ymin":
			ymin = c.Text
		case "xaxis":
			axis = c.Style.Color
		case "xlabel":
			xlabels = append(xlabels, c)
		case "point":
			points = append(points, c)
		}
	}

	gutter := max(lipgloss.Width(ymax), lipgloss.Width(ymin)) + 1
	cols := s.width - gutter - 1
	if cols < 4 {
		return ""
	}

	grid := make([][]cell, plotRows)
	for r := range grid {
		grid[r] = make([]cell, cols)
		for c := range grid[r] {
			grid[r][c] = cell{r: ' '}
		}
	}
	for c := range grid[plotRows-1] {
		grid[plotRows-1][c] = cell{r: '─', color: axis}
	}

	toCol := func(x float64) int {
		return clampInt(int(math.Round(x/geo.Width*float64(cols-1))), 0, cols-1)
	}
	for _, pt := range points {
		g := pt.Geometry
		if g == nil || g.CX/geo.Width > p.progress+1e-9 {
			continue
		}
		r := clampInt(int(math.Round(g.CY/geo.Height*float64(plotRows-1))), 0, plotRows-1)
		grid[r][toCol(g.CX)] = cell{r: []rune(point)[0], color: pt.Style.Background}
	}

	axisStyle := lipgloss.NewStyle().Foreground(color(axis))
	lines := make([]string, 0, plotRows+1)
	for r, row := range grid {
		label := ""
		switch r {
		case 0:
			label = ymax
		case plotRows - 1:
			label = ymin
		}
		corner := "│"
		if r == plotRows-1 {
			corner = "└"
		}
		var b strings.Builder
		b.WriteString(lipgloss.NewStyle().Width(gutter - 1).Align(lipgloss.Right).Render(label))
		b.WriteString(" ")
		b.WriteString(axisStyle.Render(corner))
		for _, c := range row {
			if c.color == "" {
				b.WriteRune(c.r)
				continue
			}
			b.WriteString(lipgloss.NewStyle().Foreground(color(c.color)).Render(string(c.r)))
		}
		lines = append(lines, b.String())
	}

	// X labels are centered under their column and dropped when they would overlap.
	axisRow := []rune(strings.Repeat(" ", cols))
	next := 0
	for _, l := range xlabels {
		if l.Geometry == nil {
			continue
		}
		text := []rune(l.Text)
		start := toCol(l.Geometry.X) - len(text)/2
		start = clampInt(start, 0, max(0, cols-len(text)))
		if start < next || start+len(text) > cols {
			continue
		}
		copy(axisRow[start:], text)
		next = start + len(text) + 1
	}
	lines = append(lines, strings.Repeat(" ", gutter+1)+strings.TrimRight(string(axisRow), " "))

	return strings.Join(lines, "\n")
}

func (p painter) notice(n *render.Node, s scope) string {
	st := noticeStyle.
		BorderForeground(color(n.Style.Color)).
		Foreground(color(n.Style.Color)).
		Background(color(n.Style.Background))
	return st.Width(s.width - st.GetHorizontalBorderSize()).Render(n.Text)
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= 1:
		return 1
	default:
		return v
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
