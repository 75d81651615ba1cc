package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/slidepreview/internal/contrast"
	"github.com/alexisbeaulieu97/slidepreview/internal/domain/slide"
	"github.com/alexisbeaulieu97/slidepreview/internal/domain/style"
)

func TestRenderEveryVariantProducesOutput(t *testing.T) {
	t.Parallel()

	cfg := style.Default()
	slides := []slide.Slide{
		slide.Title{Title: "T", Date: "D"},
		slide.Section{Title: "S"},
		slide.Closing{},
		slide.Content{Title: "C"},
		slide.Compare{Title: "Cmp"},
		slide.Process{Title: "P"},
		slide.Timeline{Title: "TL"},
		slide.Diagram{Title: "Dg"},
		slide.Cards{Title: "Cd"},
		slide.Table{Title: "Tb"},
		slide.Progress{Title: "Pg"},
		slide.BarChart{Title: "B"},
		slide.LineChart{Title: "L"},
		slide.PieChart{Title: "Pi"},
		slide.Unknown{Tag: "mystery"},
		nil,
	}

	for _, s := range slides {
		require.NotPanics(t, func() {
			tree := Render(s, cfg, true)
			require.NotNil(t, tree.Root)
			assert.Equal(t, KindFrame, tree.Root.Kind)
			assert.NotEmpty(t, tree.Root.Children)
		})
	}
}

func TestRenderUnknownShowsPlaceholder(t *testing.T) {
	t.Parallel()

	seq := slide.Sequence{
		slide.Title{Title: "First"},
		slide.Unknown{Tag: "unknown", Title: "X"},
		slide.Closing{},
	}

	var trees []Tree
	for _, s := range seq {
		trees = append(trees, Render(s, style.Default(), true))
	}
	require.Len(t, trees, 3)

	texts := trees[1].Root.Texts()
	assert.Contains(t, texts, "X")
	assert.Len(t, trees[1].Root.Find(KindNotice), 1)
	assert.Contains(t, trees[2].Root.Texts(), ClosingMessage)

	untitled := Render(slide.Unknown{Tag: "hologram"}, style.Default(), false)
	assert.Contains(t, untitled.Root.Texts(), UntitledLabel)
}

func TestRenderMalformedSlideExplainsItself(t *testing.T) {
	t.Parallel()

	seq, err := slide.Parse([]byte(`[{"type": "barchart", "title": "Sales", "data": [{"label": "A", "value": "12"}]}]`), "deck.json")
	require.NoError(t, err)
	require.Len(t, seq, 1)

	tree := Render(seq[0], style.Default(), true)
	assert.Nil(t, tree.Animation)
	assert.Contains(t, tree.Root.Texts(), "Sales")
	assert.Len(t, tree.Root.Find(KindNotice), 1)

	var found bool
	for _, text := range tree.Root.Texts() {
		if strings.HasPrefix(text, "This 'barchart' slide has fields that could not be read: ") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestRenderFrameColors(t *testing.T) {
	t.Parallel()

	cfg := style.Default()

	section := Render(slide.Section{Title: "S"}, cfg, false)
	assert.Equal(t, cfg.Color(style.ColorBackgroundGray), section.Root.Style.Background)
	assert.Equal(t, "#333333", section.Root.Style.Color)

	content := Render(slide.Content{Title: "C"}, cfg, false)
	assert.Equal(t, cfg.Color(style.ColorBackgroundWhite), content.Root.Style.Background)

	dark := cfg.Clone()
	dark.Colors[style.ColorBackgroundWhite] = "#202124"
	darkTree := Render(slide.Content{Title: "C"}, dark, false)
	assert.Equal(t, contrast.White, darkTree.Root.Style.Color)

	broken := cfg.Clone()
	broken.Colors[style.ColorBackgroundWhite] = "nope"
	brokenTree := Render(slide.Content{Title: "C"}, broken, false)
	assert.Equal(t, contrast.Black, brokenTree.Root.Style.Color)

	fallback := cfg.Clone()
	delete(fallback.Colors, style.ColorReadableOnWhite)
	fallback.Colors[style.ColorTextPrimary] = "#111111"
	assert.Equal(t, "#111111", Render(slide.Content{Title: "C"}, fallback, false).Root.Style.Color)
}

func TestRenderOrnamentsSuppressedForCoverSlides(t *testing.T) {
	t.Parallel()

	cfg := style.Default()
	for _, s := range []slide.Slide{slide.Title{}, slide.Section{}, slide.Closing{}} {
		tree := Render(s, cfg, false)
		assert.Empty(t, tree.Root.Find(KindOrnament), s.Type())
		assert.Empty(t, tree.Root.FindRole("footer"), s.Type())
	}

	tree := Render(slide.Content{Title: "C"}, cfg, false)
	assert.Len(t, tree.Root.Find(KindOrnament), 2)
	footer := tree.Root.FindRole("footer")
	require.Len(t, footer, 1)
	assert.Equal(t, cfg.FooterText, footer[0].Text)
}

func TestRenderSectionWatermark(t *testing.T) {
	t.Parallel()

	tree := Render(slide.Section{Title: "Results", SectionNo: 3}, style.Default(), false)
	marks := tree.Root.Find(KindWatermark)
	require.Len(t, marks, 1)
	assert.Equal(t, "03", marks[0].Text)
	assert.InDelta(t, 0.1, marks[0].Style.Opacity, 1e-9)

	zero := Render(slide.Section{Title: "Intro"}, style.Default(), false)
	assert.Equal(t, "00", zero.Root.Find(KindWatermark)[0].Text)
}

func TestRenderClosingLogo(t *testing.T) {
	t.Parallel()

	cfg := style.Default()
	assert.Empty(t, Render(slide.Closing{}, cfg, false).Root.Find(KindImage))

	cfg.Logos.Closing = "https://example.com/logo.png"
	images := Render(slide.Closing{}, cfg, false).Root.Find(KindImage)
	require.Len(t, images, 1)
	assert.Equal(t, "https://example.com/logo.png", images[0].Src)
}

func TestRenderContentColumnsWinOverPoints(t *testing.T) {
	t.Parallel()

	cfg := style.Default()

	withColumns := Render(slide.Content{
		Title:   "C",
		Points:  []string{"ignored"},
		Columns: [][]string{{"a1", "a2"}, {"b1"}},
	}, cfg, false)
	lists := withColumns.Root.Find(KindList)
	require.Len(t, lists, 2)
	assert.NotContains(t, withColumns.Root.Texts(), "ignored")
	grids := withColumns.Root.Find(KindGrid)
	require.Len(t, grids, 1)
	assert.Equal(t, 2, grids[0].Style.Columns)

	single := Render(slide.Content{Title: "C", Points: []string{"**bold** point"}}, cfg, false)
	assert.Empty(t, single.Root.Find(KindGrid))
	items := single.Root.Find(KindItem)
	require.Len(t, items, 1)
	assert.Equal(t, []Run{{Text: "bold", Emphasis: true}, {Text: " point"}}, items[0].Runs)

	twoCol := Render(slide.Content{Title: "C", Points: []string{"a"}, TwoColumn: true}, cfg, false)
	assert.Len(t, twoCol.Root.Find(KindGrid), 1)
}

func TestRenderCompareLanes(t *testing.T) {
	t.Parallel()

	cfg := style.Default()
	tree := Render(slide.Compare{
		Title: "C", LeftTitle: "Before", RightTitle: "After",
		LeftItems: []string{"slow"}, RightItems: []string{"fast", "**cheap**"},
	}, cfg, false)

	left := tree.Root.FindRole("left")
	right := tree.Root.FindRole("right")
	require.Len(t, left, 1)
	require.Len(t, right, 1)
	assert.Len(t, right[0].Find(KindItem), 2)
	assert.Equal(t, cfg.Color(style.ColorPrimaryBlue), right[0].Find(KindHeading)[0].Style.Background)
}

func TestRenderDiagramConnectors(t *testing.T) {
	t.Parallel()

	lanes := []slide.Lane{{Title: "A", Items: []string{"x"}}, {Title: "B"}, {Title: "C"}}
	tree := Render(slide.Diagram{Title: "D", Lanes: lanes}, style.Default(), false)
	assert.Len(t, tree.Root.FindRole("lane"), 3)
	assert.Len(t, tree.Root.Find(KindConnector), 2)

	one := Render(slide.Diagram{Title: "D", Lanes: lanes[:1]}, style.Default(), false)
	assert.Empty(t, one.Root.Find(KindConnector))
}

func TestRenderProcessNumbering(t *testing.T) {
	t.Parallel()

	tree := Render(slide.Process{Title: "P", Steps: []string{"a", "b", "c"}}, style.Default(), false)
	chips := tree.Root.FindRole(style.SizeChip)
	require.Len(t, chips, 3)
	assert.Equal(t, "1", chips[0].Text)
	assert.Equal(t, "3", chips[2].Text)
	assert.Len(t, tree.Root.Find(KindRail), 1)
}

func TestRenderTimelineParityAndState(t *testing.T) {
	t.Parallel()

	cfg := style.Default()
	tree := Render(slide.Timeline{Title: "T", Milestones: []slide.Milestone{
		{Label: "a", State: slide.StateDone},
		{Label: "b", State: slide.StateNext},
		{Label: "c"},
	}}, cfg, false)

	markers := tree.Root.Find(KindMarker)
	require.Len(t, markers, 3)
	assert.Equal(t, cfg.Color(style.ColorGoogleGreen), markers[0].Style.Background)
	assert.Equal(t, cfg.Color(style.ColorGoogleYellow), markers[1].Style.Background)
	assert.Equal(t, cfg.Color(style.ColorNeutralGray), markers[2].Style.Background)
	assert.Equal(t, "todo", markers[2].Role)

	assert.Len(t, tree.Root.FindRole("above"), 2)
	below := tree.Root.FindRole("below")
	require.Len(t, below, 1)
	assert.Equal(t, KindMarker, below[0].Children[0].Kind)
}

func TestRenderCardsGrid(t *testing.T) {
	t.Parallel()

	tree := Render(slide.Cards{Title: "C", Items: []slide.CardItem{
		{Text: "plain"},
		{Title: "T", Desc: "desc"},
		{Title: "only title"},
	}}, style.Default(), false)

	grid := tree.Root.Find(KindGrid)
	require.Len(t, grid, 1)
	assert.Equal(t, 3, grid[0].Style.Columns)
	assert.Len(t, tree.Root.FindRole("cardDesc"), 1)
	assert.Len(t, tree.Root.FindRole("cardTitle"), 2)

	two := Render(slide.Cards{Title: "C", Columns: 2}, style.Default(), false)
	assert.Equal(t, 2, two.Root.Find(KindGrid)[0].Style.Columns)
}

func TestRenderTableZebraAndRaggedRows(t *testing.T) {
	t.Parallel()

	cfg := style.Default()
	tree := Render(slide.Table{
		Title:   "T",
		Headers: []string{"a", "b"},
		Rows:    [][]string{{"1", "2", "3"}, {"4"}, {"5", "6"}},
	}, cfg, false)

	rows := tree.Root.FindRole("row")
	require.Len(t, rows, 3)
	assert.Equal(t, "", rows[0].Style.Background)
	assert.Equal(t, cfg.Color(style.ColorBackgroundGray), rows[1].Style.Background)
	assert.Equal(t, "", rows[2].Style.Background)
	assert.Len(t, rows[0].Children, 3)
	assert.Len(t, rows[1].Children, 1)
	assert.Len(t, tree.Root.Find(KindHeaderCell), 2)
}

func TestRenderProgressFill(t *testing.T) {
	t.Parallel()

	tree := Render(slide.Progress{Title: "P", Items: []slide.ProgressItem{
		{Label: "a", Percent: 40},
		{Label: "b", Percent: 140},
	}}, style.Default(), true)

	fills := tree.Root.FindRole("fill")
	require.Len(t, fills, 2)
	assert.Equal(t, Fill{Axis: AxisWidth, Target: 40}, *fills[0].Fill)
	assert.Equal(t, 100.0, fills[1].Fill.Target)
	assert.Contains(t, tree.Root.Texts(), "40%")

	require.NotNil(t, tree.Animation)
	assert.True(t, tree.Animation.Armed)
	assert.Equal(t, RevealDuration, tree.Animation.Duration)
	assert.Equal(t, RevealDelay, tree.Animation.Delay)
}

func TestRenderBarChartAllZero(t *testing.T) {
	t.Parallel()

	tree := Render(slide.BarChart{Title: "B", Data: []slide.Datum{{Label: "a"}, {Label: "b"}}}, style.Default(), true)
	bars := tree.Root.FindRole("column")
	require.Len(t, bars, 2)
	for _, b := range bars {
		assert.Equal(t, 0.0, b.Fill.Target)
		assert.Equal(t, 0.0, b.Fill.At(1))
	}
}

func TestRenderBarChartPaletteCycles(t *testing.T) {
	t.Parallel()

	cfg := style.Default()
	data := make([]slide.Datum, 6)
	for i := range data {
		data[i] = slide.Datum{Label: "x", Value: float64(i + 1)}
	}
	bars := Render(slide.BarChart{Title: "B", Data: data}, cfg, false).Root.FindRole("column")
	require.Len(t, bars, 6)
	assert.Equal(t, cfg.Color(style.ColorPrimaryBlue), bars[0].Style.Background)
	assert.Equal(t, cfg.Color(style.ColorNeutralGray), bars[4].Style.Background)
	assert.Equal(t, cfg.Color(style.ColorPrimaryBlue), bars[5].Style.Background)
	assert.InDelta(t, 80, bars[5].Fill.Target, 1e-9)
}

func TestRenderLineChart(t *testing.T) {
	t.Parallel()

	one := Render(slide.LineChart{Title: "L", Data: slide.LineData{
		Labels:   []string{"Jan", "Feb", "Mar"},
		Datasets: []slide.Dataset{{Label: "a", Values: []float64{1, 2, 3}}},
	}}, style.Default(), false)

	assert.Empty(t, one.Root.FindRole("legend"))
	assert.Len(t, one.Root.FindRole("xlabel"), 3)
	assert.Len(t, one.Root.FindRole("point"), 3)
	assert.Equal(t, "3", one.Root.FindRole("ymax")[0].Text)
	assert.Equal(t, "0", one.Root.FindRole("ymin")[0].Text)
	require.NotNil(t, one.Animation)
	assert.Equal(t, LineDuration, one.Animation.Duration)
	assert.False(t, one.Animation.Armed)

	series := one.Root.FindRole("series")
	require.Len(t, series, 1)
	assert.Greater(t, series[0].Geometry.Length, 0.0)

	two := Render(slide.LineChart{Title: "L", Data: slide.LineData{
		Labels:   []string{"Jan"},
		Datasets: []slide.Dataset{{Label: "a", Values: []float64{0}}, {Label: "b", Values: []float64{0}}},
	}}, style.Default(), false)
	legend := two.Root.FindRole("legend")
	require.Len(t, legend, 1)
	assert.Len(t, legend[0].Children, 2)
}

func TestRenderPieChart(t *testing.T) {
	t.Parallel()

	zero := Render(slide.PieChart{Title: "P", Data: []slide.Datum{{Label: "a"}, {Label: "b"}}}, style.Default(), true)
	for _, w := range zero.Root.FindRole("wedge") {
		assert.Equal(t, 0.0, w.Geometry.Sweep)
	}
	assert.Contains(t, zero.Root.Texts(), "a: 0 (0%)")

	tree := Render(slide.PieChart{Title: "P", Data: []slide.Datum{{Label: "a", Value: 3}, {Label: "b", Value: 1}}}, style.Default(), true)
	assert.Contains(t, tree.Root.Texts(), "a: 3 (75.0%)")
	assert.Contains(t, tree.Root.Texts(), "b: 1 (25.0%)")

	canvas := tree.Root.FindRole("piechart")
	require.NotEmpty(t, canvas)
	var scaled *Node
	for _, n := range canvas {
		if n.Kind == KindCanvas {
			scaled = n
		}
	}
	require.NotNil(t, scaled)
	assert.Equal(t, AxisScale, scaled.Fill.Axis)
}

func TestStaticSlidesCarryNoAnimation(t *testing.T) {
	t.Parallel()

	for _, s := range []slide.Slide{slide.Title{}, slide.Content{}, slide.Table{}, slide.Unknown{Tag: "x"}} {
		assert.False(t, Render(s, style.Default(), true).Animated())
	}
}

func TestRenderToleratesEmptyConfiguration(t *testing.T) {
	t.Parallel()

	var cfg style.Configuration
	tree := Render(slide.BarChart{Title: "B", Data: []slide.Datum{{Label: "a", Value: 1}}}, cfg, true)
	assert.Equal(t, contrast.White, tree.Root.Style.Background)
	assert.Equal(t, contrast.Black, tree.Root.Style.Color)
	assert.InDelta(t, 10.0, tree.Root.FindRole("value")[0].Style.FontSize, 1e-9)
}

func TestFillAt(t *testing.T) {
	t.Parallel()

	f := Fill{Axis: AxisHeight, Target: 80}
	assert.Equal(t, 0.0, f.At(0))
	assert.Equal(t, 40.0, f.At(0.5))
	assert.Equal(t, 80.0, f.At(2))
}
