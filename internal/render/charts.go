package render

import (
	"fmt"
	"strconv"

	"github.com/alexisbeaulieu97/slidepreview/internal/domain/slide"
	"github.com/alexisbeaulieu97/slidepreview/internal/domain/style"
)

func (r *renderer) progress(s slide.Progress) *Node {
	items := &Node{Kind: KindColumn, Role: "items"}
	for _, item := range s.Items {
		target := float64(item.Percent)
		if target < 0 {
			target = 0
		} else if target > 100 {
			target = 100
		}

		items.Append((&Node{Kind: KindPanel, Role: "progress"}).Append(
			(&Node{Kind: KindRow, Role: "caption"}).Append(
				&Node{Kind: KindLabel, Role: style.SizeBody, Text: item.Label, Style: Style{FontSize: r.size(style.SizeBody)}},
				&Node{
					Kind:  KindLabel,
					Role:  style.SizeChip,
					Text:  strconv.Itoa(item.Percent) + "%",
					Style: Style{FontSize: r.size(style.SizeChip), Color: r.color(style.ColorPrimaryBlue)},
				},
			),
			(&Node{Kind: KindBar, Role: "track", Style: Style{Background: r.color(style.ColorFaintGray)}}).Append(
				&Node{
					Kind:  KindBar,
					Role:  "fill",
					Style: Style{Background: r.color(style.ColorGoogleGreen)},
					Fill:  &Fill{Axis: AxisWidth, Target: target},
				},
			),
		))
	}
	return (&Node{Kind: KindColumn, Role: "progress"}).Append(r.header(s.Title, s.Subhead)...).Append(items)
}

func (r *renderer) barChart(s slide.BarChart) *Node {
	values := make([]float64, len(s.Data))
	for i, d := range s.Data {
		values[i] = d.Value
	}
	heights := BarHeights(values)

	bars := &Node{Kind: KindRow, Role: "bars"}
	for i, d := range s.Data {
		bars.Append((&Node{Kind: KindColumn, Role: "bar"}).Append(
			&Node{Kind: KindLabel, Role: "value", Text: formatNumber(d.Value), Style: Style{FontSize: r.size(style.SizeChip), Bold: true, Align: "center"}},
			&Node{
				Kind:  KindBar,
				Role:  "column",
				Style: Style{Background: r.chartColor(i)},
				Fill:  &Fill{Axis: AxisHeight, Target: heights[i]},
			},
			&Node{Kind: KindLabel, Role: "category", Text: d.Label, Style: Style{FontSize: r.size(style.SizeSmall), Align: "center"}},
		))
	}
	return (&Node{Kind: KindColumn, Role: "barchart"}).Append(r.header(s.Title, s.Subhead)...).Append(bars)
}

func (r *renderer) lineChart(s slide.LineChart) *Node {
	series := make([][]float64, len(s.Data.Datasets))
	for i, ds := range s.Data.Datasets {
		series[i] = ds.Values
	}
	scale := NewLineScale(series, len(s.Data.Labels))
	small := r.size(style.SizeSmall)
	axis := r.color(style.ColorFaintGray)
	base := LineHeight - padBottom

	canvas := (&Node{Kind: KindCanvas, Role: "linechart", Geometry: &Geometry{Width: LineWidth, Height: LineHeight}}).Append(
		&Node{Kind: KindLine, Role: "yaxis", Style: Style{Color: axis}, Geometry: &Geometry{X1: padLeft, Y1: padTop, X2: padLeft, Y2: base}},
		&Node{Kind: KindLabel, Role: "ymax", Text: formatNumber(scale.Max), Style: Style{FontSize: small}, Geometry: &Geometry{X: padLeft - 5, Y: padTop + 5, Anchor: "end"}},
		&Node{Kind: KindLabel, Role: "ymin", Text: formatNumber(scale.Min), Style: Style{FontSize: small}, Geometry: &Geometry{X: padLeft - 5, Y: base, Anchor: "end"}},
		&Node{Kind: KindLine, Role: "xaxis", Style: Style{Color: axis}, Geometry: &Geometry{X1: padLeft, Y1: base, X2: LineWidth - padRight, Y2: base}},
	)
	for i, label := range s.Data.Labels {
		canvas.Append(&Node{
			Kind:     KindLabel,
			Role:     "xlabel",
			Text:     label,
			Style:    Style{FontSize: small},
			Geometry: &Geometry{X: scale.X(i), Y: base + 12, Anchor: "middle"},
		})
	}

	for i, ds := range s.Data.Datasets {
		color := r.chartColor(i)
		d, length := scale.Path(ds.Values)
		canvas.Append(&Node{
			Kind:     KindPath,
			Role:     "series",
			Text:     ds.Label,
			Style:    Style{Color: color},
			Geometry: &Geometry{D: d, Length: length, StrokeWidth: lineStroke},
			Fill:     &Fill{Axis: AxisStroke, Target: 1},
		})
		for j, v := range ds.Values {
			canvas.Append(&Node{
				Kind:     KindCircle,
				Role:     "point",
				Style:    Style{Background: color},
				Geometry: &Geometry{CX: scale.X(j), CY: scale.Y(v), R: pointRadius},
			})
		}
	}

	col := (&Node{Kind: KindColumn, Role: "linechart"}).Append(r.header(s.Title, s.Subhead)...).Append(canvas)
	if len(s.Data.Datasets) > 1 {
		legend := &Node{Kind: KindList, Role: "legend", Style: Style{FontSize: small}}
		for i, ds := range s.Data.Datasets {
			legend.Append(&Node{Kind: KindItem, Role: "swatch", Text: ds.Label, Style: Style{Background: r.chartColor(i)}})
		}
		col.Append(legend)
	}
	return col
}

func (r *renderer) pieChart(s slide.PieChart) *Node {
	values := make([]float64, len(s.Data))
	for i, d := range s.Data {
		values[i] = d.Value
	}
	total := 0.0
	for _, v := range values {
		total += v
	}
	wedges := Wedges(values)
	shares := Percentages(values)

	canvas := &Node{
		Kind:     KindCanvas,
		Role:     "piechart",
		Geometry: &Geometry{Width: pieBox, Height: pieBox},
		Fill:     &Fill{Axis: AxisScale, Target: 1},
	}
	legend := &Node{Kind: KindList, Role: "legend", Style: Style{FontSize: r.size(style.SizeBody)}}

	for i, d := range s.Data {
		w := wedges[i]
		canvas.Append(&Node{
			Kind:     KindPath,
			Role:     "wedge",
			Text:     d.Label,
			Style:    Style{Background: r.chartColor(i)},
			Geometry: &Geometry{D: w.D, Start: w.Start, Sweep: w.Sweep, LargeArc: w.LargeArc},
		})

		share := "0"
		if total > 0 {
			share = fmt.Sprintf("%.1f", shares[i])
		}
		legend.Append(&Node{
			Kind:  KindItem,
			Role:  "swatch",
			Text:  fmt.Sprintf("%s: %s (%s%%)", d.Label, formatNumber(d.Value), share),
			Style: Style{Background: r.chartColor(i)},
		})
	}

	grid := (&Node{Kind: KindGrid, Role: "pie", Style: Style{Columns: 2}}).Append(canvas, legend)
	return (&Node{Kind: KindColumn, Role: "piechart"}).Append(r.header(s.Title, s.Subhead)...).Append(grid)
}
