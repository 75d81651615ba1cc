package render

import (
	"fmt"
	"math"
	"strings"
)

// Line chart canvas in logical units.
const (
	LineWidth   = 500.0
	LineHeight  = 250.0
	padTop      = 10.0
	padRight    = 20.0
	padBottom   = 20.0
	padLeft     = 30.0
	lineStroke  = 2.0
	pointRadius = 3.0

	// BarMaxPercent is the share of the plot the tallest bar occupies.
	BarMaxPercent = 80.0

	pieBox    = 100.0
	pieCenter = 50.0
	pieRadius = 45.0
)

// BarHeights returns each bar's height as a percentage of the plot. The
// largest non-negative value maps to BarMaxPercent; all-zero data maps to 0.
func BarHeights(values []float64) []float64 {
	peak := 0.0
	for _, v := range values {
		if v > peak {
			peak = v
		}
	}
	out := make([]float64, len(values))
	if peak <= 0 {
		return out
	}
	for i, v := range values {
		if v > 0 {
			out[i] = v / peak * BarMaxPercent
		}
	}
	return out
}

// LineScale maps series indices and values onto the line chart canvas. The
// value axis always includes zero.
type LineScale struct {
	Min, Max float64
	labels   int
}

// NewLineScale builds a scale over every value of every series.
func NewLineScale(series [][]float64, labelCount int) LineScale {
	s := LineScale{labels: labelCount}
	for _, values := range series {
		for _, v := range values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			s.Max = math.Max(s.Max, v)
			s.Min = math.Min(s.Min, v)
		}
	}
	return s
}

// X returns the horizontal position of point j.
func (s LineScale) X(j int) float64 {
	step := (LineWidth - padLeft - padRight) / math.Max(1, float64(s.labels-1))
	return padLeft + float64(j)*step
}

// Y returns the vertical position of value v. A zero span maps onto the baseline.
func (s LineScale) Y(v float64) float64 {
	baseline := LineHeight - padBottom
	span := s.Max - s.Min
	if span == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return baseline
	}
	return baseline - (v-s.Min)/span*(LineHeight-padTop-padBottom)
}

// Path returns the SVG path data for a series and its polyline length.
func (s LineScale) Path(values []float64) (string, float64) {
	var b strings.Builder
	length := 0.0
	var px, py float64
	for j, v := range values {
		x, y := s.X(j), s.Y(v)
		if j == 0 {
			fmt.Fprintf(&b, "M%s,%s", coord(x), coord(y))
		} else {
			fmt.Fprintf(&b, " L%s,%s", coord(x), coord(y))
			length += math.Hypot(x-px, y-py)
		}
		px, py = x, y
	}
	return b.String(), length
}

// Wedge is one pie slice, angles in radians.
type Wedge struct {
	Start    float64
	Sweep    float64
	LargeArc bool
	D        string
}

// Wedges lays slices out clockwise from twelve o'clock. A zero total gives
// every wedge a zero sweep.
func Wedges(values []float64) []Wedge {
	total := 0.0
	for _, v := range values {
		total += v
	}

	out := make([]Wedge, len(values))
	angle := -math.Pi / 2
	for i, v := range values {
		sweep := 0.0
		if total > 0 {
			sweep = v / total * 2 * math.Pi
		}
		out[i] = Wedge{
			Start:    angle,
			Sweep:    sweep,
			LargeArc: sweep > math.Pi,
			D:        wedgePath(angle, sweep),
		}
		angle += sweep
	}
	return out
}

func wedgePath(start, sweep float64) string {
	const cx, cy, r = pieCenter, pieCenter, pieRadius

	// A single arc cannot close on its own start point.
	if sweep >= 2*math.Pi-1e-9 {
		return fmt.Sprintf("M %s %s A %s %s 0 1 1 %s %s A %s %s 0 1 1 %s %s Z",
			coord(cx), coord(cy-r), coord(r), coord(r), coord(cx), coord(cy+r),
			coord(r), coord(r), coord(cx), coord(cy-r))
	}

	end := start + sweep
	large := 0
	if sweep > math.Pi {
		large = 1
	}
	return fmt.Sprintf("M %s %s A %s %s 0 %d 1 %s %s L %s %s Z",
		coord(cx+r*math.Cos(start)), coord(cy+r*math.Sin(start)),
		coord(r), coord(r), large,
		coord(cx+r*math.Cos(end)), coord(cy+r*math.Sin(end)),
		coord(cx), coord(cy))
}

// Percentages returns each value's share of the total, 0 when the total is 0.
func Percentages(values []float64) []float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	out := make([]float64, len(values))
	if total <= 0 {
		return out
	}
	for i, v := range values {
		out[i] = v / total * 100
	}
	return out
}
