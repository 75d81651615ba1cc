package render

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBarHeights(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []float64{0, 0, 0}, BarHeights([]float64{0, 0, 0}))
	assert.Equal(t, []float64{80, 40, 0}, BarHeights([]float64{10, 5, 0}))
	assert.Equal(t, []float64{0, 80}, BarHeights([]float64{-3, 6}))
	assert.Empty(t, BarHeights(nil))
}

func TestLineScale(t *testing.T) {
	t.Parallel()

	t.Run("axis includes zero", func(t *testing.T) {
		s := NewLineScale([][]float64{{5, 10}, {7}}, 2)
		assert.Equal(t, 0.0, s.Min)
		assert.Equal(t, 10.0, s.Max)
		assert.InDelta(t, 230, s.Y(0), 1e-9)
		assert.InDelta(t, 10, s.Y(10), 1e-9)
		assert.InDelta(t, 30, s.X(0), 1e-9)
		assert.InDelta(t, 480, s.X(1), 1e-9)
	})

	t.Run("negative values move the baseline", func(t *testing.T) {
		s := NewLineScale([][]float64{{-5, 5}}, 2)
		assert.Equal(t, -5.0, s.Min)
		assert.InDelta(t, 120, s.Y(0), 1e-9)
	})

	t.Run("single label does not divide by zero", func(t *testing.T) {
		s := NewLineScale([][]float64{{4}}, 1)
		assert.InDelta(t, 30, s.X(0), 1e-9)
		assert.InDelta(t, 480, s.X(1), 1e-9)

		empty := NewLineScale(nil, 0)
		assert.False(t, math.IsNaN(empty.X(3)))
	})

	t.Run("zero span maps to baseline", func(t *testing.T) {
		s := NewLineScale([][]float64{{0, 0, 0}}, 3)
		for _, v := range []float64{0, 0, 0} {
			assert.InDelta(t, 230, s.Y(v), 1e-9)
		}
	})

	t.Run("path and length", func(t *testing.T) {
		s := NewLineScale([][]float64{{0, 10}}, 2)
		d, length := s.Path([]float64{0, 10})
		assert.Equal(t, "M30,230 L480,10", d)
		assert.InDelta(t, math.Hypot(450, 220), length, 1e-9)
	})
}

func TestWedges(t *testing.T) {
	t.Parallel()

	t.Run("zero total", func(t *testing.T) {
		wedges := Wedges([]float64{0, 0})
		require.Len(t, wedges, 2)
		for _, w := range wedges {
			assert.Equal(t, 0.0, w.Sweep)
			assert.False(t, w.LargeArc)
			assert.InDelta(t, -math.Pi/2, w.Start, 1e-9)
		}
	})

	t.Run("starts at twelve and proceeds clockwise", func(t *testing.T) {
		wedges := Wedges([]float64{3, 1})
		require.Len(t, wedges, 2)
		assert.InDelta(t, -math.Pi/2, wedges[0].Start, 1e-9)
		assert.InDelta(t, 1.5*math.Pi, wedges[0].Sweep, 1e-9)
		assert.True(t, wedges[0].LargeArc)
		assert.InDelta(t, math.Pi, wedges[1].Start, 1e-9)
		assert.False(t, wedges[1].LargeArc)
		assert.True(t, strings.HasPrefix(wedges[0].D, "M 50 5 A 45 45 0 1 1 "))
	})

	t.Run("half is not large", func(t *testing.T) {
		wedges := Wedges([]float64{1, 1})
		assert.False(t, wedges[0].LargeArc)
		assert.InDelta(t, math.Pi, wedges[0].Sweep, 1e-9)
	})

	t.Run("full circle closes with two arcs", func(t *testing.T) {
		wedges := Wedges([]float64{7})
		require.Len(t, wedges, 1)
		assert.Equal(t, 2, strings.Count(wedges[0].D, " A "))
		assert.True(t, wedges[0].LargeArc)
	})
}

func TestPercentages(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []float64{0, 0}, Percentages([]float64{0, 0}))
	assert.Equal(t, []float64{75, 25}, Percentages([]float64{3, 1}))
}
