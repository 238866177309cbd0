// seehuhn.de/go/chart - a 2D chart rendering library
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package chart

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/chart/paint"
)

func zigzag() *Curve {
	c := NewCurve("zigzag", DefaultSeriesConfig())
	c.SetData([]float64{0, 1, 2, 3}, []float64{0, 1, 0, 1})
	return c
}

func TestAxisColorCycle(t *testing.T) {
	a := NewAxis(0, 0, 400, 300)
	var curves []*Curve
	for range 9 {
		c := zigzag()
		curves = append(curves, c)
		a.Add(c)
	}
	a.Render(&paint.Recorder{})

	pal := DefaultTheme().Palette
	for i, c := range curves {
		assert.Equal(t, pal[[]int{0, 1, 2, 3, 4, 5, 6, 7, 0}[i]], c.Color(), "series %d", i)
	}

	// colours are assigned once
	a.Render(&paint.Recorder{})
	assert.Equal(t, pal[0], curves[8].Color())
}

func TestAxisKeepsColors(t *testing.T) {
	a := NewAxis(0, 0, 400, 300)
	c1 := NewCurve("given", redConfig())
	c1.SetData([]float64{0, 1}, []float64{0, 1})
	c2 := zigzag()
	h := NewHistogram("h", DefaultSeriesConfig())
	h.SetDataNorm([]float64{1, 2})
	a.Add(c1)
	a.Add(h)
	a.Add(c2)
	a.Render(&paint.Recorder{})

	assert.Equal(t, red, c1.Color())
	assert.Equal(t, neutral, h.Color())
	assert.Equal(t, DefaultTheme().Palette[0], c2.Color())
}

func TestAxisEndToEnd(t *testing.T) {
	for _, explicit := range []bool{false, true} {
		a := NewAxis(0, 0, 400, 300, WithStrategy(Stretch))
		if explicit {
			a.SetXLimit(0, 3)
			a.SetYLimit(0, 1)
		}
		a.Add(zigzag())

		rec := &paint.Recorder{}
		a.Render(rec)
		l, ok := a.Layout()
		require.True(t, ok)
		assert.Equal(t, 40.0, l.Margin)

		last := rec.Ops[len(rec.Ops)-1]
		require.True(t, last.Stroke)
		pts := last.Points()
		require.Len(t, pts, 4)

		first, end := l.Data.Apply(vec.Vec2{}), l.Data.Apply(vec.Vec2{X: 3, Y: 1})
		assert.InDelta(t, first.X, pts[0].X, 1e-9)
		assert.InDelta(t, first.Y, pts[0].Y, 1e-9)
		assert.InDelta(t, end.X, pts[3].X, 1e-9)
		assert.InDelta(t, end.Y, pts[3].Y, 1e-9)

		if explicit {
			// the data fills the 320×220 plot area
			assert.InDelta(t, 40, pts[0].X, 1e-9)
			assert.InDelta(t, 260, pts[0].Y, 1e-9)
			assert.InDelta(t, 360, pts[3].X, 1e-9)
			assert.InDelta(t, 40, pts[3].Y, 1e-9)
		}
	}
}

func TestAxisStickyLimit(t *testing.T) {
	a := NewAxis(0, 0, 400, 300)
	c := zigzag()
	a.Add(c)
	a.SetXLimit(-5, 5)

	a.autoRange()
	assert.Equal(t, Limit{-5, 5}, a.XLimit())
	y := a.YLimit()
	assert.Equal(t, 0.0, y.Min)
	assert.InDelta(t, 1.1, y.Max, 1e-12)

	c.SetData([]float64{0, 100}, []float64{0, 10})
	a.Render(&paint.Recorder{})
	assert.Equal(t, Limit{-5, 5}, a.XLimit())
	assert.InDelta(t, 11, a.YLimit().Max, 1e-12)

	a.ClearXLimit()
	a.autoRange()
	assert.InDelta(t, 110, a.XLimit().Max, 1e-12)
}

func TestAxisAutoRange(t *testing.T) {
	a := NewAxis(0, 0, 400, 300)
	a.autoRange()
	assert.Equal(t, Limit{0, 1}, a.XLimit())
	assert.Equal(t, Limit{0, 1}, a.YLimit())

	// a single point is widened to a unit range
	c := NewCurve("point", DefaultSeriesConfig())
	c.SetData([]float64{2}, []float64{-1})
	a.Add(c)
	a.autoRange()
	assert.Equal(t, Limit{1.5, 2.5}, a.XLimit())
	assert.Equal(t, Limit{-1.5, -0.5}, a.YLimit())
}

func TestAxisFurnitureFirst(t *testing.T) {
	theme := DefaultTheme()
	a := NewAxis(0, 0, 400, 300, WithTheme(theme))
	c := zigzag()
	a.Add(c)

	rec := &paint.Recorder{}
	a.Render(rec)
	require.Len(t, rec.Ops, 3)
	assert.Equal(t, theme.Grid, rec.Ops[0].Color)
	assert.Equal(t, theme.Foreground, rec.Ops[1].Color)
	assert.Equal(t, c.Color(), rec.Ops[2].Color)

	// furniture is placed with the UI transform
	l, _ := a.Layout()
	assert.Equal(t, l.UI.Matrix(), rec.Ops[0].CTM)
}

func TestAxisLines(t *testing.T) {
	// 0 is outside of both ranges: no axis lines, only ticks
	a := NewAxis(0, 0, 400, 300, WithXLimit(1, 2), WithYLimit(1, 2))
	rec := &paint.Recorder{}
	a.Render(rec)
	require.Len(t, rec.Ops, 2)
	withLines := len(rec.Ops[1].Path.Cmds)

	b := NewAxis(0, 0, 400, 300, WithXLimit(-1, 1), WithYLimit(1, 2))
	rec = &paint.Recorder{}
	b.Render(rec)
	require.Len(t, rec.Ops, 2)
	// the y axis with its arrow adds three lines
	assert.Equal(t, withLines+6, len(rec.Ops[1].Path.Cmds))
}

func TestAxisArrowAtMaximum(t *testing.T) {
	a := NewAxis(0, 0, 400, 300, WithXLimit(-1, 1), WithYLimit(-1, 1), WithStrategy(Stretch))
	rec := &paint.Recorder{}
	a.Render(rec)
	l, _ := a.Layout()

	tip := l.Data.Apply(vec.Vec2{X: 1})
	pts := rec.Ops[1].Points()
	// the arrow head starts at the end of the x axis
	require.GreaterOrEqual(t, len(pts), 6)
	assert.InDelta(t, tip.X, pts[2].X, 1e-9)
	assert.InDelta(t, tip.Y, pts[2].Y, 1e-9)
	assert.InDelta(t, tip.X-arrowLength, pts[3].X, 1e-9)
	assert.InDelta(t, arrowHalf, pts[3].Y-tip.Y, 1e-9)
}

func TestAxisEmptyRange(t *testing.T) {
	a := NewAxis(0, 0, 400, 300, WithXLimit(1, 1))
	c := zigzag()
	a.Add(c)

	rec := &paint.Recorder{}
	a.Render(rec)
	assert.Empty(t, rec.Ops)
	_, ok := a.Layout()
	assert.False(t, ok)
	assert.Equal(t, color.NRGBA{}, c.Color(), "skipped series must not be coloured")
}

func TestAxisViewport(t *testing.T) {
	a := NewAxis(0, 0, 400, 300)
	a.SetViewport(100, 50, 200, 100)
	assert.Equal(t, Viewport{100, 50, 200, 100}, a.Viewport())
	a.Add(zigzag())
	a.Render(&paint.Recorder{})

	l, ok := a.Layout()
	require.True(t, ok)
	assert.Equal(t, 20.0, l.Margin)
	x, y := l.UI.ApplyXY(0, 0)
	assert.GreaterOrEqual(t, x, 120.0)
	assert.GreaterOrEqual(t, y, 70.0)
}

// labels records the strings drawn by an axis.
type labels struct {
	text []string
}

func (l *labels) DrawText(_ paint.Sink, s string, _, _, _ float64, _ color.NRGBA) {
	l.text = append(l.text, s)
}

func TestAxisLabels(t *testing.T) {
	lb := &labels{}
	a := NewAxis(0, 0, 400, 300, WithText(lb), WithXLimit(0, 10), WithYLimit(0, 1))
	a.Render(&paint.Recorder{})

	assert.Len(t, lb.text, 11+11)
	assert.Equal(t, "0", lb.text[0])
	assert.Equal(t, "10", lb.text[10])
	assert.Equal(t, "0.5", lb.text[16])
}

func TestAxisThemePalette(t *testing.T) {
	theme := DefaultTheme()
	for i := range theme.Palette {
		theme.Palette[i] = color.NRGBA{G: uint8(10 * i), A: 255}
	}
	a := NewAxis(0, 0, 400, 300, WithTheme(theme))
	h := NewHistogram("h", DefaultSeriesConfig())
	h.SetDataNorm([]float64{3})
	c := zigzag()
	a.Add(h)
	a.Add(c)

	rec := &paint.Recorder{}
	a.Render(rec)
	assert.Equal(t, theme.Palette[0], c.Color())
	fills := ops(rec, false)
	require.Len(t, fills, 1)
	assert.Equal(t, theme.Palette[0], fills[0].Color)
}
