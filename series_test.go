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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/chart/paint"
)

var red = color.NRGBA{R: 200, G: 10, B: 10, A: 200}

func redConfig() SeriesConfig {
	cfg := DefaultSeriesConfig()
	cfg.Color = red
	return cfg
}

func ops(rec *paint.Recorder, stroke bool) []paint.Op {
	var res []paint.Op
	for _, op := range rec.Ops {
		if op.Stroke == stroke {
			res = append(res, op)
		}
	}
	return res
}

// extent returns the bounding box of the points of op.
func extent(op paint.Op) (lo, hi vec.Vec2) {
	pts := op.Points()
	lo, hi = pts[0], pts[0]
	for _, p := range pts[1:] {
		lo = vec.Vec2{X: math.Min(lo.X, p.X), Y: math.Min(lo.Y, p.Y)}
		hi = vec.Vec2{X: math.Max(hi.X, p.X), Y: math.Max(hi.Y, p.Y)}
	}
	return lo, hi
}

func TestCurve(t *testing.T) {
	c := NewCurve("c", redConfig())
	_, ok := c.Bound()
	assert.False(t, ok)

	c.SetData([]float64{0, 1, 2, 3}, []float64{0, 1, 0, 1})
	b, ok := c.Bound()
	require.True(t, ok)
	assert.Equal(t, Bound{0, 3, 0, 1}, b)

	rec := &paint.Recorder{}
	c.Draw(rec, Translate(10, 20))
	require.Len(t, rec.Ops, 1)
	op := rec.Ops[0]
	assert.True(t, op.Stroke)
	assert.Equal(t, red, op.Color)
	assert.Equal(t, 2.0, op.Style.Width)
	assert.Equal(t, graphics.LineCapRound, op.Style.Cap)
	assert.Equal(t, graphics.LineJoinRound, op.Style.Join)
	assert.Equal(t, []vec.Vec2{{X: 10, Y: 20}, {X: 11, Y: 21}, {X: 12, Y: 20}, {X: 13, Y: 21}}, op.Points())

	c.AddData([]float64{4}, []float64{5})
	b, _ = c.Bound()
	assert.Equal(t, Bound{0, 4, 0, 5}, b)
}

func TestCurveMismatch(t *testing.T) {
	c := NewCurve("c", redConfig())
	c.SetData([]float64{0, 1, 2}, []float64{5, 6})

	rec := &paint.Recorder{}
	c.Draw(rec, Identity())
	require.Len(t, rec.Ops, 1)
	assert.Len(t, rec.Ops[0].Points(), 2)

	b, _ := c.Bound()
	assert.Equal(t, Bound{0, 1, 5, 6}, b)
}

func TestCurveGenerated(t *testing.T) {
	c := NewCurve("c", redConfig())
	c.SetFn([]float64{0, 1, 2}, func(x float64) float64 { return x * x })
	b, _ := c.Bound()
	assert.Equal(t, Bound{0, 2, 0, 4}, b)

	c.SetParametric([]float64{0, math.Pi / 2, math.Pi}, math.Cos, math.Sin)
	b, _ = c.Bound()
	assert.InDelta(t, -1, b.XMin, 1e-12)
	assert.InDelta(t, 1, b.XMax, 1e-12)
	assert.InDelta(t, 1, b.YMax, 1e-12)

	c.SetDataPrototype([]float64{3, 4, 5}, 10, 0.5)
	b, _ = c.Bound()
	assert.Equal(t, Bound{10, 11, 3, 5}, b)
}

func TestHiddenSeries(t *testing.T) {
	c := NewCurve("c", redConfig())
	c.SetData([]float64{0, 1}, []float64{0, 1})
	c.SetHidden(true)

	_, ok := c.Bound()
	assert.False(t, ok)
	rec := &paint.Recorder{}
	c.Draw(rec, Identity())
	assert.Empty(t, rec.Ops)

	c.SetHidden(false)
	_, ok = c.Bound()
	assert.True(t, ok)
}

func TestAreaStep(t *testing.T) {
	a := NewArea("a", redConfig())
	a.SetData([]float64{0, 1, 2, 3}, []float64{1, -2, 3})

	rec := &paint.Recorder{}
	a.Draw(rec, Identity())
	fills := ops(rec, false)
	require.Len(t, fills, 3)
	assert.Len(t, ops(rec, true), 3)

	half := red
	half.A = red.A / 2
	for _, op := range fills {
		assert.Equal(t, half, op.Color)
	}

	lo, hi := extent(fills[1])
	assert.Equal(t, vec.Vec2{X: 1, Y: -2}, lo)
	assert.Equal(t, vec.Vec2{X: 2, Y: 0}, hi)

	b, ok := a.Bound()
	require.True(t, ok)
	assert.Equal(t, Bound{0, 3, -2, 3}, b)
}

func TestAreaBaseline(t *testing.T) {
	a := NewArea("a", redConfig())
	a.SetData([]float64{0, 1, 2}, []float64{4, 5})
	b, _ := a.Bound()
	assert.Equal(t, 0.0, b.YMin)
	assert.Equal(t, 5.0, b.YMax)
}

func TestAreaSingleEdge(t *testing.T) {
	a := NewArea("a", redConfig())
	a.SetData([]float64{5}, []float64{2})

	b, ok := a.Bound()
	require.True(t, ok)
	assert.Equal(t, Bound{0, 5, 0, 2}, b)

	rec := &paint.Recorder{}
	a.Draw(rec, Identity())
	fills := ops(rec, false)
	require.Len(t, fills, 1)
	lo, hi := extent(fills[0])
	assert.Equal(t, vec.Vec2{X: 0, Y: 0}, lo)
	assert.Equal(t, vec.Vec2{X: 5, Y: 2}, hi)
}

func TestAreaImplicitEdges(t *testing.T) {
	a := NewArea("a", redConfig())
	a.SetDataPrototype([]float64{1, 2, 3, 4}, 10, 2)
	b, _ := a.Bound()
	assert.Equal(t, Bound{10, 18, 0, 4}, b)

	a.SetDataNorm([]float64{1, 1})
	b, _ = a.Bound()
	assert.Equal(t, Bound{0, 2, 0, 1}, b)

	a.SetDataWithStep(nil, 0, 1) // ignored
	b, _ = a.Bound()
	assert.Equal(t, Bound{0, 2, 0, 1}, b)
}

func TestAreaLine(t *testing.T) {
	a := NewArea("a", redConfig())
	a.SetType(AreaLine)
	a.SetData([]float64{0, 1, 2}, []float64{1, 3, 2})

	rec := &paint.Recorder{}
	a.Draw(rec, Identity())
	fills := ops(rec, false)
	require.Len(t, fills, 1)
	assert.Equal(t, []vec.Vec2{
		{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 3}, {X: 2, Y: 2}, {X: 2, Y: 0},
	}, fills[0].Points())
	assert.Len(t, ops(rec, true), 1)
}

func TestStairStyles(t *testing.T) {
	cases := []struct {
		style StairStyle
		want  []vec.Vec2
	}{
		{StairTraceX, []vec.Vec2{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 4, Y: 1}, {X: 4, Y: 0}}},
		{StairTraceY, []vec.Vec2{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 0}, {X: 4, Y: 0}}},
		{StairMid, []vec.Vec2{
			{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1},
			{X: 3, Y: 1}, {X: 3, Y: 0}, {X: 4, Y: 0},
		}},
	}
	for _, tc := range cases {
		s := NewStair("s", redConfig())
		s.SetStyle(tc.style)
		s.SetData([]float64{0, 2, 4}, []float64{0, 1, 0})

		rec := &paint.Recorder{}
		s.Draw(rec, Identity())
		require.Len(t, rec.Ops, 1)
		assert.Equal(t, tc.want, rec.Ops[0].Points(), "style %d", tc.style)
	}
}

func TestStairSinglePoint(t *testing.T) {
	s := NewStair("s", redConfig())
	s.SetData([]float64{1}, []float64{1})
	_, ok := s.Bound()
	assert.True(t, ok)

	rec := &paint.Recorder{}
	s.Draw(rec, Identity())
	assert.Empty(t, rec.Ops)
}

func TestScatter(t *testing.T) {
	sc := NewScatter("s", redConfig())
	sc.SetData([]float64{0, 1, 2}, []float64{3, 4, 5})

	rec := &paint.Recorder{}
	sc.Draw(rec, Identity())
	require.Len(t, rec.Ops, 3)
	for i, op := range rec.Ops {
		assert.False(t, op.Stroke)
		lo, hi := extent(op)
		assert.InDelta(t, float64(i), (lo.X+hi.X)/2, 1e-9)
		assert.InDelta(t, 2*defaultRadius, hi.X-lo.X, 1e-9)
	}

	b, _ := sc.Bound()
	assert.Equal(t, Bound{0, 2, 3, 5}, b)
}

func TestScatterSizes(t *testing.T) {
	sc := NewScatter("s", redConfig())
	sc.SetData(make([]float64, 4), make([]float64, 4))

	sc.SetSizes([]float64{1, 2, 3, 2})
	assert.Equal(t, []float64{5, 5, 7.5, 5}, sc.radii(4))

	// large values are limited to six times the base radius
	sc.SetSizes([]float64{0, 0, 0, 0, 0, 0, 0, 100})
	assert.Equal(t, []float64{5, 5, 5, 5, 5, 5, 5, 30}, sc.radii(8))

	// points without a size value use the base radius
	sc.SetRadius(2)
	sc.SetSizes([]float64{1, 3})
	assert.Equal(t, []float64{2, 3, 2, 2}, sc.radii(4))

	sc.SetSizes([]float64{0, 0})
	assert.Equal(t, []float64{2, 2, 2, 2}, sc.radii(4))

	sc.SetSizes(nil)
	assert.Equal(t, []float64{2, 2, 2, 2}, sc.radii(4))
}
