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
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/chart/paint"
)

// StairStyle selects where a [Stair] places the corner between two
// consecutive points.
type StairStyle int

const (
	// StairTraceX moves along x first, then along y.
	StairTraceX StairStyle = iota

	// StairTraceY moves along y first, then along x.
	StairTraceY

	// StairMid changes y half way between the two x values.
	StairMid
)

// Stair is a step function through a sequence of points.
type Stair struct {
	series
	style StairStyle
	x, y  []float64
}

// NewStair returns an empty stair series using the StairTraceX style.
func NewStair(name string, cfg SeriesConfig) *Stair {
	return &Stair{series: series{name: name, cfg: cfg}}
}

// SetStyle changes the corner placement.
func (st *Stair) SetStyle(style StairStyle) { st.style = style }

// SetData replaces the points.
func (st *Stair) SetData(x, y []float64) {
	checkPairs("stair", st.name, len(x), len(y))
	st.x = append(st.x[:0], x...)
	st.y = append(st.y[:0], y...)
}

// AddData appends points.
func (st *Stair) AddData(x, y []float64) {
	checkPairs("stair", st.name, len(x), len(y))
	n := min(len(x), len(y))
	m := min(len(st.x), len(st.y))
	st.x = append(st.x[:m], x[:n]...)
	st.y = append(st.y[:m], y[:n]...)
}

func (st *Stair) points() ([]float64, []float64) {
	n := min(len(st.x), len(st.y))
	return st.x[:n], st.y[:n]
}

// Bound implements the [Drawable] interface.
func (st *Stair) Bound() (Bound, bool) {
	if st.cfg.Hidden {
		return Bound{}, false
	}
	return boundOf(st.points())
}

// Draw implements the [Drawable] interface.  At least two points are
// needed.
func (st *Stair) Draw(s paint.Sink, t Transform) {
	x, y := st.points()
	if st.cfg.Hidden || len(x) < 2 {
		return
	}

	pts := make([]vec.Vec2, 0, 3*len(x))
	add := func(px, py float64) {
		pts = append(pts, t.Apply(vec.Vec2{X: px, Y: py}))
	}
	add(x[0], y[0])
	for i := 1; i < len(x); i++ {
		switch st.style {
		case StairTraceY:
			add(x[i-1], y[i])
		case StairMid:
			mid := (x[i-1] + x[i]) / 2
			add(mid, y[i-1])
			add(mid, y[i])
		default:
			add(x[i], y[i-1])
		}
		add(x[i], y[i])
	}
	s.Stroke(paint.Polyline(pts), device, st.cfg.Color, solid(st.cfg.StrokeWidth))
}
