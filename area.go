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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/chart/paint"
)

// AreaType selects how an [Area] is drawn.
type AreaType int

const (
	// AreaStep draws one rectangle per bin, from the baseline to the bin
	// value.
	AreaStep AreaType = iota

	// AreaLine fills the region between the baseline and the line through
	// the points (edge[i], value[i]).
	AreaLine
)

// Area is a filled region above the baseline y = 0.
//
// In AreaStep mode, bin i covers the x range from edge i to edge i+1, so
// that n values need n+1 edges.  A single edge e is read as the edges
// [0, e].  Values missing at the end are taken to be zero.
type Area struct {
	series
	kind   AreaType
	edges  []float64
	values []float64
}

// NewArea returns an empty area using the AreaStep mode.
func NewArea(name string, cfg SeriesConfig) *Area {
	return &Area{series: series{name: name, cfg: cfg}}
}

// SetType changes the drawing mode.
func (a *Area) SetType(kind AreaType) { a.kind = kind }

// SetData replaces the bin edges and values.
func (a *Area) SetData(edges, values []float64) {
	if a.kind == AreaStep && len(edges) > 1 && len(edges) != len(values)+1 {
		logger.Warn("area needs one edge more than values",
			"series", a.name, "edges", len(edges), "values", len(values))
	}
	a.edges = append(a.edges[:0], edges...)
	a.values = append(a.values[:0], values...)
}

// AddData appends edges and values.
func (a *Area) AddData(edges, values []float64) {
	a.edges = append(a.edges, edges...)
	a.values = append(a.values, values...)
}

// SetDataPrototype sets the values with the evenly spaced edges
// xStart, xStart+step, ..., xStart+len(values)·step.  Empty input is
// ignored.
func (a *Area) SetDataPrototype(values []float64, xStart, step float64) {
	if len(values) == 0 {
		return
	}
	a.edges = evenlySpaced(a.edges[:0], xStart, step, len(values)+1)
	a.values = append(a.values[:0], values...)
}

// SetDataWithStep is the same as SetDataPrototype.
func (a *Area) SetDataWithStep(values []float64, xStart, step float64) {
	a.SetDataPrototype(values, xStart, step)
}

// SetDataNorm sets the values with edges 0, 1, ..., len(values).
func (a *Area) SetDataNorm(values []float64) {
	a.SetDataPrototype(values, 0, 1)
}

func (a *Area) stepEdges() []float64 {
	if len(a.edges) == 1 {
		return []float64{0, a.edges[0]}
	}
	return a.edges
}

func (a *Area) value(i int) float64 {
	if i < len(a.values) {
		return a.values[i]
	}
	return 0
}

// Bound implements the [Drawable] interface.  The y range always includes
// the baseline.
func (a *Area) Bound() (Bound, bool) {
	if a.cfg.Hidden || len(a.edges) == 0 || len(a.values) == 0 {
		return Bound{}, false
	}
	xs := a.edges
	if a.kind == AreaStep {
		xs = a.stepEdges()
	}
	b, _ := boundOf(xs, a.values)
	b.YMin = min(b.YMin, 0)
	b.YMax = max(b.YMax, 0)
	return b, true
}

// Draw implements the [Drawable] interface.  The region is filled with
// half the alpha of the series colour and then outlined.
func (a *Area) Draw(s paint.Sink, t Transform) {
	if a.cfg.Hidden || len(a.edges) == 0 {
		return
	}
	fill := a.cfg.Color
	fill.A /= 2
	outline := fill
	st := solid(a.cfg.StrokeWidth)

	if a.kind == AreaLine {
		p := a.linePath(t)
		s.Fill(p, device, fill, paint.NonZero)
		s.Stroke(p, device, outline, st)
		return
	}

	edges := a.stepEdges()
	for i := 0; i+1 < len(edges); i++ {
		p := deviceRect(t, edges[i], 0, edges[i+1], a.value(i))
		s.Fill(p, device, fill, paint.NonZero)
		s.Stroke(p, device, outline, st)
	}
}

func (a *Area) linePath(t Transform) *path.Data {
	p := &path.Data{}
	p.MoveTo(t.Apply(vec.Vec2{X: a.edges[0]}))
	for i, x := range a.edges {
		p.LineTo(t.Apply(vec.Vec2{X: x, Y: a.value(i)}))
	}
	p.LineTo(t.Apply(vec.Vec2{X: a.edges[len(a.edges)-1]}))
	return p.Close()
}
