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
	"seehuhn.de/go/chart/paint"
)

// Curve is a polyline through a sequence of points.
type Curve struct {
	series
	x, y []float64
}

// NewCurve returns an empty curve.
func NewCurve(name string, cfg SeriesConfig) *Curve {
	return &Curve{series: series{name: name, cfg: cfg}}
}

// SetData replaces the points of the curve.  If x and y differ in
// length, the extra values are ignored.
func (c *Curve) SetData(x, y []float64) {
	checkPairs("curve", c.name, len(x), len(y))
	c.x = append(c.x[:0], x...)
	c.y = append(c.y[:0], y...)
}

// AddData appends points to the curve.
func (c *Curve) AddData(x, y []float64) {
	checkPairs("curve", c.name, len(x), len(y))
	n := min(len(x), len(y))
	m := min(len(c.x), len(c.y))
	c.x = append(c.x[:m], x[:n]...)
	c.y = append(c.y[:m], y[:n]...)
}

// SetFn sets the points (x[i], f(x[i])).
func (c *Curve) SetFn(x []float64, f func(float64) float64) {
	c.x = append(c.x[:0], x...)
	c.y = c.y[:0]
	for _, v := range x {
		c.y = append(c.y, f(v))
	}
}

// SetParametric sets the points (fx(t[i]), fy(t[i])).
func (c *Curve) SetParametric(t []float64, fx, fy func(float64) float64) {
	c.x, c.y = c.x[:0], c.y[:0]
	for _, v := range t {
		c.x = append(c.x, fx(v))
		c.y = append(c.y, fy(v))
	}
}

// SetDataPrototype sets the points (xStart + i·step, y[i]).
func (c *Curve) SetDataPrototype(y []float64, xStart, step float64) {
	c.x = evenlySpaced(c.x[:0], xStart, step, len(y))
	c.y = append(c.y[:0], y...)
}

func (c *Curve) points() ([]float64, []float64) {
	n := min(len(c.x), len(c.y))
	return c.x[:n], c.y[:n]
}

// Bound implements the [Drawable] interface.
func (c *Curve) Bound() (Bound, bool) {
	if c.cfg.Hidden {
		return Bound{}, false
	}
	return boundOf(c.points())
}

// Draw implements the [Drawable] interface.
func (c *Curve) Draw(s paint.Sink, t Transform) {
	x, y := c.points()
	if c.cfg.Hidden || len(x) == 0 {
		return
	}
	p := paint.Polyline(mapPoints(t, x, y, len(x)))
	s.Stroke(p, device, c.cfg.Color, rounded(c.cfg.StrokeWidth))
}

// evenlySpaced appends n values start, start+step, ... to buf.
func evenlySpaced(buf []float64, start, step float64, n int) []float64 {
	for i := range n {
		buf = append(buf, start+float64(i)*step)
	}
	return buf
}
