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
	"math"

	"github.com/aclements/go-moremath/stats"

	"seehuhn.de/go/chart/paint"
)

// defaultRadius is the marker radius of a scatter plot, in pixels.
const defaultRadius = 5

// maxRadiusFactor limits the growth of size-encoded markers.
const maxRadiusFactor = 6

// Scatter draws a filled disc at every point.
//
// If sizes are set, the disc for point i has radius base·sizes[i]/mean,
// where mean is the average of all sizes, clamped to the range from base
// to 6·base.
type Scatter struct {
	series
	x, y   []float64
	sizes  []float64
	radius float64
}

// NewScatter returns an empty scatter plot.
func NewScatter(name string, cfg SeriesConfig) *Scatter {
	return &Scatter{series: series{name: name, cfg: cfg}, radius: defaultRadius}
}

// SetData replaces the points.
func (sc *Scatter) SetData(x, y []float64) {
	checkPairs("scatter", sc.name, len(x), len(y))
	sc.x = append(sc.x[:0], x...)
	sc.y = append(sc.y[:0], y...)
}

// AddData appends points.
func (sc *Scatter) AddData(x, y []float64) {
	checkPairs("scatter", sc.name, len(x), len(y))
	n := min(len(x), len(y))
	m := min(len(sc.x), len(sc.y))
	sc.x = append(sc.x[:m], x[:n]...)
	sc.y = append(sc.y[:m], y[:n]...)
}

// SetSizes sets the values which control the marker sizes.  A nil slice
// turns size encoding off.  Points without a size value use the base
// radius.
func (sc *Scatter) SetSizes(v []float64) {
	if v == nil {
		sc.sizes = nil
		return
	}
	sc.sizes = append(sc.sizes[:0], v...)
}

// SetRadius changes the base marker radius, in pixels.
func (sc *Scatter) SetRadius(r float64) {
	if r > 0 {
		sc.radius = r
	}
}

func (sc *Scatter) points() ([]float64, []float64) {
	n := min(len(sc.x), len(sc.y))
	return sc.x[:n], sc.y[:n]
}

// radii returns the marker radius for each of the first n points.
func (sc *Scatter) radii(n int) []float64 {
	res := make([]float64, n)
	base := sc.radius
	var mean float64
	if len(sc.sizes) > 0 {
		mean = stats.Mean(sc.sizes)
	}
	for i := range res {
		res[i] = base
		if i >= len(sc.sizes) || !(mean > 0) || math.IsInf(mean, 0) {
			continue
		}
		r := base * sc.sizes[i] / mean
		if math.IsNaN(r) {
			continue
		}
		res[i] = min(max(r, base), maxRadiusFactor*base)
	}
	return res
}

// Bound implements the [Drawable] interface.  The marker size is not
// included.
func (sc *Scatter) Bound() (Bound, bool) {
	if sc.cfg.Hidden {
		return Bound{}, false
	}
	return boundOf(sc.points())
}

// Draw implements the [Drawable] interface.
func (sc *Scatter) Draw(s paint.Sink, t Transform) {
	x, y := sc.points()
	if sc.cfg.Hidden || len(x) == 0 {
		return
	}
	r := sc.radii(len(x))
	for i := range x {
		cx, cy := t.ApplyXY(x[i], y[i])
		s.Fill(paint.Circle(cx, cy, r[i]), device, sc.cfg.Color, paint.NonZero)
	}
}
