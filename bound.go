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
)

// Bound is an axis-aligned rectangle in data space.
type Bound struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Union returns the smallest Bound containing both b and o.
func (b Bound) Union(o Bound) Bound {
	return Bound{
		XMin: math.Min(b.XMin, o.XMin),
		XMax: math.Max(b.XMax, o.XMax),
		YMin: math.Min(b.YMin, o.YMin),
		YMax: math.Max(b.YMax, o.YMax),
	}
}

// Width returns the extent in x direction.
func (b Bound) Width() float64 { return b.XMax - b.XMin }

// Height returns the extent in y direction.
func (b Bound) Height() float64 { return b.YMax - b.YMin }

// Aggregate combines the bounds of all drawables which have data.
// If none of them has, the second return value is false.
func Aggregate(ds []Drawable) (Bound, bool) {
	var total Bound
	found := false
	for _, d := range ds {
		b, ok := d.Bound()
		if !ok {
			continue
		}
		if !found {
			total = b
			found = true
		} else {
			total = total.Union(b)
		}
	}
	return total, found
}

// boundOf returns the extent of paired sample slices.
func boundOf(xs, ys []float64) (Bound, bool) {
	if len(xs) == 0 || len(ys) == 0 {
		return Bound{}, false
	}
	var b Bound
	b.XMin, b.XMax = stats.Bounds(xs)
	b.YMin, b.YMax = stats.Bounds(ys)
	return b, true
}

// checkPairs logs a warning if paired sample slices differ in length.
// Drawing then uses the shorter length.
func checkPairs(kind, name string, nx, ny int) {
	if nx != ny {
		logger.Warn("x and y have different lengths, truncating",
			"kind", kind, "series", name, "x", nx, "y", ny)
	}
}
