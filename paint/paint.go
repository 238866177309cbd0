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

// Package paint defines the drawing surface used by the chart renderer.
//
// A [Sink] accepts filled and stroked paths.  All coordinates are given in
// user space and are mapped to device pixels by the CTM passed with each
// operation.  Device space has its origin in the top-left corner, with y
// increasing downwards.
package paint

import (
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf/graphics"
)

// FillRule selects how the interior of a self-overlapping path is found.
type FillRule int

const (
	// NonZero paints every point with a non-zero winding number.
	NonZero FillRule = iota

	// EvenOdd paints every point with an odd winding number.
	EvenOdd
)

func (r FillRule) String() string {
	switch r {
	case NonZero:
		return "nonzero"
	case EvenOdd:
		return "evenodd"
	default:
		return "unknown"
	}
}

// Stroke describes how the outline of a path is painted.
type Stroke struct {
	// Width is the line width in user-space units.
	Width float64

	Cap  graphics.LineCapStyle
	Join graphics.LineJoinStyle

	// Dash lists alternating on/off lengths.  A nil slice gives solid lines.
	Dash []float64
}

// Sink is a drawing surface.
//
// Implementations must not retain p after a call returns.
type Sink interface {
	// Fill paints the interior of p.
	Fill(p *path.Data, ctm matrix.Matrix, c color.NRGBA, rule FillRule)

	// Stroke paints the outline of p.
	Stroke(p *path.Data, ctm matrix.Matrix, c color.NRGBA, st Stroke)

	// Size returns the dimensions of the surface in device pixels.
	Size() (width, height int)
}

// Rect returns a closed rectangle path with corners (x0, y0) and (x1, y1).
func Rect(x0, y0, x1, y1 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x0, y0)).
		LineTo(pt(x1, y0)).
		LineTo(pt(x1, y1)).
		LineTo(pt(x0, y1)).
		Close()
}
