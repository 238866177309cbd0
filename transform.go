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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Transform maps (x, y) to (SX·x + TX, SY·y + TY).
type Transform struct {
	SX, SY float64
	TX, TY float64
}

// Identity returns the transform which leaves every point unchanged.
func Identity() Transform {
	return Transform{SX: 1, SY: 1}
}

// Translate returns a transform which shifts points by (tx, ty).
func Translate(tx, ty float64) Transform {
	return Transform{SX: 1, SY: 1, TX: tx, TY: ty}
}

// Scale returns a transform which scales x by sx and y by sy.
func Scale(sx, sy float64) Transform {
	return Transform{SX: sx, SY: sy}
}

// Then returns the transform which first applies t and then u.
func (t Transform) Then(u Transform) Transform {
	return Transform{
		SX: u.SX * t.SX,
		SY: u.SY * t.SY,
		TX: u.SX*t.TX + u.TX,
		TY: u.SY*t.TY + u.TY,
	}
}

// Apply maps a point.
func (t Transform) Apply(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: t.SX*p.X + t.TX, Y: t.SY*p.Y + t.TY}
}

// ApplyXY maps the point (x, y).
func (t Transform) ApplyXY(x, y float64) (float64, float64) {
	return t.SX*x + t.TX, t.SY*y + t.TY
}

// Matrix converts t to a PDF-style transformation matrix.
func (t Transform) Matrix() matrix.Matrix {
	return matrix.Matrix{t.SX, 0, 0, t.SY, t.TX, t.TY}
}

// ScaleStrategy determines how a data range is fitted into the plot area.
type ScaleStrategy int

const (
	// Fit uses the same scale on both axes and centres the data in the
	// plot area.
	Fit ScaleStrategy = iota

	// Stretch scales both axes independently so that the data range fills
	// the plot area.
	Stretch
)

func (s ScaleStrategy) String() string {
	switch s {
	case Fit:
		return "fit"
	case Stretch:
		return "stretch"
	default:
		return "unknown"
	}
}

// Viewport is the rectangle occupied by an axis, in device pixels.
type Viewport struct {
	X, Y float64 // top-left corner
	W, H float64
}

// Limit is the data range shown along one axis.  Min may exceed Max, in
// which case the axis runs backwards.
type Limit struct {
	Min, Max float64
}

// Range returns Max - Min.
func (l Limit) Range() float64 {
	return l.Max - l.Min
}

// Contains reports whether v lies between Min and Max.
func (l Limit) Contains(v float64) bool {
	return v >= math.Min(l.Min, l.Max) && v <= math.Max(l.Min, l.Max)
}

// Layout describes where the data of an axis ends up on the page.
type Layout struct {
	// Margin is the space left free on every side of the viewport.
	Margin float64

	// PlotW and PlotH give the size of the plot area, inside the margins.
	PlotW, PlotH float64

	// ScaleX and ScaleY give the number of pixels per data unit.
	ScaleX, ScaleY float64

	// OffsetX and OffsetY centre the data inside the plot area.  They are
	// zero for the Stretch strategy.
	OffsetX, OffsetY float64

	// UI translates plot-local pixel coordinates to the page.
	UI Transform

	// Local maps data coordinates to plot-local pixels.
	Local Transform

	// Data maps data coordinates to the page.
	Data Transform
}

// maxMargin is the largest margin around a plot area, in pixels.
const maxMargin = 50

// plotLayout computes the transforms for a viewport and the given data
// ranges.  If either range is empty, or if the viewport has no room for a
// plot, the second return value is false.
func plotLayout(vp Viewport, x, y Limit, strategy ScaleStrategy) (Layout, bool) {
	xRange, yRange := x.Range(), y.Range()
	if xRange == 0 || yRange == 0 || math.IsNaN(xRange) || math.IsNaN(yRange) ||
		math.IsInf(xRange, 0) || math.IsInf(yRange, 0) {
		return Layout{}, false
	}

	m := math.Min(0.1*vp.W, maxMargin)
	plotW := vp.W - 2*m
	plotH := vp.H - 2*m
	if plotW <= 0 || plotH <= 0 {
		return Layout{}, false
	}

	sx := plotW / xRange
	sy := plotH / yRange
	var ox, oy float64
	if strategy == Fit {
		s := math.Min(math.Abs(sx), math.Abs(sy))
		sx = math.Copysign(s, sx)
		sy = math.Copysign(s, sy)
		ox = (plotW - math.Abs(xRange)*s) / 2
		oy = (plotH - math.Abs(yRange)*s) / 2
	}

	ui := Translate(vp.X+m+ox, vp.Y+m+oy)
	local := Translate(-x.Min, -y.Min).
		Then(Scale(sx, -sy)).
		Then(Translate(0, yRange*sy))

	return Layout{
		Margin:  m,
		PlotW:   plotW,
		PlotH:   plotH,
		ScaleX:  sx,
		ScaleY:  sy,
		OffsetX: ox,
		OffsetY: oy,
		UI:      ui,
		Local:   local,
		Data:    local.Then(ui),
	}, true
}
