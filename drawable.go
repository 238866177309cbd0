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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/chart/paint"
)

// Drawable is a data series which can be shown on an [Axis].
type Drawable interface {
	// Draw paints the series.  t maps data coordinates to device pixels.
	Draw(s paint.Sink, t Transform)

	// Bound returns the extent of the current data.  The second return
	// value is false if there is nothing to show.
	Bound() (Bound, bool)

	// Color returns the series colour.  The zero value means that no
	// colour has been assigned yet.
	Color() color.NRGBA

	// SetColor changes the series colour.
	SetColor(c color.NRGBA)
}

// TextDrawer draws strings.  The point (x, y) is the top-left corner of
// the text box and size is the font size in pixels.
type TextDrawer interface {
	DrawText(s paint.Sink, text string, x, y, size float64, c color.NRGBA)
}

// textMeasurer is implemented by text drawers which can report the width
// of a string.  Labels are centred when it is available.
type textMeasurer interface {
	Measure(text string, size float64) float64
}

// SeriesConfig holds the settings shared by all series types.
type SeriesConfig struct {
	Hidden bool

	// Color is the series colour.  The zero value lets the axis pick a
	// colour from its palette.
	Color color.NRGBA

	// StrokeWidth is the line width in pixels.
	StrokeWidth float64
}

// DefaultSeriesConfig returns a visible series configuration without a
// colour and with 2 pixel lines.
func DefaultSeriesConfig() SeriesConfig {
	return SeriesConfig{StrokeWidth: 2}
}

// series implements the parts of [Drawable] common to the simple series
// types.
type series struct {
	name string
	cfg  SeriesConfig
}

// Name returns the name of the series.
func (s *series) Name() string { return s.name }

// Color returns the series colour.
func (s *series) Color() color.NRGBA { return s.cfg.Color }

// SetColor changes the series colour.
func (s *series) SetColor(c color.NRGBA) { s.cfg.Color = c }

// Config returns the current settings.
func (s *series) Config() SeriesConfig { return s.cfg }

// SetHidden hides or shows the series.  Hidden series are not drawn and
// do not contribute to the automatic axis range.
func (s *series) SetHidden(hidden bool) { s.cfg.Hidden = hidden }

// SetStrokeWidth changes the line width.
func (s *series) SetStrokeWidth(w float64) { s.cfg.StrokeWidth = w }

// mapPoints transforms the first n (x, y) pairs to device space.
func mapPoints(t Transform, xs, ys []float64, n int) []vec.Vec2 {
	pts := make([]vec.Vec2, n)
	for i := range n {
		pts[i] = t.Apply(vec.Vec2{X: xs[i], Y: ys[i]})
	}
	return pts
}

// deviceRect returns the device-space rectangle spanned by the data
// points (x0, y0) and (x1, y1).
func deviceRect(t Transform, x0, y0, x1, y1 float64) *path.Data {
	ax, ay := t.ApplyXY(x0, y0)
	bx, by := t.ApplyXY(x1, y1)
	return paint.Rect(min(ax, bx), min(ay, by), max(ax, bx), max(ay, by))
}

// Series geometry is mapped to device space before it is painted, so
// that line widths are measured in pixels.
var device = matrix.Identity

func solid(width float64) paint.Stroke {
	return paint.Stroke{Width: width, Cap: graphics.LineCapButt, Join: graphics.LineJoinMiter}
}

func rounded(width float64) paint.Stroke {
	return paint.Stroke{Width: width, Cap: graphics.LineCapRound, Join: graphics.LineJoinRound}
}
