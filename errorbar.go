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

	"github.com/aclements/go-moremath/stats"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/chart/paint"
)

// ErrorBarOrientation gives the direction of the whiskers.
type ErrorBarOrientation int

const (
	// ErrorBarHorizontal places the categories along the y axis and draws
	// horizontal whiskers.
	ErrorBarHorizontal ErrorBarOrientation = iota

	// ErrorBarVertical places the categories along the x axis and draws
	// vertical whiskers.
	ErrorBarVertical
)

// Sizes of the error bar markers, in pixels.
const (
	meanRadius   = 6
	capHalfWidth = 4
	whiskerWidth = 2
)

type errorBar struct {
	mean, lo, hi float64
	color        int // palette index
}

// ErrorBar shows a mean value and a range for each of a number of
// categories.
//
// Category i is drawn at position i+1.5 for data added with AddSamples or
// AddStats, so that it sits in the middle of the unit cell [i+1, i+2].
// Error bars derived from a histogram by FromHistogram use position i+1
// instead, which lines up with the histogram bins.
//
// Every category is given the next palette colour, so the error bar does
// not take part in the colour assignment of the axis.
type ErrorBar struct {
	series
	bars   []errorBar
	orient ErrorBarOrientation
	shift  bool

	cursor  int
	palette paletteRef
}

// NewErrorBar returns an empty error bar series with horizontal whiskers.
func NewErrorBar(name string, cfg SeriesConfig) *ErrorBar {
	return &ErrorBar{series: series{name: name, cfg: cfg}, shift: true}
}

// Color returns a fixed non-transparent colour, so that the axis leaves
// the error bars alone.
func (e *ErrorBar) Color() color.NRGBA { return neutral }

// SetColor is ignored.  Use SetPalette to change the colours.
func (e *ErrorBar) SetColor(color.NRGBA) {}

// SetPalette changes the colours used for the categories.
func (e *ErrorBar) SetPalette(p Palette) { e.palette.set(p) }

func (e *ErrorBar) setThemePalette(p Palette) { e.palette.setDefault(p) }

// SetOrientation changes the direction of the whiskers.
func (e *ErrorBar) SetOrientation(o ErrorBarOrientation) { e.orient = o }

// Len returns the number of categories.
func (e *ErrorBar) Len() int { return len(e.bars) }

// Stats returns mean, minimum and maximum of category i.
func (e *ErrorBar) Stats(i int) (mean, lo, hi float64) {
	b := e.bars[i]
	return b.mean, b.lo, b.hi
}

func (e *ErrorBar) nextColor() int {
	c := e.cursor
	e.cursor = (e.cursor + 1) & 7
	return c
}

// AddSamples adds a category summarising the given samples.  Empty input
// is ignored.
func (e *ErrorBar) AddSamples(samples []float64) {
	if len(samples) == 0 {
		logger.Warn("no samples for error bar", "series", e.name)
		return
	}
	lo, hi := stats.Bounds(samples)
	e.AddStats(stats.Mean(samples), lo, hi)
}

// AddStats adds a category with the given mean and range.
func (e *ErrorBar) AddStats(mean, lo, hi float64) {
	e.bars = append(e.bars, errorBar{mean: mean, lo: lo, hi: hi, color: e.nextColor()})
}

// FromHistogram replaces the categories by one per histogram bin.  The
// mean is taken over all series of the histogram and the range covers
// the smallest and largest value.  Missing values count as zero.
//
// The error bars become vertical and use the palette colour following
// the last histogram series.
func (e *ErrorBar) FromHistogram(h *Histogram) {
	if h.Series() == 0 || h.Bins() == 0 {
		return
	}
	n := h.Bins()
	col := (h.ColorIndex() + 1) & 7

	bars := make([]errorBar, n)
	column := make([]float64, h.Series())
	for i := range n {
		for k, bar := range h.bars {
			column[k] = 0
			if i < len(bar.values) {
				column[k] = bar.values[i]
			}
		}
		lo, hi := stats.Bounds(column)
		bars[i] = errorBar{mean: stats.Mean(column), lo: lo, hi: hi, color: col}
	}

	e.bars = bars
	e.shift = false
	e.orient = ErrorBarVertical
	e.cursor = (col + 1) & 7
}

// categoryBase is the position of the first category.
func (e *ErrorBar) categoryBase() float64 {
	if e.shift {
		return 1.5
	}
	return 1
}

// Bound implements the [Drawable] interface.
func (e *ErrorBar) Bound() (Bound, bool) {
	if e.cfg.Hidden || len(e.bars) == 0 {
		return Bound{}, false
	}
	catLo := 0.0
	if e.shift {
		catLo = 1
	}
	catHi := catLo + float64(len(e.bars))

	lo, hi := e.bars[0].lo, e.bars[0].hi
	for _, b := range e.bars[1:] {
		lo = min(lo, b.lo)
		hi = max(hi, b.hi)
	}

	if e.orient == ErrorBarVertical {
		return Bound{XMin: catLo, XMax: catHi, YMin: lo, YMax: hi}, true
	}
	return Bound{XMin: lo, XMax: hi, YMin: catLo, YMax: catHi}, true
}

// Draw implements the [Drawable] interface.
func (e *ErrorBar) Draw(s paint.Sink, t Transform) {
	if e.cfg.Hidden || len(e.bars) == 0 {
		return
	}
	pal := e.palette.get()
	base := e.categoryBase()
	st := solid(whiskerWidth)

	for i, b := range e.bars {
		pos := float64(i) + base
		var lo, hi, mean vec.Vec2
		if e.orient == ErrorBarVertical {
			lo = t.Apply(vec.Vec2{X: pos, Y: b.lo})
			hi = t.Apply(vec.Vec2{X: pos, Y: b.hi})
			mean = t.Apply(vec.Vec2{X: pos, Y: b.mean})
		} else {
			lo = t.Apply(vec.Vec2{X: b.lo, Y: pos})
			hi = t.Apply(vec.Vec2{X: b.hi, Y: pos})
			mean = t.Apply(vec.Vec2{X: b.mean, Y: pos})
		}
		c := pal.At(b.color)

		s.Fill(paint.Circle(mean.X, mean.Y, meanRadius), device, c, paint.NonZero)

		// caps run across the whisker
		across := vec.Vec2{X: capHalfWidth}
		if e.orient == ErrorBarHorizontal {
			across = vec.Vec2{Y: capHalfWidth}
		}
		p := (&path.Data{}).MoveTo(lo).LineTo(hi)
		p.MoveTo(lo.Sub(across)).LineTo(lo.Add(across))
		p.MoveTo(hi.Sub(across)).LineTo(hi.Add(across))
		s.Stroke(p, device, c, st)
	}
}
