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

	"seehuhn.de/go/chart/paint"
)

// barWidth is the fraction of a bin covered by the bars of all series.
const barWidth = 0.8

// outlineDarken is subtracted from the bar colour for the bar outlines.
const outlineDarken = 40

type barSeries struct {
	values []float64
	color  int // palette index
	hidden bool
}

// Histogram shows one or more series of values over shared bins.  Inside
// every bin, the series are drawn as adjacent bars.
//
// Each series is given the next palette colour when it is added, so the
// histogram does not take part in the colour assignment of the axis.
type Histogram struct {
	series
	x    []float64
	bars []barSeries

	cursor  int
	palette paletteRef
}

// NewHistogram returns a histogram without bins.
func NewHistogram(name string, cfg SeriesConfig) *Histogram {
	return &Histogram{series: series{name: name, cfg: cfg}}
}

// Color returns a fixed non-transparent colour, so that the axis leaves
// the histogram alone.
func (h *Histogram) Color() color.NRGBA { return neutral }

// SetColor is ignored.  Use SetPalette to change the bar colours.
func (h *Histogram) SetColor(color.NRGBA) {}

// SetPalette changes the colours used for the bars.
func (h *Histogram) SetPalette(p Palette) { h.palette.set(p) }

func (h *Histogram) setThemePalette(p Palette) { h.palette.setDefault(p) }

// ColorIndex returns the palette index which the next series will use.
func (h *Histogram) ColorIndex() int { return h.cursor }

// bins returns the number of bins, which limits the length of every
// series.
func (h *Histogram) bins() int {
	return max(len(h.x)-1, 0)
}

// Bins returns the number of bins.
func (h *Histogram) Bins() int { return h.bins() }

// Series returns the number of series.
func (h *Histogram) Series() int { return len(h.bars) }

// SeriesValues returns a copy of the values of series i, or nil if there
// is no such series.
func (h *Histogram) SeriesValues(i int) []float64 {
	if i < 0 || i >= len(h.bars) {
		return nil
	}
	return append([]float64(nil), h.bars[i].values...)
}

// SetX sets the bin edges.  Bin i covers the range from x[i] to x[i+1].
func (h *Histogram) SetX(x []float64) {
	h.x = append(h.x[:0], x...)
}

// AddSeries adds a series of bin values and returns its index.  Values
// beyond the last bin are dropped.
func (h *Histogram) AddSeries(y []float64) int {
	h.bars = append(h.bars, barSeries{
		values: clipValues(nil, y, h.bins()),
		color:  h.cursor,
	})
	h.cursor = (h.cursor + 1) & 7
	return len(h.bars) - 1
}

// AppendData appends values to series i, up to the number of bins.
func (h *Histogram) AppendData(i int, y []float64) {
	if i < 0 || i >= len(h.bars) {
		logger.Warn("no such histogram series", "series", h.name, "index", i)
		return
	}
	b := &h.bars[i]
	room := max(h.bins()-len(b.values), 0)
	b.values = append(b.values, y[:min(room, len(y))]...)
}

// ChangeData replaces the values of series i.
func (h *Histogram) ChangeData(i int, y []float64) {
	if i < 0 || i >= len(h.bars) {
		logger.Warn("no such histogram series", "series", h.name, "index", i)
		return
	}
	h.bars[i].values = clipValues(h.bars[i].values[:0], y, h.bins())
}

// SetDataPrototype adds a series.  If no bins are set yet, the bins are
// taken to be xStart + i·step for i = 0, ..., len(y).  Empty input is
// ignored.
func (h *Histogram) SetDataPrototype(y []float64, xStart, step float64) {
	if len(y) == 0 {
		return
	}
	if len(h.x) == 0 {
		h.x = evenlySpaced(h.x, xStart, step, len(y)+1)
	}
	h.AddSeries(y)
}

// SetDataWithStep adds a series, using bins of width step starting at 0
// if no bins are set.
func (h *Histogram) SetDataWithStep(y []float64, step float64) {
	h.SetDataPrototype(y, 0, step)
}

// SetDataNorm adds a series, using unit bins starting at 0 if no bins are
// set.
func (h *Histogram) SetDataNorm(y []float64) {
	h.SetDataPrototype(y, 0, 1)
}

// SetSeriesHidden hides or shows series i.
func (h *Histogram) SetSeriesHidden(i int, hidden bool) {
	if i >= 0 && i < len(h.bars) {
		h.bars[i].hidden = hidden
	}
}

func clipValues(buf, y []float64, n int) []float64 {
	return append(buf, y[:min(n, len(y))]...)
}

// Bound implements the [Drawable] interface.  The y range always includes
// zero.
func (h *Histogram) Bound() (Bound, bool) {
	if h.cfg.Hidden || len(h.x) == 0 {
		return Bound{}, false
	}
	var b Bound
	found := false
	for _, bar := range h.bars {
		if bar.hidden {
			continue
		}
		for _, v := range bar.values {
			b.YMin = min(b.YMin, v)
			b.YMax = max(b.YMax, v)
			found = true
		}
	}
	if !found {
		return Bound{}, false
	}
	b.XMin = h.x[0]
	b.XMax = h.x[len(h.x)-1]
	return b, true
}

// Draw implements the [Drawable] interface.
func (h *Histogram) Draw(s paint.Sink, t Transform) {
	if h.cfg.Hidden || len(h.x) < 2 || len(h.bars) == 0 {
		return
	}
	pal := h.palette.get()
	groups := float64(len(h.bars))
	centre := (groups - 1) / 2
	st := solid(h.cfg.StrokeWidth)

	for i := 0; i+1 < len(h.x); i++ {
		w := h.x[i+1] - h.x[i]
		mid := h.x[i] + w/2
		bw := w * barWidth / groups
		for g, bar := range h.bars {
			if bar.hidden || i >= len(bar.values) || bar.values[i] == 0 {
				continue
			}
			xc := mid + (float64(g)-centre)*bw
			p := deviceRect(t, xc-bw/2, 0, xc+bw/2, bar.values[i])
			c := pal.At(bar.color)
			s.Fill(p, device, c, paint.NonZero)
			s.Stroke(p, device, darken(c, outlineDarken), st)
		}
	}
}
