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

import "image/color"

// Palette lists the colours assigned to series which have no colour of
// their own.
type Palette [8]color.NRGBA

// At returns the colour for the given cycle position.
func (p *Palette) At(i int) color.NRGBA {
	return p[i&7]
}

// Theme collects the colours used for drawing a figure.
type Theme struct {
	Background color.NRGBA
	Foreground color.NRGBA // axis lines, ticks and labels
	Grid       color.NRGBA
	Palette    Palette

	// LabelSize is the font size of tick labels, in pixels.
	LabelSize float64
}

// DefaultTheme returns a dark theme.
func DefaultTheme() Theme {
	return Theme{
		Background: color.NRGBA{R: 40, G: 44, B: 52, A: 255},
		Foreground: color.NRGBA{R: 171, G: 178, B: 191, A: 255},
		Grid:       color.NRGBA{R: 92, G: 99, B: 112, A: 125},
		Palette: Palette{
			{R: 224, G: 108, B: 117, A: 255}, // red
			{R: 97, G: 175, B: 239, A: 255},  // blue
			{R: 152, G: 195, B: 121, A: 255}, // green
			{R: 198, G: 120, B: 221, A: 255}, // purple
			{R: 209, G: 154, B: 102, A: 255}, // orange
			{R: 86, G: 182, B: 194, A: 255},  // cyan
			{R: 229, G: 192, B: 123, A: 255}, // yellow
			{R: 40, G: 44, B: 52, A: 255},    // black
		},
		LabelSize: 11,
	}
}

// neutral is reported by series which choose their colours themselves,
// so that the axis leaves them alone.
var neutral = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// unset marks a series whose colour has not been assigned yet.
var unset = color.NRGBA{}

// darken reduces every colour channel by d and makes the colour opaque.
func darken(c color.NRGBA, d uint8) color.NRGBA {
	sub := func(v uint8) uint8 {
		if v < d {
			return 0
		}
		return v - d
	}
	return color.NRGBA{R: sub(c.R), G: sub(c.G), B: sub(c.B), A: 255}
}

// paletteRef holds the palette of a series which chooses its own colours.
// Unless a palette is set explicitly, the series follows the theme of
// the axis it is drawn on.
type paletteRef struct {
	p      *Palette
	custom bool
}

func (r *paletteRef) set(p Palette) {
	r.p = &p
	r.custom = true
}

func (r *paletteRef) setDefault(p Palette) {
	if !r.custom {
		r.p = &p
	}
}

func (r *paletteRef) get() *Palette {
	if r.p == nil {
		p := DefaultTheme().Palette
		r.p = &p
	}
	return r.p
}

// themed is implemented by series which choose their own colours.
type themed interface {
	setThemePalette(p Palette)
}
