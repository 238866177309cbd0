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
	"image"
	"io"

	"seehuhn.de/go/chart/canvas"
	"seehuhn.de/go/chart/paint"
	"seehuhn.de/go/chart/pdfsink"
	"seehuhn.de/go/chart/text"
)

// titleSize is the font size of the figure title, in pixels.
const titleSize = 16

// FigureConfig describes a new [Figure].
type FigureConfig struct {
	// Title is drawn at the top of the figure, if not empty.
	Title string

	// Width and Height give the figure size in pixels.
	Width, Height int

	// Rows and Cols give the number of axes in each direction.
	Rows, Cols int

	Theme Theme

	// FontFamily selects the font for all text.  Unknown families fall
	// back to the built-in Go font.
	FontFamily string
}

// DefaultFigureConfig returns the configuration for a 600×400 figure
// with a single axis.
func DefaultFigureConfig() FigureConfig {
	return FigureConfig{
		Width:  600,
		Height: 400,
		Rows:   1,
		Cols:   1,
		Theme:  DefaultTheme(),
	}
}

// Figure is a page holding a grid of axes.
type Figure struct {
	cfg  FigureConfig
	text *text.Renderer
	axes []*Axis
}

// NewFigure returns a figure with a grid of empty axes.
func NewFigure(cfg FigureConfig) *Figure {
	def := DefaultFigureConfig()
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = def.Width, def.Height
	}
	if cfg.Theme == (Theme{}) {
		cfg.Theme = def.Theme
	}

	f := &Figure{cfg: cfg, text: text.New()}
	if cfg.FontFamily != "" {
		f.text.SetFamily(cfg.FontFamily)
	}
	f.SetLayout(cfg.Rows, cfg.Cols)
	return f
}

// Text returns the text renderer shared by all axes of the figure.
func (f *Figure) Text() *text.Renderer { return f.text }

// Size returns the figure size in pixels.
func (f *Figure) Size() (width, height int) {
	return f.cfg.Width, f.cfg.Height
}

// SetLayout replaces the axes by a new grid of empty axes.  Axis i is
// placed in row i/cols and column i%cols.
func (f *Figure) SetLayout(rows, cols int) {
	f.cfg.Rows, f.cfg.Cols = max(rows, 1), max(cols, 1)
	n := f.cfg.Rows * f.cfg.Cols
	f.axes = make([]*Axis, n)
	for i := range f.axes {
		f.axes[i] = NewAxis(0, 0, 0, 0, WithTheme(f.cfg.Theme), WithText(f.text))
	}
	f.relayout()
}

// Resize changes the figure size and moves every axis to its new cell.
func (f *Figure) Resize(width, height int) {
	f.cfg.Width, f.cfg.Height = width, height
	f.relayout()
}

func (f *Figure) relayout() {
	w := float64(f.cfg.Width) / float64(f.cfg.Cols)
	h := float64(f.cfg.Height) / float64(f.cfg.Rows)
	for i, a := range f.axes {
		r, c := i/f.cfg.Cols, i%f.cfg.Cols
		a.SetViewport(float64(c)*w, float64(r)*h, w, h)
	}
}

// Nth returns axis i, or nil if there is no such axis.
func (f *Figure) Nth(i int) *Axis {
	if i < 0 || i >= len(f.axes) {
		return nil
	}
	return f.axes[i]
}

// Axes returns all axes, row by row.
func (f *Figure) Axes() []*Axis {
	return f.axes
}

// Render fills the background and draws the title and every axis.
func (f *Figure) Render(s paint.Sink) {
	w, h := s.Size()
	s.Fill(paint.Rect(0, 0, float64(w), float64(h)), device, f.cfg.Theme.Background, paint.NonZero)

	if f.cfg.Title != "" {
		tw := f.text.Measure(f.cfg.Title, titleSize)
		f.text.DrawText(s, f.cfg.Title, (float64(w)-tw)/2, labelGap, titleSize, f.cfg.Theme.Foreground)
	}

	for _, a := range f.axes {
		a.Render(s)
	}
}

// RenderImage draws the figure into a new image.
func (f *Figure) RenderImage() *image.RGBA {
	c := canvas.New(f.cfg.Width, f.cfg.Height)
	f.Render(c)
	return c.Image()
}

// WritePNG draws the figure and writes it in PNG format.
func (f *Figure) WritePNG(w io.Writer) error {
	c := canvas.New(f.cfg.Width, f.cfg.Height)
	f.Render(c)
	return c.WritePNG(w)
}

// WritePDF draws the figure into a new single-page PDF file.
func (f *Figure) WritePDF(fname string) error {
	page, err := pdfsink.Create(fname, f.cfg.Width, f.cfg.Height, f.cfg.Theme.Background)
	if err != nil {
		return err
	}
	f.Render(page)
	return page.Close()
}
