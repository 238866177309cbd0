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

// Package pdfsink implements a vector [paint.Sink] which writes a
// single-page PDF file.
//
// One device pixel corresponds to one PDF point.  PDF has its origin in
// the bottom-left corner, so the y axis is flipped when paths are written.
// Translucent colours are blended against the page background before they
// are written, so that the output does not depend on transparency support
// in the viewer.
package pdfsink

import (
	"fmt"
	stdcolor "image/color"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/chart/paint"
)

// Page is a PDF page which can be drawn on.
type Page struct {
	page          *document.Page
	width, height int
	bg            stdcolor.NRGBA
}

var _ paint.Sink = (*Page)(nil)

// Create starts a new PDF file with a single page of the given size.
// The page is filled with the colour bg.  The file is complete once
// Close has been called.
func Create(fname string, width, height int, bg stdcolor.NRGBA) (*Page, error) {
	paper := &pdf.Rectangle{
		URx: float64(width),
		URy: float64(height),
	}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return nil, fmt.Errorf("creating %q: %w", fname, err)
	}

	bg.A = 255
	p := &Page{page: page, width: width, height: height, bg: bg}
	page.SetFillColor(p.pdfColor(bg))
	page.Rectangle(0, 0, float64(width), float64(height))
	page.Fill()
	return p, nil
}

// Close finishes the page and writes the file.
func (p *Page) Close() error {
	if err := p.page.Close(); err != nil {
		return fmt.Errorf("writing PDF: %w", err)
	}
	return nil
}

// Size implements the [paint.Sink] interface.
func (p *Page) Size() (int, int) {
	return p.width, p.height
}

// Fill implements the [paint.Sink] interface.
func (p *Page) Fill(data *path.Data, ctm matrix.Matrix, c stdcolor.NRGBA, rule paint.FillRule) {
	if c.A == 0 || len(data.Cmds) == 0 {
		return
	}
	p.page.SetFillColor(p.pdfColor(c))
	p.writePath(data, ctm)
	if rule == paint.EvenOdd {
		p.page.FillEvenOdd()
	} else {
		p.page.Fill()
	}
}

// Stroke implements the [paint.Sink] interface.
func (p *Page) Stroke(data *path.Data, ctm matrix.Matrix, c stdcolor.NRGBA, st paint.Stroke) {
	if c.A == 0 || st.Width <= 0 || len(data.Cmds) == 0 {
		return
	}
	scale := ctmScale(ctm)
	p.page.SetStrokeColor(p.pdfColor(c))
	p.page.SetLineWidth(st.Width * scale)
	p.page.SetLineCap(st.Cap)
	p.page.SetLineJoin(st.Join)
	if len(st.Dash) > 0 {
		dash := make([]float64, len(st.Dash))
		for i, d := range st.Dash {
			dash[i] = d * scale
		}
		p.page.SetLineDash(dash, 0)
	} else {
		p.page.SetLineDash(nil, 0)
	}
	p.writePath(data, ctm)
	p.page.Stroke()
}

// writePath emits the path construction operators.  Points are mapped to
// device space by ctm and then flipped into PDF coordinates.
func (p *Page) writePath(data *path.Data, ctm matrix.Matrix) {
	if ctm == (matrix.Matrix{}) {
		ctm = matrix.Identity
	}
	h := float64(p.height)
	dev := func(v vec.Vec2) (float64, float64) {
		x := ctm[0]*v.X + ctm[2]*v.Y + ctm[4]
		y := ctm[1]*v.X + ctm[3]*v.Y + ctm[5]
		return x, h - y
	}

	var cur vec.Vec2
	k := 0
	for _, cmd := range data.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			cur = data.Coords[k]
			p.page.MoveTo(dev(cur))
			k++
		case path.CmdLineTo:
			cur = data.Coords[k]
			p.page.LineTo(dev(cur))
			k++
		case path.CmdQuadTo:
			// raise the degree, PDF has no quadratic curves
			c, end := data.Coords[k], data.Coords[k+1]
			c1 := cur.Add(c.Sub(cur).Mul(2.0 / 3))
			c2 := end.Add(c.Sub(end).Mul(2.0 / 3))
			x1, y1 := dev(c1)
			x2, y2 := dev(c2)
			x3, y3 := dev(end)
			p.page.CurveTo(x1, y1, x2, y2, x3, y3)
			cur = end
			k += 2
		case path.CmdCubeTo:
			x1, y1 := dev(data.Coords[k])
			x2, y2 := dev(data.Coords[k+1])
			x3, y3 := dev(data.Coords[k+2])
			p.page.CurveTo(x1, y1, x2, y2, x3, y3)
			cur = data.Coords[k+2]
			k += 3
		case path.CmdClose:
			p.page.ClosePath()
		}
	}
}

// pdfColor converts c to DeviceRGB, blending it against the background.
func (p *Page) pdfColor(c stdcolor.NRGBA) color.Color {
	a := float64(c.A) / 255
	mix := func(fg, bg uint8) float64 {
		return (a*float64(fg) + (1-a)*float64(bg)) / 255
	}
	return color.DeviceRGB{mix(c.R, p.bg.R), mix(c.G, p.bg.G), mix(c.B, p.bg.B)}
}

// ctmScale returns the factor by which ctm scales lengths, on average.
func ctmScale(ctm matrix.Matrix) float64 {
	if ctm == (matrix.Matrix{}) {
		return 1
	}
	det := ctm[0]*ctm[3] - ctm[1]*ctm[2]
	return math.Sqrt(math.Abs(det))
}
