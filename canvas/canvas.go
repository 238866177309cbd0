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

// Package canvas implements a pixel [paint.Sink] on top of an
// [image.RGBA].
//
// Paths are converted to coverage by the rasteriser from
// seehuhn.de/go/chart/raster and composited with the source-over operator.
package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/chart/paint"
	"seehuhn.de/go/chart/raster"
)

// Canvas is an anti-aliased RGBA drawing surface.
type Canvas struct {
	img *image.RGBA
	r   *raster.Rasteriser
}

var _ paint.Sink = (*Canvas)(nil)

// New allocates a transparent canvas of the given size.
func New(width, height int) *Canvas {
	return NewFromImage(image.NewRGBA(image.Rect(0, 0, width, height)))
}

// NewFromImage returns a canvas which draws into img.
func NewFromImage(img *image.RGBA) *Canvas {
	b := img.Bounds()
	clip := rect.Rect{
		LLx: float64(b.Min.X),
		LLy: float64(b.Min.Y),
		URx: float64(b.Max.X),
		URy: float64(b.Max.Y),
	}
	return &Canvas{img: img, r: raster.NewRasteriser(clip)}
}

// Image returns the underlying image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Size implements the [paint.Sink] interface.
func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Clear sets every pixel to col, without blending.
func (c *Canvas) Clear(col color.NRGBA) {
	pm := color.RGBAModel.Convert(col).(color.RGBA)
	pix := c.img.Pix
	b := c.img.Bounds()
	for y := range b.Dy() {
		row := pix[y*c.img.Stride : y*c.img.Stride+4*b.Dx()]
		for i := 0; i < len(row); i += 4 {
			row[i], row[i+1], row[i+2], row[i+3] = pm.R, pm.G, pm.B, pm.A
		}
	}
}

// Fill implements the [paint.Sink] interface.
func (c *Canvas) Fill(p *path.Data, ctm matrix.Matrix, col color.NRGBA, rule paint.FillRule) {
	if col.A == 0 {
		return
	}
	c.reset(ctm)
	if rule == paint.EvenOdd {
		c.r.FillEvenOdd(p, c.blend(col))
	} else {
		c.r.FillNonZero(p, c.blend(col))
	}
}

// Stroke implements the [paint.Sink] interface.
func (c *Canvas) Stroke(p *path.Data, ctm matrix.Matrix, col color.NRGBA, st paint.Stroke) {
	if col.A == 0 || st.Width <= 0 {
		return
	}
	c.reset(ctm)
	c.r.Width = st.Width
	c.r.Cap = st.Cap
	c.r.Join = st.Join
	c.r.Dash = st.Dash
	c.r.Stroke(p, c.blend(col))
}

func (c *Canvas) reset(ctm matrix.Matrix) {
	c.r.Reset(c.r.Clip)
	if ctm != (matrix.Matrix{}) {
		c.r.CTM = ctm
	}
}

// blend returns an emit function which composites col over the image,
// weighted by the coverage.
func (c *Canvas) blend(col color.NRGBA) raster.EmitFunc {
	sr, sg, sb := float32(col.R), float32(col.G), float32(col.B)
	sa := float32(col.A) / 255
	img := c.img
	return func(y, xMin int, coverage []float32) {
		off := img.PixOffset(xMin, y)
		row := img.Pix[off : off+4*len(coverage)]
		for i, cov := range coverage {
			a := cov * sa
			if a <= 0 {
				continue
			}
			px := row[4*i : 4*i+4 : 4*i+4]
			inv := 1 - a
			px[0] = uint8(sr*a + float32(px[0])*inv + 0.5)
			px[1] = uint8(sg*a + float32(px[1])*inv + 0.5)
			px[2] = uint8(sb*a + float32(px[2])*inv + 0.5)
			px[3] = uint8(255*a + float32(px[3])*inv + 0.5)
		}
	}
}

// WritePNG encodes the canvas as a PNG image.
func (c *Canvas) WritePNG(w io.Writer) error {
	if err := png.Encode(w, c.img); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return nil
}
