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

package canvas

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/chart/paint"
)

var (
	red   = color.NRGBA{R: 255, A: 255}
	blue  = color.NRGBA{B: 255, A: 255}
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

func TestFillOpaque(t *testing.T) {
	c := New(10, 10)
	c.Fill(paint.Rect(2, 2, 5, 5), matrix.Identity, red, paint.NonZero)

	img := c.Image()
	assert.Equal(t, color.RGBA{R: 255, A: 255}, img.RGBAAt(3, 3))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(6, 6))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(1, 3))
}

func TestFillCTM(t *testing.T) {
	c := New(10, 10)
	c.Fill(paint.Rect(0, 0, 1, 1), matrix.Matrix{4, 0, 0, 4, 1, 1}, red, paint.NonZero)

	img := c.Image()
	assert.Equal(t, uint8(255), img.RGBAAt(4, 4).R)
	assert.Equal(t, uint8(0), img.RGBAAt(5, 5).R)
	assert.Equal(t, uint8(0), img.RGBAAt(0, 0).R)
}

func TestSourceOver(t *testing.T) {
	c := New(4, 4)
	c.Clear(white)
	half := color.NRGBA{B: 255, A: 128}
	c.Fill(paint.Rect(0, 0, 4, 4), matrix.Identity, half, paint.NonZero)

	px := c.Image().RGBAAt(1, 1)
	assert.Equal(t, uint8(255), px.A)
	assert.InDelta(t, 255, int(px.B), 1)
	assert.InDelta(t, 127, int(px.R), 1)
}

func TestTransparentIsNoop(t *testing.T) {
	c := New(4, 4)
	c.Clear(white)
	c.Fill(paint.Rect(0, 0, 4, 4), matrix.Identity, color.NRGBA{}, paint.NonZero)
	c.Stroke(paint.Rect(0, 0, 4, 4), matrix.Identity, color.NRGBA{}, paint.Stroke{Width: 2})
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, c.Image().RGBAAt(1, 1))
}

func TestEvenOdd(t *testing.T) {
	p := paint.Rect(0, 0, 10, 10)
	inner := paint.Rect(3, 3, 7, 7)
	p.Cmds = append(p.Cmds, inner.Cmds...)
	p.Coords = append(p.Coords, inner.Coords...)

	c := New(10, 10)
	c.Fill(p, matrix.Identity, blue, paint.EvenOdd)
	assert.Equal(t, uint8(0), c.Image().RGBAAt(5, 5).A)
	assert.Equal(t, uint8(255), c.Image().RGBAAt(1, 1).A)

	c = New(10, 10)
	c.Fill(p, matrix.Identity, blue, paint.NonZero)
	assert.Equal(t, uint8(255), c.Image().RGBAAt(5, 5).A)
}

func TestStroke(t *testing.T) {
	line := (&path.Data{}).
		MoveTo(vec.Vec2{X: 2, Y: 5}).
		LineTo(vec.Vec2{X: 12, Y: 5})

	c := New(16, 10)
	c.Stroke(line, matrix.Identity, red, paint.Stroke{
		Width: 2,
		Cap:   graphics.LineCapButt,
		Join:  graphics.LineJoinMiter,
	})
	img := c.Image()
	assert.Equal(t, uint8(255), img.RGBAAt(5, 4).R)
	assert.Equal(t, uint8(255), img.RGBAAt(5, 5).R)
	assert.Equal(t, uint8(0), img.RGBAAt(5, 6).R)
	assert.Equal(t, uint8(0), img.RGBAAt(13, 5).R)
}

func TestWritePNG(t *testing.T) {
	c := New(8, 6)
	c.Clear(white)
	c.Fill(paint.Circle(4, 3, 2), matrix.Identity, red, paint.NonZero)

	buf := &bytes.Buffer{}
	require.NoError(t, c.WritePNG(buf))

	img, err := png.Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, 8, img.Bounds().Dx())
	assert.Equal(t, 6, img.Bounds().Dy())

	w, h := c.Size()
	assert.Equal(t, 8, w)
	assert.Equal(t, 6, h)
}
