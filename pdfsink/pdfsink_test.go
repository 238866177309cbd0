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

package pdfsink

import (
	stdcolor "image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/chart/paint"
)

func TestWritePage(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "out.pdf")
	bg := stdcolor.NRGBA{R: 40, G: 44, B: 52, A: 255}

	page, err := Create(fname, 200, 100, bg)
	require.NoError(t, err)
	w, h := page.Size()
	assert.Equal(t, 200, w)
	assert.Equal(t, 100, h)

	red := stdcolor.NRGBA{R: 224, G: 108, B: 117, A: 255}
	page.Fill(paint.Rect(10, 10, 50, 40), matrix.Identity, red, paint.NonZero)
	page.Fill(paint.Circle(100, 50, 20), matrix.Identity, red, paint.EvenOdd)

	curve := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		QuadTo(vec.Vec2{X: 5, Y: 10}, vec.Vec2{X: 10, Y: 0})
	page.Stroke(curve, matrix.Matrix{2, 0, 0, 2, 120, 20}, red, paint.Stroke{
		Width: 2,
		Cap:   graphics.LineCapRound,
		Join:  graphics.LineJoinRound,
		Dash:  []float64{3, 2},
	})
	require.NoError(t, page.Close())

	data, err := os.ReadFile(fname)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-", string(data[:5]))
}

func TestCreateFails(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "missing", "out.pdf")
	_, err := Create(fname, 10, 10, stdcolor.NRGBA{})
	assert.Error(t, err)
}

func TestColorBlending(t *testing.T) {
	p := &Page{bg: stdcolor.NRGBA{R: 255, G: 255, B: 255, A: 255}}

	opaque := p.pdfColor(stdcolor.NRGBA{R: 255, A: 255})
	assert.Equal(t, color.DeviceRGB{1, 0, 0}, opaque)

	transparent := p.pdfColor(stdcolor.NRGBA{A: 0})
	assert.Equal(t, color.DeviceRGB{1, 1, 1}, transparent)
}

func TestCTMScale(t *testing.T) {
	assert.Equal(t, 1.0, ctmScale(matrix.Matrix{}))
	assert.Equal(t, 1.0, ctmScale(matrix.Identity))
	assert.InDelta(t, 3.0, ctmScale(matrix.Matrix{3, 0, 0, 3, 7, 9}), 1e-12)
	assert.InDelta(t, 2.0, ctmScale(matrix.Matrix{4, 0, 0, -1, 0, 0}), 1e-12)
}
