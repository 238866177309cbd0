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

package paint

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func TestRect(t *testing.T) {
	p := Rect(1, 2, 3, 4)
	assert.Equal(t, []path.Command{
		path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose,
	}, p.Cmds)
	assert.Equal(t, []vec.Vec2{{X: 1, Y: 2}, {X: 3, Y: 2}, {X: 3, Y: 4}, {X: 1, Y: 4}}, p.Coords)
}

func TestCircle(t *testing.T) {
	p := Circle(5, 5, 2)
	require.Len(t, p.Coords, 13)
	assert.Equal(t, vec.Vec2{X: 7, Y: 5}, p.Coords[0])
	assert.Equal(t, p.Coords[0], p.Coords[12])
	assert.Equal(t, path.CmdClose, p.Cmds[len(p.Cmds)-1])
}

func TestPolyline(t *testing.T) {
	assert.Empty(t, Polyline(nil).Cmds)

	p := Polyline([]vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0}})
	assert.Equal(t, []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo}, p.Cmds)
}

func TestRecorder(t *testing.T) {
	rec := &Recorder{Width: 10, Height: 20}
	w, h := rec.Size()
	assert.Equal(t, 10, w)
	assert.Equal(t, 20, h)

	red := color.NRGBA{R: 255, A: 255}
	p := Rect(0, 0, 1, 1)
	rec.Fill(p, matrix.Matrix{2, 0, 0, 2, 10, 10}, red, EvenOdd)
	rec.Stroke(p, matrix.Identity, red, Stroke{Width: 3, Dash: []float64{1, 2}})

	// the recorder keeps its own copy of the path
	p.Coords[0] = vec.Vec2{X: 100, Y: 100}

	require.Len(t, rec.Ops, 2)
	fill := rec.Ops[0]
	assert.False(t, fill.Stroke)
	assert.Equal(t, EvenOdd, fill.Rule)
	pts := fill.Points()
	assert.Equal(t, vec.Vec2{X: 10, Y: 10}, pts[0])
	assert.Equal(t, vec.Vec2{X: 12, Y: 10}, pts[1])

	stroke := rec.Ops[1]
	assert.True(t, stroke.Stroke)
	assert.Equal(t, 3.0, stroke.Style.Width)
	assert.Equal(t, []float64{1, 2}, stroke.Style.Dash)

	rec.Reset()
	assert.Empty(t, rec.Ops)
}

func TestFillRuleString(t *testing.T) {
	assert.Equal(t, "nonzero", NonZero.String())
	assert.Equal(t, "evenodd", EvenOdd.String())
}
