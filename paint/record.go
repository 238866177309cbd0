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
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Op is one recorded drawing operation.
type Op struct {
	Stroke bool // false for fills
	Path   *path.Data
	CTM    matrix.Matrix
	Color  color.NRGBA
	Rule   FillRule // fills only
	Style  Stroke   // strokes only
}

// Points returns the path coordinates mapped to device space.
func (op *Op) Points() []vec.Vec2 {
	res := make([]vec.Vec2, len(op.Path.Coords))
	m := op.CTM
	for i, p := range op.Path.Coords {
		res[i] = vec.Vec2{
			X: m[0]*p.X + m[2]*p.Y + m[4],
			Y: m[1]*p.X + m[3]*p.Y + m[5],
		}
	}
	return res
}

// Recorder is a Sink which keeps a copy of every operation.
type Recorder struct {
	Width, Height int
	Ops           []Op
}

// Fill implements the [Sink] interface.
func (r *Recorder) Fill(p *path.Data, ctm matrix.Matrix, c color.NRGBA, rule FillRule) {
	r.Ops = append(r.Ops, Op{Path: clonePath(p), CTM: ctm, Color: c, Rule: rule})
}

// Stroke implements the [Sink] interface.
func (r *Recorder) Stroke(p *path.Data, ctm matrix.Matrix, c color.NRGBA, st Stroke) {
	st.Dash = slices.Clone(st.Dash)
	r.Ops = append(r.Ops, Op{Stroke: true, Path: clonePath(p), CTM: ctm, Color: c, Style: st})
}

// Size implements the [Sink] interface.
func (r *Recorder) Size() (int, int) {
	return r.Width, r.Height
}

// Reset discards all recorded operations.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

func clonePath(p *path.Data) *path.Data {
	return &path.Data{
		Cmds:   slices.Clone(p.Cmds),
		Coords: slices.Clone(p.Coords),
	}
}
