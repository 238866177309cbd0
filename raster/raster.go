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

// Package raster converts vector paths into anti-aliased pixel coverage.
//
// The output of every operation is delivered row by row through an emit
// callback.  Coverage values range from 0 (pixel not touched) to 1 (pixel
// completely inside the shape).  Compositing the coverage into an image is
// left to the caller.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// EmitFunc receives the coverage of one scanline.  The coverage slice
// starts at pixel xMin and is only valid during the call.
type EmitFunc func(y, xMin int, coverage []float32)

// edge is a line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // inverse slope, (x1-x0)/(y1-y0)
}

func (e *edge) top() float64    { return min(e.y0, e.y1) }
func (e *edge) bottom() float64 { return max(e.y0, e.y1) }

// Rasteriser turns paths into coverage values.  A single instance should be
// reused for many paths: the internal buffers grow as needed and are kept
// between calls.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// CTM maps user space to device space.  It must be non-singular.
	CTM matrix.Matrix

	// Clip restricts the output to this device-space rectangle.
	// The coordinates must be integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and its polygonal approximation.
	Flatness float64

	// Width is the stroke width in user-space units.
	Width float64

	// Cap is the shape used at the open ends of stroked subpaths.
	Cap graphics.LineCapStyle

	// Join is the shape used where two stroked segments meet.
	Join graphics.LineJoinStyle

	// MiterLimit bounds the length of miter joins, relative to the line
	// width.  Joins exceeding the limit are drawn as bevels.
	MiterLimit float64

	// Dash lists alternating on/off lengths in user-space units.
	// A nil slice gives solid lines.
	Dash []float64

	// DashPhase is the distance into the dash pattern at which each
	// subpath starts.
	DashPhase float64

	cover  []float32 // per-pixel signed cover, becomes the output row
	area   []float32 // per-pixel partial area
	edges  []edge
	active []int

	// device-space bounding box of the collected edges
	haveBox                    bool
	boxX0, boxX1, boxY0, boxY1 float64

	// stroking state
	segs     []segment
	subpaths []subpath
	dots     []dot
	dashSegs []segment
	dashSubs []subpath
	outline  []vec.Vec2
	polys    []int // start of each polygon in outline
}

// NewRasteriser returns a Rasteriser for the given clip rectangle.  The
// remaining parameters are set to the PDF defaults.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	r := &Rasteriser{}
	r.Reset(clip)
	return r
}

// Reset restores the default parameters and sets a new clip rectangle.
// Buffer capacity is kept.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapButt
	r.Join = graphics.LineJoinMiter
	r.MiterLimit = defaultMiterLimit
	r.Dash = nil
	r.DashPhase = 0
}

// toDevice applies the CTM to a point.
func (r *Rasteriser) toDevice(p vec.Vec2) vec.Vec2 {
	m := r.CTM
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// linear applies the CTM without its translation part.
func (r *Rasteriser) linear(v vec.Vec2) vec.Vec2 {
	m := r.CTM
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y,
		Y: m[1]*v.X + m[3]*v.Y,
	}
}

// FillNonZero fills p using the nonzero winding rule.
func (r *Rasteriser) FillNonZero(p *path.Data, emit EmitFunc) {
	r.fillPath(p, nonZero, emit)
}

// FillEvenOdd fills p using the even-odd rule.
func (r *Rasteriser) FillEvenOdd(p *path.Data, emit EmitFunc) {
	r.fillPath(p, evenOdd, emit)
}

type fillRule int

const (
	nonZero fillRule = iota
	evenOdd
)

func (r *Rasteriser) fillPath(p *path.Data, rule fillRule, emit EmitFunc) {
	r.beginEdges()
	walkPath(p, r.flatten(r.addEdge))
	r.scan(rule, emit)
}

// walkPath hands every drawing command of p to the given visitor.  The
// visitor's end method is called once for every subpath.
func walkPath(p *path.Data, v pathVisitor) {
	var cur, start vec.Vec2
	open := false
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				v.end(cur, start, false)
			}
			cur = p.Coords[k]
			start = cur
			open = true
			v.move(cur)
			k++
		case path.CmdLineTo:
			v.line(cur, p.Coords[k])
			cur = p.Coords[k]
			k++
		case path.CmdQuadTo:
			v.quad(cur, p.Coords[k], p.Coords[k+1])
			cur = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			v.cube(cur, p.Coords[k], p.Coords[k+1], p.Coords[k+2])
			cur = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if open {
				v.end(cur, start, true)
			}
			cur = start
			open = false
		}
	}
	if open {
		v.end(cur, start, false)
	}
}

// pathVisitor receives the commands of a path in user space.
type pathVisitor interface {
	move(p vec.Vec2)
	line(a, b vec.Vec2)
	quad(a, b, c vec.Vec2)
	cube(a, b, c, d vec.Vec2)
	end(cur, start vec.Vec2, closed bool)
}

// flattener turns curves into line segments and forwards them to seg.
// Fills close every subpath implicitly, so end adds the closing edge.
type flattener struct {
	r   *Rasteriser
	seg func(a, b vec.Vec2)
}

func (r *Rasteriser) flatten(seg func(a, b vec.Vec2)) flattener {
	return flattener{r: r, seg: seg}
}

func (f flattener) move(vec.Vec2)         {}
func (f flattener) line(a, b vec.Vec2)    { f.seg(a, b) }
func (f flattener) quad(a, b, c vec.Vec2) { f.r.flattenQuad(a, b, c, f.seg) }
func (f flattener) cube(a, b, c, d vec.Vec2) {
	f.r.flattenCube(a, b, c, d, f.seg)
}
func (f flattener) end(cur, start vec.Vec2, _ bool) {
	if cur != start {
		f.seg(cur, start)
	}
}

// flattenQuad approximates a quadratic Bézier curve by line segments.
// The number of segments is chosen so that the deviation in device space
// stays below r.Flatness.
func (r *Rasteriser) flattenQuad(p0, p1, p2 vec.Vec2, seg func(a, b vec.Vec2)) {
	dev := r.linear(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)).Length()
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}
	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		q := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		seg(prev, q)
		prev = q
	}
}

// flattenCube approximates a cubic Bézier curve by line segments, using
// Wang's bound for the segment count.
func (r *Rasteriser) flattenCube(p0, p1, p2, p3 vec.Vec2, seg func(a, b vec.Vec2)) {
	d1 := r.linear(p0.Sub(p1.Mul(2)).Add(p2)).Length()
	d2 := r.linear(p1.Sub(p2.Mul(2)).Add(p3)).Length()
	n := 1
	if m := max(d1, d2); m > 0 {
		if f := math.Sqrt(3 * m / (4 * r.Flatness)); f > 1 {
			n = int(math.Ceil(f))
		}
	}
	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		q := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		seg(prev, q)
		prev = q
	}
}

func (r *Rasteriser) beginEdges() {
	r.edges = r.edges[:0]
	r.haveBox = false
}

// addEdge transforms a user-space segment to device space and records it.
func (r *Rasteriser) addEdge(a, b vec.Vec2) {
	p, q := r.toDevice(a), r.toDevice(b)
	dy := q.Y - p.Y
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{
		x0: p.X, y0: p.Y,
		x1: q.X, y1: q.Y,
		dxdy: (q.X - p.X) / dy,
	})

	x0, x1 := min(p.X, q.X), max(p.X, q.X)
	y0, y1 := min(p.Y, q.Y), max(p.Y, q.Y)
	if !r.haveBox {
		r.boxX0, r.boxX1, r.boxY0, r.boxY1 = x0, x1, y0, y1
		r.haveBox = true
		return
	}
	r.boxX0 = min(r.boxX0, x0)
	r.boxX1 = max(r.boxX1, x1)
	r.boxY0 = min(r.boxY0, y0)
	r.boxY1 = max(r.boxY1, y1)
}

// pixelBox returns the integer bounding box of the collected edges,
// intersected with the clip rectangle.
func (r *Rasteriser) pixelBox() (xMin, xMax, yMin, yMax int, ok bool) {
	if !r.haveBox || len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}
	xMin = max(int(math.Floor(r.boxX0)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.boxX1))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.boxY0)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.boxY1))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// scan converts the collected edges into coverage, one scanline at a time,
// using an active edge list.
//
// For every pixel two quantities are accumulated: cover, the signed height
// of all edge pieces inside the pixel column, and area, the part of that
// height which lies to the right of the edge.  Summing cover from the left
// and adding the area of the current pixel gives the signed winding
// coverage of the pixel.
func (r *Rasteriser) scan(rule fillRule, emit EmitFunc) {
	xMin, xMax, yMin, yMax, ok := r.pixelBox()
	if !ok {
		return
	}
	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.top(), b.top())
	})
	r.active = r.active[:0]
	next := 0

	for y := yMin; y < yMax; y++ {
		rowTop, rowBot := float64(y), float64(y+1)

		for next < len(r.edges) && r.edges[next].top() < rowBot {
			r.active = append(r.active, next)
			next++
		}

		// drop edges which ended above this row
		kept := r.active[:0]
		for _, i := range r.active {
			if r.edges[i].bottom() > rowTop {
				kept = append(kept, i)
			}
		}
		r.active = kept
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		for _, i := range r.active {
			r.accumulate(&r.edges[i], y, xMin, xMax)
		}

		if rule == nonZero {
			integrateNonZero(r.cover, r.area)
		} else {
			integrateEvenOdd(r.cover, r.area)
		}
		if row, off := trimZeros(r.cover); row != nil {
			emit(y, xMin+off, row)
		}
	}
}

// accumulate adds the part of e which lies in scanline y to the cover and
// area buffers.  Pixel columns left of the buffer are folded into its
// first cell, columns to the right are ignored.
func (r *Rasteriser) accumulate(e *edge, y, xMin, xMax int) {
	yTop := max(float64(y), e.top())
	yBot := min(float64(y+1), e.bottom())
	if yBot <= yTop {
		return
	}
	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xa := e.x0 + e.dxdy*(yTop-e.y0)
	xb := e.x0 + e.dxdy*(yBot-e.y0)
	left, right := min(xa, xb), max(xa, xb)
	colL := int(math.Floor(left))
	colR := int(math.Floor(right))

	if colR < xMin {
		r.addCell(xMin, xMin, sign*float32(yBot-yTop), 0)
		return
	}
	if colL >= xMax {
		return
	}
	if colL == colR {
		xMid := (xa + xb) / 2
		r.addCell(colL, xMin, sign*float32(yBot-yTop), xMid-float64(colL))
		return
	}

	dydx := 1 / e.dxdy
	for col := colL; col <= colR && col < xMax; col++ {
		ya := e.y0 + dydx*(float64(col)-e.x0)
		yb := e.y0 + dydx*(float64(col+1)-e.x0)
		s0 := max(min(ya, yb), yTop)
		s1 := min(max(ya, yb), yBot)
		if s1 <= s0 {
			continue
		}
		xMid := e.x0 + e.dxdy*((s0+s1)/2-e.y0)
		r.addCell(col, xMin, sign*float32(s1-s0), xMid-float64(col))
	}
}

// addCell records a cover contribution c in pixel column col, where frac
// is the horizontal position of the edge inside that pixel.
func (r *Rasteriser) addCell(col, xMin int, c float32, frac float64) {
	if col < xMin {
		r.cover[0] += c
		r.area[0] += c
		return
	}
	i := col - xMin
	r.cover[i] += c
	r.area[i] += c * float32(1-frac)
}

// integrateNonZero turns cover/area into coverage under the nonzero rule.
// The result overwrites cover.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}

// integrateEvenOdd turns cover/area into coverage under the even-odd rule.
// The result overwrites cover.
func integrateEvenOdd(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		m := v - 2*float32(int(v/2))
		d := 1 - m
		if d < 0 {
			d = -d
		}
		cover[i] = 1 - d
	}
}

// trimZeros strips zero coverage from both ends of a row.
func trimZeros(row []float32) ([]float32, int) {
	lo, hi := 0, len(row)
	for lo < hi && row[lo] == 0 {
		lo++
	}
	for hi > lo && row[hi-1] == 0 {
		hi--
	}
	if lo == hi {
		return nil, 0
	}
	return row[lo:hi], lo
}

const (
	// defaultFlatness is below the threshold of visual perception.
	defaultFlatness = 0.25

	// defaultMiterLimit matches PDF and PostScript.
	defaultMiterLimit = 10.0

	horizontalEdgeThreshold = 1e-10
	zeroLengthThreshold     = 1e-10
	collinearThreshold      = 1e-6
)
