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

package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// segment is a flattened piece of a stroked path, in user space.
type segment struct {
	a, b vec.Vec2
	t    vec.Vec2 // unit tangent from a to b
	n    vec.Vec2 // t rotated by +90°
}

func newSegment(a, b vec.Vec2) (segment, bool) {
	d := b.Sub(a)
	l := d.Length()
	if l < zeroLengthThreshold {
		return segment{}, false
	}
	t := d.Mul(1 / l)
	return segment{a: a, b: b, t: t, n: vec.Vec2{X: -t.Y, Y: t.X}}, true
}

// subpath is a range of segments.
type subpath struct {
	start, end int
	closed     bool
}

// dot is a subpath without extent.  Dots left over from dashing know the
// direction of the underlying path, dots from the path itself do not.
type dot struct {
	p, t     vec.Vec2
	oriented bool
}

// Stroke paints the outline of p, using the Width, Cap, Join, MiterLimit,
// Dash and DashPhase fields.
//
// The outline is built as a union of convex pieces: one quadrilateral per
// segment plus the join and cap shapes.  All pieces are oriented the same
// way and are filled together with the nonzero rule, so that overlaps are
// painted only once.
func (r *Rasteriser) Stroke(p *path.Data, emit EmitFunc) {
	r.collectSegments(p)

	r.outline = r.outline[:0]
	r.polys = r.polys[:0]

	segs, subs := r.segs, r.subpaths
	if len(r.Dash) > 0 && r.applyDash() {
		segs, subs = r.dashSegs, r.dashSubs
	}
	for _, sp := range subs {
		r.strokeSubpath(segs[sp.start:sp.end], sp.closed)
	}
	for _, d := range r.dots {
		r.strokeDot(d)
	}

	r.beginEdges()
	for i, start := range r.polys {
		end := len(r.outline)
		if i+1 < len(r.polys) {
			end = r.polys[i+1]
		}
		poly := r.outline[start:end]
		for j := range poly {
			r.addEdge(poly[j], poly[(j+1)%len(poly)])
		}
	}
	r.scan(nonZero, emit)
}

// segmentCollector gathers the flattened segments of a path for stroking.
type segmentCollector struct {
	r        *Rasteriser
	first    int
	sawDraw  bool
	flattenF flattener
}

func (c *segmentCollector) move(vec.Vec2) {
	c.first = len(c.r.segs)
	c.sawDraw = false
}

func (c *segmentCollector) line(a, b vec.Vec2) {
	c.sawDraw = true
	c.r.addSegment(a, b)
}

func (c *segmentCollector) quad(a, b, d vec.Vec2) {
	c.sawDraw = true
	c.flattenF.quad(a, b, d)
}

func (c *segmentCollector) cube(a, b, d, e vec.Vec2) {
	c.sawDraw = true
	c.flattenF.cube(a, b, d, e)
}

func (c *segmentCollector) end(cur, start vec.Vec2, closed bool) {
	r := c.r
	if closed && cur != start {
		r.addSegment(cur, start)
	}
	if len(r.segs) == c.first {
		if closed || c.sawDraw {
			r.dots = append(r.dots, dot{p: start})
		}
		return
	}
	r.subpaths = append(r.subpaths, subpath{start: c.first, end: len(r.segs), closed: closed})
}

func (r *Rasteriser) collectSegments(p *path.Data) {
	r.segs = r.segs[:0]
	r.subpaths = r.subpaths[:0]
	r.dots = r.dots[:0]
	c := &segmentCollector{r: r}
	c.flattenF = r.flatten(r.addSegment)
	walkPath(p, c)
}

func (r *Rasteriser) addSegment(a, b vec.Vec2) {
	if s, ok := newSegment(a, b); ok {
		r.segs = append(r.segs, s)
	}
}

// strokeSubpath adds the outline pieces for one run of segments.
func (r *Rasteriser) strokeSubpath(segs []segment, closed bool) {
	if len(segs) == 0 {
		return
	}
	d := r.Width / 2
	for i := range segs {
		s := &segs[i]
		r.addPolygon(
			s.a.Add(s.n.Mul(d)),
			s.b.Add(s.n.Mul(d)),
			s.b.Sub(s.n.Mul(d)),
			s.a.Sub(s.n.Mul(d)),
		)
		if i > 0 {
			r.addJoin(&segs[i-1], s, d)
		}
	}

	first, last := &segs[0], &segs[len(segs)-1]
	if closed {
		if len(segs) > 1 {
			r.addJoin(last, first, d)
		}
		return
	}
	r.addCap(first.a, first.t.Mul(-1), d)
	r.addCap(last.b, last.t, d)
}

// addCap adds the cap at point p, where t points away from the line.
func (r *Rasteriser) addCap(p, t vec.Vec2, d float64) {
	switch r.Cap {
	case graphics.LineCapRound:
		r.addCircle(p, d)
	case graphics.LineCapSquare:
		n := vec.Vec2{X: -t.Y, Y: t.X}
		tip := p.Add(t.Mul(d))
		r.addPolygon(p.Add(n.Mul(d)), tip.Add(n.Mul(d)), tip.Sub(n.Mul(d)), p.Sub(n.Mul(d)))
	}
}

// addJoin adds the join between s1 and s2, at the common point s1.b.
func (r *Rasteriser) addJoin(s1, s2 *segment, d float64) {
	cos := s1.t.Dot(s2.t)
	sin := s1.t.X*s2.t.Y - s1.t.Y*s2.t.X
	if math.Abs(sin) < collinearThreshold && cos > 0 {
		return
	}
	p := s1.b

	if cos < cuspCosine {
		// the path doubles back on itself
		r.addCap(p, s1.t, d)
		r.addCap(p, s2.t.Mul(-1), d)
		return
	}

	// the outer side of the corner lies opposite to the turn direction
	side := 1.0
	if sin > 0 {
		side = -1
	}
	o1 := p.Add(s1.n.Mul(side * d))
	o2 := p.Add(s2.n.Mul(side * d))

	switch r.Join {
	case graphics.LineJoinRound:
		r.addCircle(p, d)
	case graphics.LineJoinMiter:
		// cos(θ/2) for the angle θ between the two tangents
		cosHalf := math.Sqrt((1 + cos) / 2)
		bis := s1.n.Add(s2.n).Mul(side)
		if l := bis.Length(); cosHalf > 0 && l > zeroLengthThreshold &&
			1/cosHalf <= r.MiterLimit+miterEpsilon {
			tip := p.Add(bis.Mul(d / (cosHalf * l)))
			r.addPolygon(p, o1, tip, o2)
			return
		}
		r.addPolygon(p, o1, o2)
	default: // bevel
		r.addPolygon(p, o1, o2)
	}
}

// strokeDot handles subpaths of zero length.
func (r *Rasteriser) strokeDot(dt dot) {
	d := r.Width / 2
	switch r.Cap {
	case graphics.LineCapRound:
		r.addCircle(dt.p, d)
	case graphics.LineCapSquare:
		if !dt.oriented {
			return
		}
		t, n := dt.t.Mul(d), vec.Vec2{X: -dt.t.Y, Y: dt.t.X}.Mul(d)
		r.addPolygon(
			dt.p.Add(t).Add(n),
			dt.p.Add(t).Sub(n),
			dt.p.Sub(t).Sub(n),
			dt.p.Sub(t).Add(n),
		)
	}
}

// addCircle adds a polygonal circle.  The number of vertices is chosen
// from the device-space radius and the flatness tolerance.
func (r *Rasteriser) addCircle(c vec.Vec2, radius float64) {
	dev := max(
		r.linear(vec.Vec2{X: radius}).Length(),
		r.linear(vec.Vec2{Y: radius}).Length(),
	)
	n := 8
	if dev > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/dev)
		if step > 0 && !math.IsNaN(step) {
			n = max(n, int(math.Ceil(2*math.Pi/step)))
		}
	}

	start := len(r.outline)
	for i := range n {
		a := 2 * math.Pi * float64(i) / float64(n)
		r.outline = append(r.outline, vec.Vec2{
			X: c.X + radius*math.Cos(a),
			Y: c.Y + radius*math.Sin(a),
		})
	}
	r.finishPolygon(start)
}

// addPolygon appends a closed polygon to the outline.
func (r *Rasteriser) addPolygon(pts ...vec.Vec2) {
	start := len(r.outline)
	r.outline = append(r.outline, pts...)
	r.finishPolygon(start)
}

// finishPolygon normalises the orientation of the polygon starting at
// outline[start], or discards it if it has no area.
func (r *Rasteriser) finishPolygon(start int) {
	poly := r.outline[start:]
	var area float64
	for i := range poly {
		p, q := poly[i], poly[(i+1)%len(poly)]
		area += p.X*q.Y - q.X*p.Y
	}
	if math.Abs(area) < zeroLengthThreshold {
		r.outline = r.outline[:start]
		return
	}
	if area < 0 {
		for i, j := 0, len(poly)-1; i < j; i, j = i+1, j-1 {
			poly[i], poly[j] = poly[j], poly[i]
		}
	}
	r.polys = append(r.polys, start)
}

const (
	// cuspCosine detects segments which turn by more than about 179.4°.
	cuspCosine = -0.9999

	miterEpsilon = 1e-10
)
