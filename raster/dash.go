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

	"seehuhn.de/go/geom/vec"
)

// applyDash splits the collected subpaths into dashes.  The result is
// stored in r.dashSegs and r.dashSubs, zero-length dashes are appended to
// r.dots.  If the pattern cannot be used, applyDash returns false and the
// path is stroked solid.
func (r *Rasteriser) applyDash() bool {
	var total float64
	for _, d := range r.Dash {
		if d < 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			return false
		}
		total += d
	}
	if total <= 0 {
		return false
	}

	r.dashSegs = r.dashSegs[:0]
	r.dashSubs = r.dashSubs[:0]
	for _, sp := range r.subpaths {
		r.dashSubpath(r.segs[sp.start:sp.end], sp.closed)
	}
	return true
}

// dashPeriod is the number of entries in one period of the pattern.
// Patterns of odd length are repeated, so that on and off alternate.
func (r *Rasteriser) dashPeriod() int {
	n := len(r.Dash)
	if n%2 == 1 {
		n *= 2
	}
	return n
}

// dashStart locates DashPhase within the pattern.  It returns the index
// of the current entry and the length still left in it.
func (r *Rasteriser) dashStart() (int, float64) {
	n := r.dashPeriod()
	var total float64
	for i := range n {
		total += r.Dash[i%len(r.Dash)]
	}
	phase := math.Mod(r.DashPhase, total)
	if phase < 0 {
		phase += total
	}

	idx := 0
	for {
		l := r.Dash[idx%len(r.Dash)]
		if phase < l {
			return idx, l - phase
		}
		phase -= l
		idx = (idx + 1) % n
	}
}

func (r *Rasteriser) dashSubpath(segs []segment, closed bool) {
	n := r.dashPeriod()
	idx, left := r.dashStart()
	on := idx%2 == 0

	open := false
	openStart := 0 // start of the open dash in r.dashSegs
	var dotP, dotT vec.Vec2

	fromStart := on // the open dash began at the start of the subpath
	firstSub := -1  // index in r.dashSubs of the dash which began at the start

	begin := func(p, t vec.Vec2) {
		open = true
		openStart = len(r.dashSegs)
		dotP, dotT = p, t
	}
	finish := func() {
		open = false
		if len(r.dashSegs) == openStart {
			r.dots = append(r.dots, dot{p: dotP, t: dotT, oriented: true})
			return
		}
		if fromStart && firstSub < 0 {
			firstSub = len(r.dashSubs)
		}
		r.dashSubs = append(r.dashSubs, subpath{start: openStart, end: len(r.dashSegs)})
	}

	if on {
		begin(segs[0].a, segs[0].t)
	}
	for i := range segs {
		s := &segs[i]
		length := s.b.Sub(s.a).Length()
		pos := 0.0
		for {
			rest := length - pos
			if left > rest {
				if on {
					r.addDashPiece(s, pos, length)
				}
				left -= rest
				break
			}

			end := pos + left
			if on {
				r.addDashPiece(s, pos, end)
				finish()
				fromStart = false
			}
			pos = end
			idx = (idx + 1) % n
			on = !on
			left = r.Dash[idx%len(r.Dash)]
			if on {
				begin(s.a.Add(s.t.Mul(pos)), s.t)
			}
		}
	}

	if !open || (len(r.dashSegs) == openStart && !fromStart) {
		// a dash which starts exactly at the end of the subpath
		return
	}
	if closed && fromStart {
		// one dash covers the whole subpath
		r.dashSubs = append(r.dashSubs, subpath{start: openStart, end: len(r.dashSegs), closed: true})
		return
	}
	if closed && firstSub >= 0 {
		// The last dash runs across the starting point of the subpath and
		// continues with the first dash.
		first := &r.dashSubs[firstSub]
		r.dashSegs = append(r.dashSegs, r.dashSegs[first.start:first.end]...)
		first.end = first.start
	}
	finish()
}

// addDashPiece appends the part of s between the distances from and to,
// measured from s.a.
func (r *Rasteriser) addDashPiece(s *segment, from, to float64) {
	if to-from < zeroLengthThreshold {
		return
	}
	a := s.a
	if from > 0 {
		a = s.a.Add(s.t.Mul(from))
	}
	b := s.b
	if to < s.b.Sub(s.a).Length() {
		b = s.a.Add(s.t.Mul(to))
	}
	r.dashSegs = append(r.dashSegs, segment{a: a, b: b, t: s.t, n: s.n})
}
