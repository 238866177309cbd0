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
	"math"
	"strconv"
)

// targetTicks is the number of tick intervals aimed for on each axis.
const targetTicks = 8

// PlanTicks chooses a tick interval for an axis covering a range of
// length r.  The interval is 1, 2 or 5 times a power of ten, and count is
// the number of ticks needed to cover r.
//
// For r <= 0, and for ranges which are not finite, the result is (1, 1).
func PlanTicks(r float64) (interval float64, count int) {
	if !(r > 0) || math.IsInf(r, 0) {
		return 1, 1
	}

	raw := r / targetTicks
	magnitude := math.Pow(10, math.Floor(math.Log10(raw)))
	n := raw / magnitude

	var nice float64
	switch {
	case n < 1.5:
		nice = 1
	case n < 3:
		nice = 2
	case n < 7:
		nice = 5
	default:
		nice = 10
	}
	interval = nice * magnitude
	count = int(math.Ceil(r/interval)) + 1
	return interval, count
}

// maxTicks bounds the number of values returned by TickValues.
const maxTicks = 1000

// TickValues returns the multiples of interval in the closed range
// [lo, hi], in increasing order.
func TickValues(lo, hi, interval float64) []float64 {
	if !(interval > 0) || !(hi >= lo) || math.IsInf(hi-lo, 0) {
		return nil
	}
	eps := interval * 1e-9
	first := math.Ceil((lo - eps) / interval)
	last := math.Floor((hi + eps) / interval)
	if last-first+1 > maxTicks {
		return nil
	}

	var res []float64
	for k := first; k <= last; k++ {
		v := k * interval
		if math.Abs(v) < eps {
			v = 0
		}
		res = append(res, v)
	}
	return res
}

// FormatTick formats a tick value with just enough decimal places to tell
// neighbouring ticks apart.
func FormatTick(v, interval float64) string {
	decimals := 0
	if interval > 0 && interval < 1 {
		decimals = int(math.Ceil(-math.Log10(interval) - 1e-9))
	}
	scale := math.Pow(10, float64(decimals))
	v = math.Round(v*scale) / scale
	if v == 0 {
		v = 0 // no "-0"
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}
