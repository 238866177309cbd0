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
	"testing"

	"github.com/stretchr/testify/assert"
)

func isNice(v float64) bool {
	e := math.Floor(math.Log10(v))
	m := v / math.Pow(10, e)
	for _, n := range []float64{1, 2, 5, 10} {
		if math.Abs(m-n) < 1e-9 {
			return true
		}
	}
	return false
}

func TestPlanTicksNice(t *testing.T) {
	for _, r := range []float64{1e-7, 0.003, 0.1, 0.9, 1, 1.3, 2.5, 3, 7, 9.99, 10, 42, 123.4, 999, 5e8} {
		interval, count := PlanTicks(r)
		assert.True(t, isNice(interval), "range %g: interval %g", r, interval)
		assert.GreaterOrEqual(t, interval*float64(count-1), r*(1-1e-9),
			"range %g: %d ticks of %g do not cover the range", r, count, interval)
		assert.LessOrEqual(t, count, 2*targetTicks, "range %g", r)
	}
}

func TestPlanTicksDegenerate(t *testing.T) {
	for _, r := range []float64{0, -1, -1e9, math.NaN(), math.Inf(1)} {
		interval, count := PlanTicks(r)
		assert.Equal(t, 1.0, interval, "range %g", r)
		assert.Equal(t, 1, count, "range %g", r)
	}
}

func TestPlanTicksValues(t *testing.T) {
	cases := []struct {
		r        float64
		interval float64
		count    int
	}{
		{10, 1, 11},
		{100, 10, 11},
		{16, 2, 9},
		{40, 5, 9},
		{70, 10, 8},
	}
	for _, tc := range cases {
		interval, count := PlanTicks(tc.r)
		assert.InDelta(t, tc.interval, interval, 1e-12, "range %g", tc.r)
		assert.Equal(t, tc.count, count, "range %g", tc.r)
	}
}

func TestTickValues(t *testing.T) {
	assert.Equal(t, []float64{0, 0.5, 1, 1.5}, TickValues(-0.2, 1.7, 0.5))
	assert.Equal(t, []float64{-2, 0, 2}, TickValues(-2, 2, 2))
	assert.Nil(t, TickValues(1, 0, 0.5))
	assert.Nil(t, TickValues(0, 1, 0))
	assert.Nil(t, TickValues(0, 1e9, 1e-3))

	// rounding errors must not produce "-0" or lose the end points
	vals := TickValues(-0.3, 0.3, 0.1)
	assert.Len(t, vals, 7)
	assert.Equal(t, 0.0, vals[3])
	assert.False(t, math.Signbit(vals[3]))
}

func TestFormatTick(t *testing.T) {
	cases := []struct {
		v, interval float64
		want        string
	}{
		{3, 1, "3"},
		{20, 5, "20"},
		{0.5, 0.1, "0.5"},
		{0.25, 0.05, "0.25"},
		{1e-17, 0.1, "0.0"},
		{-1e-17, 1, "0"},
		{-1.5, 0.5, "-1.5"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatTick(tc.v, tc.interval), "FormatTick(%g, %g)", tc.v, tc.interval)
	}
}
