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

package main

import (
	"math"
	"slices"

	"seehuhn.de/go/chart"
)

// demo fills a new figure.
type demo struct {
	name  string
	title string
	rows  int
	cols  int
	build func(f *chart.Figure)
}

var demos = []demo{
	{"curve", "y = sin(x)", 1, 1, buildCurve},
	{"area", "Areas", 1, 1, buildArea},
	{"stair", "Steps", 1, 1, buildStair},
	{"histogram", "Histogram", 1, 1, buildHistogram},
	{"errorbar", "Error bars", 1, 1, buildErrorBar},
	{"bar-from-histogram", "Histogram with error bars", 1, 1, buildBarFromHistogram},
	{"scatter", "Scatter", 1, 1, buildScatter},
	{"two-axis", "", 1, 2, buildTwoAxis},
}

func demoNames() []string {
	var names []string
	for _, d := range demos {
		names = append(names, d.name)
	}
	return names
}

func findDemo(name string) (demo, bool) {
	i := slices.IndexFunc(demos, func(d demo) bool { return d.name == name })
	if i < 0 {
		return demo{}, false
	}
	return demos[i], true
}

func newSeries() chart.SeriesConfig {
	return chart.DefaultSeriesConfig()
}

func sine() ([]float64, []float64) {
	t := chart.Linspace(0, 2*math.Pi, 100)
	y := make([]float64, len(t))
	for i, v := range t {
		y[i] = math.Sin(v)
	}
	return t, y
}

func buildCurve(f *chart.Figure) {
	c := chart.NewCurve("sin", newSeries())
	c.AddData(sine())
	f.Nth(0).Add(c)
}

func buildArea(f *chart.Figure) {
	x := []float64{0, 1, 2, 3, 4, 5, 6}
	y := []float64{0, 1, 2, 3, 4, 5}

	step := chart.NewArea("step", newSeries())
	step.SetData(x, y)

	shifted := chart.NewArea("shifted", newSeries())
	y1 := make([]float64, len(y))
	for i, v := range y {
		y1[i] = v + 1
	}
	shifted.SetDataNorm(y1)

	line := chart.NewArea("line", newSeries())
	line.SetType(chart.AreaLine)
	line.SetData(x, []float64{1, 4, 3, 7, 2, 7, 5})

	ax := f.Nth(0)
	ax.Add(step)
	ax.Add(shifted)
	ax.Add(line)
	ax.SetStrategy(chart.Stretch)
}

func buildStair(f *chart.Figure) {
	ax := f.Nth(0)
	for i, style := range []chart.StairStyle{chart.StairTraceX, chart.StairTraceY, chart.StairMid} {
		s := chart.NewStair("steps", newSeries())
		s.SetStyle(style)
		s.SetData(
			[]float64{0, 1, 2, 3, 4},
			[]float64{0.2 + float64(i), 0.8 + float64(i), 0.4 + float64(i), 0.9 + float64(i), 0.3 + float64(i)},
		)
		ax.Add(s)
	}
	ax.SetStrategy(chart.Stretch)
}

var histValues = []float64{3, 5, 6, 2, 1, 2, 7, 1}

func doubled(v []float64) []float64 {
	res := make([]float64, len(v))
	for i, x := range v {
		res[i] = 2 * x
	}
	return res
}

func newHistogram() *chart.Histogram {
	h := chart.NewHistogram("counts", newSeries())
	h.SetX([]float64{0, 1, 2, 3, 4, 5, 6, 7, 8})
	h.AddSeries(histValues)
	h.SetDataPrototype(doubled(histValues), 0, 1)
	return h
}

func buildHistogram(f *chart.Figure) {
	ax := f.Nth(0)
	ax.Add(newHistogram())
	ax.SetStrategy(chart.Stretch)
}

func buildErrorBar(f *chart.Figure) {
	e := chart.NewErrorBar("groups", newSeries())
	e.AddSamples([]float64{4.8, 5.1, 4.9, 5.2, 5.0})
	e.AddSamples([]float64{6.8, 7.2, 6.5, 7.5, 7.0})
	e.AddSamples([]float64{5.5, 6.2, 5.8, 6.5, 6.0})
	e.AddStats(8.5, 7.5, 9.5)
	e.AddStats(9.0, 8.0, 10.0)
	e.AddStats(7.0, 6.8, 7.2)
	e.SetOrientation(chart.ErrorBarVertical)

	ax := f.Nth(0)
	ax.Add(e)
	ax.SetStrategy(chart.Stretch)
}

func buildBarFromHistogram(f *chart.Figure) {
	h := newHistogram()
	e := chart.NewErrorBar("spread", newSeries())
	e.FromHistogram(h)

	ax := f.Nth(0)
	ax.Add(h)
	ax.Add(e)
	ax.SetStrategy(chart.Stretch)
}

func buildScatter(f *chart.Figure) {
	n := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	y := []float64{4, 3, 1, 6, 4, 3, 2, 1, 2, 3}

	plain := chart.NewScatter("plain", newSeries())
	plain.SetData(n, y)

	sized := chart.NewScatter("sized", newSeries())
	y1 := make([]float64, len(y))
	for i, v := range y {
		y1[i] = v + 1
	}
	sized.SetData(n, y1)
	sized.SetRadius(3)
	sized.SetSizes(y)

	ax := f.Nth(0)
	ax.Add(plain)
	ax.Add(sized)
	ax.SetStrategy(chart.Stretch)
}

func buildTwoAxis(f *chart.Figure) {
	t, y := sine()
	c := chart.NewCurve("sin", newSeries())
	c.SetData(t, y)
	shifted := chart.NewCurve("x - π", newSeries())
	shifted.SetFn(t, func(v float64) float64 { return v - math.Pi })

	left := f.Nth(0)
	left.Add(c)
	left.Add(shifted)
	left.SetStrategy(chart.Stretch)

	stair := chart.NewStair("stair", newSeries())
	stair.SetData([]float64{0, 1, 2, 3, 4, 5, 6}, []float64{4, 3, 7, 6, 1, 4, 1})
	area := chart.NewArea("line", newSeries())
	area.SetType(chart.AreaLine)
	area.SetData([]float64{0, 1, 2, 3, 4, 5, 6}, []float64{0, 8, 4, 1, 7, 7, 3})

	right := f.Nth(1)
	right.Add(stair)
	right.Add(area)
}
