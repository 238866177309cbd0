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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/chart/paint"
)

// Sizes of the axis furniture, in pixels.
const (
	arrowLength  = 10
	arrowHalf    = 5
	tickLength   = 5
	labelGap     = 4
	axisWidth    = 1.5
	gridWidth    = 1
	autoPadding  = 0.1
	defaultRange = 1
)

// Axis is a plot area showing a list of series.
//
// The data range along each direction is either set explicitly, or
// recomputed from the series every time the axis is rendered.
type Axis struct {
	vp       Viewport
	strategy ScaleStrategy
	theme    Theme
	text     TextDrawer

	drawables []Drawable
	cursor    int

	xSet, ySet   *Limit
	xAuto, yAuto Limit

	layout   Layout
	layoutOK bool
}

// AxisOption configures an [Axis].
type AxisOption func(*Axis)

// WithTheme sets the colours of the axis.
func WithTheme(t Theme) AxisOption {
	return func(a *Axis) { a.theme = t }
}

// WithStrategy sets the scale strategy.
func WithStrategy(s ScaleStrategy) AxisOption {
	return func(a *Axis) { a.strategy = s }
}

// WithText sets the text drawer used for tick labels.  Without one, no
// labels are drawn.
func WithText(t TextDrawer) AxisOption {
	return func(a *Axis) { a.text = t }
}

// WithXLimit fixes the x range.
func WithXLimit(lo, hi float64) AxisOption {
	return func(a *Axis) { a.SetXLimit(lo, hi) }
}

// WithYLimit fixes the y range.
func WithYLimit(lo, hi float64) AxisOption {
	return func(a *Axis) { a.SetYLimit(lo, hi) }
}

// NewAxis returns an axis occupying the rectangle with top-left corner
// (x, y) and size w×h on the page.
func NewAxis(x, y, w, h float64, opts ...AxisOption) *Axis {
	a := &Axis{
		vp:    Viewport{X: x, Y: y, W: w, H: h},
		theme: DefaultTheme(),
		xAuto: Limit{0, defaultRange},
		yAuto: Limit{0, defaultRange},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// SetXLimit fixes the x range.  Automatic ranging no longer changes it.
func (a *Axis) SetXLimit(lo, hi float64) { a.xSet = &Limit{lo, hi} }

// SetYLimit fixes the y range.  Automatic ranging no longer changes it.
func (a *Axis) SetYLimit(lo, hi float64) { a.ySet = &Limit{lo, hi} }

// ClearXLimit returns the x range to automatic ranging.
func (a *Axis) ClearXLimit() { a.xSet = nil }

// ClearYLimit returns the y range to automatic ranging.
func (a *Axis) ClearYLimit() { a.ySet = nil }

// XLimit returns the x range used for the most recent rendering, or the
// explicit range if one is set.
func (a *Axis) XLimit() Limit {
	if a.xSet != nil {
		return *a.xSet
	}
	return a.xAuto
}

// YLimit returns the y range used for the most recent rendering, or the
// explicit range if one is set.
func (a *Axis) YLimit() Limit {
	if a.ySet != nil {
		return *a.ySet
	}
	return a.yAuto
}

// SetStrategy changes the scale strategy.
func (a *Axis) SetStrategy(s ScaleStrategy) { a.strategy = s }

// Strategy returns the current scale strategy.
func (a *Axis) Strategy() ScaleStrategy { return a.strategy }

// SetViewport moves the axis to a new rectangle on the page.
func (a *Axis) SetViewport(x, y, w, h float64) {
	a.vp = Viewport{X: x, Y: y, W: w, H: h}
}

// Viewport returns the rectangle occupied by the axis.
func (a *Axis) Viewport() Viewport { return a.vp }

// SetTheme changes the colours.  Colours already given to series are
// kept.
func (a *Axis) SetTheme(t Theme) { a.theme = t }

// SetText changes the text drawer used for tick labels.
func (a *Axis) SetText(t TextDrawer) { a.text = t }

// Add appends a series.  Series are drawn in the order they are added.
// The axis keeps d, so later changes to the data are shown the next time
// the axis is rendered.
func (a *Axis) Add(d Drawable) {
	a.drawables = append(a.drawables, d)
}

// Drawables returns the series of the axis.
func (a *Axis) Drawables() []Drawable {
	return a.drawables
}

// Layout returns the placement computed by the most recent rendering.  The
// second return value is false if the axis has not been rendered, or if
// the last rendering was skipped.
func (a *Axis) Layout() (Layout, bool) {
	return a.layout, a.layoutOK
}

// autoRange recomputes the ranges which are not set explicitly.
func (a *Axis) autoRange() {
	if a.xSet != nil && a.ySet != nil {
		return
	}
	b, ok := Aggregate(a.drawables)
	if !ok {
		a.xAuto = Limit{0, defaultRange}
		a.yAuto = Limit{0, defaultRange}
		return
	}
	if a.xSet == nil {
		a.xAuto = padRange(b.XMin, b.XMax)
	}
	if a.ySet == nil {
		a.yAuto = padRange(b.YMin, b.YMax)
	}
}

// padRange extends the maximum by a tenth of the range, so that the
// largest value does not touch the edge of the plot.  An empty range is
// widened to unit length around the value.
func padRange(lo, hi float64) Limit {
	r := hi - lo
	if !(r > 0) {
		return Limit{lo - defaultRange/2.0, lo + defaultRange/2.0}
	}
	return Limit{lo, hi + autoPadding*r}
}

// Render draws the axis and its series.
//
// Gridlines, axis lines, tick marks and labels are drawn first, the
// series are drawn on top in the order they were added.  Series without
// a colour are given the next colour from the palette.  If the x or y
// range is empty, nothing is drawn.
func (a *Axis) Render(s paint.Sink) {
	a.autoRange()
	x, y := a.XLimit(), a.YLimit()
	l, ok := plotLayout(a.vp, x, y, a.strategy)
	a.layout, a.layoutOK = l, ok
	if !ok {
		logger.Debug("skipping axis", "x", x, "y", y, "viewport", a.vp)
		return
	}

	a.drawFurniture(s, l, x, y)

	for _, d := range a.drawables {
		if th, ok := d.(themed); ok {
			th.setThemePalette(a.theme.Palette)
		}
		if d.Color() == unset {
			d.SetColor(a.theme.Palette.At(a.cursor))
			a.cursor++
		}
		d.Draw(s, l.Data)
	}
}

// drawFurniture draws gridlines, axis lines, ticks and labels.  Paths are
// built in plot-local pixels and placed with the UI transform.
func (a *Axis) drawFurniture(s paint.Sink, l Layout, x, y Limit) {
	local := l.Local
	ctm := l.UI.Matrix()

	xi, _ := PlanTicks(math.Abs(x.Range()))
	yi, _ := PlanTicks(math.Abs(y.Range()))
	xTicks := TickValues(math.Min(x.Min, x.Max), math.Max(x.Min, x.Max), xi)
	yTicks := TickValues(math.Min(y.Min, y.Max), math.Max(y.Min, y.Max), yi)

	left, top := local.ApplyXY(x.Min, y.Max)
	right, bottom := local.ApplyXY(x.Max, y.Min)

	grid := &path.Data{}
	for _, v := range xTicks {
		px, _ := local.ApplyXY(v, 0)
		grid.MoveTo(vec.Vec2{X: px, Y: top}).LineTo(vec.Vec2{X: px, Y: bottom})
	}
	for _, v := range yTicks {
		_, py := local.ApplyXY(0, v)
		grid.MoveTo(vec.Vec2{X: left, Y: py}).LineTo(vec.Vec2{X: right, Y: py})
	}
	if len(grid.Cmds) > 0 {
		s.Stroke(grid, ctm, a.theme.Grid, solid(gridWidth))
	}

	axes := &path.Data{}
	if y.Contains(0) {
		from := local.Apply(vec.Vec2{X: x.Min})
		to := local.Apply(vec.Vec2{X: x.Max})
		addArrow(axes, from, to)
	}
	if x.Contains(0) {
		from := local.Apply(vec.Vec2{Y: y.Min})
		to := local.Apply(vec.Vec2{Y: y.Max})
		addArrow(axes, from, to)
	}

	// tick marks point into the plot from the bottom and left edges
	for _, v := range xTicks {
		px, _ := local.ApplyXY(v, 0)
		axes.MoveTo(vec.Vec2{X: px, Y: bottom}).LineTo(vec.Vec2{X: px, Y: bottom - tickLength})
	}
	for _, v := range yTicks {
		_, py := local.ApplyXY(0, v)
		axes.MoveTo(vec.Vec2{X: left, Y: py}).LineTo(vec.Vec2{X: left + tickLength, Y: py})
	}
	if len(axes.Cmds) > 0 {
		s.Stroke(axes, ctm, a.theme.Foreground, solid(axisWidth))
	}

	if a.text == nil {
		return
	}
	size := a.theme.LabelSize
	for _, v := range xTicks {
		label := FormatTick(v, xi)
		px, _ := l.UI.ApplyXY(local.ApplyXY(v, 0))
		_, py := l.UI.ApplyXY(0, bottom)
		a.text.DrawText(s, label, px-a.measure(label, size)/2, py+labelGap, size, a.theme.Foreground)
	}
	for _, v := range yTicks {
		label := FormatTick(v, yi)
		_, ly := local.ApplyXY(0, v)
		px, py := l.UI.ApplyXY(left, ly)
		a.text.DrawText(s, label, px-labelGap-a.measure(label, size), py-size/2, size, a.theme.Foreground)
	}
}

// measure returns the width of a label.  If the text drawer cannot
// measure strings, the width is estimated.
func (a *Axis) measure(label string, size float64) float64 {
	if m, ok := a.text.(textMeasurer); ok {
		return m.Measure(label, size)
	}
	return 0.6 * size * float64(len(label))
}

// addArrow adds a line from a to b with an arrow head at b.
func addArrow(p *path.Data, a, b vec.Vec2) {
	p.MoveTo(a).LineTo(b)
	d := b.Sub(a)
	l := d.Length()
	if l == 0 {
		return
	}
	d = d.Mul(1 / l)
	n := vec.Vec2{X: -d.Y, Y: d.X}
	back := b.Sub(d.Mul(arrowLength))
	p.MoveTo(b).LineTo(back.Add(n.Mul(arrowHalf)))
	p.MoveTo(b).LineTo(back.Sub(n.Mul(arrowHalf)))
}
