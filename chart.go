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

// Package chart renders 2D charts.
//
// A [Figure] holds a grid of [Axis] values.  Each axis owns a list of
// [Drawable] series (curves, filled areas, histograms, scatter plots,
// stairs and error bars), works out the data range, maps data space to
// pixels and draws its furniture and series through a [paint.Sink].
//
// Series are added by pointer and may still be modified afterwards: every
// call to [Axis.Render] uses the current data.  Nothing in this package is
// safe for concurrent use.
package chart

import (
	"os"

	"github.com/charmbracelet/log"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "chart"})

// SetLogger replaces the logger used for diagnostics.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.NewWithOptions(os.Stderr, log.Options{Prefix: "chart"})
	}
	logger = l
}
