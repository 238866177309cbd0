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

// Package text draws strings through a [paint.Sink].
//
// Glyphs are converted to filled outlines, so that text looks the same on
// every sink.  The Go fonts are built in; further TrueType or OpenType
// fonts can be added with [Renderer.Register].
package text

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/charmbracelet/log"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/chart/paint"
)

// DefaultFamily is used whenever a requested family is not available.
const DefaultFamily = "Go"

var logger = log.WithPrefix("text")

// Renderer draws text using one selected font family.
//
// A Renderer is not safe for concurrent use.
type Renderer struct {
	fonts  map[string]*sfnt.Font
	family string
	font   *sfnt.Font
	buf    sfnt.Buffer
	path   path.Data
}

// New returns a Renderer with the built-in families "Go", "Go Mono" and
// "Go Bold".  The default family is selected.
func New() *Renderer {
	r := &Renderer{fonts: make(map[string]*sfnt.Font)}
	builtin := []struct {
		name string
		ttf  []byte
	}{
		{DefaultFamily, goregular.TTF},
		{"Go Mono", gomono.TTF},
		{"Go Bold", gobold.TTF},
	}
	for _, b := range builtin {
		if err := r.Register(b.name, b.ttf); err != nil {
			panic(err) // the embedded fonts are known to be valid
		}
	}
	r.SetFamily(DefaultFamily)
	return r
}

// Register parses a TrueType or OpenType font and makes it available
// under the given family name.
func (r *Renderer) Register(family string, data []byte) error {
	f, err := sfnt.Parse(data)
	if err != nil {
		return fmt.Errorf("parsing font %q: %w", family, err)
	}
	r.fonts[family] = f
	return nil
}

// HasFamily reports whether a font is registered under the given name.
func (r *Renderer) HasFamily(family string) bool {
	_, ok := r.fonts[family]
	return ok
}

// Families returns the names of all registered families, in sorted order.
func (r *Renderer) Families() []string {
	res := make([]string, 0, len(r.fonts))
	for name := range r.fonts {
		res = append(res, name)
	}
	sort.Strings(res)
	return res
}

// SetFamily selects the font family used for drawing.  Unknown families
// select the default family instead.  The return value is the name of the
// family actually in use.
func (r *Renderer) SetFamily(family string) string {
	f, ok := r.fonts[family]
	if !ok {
		logger.Debug("unknown font family, using fallback",
			"family", family, "fallback", DefaultFamily)
		family = DefaultFamily
		f = r.fonts[DefaultFamily]
	}
	r.family = family
	r.font = f
	return family
}

// Family returns the name of the selected font family.
func (r *Renderer) Family() string {
	return r.family
}

// Ascent returns the distance from the top of the text box to the
// baseline, for the given font size in pixels.
func (r *Renderer) Ascent(size float64) float64 {
	m, err := r.font.Metrics(&r.buf, toFixed(size), font.HintingNone)
	if err != nil {
		return 0.8 * size
	}
	return fromFixed(m.Ascent)
}

// Measure returns the advance width of str in pixels.
func (r *Renderer) Measure(str string, size float64) float64 {
	ppem := toFixed(size)
	var width fixed.Int26_6
	prev := sfnt.GlyphIndex(0)
	for i, c := range []rune(str) {
		gid, err := r.font.GlyphIndex(&r.buf, c)
		if err != nil {
			continue
		}
		if i > 0 {
			if k, err := r.font.Kern(&r.buf, prev, gid, ppem, font.HintingNone); err == nil {
				width += k
			}
		}
		adv, err := r.font.GlyphAdvance(&r.buf, gid, ppem, font.HintingNone)
		if err == nil {
			width += adv
		}
		prev = gid
	}
	return fromFixed(width)
}

// DrawText draws str with the top-left corner of its text box at (x, y).
// The baseline lies one ascent below y.
func (r *Renderer) DrawText(s paint.Sink, str string, x, y, size float64, c color.NRGBA) {
	if str == "" || size <= 0 || c.A == 0 {
		return
	}
	ppem := toFixed(size)
	baseline := y + r.Ascent(size)

	p := &r.path
	p.Cmds = p.Cmds[:0]
	p.Coords = p.Coords[:0]

	cursor := x
	prev := sfnt.GlyphIndex(0)
	for i, ch := range []rune(str) {
		gid, err := r.font.GlyphIndex(&r.buf, ch)
		if err != nil {
			continue
		}
		if i > 0 {
			if k, err := r.font.Kern(&r.buf, prev, gid, ppem, font.HintingNone); err == nil {
				cursor += fromFixed(k)
			}
		}
		prev = gid

		segs, err := r.font.LoadGlyph(&r.buf, gid, ppem, nil)
		if err == nil {
			appendGlyph(p, segs, cursor, baseline)
		}
		if adv, err := r.font.GlyphAdvance(&r.buf, gid, ppem, font.HintingNone); err == nil {
			cursor += fromFixed(adv)
		}
	}
	if len(p.Cmds) > 0 {
		s.Fill(p, matrix.Identity, c, paint.NonZero)
	}
}

// appendGlyph adds the outline of one glyph to p.  The segments use a
// coordinate system with y pointing down, like the sink.
func appendGlyph(p *path.Data, segs sfnt.Segments, x, y float64) {
	pt := func(q fixed.Point26_6) vec.Vec2 {
		return vec.Vec2{X: x + fromFixed(q.X), Y: y + fromFixed(q.Y)}
	}
	open := false
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				p.Cmds = append(p.Cmds, path.CmdClose)
			}
			p.Cmds = append(p.Cmds, path.CmdMoveTo)
			p.Coords = append(p.Coords, pt(seg.Args[0]))
			open = true
		case sfnt.SegmentOpLineTo:
			p.Cmds = append(p.Cmds, path.CmdLineTo)
			p.Coords = append(p.Coords, pt(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			p.Cmds = append(p.Cmds, path.CmdQuadTo)
			p.Coords = append(p.Coords, pt(seg.Args[0]), pt(seg.Args[1]))
		case sfnt.SegmentOpCubeTo:
			p.Cmds = append(p.Cmds, path.CmdCubeTo)
			p.Coords = append(p.Coords, pt(seg.Args[0]), pt(seg.Args[1]), pt(seg.Args[2]))
		}
	}
	if open {
		p.Cmds = append(p.Cmds, path.CmdClose)
	}
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v*64 + 0.5)
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
