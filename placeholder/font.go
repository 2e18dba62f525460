// seehuhn.de/go/makeacat - procedurally drawn cats
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

package placeholder

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/makeacat/shape"
)

// Font returns the font used for all messages.  It is parsed on first use.
var Font = sync.OnceValues(func() (*sfnt.Font, error) {
	return opentype.Parse(goregular.TTF)
})

// Outline returns the glyph outlines of text, set in [Font] at the given
// size (in pixels per em).  The baseline starts at (x, y), and y grows
// downwards.  Runes which the font cannot show are left out.  If the font
// cannot be loaded, the path is empty.
func Outline(text string, size, x, y float64) shape.Path {
	b := shape.NewBuilder()
	f, err := Font()
	if err != nil {
		return b.Finish()
	}

	var buf sfnt.Buffer
	ppem := fixed.Int26_6(size * 64)
	layout(f, &buf, text, ppem, func(gid sfnt.GlyphIndex, dx float64) {
		pt := func(p fixed.Point26_6) (float64, float64) {
			return x + dx + float64(p.X)/64, y + float64(p.Y)/64
		}

		segments, err := f.LoadGlyph(&buf, gid, ppem, nil)
		if err != nil {
			return
		}
		for _, seg := range segments {
			switch seg.Op {
			case sfnt.SegmentOpMoveTo:
				b.Close()
				b.MoveTo(pt(seg.Args[0]))
			case sfnt.SegmentOpLineTo:
				b.LineTo(pt(seg.Args[0]))
			case sfnt.SegmentOpQuadTo:
				cx, cy := pt(seg.Args[0])
				ex, ey := pt(seg.Args[1])
				b.QuadTo(cx, cy, ex, ey)
			case sfnt.SegmentOpCubeTo:
				c1x, c1y := pt(seg.Args[0])
				c2x, c2y := pt(seg.Args[1])
				ex, ey := pt(seg.Args[2])
				b.CubicTo(c1x, c1y, c2x, c2y, ex, ey)
			}
		}
		b.Close()
	})
	return b.Finish()
}

// advance returns the width of text set in [Font] at the given size,
// including kerning.
func advance(text string, size float64) float64 {
	f, err := Font()
	if err != nil {
		return 0
	}
	var buf sfnt.Buffer
	return layout(f, &buf, text, fixed.Int26_6(size*64), nil)
}

// layout places the glyphs of text one after the other.  For every glyph,
// fn (if not nil) is called with the horizontal position of the glyph
// origin.  The return value is the total width.
//
// Runes without a glyph are skipped and do not take part in kerning.
func layout(f *sfnt.Font, buf *sfnt.Buffer, text string, ppem fixed.Int26_6, fn func(gid sfnt.GlyphIndex, x float64)) float64 {
	var x fixed.Int26_6
	var prev sfnt.GlyphIndex
	havePrev := false
	for _, r := range text {
		gid, err := f.GlyphIndex(buf, r)
		if err != nil || gid == 0 {
			continue
		}
		if havePrev {
			// fonts without kerning data return an error here
			if k, err := f.Kern(buf, prev, gid, ppem, font.HintingNone); err == nil {
				x += k
			}
		}
		prev, havePrev = gid, true

		if fn != nil {
			fn(gid, float64(x)/64)
		}
		if adv, err := f.GlyphAdvance(buf, gid, ppem, font.HintingNone); err == nil {
			x += adv
		}
	}
	return float64(x) / 64
}
