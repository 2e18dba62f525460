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

// Package canvas implements a fixed-size raster surface which paths can be
// painted onto, and its conversion to PNG.
//
// Pixels are stored as premultiplied ARGB, one uint32 per pixel with alpha
// in the top byte, followed by red, green and blue.  All painting uses
// source-over compositing with anti-aliased coverage.
package canvas

import (
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/makeacat/raster"
	"seehuhn.de/go/makeacat/shape"
)

// Default canvas size, in pixels.
const (
	Width  = 400
	Height = 256
)

// Canvas is a premultiplied ARGB pixel buffer together with the current
// transformation.  A new canvas is fully transparent.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	width, height int
	pix           []uint32
	ctm           matrix.Matrix
	ras           *raster.Rasterizer
}

// New allocates a transparent canvas of the given size.
func New(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		pix:    make([]uint32, width*height),
		ctm:    matrix.Identity,
		ras: raster.NewRasterizer(rect.Rect{
			URx: float64(width),
			URy: float64(height),
		}),
	}
}

// Width returns the width of the canvas in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the height of the canvas in pixels.
func (c *Canvas) Height() int { return c.height }

// Pixels returns the pixel buffer, in row-major order.
// The slice is shared with the canvas.
func (c *Canvas) Pixels() []uint32 { return c.pix }

// At returns the premultiplied ARGB value of pixel (x, y).
func (c *Canvas) At(x, y int) uint32 {
	return c.pix[y*c.width+x]
}

// SetTransform sets the user to device transformation for all following
// drawing calls.
func (c *Canvas) SetTransform(m matrix.Matrix) {
	c.ctm = m
}

// Transform returns the current transformation.
func (c *Canvas) Transform() matrix.Matrix {
	return c.ctm
}

// Draw paints p using the given style.
func (c *Canvas) Draw(p shape.Path, s Style) {
	s.paint(c, p)
}

// Fill paints the interior of p.
func (c *Canvas) Fill(p shape.Path, col color.NRGBA, rule raster.FillRule) {
	if p.IsEmpty() || col.A == 0 {
		return
	}
	c.ras.CTM = c.ctm
	c.ras.Fill(p.Data(), rule, c.compositor(col))
}

// Stroke paints the outline of p.
func (c *Canvas) Stroke(p shape.Path, col color.NRGBA, s StrokeStyle) {
	if p.IsEmpty() || col.A == 0 || s.Width <= 0 {
		return
	}
	c.ras.CTM = c.ctm
	c.ras.Width = s.Width
	c.ras.Cap = s.Cap
	c.ras.Join = s.Join
	c.ras.MiterLimit = s.MiterLimit
	c.ras.Stroke(p.Data(), c.compositor(col))
}

// compositor returns a coverage callback which blends col over the
// existing pixels.
func (c *Canvas) compositor(col color.NRGBA) raster.EmitFunc {
	a := uint32(col.A)
	r := mul255(uint32(col.R), a)
	g := mul255(uint32(col.G), a)
	b := mul255(uint32(col.B), a)

	return func(y, xMin int, coverage []float32) {
		row := c.pix[y*c.width+xMin:]
		for i, cov := range coverage {
			k := uint32(cov*255 + 0.5)
			if k == 0 {
				continue
			}
			sa := mul255(a, k)
			inv := 255 - sa

			d := row[i]
			row[i] = (sa+mul255(d>>24, inv))<<24 |
				(mul255(r, k)+mul255(d>>16&0xff, inv))<<16 |
				(mul255(g, k)+mul255(d>>8&0xff, inv))<<8 |
				(mul255(b, k) + mul255(d&0xff, inv))
		}
	}
}

// mul255 returns x·y/255, rounded to the nearest integer, for x, y ≤ 255.
func mul255(x, y uint32) uint32 {
	t := x*y + 128
	return (t + t>>8) >> 8
}
