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

package canvas

import (
	"fmt"
	"image/color"
	"sync"

	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/makeacat/raster"
	"seehuhn.de/go/makeacat/shape"
)

// Style describes how a path is painted.
// It is implemented by [Fill] and [Stroke].
type Style interface {
	paint(c *Canvas, p shape.Path)
	fmt.Stringer
}

// Fill paints the interior of a path in a solid color.
type Fill struct {
	Color color.NRGBA
	Rule  raster.FillRule
}

func (f Fill) paint(c *Canvas, p shape.Path) {
	c.Fill(p, f.Color, f.Rule)
}

func (f Fill) String() string {
	return fmt.Sprintf("fill %v (%s)", f.Color, f.Rule)
}

// StrokeStyle holds the geometric stroke parameters.
type StrokeStyle struct {
	Width      float64
	Cap        graphics.LineCapStyle
	Join       graphics.LineJoinStyle
	MiterLimit float64
}

// Stroke paints the outline of a path in a solid color.
type Stroke struct {
	Color color.NRGBA
	StrokeStyle
}

func (s Stroke) paint(c *Canvas, p shape.Path) {
	c.Stroke(p, s.Color, s.StrokeStyle)
}

func (s Stroke) String() string {
	return fmt.Sprintf("stroke %v (width %g, cap %v, join %v)", s.Color, s.Width, s.Cap, s.Join)
}

// Black is the color of all outlines.
var Black = color.NRGBA{A: 255}

// DefaultStroke returns the outline style used for all parts of a drawing:
// black, 5 units wide, with round caps and miter joins limited to 2.
var DefaultStroke = sync.OnceValue(func() Stroke {
	return Stroke{
		Color: Black,
		StrokeStyle: StrokeStyle{
			Width:      5,
			Cap:        graphics.LineCapRound,
			Join:       graphics.LineJoinMiter,
			MiterLimit: 2,
		},
	}
})

// TailWidth is the stroke width of a tail.
const TailWidth = 7

// TailStroke returns [DefaultStroke] with the width changed to [TailWidth].
func TailStroke() Stroke {
	s := DefaultStroke()
	s.Width = TailWidth
	return s
}
