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

package scene

import (
	"fmt"
	"image/color"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/makeacat/canvas"
	"seehuhn.de/go/makeacat/raster"
	"seehuhn.de/go/makeacat/shape"
)

// Part names the body part an [Op] belongs to.
type Part int

// The body parts, in drawing order.
const (
	PartTail Part = iota
	PartNeck
	PartLeg
	PartBody
	PartEars
	PartHead
	PartEyes
	PartNose
)

var partNames = [...]string{"tail", "neck", "leg", "body", "ears", "head", "eyes", "nose"}

func (p Part) String() string {
	if p >= 0 && int(p) < len(partNames) {
		return partNames[p]
	}
	return fmt.Sprintf("Part(%d)", int(p))
}

// Op is a single painting step.
type Op struct {
	Part      Part
	Path      shape.Path
	Transform matrix.Matrix // body part coordinates to canvas
	Style     canvas.Style
}

// Then returns the transformation which applies local first and then
// parent.
func Then(local, parent matrix.Matrix) matrix.Matrix {
	return local.Mul(parent)
}

// Placement of the parts relative to the body center.
const (
	NeckX     = -45
	NeckY     = -19
	NeckAngle = -30

	HeadX = -59
	HeadY = -44
)

// legPlacement gives position and rotation (in degrees) of the legs, from
// front to back.
var legPlacement = [4]struct{ X, Y, Angle float64 }{
	{-45, 21, 20},
	{-25, 26, 5},
	{25, 26, -5},
	{45, 21, -20},
}

// Compose turns the random parameters into the list of painting steps.
//
// Later steps paint over earlier ones: tail, neck, the four legs, body,
// and finally the head with ears, eyes and nose.  Every step carries its
// complete transformation, so that no state leaks from one part to the
// next.
func Compose(p Params) []Op {
	pose := p.Pose.Matrix()
	outline := canvas.DefaultStroke()
	black := canvas.Fill{Color: canvas.Black, Rule: raster.NonZero}

	ops := make([]Op, 0, 20)
	add := func(part Part, path shape.Path, m matrix.Matrix, styles ...canvas.Style) {
		for _, s := range styles {
			ops = append(ops, Op{Part: part, Path: path, Transform: m, Style: s})
		}
	}
	fill := func(c color.NRGBA) canvas.Fill {
		return canvas.Fill{Color: c, Rule: raster.NonZero}
	}

	add(PartTail, tailPath(p.Tail), pose, canvas.TailStroke())

	b := shape.NewBuilder()
	b.Rect(-p.NeckHalf, -p.NeckHalf, 2*p.NeckHalf, 2*p.NeckHalf)
	b.Close()
	neck := Then(matrix.RotateDeg(NeckAngle).Translate(NeckX, NeckY), pose)
	add(PartNeck, b.Finish(), neck, outline, fill(p.NeckColor))

	for i, leg := range p.Legs {
		pl := legPlacement[i]
		b := shape.NewBuilder()
		b.Ellipse(0, 0, leg.RX, leg.RY)
		m := Then(matrix.RotateDeg(pl.Angle).Translate(pl.X, pl.Y), pose)
		add(PartLeg, b.Finish(), m, outline, fill(leg.Color))
	}

	b = shape.NewBuilder()
	b.Ellipse(0, 0, p.BodyRX, p.BodyRY)
	b.Close()
	add(PartBody, b.Finish(), pose, outline, fill(p.BodyColor))

	head := Then(matrix.Identity.Translate(HeadX, HeadY), pose)
	h := p.Head

	b = shape.NewBuilder()
	for _, s := range []float64{1, -1} {
		b.MoveTo(s*EarInnerX, EarInnerY)
		b.LineTo(s*h.EarApex.X, h.EarApex.Y)
		b.LineTo(s*EarOuterX, EarOuterY)
		b.Close()
	}
	add(PartEars, b.Finish(), head, outline, fill(h.EarColor))

	b = shape.NewBuilder()
	b.Ellipse(0, 0, HeadRX, HeadRY)
	b.Close()
	add(PartHead, b.Finish(), head, outline, fill(h.HeadColor))

	b = shape.NewBuilder()
	b.Ellipse(EyeX, EyeY, h.EyeRadius, h.EyeRadius)
	b.Ellipse(-EyeX, EyeY, h.EyeRadius, h.EyeRadius)
	b.Close()
	add(PartEyes, b.Finish(), head, black)

	add(PartNose, nosePath(h), head, black)

	return ops
}

func tailPath(t Tail) shape.Path {
	b := shape.NewBuilder()
	b.MoveTo(TailStartX, TailStartY)
	switch t.Kind {
	case TailStraight:
		b.LineTo(t.End.X, t.End.Y)
	case TailCubic:
		b.CubicTo(t.Ctrl1.X, t.Ctrl1.Y, t.Ctrl2.X, t.Ctrl2.Y, t.End.X, t.End.Y)
	default:
		b.QuadTo(t.Ctrl1.X, t.Ctrl1.Y, t.End.X, t.End.Y)
	}
	return b.Finish()
}

// nosePath is a rounded triangle, pointing down, made from two cubic
// curves.
func nosePath(h Head) shape.Path {
	s, c, d := h.NoseSide, h.NoseTop, h.NoseBottom
	b := shape.NewBuilder()
	b.MoveTo(-s.X, s.Y)
	b.CubicTo(-c.X, c.Y, c.X, c.Y, s.X, s.Y)
	b.CubicTo(d.X, d.Y, -d.X, d.Y, -s.X, s.Y)
	b.Close()
	return b.Finish()
}

// Paint performs the painting steps in order.  Afterwards the canvas
// transformation is reset to the identity.
func Paint(c *canvas.Canvas, ops []Op) {
	for _, op := range ops {
		c.SetTransform(op.Transform)
		c.Draw(op.Path, op.Style)
	}
	c.SetTransform(matrix.Identity)
}
