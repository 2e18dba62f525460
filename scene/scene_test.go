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
	"image/color"
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/makeacat/canvas"
)

func seeded(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func inRange(x, lo, hi float64) bool {
	return x >= lo && x < hi
}

func checkColor(t *testing.T, name string, c color.NRGBA) {
	t.Helper()
	for _, v := range []uint8{c.R, c.G, c.B} {
		if v < ColorChannelMin {
			t.Errorf("%s: channel %d below %d", name, v, ColorChannelMin)
		}
	}
	if c.A != 255 {
		t.Errorf("%s: alpha %d", name, c.A)
	}
}

func TestDrawBounds(t *testing.T) {
	kinds := map[TailKind]int{}
	for seed := range uint64(2000) {
		p := Draw(seeded(seed), RotationTriangular)

		if !inRange(p.Pose.ScaleX, 1.08, 1.12) || !inRange(p.Pose.ScaleY, 1.08, 1.12) {
			t.Errorf("seed %d: scale %g %g", seed, p.Pose.ScaleX, p.Pose.ScaleY)
		}
		if !inRange(p.Pose.X, 125, 265) || !inRange(p.Pose.Y, 79, 169) {
			t.Errorf("seed %d: position (%g, %g)", seed, p.Pose.X, p.Pose.Y)
		}
		if !inRange(p.NeckHalf, NeckHalfMin, NeckHalfMax) {
			t.Errorf("seed %d: neck %g", seed, p.NeckHalf)
		}
		if !inRange(p.BodyRX, BodyRXMin, BodyRXMax) || !inRange(p.BodyRY, BodyRYMin, BodyRYMax) {
			t.Errorf("seed %d: body %g×%g", seed, p.BodyRX, p.BodyRY)
		}
		for i, leg := range p.Legs {
			if !inRange(leg.RX, LegRXMin, LegRXMax) || !inRange(leg.RY, LegRYMin, LegRYMax) {
				t.Errorf("seed %d: leg %d is %g×%g", seed, i, leg.RX, leg.RY)
			}
			checkColor(t, "leg", leg.Color)
		}

		h := p.Head
		if !inRange(h.EarApex.X, EarApexX-EarJitter, EarApexX+EarJitter) ||
			!inRange(h.EarApex.Y, EarApexY-EarJitter, EarApexY+EarJitter) {
			t.Errorf("seed %d: ear apex %v", seed, h.EarApex)
		}
		if !inRange(h.EyeRadius, EyeRadiusMin, EyeRadiusMax) {
			t.Errorf("seed %d: eye radius %g", seed, h.EyeRadius)
		}
		if !inRange(h.NoseBottom.Y, NoseBottomY+NoseJitterMin, NoseBottomY+NoseJitterMax) {
			t.Errorf("seed %d: nose bottom %v", seed, h.NoseBottom)
		}

		checkColor(t, "neck", p.NeckColor)
		checkColor(t, "body", p.BodyColor)
		checkColor(t, "ears", h.EarColor)
		checkColor(t, "head", h.HeadColor)

		tail := p.Tail
		kinds[tail.Kind]++
		if tail.Sign != 1 && tail.Sign != -1 {
			t.Errorf("seed %d: tail sign %g", seed, tail.Sign)
		}
		switch tail.Kind {
		case TailStraight:
			dx := tail.End.X - TailStartX
			if !inRange(dx, 40*tail.Scale, 70*tail.Scale) {
				t.Errorf("seed %d: straight tail length %g", seed, dx)
			}
			if tail.Extreme != (tail.Scale == TailExtremeScale) {
				t.Errorf("seed %d: extreme=%t with scale %g", seed, tail.Extreme, tail.Scale)
			}
		case TailCubic:
			if !inRange(tail.Scale, 2.5, 3.5) {
				t.Errorf("seed %d: cubic tail scale %g", seed, tail.Scale)
			}
			if tail.Sign*tail.End.Y < 5*tail.Scale-1e-9 {
				t.Errorf("seed %d: cubic tail curls the wrong way: %v", seed, tail.End)
			}
		case TailQuadratic:
			if !inRange(tail.Scale, 3, 4) {
				t.Errorf("seed %d: quadratic tail scale %g", seed, tail.Scale)
			}
		}
	}

	// 1/20 straight, the rest split evenly
	if n := kinds[TailStraight]; n < 50 || n > 160 {
		t.Errorf("%d straight tails in 2000 cats", n)
	}
	if kinds[TailCubic] < 700 || kinds[TailQuadratic] < 700 {
		t.Errorf("unbalanced tails: %v", kinds)
	}
}

func TestRotationRange(t *testing.T) {
	var nearUpright, total int
	for seed := range uint64(2000) {
		a := Draw(seeded(seed), RotationTriangular).Pose.Angle
		if !inRange(a, -180, 180) {
			t.Fatalf("seed %d: triangular angle %g", seed, a)
		}
		if math.Abs(a) < 90 {
			nearUpright++
		}
		total++

		u := Draw(seeded(seed), RotationUniform).Pose.Angle
		if !inRange(u, 0, 360) {
			t.Fatalf("seed %d: uniform angle %g", seed, u)
		}
	}
	// the triangular distribution puts 3/4 of its mass into (-90, 90)
	if frac := float64(nearUpright) / float64(total); frac < 0.7 || frac > 0.8 {
		t.Errorf("fraction of upright cats %.3f", frac)
	}
}

func TestParseRotation(t *testing.T) {
	for _, v := range []RotationVariant{RotationTriangular, RotationUniform} {
		got, err := ParseRotation(v.String())
		if err != nil || got != v {
			t.Errorf("%s: got %v, %v", v, got, err)
		}
	}
	if _, err := ParseRotation("sideways"); err == nil {
		t.Error("no error for unknown variant")
	}
}

func TestDeterminism(t *testing.T) {
	for seed := range uint64(20) {
		a := Draw(seeded(seed), RotationTriangular)
		b := Draw(seeded(seed), RotationTriangular)
		if a != b {
			t.Fatalf("seed %d: different parameters for the same numbers", seed)
		}

		c1 := canvas.New(canvas.Width, canvas.Height)
		c2 := canvas.New(canvas.Width, canvas.Height)
		Paint(c1, Compose(a))
		Paint(c2, Compose(b))
		if !slices.Equal(c1.Pixels(), c2.Pixels()) {
			t.Fatalf("seed %d: different pixels for the same parameters", seed)
		}
	}
}

func TestComposeOrder(t *testing.T) {
	ops := Compose(Draw(seeded(1), RotationTriangular))

	var got []Part
	for _, op := range ops {
		got = append(got, op.Part)
	}
	want := []Part{
		PartTail,
		PartNeck, PartNeck,
		PartLeg, PartLeg, PartLeg, PartLeg, PartLeg, PartLeg, PartLeg, PartLeg,
		PartBody, PartBody,
		PartEars, PartEars,
		PartHead, PartHead,
		PartEyes,
		PartNose,
	}
	if !slices.Equal(got, want) {
		t.Fatalf("got order %v", got)
	}

	// outlines come before fills, eyes and nose have no outline
	var kinds []byte
	for _, op := range ops {
		switch s := op.Style.(type) {
		case canvas.Stroke:
			kinds = append(kinds, 's')
		case canvas.Fill:
			kinds = append(kinds, 'f')
			if (op.Part == PartEyes || op.Part == PartNose) && s.Color != canvas.Black {
				t.Errorf("%s: color %v", op.Part, s.Color)
			}
		}
	}
	if got, want := string(kinds), "s"+"sf"+"sfsfsfsf"+"sf"+"sf"+"sf"+"f"+"f"; got != want {
		t.Errorf("got styles %q, want %q", got, want)
	}
	if s := ops[0].Style.(canvas.Stroke); s.Width != canvas.TailWidth {
		t.Errorf("tail width %g", s.Width)
	}
}

func apply(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	x, y := m.Apply(v.X, v.Y)
	return vec.Vec2{X: x, Y: y}
}

// place rotates v by deg degrees and then moves it to (x, y).
func place(x, y, deg float64, v vec.Vec2) vec.Vec2 {
	s, c := math.Sincos(deg * math.Pi / 180)
	return vec.Vec2{X: c*v.X - s*v.Y + x, Y: s*v.X + c*v.Y + y}
}

func TestThen(t *testing.T) {
	local := matrix.RotateDeg(30).Translate(3, -2)
	parent := matrix.Scale(2, 0.5).RotateDeg(-70).Translate(100, 50)
	m := Then(local, parent)

	for _, v := range []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: -4, Y: 7}} {
		want := apply(parent, apply(local, v))
		got := apply(m, v)
		if got.Sub(want).Length() > 1e-9 {
			t.Errorf("%v: got %v, want %v", v, got, want)
		}
	}

	// local rotation is about the part's own origin
	got := apply(Then(matrix.RotateDeg(90).Translate(5, 0), matrix.Identity), vec.Vec2{X: 1, Y: 0})
	if want := (vec.Vec2{X: 5, Y: 1}); got.Sub(want).Length() > 1e-9 {
		t.Errorf("rotate then move: got %v, want %v", got, want)
	}
}

// TestComposeTransforms maps points away from the part origin through every
// painting step, so that both the position and the rotation of each part
// are checked.
func TestComposeTransforms(t *testing.T) {
	for _, seed := range []uint64{7, 8, 9} {
		p := Draw(seeded(seed), RotationUniform)
		pose := p.Pose.Matrix()
		ops := Compose(p)

		legs := [4][3]float64{
			{-45, 21, 20},
			{-25, 26, 5},
			{25, 26, -5},
			{45, 21, -20},
		}
		var legOps int
		for _, op := range ops {
			var x, y, deg float64
			switch op.Part {
			case PartTail, PartBody:
				// drawn directly in body coordinates
			case PartNeck:
				x, y, deg = -45, -19, -30
			case PartLeg:
				l := legs[legOps/2] // outline and fill
				x, y, deg = l[0], l[1], l[2]
				legOps++
			default:
				x, y = -59, -44
			}

			for _, v := range []vec.Vec2{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 7, Y: -3}} {
				got := apply(op.Transform, v)
				want := apply(pose, place(x, y, deg, v))
				if got.Sub(want).Length() > 1e-9 {
					t.Errorf("seed %d, %s: %v maps to %v, want %v",
						seed, op.Part, v, got, want)
				}
			}
		}
		if legOps != 8 {
			t.Errorf("seed %d: %d leg steps", seed, legOps)
		}
	}
}

// TestHeadOnTop checks that the head is painted over an oversized body.
func TestHeadOnTop(t *testing.T) {
	p := Draw(seeded(3), RotationTriangular)
	p.Pose = Pose{ScaleX: 1.1, ScaleY: 1.1, Angle: 0, X: PoseAnchorX, Y: PoseAnchorY}
	p.BodyRX = 150
	p.BodyRY = 110

	c := canvas.New(canvas.Width, canvas.Height)
	Paint(c, Compose(p))

	if c.Transform() != matrix.Identity {
		t.Error("transform not restored after painting")
	}

	// a point on the forehead, between the eyes and the ears
	q := apply(p.Pose.Matrix(), vec.Vec2{X: HeadX, Y: HeadY - 15})
	hc := p.Head.HeadColor
	want := 0xff000000 | uint32(hc.R)<<16 | uint32(hc.G)<<8 | uint32(hc.B)
	if got := c.At(int(q.X), int(q.Y)); got != want {
		t.Errorf("forehead pixel %08x, want %08x", got, want)
	}

	// the body is visible well away from the head
	q = apply(p.Pose.Matrix(), vec.Vec2{X: 60, Y: 60})
	bc := p.BodyColor
	want = 0xff000000 | uint32(bc.R)<<16 | uint32(bc.G)<<8 | uint32(bc.B)
	if got := c.At(int(q.X), int(q.Y)); got != want {
		t.Errorf("body pixel %08x, want %08x", got, want)
	}
}

func BenchmarkCat(b *testing.B) {
	c := canvas.New(canvas.Width, canvas.Height)
	src := seeded(0)
	for b.Loop() {
		Paint(c, Compose(Draw(src, RotationTriangular)))
	}
}
