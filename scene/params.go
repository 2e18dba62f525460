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
	"seehuhn.de/go/geom/vec"
)

// RotationVariant selects the distribution of the overall rotation angle.
type RotationVariant int

const (
	// RotationTriangular adds two uniform angles, which favours upright
	// cats.  The angle is in [-180°, 180°).
	RotationTriangular RotationVariant = iota

	// RotationUniform draws the angle uniformly from [0°, 360°).
	RotationUniform
)

func (v RotationVariant) String() string {
	switch v {
	case RotationTriangular:
		return "triangular"
	case RotationUniform:
		return "uniform"
	default:
		return fmt.Sprintf("RotationVariant(%d)", int(v))
	}
}

// ParseRotation converts the output of [RotationVariant.String] back into a
// RotationVariant.
func ParseRotation(s string) (RotationVariant, error) {
	switch s {
	case "triangular":
		return RotationTriangular, nil
	case "uniform":
		return RotationUniform, nil
	}
	return 0, fmt.Errorf("unknown rotation variant %q", s)
}

// Pose is the placement of the whole cat on the canvas.
// The cat is scaled first, then rotated, then moved.
type Pose struct {
	ScaleX, ScaleY float64
	Angle          float64 // degrees
	X, Y           float64
}

// Matrix returns the transformation from body coordinates to the canvas.
func (p Pose) Matrix() matrix.Matrix {
	return matrix.Scale(p.ScaleX, p.ScaleY).RotateDeg(p.Angle).Translate(p.X, p.Y)
}

// TailKind is the shape of a tail.
type TailKind int

// These are the supported tail shapes.
const (
	TailStraight TailKind = iota
	TailCubic
	TailQuadratic
)

func (k TailKind) String() string {
	switch k {
	case TailStraight:
		return "straight"
	case TailCubic:
		return "cubic"
	case TailQuadratic:
		return "quadratic"
	default:
		return fmt.Sprintf("TailKind(%d)", int(k))
	}
}

// Tail describes the tail, in body coordinates.  It starts at
// (TailStartX, TailStartY).  Straight tails use only End, quadratic ones
// use Ctrl1 and End.
type Tail struct {
	Kind    TailKind
	Sign    float64 // +1 or -1, the side the tail curls to
	Scale   float64
	Extreme bool // a straight tail of five times the normal length
	Ctrl1   vec.Vec2
	Ctrl2   vec.Vec2
	End     vec.Vec2
}

// Leg is the shape and color of one leg.
type Leg struct {
	RX, RY float64
	Color  color.NRGBA
}

// Head holds the random parts of the head.  EarApex is the tip of the
// right ear; the left ear is its mirror image.
type Head struct {
	EarApex   vec.Vec2
	EyeRadius float64

	// the nose outline is determined by three points
	NoseSide   vec.Vec2 // right corner
	NoseTop    vec.Vec2 // control point for the upper edge
	NoseBottom vec.Vec2 // control point for the lower edge

	EarColor  color.NRGBA
	HeadColor color.NRGBA
}

// Params is everything random about one cat.
type Params struct {
	Pose Pose
	Tail Tail

	NeckHalf  float64
	NeckColor color.NRGBA

	Legs [4]Leg

	BodyRX, BodyRY float64
	BodyColor      color.NRGBA

	Head Head
}

// Draw takes all random choices for one cat from src.
// The result only depends on the numbers produced by src.
func Draw(src Source, rot RotationVariant) Params {
	var p Params
	p.Pose = drawPose(src, rot)
	p.Tail = drawTail(src)

	p.NeckHalf = Uniform(src, NeckHalfMin, NeckHalfMax)
	p.NeckColor = RandomColor(src)

	for i := range p.Legs {
		p.Legs[i] = Leg{
			RX:    Uniform(src, LegRXMin, LegRXMax),
			RY:    Uniform(src, LegRYMin, LegRYMax),
			Color: RandomColor(src),
		}
	}

	p.BodyRX = Uniform(src, BodyRXMin, BodyRXMax)
	p.BodyRY = Uniform(src, BodyRYMin, BodyRYMax)
	p.BodyColor = RandomColor(src)

	p.Head = drawHead(src)
	return p
}

func drawPose(src Source, rot RotationVariant) Pose {
	var pose Pose
	pose.ScaleX = Uniform(src, PoseScaleBase-PoseScaleJitter, PoseScaleBase+PoseScaleJitter)
	pose.ScaleY = Uniform(src, PoseScaleBase-PoseScaleJitter, PoseScaleBase+PoseScaleJitter)
	switch rot {
	case RotationUniform:
		pose.Angle = Uniform(src, 0, 360)
	default:
		pose.Angle = Uniform(src, 0, 180) + Uniform(src, 0, 180) - 180
	}
	pose.X = Uniform(src, PoseAnchorX-PoseJitterX, PoseAnchorX+PoseJitterX)
	pose.Y = Uniform(src, PoseAnchorY-PoseJitterY, PoseAnchorY+PoseJitterY)
	return pose
}

func drawTail(src Source) Tail {
	t := Tail{Sign: 1}
	if Coin(src) {
		t.Sign = -1
	}
	x, y := float64(TailStartX), float64(TailStartY)

	switch {
	case Chance(src, 1, TailStraightOdds):
		t.Kind = TailStraight
		t.Scale = 1
		if Chance(src, 1, TailExtremeOdds) {
			t.Extreme = true
			t.Scale = TailExtremeScale
		}
		t.End = vec.Vec2{
			X: x + t.Scale*Uniform(src, 40, 70),
			Y: y + t.Scale*Uniform(src, -30, 30),
		}

	case Coin(src):
		t.Kind = TailCubic
		k := Uniform(src, 2.5, 3.5)
		t.Scale = k
		t.Ctrl1 = vec.Vec2{
			X: x + k*Uniform(src, 12, 17),
			Y: y + k*t.Sign*Uniform(src, 0, 5),
		}
		t.Ctrl2 = vec.Vec2{
			X: x + k*Uniform(src, -5, 0),
			Y: y + k*t.Sign*Uniform(src, 10, 15),
		}
		t.End = vec.Vec2{
			X: x + k*Uniform(src, 15, 25),
			Y: y + k*t.Sign*Uniform(src, 5, 15),
		}

	default:
		t.Kind = TailQuadratic
		k := Uniform(src, 3, 4)
		t.Scale = k
		t.Ctrl1 = vec.Vec2{
			X: x + k*Uniform(src, 12, 17),
			Y: y + k*t.Sign*Uniform(src, 0, 5),
		}
		t.End = vec.Vec2{
			X: x + k*Uniform(src, 5, 20),
			Y: y + k*t.Sign*Uniform(src, 12, 17),
		}
	}
	return t
}

func drawHead(src Source) Head {
	var h Head
	h.EarApex = vec.Vec2{
		X: EarApexX + Uniform(src, -EarJitter, EarJitter),
		Y: EarApexY + Uniform(src, -EarJitter, EarJitter),
	}
	h.EyeRadius = Uniform(src, EyeRadiusMin, EyeRadiusMax)
	h.NoseSide = vec.Vec2{X: NoseSideX + Uniform(src, NoseJitterMin, NoseJitterMax), Y: NoseSideY}
	h.NoseTop = vec.Vec2{X: NoseTopX + Uniform(src, NoseJitterMin, NoseJitterMax), Y: NoseTopY}
	h.NoseBottom = vec.Vec2{X: NoseBottomX, Y: NoseBottomY + Uniform(src, NoseJitterMin, NoseJitterMax)}
	h.EarColor = RandomColor(src)
	h.HeadColor = RandomColor(src)
	return h
}

// Overall placement.
const (
	PoseScaleBase   = 1.1
	PoseScaleJitter = 0.02
	PoseAnchorX     = 195
	PoseAnchorY     = 124
	PoseJitterX     = 70
	PoseJitterY     = 45
)

// Tail shape.  The ranges for the individual control points are given in
// drawTail.
const (
	TailStartX = 60
	TailStartY = 0

	// TailStraightOdds: one tail in TailStraightOdds is straight.
	TailStraightOdds = 20

	// TailExtremeOdds: one straight tail in TailExtremeOdds is
	// TailExtremeScale times as long.
	TailExtremeOdds  = 10
	TailExtremeScale = 5
)

// Body parts, in body coordinates.
const (
	NeckHalfMin = 11
	NeckHalfMax = 16

	BodyRXMin = 55
	BodyRXMax = 66
	BodyRYMin = 25
	BodyRYMax = 30

	LegRXMin = 6
	LegRXMax = 8
	LegRYMin = 23
	LegRYMax = 28
)

// Head parts, relative to the center of the head.
const (
	HeadRX = 25
	HeadRY = 24

	EarInnerX = 6
	EarInnerY = -25
	EarOuterX = 21
	EarOuterY = -17
	EarApexX  = 21
	EarApexY  = -36
	EarJitter = 2

	EyeX         = 9
	EyeY         = -7
	EyeRadiusMin = 2.7
	EyeRadiusMax = 3.3

	NoseSideX     = 4
	NoseSideY     = 5
	NoseTopX      = 9
	NoseTopY      = -3
	NoseBottomX   = 1
	NoseBottomY   = 9
	NoseJitterMin = 0.5
	NoseJitterMax = 1.5
)

// Fill colors have all channels in this range.
const (
	ColorChannelMin = 100
	ColorChannelMax = 255
)
