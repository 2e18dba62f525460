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

package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// strokeSegment is a flattened piece of a path in user space.
type strokeSegment struct {
	A, B vec.Vec2 // end points
	T    vec.Vec2 // unit tangent, from A to B
	N    vec.Vec2 // unit normal, T turned by +90°
}

func (s strokeSegment) reversed() strokeSegment {
	return strokeSegment{A: s.B, B: s.A, T: s.T.Mul(-1), N: s.N.Mul(-1)}
}

// subpath is a range of r.segs.
type subpath struct {
	first, end int
	closed     bool
}

// Stroke paints the outline of p, using Width, Cap, Join and MiterLimit.
//
// The outline is built in user space and then mapped through the CTM, so
// that a non-uniform scaling gives an elliptical pen.
func (r *Rasterizer) Stroke(p *path.Data, emit EmitFunc) {
	r.collectSegments(p)

	r.outline = r.outline[:0]
	r.ringStart = r.ringStart[:0]
	d := r.Width / 2

	if r.Cap == graphics.LineCapRound {
		for _, pt := range r.dots {
			r.beginRing()
			r.addArc(pt, d, vec.Vec2{X: 1}, 2*math.Pi, false)
		}
	}

	for _, sp := range r.subpaths {
		segs := r.segs[sp.first:sp.end]
		r.rev = r.rev[:0]
		for i := len(segs) - 1; i >= 0; i-- {
			r.rev = append(r.rev, segs[i].reversed())
		}

		if sp.closed {
			// Two rings of opposite orientation.  The nonzero rule leaves
			// the area inside the inner ring empty.
			r.beginRing()
			r.addSide(segs, d, true)
			r.beginRing()
			r.addSide(r.rev, d, true)
			continue
		}

		last := segs[len(segs)-1]
		r.beginRing()
		r.addSide(segs, d, false)
		r.addCap(last.B, last.T, d)
		r.addSide(r.rev, d, false)
		r.addCap(segs[0].A, segs[0].T.Mul(-1), d)
	}

	r.resetEdges()
	for i, first := range r.ringStart {
		end := len(r.outline)
		if i+1 < len(r.ringStart) {
			end = r.ringStart[i+1]
		}
		ring := r.outline[first:end]
		if len(ring) < 3 {
			continue
		}
		for j := range ring {
			r.addEdge(ring[j], ring[(j+1)%len(ring)])
		}
	}
	r.sweep(NonZero, emit)
}

// collectSegments flattens p into r.segs, grouped by sub-path.
// Sub-paths without length are recorded in r.dots.
func (r *Rasterizer) collectSegments(p *path.Data) {
	r.segs = r.segs[:0]
	r.subpaths = r.subpaths[:0]
	r.dots = r.dots[:0]

	first := 0
	r.flatten(p, r.addStrokeSegment, func(start, current vec.Vec2, closed, drawn bool) {
		if closed && current != start {
			r.addStrokeSegment(current, start)
		}
		switch {
		case len(r.segs) > first:
			r.subpaths = append(r.subpaths, subpath{first: first, end: len(r.segs), closed: closed})
		case drawn || closed:
			r.dots = append(r.dots, start)
		}
		first = len(r.segs)
	})
}

func (r *Rasterizer) addStrokeSegment(a, b vec.Vec2) {
	v := b.Sub(a)
	l := v.Length()
	if l < zeroLengthThreshold {
		return
	}
	t := v.Mul(1 / l)
	r.segs = append(r.segs, strokeSegment{A: a, B: b, T: t, N: vec.Vec2{X: -t.Y, Y: t.X}})
}

func (r *Rasterizer) beginRing() {
	r.ringStart = append(r.ringStart, len(r.outline))
}

// addSide appends the offset curve at distance d on the +N side of segs.
// For closed sub-paths the corner between the last and the first segment
// is joined as well, and the side forms a complete ring.
func (r *Rasterizer) addSide(segs []strokeSegment, d float64, closed bool) {
	if !closed {
		r.outline = append(r.outline, segs[0].A.Add(segs[0].N.Mul(d)))
	}
	for i := range segs {
		if i == len(segs)-1 && !closed {
			r.outline = append(r.outline, segs[i].B.Add(segs[i].N.Mul(d)))
			break
		}
		r.addCorner(&segs[i], &segs[(i+1)%len(segs)], d)
	}
}

// addCorner appends the +N side outline around the point where s ends and
// next begins.
func (r *Rasterizer) addCorner(s, next *strokeSegment, d float64) {
	p := s.B
	cos := s.T.Dot(next.T)
	sin := s.T.X*next.T.Y - s.T.Y*next.T.X

	if math.Abs(sin) < collinearityThreshold && cos > 0 {
		r.outline = append(r.outline, p.Add(next.N.Mul(d)))
		return
	}

	if sin > 0 && cos >= cuspCosineThreshold {
		// The path turns towards +N, so this is the inside of the corner.
		// Both offset lines meet in a single point.
		cosHalf := math.Sqrt((1 + cos) / 2)
		bis := s.N.Add(next.N)
		if l := bis.Length(); l > zeroLengthThreshold && cosHalf > zeroLengthThreshold {
			r.outline = append(r.outline, p.Add(bis.Mul(d/(l*cosHalf))))
		} else {
			r.outline = append(r.outline, p.Add(s.N.Mul(d)), p.Add(next.N.Mul(d)))
		}
		return
	}

	r.outline = append(r.outline, p.Add(s.N.Mul(d)))
	switch {
	case cos < cuspCosineThreshold:
		r.addCap(p, s.T, d)
	case r.Join == graphics.LineJoinRound:
		sweep := math.Atan2(sin, cos)
		if sweep > 0 {
			sweep -= 2 * math.Pi
		}
		r.addArc(p, d, s.N, sweep, true)
	case r.Join == graphics.LineJoinMiter:
		cosHalf := math.Sqrt((1 + cos) / 2)
		if cosHalf > 0 && 1/cosHalf <= r.MiterLimit+miterEpsilon {
			bis := s.N.Add(next.N)
			if l := bis.Length(); l > zeroLengthThreshold {
				r.outline = append(r.outline, p.Add(bis.Mul(d/(l*cosHalf))))
			}
		}
		// otherwise bevel
	}
	r.outline = append(r.outline, p.Add(next.N.Mul(d)))
}

// addCap appends the cap at the end point p of a segment with outward
// tangent t.  The outline arrives at p + d·N and continues at p - d·N,
// where N is t turned by +90°; neither point is appended here.
func (r *Rasterizer) addCap(p, t vec.Vec2, d float64) {
	n := vec.Vec2{X: -t.Y, Y: t.X}
	switch r.Cap {
	case graphics.LineCapRound:
		r.addArc(p, d, n, -math.Pi, true)
	case graphics.LineCapSquare:
		tip := p.Add(t.Mul(d))
		r.outline = append(r.outline, tip.Add(n.Mul(d)), tip.Sub(n.Mul(d)))
	}
}

// addArc appends points on the circle of the given radius around center,
// starting in direction from and turning by sweep radians.  If interior is
// set, the two end points of the arc are left out.
func (r *Rasterizer) addArc(center vec.Vec2, radius float64, from vec.Vec2, sweep float64, interior bool) {
	devRadius := max(
		r.deviceLength(vec.Vec2{X: radius}),
		r.deviceLength(vec.Vec2{Y: radius}))

	// a chord spanning the angle step deviates by radius·(1 - cos(step/2))
	n := 1
	if devRadius > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		n = max(1, int(math.Ceil(math.Abs(sweep)/step)))
	}
	n = max(n, int(math.Ceil(math.Abs(sweep)/(math.Pi/2))))

	lo, hi := 0, n
	if interior {
		lo, hi = 1, n-1
	}
	for i := lo; i <= hi; i++ {
		sin, cos := math.Sincos(sweep * float64(i) / float64(n))
		dir := vec.Vec2{
			X: from.X*cos - from.Y*sin,
			Y: from.X*sin + from.Y*cos,
		}
		r.outline = append(r.outline, center.Add(dir.Mul(radius)))
	}
}

// miterEpsilon absorbs rounding errors when a miter is exactly at the
// limit.
const miterEpsilon = 1e-10
