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
)

// flatten walks p in user space and replaces all curves by line segments.
//
// Every line segment is passed to line.  When a sub-path ends, end is
// called with its start point, the final current point, whether it was
// ended by an explicit Close, and whether any drawing command occurred.
func (r *Rasterizer) flatten(p *path.Data, line func(a, b vec.Vec2), end func(start, current vec.Vec2, closed, drawn bool)) {
	var start, current vec.Vec2
	open := false
	drawn := false
	finish := func(closed bool) {
		if open {
			end(start, current, closed, drawn)
		}
		open = false
		drawn = false
	}
	begin := func() {
		if !open {
			start = current
			open = true
		}
		drawn = true
	}

	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			finish(false)
			current = p.Coords[k]
			start = current
			open = true
			k++
		case path.CmdLineTo:
			begin()
			line(current, p.Coords[k])
			current = p.Coords[k]
			k++
		case path.CmdQuadTo:
			begin()
			r.flattenQuadratic(current, p.Coords[k], p.Coords[k+1], line)
			current = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			begin()
			r.flattenCubic(current, p.Coords[k], p.Coords[k+1], p.Coords[k+2], line)
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			finish(true)
			current = start
		}
	}
	finish(false)
}

// deviceLength returns the length of the user space vector v after the
// linear part of the CTM has been applied.
func (r *Rasterizer) deviceLength(v vec.Vec2) float64 {
	m := r.CTM
	return math.Hypot(m[0]*v.X+m[2]*v.Y, m[1]*v.X+m[3]*v.Y)
}

// flattenQuadratic approximates the curve p0, p1, p2 by line segments.
// The number of segments follows from the device space size of the
// second difference (p0 - 2 p1 + p2) / 4.
func (r *Rasterizer) flattenQuadratic(p0, p1, p2 vec.Vec2, line func(a, b vec.Vec2)) {
	dev := r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25))
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		line(prev, pt)
		prev = pt
	}
}

// flattenCubic approximates the curve p0, p1, p2, p3 by line segments,
// using Wang's bound for the number of segments.
func (r *Rasterizer) flattenCubic(p0, p1, p2, p3 vec.Vec2, line func(a, b vec.Vec2)) {
	d1 := r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := r.deviceLength(p1.Sub(p2.Mul(2)).Add(p3))
	n := 1
	if m := max(d1, d2); m > 0 {
		n = max(1, int(math.Ceil(math.Sqrt(3*m/(4*r.Flatness)))))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		line(prev, pt)
		prev = pt
	}
}
