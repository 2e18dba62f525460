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

package shape

import "math"

// Ellipse appends a full axis-aligned ellipse with center (x, y) and radii
// rx, ry.
//
// The outline starts with a MoveTo at angle 0, the point (x+rx, y), and runs
// through increasing angles (towards +y) back to the start point, as
// [EllipseSegments] quadratic Bézier curves.  The sub-path is left open;
// call [Builder.Close] to close it.
//
// Zero or negative radii are accepted and give a degenerate outline.
func (b *Builder) Ellipse(x, y, rx, ry float64) {
	b.MoveTo(x+rx, y)

	step := 2 * math.Pi / EllipseSegments
	// Each control point is where the tangents at the two segment ends meet.
	// On the unit circle this is at angle mid, distance 1/cos(step/2).
	k := 1 / math.Cos(step/2)
	for i := range EllipseSegments {
		mid := (float64(i) + 0.5) * step
		cx := x + rx*k*math.Cos(mid)
		cy := y + ry*k*math.Sin(mid)

		if i == EllipseSegments-1 {
			b.QuadTo(cx, cy, x+rx, y)
			break
		}
		end := float64(i+1) * step
		b.QuadTo(cx, cy, x+rx*math.Cos(end), y+ry*math.Sin(end))
	}
}

// EllipseSegments is the number of quadratic curves used for a full
// ellipse, one per eighth of a turn.  Each curve stays within 0.32% of the
// radius of the true ellipse.
const EllipseSegments = 8
