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

// Package raster converts vector paths into anti-aliased pixel coverage.
//
// Coverage is computed exactly for polygons, by accumulating the signed area
// of every edge within each pixel.  Curves are flattened first, with a
// tolerance measured in device pixels.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// EmitFunc receives the coverage of one pixel row: coverage[i] is the
// fraction of pixel (xMin+i, y) covered by the shape, between 0 and 1.
// The slice is only valid during the call.
type EmitFunc func(y, xMin int, coverage []float32)

// FillRule selects how overlapping parts of a path are filled.
type FillRule int

const (
	// NonZero fills every point with a nonzero winding number.
	NonZero FillRule = iota

	// EvenOdd fills every point with an odd winding number.
	EvenOdd
)

func (f FillRule) String() string {
	switch f {
	case NonZero:
		return "nonzero"
	case EvenOdd:
		return "even-odd"
	default:
		return "unknown fill rule"
	}
}

// edge is a line segment in device coordinates with yTop < yBot.
type edge struct {
	xTop       float64 // x at yTop
	yTop, yBot float64
	dxdy       float64
	dir        float32 // +1 if the original segment pointed down, -1 otherwise
}

func (e *edge) xAt(y float64) float64 {
	return e.xTop + (y-e.yTop)*e.dxdy
}

// Rasterizer turns paths into coverage values.  A Rasterizer can be reused
// for many paths; its buffers grow as needed and are never released.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps user space to device space.  It must be invertible.
	CTM matrix.Matrix

	// Clip limits the output to this device space rectangle.
	// The coordinates must be integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and the line segments which replace it.
	Flatness float64

	// Width is the stroke width in user space.
	Width float64

	// Cap is the shape used at the ends of open sub-paths.
	Cap graphics.LineCapStyle

	// Join is the shape used where two segments meet.
	Join graphics.LineJoinStyle

	// MiterLimit is the largest ratio of miter length to stroke width
	// before a miter join is replaced by a bevel.
	MiterLimit float64

	edges  []edge
	active []*edge
	bbox   struct{ xMin, xMax, yMin, yMax float64 }

	cover []float32
	area  []float32
	row   struct{ x0, width int }

	segs      []strokeSegment
	rev       []strokeSegment
	subpaths  []subpath
	dots      []vec.Vec2
	outline   []vec.Vec2
	ringStart []int
}

// NewRasterizer returns a Rasterizer which draws into clip, with the
// identity CTM and PDF default values for the stroke parameters.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	return &Rasterizer{
		CTM:        matrix.Identity,
		Clip:       clip,
		Flatness:   defaultFlatness,
		Width:      1,
		Cap:        graphics.LineCapButt,
		Join:       graphics.LineJoinMiter,
		MiterLimit: defaultMiterLimit,
	}
}

// Fill fills the interior of p, as determined by rule.  Open sub-paths are
// closed implicitly by a straight line.
func (r *Rasterizer) Fill(p *path.Data, rule FillRule, emit EmitFunc) {
	r.resetEdges()
	r.flatten(p, r.addEdge, func(start, current vec.Vec2, _, _ bool) {
		if current != start {
			r.addEdge(current, start)
		}
	})
	r.sweep(rule, emit)
}

// resetEdges clears the edge list before a new shape is collected.
func (r *Rasterizer) resetEdges() {
	r.edges = r.edges[:0]
	r.bbox.xMin = math.Inf(1)
	r.bbox.yMin = math.Inf(1)
	r.bbox.xMax = math.Inf(-1)
	r.bbox.yMax = math.Inf(-1)
}

// addEdge maps the user space segment a-b to device space and stores it.
func (r *Rasterizer) addEdge(a, b vec.Vec2) {
	m := r.CTM
	x0, y0 := m.Apply(a.X, a.Y)
	x1, y1 := m.Apply(b.X, b.Y)

	dir := float32(1)
	if y1 < y0 {
		x0, y0, x1, y1 = x1, y1, x0, y0
		dir = -1
	}
	if y1-y0 < horizontalEdgeThreshold {
		return
	}

	r.edges = append(r.edges, edge{
		xTop: x0,
		yTop: y0,
		yBot: y1,
		dxdy: (x1 - x0) / (y1 - y0),
		dir:  dir,
	})
	r.bbox.xMin = min(r.bbox.xMin, x0, x1)
	r.bbox.xMax = max(r.bbox.xMax, x0, x1)
	r.bbox.yMin = min(r.bbox.yMin, y0)
	r.bbox.yMax = max(r.bbox.yMax, y1)
}

// sweep converts the collected edges into coverage, one scanline at a time.
func (r *Rasterizer) sweep(rule FillRule, emit EmitFunc) {
	if len(r.edges) == 0 {
		return
	}

	xMin := max(int(math.Floor(r.bbox.xMin)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.bbox.xMax))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.bbox.yMin)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.bbox.yMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}

	width := xMax - xMin
	r.row.x0 = xMin
	r.row.width = width
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.yTop, b.yTop)
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		top := float64(y)
		bot := top + 1

		for next < len(r.edges) && r.edges[next].yTop < bot {
			r.active = append(r.active, &r.edges[next])
			next++
		}
		r.active = slices.DeleteFunc(r.active, func(e *edge) bool {
			return e.yBot <= top
		})
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		for _, e := range r.active {
			r.accumulate(e, top, bot)
		}

		if rule == EvenOdd {
			integrateEvenOdd(r.cover, r.area)
		} else {
			integrateNonZero(r.cover, r.area)
		}
		if cov, offs := trimZeros(r.cover); cov != nil {
			emit(y, xMin+offs, cov)
		}
	}
}

// Coverage model: every piece of an edge inside a pixel adds its signed
// height to "cover" and the part of that height which lies to the right of
// the piece to "area".  Summing cover from the left and adding the area of
// the current pixel gives the signed area of the shape inside the pixel.

// accumulate adds the part of e between the scanlines top and bot.
func (r *Rasterizer) accumulate(e *edge, top, bot float64) {
	y0 := max(top, e.yTop)
	y1 := min(bot, e.yBot)
	if y1 <= y0 {
		return
	}

	x0 := e.xAt(y0)
	x1 := e.xAt(y1)
	c0 := int(math.Floor(min(x0, x1)))
	c1 := int(math.Floor(max(x0, x1)))

	if c0 == c1 {
		r.addCell(c0, e.dir*float32(y1-y0), (x0+x1)/2)
		return
	}

	// split the piece at the pixel column boundaries
	dydx := 1 / e.dxdy
	for c := c0; c <= c1; c++ {
		ya := y0 + (float64(c)-x0)*dydx
		yb := y0 + (float64(c+1)-x0)*dydx
		lo := max(min(ya, yb), y0)
		hi := min(max(ya, yb), y1)
		if hi <= lo {
			continue
		}
		xm := x0 + ((lo+hi)/2-y0)*e.dxdy
		r.addCell(c, e.dir*float32(hi-lo), xm)
	}
}

// addCell records an edge piece of signed height h, centered at x = xm,
// in pixel column c.
func (r *Rasterizer) addCell(c int, h float32, xm float64) {
	i := c - r.row.x0
	switch {
	case i < 0:
		// left of the visible area: the whole row is affected
		r.cover[0] += h
		r.area[0] += h
	case i < r.row.width:
		r.cover[i] += h
		r.area[i] += h * float32(1-(xm-float64(c)))
	}
}

// integrateNonZero turns cover and area into coverage values using the
// nonzero winding rule.  The result is stored in cover.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}

// integrateEvenOdd turns cover and area into coverage values using the
// even-odd rule.  The result is stored in cover.
func integrateEvenOdd(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		v -= 2 * float32(math.Floor(float64(v/2)))
		if v > 1 {
			v = 2 - v
		}
		cover[i] = v
	}
}

// trimZeros strips zero coverage from both ends of a row.
func trimZeros(coverage []float32) ([]float32, int) {
	lo := 0
	for lo < len(coverage) && coverage[lo] == 0 {
		lo++
	}
	if lo == len(coverage) {
		return nil, 0
	}
	hi := len(coverage)
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

const (
	// defaultFlatness is the curve tolerance in device pixels.
	defaultFlatness = 0.25

	// defaultMiterLimit is the PDF default miter limit.
	defaultMiterLimit = 10.0

	// horizontalEdgeThreshold is the smallest vertical extent of an edge
	// which still contributes coverage.
	horizontalEdgeThreshold = 1e-10

	// zeroLengthThreshold is the shortest stroke segment which is kept.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold bounds the sine of the turning angle below
	// which two segments are treated as straight.
	collinearityThreshold = 1e-6

	// cuspCosineThreshold: a path whose tangents enclose an angle with a
	// cosine below this value doubles back on itself.
	cuspCosineThreshold = -0.9999
)
