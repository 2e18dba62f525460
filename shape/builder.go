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

// Package shape builds the vector outlines which make up a drawing.
//
// A [Builder] accumulates path commands; [Builder.Finish] turns them into an
// immutable [Path]. Nothing in this package can fail: degenerate input
// produces degenerate, but valid, geometry.
package shape

import (
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Path is an immutable sequence of path commands.
// The zero value is the empty path.
type Path struct {
	data path.Data
}

// Data returns the underlying command list.
// The result is shared with the Path and must not be modified.
func (p Path) Data() *path.Data {
	return &p.data
}

// IsEmpty reports whether the path contains no commands.
func (p Path) IsEmpty() bool {
	return len(p.data.Cmds) == 0
}

// Segment is one command of a path, together with its points.
// MoveTo and LineTo have one point, QuadTo two, CubeTo three and Close none.
type Segment struct {
	Cmd path.Command
	Pts []vec.Vec2
}

// Segments returns the commands of the path in order.
func (p Path) Segments() []Segment {
	res := make([]Segment, 0, len(p.data.Cmds))
	k := 0
	for _, cmd := range p.data.Cmds {
		n := numPoints(cmd)
		res = append(res, Segment{Cmd: cmd, Pts: p.data.Coords[k : k+n : k+n]})
		k += n
	}
	return res
}

func numPoints(cmd path.Command) int {
	switch cmd {
	case path.CmdMoveTo, path.CmdLineTo:
		return 1
	case path.CmdQuadTo:
		return 2
	case path.CmdCubeTo:
		return 3
	default:
		return 0
	}
}

// Builder constructs a [Path] one command at a time.
//
// Every sub-path starts with a MoveTo.  If a drawing command is issued while
// no sub-path is open, a sub-path is started implicitly at the current point
// (initially the origin).
//
// A Builder is not safe for concurrent use.
type Builder struct {
	data    path.Data
	current vec.Vec2
	start   vec.Vec2
	open    bool
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Current returns the current point.
func (b *Builder) Current() vec.Vec2 {
	return b.current
}

// MoveTo starts a new sub-path at (x, y).
func (b *Builder) MoveTo(x, y float64) {
	p := vec.Vec2{X: x, Y: y}
	b.data.Cmds = append(b.data.Cmds, path.CmdMoveTo)
	b.data.Coords = append(b.data.Coords, p)
	b.current = p
	b.start = p
	b.open = true
}

// LineTo appends a straight line from the current point to (x, y).
func (b *Builder) LineTo(x, y float64) {
	b.ensureOpen()
	p := vec.Vec2{X: x, Y: y}
	b.data.Cmds = append(b.data.Cmds, path.CmdLineTo)
	b.data.Coords = append(b.data.Coords, p)
	b.current = p
}

// QuadTo appends a quadratic Bézier curve with control point (cx, cy)
// ending at (x, y).
func (b *Builder) QuadTo(cx, cy, x, y float64) {
	b.ensureOpen()
	p := vec.Vec2{X: x, Y: y}
	b.data.Cmds = append(b.data.Cmds, path.CmdQuadTo)
	b.data.Coords = append(b.data.Coords, vec.Vec2{X: cx, Y: cy}, p)
	b.current = p
}

// CubicTo appends a cubic Bézier curve with control points (c1x, c1y) and
// (c2x, c2y), ending at (x, y).
func (b *Builder) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	b.ensureOpen()
	p := vec.Vec2{X: x, Y: y}
	b.data.Cmds = append(b.data.Cmds, path.CmdCubeTo)
	b.data.Coords = append(b.data.Coords,
		vec.Vec2{X: c1x, Y: c1y}, vec.Vec2{X: c2x, Y: c2y}, p)
	b.current = p
}

// Close closes the current sub-path.  The current point returns to the
// start of the sub-path.  Close is a no-op if no sub-path is open.
func (b *Builder) Close() {
	if !b.open {
		return
	}
	b.data.Cmds = append(b.data.Cmds, path.CmdClose)
	b.current = b.start
	b.open = false
}

// Rect appends the closed rectangle with corner (x, y), width w and
// height h.
func (b *Builder) Rect(x, y, w, h float64) {
	b.MoveTo(x, y)
	b.LineTo(x+w, y)
	b.LineTo(x+w, y+h)
	b.LineTo(x, y+h)
	b.Close()
}

// Finish returns the path built so far.
// The builder keeps its state and can continue to be used.
func (b *Builder) Finish() Path {
	return Path{data: path.Data{
		Cmds:   slices.Clone(b.data.Cmds),
		Coords: slices.Clone(b.data.Coords),
	}}
}

func (b *Builder) ensureOpen() {
	if !b.open {
		b.MoveTo(b.current.X, b.current.Y)
	}
}
