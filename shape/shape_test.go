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

import (
	"math"
	"slices"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func TestBuilderCommands(t *testing.T) {
	b := NewBuilder()
	b.MoveTo(1, 2)
	b.LineTo(3, 4)
	b.QuadTo(5, 6, 7, 8)
	b.CubicTo(9, 10, 11, 12, 13, 14)
	b.Close()
	p := b.Finish()

	wantCmds := []path.Command{
		path.CmdMoveTo, path.CmdLineTo, path.CmdQuadTo, path.CmdCubeTo, path.CmdClose,
	}
	segs := p.Segments()
	if len(segs) != len(wantCmds) {
		t.Fatalf("got %d segments, want %d", len(segs), len(wantCmds))
	}
	for i, s := range segs {
		if s.Cmd != wantCmds[i] {
			t.Errorf("segment %d: got %v, want %v", i, s.Cmd, wantCmds[i])
		}
	}
	if got := segs[3].Pts[2]; got != (vec.Vec2{X: 13, Y: 14}) {
		t.Errorf("cubic end point: got %v", got)
	}
	if got := b.Current(); got != (vec.Vec2{X: 1, Y: 2}) {
		t.Errorf("current point after Close: got %v, want (1, 2)", got)
	}
}

func TestBuilderImplicitMoveTo(t *testing.T) {
	tests := []struct {
		name  string
		build func(b *Builder)
		want  []path.Command
	}{
		{
			name:  "line from origin",
			build: func(b *Builder) { b.LineTo(5, 5) },
			want:  []path.Command{path.CmdMoveTo, path.CmdLineTo},
		},
		{
			name: "draw after close",
			build: func(b *Builder) {
				b.MoveTo(1, 1)
				b.LineTo(2, 1)
				b.Close()
				b.LineTo(2, 2)
			},
			want: []path.Command{
				path.CmdMoveTo, path.CmdLineTo, path.CmdClose,
				path.CmdMoveTo, path.CmdLineTo,
			},
		},
		{
			name: "double close",
			build: func(b *Builder) {
				b.MoveTo(0, 0)
				b.LineTo(1, 0)
				b.Close()
				b.Close()
			},
			want: []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdClose},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBuilder()
			tc.build(b)
			got := b.Finish().Data().Cmds
			if !slices.Equal(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}

	b := NewBuilder()
	b.MoveTo(1, 1)
	b.LineTo(2, 1)
	b.Close()
	b.LineTo(2, 2)
	segs := b.Finish().Segments()
	if got := segs[3].Pts[0]; got != (vec.Vec2{X: 1, Y: 1}) {
		t.Errorf("implicit MoveTo at %v, want (1, 1)", got)
	}
}

func TestRect(t *testing.T) {
	b := NewBuilder()
	b.Rect(-3, -3, 6, 6)
	segs := b.Finish().Segments()

	want := []vec.Vec2{{X: -3, Y: -3}, {X: 3, Y: -3}, {X: 3, Y: 3}, {X: -3, Y: 3}}
	if len(segs) != 5 || segs[4].Cmd != path.CmdClose {
		t.Fatalf("unexpected rectangle path %v", segs)
	}
	for i, p := range want {
		if segs[i].Pts[0] != p {
			t.Errorf("corner %d: got %v, want %v", i, segs[i].Pts[0], p)
		}
	}
}

func TestFinishIsImmutable(t *testing.T) {
	b := NewBuilder()
	b.MoveTo(0, 0)
	b.LineTo(1, 1)
	p := b.Finish()
	b.LineTo(2, 2)
	if n := len(p.Data().Cmds); n != 2 {
		t.Errorf("finished path changed, has %d commands", n)
	}
	if (Path{}).IsEmpty() != true {
		t.Error("zero path is not empty")
	}
}

func TestEllipseAccuracy(t *testing.T) {
	tests := []struct {
		x, y, rx, ry float64
	}{
		{0, 0, 25, 24},
		{10, -5, 66, 30},
		{0, 0, 6, 28},
		{-9, -7, 2.7, 2.7},
	}
	for _, tc := range tests {
		b := NewBuilder()
		b.Ellipse(tc.x, tc.y, tc.rx, tc.ry)
		segs := b.Finish().Segments()

		if len(segs) != 1+EllipseSegments {
			t.Fatalf("got %d segments, want %d", len(segs), 1+EllipseSegments)
		}
		start := vec.Vec2{X: tc.x + tc.rx, Y: tc.y}
		if segs[0].Cmd != path.CmdMoveTo || segs[0].Pts[0] != start {
			t.Fatalf("ellipse starts with %v %v", segs[0].Cmd, segs[0].Pts)
		}
		if last := segs[len(segs)-1].Pts[1]; last != start {
			t.Errorf("ellipse ends at %v, want %v", last, start)
		}

		// sample every curve and compare against the implicit equation
		prev := start
		for _, s := range segs[1:] {
			if s.Cmd != path.CmdQuadTo {
				t.Fatalf("unexpected command %v", s.Cmd)
			}
			for i := 0; i <= 16; i++ {
				u := float64(i) / 16
				q := prev.Mul((1 - u) * (1 - u)).Add(s.Pts[0].Mul(2 * u * (1 - u))).Add(s.Pts[1].Mul(u * u))
				dx := (q.X - tc.x) / tc.rx
				dy := (q.Y - tc.y) / tc.ry
				if r := math.Hypot(dx, dy); math.Abs(r-1) > 0.004 {
					t.Errorf("ellipse %v: point %v off by %.4f", tc, q, r-1)
				}
			}
			prev = s.Pts[1]
		}
	}
}

func TestEllipseDirection(t *testing.T) {
	b := NewBuilder()
	b.Ellipse(0, 0, 10, 5)
	segs := b.Finish().Segments()

	// after a quarter turn the outline is at the bottom (+y)
	if got := segs[2].Pts[1]; math.Abs(got.X) > 1e-9 || math.Abs(got.Y-5) > 1e-9 {
		t.Errorf("quarter point %v, want (0, 5)", got)
	}
}

func TestEllipseDegenerate(t *testing.T) {
	b := NewBuilder()
	b.Ellipse(3, 4, 0, 0)
	for _, s := range b.Finish().Segments() {
		for _, p := range s.Pts {
			if p != (vec.Vec2{X: 3, Y: 4}) {
				t.Errorf("degenerate ellipse has point %v", p)
			}
		}
	}
}
