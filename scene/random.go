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
	"math/rand/v2"
)

// Source is a stream of uniformly distributed random numbers.
// [*rand.Rand] implements this interface.
type Source interface {
	// Float64 returns a number in [0, 1).
	Float64() float64

	// IntN returns a number in [0, n).  It panics if n <= 0.
	IntN(n int) int
}

// NewSource returns a freshly seeded source for a single drawing.
func NewSource() Source {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Uniform returns a number in [lo, hi).
func Uniform(src Source, lo, hi float64) float64 {
	return lo + (hi-lo)*src.Float64()
}

// UniformInt returns an integer in the closed range [lo, hi].
func UniformInt(src Source, lo, hi int) int {
	return lo + src.IntN(hi-lo+1)
}

// Chance returns true with probability num/den.
func Chance(src Source, num, den int) bool {
	return src.IntN(den) < num
}

// Coin returns true with probability 1/2.
func Coin(src Source) bool {
	return src.IntN(2) == 0
}

// RandomColor returns an opaque color with every channel in
// [ColorChannelMin, ColorChannelMax].
func RandomColor(src Source) color.NRGBA {
	return color.NRGBA{
		R: uint8(UniformInt(src, ColorChannelMin, ColorChannelMax)),
		G: uint8(UniformInt(src, ColorChannelMin, ColorChannelMax)),
		B: uint8(UniformInt(src, ColorChannelMin, ColorChannelMax)),
		A: 255,
	}
}
