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

package makeacat

import (
	"seehuhn.de/go/makeacat/canvas"
	"seehuhn.de/go/makeacat/scene"
)

// Option configures a [Renderer].
type Option func(*options)

type options struct {
	newSource     func() scene.Source
	rotation      scene.RotationVariant
	encoder       canvas.Encoder
	width, height int
}

func defaultOptions() options {
	return options{
		newSource: scene.NewSource,
		rotation:  scene.RotationTriangular,
		encoder:   nil, // canvas.PNGEncoder
		width:     canvas.Width,
		height:    canvas.Height,
	}
}

// WithSource sets the function which supplies the random numbers for each
// image.  It is called once per image, and the returned source is used
// by one goroutine only.
//
// Example:
//
//	seed := func() scene.Source { return rand.New(rand.NewPCG(1, 2)) }
//	r := makeacat.New(makeacat.WithSource(seed)) // always the same cat
func WithSource(newSource func() scene.Source) Option {
	return func(o *options) {
		if newSource != nil {
			o.newSource = newSource
		}
	}
}

// WithRotation selects the distribution of the angle of the cats.
func WithRotation(v scene.RotationVariant) Option {
	return func(o *options) {
		o.rotation = v
	}
}

// WithEncoder replaces the PNG encoder.
func WithEncoder(enc canvas.Encoder) Option {
	return func(o *options) {
		o.encoder = enc
	}
}

// WithSize changes the size of the images.  The drawings are not scaled.
func WithSize(width, height int) Option {
	return func(o *options) {
		if width > 0 && height > 0 {
			o.width, o.height = width, height
		}
	}
}
