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

// Package makeacat draws cats.
//
// Every cat is different: its pose, the shape of its tail, the size of its
// body parts and all its colors are chosen at random.  The images are
// returned as PNG files of 400×256 pixels with a transparent background.
package makeacat

import (
	"log/slog"
	"sync"

	"golang.org/x/text/language"

	"seehuhn.de/go/makeacat/canvas"
	"seehuhn.de/go/makeacat/placeholder"
	"seehuhn.de/go/makeacat/scene"
)

// Renderer draws images.  It is safe for concurrent use, provided that the
// source function set with [WithSource] is.
type Renderer struct {
	opt options
}

// New returns a renderer with the given options applied.
func New(opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer{opt: o}
}

// Creature draws a new cat and returns the PNG data.
//
// If the image cannot be encoded, the result is an empty, non-nil slice.
func (r *Renderer) Creature() []byte {
	c := canvas.New(r.opt.width, r.opt.height)
	params := scene.Draw(r.opt.newSource(), r.opt.rotation)
	scene.Paint(c, scene.Compose(params))
	return r.encode(c, "cat")
}

// Unavailable draws the "come back later" image.  The language of the
// message is chosen from prefs, most preferred first.
//
// If the image cannot be encoded, the result is an empty, non-nil slice.
func (r *Renderer) Unavailable(prefs ...language.Tag) []byte {
	c := canvas.New(r.opt.width, r.opt.height)
	placeholder.Paint(c, placeholder.Draw(r.opt.newSource(), prefs...))
	return r.encode(c, "placeholder")
}

func (r *Renderer) encode(c *canvas.Canvas, kind string) []byte {
	data, err := canvas.EncodePNG(c, r.opt.encoder)
	if err != nil {
		Logger().Warn("cannot encode image",
			slog.String("kind", kind),
			slog.Any("error", err))
		return []byte{}
	}
	Logger().Debug("image ready", slog.String("kind", kind), slog.Int("bytes", len(data)))
	return data
}

var defaultRenderer = sync.OnceValue(func() *Renderer { return New() })

// RenderCreature draws a cat using the default settings.
func RenderCreature() []byte {
	return defaultRenderer().Creature()
}

// RenderUnavailable draws the "come back later" image, in a random
// language.
func RenderUnavailable() []byte {
	return defaultRenderer().Unavailable()
}
