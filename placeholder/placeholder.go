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

// Package placeholder draws the image shown when no cat can be made.
package placeholder

import (
	"golang.org/x/text/language"

	"seehuhn.de/go/makeacat/canvas"
	"seehuhn.de/go/makeacat/raster"
	"seehuhn.de/go/makeacat/scene"
)

// Layout of the message.
const (
	TextSize = 24
	TextXMin = 8
	TextYMin = 25
	TextYMax = 248
)

// Params is everything random about a placeholder image.
type Params struct {
	Message Message
	X, Y    float64 // start of the baseline
}

// Draw chooses the message and its position.
func Draw(src scene.Source, prefs ...language.Tag) Params {
	m := Choose(src, prefs...)
	return Params{
		Message: m,
		X:       scene.Uniform(src, TextXMin, m.MaxX()),
		Y:       scene.Uniform(src, TextYMin, TextYMax),
	}
}

// Paint writes the message onto the canvas, in black.
func Paint(c *canvas.Canvas, p Params) {
	text := Outline(p.Message.Text, TextSize, p.X, p.Y)
	c.Fill(text, canvas.Black, raster.NonZero)
}
