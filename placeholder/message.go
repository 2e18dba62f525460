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

package placeholder

import (
	"fmt"

	"golang.org/x/text/language"

	"seehuhn.de/go/makeacat/canvas"
	"seehuhn.de/go/makeacat/scene"
	"seehuhn.de/go/makeacat/timegate"
)

// Message is one translation of the "come back later" text.
type Message struct {
	Lang language.Tag
	Text string
}

// MaxX bounds the horizontal start of the text, so that the right margin
// is at least as wide as the left one.
func (m Message) MaxX() float64 {
	return canvas.Width - TextXMin - advance(m.Text, TextSize)
}

// Messages lists the available translations.
var Messages = []Message{
	{
		Lang: language.English,
		Text: fmt.Sprintf("come back at %d:%02d", timegate.Hour, timegate.Minute),
	},
	{
		Lang: language.Catalan,
		Text: fmt.Sprintf("torna a %d:%02d", timegate.Hour, timegate.Minute),
	},
}

var matcher = language.NewMatcher([]language.Tag{language.English, language.Catalan})

// Choose picks the message for a client with the given language
// preferences, most preferred first.  If there are no preferences, or none
// of them is supported, a message is chosen at random.
func Choose(src scene.Source, prefs ...language.Tag) Message {
	if len(prefs) > 0 {
		_, idx, conf := matcher.Match(prefs...)
		if conf != language.No {
			return Messages[idx]
		}
	}
	if scene.Coin(src) {
		return Messages[0]
	}
	return Messages[1]
}
