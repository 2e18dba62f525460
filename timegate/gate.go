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

package timegate

import (
	"log/slog"
	"time"
)

// Gate decides for each cat request whether a cat is handed out.
// The zero value is ready to use.
type Gate struct {
	// Now returns the current time.  If nil, time.Now is used.
	Now func() time.Time

	// Logger receives one message per decision.  If nil, slog.Default()
	// is used.
	Logger *slog.Logger
}

// Allow reports whether the raw URL query of a cat request is a valid
// report of the client's clock at 2:22.
func (g *Gate) Allow(rawQuery string) bool {
	logger := g.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := time.Now
	if g.Now != nil {
		now = g.Now
	}

	millis, offset, err := ParseQuery(rawQuery)
	if err != nil {
		logger.Info("Bad URI query", slog.String("query", rawQuery))
		return false
	}

	if err := Verify(now(), millis, offset); err != nil {
		logger.Info("Bad time",
			slog.Int64("time", millis),
			slog.Int("offset", offset),
			slog.Any("error", err))
		return false
	}

	logger.Info("Good time", slog.Int64("time", millis), slog.Int("offset", offset))
	return true
}
