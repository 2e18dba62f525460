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

import "errors"

var (
	ErrBadQuery      = errors.New("malformed time query")
	ErrUnknownOffset = errors.New("offset is not a time zone")
	ErrClosed        = errors.New("wrong time of day")
	ErrClockDrift    = errors.New("client clock drifts too much")
	ErrClientTime    = errors.New("client time is not 2:22")
)
