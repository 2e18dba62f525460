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

// Package timegate decides whether it is time to make a cat.
//
// Cats are made at 2:22 (and 14:22) local time.  Clients report their
// clock and their UTC offset, using the JavaScript convention where the
// offset is in minutes and has the opposite sign of the usual notation,
// so that UTC-06:00 is reported as 360.
package timegate

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"
)

// The time of day at which cats can be made.
const (
	Hour   = 2
	Minute = 22
)

const (
	// ClientLeeway is the tolerance at either end of the minute.
	ClientLeeway = 1 * time.Second

	// MaxClockDrift is how far the client clock may be from the server
	// clock.
	MaxClockDrift = 15 * time.Second
)

//go:embed time-zones.txt
var zonesTxt []byte

// ValidOffsets returns the offsets of all time zones in use, in minutes,
// using the JavaScript sign convention.  The slice must not be modified.
var ValidOffsets = sync.OnceValue(func() []int {
	offsets, err := ParseOffsets(zonesTxt)
	if err != nil {
		panic(err)
	}
	return offsets
})

// ParseOffsets reads a list of UTC offsets, one "+HH:MM" or "-HH:MM" per
// line, and converts them into JavaScript offsets.
func ParseOffsets(data []byte) ([]int, error) {
	var offsets []int
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var sign int
		switch line[0] {
		case '+':
			sign = 1
		case '-':
			sign = -1
		default:
			return nil, fmt.Errorf("line %d: invalid sign in %q", lineNo, line)
		}
		hh, mm, ok := strings.Cut(line[1:], ":")
		if !ok {
			return nil, fmt.Errorf("line %d: missing colon in %q", lineNo, line)
		}
		h, err := strconv.Atoi(hh)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		m, err := strconv.Atoi(mm)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		offsets = append(offsets, -sign*(60*h+m))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return offsets, nil
}

// ValidInZone reports whether, at the instant now, the local time in the
// zone with the given offset is within ClientLeeway of the minute
// Hour:Minute (or Hour+12:Minute).
func ValidInZone(now time.Time, offset int) bool {
	local := now.UTC().Add(-time.Duration(offset) * time.Minute)
	limit := 30*time.Second + ClientLeeway
	for _, h := range []int{Hour, Hour + 12} {
		mid := time.Date(local.Year(), local.Month(), local.Day(),
			h, Minute, 30, local.Nanosecond(), time.UTC)
		if d := mid.Sub(local); d <= limit && d >= -limit {
			return true
		}
	}
	return false
}

// OpenAnywhere reports whether it is time to make a cat in at least one
// time zone.
func OpenAnywhere(now time.Time) bool {
	return slices.ContainsFunc(ValidOffsets(), func(offset int) bool {
		return ValidInZone(now, offset)
	})
}

// ParseQuery splits a query of the form "<millis>&<offset>", where millis
// is the client clock in milliseconds since the Unix epoch.
func ParseQuery(raw string) (millis int64, offset int, err error) {
	a, b, ok := strings.Cut(raw, "&")
	if !ok {
		return 0, 0, fmt.Errorf("%q: %w", raw, ErrBadQuery)
	}
	millis, err = strconv.ParseInt(a, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%q: %w", raw, ErrBadQuery)
	}
	offset, err = strconv.Atoi(b)
	if err != nil {
		return 0, 0, fmt.Errorf("%q: %w", raw, ErrBadQuery)
	}
	return millis, offset, nil
}

// Verify checks a client report against the server clock.  The checks are
// made in order: the offset must belong to a time zone, it must be the
// right time there, the client clock must be close to now, and the client
// must itself believe that it is the right time.
func Verify(now time.Time, millis int64, offset int) error {
	if !slices.Contains(ValidOffsets(), offset) {
		return fmt.Errorf("offset %d: %w", offset, ErrUnknownOffset)
	}
	if !ValidInZone(now, offset) {
		return fmt.Errorf("offset %d: %w", offset, ErrClosed)
	}

	// millis comes from the client and may be any int64
	server, limit := now.UnixMilli(), MaxClockDrift.Milliseconds()
	if millis < server-limit || millis > server+limit {
		return fmt.Errorf("client clock %d ms, server clock %d ms: %w",
			millis, server, ErrClockDrift)
	}

	client := time.UnixMilli(millis).UTC().Add(-time.Duration(offset) * time.Minute)
	if client.Hour()%12 != Hour || client.Minute() != Minute {
		return fmt.Errorf("client thinks it is %d:%02d: %w",
			client.Hour(), client.Minute(), ErrClientTime)
	}
	return nil
}
