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

// Package server serves cats over HTTP.
//
// The start page runs a small script in the browser which, at 2:22 local
// time, requests /cat with the client clock and time zone offset.  At any
// other time, and whenever the report does not check out, the "come back
// later" image is sent instead.
package server

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"

	"seehuhn.de/go/makeacat"
	"seehuhn.de/go/makeacat/timegate"
)

// Config holds the settings of the HTTP handler.
type Config struct {
	// Renderer draws the images.  If nil, makeacat.New() is used.
	Renderer *makeacat.Renderer

	// Gate checks the cat requests.  If nil, a gate using the real clock
	// and Logger is used.
	Gate *timegate.Gate

	// FreeCatPath, if set, is a path where a cat can be had at any time.
	FreeCatPath string

	// Compression lists the codings for the start page, most preferred
	// first.  If nil, DefaultCompression is used.
	Compression []CompressionMethod

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

type server struct {
	renderer    *makeacat.Renderer
	gate        *timegate.Gate
	compression []CompressionMethod
	logger      *slog.Logger
}

// New returns a handler for all routes.
func New(cfg Config) http.Handler {
	s := &server{
		renderer:    cfg.Renderer,
		gate:        cfg.Gate,
		compression: cfg.Compression,
		logger:      cfg.Logger,
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.renderer == nil {
		s.renderer = makeacat.New()
	}
	if s.gate == nil {
		s.gate = &timegate.Gate{Logger: s.logger}
	}
	if s.compression == nil {
		s.compression = DefaultCompression
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.index)
	mux.HandleFunc("GET /cat", s.cat)
	mux.HandleFunc("GET /torna", s.torna)
	if p := cfg.FreeCatPath; p != "" {
		if !strings.HasPrefix(p, "/") {
			p = "/" + p
		}
		mux.HandleFunc("GET "+p, s.freeCat)
	}
	return mux
}

func (s *server) now() time.Time {
	if s.gate.Now != nil {
		return s.gate.Now()
	}
	return time.Now()
}

func (s *server) cat(w http.ResponseWriter, r *http.Request) {
	if s.gate.Allow(r.URL.RawQuery) {
		s.creature(w)
	} else {
		s.unavailable(w, r)
	}
}

func (s *server) torna(w http.ResponseWriter, r *http.Request) {
	s.unavailable(w, r)
}

func (s *server) freeCat(w http.ResponseWriter, r *http.Request) {
	s.logger.Warn("Free cat endpoint was hit - giving away a free cat!")
	s.creature(w)
}

func (s *server) creature(w http.ResponseWriter) {
	start := time.Now()
	data := s.renderer.Creature()
	s.logger.Info("Made cat", slog.Duration("elapsed", time.Since(start)))
	writePNG(w, data)
}

func (s *server) unavailable(w http.ResponseWriter, r *http.Request) {
	// malformed headers give no preferences
	prefs, _, _ := language.ParseAcceptLanguage(r.Header.Get("Accept-Language"))
	writePNG(w, s.renderer.Unavailable(prefs...))
}

func writePNG(w http.ResponseWriter, data []byte) {
	h := w.Header()
	h.Set("Content-Type", "image/png")
	h.Set("Cache-Control", "no-store")
	h.Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
