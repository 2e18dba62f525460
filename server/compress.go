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

package server

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// CompressionMethod is a content coding for HTTP responses.
type CompressionMethod interface {
	// Name is the token used in Accept-Encoding and Content-Encoding.
	Name() string

	// Writer sets the Content-Encoding header and returns a writer which
	// compresses into w.
	Writer(w http.ResponseWriter) (FlusherWriter, error)
}

// FlusherWriter is a compressing writer.  Close must be called to write
// the end of the stream.
type FlusherWriter interface {
	io.Writer
	Flush() error
	Close() error
}

// ZstdCompression compresses using Zstandard.
type ZstdCompression struct{}

func (ZstdCompression) Name() string { return "zstd" }

func (ZstdCompression) Writer(w http.ResponseWriter) (FlusherWriter, error) {
	zw, err := zstd.NewWriter(w, zstd.WithEncoderConcurrency(1))
	if err != nil {
		return nil, err
	}
	w.Header().Set("Content-Encoding", "zstd")
	return zw, nil
}

// GzipCompression compresses using gzip.
type GzipCompression struct{}

func (GzipCompression) Name() string { return "gzip" }

func (GzipCompression) Writer(w http.ResponseWriter) (FlusherWriter, error) {
	gz, err := gzip.NewWriterLevel(w, gzip.DefaultCompression)
	if err != nil {
		return nil, err
	}
	w.Header().Set("Content-Encoding", "gzip")
	hf, _ := w.(http.Flusher)
	return &gzipFlusherWriter{gz: gz, hf: hf}, nil
}

type gzipFlusherWriter struct {
	gz *gzip.Writer
	hf http.Flusher
}

func (g *gzipFlusherWriter) Write(p []byte) (int, error) {
	return g.gz.Write(p)
}

func (g *gzipFlusherWriter) Flush() error {
	if err := g.gz.Flush(); err != nil {
		return err
	}
	if g.hf != nil {
		g.hf.Flush()
	}
	return nil
}

func (g *gzipFlusherWriter) Close() error {
	return g.gz.Close()
}

// DefaultCompression lists the supported codings, most preferred first.
var DefaultCompression = []CompressionMethod{ZstdCompression{}, GzipCompression{}}

// Negotiate picks the coding for a response, given the Accept-Encoding
// header of the request.  Codings with a higher quality value win; among
// equal ones the order of methods decides.  The result is nil if the
// response should not be compressed.
func Negotiate(acceptEncoding string, methods []CompressionMethod) CompressionMethod {
	q := map[string]float64{}
	for _, part := range strings.Split(acceptEncoding, ",") {
		name, params, _ := strings.Cut(part, ";")
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		weight := 1.0
		for _, p := range strings.Split(params, ";") {
			k, v, ok := strings.Cut(strings.TrimSpace(p), "=")
			if !ok || strings.TrimSpace(k) != "q" {
				continue
			}
			if x, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
				weight = x
			}
		}
		q[name] = weight
	}

	var best CompressionMethod
	bestQ := 0.0
	for _, m := range methods {
		w, ok := q[m.Name()]
		if !ok {
			w, ok = q["*"]
		}
		if ok && w > bestQ {
			best, bestQ = m, w
		}
	}
	return best
}
