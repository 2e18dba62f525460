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

// Command makeacat serves randomly drawn cats, but only at 2:22.
//
// With -out, a single cat is written to a PNG file instead.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"seehuhn.de/go/makeacat"
	"seehuhn.de/go/makeacat/scene"
	"seehuhn.de/go/makeacat/server"
)

func main() {
	addr := flag.String("addr", "127.0.0.1:1474", "address to listen on")
	free := flag.String("free", "", "path which gives out cats at any time (disabled if empty)")
	out := flag.String("out", "", "write one cat to this PNG file and exit")
	rotation := flag.String("rotation", scene.RotationTriangular.String(),
		"distribution of the cat angle: triangular or uniform")
	var level slog.Level
	flag.TextVar(&level, "log-level", slog.LevelInfo, "minimum log level (debug, info, warn, error)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	makeacat.SetLogger(logger)

	rot, err := scene.ParseRotation(*rotation)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	r := makeacat.New(makeacat.WithRotation(rot))

	if *out != "" {
		if err := writeCat(r, *out); err != nil {
			logger.Error("cannot write cat", "file", *out, "error", err)
			os.Exit(1)
		}
		return
	}

	h := server.New(server.Config{
		Renderer:    r,
		FreeCatPath: *free,
		Logger:      logger,
	})
	if err := serve(*addr, h, logger); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func writeCat(r *makeacat.Renderer, fname string) error {
	data := r.Creature()
	if len(data) == 0 {
		return errors.New("encoding failed")
	}
	return os.WriteFile(fname, data, 0o644)
}

// serve runs the HTTP server until SIGINT or SIGTERM is received.
func serve(addr string, h http.Handler, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	srv := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}
	logger.Info("unfortunately we are listening", "addr", ln.Addr().String())

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
