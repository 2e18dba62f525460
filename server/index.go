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
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"seehuhn.de/go/makeacat/scene"
	"seehuhn.de/go/makeacat/timegate"
)

var indexTmpl = template.Must(template.New("index").Parse(`<!DOCTYPE html>` +
	`<html><head><title>makea.cat</title></head>` +
	`<body style="text-align:center;background-color:{{.Background}}">` +
	`<p>make a cat / fer un gat</p>` +
	`<div style="margin:0 auto;width:400px;height:256px;border:1px solid#000">` +
	`{{if .Open}}<img src="" id="d">{{else}}<img src="/torna">{{end}}</div>` +
	`{{if .Open}}<p id="e">{{.ComeBack}}</p><script>{{.Script}}</script>` +
	`{{else}}<p>{{.ComeBack}}</p>{{end}}` +
	`</body></html>`))

type indexData struct {
	Background template.CSS
	Open       bool
	ComeBack   string
	Script     template.JS
}

// clientScript checks the browser clock.  At the right time it requests a
// cat, passing the client time and time zone offset; otherwise it shows the
// placeholder.
var clientScript = template.JS(fmt.Sprintf(
	"a=new Date();d.src=%[1]d-a.getHours()%%12|%[2]d-a.getMinutes()?\"/torna\":"+
		"(e.textContent=\"%[1]d:%02[2]d make a cat / %[1]d:%02[2]d fer un gat\","+
		"`/cat?${a.getTime()}&`+a.getTimezoneOffset())",
	timegate.Hour, timegate.Minute))

// renderIndex returns the HTML of the start page.  The script is only
// included if it is time to make a cat somewhere.
func renderIndex(now time.Time, src scene.Source) ([]byte, error) {
	bg := scene.RandomColor(src)
	data := indexData{
		Background: template.CSS(fmt.Sprintf("#%02x%02x%02x", bg.R, bg.G, bg.B)),
		Open:       timegate.OpenAnywhere(now),
		ComeBack: fmt.Sprintf("come back at %[1]d:%02[2]d / torna a %[1]d:%02[2]d",
			timegate.Hour, timegate.Minute),
		Script: clientScript,
	}

	buf := &bytes.Buffer{}
	if err := indexTmpl.Execute(buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *server) index(w http.ResponseWriter, r *http.Request) {
	body, err := renderIndex(s.now(), scene.NewSource())
	if err != nil {
		s.logger.Error("cannot render index page", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h := w.Header()
	h.Set("Content-Type", "text/html; charset=utf-8")
	h.Add("Vary", "Accept-Encoding")

	comp := Negotiate(r.Header.Get("Accept-Encoding"), s.compression)
	if comp == nil {
		w.Write(body)
		return
	}
	fw, err := comp.Writer(w)
	if err != nil {
		s.logger.Warn("compression failed", "method", comp.Name(), "error", err)
		w.Write(body)
		return
	}
	if _, err := fw.Write(body); err != nil {
		s.logger.Debug("writing index page", "error", err)
	}
	if err := fw.Close(); err != nil {
		s.logger.Debug("writing index page", "error", err)
	}
}
