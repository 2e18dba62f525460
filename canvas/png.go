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

package canvas

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"sync"
)

// Unpremultiply converts premultiplied ARGB pixels into straight-alpha
// RGBA bytes.  dst must hold at least 4·len(pix) bytes.
//
// Color channels are divided by alpha with integer truncation, so that
// (A=128, R=64) becomes R=127.  Fully transparent pixels become all zeros.
func Unpremultiply(pix []uint32, dst []byte) {
	if len(pix) == 0 {
		return
	}
	_ = dst[4*len(pix)-1]
	for i, p := range pix {
		a := p >> 24
		var r, g, b uint32
		if a > 0 {
			r = (p >> 16 & 0xff) * 255 / a
			g = (p >> 8 & 0xff) * 255 / a
			b = (p & 0xff) * 255 / a
		}
		d := dst[4*i : 4*i+4 : 4*i+4]
		d[0] = byte(r)
		d[1] = byte(g)
		d[2] = byte(b)
		d[3] = byte(a)
	}
}

// NRGBA returns a straight-alpha copy of the canvas.
func (c *Canvas) NRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.width, c.height))
	Unpremultiply(c.pix, img.Pix)
	return img
}

// Encoder writes an image in some file format.
// [*png.Encoder] implements this interface.
type Encoder interface {
	Encode(w io.Writer, m image.Image) error
}

// PNGEncoder returns the shared PNG encoder.  It reuses its compression
// buffers between calls and is safe for concurrent use.
var PNGEncoder = sync.OnceValue(func() Encoder {
	return &png.Encoder{
		CompressionLevel: png.DefaultCompression,
		BufferPool:       &bufferPool{},
	}
})

// EncodePNG converts the canvas to straight alpha and encodes it using enc.
// If enc is nil, [PNGEncoder] is used.  The image always has an alpha
// channel, even if every pixel is opaque.
func EncodePNG(c *Canvas, enc Encoder) ([]byte, error) {
	if enc == nil {
		enc = PNGEncoder()
	}
	buf := &bytes.Buffer{}
	if err := enc.Encode(buf, withAlpha{c.NRGBA()}); err != nil {
		return nil, fmt.Errorf("encoding %dx%d canvas: %w", c.width, c.height, err)
	}
	return buf.Bytes(), nil
}

// withAlpha never reports itself as opaque.  image/png writes RGB without
// alpha for opaque images.
type withAlpha struct {
	*image.NRGBA
}

func (withAlpha) Opaque() bool { return false }

// bufferPool implements png.EncoderBufferPool.
type bufferPool struct {
	pool sync.Pool
}

func (p *bufferPool) Get() *png.EncoderBuffer {
	b, _ := p.pool.Get().(*png.EncoderBuffer)
	return b
}

func (p *bufferPool) Put(b *png.EncoderBuffer) {
	p.pool.Put(b)
}
