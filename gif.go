package main

import (
	"bufio"
	"compress/lzw"
	"errors"
	"fmt"
	"image"
	"image/color/palette"
	"io"
	"os"

	xdraw "golang.org/x/image/draw"
)

const (
	gifExtension      = 0x21
	gifImageSeparator = 0x2c
	gifTrailer        = 0x3b
	gifAppExtLabel    = 0xff
	gifControlLabel   = 0xf9
	gifLitWidth       = 8
)

var errGIFClosed = errors.New("gif: writer closed")

// gifWriter streams an animated GIF89a to a file one frame at a time. Only
// the frame being appended is held in memory.
type gifWriter struct {
	f      *os.File
	w      *bufio.Writer
	width  int
	height int
	frames int
	closed bool
}

// createGIF writes the header, the logical screen and, when loop is true,
// the loop-forever application extension.
func createGIF(path string, width, height int, loop bool) (*gifWriter, error) {
	if width <= 0 || height <= 0 || width > 0xffff || height > 0xffff {
		return nil, fmt.Errorf("gif: invalid size %dx%d", width, height)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	g := &gifWriter{f: f, w: bufio.NewWriter(f), width: width, height: height}

	g.w.WriteString("GIF89a")
	g.writeUint16(width)
	g.writeUint16(height)
	// No global color table; every frame carries its own.
	g.w.Write([]byte{0x00, 0x00, 0x00})
	if loop {
		g.w.Write([]byte{gifExtension, gifAppExtLabel, 0x0b})
		g.w.WriteString("NETSCAPE2.0")
		g.w.Write([]byte{0x03, 0x01, 0x00, 0x00, 0x00})
	}
	if err := g.w.Flush(); err != nil {
		f.Close()
		os.Remove(path)
		return nil, err
	}
	return g, nil
}

func (g *gifWriter) writeUint16(v int) {
	g.w.WriteByte(byte(v))
	g.w.WriteByte(byte(v >> 8))
}

// AddFrame quantizes img to a 256 color palette and appends it with the
// given delay in hundredths of a second.
func (g *gifWriter) AddFrame(img image.Image, delay int) error {
	if g.closed {
		return errGIFClosed
	}
	bounds := image.Rect(0, 0, g.width, g.height)
	pm := image.NewPaletted(bounds, palette.Plan9)
	xdraw.FloydSteinberg.Draw(pm, bounds, img, img.Bounds().Min)

	delay = min(max(delay, 0), 0xffff)
	g.w.Write([]byte{gifExtension, gifControlLabel, 0x04, 0x00, byte(delay), byte(delay >> 8), 0x00, 0x00})

	g.w.WriteByte(gifImageSeparator)
	g.writeUint16(0)
	g.writeUint16(0)
	g.writeUint16(g.width)
	g.writeUint16(g.height)
	// Local color table flag, 2^(7+1) entries.
	g.w.WriteByte(0x80 | 0x07)
	for _, c := range pm.Palette {
		r, gr, b, _ := c.RGBA()
		g.w.Write([]byte{byte(r >> 8), byte(gr >> 8), byte(b >> 8)})
	}
	for i := len(pm.Palette); i < 256; i++ {
		g.w.Write([]byte{0, 0, 0})
	}

	g.w.WriteByte(gifLitWidth)
	bw := &blockWriter{w: g.w}
	lw := lzw.NewWriter(bw, lzw.LSB, gifLitWidth)
	for y := 0; y < g.height; y++ {
		row := pm.Pix[y*pm.Stride : y*pm.Stride+g.width]
		if _, err := lw.Write(row); err != nil {
			lw.Close()
			return err
		}
	}
	if err := lw.Close(); err != nil {
		return err
	}
	if err := bw.close(); err != nil {
		return err
	}
	g.frames++
	return g.w.Flush()
}

func (g *gifWriter) Frames() int {
	return g.frames
}

// Close writes the trailer and closes the file.
func (g *gifWriter) Close() error {
	if g.closed {
		return errGIFClosed
	}
	g.closed = true
	g.w.WriteByte(gifTrailer)
	if err := g.w.Flush(); err != nil {
		g.f.Close()
		return err
	}
	return g.f.Close()
}

// abort closes the file without finishing it.
func (g *gifWriter) abort() {
	if g.closed {
		return
	}
	g.closed = true
	g.f.Close()
}

// blockWriter splits image data into length-prefixed sub-blocks of at most
// 255 bytes.
type blockWriter struct {
	w   io.Writer
	buf [256]byte
	n   int
	err error
}

func (b *blockWriter) Write(p []byte) (int, error) {
	for i, c := range p {
		if b.err != nil {
			return i, b.err
		}
		b.n++
		b.buf[b.n] = c
		if b.n == 255 {
			b.flush()
		}
	}
	return len(p), b.err
}

func (b *blockWriter) flush() {
	if b.n == 0 || b.err != nil {
		return
	}
	b.buf[0] = byte(b.n)
	_, b.err = b.w.Write(b.buf[:b.n+1])
	b.n = 0
}

func (b *blockWriter) close() error {
	b.flush()
	if b.err != nil {
		return b.err
	}
	_, b.err = b.w.Write([]byte{0x00})
	return b.err
}

// gifDelay converts a frame rate to a GIF delay in hundredths of a second.
func gifDelay(fps int) int {
	if fps <= 0 {
		return 0
	}
	d := (100 + fps/2) / fps
	return max(d, 1)
}
