// Package render turns tile colors and cloud masks into RGBA pixel buffers
// for display sinks and image files.
package render

import (
	"image"

	"islandfire/internal/core"
	"islandfire/internal/sims/clouds"
)

// Frame is a premultiplied RGBA buffer. Pixel (x, y) starts at
// y*Stride + x*4.
type Frame struct {
	Pix    []byte
	W, H   int
	Stride int
}

// NewFrame allocates a tightly packed w*h frame.
func NewFrame(w, h int) Frame {
	w, h = max(w, 0), max(h, 0)
	return Frame{Pix: make([]byte, 4*w*h), W: w, H: h, Stride: 4 * w}
}

// Image wraps the frame without copying.
func (f Frame) Image() *image.RGBA {
	return &image.RGBA{Pix: f.Pix, Stride: f.Stride, Rect: image.Rect(0, 0, f.W, f.H)}
}

// Sink receives finished frames. Implementations must not retain f.Pix
// beyond the call.
type Sink interface {
	Present(f Frame) error
}

// putColor writes c premultiplied at byte offset off.
func putColor(buf []byte, off int, c core.Color) {
	r, g, b, a := c.Channels()
	if a != 0xff {
		r = uint8(uint16(r) * uint16(a) / 0xff)
		g = uint8(uint16(g) * uint16(a) / 0xff)
		b = uint8(uint16(b) * uint16(a) / 0xff)
	}
	buf[off+0] = r
	buf[off+1] = g
	buf[off+2] = b
	buf[off+3] = a
}

// fillTileRGBA converts one tile per pixel into buf.
func fillTileRGBA(buf []byte, cells []core.Color) {
	for i, c := range cells {
		putColor(buf, i*4, c)
	}
}

// fillCloudRGBA converts an alpha mask into premultiplied white pixels.
func fillCloudRGBA(buf []byte, mask []uint8) {
	for i, a := range mask {
		base := i * 4
		buf[base+0] = a
		buf[base+1] = a
		buf[base+2] = a
		buf[base+3] = a
	}
}

// TileFrame renders one pixel per tile.
func TileFrame(grid *core.TileGrid) Frame {
	f := NewFrame(grid.W, grid.H)
	fillTileRGBA(f.Pix, grid.Cells())
	return f
}

// RasterizeGrid renders the grid at its display extent, each tile covering
// its TileW x TileH footprint.
func RasterizeGrid(grid *core.TileGrid) Frame {
	f := NewFrame(grid.W*grid.TileW, grid.H*grid.TileH)
	cells := grid.Cells()
	for y := 0; y < f.H; y++ {
		row := (y / grid.TileH) * grid.W
		for x := 0; x < f.W; x++ {
			putColor(f.Pix, y*f.Stride+x*4, cells[row+x/grid.TileW])
		}
	}
	return f
}

// BlendClouds lays the scrolled cloud layer over f as white at the sampled
// alpha. Pixels outside the overlay are left alone.
func BlendClouds(f Frame, o *clouds.Overlay) {
	if o == nil {
		return
	}
	size := o.Size()
	w, h := min(f.W, size.W), min(f.H, size.H)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a := uint16(o.AlphaAt(x, y))
			if a == 0 {
				continue
			}
			off := y*f.Stride + x*4
			for c := 0; c < 3; c++ {
				v := uint16(f.Pix[off+c])
				f.Pix[off+c] = uint8(v + (0xff-v)*a/0xff)
			}
			pa := uint16(f.Pix[off+3])
			f.Pix[off+3] = uint8(pa + (0xff-pa)*a/0xff)
		}
	}
}
