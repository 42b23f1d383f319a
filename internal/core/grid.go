package core

import (
	"image"
	"log/slog"
)

// NoTile marks an absent neighbor. Every valid index, including 0, is >= 0.
const NoTile = -1

// Neighborhood holds the left, right, up and down neighbors of a tile in that
// order. Missing neighbors are NoTile.
type Neighborhood [4]int

// Count returns the number of present neighbors.
func (n Neighborhood) Count() int {
	c := 0
	for _, i := range n {
		if i != NoTile {
			c++
		}
	}
	return c
}

// Each calls fn for every present neighbor in left, right, up, down order.
func (n Neighborhood) Each(fn func(i int)) {
	for _, i := range n {
		if i != NoTile {
			fn(i)
		}
	}
}

// TileGrid stores a 2D grid of tile colors in row-major order. Tiles also have
// a fixed on-screen footprint of TileW x TileH display units.
type TileGrid struct {
	W, H         int
	TileW, TileH int
	data         []Color
}

// NewTileGrid allocates a w*h grid laid out over an extentW x extentH display
// area. Bad dimensions are coerced to 1.
func NewTileGrid(w, h, extentW, extentH int) *TileGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	g := &TileGrid{W: w, H: h, TileW: extentW / w, TileH: extentH / h, data: make([]Color, w*h)}
	if g.TileW < 1 || g.TileH < 1 {
		slog.Warn("tile grid extent smaller than grid, clamping tile size",
			"w", w, "h", h, "extent_w", extentW, "extent_h", extentH)
		g.TileW = max(g.TileW, 1)
		g.TileH = max(g.TileH, 1)
	}
	g.Reset()
	return g
}

// Len returns the tile count.
func (g *TileGrid) Len() int { return len(g.data) }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *TileGrid) Cells() []Color { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *TileGrid) Index(x, y int) int { return y*g.W + x }

// Coords is the inverse of Index.
func (g *TileGrid) Coords(i int) (x, y int) { return i % g.W, i / g.W }

// InBounds reports whether i addresses a tile.
func (g *TileGrid) InBounds(i int) bool { return i >= 0 && i < len(g.data) }

// At returns the color at i. Out of range indices yield DefaultColor.
func (g *TileGrid) At(i int) (Color, bool) {
	if !g.InBounds(i) {
		return DefaultColor, false
	}
	return g.data[i], true
}

// Set writes c at i; out of range writes are dropped.
func (g *TileGrid) Set(i int, c Color) {
	if g.InBounds(i) {
		g.data[i] = c
	}
}

// Position returns the display coordinates of the tile's top-left corner.
func (g *TileGrid) Position(i int) (px, py int) {
	if !g.InBounds(i) {
		return 0, 0
	}
	x, y := g.Coords(i)
	return x * g.TileW, y * g.TileH
}

// IndexAt maps display coordinates back to a tile index.
func (g *TileGrid) IndexAt(px, py int) (int, bool) {
	if px < 0 || py < 0 {
		return NoTile, false
	}
	x, y := px/g.TileW, py/g.TileH
	if x >= g.W || y >= g.H {
		return NoTile, false
	}
	return g.Index(x, y), true
}

// Neighbors returns the four-connected neighbors of i. An out of range i has
// no neighbors.
func (g *TileGrid) Neighbors(i int) Neighborhood {
	n := Neighborhood{NoTile, NoTile, NoTile, NoTile}
	if !g.InBounds(i) {
		return n
	}
	x, y := g.Coords(i)
	if x > 0 {
		n[0] = i - 1
	}
	if x < g.W-1 {
		n[1] = i + 1
	}
	if y > 0 {
		n[2] = i - g.W
	}
	if y < g.H-1 {
		n[3] = i + g.W
	}
	return n
}

// TilesInArea returns every tile whose footprint overlaps the display-space
// rectangle r, in index order.
func (g *TileGrid) TilesInArea(r image.Rectangle) []int {
	r = r.Canon().Intersect(image.Rect(0, 0, g.W*g.TileW, g.H*g.TileH))
	if r.Empty() {
		return nil
	}
	x0, y0 := r.Min.X/g.TileW, r.Min.Y/g.TileH
	x1, y1 := (r.Max.X-1)/g.TileW, (r.Max.Y-1)/g.TileH
	out := make([]int, 0, (x1-x0+1)*(y1-y0+1))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			out = append(out, g.Index(x, y))
		}
	}
	return out
}

// TilesOfColorInArea filters TilesInArea down to tiles holding c.
func (g *TileGrid) TilesOfColorInArea(r image.Rectangle, c Color) []int {
	tiles := g.TilesInArea(r)
	out := tiles[:0]
	for _, i := range tiles {
		if g.data[i] == c {
			out = append(out, i)
		}
	}
	return out
}

// CountColor returns how many tiles hold c.
func (g *TileGrid) CountColor(c Color) int {
	n := 0
	for _, v := range g.data {
		if v == c {
			n++
		}
	}
	return n
}

// Fill sets every tile to c.
func (g *TileGrid) Fill(c Color) {
	for i := range g.data {
		g.data[i] = c
	}
}

// Reset fills the grid with DefaultColor.
func (g *TileGrid) Reset() { g.Fill(DefaultColor) }
