package core

import "fmt"

// Color is a tile value packed as 0xRRGGBBAA. Tile colors double as biome and
// fire state identifiers, so equality is the only comparison that matters.
type Color uint32

// DefaultColor is the value a reset grid holds.
const DefaultColor Color = 0xffffffff

// RGBA8 packs four 8-bit channels.
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a))
}

// RGB8 packs an opaque color.
func RGB8(r, g, b uint8) Color { return RGBA8(r, g, b, 0xff) }

// Channels unpacks the color.
func (c Color) Channels() (r, g, b, a uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// RGBA implements image/color.Color with alpha-premultiplied 16-bit channels.
func (c Color) RGBA() (r, g, b, a uint32) {
	r8, g8, b8, a8 := c.Channels()
	a = uint32(a8) * 0x101
	r = uint32(r8) * 0x101 * a / 0xffff
	g = uint32(g8) * 0x101 * a / 0xffff
	b = uint32(b8) * 0x101 * a / 0xffff
	return r, g, b, a
}

func (c Color) String() string { return fmt.Sprintf("#%08x", uint32(c)) }
