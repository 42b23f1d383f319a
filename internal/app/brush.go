package app

import "image"

// BrushSize is the side of the square put out by a left click, in world
// pixels.
const BrushSize = 48

// BrushArea returns the BrushSize square centered on world pixel (x, y).
func BrushArea(x, y int) image.Rectangle {
	half := BrushSize / 2
	return image.Rect(x-half, y-half, x-half+BrushSize, y-half+BrushSize)
}
