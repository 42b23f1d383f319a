package app

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBrushArea(t *testing.T) {
	r := BrushArea(100, 50)
	assert.Equal(t, image.Rect(76, 26, 124, 74), r)
	assert.Equal(t, BrushSize, r.Dx())
	assert.Equal(t, BrushSize, r.Dy())
	assert.True(t, image.Pt(100, 50).In(r))
}
