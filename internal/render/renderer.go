//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"islandfire/internal/core"
	"islandfire/internal/sims/clouds"
)

// GridPainter uploads tile colors into a single image and draws it scaled to
// the tile footprint.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the provided cells into the painter image and draws it.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []core.Color, scaleX, scaleY float64) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillTileRGBA(gp.buf, cells)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scaleX, scaleY)
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }

// CloudPainter holds one image per cloud mask and draws them at the
// overlay's scroll offsets.
type CloudPainter struct {
	a, b *ebiten.Image
	buf  []byte
}

// NewCloudPainter allocates images matching the overlay size.
func NewCloudPainter(o *clouds.Overlay) *CloudPainter {
	size := o.Size()
	return &CloudPainter{
		a:   ebiten.NewImage(size.W, size.H),
		b:   ebiten.NewImage(size.W, size.H),
		buf: make([]byte, 4*size.W*size.H),
	}
}

// Upload copies both masks to the GPU. Call it after every Generate.
func (cp *CloudPainter) Upload(o *clouds.Overlay) {
	fillCloudRGBA(cp.buf, o.MaskA())
	cp.a.WritePixels(cp.buf)
	fillCloudRGBA(cp.buf, o.MaskB())
	cp.b.WritePixels(cp.buf)
}

// Draw renders both masks side by side at the current scroll offsets.
func (cp *CloudPainter) Draw(dst *ebiten.Image, o *clouds.Overlay) {
	a, b := o.Offsets()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(a), 0)
	dst.DrawImage(cp.a, op)

	op = &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(b), 0)
	dst.DrawImage(cp.b, op)
}
