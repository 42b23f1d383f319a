//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"islandfire/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type fireMaskProvider interface {
	FireMask() []float32
}

type heightFieldProvider interface {
	HeightField() []float32
}

// Overlay draws optional debugging layers over the tile map. Digit 1 toggles
// the fire intensity mask, digit 2 the shaded height field.
type Overlay struct {
	sim        core.Sim
	scaleX     float64
	scaleY     float64
	showFire   bool
	showHeight bool

	maskImg *ebiten.Image
	maskBuf []byte

	heightImg *ebiten.Image
	heightBuf []byte
}

// NewOverlay constructs an overlay that draws each tile scaleX by scaleY
// pixels.
func NewOverlay(sim core.Sim, scaleX, scaleY float64) *Overlay {
	return &Overlay{sim: sim, scaleX: max(scaleX, 1), scaleY: max(scaleY, 1)}
}

// Update toggles layers on key presses.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showFire = !o.showFire
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showHeight = !o.showHeight
	}
}

// Draw renders the enabled layers onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.sim.Size()
	total := size.W * size.H
	if total <= 0 {
		return
	}
	if o.showHeight {
		if provider, ok := o.sim.(heightFieldProvider); ok {
			o.heightImg, o.heightBuf = ensureLayer(o.heightImg, o.heightBuf, size)
			shadeHeight(o.heightBuf, provider.HeightField(), size)
			o.present(screen, o.heightImg, o.heightBuf)
		}
	}
	if o.showFire {
		if provider, ok := o.sim.(fireMaskProvider); ok {
			o.maskImg, o.maskBuf = ensureLayer(o.maskImg, o.maskBuf, size)
			tintMask(o.maskBuf, provider.FireMask(), color.RGBA{R: 255, G: 120, B: 40})
			o.present(screen, o.maskImg, o.maskBuf)
		}
	}
}

func (o *Overlay) present(screen, img *ebiten.Image, buf []byte) {
	img.WritePixels(buf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(o.scaleX, o.scaleY)
	screen.DrawImage(img, op)
}

func ensureLayer(img *ebiten.Image, buf []byte, size core.Size) (*ebiten.Image, []byte) {
	if img == nil || img.Bounds().Dx() != size.W || img.Bounds().Dy() != size.H {
		img = ebiten.NewImage(size.W, size.H)
	}
	if len(buf) != 4*size.W*size.H {
		buf = make([]byte, 4*size.W*size.H)
	}
	return img, buf
}

// tintMask writes premultiplied RGBA for intensities in [0, 1]. A mask of
// the wrong length clears the layer.
func tintMask(buf []byte, mask []float32, tint color.RGBA) {
	const (
		maxAlpha      = 140.0
		glowBase      = 0.35
		glowRange     = 0.65
		intensityBias = 0.75
	)
	clear(buf)
	if len(mask)*4 != len(buf) {
		return
	}
	for i, v := range mask {
		intensity := clamp01(float64(v))
		if intensity == 0 {
			continue
		}
		alpha := math.Round(maxAlpha * math.Pow(intensity, intensityBias))
		glow := (glowBase + glowRange*math.Sqrt(intensity)) * alpha / 255
		base := i * 4
		buf[base+0] = scaleComponent(tint.R, glow)
		buf[base+1] = scaleComponent(tint.G, glow)
		buf[base+2] = scaleComponent(tint.B, glow)
		buf[base+3] = uint8(alpha)
	}
}

// shadeHeight colors a [0, 1] height field and fades flat areas so steep
// slopes stand out.
func shadeHeight(buf []byte, field []float32, size core.Size) {
	clear(buf)
	if len(field) != size.W*size.H {
		return
	}
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			idx := y*size.W + x
			h := float64(field[idx])
			slope := 0.0
			if x > 0 {
				slope = max(slope, math.Abs(h-float64(field[idx-1])))
			}
			if x+1 < size.W {
				slope = max(slope, math.Abs(h-float64(field[idx+1])))
			}
			if y > 0 {
				slope = max(slope, math.Abs(h-float64(field[idx-size.W])))
			}
			if y+1 < size.H {
				slope = max(slope, math.Abs(h-float64(field[idx+size.W])))
			}
			col := elevationColor(h)
			a := float64(col.A) * (0.55 + 0.45*clamp01(slope*slopeGain))
			f := a / 255
			base := idx * 4
			buf[base+0] = scaleComponent(col.R, f)
			buf[base+1] = scaleComponent(col.G, f)
			buf[base+2] = scaleComponent(col.B, f)
			buf[base+3] = uint8(math.Round(a))
		}
	}
}

// slopeGain maps a height step between neighbors onto the full shade range.
const slopeGain = 20

func elevationColor(t float64) color.RGBA {
	t = clamp01(t)
	stops := []struct {
		t   float64
		col color.RGBA
	}{
		{0.0, color.RGBA{R: 40, G: 60, B: 120, A: 150}},
		{0.525, color.RGBA{R: 70, G: 105, B: 160, A: 165}},
		{0.6, color.RGBA{R: 90, G: 150, B: 100, A: 185}},
		{0.775, color.RGBA{R: 190, G: 160, B: 80, A: 205}},
		{1.0, color.RGBA{R: 240, G: 235, B: 215, A: 215}},
	}
	for i := 1; i < len(stops); i++ {
		curr := stops[i]
		if t <= curr.t {
			prev := stops[i-1]
			local := (t - prev.t) / (curr.t - prev.t)
			return lerpRGBA(prev.col, curr.col, local)
		}
	}
	return stops[len(stops)-1].col
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	return color.RGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

func scaleComponent(value uint8, factor float64) uint8 {
	return uint8(math.Round(clamp01(float64(value)*factor/255) * 255))
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
