// Package clouds builds the scrolling translucent cloud layer drawn over the
// island. Two alpha masks are laid side by side and scrolled horizontally so
// the layer loops without a seam.
package clouds

import (
	"math"
	"strconv"

	"islandfire/internal/core"
	"islandfire/pkg/noise"
)

// Config controls cloud synthesis and scrolling.
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	Noise        noise.Params `yaml:"noise"`
	NoiseDivisor float32      `yaml:"noise_divisor"`
	Exponent     float32      `yaml:"exponent"`
	AlphaScale   float32      `yaml:"alpha_scale"`
	ScrollSpeed  float64      `yaml:"scroll_speed"`
	Workers      int          `yaml:"workers"`
	Backend      string       `yaml:"backend"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:        1280,
		Height:       720,
		Noise:        noise.NewParams(6, 2, 0.5, 0),
		NoiseDivisor: 2,
		Exponent:     8,
		AlphaScale:   150,
		ScrollSpeed:  70,
		Workers:      core.DefaultWorkers,
		Backend:      "gradient",
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	c.Apply(cfg)
	return c
}

// Apply overlays flag-style key/value pairs onto c.
func (c *Config) Apply(cfg map[string]string) {
	if cfg == nil {
		return
	}
	if v, ok := cfg["cloud_w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["cloud_h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["cloud_octaves"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Noise.SetOctaves(parsed)
		}
	}
	if v, ok := cfg["cloud_range"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Noise.SetInputRange(parsed)
		}
	}
	if v, ok := cfg["cloud_persistence"]; ok {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil {
			c.Noise.SetPersistence(float32(parsed))
		}
	}
	if v, ok := cfg["cloud_seed"]; ok {
		if parsed, err := strconv.ParseUint(v, 10, 32); err == nil {
			c.Noise.SetSeed(uint32(parsed))
		}
	}
	if v, ok := cfg["cloud_speed"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.ScrollSpeed = parsed
		}
	}
	if v, ok := cfg["cloud_backend"]; ok && v != "" {
		c.Backend = v
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Workers = parsed
		}
	}
}

// Overlay owns two width*height alpha masks and the scroll offset.
type Overlay struct {
	cfg   Config
	field noise.Field

	params noise.Params
	seedB  uint32
	maskA  []uint8
	maskB  []uint8
	offset float64

	// version changes whenever the mask contents do.
	version uint64
}

// New allocates an overlay. Masks stay transparent until Generate runs.
func New(cfg Config) *Overlay {
	if cfg.Width <= 0 {
		cfg.Width = 1
	}
	if cfg.Height <= 0 {
		cfg.Height = 1
	}
	if cfg.NoiseDivisor <= 0 {
		cfg.NoiseDivisor = 1
	}
	cfg.Noise.Clamp()
	n := cfg.Width * cfg.Height
	return &Overlay{
		cfg:    cfg,
		field:  noise.FieldByName(cfg.Backend),
		params: cfg.Noise,
		maskA:  make([]uint8, n),
		maskB:  make([]uint8, n),
	}
}

// Config returns the overlay configuration.
func (o *Overlay) Config() Config { return o.cfg }

// Params exposes the cloud noise layer for tuning.
func (o *Overlay) Params() *noise.Params { return &o.params }

// RandomizeSeed draws a new seed for the first mask.
func (o *Overlay) RandomizeSeed(r core.Random) { o.params.SetSeed(uint32(r.Uint64())) }

// SetWorkers changes the size of the synthesis pool.
func (o *Overlay) SetWorkers(n int) {
	if n <= 0 {
		n = core.DefaultWorkers
	}
	o.cfg.Workers = n
}

// Generate rebuilds both masks. The first uses the overlay's own seed, the
// second a seed drawn from r. A nil r uses a wall-clock seeded source.
func (o *Overlay) Generate(r core.Random) {
	if r == nil {
		r = core.NewRNG(0)
	}
	o.seedB = uint32(r.Uint64())
	o.fill(o.maskA, o.params)
	b := o.params
	b.Seed = o.seedB
	o.fill(o.maskB, b)
	o.version++
}

func (o *Overlay) fill(mask []uint8, p noise.Params) {
	w, h := o.cfg.Width, o.cfg.Height
	core.Partition(mask, o.cfg.Workers, func(base int, chunk []uint8) {
		for i := range chunk {
			idx := base + i
			chunk[i] = o.alpha(idx%w, idx/w, w, h, p)
		}
	})
}

func (o *Overlay) alpha(x, y, w, h int, p noise.Params) uint8 {
	fx, fy := float64(x), float64(y)
	fw, fh := float64(w), float64(h)
	n := o.field.Octave(float32(x), float32(y), float32(fw)/o.cfg.NoiseDivisor, float32(fh)/o.cfg.NoiseDivisor, p)
	window := math.Sin(math.Pi*fy/fh) * math.Sin(math.Pi*fx/fw)
	if window <= 0 {
		return 0
	}
	v := float64(n) * math.Pow(window, float64(o.cfg.Exponent)) * float64(o.cfg.AlphaScale)
	return uint8(min(max(v, 0), 255))
}

// Advance scrolls the layer. The offset snaps back to zero once it passes
// the layer width.
func (o *Overlay) Advance(dt float64) {
	o.offset += dt * o.cfg.ScrollSpeed
	if o.offset > float64(o.cfg.Width) {
		o.offset = 0
	}
}

// Offset returns the current scroll offset.
func (o *Overlay) Offset() float64 { return o.offset }

// Offsets returns the horizontal draw positions of mask A and mask B.
func (o *Overlay) Offsets() (a, b int) {
	a = int(o.offset)
	return a, a - o.cfg.Width
}

// AlphaAt samples the scrolled layer at layer coordinates (x, y).
func (o *Overlay) AlphaAt(x, y int) uint8 {
	w, h := o.cfg.Width, o.cfg.Height
	if x < 0 || y < 0 || x >= w || y >= h {
		return 0
	}
	a, b := o.Offsets()
	if x >= a {
		return o.maskA[y*w+x-a]
	}
	return o.maskB[y*w+x-b]
}

// MaskA returns the first alpha mask.
func (o *Overlay) MaskA() []uint8 { return o.maskA }

// MaskB returns the second alpha mask.
func (o *Overlay) MaskB() []uint8 { return o.maskB }

// SeedB returns the seed drawn for the second mask.
func (o *Overlay) SeedB() uint32 { return o.seedB }

// Size returns the layer dimensions.
func (o *Overlay) Size() core.Size { return core.Size{W: o.cfg.Width, H: o.cfg.Height} }

// Reset clears both masks and the scroll offset.
func (o *Overlay) Reset() {
	clear(o.maskA)
	clear(o.maskB)
	o.offset = 0
	o.seedB = 0
	o.version++
}

// Version identifies the current mask contents. It changes on every
// Generate and Reset.
func (o *Overlay) Version() uint64 { return o.version }

// Coverage returns the mean alpha of mask A in [0, 1].
func (o *Overlay) Coverage() float64 {
	if len(o.maskA) == 0 {
		return 0
	}
	sum := 0
	for _, a := range o.maskA {
		sum += int(a)
	}
	return float64(sum) / float64(255*len(o.maskA))
}
