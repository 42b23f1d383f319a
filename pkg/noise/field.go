package noise

import (
	"strings"
	"sync"

	"github.com/aquilax/go-perlin"
)

// Field produces multi-octave noise normalized to [0, 1].
type Field interface {
	Octave(x, y, maxX, maxY float32, p Params) float32
}

// GradientField is the hash-gradient backend.
type GradientField struct{}

// Octave delegates to the package-level Octave.
func (GradientField) Octave(x, y, maxX, maxY float32, p Params) float32 {
	return Octave(x, y, maxX, maxY, p)
}

// PerlinField samples classic permutation-table Perlin noise. Generators are
// built lazily per parameter set and shared between goroutines; sampling only
// reads the tables.
type PerlinField struct {
	cache sync.Map // perlinKey -> *perlin.Perlin
}

type perlinKey struct {
	seed        uint32
	octaves     int
	persistence float32
}

// NewPerlinField returns an empty Perlin backend.
func NewPerlinField() *PerlinField { return &PerlinField{} }

// Octave samples the Perlin generator for p at the scaled coordinates.
func (f *PerlinField) Octave(x, y, maxX, maxY float32, p Params) float32 {
	if p.Octaves <= 0 {
		return 0
	}
	if maxX <= 0 {
		maxX = 1
	}
	if maxY <= 0 {
		maxY = 1
	}
	gen := f.generator(p)
	gx := float64(x/maxX) * float64(p.InputRange)
	gy := float64(y/maxY) * float64(p.InputRange)
	v := float32(gen.Noise2D(gx, gy))
	return SmootherStep(Normalize(v, theoreticalMin, theoreticalMax))
}

func (f *PerlinField) generator(p Params) *perlin.Perlin {
	key := perlinKey{seed: p.Seed, octaves: p.Octaves, persistence: p.Persistence}
	if gen, ok := f.cache.Load(key); ok {
		return gen.(*perlin.Perlin)
	}
	// alpha divides the amplitude per octave, so it is the inverse persistence.
	alpha := 2.0
	octaves := int32(p.Octaves)
	if p.Persistence > 0 {
		alpha = 1 / float64(p.Persistence)
	} else {
		octaves = 1
	}
	gen := perlin.NewPerlin(alpha, 2, octaves, int64(p.Seed))
	actual, _ := f.cache.LoadOrStore(key, gen)
	return actual.(*perlin.Perlin)
}

// FieldByName resolves a backend name. Unknown names fall back to the
// gradient backend.
func FieldByName(name string) Field {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "perlin":
		return NewPerlinField()
	default:
		return GradientField{}
	}
}
