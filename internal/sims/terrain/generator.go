package terrain

import (
	"time"

	"islandfire/internal/core"
	"islandfire/pkg/noise"
)

// Sample is the intermediate per-tile state before salting.
type Sample struct {
	Height      float32
	Temperature float32
	Moisture    float32
	Biome       core.Color
}

// Stats summarizes one generation run.
type Stats struct {
	Counts   map[core.Color]int
	Tiles    int
	SaltSeed uint32
	Duration time.Duration
}

// Count returns the number of tiles holding c.
func (s Stats) Count(c core.Color) int { return s.Counts[c] }

// Errors returns the number of tiles that failed classification.
func (s Stats) Errors() int { return s.Counts[Error] }

// Land returns the number of tiles above the reef line.
func (s Stats) Land() int { return s.Tiles - s.Counts[Ocean] - s.Counts[Reef] }

// ByName relabels Counts with biome names.
func (s Stats) ByName() map[string]int {
	out := make(map[string]int, len(s.Counts))
	for c, n := range s.Counts {
		out[BiomeName(c)] += n
	}
	return out
}

// Apply runs the salting brackets for c against a uniform roll in [0, 1].
func (s SaltChances) Apply(c core.Color, roll float32) core.Color {
	switch c {
	case Grassland:
		if roll <= s.GrassToRock {
			return Rock
		}
		if roll <= s.GrassToForest {
			return Forest
		}
	case Savanna:
		if roll <= s.SavannaToRock {
			return Rock
		}
		if roll <= s.SavannaToCliff {
			return Cliff
		}
	case Snow:
		if roll <= s.SnowToRock {
			return Rock
		}
		if roll <= s.SnowToCliff {
			return Cliff
		}
	case Desert:
		if roll <= s.DesertToRock {
			return Rock
		}
	case Glacier:
		if roll <= s.GlacierToRock {
			return Rock
		}
	case Swamp:
		if roll <= s.SwampToRock {
			return Rock
		}
	}
	return c
}

// Salt applies the default salting brackets.
func Salt(c core.Color, roll float32) core.Color { return DefaultSaltChances().Apply(c, roll) }

// Generator fills tile grids with islands. The noise pass is parallel; the
// growth passes that follow are sequential and draw from a single Random.
type Generator struct {
	cfg   Config
	field noise.Field
	rng   core.Random

	height   noise.Params
	moisture noise.Params
}

// New returns a Generator seeded from cfg.Seed.
func New(cfg Config) *Generator {
	cfg.Normalize()
	g := &Generator{
		cfg:      cfg,
		field:    noise.FieldByName(cfg.Backend),
		height:   cfg.Height,
		moisture: cfg.Moisture,
	}
	g.Reset(cfg.Seed)
	return g
}

// NewWithRandom returns a Generator that draws from r.
func NewWithRandom(cfg Config, r core.Random) *Generator {
	g := New(cfg)
	if r != nil {
		g.rng = r
	}
	return g
}

// Config returns the generator configuration.
func (g *Generator) Config() Config { return g.cfg }

// Reset restarts the salt and growth draws. A zero seed falls back to the
// configured seed, and a zero configured seed to the wall clock.
func (g *Generator) Reset(seed int64) {
	if seed == 0 {
		seed = g.cfg.Seed
	}
	g.rng = core.NewRNG(uint64(seed))
}

// SetWorkers changes the size of the synthesis pool.
func (g *Generator) SetWorkers(n int) {
	if n <= 0 {
		n = core.DefaultWorkers
	}
	g.cfg.Workers = n
}

// HeightParams exposes the height layer for tuning.
func (g *Generator) HeightParams() *noise.Params { return &g.height }

// MoistureParams exposes the moisture layer for tuning.
func (g *Generator) MoistureParams() *noise.Params { return &g.moisture }

// RandomizeParams draws fresh seeds for both noise layers from r, or from
// the generator's own source when r is nil.
func (g *Generator) RandomizeParams(r core.Random) {
	if r == nil {
		r = g.rng
	}
	g.height.SetSeed(uint32(r.Uint64()))
	g.moisture.SetSeed(uint32(r.Uint64()))
}

// ResetParams restores the configured octaves, ranges and persistence while
// keeping the current seeds.
func (g *Generator) ResetParams() {
	hs, ms := g.height.Seed, g.moisture.Seed
	g.height, g.moisture = g.cfg.Height, g.cfg.Moisture
	g.height.Seed, g.moisture.Seed = hs, ms
}

// Regenerate runs Generate with the generator's own noise layers.
func (g *Generator) Regenerate(grid *core.TileGrid) Stats {
	return g.Generate(grid, g.height, g.moisture)
}

// Generate fills every tile of grid. Output depends only on the grid
// dimensions, the two parameter sets and the generator's Random source.
func (g *Generator) Generate(grid *core.TileGrid, height, moisture noise.Params) Stats {
	if grid == nil {
		return Stats{}
	}
	start := time.Now()
	saltSeed := uint32(g.rng.Uint64())

	w, h := grid.W, grid.H
	core.Partition(grid.Cells(), g.cfg.Workers, func(base int, chunk []core.Color) {
		for i := range chunk {
			idx := base + i
			s := g.Sample(idx%w, idx/w, w, h, height, moisture)
			chunk[i] = g.cfg.Salt.Apply(s.Biome, noise.Uniform1D(int32(idx), saltSeed))
		}
	})

	for i := 0; i < g.cfg.GrowthIterations; i++ {
		g.Grow(grid)
	}

	stats := Stats{Counts: make(map[core.Color]int), Tiles: grid.Len(), SaltSeed: saltSeed}
	for _, c := range grid.Cells() {
		stats.Counts[c]++
	}
	stats.Duration = time.Since(start)
	return stats
}

// Sample computes the unsalted classification of tile (x, y) on a w*h grid.
func (g *Generator) Sample(x, y, w, h int, height, moisture noise.Params) Sample {
	fx, fy := float32(x), float32(y)
	fw, fh := float32(w), float32(h)

	heightNoise := g.field.Octave(fx, fy, fw/g.cfg.HeightNoiseDivisor, fh/g.cfg.HeightNoiseDivisor, height) *
		IslandMask(fx, fy, fw, fh, g.cfg.IslandExponent)
	moistureNoise := g.field.Octave(fx, fy, fw, fh, moisture)
	normal := LatitudeNormal(fy, fh, g.cfg.PoleTemperature, g.cfg.EquatorTemperature, g.cfg.TemperatureFalloff)

	var s Sample
	s.Height = HeightValue(heightNoise)
	s.Temperature = TemperatureValue(normal, s.Height)
	s.Moisture = MoistureValue(moistureNoise, s.Temperature, s.Height)
	s.Biome = Classify(s.Height, s.Temperature, s.Moisture)
	return s
}

// HeightField returns the height of every tile of a w*h grid as a fraction
// of MaxHeight.
func (g *Generator) HeightField(w, h int, height noise.Params) []float32 {
	if w <= 0 || h <= 0 {
		return nil
	}
	out := make([]float32, w*h)
	fw, fh := float32(w), float32(h)
	core.Partition(out, g.cfg.Workers, func(base int, chunk []float32) {
		for i := range chunk {
			idx := base + i
			fx, fy := float32(idx%w), float32(idx/w)
			chunk[i] = g.field.Octave(fx, fy, fw/g.cfg.HeightNoiseDivisor, fh/g.cfg.HeightNoiseDivisor, height) *
				IslandMask(fx, fy, fw, fh, g.cfg.IslandExponent)
		}
	})
	return out
}

// Grow runs one cellular-automata pass in index order. Conversions are
// written in place, so a tile converted earlier in the pass can spread again
// later in the same pass.
func (g *Generator) Grow(grid *core.TileGrid) {
	if grid == nil {
		return
	}
	cells := grid.Cells()
	growth := g.cfg.Growth
	for i, c := range cells {
		switch c {
		case Forest:
			grid.Neighbors(i).Each(func(n int) {
				if g.rng.Float32() > growth.Forest {
					return
				}
				if cells[n] == Grassland || cells[n] == Snow {
					cells[n] = Forest
				}
			})
		case Rock:
			if g.rng.Float32() > growth.Rock {
				continue
			}
			grid.Neighbors(i).Each(func(n int) {
				switch cells[n] {
				case Grassland, Desert, Glacier, Savanna, Swamp, Snow:
					cells[n] = Rock
				}
			})
		case Cliff:
			if g.rng.Float32() > growth.Cliff {
				continue
			}
			grid.Neighbors(i).Each(func(n int) {
				if cells[n] == Savanna {
					cells[n] = Cliff
				}
			})
		}
	}
}
