// Package island composes terrain generation, wildfire and the cloud layer
// into a single simulation.
package island

import (
	"image"
	"log/slog"

	"islandfire/internal/core"
	"islandfire/internal/metrics"
	"islandfire/internal/sims/clouds"
	"islandfire/internal/sims/fire"
	"islandfire/internal/sims/terrain"
)

// Name is the registry key of the island simulation.
const Name = "island"

// World owns the tile grid and the three layers that act on it. All layers
// draw from one random source so a seed reproduces a whole run.
type World struct {
	cfg Config
	log *slog.Logger
	rec *metrics.Recorder

	rng     *core.RNG
	grid    *core.TileGrid
	terrain *terrain.Generator
	fire    *fire.Simulator
	clouds  *clouds.Overlay

	stats     terrain.Stats
	heights   []float32
	seed      uint64
	exhausted bool
}

// New returns a world with the default configuration.
func New() *World { return NewWithConfig(DefaultConfig()) }

// NewWithConfig allocates a world. The grid stays blank until Reset.
func NewWithConfig(cfg Config) *World {
	cfg.Normalize()
	rng := core.NewRNG(uint64(cfg.Terrain.Seed))
	return &World{
		cfg:     cfg,
		log:     slog.Default(),
		rng:     rng,
		grid:    core.NewTileGrid(cfg.Columns, cfg.Rows, cfg.Width, cfg.Height),
		terrain: terrain.NewWithRandom(cfg.Terrain, rng),
		fire:    fire.New(cfg.Fire, rng),
		clouds:  clouds.New(cfg.Clouds),
	}
}

// SetLogger replaces the logger. A nil logger restores slog.Default.
func (w *World) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	w.log = l
}

// SetRecorder attaches a metrics recorder; nil disables recording.
func (w *World) SetRecorder(r *metrics.Recorder) { w.rec = r }

// Name returns the simulation identifier.
func (w *World) Name() string { return Name }

// Size reports the grid dimensions in tiles.
func (w *World) Size() core.Size { return core.Size{W: w.grid.W, H: w.grid.H} }

// Cells exposes the tile colors in row-major order.
func (w *World) Cells() []core.Color { return w.grid.Cells() }

// Reset builds a new island from seed. A zero seed uses the wall clock.
func (w *World) Reset(seed int64) {
	w.rng.Seed(uint64(seed))
	w.seed = w.rng.SeedValue()
	w.terrain.RandomizeParams(w.rng)
	w.clouds.RandomizeSeed(w.rng)
	w.build()
	w.clouds.Reset()
	w.clouds.Generate(w.rng)
	w.rec.ObserveClouds(w.clouds.Coverage())

	w.log.Info("island generated",
		"seed", w.seed,
		"tiles", w.stats.Tiles,
		"land", w.stats.Land(),
		"flammable", w.fire.MaxFlammable(),
		"burning", w.fire.Pending(),
		"errors", w.stats.Errors(),
		"duration", w.stats.Duration,
	)
}

// Regenerate rebuilds the terrain with the current noise settings and
// restarts the fire. The cloud layer is kept.
func (w *World) Regenerate() {
	w.build()
	w.log.Debug("terrain regenerated", "land", w.stats.Land(), "flammable", w.fire.MaxFlammable())
}

func (w *World) build() {
	w.grid.Reset()
	w.heights = nil
	w.exhausted = false
	w.stats = w.terrain.Regenerate(w.grid)
	w.fire.Start(w.grid)
	w.rec.ObserveGeneration(w.stats.Duration, w.stats.ByName())
	w.observeFire()
	if w.stats.Errors() > 0 {
		w.log.Warn("tiles failed classification", "count", w.stats.Errors())
	}
}

// Step advances clouds and fire by dt seconds, capped at the configured
// maximum step.
func (w *World) Step(dt float64) {
	dt = min(max(dt, 0), w.cfg.MaxStep)
	w.clouds.Advance(dt)

	before := w.fire.Ticks()
	done := w.fire.Tick(dt)
	if ticked := w.fire.Ticks() - before; ticked > 0 {
		w.rec.AddTicks(ticked)
		w.observeFire()
	}
	if done && !w.exhausted {
		w.exhausted = true
		w.rec.MarkExhausted()
		w.log.Info("fire exhausted",
			"seed", w.seed,
			"ticks", w.fire.Ticks(),
			"burned", w.fire.BurnPercentage(),
		)
	}
}

// Run steps the world by dt until the fire is exhausted or maxSteps steps
// have run. It returns the number of steps taken and whether the fire went
// out.
func (w *World) Run(dt float64, maxSteps int) (int, bool) {
	for i := 1; i <= maxSteps; i++ {
		w.Step(dt)
		if w.exhausted {
			return i, true
		}
	}
	return maxSteps, w.exhausted
}

func (w *World) observeFire() {
	w.rec.ObserveFire(w.fire.Active(), w.fire.Pending(), w.fire.Flammable(), w.fire.BurnPercentage())
}

// Ignite sets tile i alight.
func (w *World) Ignite(i int) bool { return w.fire.Ignite(i) }

// IgniteAt sets the tile under world pixel (x, y) alight.
func (w *World) IgniteAt(x, y int) bool {
	i, ok := w.grid.IndexAt(x, y)
	if !ok {
		return false
	}
	return w.fire.Ignite(i)
}

// Extinguish puts out tile i.
func (w *World) Extinguish(i int) bool {
	if !w.fire.Extinguish(i) {
		return false
	}
	w.rec.AddExtinguished(1)
	return true
}

// ExtinguishArea puts out every flame under the world pixel rectangle r.
func (w *World) ExtinguishArea(r image.Rectangle) int {
	n := w.fire.ExtinguishArea(r)
	if n > 0 {
		w.rec.AddExtinguished(n)
		w.log.Debug("extinguished", "area", r, "tiles", n)
	}
	return n
}

// BurnPercentage is the burned fraction of the initially flammable tiles.
func (w *World) BurnPercentage() float64 { return w.fire.BurnPercentage() }

// Exhausted reports whether the fire has gone out.
func (w *World) Exhausted() bool { return w.fire.Exhausted() }

// ActiveFires counts tiles that are alight.
func (w *World) ActiveFires() int { return w.fire.Active() + w.fire.Pending() }

// Seed returns the seed of the last Reset.
func (w *World) Seed() uint64 { return w.seed }

// Stats returns the summary of the last terrain generation.
func (w *World) Stats() terrain.Stats { return w.stats }

// Config returns the world configuration.
func (w *World) Config() Config { return w.cfg }

// Grid exposes the tile grid.
func (w *World) Grid() *core.TileGrid { return w.grid }

// Terrain exposes the terrain generator.
func (w *World) Terrain() *terrain.Generator { return w.terrain }

// Fire exposes the fire simulator.
func (w *World) Fire() *fire.Simulator { return w.fire }

// Clouds exposes the cloud layer.
func (w *World) Clouds() *clouds.Overlay { return w.clouds }

// FireMask reports per tile how much burn time remains, in [0, 1]. Freshly
// ignited tiles report 1.
func (w *World) FireMask() []float32 {
	mask := make([]float32, w.grid.Len())
	lifetime := w.cfg.Fire.Lifetime
	for i := range mask {
		if !w.fire.Burning(i) {
			continue
		}
		life, ok := w.fire.Lifetime(i)
		if !ok || lifetime <= 0 {
			mask[i] = 1
			continue
		}
		mask[i] = float32(min(life/lifetime, 1))
	}
	return mask
}

// HeightField returns tile heights as a fraction of the maximum height for
// the current terrain. It is computed on first use after each build.
func (w *World) HeightField() []float32 {
	if w.heights == nil {
		w.heights = w.terrain.HeightField(w.grid.W, w.grid.H, *w.terrain.HeightParams())
	}
	return w.heights
}

func init() {
	core.Register(Name, func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
