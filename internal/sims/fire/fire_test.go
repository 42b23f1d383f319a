package fire

import (
	"image"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"islandfire/internal/core"
	"islandfire/internal/sims/terrain"
)

type fixedRandom struct{ v float32 }

func (f fixedRandom) Uint64() uint64 { return 0 }
func (f fixedRandom) Float64() float64 { return float64(f.v) }
func (f fixedRandom) Float32() float32 { return f.v }
func (f fixedRandom) IntRange(min, _ int) int { return min }
func (f fixedRandom) FloatRange(min, _ float32) float32 { return min }

func quietConfig() Config {
	cfg := DefaultConfig()
	cfg.Combustion = BiomeChances{}
	cfg.Catch = BiomeChances{}
	return cfg
}

func filledGrid(w, h int, c core.Color) *core.TileGrid {
	g := core.NewTileGrid(w, h, w*10, h*10)
	g.Fill(c)
	return g
}

func TestSingleIgnitionBurnsOneSixteenth(t *testing.T) {
	grid := filledGrid(4, 4, terrain.Grassland)
	sim := New(quietConfig(), fixedRandom{v: 0.5})
	sim.Start(grid)
	require.Equal(t, 16, sim.MaxFlammable())
	require.Equal(t, 16, sim.Flammable())

	require.True(t, sim.Ignite(5))
	assert.Equal(t, 15, sim.Flammable())
	assert.True(t, sim.Burning(5))

	scorchedSeen := 0
	done := false
	for step := 0; step < 200 && !done; step++ {
		before, _ := grid.At(5)
		done = sim.Tick(0.1)
		after, _ := grid.At(5)
		if before != terrain.Scorched && after == terrain.Scorched {
			scorchedSeen++
		}
	}
	require.True(t, done, "fire never burned out")
	assert.Equal(t, 1, scorchedSeen)
	assert.Equal(t, 1, grid.CountColor(terrain.Scorched))
	assert.Equal(t, 15, grid.CountColor(terrain.Grassland))
	assert.InDelta(t, 1.0/16.0, sim.BurnPercentage(), 1e-12)
}

func TestTickGatedByInitialDelay(t *testing.T) {
	grid := filledGrid(2, 2, terrain.Forest)
	sim := New(quietConfig(), fixedRandom{v: 0.5})
	sim.Start(grid)
	sim.Ignite(0)

	assert.False(t, sim.Tick(0.3))
	assert.Equal(t, 1, sim.Pending())
	assert.Equal(t, 0, sim.Active())
	assert.Equal(t, 0, sim.Ticks())

	assert.False(t, sim.Tick(0.2))
	assert.Equal(t, 0, sim.Pending())
	assert.Equal(t, 1, sim.Active())
	life, ok := sim.Lifetime(0)
	require.True(t, ok)
	assert.InDelta(t, 0.8, life, 1e-9, "the firing call's dt is spent, not the delay")
}

func TestLifetimeSpansFrameTime(t *testing.T) {
	const dt = 1.0 / 30
	grid := filledGrid(3, 3, terrain.Grassland)
	sim := New(quietConfig(), fixedRandom{v: 0.5})
	sim.Start(grid)
	require.True(t, sim.Ignite(4))

	for step := 0; step < 10000; step++ {
		if sim.Tick(dt) {
			break
		}
	}
	require.True(t, sim.Exhausted())
	assert.InDelta(t, 30, sim.Ticks(), 1, "a tile lives about Lifetime/dt fired ticks")
	assert.Equal(t, 1, grid.CountColor(terrain.Scorched))
}

func TestDefaultChancesSpreadAcrossGrassland(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Combustion = BiomeChances{}

	spread := 0
	for seed := uint64(1); seed <= 8; seed++ {
		grid := filledGrid(32, 32, terrain.Grassland)
		sim := New(cfg, core.NewRNG(seed))
		sim.Start(grid)
		require.True(t, sim.Ignite(grid.Index(16, 16)))
		for step := 0; step < 200000; step++ {
			if sim.Tick(1.0 / 30) {
				break
			}
		}
		require.True(t, sim.Exhausted(), "seed %d", seed)
		if grid.CountColor(terrain.Scorched) > grid.Len()/4 {
			spread++
		}
	}
	// A lone ignition can die out early, but most runs must take hold.
	assert.GreaterOrEqual(t, spread, 4)
}

func TestNewIgnitionsWaitOneTick(t *testing.T) {
	cfg := quietConfig()
	cfg.Lifetime = 10
	cfg.Catch.Grassland = 1
	grid := filledGrid(3, 1, terrain.Grassland)
	sim := New(cfg, fixedRandom{v: 0.5})
	sim.Start(grid)
	sim.Ignite(0)

	sim.Tick(0.5)
	assert.Equal(t, []core.Color{terrain.Flame, terrain.Flame, terrain.Grassland}, grid.Cells())
	assert.Equal(t, 1, sim.Active())
	assert.Equal(t, 1, sim.Pending(), "neighbor must wait in pending")

	sim.Tick(0.1)
	assert.Equal(t, []core.Color{terrain.Flame, terrain.Flame, terrain.Flame}, grid.Cells())
	assert.Equal(t, 2, sim.Active())
	assert.Equal(t, 1, sim.Pending())
	assert.Equal(t, 0, sim.Flammable())
	assert.InDelta(t, 1, sim.BurnPercentage(), 1e-12)
}

func TestSpreadSkipsOceanAndRespectsChance(t *testing.T) {
	cfg := quietConfig()
	cfg.Lifetime = 10
	cfg.Catch = BiomeChances{Grassland: 0.4, Forest: 0.6}
	grid := core.NewTileGrid(3, 1, 3, 1)
	copy(grid.Cells(), []core.Color{terrain.Grassland, terrain.Forest, terrain.Ocean})
	sim := New(cfg, fixedRandom{v: 0.5})
	sim.Start(grid)
	sim.Ignite(1)
	sim.Tick(0.5)
	assert.Equal(t, terrain.Grassland, grid.Cells()[0], "roll 0.5 is above the grassland chance")
	assert.Equal(t, terrain.Ocean, grid.Cells()[2])

	grid = core.NewTileGrid(2, 1, 2, 1)
	copy(grid.Cells(), []core.Color{terrain.Grassland, terrain.Forest})
	sim.Start(grid)
	sim.Ignite(0)
	sim.Tick(0.5)
	assert.Equal(t, terrain.Flame, grid.Cells()[1], "roll 0.5 is below the forest chance")
}

func TestTickReportsExhaustion(t *testing.T) {
	grid := filledGrid(3, 3, terrain.Savanna)
	sim := New(quietConfig(), fixedRandom{v: 0.5})
	sim.Start(grid)
	assert.True(t, sim.Tick(0.01), "no fire at all")

	sim.Ignite(4)
	for step := 0; step < 50; step++ {
		got := sim.Tick(0.1)
		want := sim.Active() == 0 && sim.Pending() == 0
		require.Equal(t, want, got, "step %d", step)
		require.Equal(t, sim.Exhausted(), got)
		if got {
			return
		}
	}
	t.Fatal("fire never burned out")
}

func TestExtinguishIdempotent(t *testing.T) {
	grid := filledGrid(4, 4, terrain.Grassland)
	sim := New(quietConfig(), fixedRandom{v: 0.5})
	sim.Start(grid)

	// A tile that never burned is left untouched.
	assert.False(t, sim.Extinguish(3))
	c, _ := grid.At(3)
	assert.Equal(t, terrain.Grassland, c)

	sim.Ignite(6)
	sim.Ignite(7)
	sim.Tick(0.5) // promote both
	sim.Ignite(8)

	require.True(t, sim.Extinguish(8), "pending tile")
	require.True(t, sim.Extinguish(6), "active tile")
	assert.False(t, sim.Burning(6))
	assert.False(t, sim.Burning(8))

	cells := slices.Clone(grid.Cells())
	active, pending, flammable := sim.Active(), sim.Pending(), sim.Flammable()

	assert.False(t, sim.Extinguish(6))
	assert.False(t, sim.Extinguish(8))
	assert.False(t, sim.Extinguish(-1))
	assert.False(t, sim.Extinguish(999))

	assert.Equal(t, cells, grid.Cells())
	assert.Equal(t, active, sim.Active())
	assert.Equal(t, pending, sim.Pending())
	assert.Equal(t, flammable, sim.Flammable())
	assert.Equal(t, 13, flammable)

	// Scorched tiles cannot be lit again.
	assert.False(t, sim.Ignite(6))
}

func TestIgniteRejectsInvalidTiles(t *testing.T) {
	grid := core.NewTileGrid(2, 2, 2, 2)
	copy(grid.Cells(), []core.Color{terrain.Ocean, terrain.Rock, terrain.Swamp, terrain.Scorched})
	sim := New(quietConfig(), fixedRandom{v: 0.5})
	assert.False(t, sim.Ignite(2), "no grid attached")

	sim.Start(grid)
	assert.Equal(t, 1, sim.MaxFlammable())
	assert.False(t, sim.Ignite(0))
	assert.False(t, sim.Ignite(1))
	assert.False(t, sim.Ignite(3))
	assert.False(t, sim.Ignite(4))
	assert.True(t, sim.Ignite(2))
	assert.False(t, sim.Ignite(2), "already burning")
	assert.Equal(t, 0, sim.Flammable())
}

func TestStartCombustion(t *testing.T) {
	grid := core.NewTileGrid(4, 1, 4, 1)
	copy(grid.Cells(), []core.Color{terrain.Grassland, terrain.Ocean, terrain.Forest, terrain.Rock})
	sim := New(DefaultConfig(), fixedRandom{v: 0})
	sim.Start(grid)
	assert.Equal(t, 2, sim.MaxFlammable())
	assert.Equal(t, 2, sim.Pending())
	assert.Equal(t, 0, sim.Flammable())
	assert.InDelta(t, 1, sim.BurnPercentage(), 1e-12)

	sim = New(DefaultConfig(), fixedRandom{v: 0.5})
	copy(grid.Cells(), []core.Color{terrain.Grassland, terrain.Ocean, terrain.Forest, terrain.Rock})
	sim.Start(grid)
	assert.Equal(t, 0, sim.Pending())
	assert.Equal(t, 0.0, sim.BurnPercentage())
}

func TestBurnPercentageWithoutFlammableTiles(t *testing.T) {
	sim := New(DefaultConfig(), nil)
	assert.Equal(t, 0.0, sim.BurnPercentage())
	sim.Start(filledGrid(3, 3, terrain.Ocean))
	assert.Equal(t, 0.0, sim.BurnPercentage())
	assert.True(t, sim.Tick(1))
}

func TestExtinguishArea(t *testing.T) {
	grid := filledGrid(4, 4, terrain.Grassland)
	sim := New(quietConfig(), fixedRandom{v: 0.5})
	sim.Start(grid)
	sim.Ignite(0)
	sim.Ignite(1)
	sim.Ignite(5)
	sim.Tick(0.5)

	assert.Equal(t, 2, sim.ExtinguishArea(image.Rect(0, 0, 20, 10)))
	assert.True(t, sim.Burning(5))
	assert.False(t, sim.Burning(0))
	assert.Equal(t, 2, grid.CountColor(terrain.Scorched))
	assert.Zero(t, sim.ExtinguishArea(image.Rect(0, 0, 20, 10)))
}

func TestFireMonotonicOnGeneratedTerrain(t *testing.T) {
	tcfg := terrain.DefaultConfig()
	tcfg.Height.Seed = 3
	tcfg.Moisture.Seed = 4
	grid := core.NewTileGrid(64, 64, 64, 64)
	terrain.New(tcfg).Regenerate(grid)

	cfg := DefaultConfig()
	cfg.Combustion = BiomeChances{Grassland: 0.01, Forest: 0.01, Savanna: 0.01, Swamp: 0.01}
	cfg.Catch = BiomeChances{Grassland: 0.3, Forest: 0.3, Savanna: 0.3, Swamp: 0.1}
	sim := New(cfg, core.NewRNG(17))
	sim.Start(grid)

	prevFlammable := sim.Flammable()
	prevBurn := sim.BurnPercentage()
	for step := 0; step < 400; step++ {
		if step%25 == 0 {
			sim.Extinguish(step * 7 % grid.Len())
		}
		sim.Tick(0.05)
		require.LessOrEqual(t, sim.Flammable(), prevFlammable)
		require.GreaterOrEqual(t, sim.BurnPercentage(), prevBurn)
		prevFlammable, prevBurn = sim.Flammable(), sim.BurnPercentage()
	}
}

func TestResetClearsState(t *testing.T) {
	grid := filledGrid(2, 2, terrain.Grassland)
	sim := New(quietConfig(), fixedRandom{v: 0.5})
	sim.Start(grid)
	sim.Ignite(0)
	sim.Tick(0.5)
	sim.Reset()

	assert.True(t, sim.Exhausted())
	assert.Nil(t, sim.Grid())
	assert.Zero(t, sim.MaxFlammable())
	assert.Zero(t, sim.Ticks())
	assert.True(t, sim.Tick(1))
}

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{
		"fire_tick":       "0.25",
		"fire_lifetime":   "-1",
		"catch_forest":    "2",
		"ignite_savanna":  "0.5",
		"catch_grassland": "x",
	})
	assert.Equal(t, 0.25, cfg.TickInterval)
	assert.Equal(t, 1.0, cfg.Lifetime)
	assert.Equal(t, float32(1), cfg.Catch.Forest)
	assert.Equal(t, float32(0.5), cfg.Combustion.Savanna)
	assert.Equal(t, DefaultConfig().Catch.Grassland, cfg.Catch.Grassland)
}
