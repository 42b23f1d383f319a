// Package fire spreads wildfire across a generated tile grid. The simulation
// advances at a fixed tick granularity independent of the frame rate.
package fire

import (
	"image"
	"slices"

	"islandfire/internal/core"
	"islandfire/internal/sims/terrain"
)

// IsFlammable reports whether tiles of color c can catch fire.
func IsFlammable(c core.Color) bool {
	switch c {
	case terrain.Grassland, terrain.Forest, terrain.Savanna, terrain.Swamp:
		return true
	}
	return false
}

// Simulator tracks burning tiles on a grid it does not own. A tile is either
// pending (ignited this tick, cannot spread yet) or active (burning with a
// remaining lifetime), never both.
type Simulator struct {
	cfg  Config
	rng  core.Random
	grid *core.TileGrid
	gate *core.TickGate

	active  map[int]float64
	pending []int
	order   []int

	flammable    int
	maxFlammable int
	ticks        int
}

// New returns an idle simulator drawing from r. A nil r uses a wall-clock
// seeded source.
func New(cfg Config, r core.Random) *Simulator {
	if r == nil {
		r = core.NewRNG(0)
	}
	return &Simulator{
		cfg:    cfg,
		rng:    r,
		gate:   core.NewTickGate(cfg.TickInterval, cfg.InitialDelay),
		active: make(map[int]float64),
	}
}

// Config returns the simulator configuration.
func (s *Simulator) Config() Config { return s.cfg }

// SetRandom replaces the random source for subsequent draws.
func (s *Simulator) SetRandom(r core.Random) {
	if r != nil {
		s.rng = r
	}
}

// Reset clears all fire state and detaches the grid.
func (s *Simulator) Reset() {
	clear(s.active)
	s.pending = s.pending[:0]
	s.flammable = 0
	s.maxFlammable = 0
	s.ticks = 0
	s.grid = nil
	s.gate.Reset()
}

// Start attaches grid and runs the initial combustion sweep. Every flammable
// tile is counted and rolls once against its biome's combustion chance.
func (s *Simulator) Start(grid *core.TileGrid) {
	s.Reset()
	if grid == nil {
		return
	}
	s.grid = grid
	for i, c := range grid.Cells() {
		chance, ok := s.cfg.Combustion.For(c)
		if !ok {
			continue
		}
		s.flammable++
		s.maxFlammable++
		if s.rng.Float32() <= chance {
			s.Ignite(i)
		}
	}
}

// Ignite sets a dormant flammable tile alight. The tile stays pending until
// the next fired tick promotes it.
func (s *Simulator) Ignite(i int) bool {
	if s.grid == nil {
		return false
	}
	c, ok := s.grid.At(i)
	if !ok || !IsFlammable(c) {
		return false
	}
	s.grid.Set(i, terrain.Flame)
	s.pending = append(s.pending, i)
	s.flammable--
	return true
}

// Tick consumes dt seconds. On a fired tick pending tiles become active,
// then active tiles are visited in index order: each loses dt and either
// burns out or tries to ignite its neighbors. Lifetime is measured in frame
// time, so a tile spreads for roughly Lifetime/dt ticks. Tick reports whether
// no fire remains.
func (s *Simulator) Tick(dt float64) bool {
	if s.grid == nil {
		return s.Exhausted()
	}
	fired, _ := s.gate.Advance(dt)
	if !fired {
		return s.Exhausted()
	}
	s.ticks++

	for _, i := range s.pending {
		s.active[i] = s.cfg.Lifetime
	}
	s.pending = s.pending[:0]

	s.order = s.order[:0]
	for i := range s.active {
		s.order = append(s.order, i)
	}
	slices.Sort(s.order)

	for _, i := range s.order {
		life := s.active[i] - dt
		if life <= 0 {
			s.grid.Set(i, terrain.Scorched)
			delete(s.active, i)
			continue
		}
		s.active[i] = life
		s.spread(i)
	}
	return s.Exhausted()
}

func (s *Simulator) spread(i int) {
	cells := s.grid.Cells()
	s.grid.Neighbors(i).Each(func(n int) {
		roll := s.rng.Float32()
		c := cells[n]
		if c == terrain.Ocean || c == terrain.Flame {
			return
		}
		if chance, ok := s.cfg.Catch.For(c); ok && roll <= chance {
			s.Ignite(n)
		}
	})
}

// Extinguish scorches a burning tile and forgets it. Tiles that are not on
// fire are left alone.
func (s *Simulator) Extinguish(i int) bool {
	if !s.Burning(i) {
		return false
	}
	s.grid.Set(i, terrain.Scorched)
	delete(s.active, i)
	if at := slices.Index(s.pending, i); at >= 0 {
		s.pending = slices.Delete(s.pending, at, at+1)
	}
	return true
}

// ExtinguishArea scorches every flame tile under the display rectangle r and
// returns how many were put out.
func (s *Simulator) ExtinguishArea(r image.Rectangle) int {
	if s.grid == nil {
		return 0
	}
	n := 0
	for _, i := range s.grid.TilesOfColorInArea(r, terrain.Flame) {
		if s.Extinguish(i) {
			n++
		}
	}
	return n
}

// Burning reports whether i is pending or active.
func (s *Simulator) Burning(i int) bool {
	if _, ok := s.active[i]; ok {
		return true
	}
	return slices.Contains(s.pending, i)
}

// Lifetime returns the remaining burn time of an active tile.
func (s *Simulator) Lifetime(i int) (float64, bool) {
	life, ok := s.active[i]
	return life, ok
}

// BurnPercentage is the fraction of the initially flammable tiles that have
// caught fire, or 0 when there were none.
func (s *Simulator) BurnPercentage() float64 {
	if s.maxFlammable == 0 {
		return 0
	}
	return 1 - float64(s.flammable)/float64(s.maxFlammable)
}

// Exhausted reports whether no tile is pending or active.
func (s *Simulator) Exhausted() bool { return len(s.active) == 0 && len(s.pending) == 0 }

// Flammable returns the number of tiles still able to ignite.
func (s *Simulator) Flammable() int { return s.flammable }

// MaxFlammable returns the number of flammable tiles found by Start. Tiles
// lit by the start sweep itself are included, so they count as burned.
func (s *Simulator) MaxFlammable() int { return s.maxFlammable }

// Active returns the number of burning tiles that can spread.
func (s *Simulator) Active() int { return len(s.active) }

// Pending returns the number of tiles ignited but not yet promoted.
func (s *Simulator) Pending() int { return len(s.pending) }

// Ticks returns how many ticks have fired since Start.
func (s *Simulator) Ticks() int { return s.ticks }

// Grid returns the attached grid, or nil.
func (s *Simulator) Grid() *core.TileGrid { return s.grid }
