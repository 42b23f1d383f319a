package island

import (
	"islandfire/internal/core"
	"islandfire/pkg/noise"
)

// Parameters reports terrain, fire and cloud settings.
func (w *World) Parameters() core.ParameterSnapshot {
	fc := w.fire.Config()
	cp := w.clouds.Params()
	world := core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "World",
		Params: []core.Parameter{
			core.Int64Param("seed", "Seed", int64(w.seed)),
			core.IntParam("cols", "Columns", w.grid.W),
			core.IntParam("rows", "Rows", w.grid.H),
			core.IntParam("land", "Land tiles", w.stats.Land()),
		},
	}}}
	rest := core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Fire",
			Params: []core.Parameter{
				core.FloatParam("fire_tick", "Tick interval", fc.TickInterval),
				core.FloatParam("fire_lifetime", "Lifetime", fc.Lifetime),
				core.IntParam("flammable", "Flammable", w.fire.Flammable()),
				core.IntParam("max_flammable", "Initially flammable", w.fire.MaxFlammable()),
				core.FloatParam("burned", "Burned", w.fire.BurnPercentage()),
				core.BoolParam("exhausted", "Exhausted", w.fire.Exhausted()),
			},
		},
		{
			Name: "Clouds",
			Params: []core.Parameter{
				core.IntParam("cloud_octaves", "Octaves", cp.Octaves),
				core.IntParam("cloud_range", "Input range", cp.InputRange),
				core.Float32Param("cloud_persistence", "Persistence", cp.Persistence),
				core.FloatParam("cloud_coverage", "Coverage", w.clouds.Coverage()),
			},
		},
	}}
	return world.Merge(w.terrain.Parameters()).Merge(rest)
}

// ParameterControls lists the HUD-adjustable settings.
func (w *World) ParameterControls() []core.ParameterControl {
	return append(w.terrain.ParameterControls(),
		core.IntControl("cloud_octaves", "Cloud octaves", 1, noise.MinOctaves, noise.MaxOctaves),
		core.IntControl("cloud_range", "Cloud range", 1, noise.MinInputRange, noise.MaxInputRange),
		core.FloatControl("cloud_persistence", "Cloud persistence", 0.05, 0, 1),
	)
}

// SetIntParameter updates an integer noise setting and rebuilds the layer it
// feeds.
func (w *World) SetIntParameter(key string, value int) bool {
	switch key {
	case "cloud_octaves":
		w.clouds.Params().SetOctaves(value)
	case "cloud_range":
		w.clouds.Params().SetInputRange(value)
	default:
		if !w.terrain.SetIntParameter(key, value) {
			return false
		}
		w.Regenerate()
		return true
	}
	w.clouds.Generate(w.rng)
	return true
}

// SetFloatParameter updates a persistence setting and rebuilds the layer it
// feeds.
func (w *World) SetFloatParameter(key string, value float64) bool {
	if key == "cloud_persistence" {
		w.clouds.Params().SetPersistence(float32(value))
		w.clouds.Generate(w.rng)
		return true
	}
	if !w.terrain.SetFloatParameter(key, value) {
		return false
	}
	w.Regenerate()
	return true
}
