package terrain

import (
	"islandfire/internal/core"
	"islandfire/pkg/noise"
)

// Parameters reports the live noise layers and growth settings.
func (g *Generator) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		noiseGroup("Height", "height", g.height),
		noiseGroup("Moisture", "moisture", g.moisture),
		{
			Name: "Growth",
			Params: []core.Parameter{
				core.IntParam("growth_iterations", "Growth iterations", g.cfg.GrowthIterations),
				core.Float32Param("forest_growth_chance", "Forest growth chance", g.cfg.Growth.Forest),
				core.Float32Param("rock_growth_chance", "Rock growth chance", g.cfg.Growth.Rock),
				core.Float32Param("cliff_growth_chance", "Cliff growth chance", g.cfg.Growth.Cliff),
				core.IntParam("workers", "Workers", g.cfg.Workers),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable noise settings.
func (g *Generator) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		core.IntControl("height_octaves", "Height octaves", 1, noise.MinOctaves, noise.MaxOctaves),
		core.IntControl("height_range", "Height range", 1, noise.MinInputRange, noise.MaxInputRange),
		core.FloatControl("height_persistence", "Height persistence", 0.05, 0, 1),
		core.IntControl("moisture_octaves", "Moisture octaves", 1, noise.MinOctaves, noise.MaxOctaves),
		core.IntControl("moisture_range", "Moisture range", 1, noise.MinInputRange, noise.MaxInputRange),
		core.FloatControl("moisture_persistence", "Moisture persistence", 0.05, 0, 1),
	}
}

// SetIntParameter updates an integer noise setting through the clamping
// setters.
func (g *Generator) SetIntParameter(key string, value int) bool {
	switch key {
	case "height_octaves":
		g.height.SetOctaves(value)
	case "height_range":
		g.height.SetInputRange(value)
	case "moisture_octaves":
		g.moisture.SetOctaves(value)
	case "moisture_range":
		g.moisture.SetInputRange(value)
	default:
		return false
	}
	return true
}

// SetFloatParameter updates a persistence setting.
func (g *Generator) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "height_persistence":
		g.height.SetPersistence(float32(value))
	case "moisture_persistence":
		g.moisture.SetPersistence(float32(value))
	default:
		return false
	}
	return true
}

func noiseGroup(name, prefix string, p noise.Params) core.ParameterGroup {
	return core.ParameterGroup{
		Name: name,
		Params: []core.Parameter{
			core.IntParam(prefix+"_octaves", "Octaves", p.Octaves),
			core.IntParam(prefix+"_range", "Input range", p.InputRange),
			core.Float32Param(prefix+"_persistence", "Persistence", p.Persistence),
			core.Int64Param(prefix+"_seed", "Seed", int64(p.Seed)),
		},
	}
}
