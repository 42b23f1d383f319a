package fire

import (
	"strconv"

	"islandfire/internal/core"
	"islandfire/internal/sims/terrain"
)

// BiomeChances holds one probability per flammable biome.
type BiomeChances struct {
	Grassland float32 `yaml:"grassland"`
	Forest    float32 `yaml:"forest"`
	Savanna   float32 `yaml:"savanna"`
	Swamp     float32 `yaml:"swamp"`
}

// For returns the chance for biome c. Non-flammable biomes report false.
func (b BiomeChances) For(c core.Color) (float32, bool) {
	switch c {
	case terrain.Grassland:
		return b.Grassland, true
	case terrain.Forest:
		return b.Forest, true
	case terrain.Savanna:
		return b.Savanna, true
	case terrain.Swamp:
		return b.Swamp, true
	}
	return 0, false
}

// Config controls the fire simulation.
type Config struct {
	TickInterval float64 `yaml:"tick_interval"`
	InitialDelay float64 `yaml:"initial_delay"`
	Lifetime     float64 `yaml:"lifetime"`

	// Combustion is rolled once per flammable tile when the fire starts.
	Combustion BiomeChances `yaml:"combustion"`
	// Catch is rolled per burning neighbor on every tick.
	Catch BiomeChances `yaml:"catch"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		TickInterval: 0.1,
		InitialDelay: 0.5,
		Lifetime:     1.0,
		Combustion:   BiomeChances{Grassland: 0.00001, Forest: 0.0001, Savanna: 0.0005, Swamp: 0.000001},
		Catch:        BiomeChances{Grassland: 0.03, Forest: 0.04, Savanna: 0.05, Swamp: 0.005},
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
	if v, ok := cfg["fire_tick"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.TickInterval = parsed
		}
	}
	if v, ok := cfg["fire_delay"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.InitialDelay = parsed
		}
	}
	if v, ok := cfg["fire_lifetime"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Lifetime = parsed
		}
	}
	setChance(cfg, "ignite_grassland", &c.Combustion.Grassland)
	setChance(cfg, "ignite_forest", &c.Combustion.Forest)
	setChance(cfg, "ignite_savanna", &c.Combustion.Savanna)
	setChance(cfg, "ignite_swamp", &c.Combustion.Swamp)
	setChance(cfg, "catch_grassland", &c.Catch.Grassland)
	setChance(cfg, "catch_forest", &c.Catch.Forest)
	setChance(cfg, "catch_savanna", &c.Catch.Savanna)
	setChance(cfg, "catch_swamp", &c.Catch.Swamp)
}

// setChance stores a probability clamped to [0, 1].
func setChance(cfg map[string]string, key string, dst *float32) {
	v, ok := cfg[key]
	if !ok {
		return
	}
	parsed, err := strconv.ParseFloat(v, 32)
	if err != nil {
		return
	}
	*dst = float32(min(max(parsed, 0), 1))
}
