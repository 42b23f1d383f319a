package terrain

import (
	"strconv"

	"islandfire/internal/core"
	"islandfire/pkg/noise"
)

// SaltChances are the cumulative brackets of the one-time salting pass. A
// roll at or below the first bracket of a biome wins over the second.
type SaltChances struct {
	GrassToRock    float32 `yaml:"grass_to_rock"`
	GrassToForest  float32 `yaml:"grass_to_forest"`
	SavannaToRock  float32 `yaml:"savanna_to_rock"`
	SavannaToCliff float32 `yaml:"savanna_to_cliff"`
	SnowToRock     float32 `yaml:"snow_to_rock"`
	SnowToCliff    float32 `yaml:"snow_to_cliff"`
	DesertToRock   float32 `yaml:"desert_to_rock"`
	GlacierToRock  float32 `yaml:"glacier_to_rock"`
	SwampToRock    float32 `yaml:"swamp_to_rock"`
}

// GrowthChances are the cellular-automata spread probabilities.
type GrowthChances struct {
	Forest float32 `yaml:"forest"`
	Rock   float32 `yaml:"rock"`
	Cliff  float32 `yaml:"cliff"`
}

// Config controls terrain synthesis.
type Config struct {
	Height   noise.Params `yaml:"height"`
	Moisture noise.Params `yaml:"moisture"`

	HeightNoiseDivisor float32 `yaml:"height_noise_divisor"`
	IslandExponent     float32 `yaml:"island_exponent"`
	PoleTemperature    float32 `yaml:"pole_temperature"`
	EquatorTemperature float32 `yaml:"equator_temperature"`
	TemperatureFalloff float32 `yaml:"temperature_falloff"`
	GrowthIterations   int     `yaml:"growth_iterations"`
	Workers            int     `yaml:"workers"`
	Backend            string  `yaml:"backend"`
	Seed               int64   `yaml:"seed"`

	Salt   SaltChances   `yaml:"salt"`
	Growth GrowthChances `yaml:"growth"`
}

// DefaultSaltChances returns the standard salting brackets.
func DefaultSaltChances() SaltChances {
	return SaltChances{
		GrassToRock:    0.0025,
		GrassToForest:  0.005,
		SavannaToRock:  0.005,
		SavannaToCliff: 0.01,
		SnowToRock:     0.005,
		SnowToCliff:    0.01,
		DesertToRock:   0.001,
		GlacierToRock:  0.001,
		SwampToRock:    0.001,
	}
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Height:             noise.NewParams(6, 2, 0.5, 0),
		Moisture:           noise.NewParams(6, 15, 0.5, 0),
		HeightNoiseDivisor: 2,
		IslandExponent:     0.1,
		PoleTemperature:    0,
		EquatorTemperature: 1,
		TemperatureFalloff: 0.7,
		GrowthIterations:   10,
		Workers:            core.DefaultWorkers,
		Backend:            "gradient",
		Seed:               1337,
		Salt:               DefaultSaltChances(),
		Growth:             GrowthChances{Forest: 0.25, Rock: 0.2, Cliff: 0.15},
	}
}

// Normalize coerces out-of-range values back to something usable.
func (c *Config) Normalize() {
	c.Height.Clamp()
	c.Moisture.Clamp()
	if c.HeightNoiseDivisor <= 0 {
		c.HeightNoiseDivisor = 1
	}
	if c.GrowthIterations < 0 {
		c.GrowthIterations = 0
	}
	if c.Workers <= 0 {
		c.Workers = core.DefaultWorkers
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	c.Apply(cfg)
	return c
}

// Apply overlays flag-style key/value pairs onto c. Unknown keys and values
// that fail to parse are ignored.
func (c *Config) Apply(cfg map[string]string) {
	if cfg == nil {
		return
	}
	setInt(cfg, "height_octaves", &c.Height.Octaves)
	setInt(cfg, "height_range", &c.Height.InputRange)
	setFloat(cfg, "height_persistence", &c.Height.Persistence)
	setUint32(cfg, "height_seed", &c.Height.Seed)
	setInt(cfg, "moisture_octaves", &c.Moisture.Octaves)
	setInt(cfg, "moisture_range", &c.Moisture.InputRange)
	setFloat(cfg, "moisture_persistence", &c.Moisture.Persistence)
	setUint32(cfg, "moisture_seed", &c.Moisture.Seed)
	setFloat(cfg, "island_exponent", &c.IslandExponent)
	setFloat(cfg, "temperature_falloff", &c.TemperatureFalloff)
	setInt(cfg, "growth_iterations", &c.GrowthIterations)
	setInt(cfg, "workers", &c.Workers)
	setFloat(cfg, "forest_growth_chance", &c.Growth.Forest)
	setFloat(cfg, "rock_growth_chance", &c.Growth.Rock)
	setFloat(cfg, "cliff_growth_chance", &c.Growth.Cliff)
	if v, ok := cfg["backend"]; ok && v != "" {
		c.Backend = v
	}
	if v, ok := cfg["terrain_seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	c.Normalize()
}

func setInt(cfg map[string]string, key string, dst *int) {
	if v, ok := cfg[key]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			*dst = parsed
		}
	}
}

func setFloat(cfg map[string]string, key string, dst *float32) {
	if v, ok := cfg[key]; ok {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil {
			*dst = float32(parsed)
		}
	}
}

func setUint32(cfg map[string]string, key string, dst *uint32) {
	if v, ok := cfg[key]; ok {
		if parsed, err := strconv.ParseUint(v, 10, 32); err == nil {
			*dst = uint32(parsed)
		}
	}
}
