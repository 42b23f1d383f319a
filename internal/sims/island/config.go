package island

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"islandfire/internal/sims/clouds"
	"islandfire/internal/sims/fire"
	"islandfire/internal/sims/terrain"
)

// ConfigEnv names the environment variable consulted when LoadConfig gets an
// empty path.
const ConfigEnv = "ISLANDFIRE_CONFIG"

// Config aggregates the settings of every layer of the world.
type Config struct {
	// Columns and Rows size the tile grid.
	Columns int `yaml:"columns"`
	Rows    int `yaml:"rows"`
	// Width and Height are the world extent in pixels. The cloud layer always
	// covers the full extent.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// MaxStep caps the dt handed to one Step.
	MaxStep float64 `yaml:"max_step"`

	Terrain terrain.Config `yaml:"terrain"`
	Fire    fire.Config    `yaml:"fire"`
	Clouds  clouds.Config  `yaml:"clouds"`
}

// DefaultConfig returns a 256x144 tile island on a 1280x720 world.
func DefaultConfig() Config {
	c := Config{
		Columns: 256,
		Rows:    144,
		Width:   1280,
		Height:  720,
		MaxStep: 1.0 / 30,
		Terrain: terrain.DefaultConfig(),
		Fire:    fire.DefaultConfig(),
		Clouds:  clouds.DefaultConfig(),
	}
	c.Normalize()
	return c
}

// Normalize coerces out-of-range values.
func (c *Config) Normalize() {
	c.Columns = max(c.Columns, 1)
	c.Rows = max(c.Rows, 1)
	c.Width = max(c.Width, 1)
	c.Height = max(c.Height, 1)
	if c.MaxStep <= 0 {
		c.MaxStep = 1.0 / 30
	}
	c.Terrain.Normalize()
	c.Terrain.Height.Clamp()
	c.Terrain.Moisture.Clamp()
	c.Clouds.Noise.Clamp()
	c.Clouds.Width = c.Width
	c.Clouds.Height = c.Height
	if c.Clouds.Workers <= 0 {
		c.Clouds.Workers = c.Terrain.Workers
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	c.Apply(cfg)
	return c
}

// Apply overlays flag-style key/value pairs onto c and every layer config.
func (c *Config) Apply(cfg map[string]string) {
	if cfg == nil {
		return
	}
	setPositive(cfg, "cols", &c.Columns)
	setPositive(cfg, "rows", &c.Rows)
	setPositive(cfg, "w", &c.Width)
	setPositive(cfg, "h", &c.Height)
	if v, ok := cfg["max_step"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.MaxStep = parsed
		}
	}
	c.Terrain.Apply(cfg)
	c.Fire.Apply(cfg)
	c.Clouds.Apply(cfg)
	c.Normalize()
}

// LoadConfig reads a YAML config on top of the defaults. An empty path falls
// back to $ISLANDFIRE_CONFIG; a missing file yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		path = os.Getenv(ConfigEnv)
	}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.Normalize()
	return cfg, nil
}

func setPositive(cfg map[string]string, key string, dst *int) {
	if v, ok := cfg[key]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			*dst = parsed
		}
	}
}
