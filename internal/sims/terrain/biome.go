// Package terrain generates island tile maps: noise-driven height, moisture
// and temperature fields classified into biomes, followed by stochastic
// cellular-automata growth of forests, rock and cliffs.
package terrain

import (
	"math"

	"islandfire/internal/core"
	"islandfire/pkg/noise"
)

// Biome colors. A tile's color is its biome.
const (
	Ocean     core.Color = 0x515c81ff
	Reef      core.Color = 0x4f6492ff
	Rock      core.Color = 0x7d7d7dff
	Glacier   core.Color = 0xbdc6ceff
	Snow      core.Color = 0xa0b7a8ff
	Desert    core.Color = 0xbfb084ff
	Dunes     core.Color = 0xa3ab7bff
	Cliff     core.Color = 0x8b7b5fff
	Savanna   core.Color = 0xa19a6eff
	Grassland core.Color = 0x7ba56eff
	Forest    core.Color = 0x607f58ff
	Swamp     core.Color = 0x7b9481ff

	// Scorched and Flame are written by the fire simulation.
	Scorched core.Color = 0x6b7164ff
	Flame    core.Color = 0xe25822ff

	// Error marks a tile that fell outside every classification band.
	Error core.Color = 0xff0000ff
)

// Height thresholds in meters.
const (
	MaxHeight       = 8000
	OceanHeight     = 4200
	ReefHeight      = 4500
	WaterHeight     = 1500
	MountainHeight  = 6200
	LandHeightRange = MaxHeight - WaterHeight
)

// Temperature bands in degrees Celsius.
const (
	MaxTemperature       = 50
	LapseRate            = -6.5
	LapseDivisor         = 1000
	TundraTemperature    = -5
	TaigaTemperature     = 0
	TemperateTemperature = 18
	TropicalTemperature  = 30
)

// Moisture cutoffs.
const (
	MaxMoisture       = 500
	DuneMoisture      = 250
	SavannaMoisture   = 375
	SnowMoisture      = 500
	GrasslandMoisture = 600
)

var biomeNames = map[core.Color]string{
	Ocean:     "ocean",
	Reef:      "reef",
	Rock:      "rock",
	Glacier:   "glacier",
	Snow:      "snow",
	Desert:    "desert",
	Dunes:     "dunes",
	Cliff:     "cliff",
	Savanna:   "savanna",
	Grassland: "grassland",
	Forest:    "forest",
	Swamp:     "swamp",
	Scorched:  "scorched",
	Flame:     "flame",
	Error:     "error",
}

// BiomeName returns a lowercase label for c, or "unknown".
func BiomeName(c core.Color) string {
	if name, ok := biomeNames[c]; ok {
		return name
	}
	return "unknown"
}

// Classify maps physical height, temperature and moisture onto a biome.
func Classify(height, temperature, moisture float32) core.Color {
	switch {
	case height <= OceanHeight:
		return Ocean
	case height <= ReefHeight:
		return Reef
	case height >= MountainHeight:
		return Rock
	}

	switch {
	case temperature <= TundraTemperature:
		return Glacier
	case temperature <= TaigaTemperature:
		if moisture <= SnowMoisture {
			return Snow
		}
		return Grassland
	case temperature <= TemperateTemperature:
		if moisture <= SavannaMoisture {
			return Savanna
		}
		if moisture <= GrasslandMoisture {
			return Grassland
		}
		return Swamp
	case temperature <= TropicalTemperature:
		if moisture <= DuneMoisture {
			return Dunes
		}
		return Desert
	}
	return Error
}

// HeightValue scales [0, 1] noise into meters.
func HeightValue(n float32) float32 { return MaxHeight * n }

// TemperatureValue combines the latitude baseline with the altitude lapse.
func TemperatureValue(normal, height float32) float32 {
	return normal*MaxTemperature + (height/LapseDivisor)*LapseRate
}

// MoistureValue is zero at and below the reef line. Above it the available
// moisture scales with how far temperature sits from the ocean line.
func MoistureValue(n, temperature, height float32) float32 {
	if height <= ReefHeight {
		return 0
	}
	weight := 1 - (temperature-OceanHeight)/LandHeightRange
	return (1 - n) * noise.Lerp(0, MaxMoisture, weight)
}

// IslandMask is the sin(x)sin(y) envelope that pulls the grid edges to zero.
func IslandMask(x, y, w, h, exponent float32) float32 {
	base := sin01(y, h) * sin01(x, w)
	if base <= 0 {
		return 0
	}
	return float32(math.Pow(float64(base), float64(exponent)))
}

// LatitudeNormal is the pole-to-equator temperature baseline for row y.
func LatitudeNormal(y, h, pole, equator, exponent float32) float32 {
	s := sin01(y, h)
	if s <= 0 {
		return pole
	}
	return pole + (equator-pole)*float32(math.Pow(float64(s), float64(exponent)))
}

func sin01(v, extent float32) float32 {
	if extent <= 0 {
		return 0
	}
	return float32(math.Sin(math.Pi * float64(v/extent)))
}
