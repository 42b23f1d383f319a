package noise

const (
	// MinOctaves and MaxOctaves bound Params.Octaves.
	MinOctaves = 1
	MaxOctaves = 6
	// MinInputRange and MaxInputRange bound Params.InputRange.
	MinInputRange = 1
	MaxInputRange = 15

	defaultOctaves     = 1
	defaultPersistence = 0.5
	defaultInputRange  = 1
)

// Params configures one multi-octave noise layer. Values are always coerced
// into range by the setters; nothing is ever rejected.
type Params struct {
	Octaves     int     `yaml:"octaves"`
	Persistence float32 `yaml:"persistence"`
	InputRange  int     `yaml:"input_range"`
	Seed        uint32  `yaml:"seed"`
}

// DefaultParams returns a single-octave layer with seed 0.
func DefaultParams() Params {
	return Params{
		Octaves:     defaultOctaves,
		Persistence: defaultPersistence,
		InputRange:  defaultInputRange,
	}
}

// NewParams builds a clamped parameter set.
func NewParams(octaves, inputRange int, persistence float32, seed uint32) Params {
	p := Params{Octaves: octaves, Persistence: persistence, InputRange: inputRange, Seed: seed}
	p.Clamp()
	return p
}

// Clamp coerces every field into its valid range.
func (p *Params) Clamp() {
	p.Octaves = clampInt(p.Octaves, MinOctaves, MaxOctaves)
	p.InputRange = clampInt(p.InputRange, MinInputRange, MaxInputRange)
	p.Persistence = clampFloat(p.Persistence, 0, 1)
}

// Reset restores the defaults but keeps the seed.
func (p *Params) Reset() {
	seed := p.Seed
	*p = DefaultParams()
	p.Seed = seed
}

// SetOctaves stores n clamped to [MinOctaves, MaxOctaves].
func (p *Params) SetOctaves(n int) { p.Octaves = clampInt(n, MinOctaves, MaxOctaves) }

// SetInputRange stores n clamped to [MinInputRange, MaxInputRange].
func (p *Params) SetInputRange(n int) { p.InputRange = clampInt(n, MinInputRange, MaxInputRange) }

// SetPersistence stores v clamped to [0, 1].
func (p *Params) SetPersistence(v float32) { p.Persistence = clampFloat(v, 0, 1) }

// SetSeed replaces the seed.
func (p *Params) SetSeed(seed uint32) { p.Seed = seed }

// ChangeOctaves adds delta and clamps.
func (p *Params) ChangeOctaves(delta int) { p.SetOctaves(p.Octaves + delta) }

// ChangeInputRange adds delta and clamps.
func (p *Params) ChangeInputRange(delta int) { p.SetInputRange(p.InputRange + delta) }

// ChangePersistence adds delta and clamps.
func (p *Params) ChangePersistence(delta float32) { p.SetPersistence(p.Persistence + delta) }

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float32) float32 {
	if v != v {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
