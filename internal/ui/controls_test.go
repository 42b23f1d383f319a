package ui

import (
	"testing"

	"islandfire/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSim struct {
	name   string
	ints   map[string]int
	floats map[string]float64
	reject bool

	burn      float64
	exhausted bool
	active    int
}

func (f *fakeSim) Name() string { return f.name }
func (f *fakeSim) Size() core.Size { return core.Size{W: 4, H: 3} }
func (f *fakeSim) Reset(int64) {}
func (f *fakeSim) Step(float64) {}
func (f *fakeSim) Cells() []core.Color { return nil }
func (f *fakeSim) BurnPercentage() float64 { return f.burn }
func (f *fakeSim) Exhausted() bool { return f.exhausted }
func (f *fakeSim) ActiveFires() int { return f.active }

func (f *fakeSim) SetIntParameter(key string, v int) bool {
	if f.reject {
		return false
	}
	f.ints[key] = v
	return true
}

func (f *fakeSim) SetFloatParameter(key string, v float64) bool {
	if f.reject {
		return false
	}
	f.floats[key] = v
	return true
}

func snapshot(params ...core.Parameter) core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{Name: "test", Params: params}}}
}

func TestControlRefreshParsesValues(t *testing.T) {
	states := NewControlStates([]core.ParameterControl{
		core.IntControl("octaves", "Octaves", 1, 1, 6),
		core.FloatControl("persistence", "Persistence", 0.05, 0, 1),
		core.IntControl("missing", "Missing", 1, 0, 1),
	})
	snap := snapshot(
		core.IntParam("octaves", "Octaves", 3),
		core.FloatParam("persistence", "Persistence", 0.5),
	)
	for i := range states {
		states[i].Refresh(snap)
	}
	assert.True(t, states[0].HasValue())
	assert.Equal(t, "3", states[0].Value)
	assert.True(t, states[1].HasValue())
	assert.Equal(t, "0.50", states[1].Value)
	assert.False(t, states[2].HasValue())
	assert.Equal(t, "--", states[2].Value)
}

func TestControlRefreshRejectsGarbage(t *testing.T) {
	states := NewControlStates([]core.ParameterControl{core.IntControl("k", "K", 1, 0, 9)})
	states[0].Refresh(snapshot(core.Parameter{Key: "k", Type: core.ParamTypeInt, Value: "x"}))
	assert.False(t, states[0].HasValue())
	_, ok := states[0].Target(1)
	assert.False(t, ok)
}

func TestControlTargetClamps(t *testing.T) {
	states := NewControlStates([]core.ParameterControl{core.IntControl("octaves", "Octaves", 1, 1, 6)})
	s := &states[0]
	s.Refresh(snapshot(core.IntParam("octaves", "Octaves", 6)))

	_, ok := s.Target(1)
	assert.False(t, ok, "already at max")
	v, ok := s.Target(-1)
	require.True(t, ok)
	assert.Equal(t, float64(5), v)
}

func TestControlAdjustCallsSetter(t *testing.T) {
	sim := &fakeSim{ints: map[string]int{}, floats: map[string]float64{}}
	states := NewControlStates([]core.ParameterControl{
		core.IntControl("octaves", "Octaves", 1, 1, 6),
		core.FloatControl("persistence", "Persistence", 0.25, 0, 1),
	})
	snap := snapshot(
		core.IntParam("octaves", "Octaves", 2),
		core.FloatParam("persistence", "Persistence", 0.5),
	)
	for i := range states {
		states[i].Refresh(snap)
	}

	require.True(t, states[0].Adjust(1, sim, sim))
	assert.Equal(t, 3, sim.ints["octaves"])
	assert.Equal(t, "3", states[0].Value)

	require.True(t, states[1].Adjust(1, sim, sim))
	assert.Equal(t, 0.75, sim.floats["persistence"])
	require.True(t, states[1].Adjust(1, sim, sim))
	assert.Equal(t, 1.0, sim.floats["persistence"])
	assert.False(t, states[1].Adjust(1, sim, sim), "clamped at max")
}

func TestControlAdjustWithoutSetter(t *testing.T) {
	sim := &fakeSim{reject: true, ints: map[string]int{}, floats: map[string]float64{}}
	states := NewControlStates([]core.ParameterControl{core.IntControl("octaves", "Octaves", 1, 1, 6)})
	states[0].Refresh(snapshot(core.IntParam("octaves", "Octaves", 2)))

	assert.False(t, states[0].Adjust(1, nil, nil))
	assert.False(t, states[0].Adjust(1, sim, sim))
	assert.Equal(t, "2", states[0].Value)
}

func TestFormatStep(t *testing.T) {
	assert.Equal(t, "0.5", FormatStep(0.5, 0.5))
	assert.Equal(t, "0.50", FormatStep(0.05, 0.5))
	assert.Equal(t, "0.500", FormatStep(0.005, 0.5))
	assert.Equal(t, "0.5000", FormatStep(0.0005, 0.5))
	assert.Equal(t, "0.50", FormatStep(0, 0.5))
}

func TestStatusLines(t *testing.T) {
	sim := &fakeSim{name: "island", burn: 0.125, active: 7}
	assert.Equal(t, []string{"Grid 4x3", "Burned 12.5%", "Burning 7"}, StatusLines(sim, false))

	sim.exhausted = true
	assert.Equal(t, []string{"Grid 4x3", "Burned 12.5%", "Fire out", "Paused"}, StatusLines(sim, true))
	assert.Nil(t, StatusLines(nil, false))
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Island Controls", Title(&fakeSim{name: "island"}))
	assert.Equal(t, "Controls", Title(&fakeSim{}))
	assert.Equal(t, "Controls", Title(nil))
}
