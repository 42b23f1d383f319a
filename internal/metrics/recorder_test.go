package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderExportsValues(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRecorder(reg)

	r.ObserveGeneration(40*time.Millisecond, map[string]int{"ocean": 10, "forest": 3})
	r.ObserveFire(4, 2, 90, 0.25)
	r.ObserveClouds(0.125)
	r.AddTicks(3)
	r.AddTicks(-1)
	r.AddExtinguished(2)
	r.MarkExhausted()

	assert.Equal(t, 10.0, testutil.ToFloat64(r.tiles.WithLabelValues("ocean")))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.tiles.WithLabelValues("forest")))
	assert.Equal(t, 4.0, testutil.ToFloat64(r.burning.WithLabelValues("active")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.burning.WithLabelValues("pending")))
	assert.Equal(t, 90.0, testutil.ToFloat64(r.flammable))
	assert.Equal(t, 0.25, testutil.ToFloat64(r.burnRatio))
	assert.Equal(t, 0.125, testutil.ToFloat64(r.cloudCover))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.ticks))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.extinguished))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.exhausted))

	expected := `
# HELP islandfire_fire_ticks_total Fired fire simulation ticks.
# TYPE islandfire_fire_ticks_total counter
islandfire_fire_ticks_total 3
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "islandfire_fire_ticks_total"))
}

func TestGenerationResetsBiomeGauges(t *testing.T) {
	r := NewRecorder(prometheus.NewRegistry())
	r.ObserveGeneration(time.Millisecond, map[string]int{"swamp": 5})
	r.ObserveGeneration(time.Millisecond, map[string]int{"ocean": 1})
	assert.Equal(t, 1, testutil.CollectAndCount(r.tiles))
}

func TestRecorderReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	a := NewRecorder(reg)
	b := NewRecorder(reg)
	b.AddTicks(2)
	assert.Equal(t, 2.0, testutil.ToFloat64(a.ticks))
}

func TestNilRecorderIsSafe(t *testing.T) {
	var r *Recorder
	r.ObserveGeneration(time.Second, nil)
	r.ObserveFire(1, 1, 1, 1)
	r.ObserveClouds(1)
	r.AddTicks(1)
	r.AddExtinguished(1)
	r.MarkExhausted()

	unregistered := NewRecorder(nil)
	unregistered.AddTicks(1)
	assert.Equal(t, 1.0, testutil.ToFloat64(unregistered.ticks))
}
