// Package metrics exports generation and fire statistics as Prometheus
// collectors.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "islandfire"

// Recorder groups the collectors for one world. A nil *Recorder is valid and
// records nothing.
type Recorder struct {
	generation   prometheus.Histogram
	tiles        *prometheus.GaugeVec
	burning      *prometheus.GaugeVec
	flammable    prometheus.Gauge
	burnRatio    prometheus.Gauge
	cloudCover   prometheus.Gauge
	ticks        prometheus.Counter
	extinguished prometheus.Counter
	exhausted    prometheus.Counter
}

// NewRecorder builds the collectors and registers them with reg. Collectors
// that reg already knows are reused. A nil reg skips registration.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		generation: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "terrain_generation_seconds",
			Help:      "Wall time of one terrain generation including growth passes.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		}),
		tiles: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "terrain_tiles",
			Help:      "Tiles per biome after the last generation.",
		}, []string{"biome"}),
		burning: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "fire_tiles",
			Help:      "Burning tiles by state.",
		}, []string{"state"}),
		flammable: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "fire_flammable_tiles",
			Help:      "Tiles that can still ignite.",
		}),
		burnRatio: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "fire_burn_ratio",
			Help:      "Fraction of the initially flammable tiles that caught fire.",
		}),
		cloudCover: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "cloud_coverage_ratio",
			Help:      "Mean alpha of the primary cloud mask.",
		}),
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fire_ticks_total",
			Help:      "Fired fire simulation ticks.",
		}),
		extinguished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fire_extinguished_total",
			Help:      "Tiles put out by callers.",
		}),
		exhausted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fire_runs_exhausted_total",
			Help:      "Fire runs that burned out.",
		}),
	}
	if reg == nil {
		return r
	}
	r.generation = register(reg, r.generation)
	r.tiles = register(reg, r.tiles)
	r.burning = register(reg, r.burning)
	r.flammable = register(reg, r.flammable)
	r.burnRatio = register(reg, r.burnRatio)
	r.cloudCover = register(reg, r.cloudCover)
	r.ticks = register(reg, r.ticks)
	r.extinguished = register(reg, r.extinguished)
	r.exhausted = register(reg, r.exhausted)
	return r
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
	}
	return c
}

// ObserveGeneration records a finished terrain generation.
func (r *Recorder) ObserveGeneration(d time.Duration, biomes map[string]int) {
	if r == nil {
		return
	}
	r.generation.Observe(d.Seconds())
	r.tiles.Reset()
	for name, n := range biomes {
		r.tiles.WithLabelValues(name).Set(float64(n))
	}
}

// ObserveFire records the current fire state.
func (r *Recorder) ObserveFire(active, pending, flammable int, burn float64) {
	if r == nil {
		return
	}
	r.burning.WithLabelValues("active").Set(float64(active))
	r.burning.WithLabelValues("pending").Set(float64(pending))
	r.flammable.Set(float64(flammable))
	r.burnRatio.Set(burn)
}

// ObserveClouds records cloud coverage.
func (r *Recorder) ObserveClouds(coverage float64) {
	if r == nil {
		return
	}
	r.cloudCover.Set(coverage)
}

// AddTicks counts fired fire ticks.
func (r *Recorder) AddTicks(n int) {
	if r == nil || n <= 0 {
		return
	}
	r.ticks.Add(float64(n))
}

// AddExtinguished counts tiles put out by callers.
func (r *Recorder) AddExtinguished(n int) {
	if r == nil || n <= 0 {
		return
	}
	r.extinguished.Add(float64(n))
}

// MarkExhausted counts a finished fire run.
func (r *Recorder) MarkExhausted() {
	if r == nil {
		return
	}
	r.exhausted.Inc()
}
