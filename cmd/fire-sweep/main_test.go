package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"islandfire/internal/sims/island"
)

func TestSummarize(t *testing.T) {
	s := summarize([]runResult{
		{burned: 0.5, done: true},
		{burned: 0.25, done: false},
		{burned: 0.75, done: true},
	})
	assert.Equal(t, 3, s.runs)
	assert.Equal(t, 2, s.exhausted)
	assert.Equal(t, 0.5, s.mean)
	assert.Equal(t, 0.25, s.min)
	assert.Equal(t, 0.75, s.max)

	assert.Equal(t, summary{}, summarize(nil))
}

func TestBurnSeedRepeatable(t *testing.T) {
	cfg := island.DefaultConfig()
	cfg.Columns, cfg.Rows = 24, 16
	cfg.Width, cfg.Height = 96, 64
	cfg.Normalize()

	a := burnSeed(cfg, 4, 1.0/30, 200000)
	b := burnSeed(cfg, 4, 1.0/30, 200000)
	require.True(t, a.done)
	assert.Equal(t, a.burned, b.burned)
	assert.Equal(t, a.steps, b.steps)
	assert.Equal(t, a.land, b.land)
	assert.GreaterOrEqual(t, a.burned, 0.0)
	assert.LessOrEqual(t, a.burned, 1.0)
}
