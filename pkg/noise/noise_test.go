package noise

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash1DKnownValues(t *testing.T) {
	cases := []struct {
		x    int32
		seed uint32
		want uint32
	}{
		{0, 0, 0},
		{1, 0, 918262065},
		{0, 1, 2957163356},
		{-1, 42, 322597742},
		{12345, 0xdeadbeef, 1063047798},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.want, Hash1D(tc.x, tc.seed), "Hash1D(%d, %d)", tc.x, tc.seed)
	}
}

func TestHash2DFoldsThroughPrime(t *testing.T) {
	assert.Equal(t, uint32(3874053954), Hash2D(3, 7, 1234))
	assert.Equal(t, Hash1D(3+primeY*7, 1234), Hash2D(3, 7, 1234))
	assert.Equal(t, Hash2D(5, 9, 77), Hash3D(5, 9, 0, 77))
	assert.NotEqual(t, Hash3D(5, 9, 0, 77), Hash3D(5, 9, 1, 77))
}

func TestUniformRanges(t *testing.T) {
	for i := int32(-500); i < 500; i++ {
		u := Uniform1D(i, 99)
		require.GreaterOrEqual(t, u, float32(0))
		require.LessOrEqual(t, u, float32(1))

		s := Signed1D(i, 99)
		require.GreaterOrEqual(t, s, float32(-1))
		require.LessOrEqual(t, s, float32(1))

		v := Uniform3D(i, -i, 3, 99)
		require.GreaterOrEqual(t, v, float32(-1))
		require.LessOrEqual(t, v, float32(1))
	}
}

func TestSmootherStep(t *testing.T) {
	assert.Equal(t, float32(0), SmootherStep(0))
	assert.Equal(t, float32(1), SmootherStep(1))
	assert.InDelta(t, 0.5, SmootherStep(0.5), 1e-6)
	assert.Equal(t, float32(0), SmootherStep(-0.3))
	assert.Equal(t, float32(1), SmootherStep(1.7))
	assert.Less(t, SmootherStep(0.1), float32(0.1))
	assert.Greater(t, SmootherStep(0.9), float32(0.9))
}

func TestGradientVanishesOnLattice(t *testing.T) {
	for _, pt := range [][2]float32{{0, 0}, {3, 5}, {7, 2}, {14, 14}} {
		assert.Equal(t, float32(0), Gradient(pt[0], pt[1], 1234))
	}
	assert.NotEqual(t, float32(0), Gradient(3.5, 5.25, 1234))
}

func TestCornerGradientIsUnit(t *testing.T) {
	for x := int32(0); x < 20; x++ {
		for y := int32(0); y < 20; y++ {
			gx, gy := cornerGradient(x, y, 555)
			assert.InDelta(t, 1, gx*gx+gy*gy, 1e-5)
		}
	}
}

func TestOctaveDeterministicAndBounded(t *testing.T) {
	p := NewParams(6, 2, 0.5, 42)
	for y := float32(0); y < 64; y += 3 {
		for x := float32(0); x < 64; x += 3 {
			a := Octave(x, y, 32, 32, p)
			b := Octave(x, y, 32, 32, p)
			require.Equal(t, a, b)
			require.GreaterOrEqual(t, a, float32(0))
			require.LessOrEqual(t, a, float32(1))
		}
	}
}

func TestOctaveSeedsDecorrelate(t *testing.T) {
	a := NewParams(4, 3, 0.5, 1)
	b := NewParams(4, 3, 0.5, 2)
	diff := 0
	for i := float32(0); i < 50; i++ {
		if Octave(i*1.3, i*0.7, 64, 64, a) != Octave(i*1.3, i*0.7, 64, 64, b) {
			diff++
		}
	}
	assert.Greater(t, diff, 40)
}

func TestOctaveZeroOctaves(t *testing.T) {
	p := Params{Octaves: 0, Persistence: 0.5, InputRange: 2}
	assert.Equal(t, float32(0), Octave(10, 10, 20, 20, p))
}

func TestOctaveSafeAcrossGoroutines(t *testing.T) {
	p := NewParams(6, 4, 0.5, 9001)
	want := make([]float32, 256)
	for i := range want {
		want[i] = Octave(float32(i%16), float32(i/16), 16, 16, p)
	}
	var wg sync.WaitGroup
	got := make([][]float32, 4)
	for w := range got {
		got[w] = make([]float32, len(want))
		wg.Add(1)
		go func(out []float32) {
			defer wg.Done()
			for i := range out {
				out[i] = Octave(float32(i%16), float32(i/16), 16, 16, p)
			}
		}(got[w])
	}
	wg.Wait()
	for _, g := range got {
		assert.Equal(t, want, g)
	}
}

func TestParamsClamp(t *testing.T) {
	p := NewParams(12, 40, 3, 7)
	assert.Equal(t, MaxOctaves, p.Octaves)
	assert.Equal(t, MaxInputRange, p.InputRange)
	assert.Equal(t, float32(1), p.Persistence)
	assert.Equal(t, uint32(7), p.Seed)

	p = NewParams(0, -3, -0.5, 7)
	assert.Equal(t, MinOctaves, p.Octaves)
	assert.Equal(t, MinInputRange, p.InputRange)
	assert.Equal(t, float32(0), p.Persistence)

	p.ChangeOctaves(3)
	assert.Equal(t, 4, p.Octaves)
	p.ChangeOctaves(10)
	assert.Equal(t, MaxOctaves, p.Octaves)
	p.ChangeInputRange(-5)
	assert.Equal(t, MinInputRange, p.InputRange)
	p.ChangePersistence(0.25)
	assert.InDelta(t, 0.25, p.Persistence, 1e-6)

	p.Reset()
	assert.Equal(t, DefaultParams().Octaves, p.Octaves)
	assert.Equal(t, uint32(7), p.Seed)
}

func TestFieldByName(t *testing.T) {
	assert.IsType(t, GradientField{}, FieldByName("gradient"))
	assert.IsType(t, GradientField{}, FieldByName("unknown"))
	assert.IsType(t, &PerlinField{}, FieldByName(" Perlin "))
}

func TestPerlinFieldBoundedAndCached(t *testing.T) {
	f := NewPerlinField()
	p := NewParams(3, 2, 0.5, 11)
	for i := float32(0); i < 40; i++ {
		v := f.Octave(i, i*0.5, 40, 40, p)
		require.GreaterOrEqual(t, v, float32(0))
		require.LessOrEqual(t, v, float32(1))
		require.Equal(t, v, f.Octave(i, i*0.5, 40, 40, p))
	}
	assert.Same(t, f.generator(p), f.generator(p))
}
