package noise

import "math"

// octaveSeedStride decorrelates octaves that share a base seed.
const octaveSeedStride uint32 = 7322071

const (
	gradientZX = 0
	gradientZY = 100

	theoreticalMin = -0.707
	theoreticalMax = 0.707
)

// SmootherStep is the quintic 6t^5 - 15t^4 + 10t^3 curve clamped to [0, 1].
func SmootherStep(t float32) float32 {
	v := t * t * t * (t*(t*6-15) + 10)
	if v >= 1 {
		return 1
	}
	if v <= 0 {
		return 0
	}
	return v
}

// Lerp interpolates between a and b.
func Lerp(a, b, w float32) float32 {
	return (1-w)*a + w*b
}

// Normalize maps x from [min, max] onto [0, 1] without clamping.
func Normalize(x, min, max float32) float32 {
	return (x - min) / (max - min)
}

// Gradient samples smoothed 2D gradient noise at (x, y). Output lies roughly
// in [-0.707, 0.707].
func Gradient(x, y float32, seed uint32) float32 {
	x0 := int32(math.Floor(float64(x)))
	y0 := int32(math.Floor(float64(y)))
	x1 := x0 + 1
	y1 := y0 + 1

	wx := SmootherStep(x - float32(x0))
	wy := SmootherStep(y - float32(y0))

	top := Lerp(dotGridGradient(x0, y0, x, y, seed), dotGridGradient(x1, y0, x, y, seed), wx)
	bottom := Lerp(dotGridGradient(x0, y1, x, y, seed), dotGridGradient(x1, y1, x, y, seed), wx)
	return Lerp(top, bottom, wy)
}

// Scaled maps (x, y) from a [0, maxX] x [0, maxY] extent onto inputRange
// noise cells and samples Gradient there.
func Scaled(x, y, maxX, maxY float32, inputRange int, seed uint32) float32 {
	if maxX <= 0 {
		maxX = 1
	}
	if maxY <= 0 {
		maxY = 1
	}
	gx := (x / maxX) * float32(inputRange)
	gy := (y / maxY) * float32(inputRange)
	return Gradient(gx, gy, seed)
}

// Octave sums p.Octaves layers of Scaled noise, normalizes the result into
// [0, 1] and applies one SmootherStep contrast pass.
func Octave(x, y, maxX, maxY float32, p Params) float32 {
	if p.Octaves <= 0 {
		return 0
	}
	var sum, total float32
	amplitude := float32(1)
	inputRange := p.InputRange
	for i := 0; i < p.Octaves; i++ {
		total += amplitude
		seed := p.Seed + uint32(i)*octaveSeedStride
		sum += Scaled(x, y, maxX, maxY, inputRange, seed) * amplitude
		amplitude *= p.Persistence
		inputRange *= 2
	}
	sum /= total
	return SmootherStep(Normalize(sum, theoreticalMin, theoreticalMax))
}

func dotGridGradient(cellX, cellY int32, x, y float32, seed uint32) float32 {
	dx := x - float32(cellX)
	dy := y - float32(cellY)
	gx, gy := cornerGradient(cellX, cellY, seed)
	return dx*gx + dy*gy
}

// cornerGradient returns the unit gradient for a lattice corner.
func cornerGradient(cellX, cellY int32, seed uint32) (float32, float32) {
	gx := Uniform3D(cellY, cellX, gradientZX, seed)
	gy := Uniform3D(cellY, cellX, gradientZY, seed)
	length := float32(math.Sqrt(float64(gx*gx + gy*gy)))
	if length == 0 {
		return 1, 0
	}
	return gx / length, gy / length
}
