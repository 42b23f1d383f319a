// Package noise provides seeded hash noise and smoothed multi-octave gradient
// noise. Every function is pure: the seed travels with the call.
package noise

const (
	bitNoise1 uint32 = 0x68e31da4
	bitNoise2 uint32 = 0xb5297a4d
	bitNoise3 uint32 = 0x1b56c4e9

	primeY int32 = 198491317
	primeZ int32 = 6543989

	maxUint32 = float32(0xffffffff)
	maxInt32  = float32(0x7fffffff)
)

// Hash1D mangles x and seed into a 32-bit pseudo-random value.
func Hash1D(x int32, seed uint32) uint32 {
	m := uint32(x)
	m *= bitNoise1
	m += seed
	m ^= m >> 8
	m *= bitNoise2
	m ^= m << 8
	m *= bitNoise3
	m ^= m >> 8
	return m
}

// Hash2D folds y through a large prime into x.
func Hash2D(x, y int32, seed uint32) uint32 {
	return Hash1D(x+primeY*y, seed)
}

// Hash3D folds y and z through two primes into x.
func Hash3D(x, y, z int32, seed uint32) uint32 {
	return Hash1D(x+primeY*y+primeZ*z, seed)
}

// Uniform1D maps Hash1D into [0, 1].
func Uniform1D(x int32, seed uint32) float32 {
	return float32(Hash1D(x, seed)) / maxUint32
}

// Uniform2D maps Hash2D into [0, 1].
func Uniform2D(x, y int32, seed uint32) float32 {
	return float32(Hash2D(x, y, seed)) / maxUint32
}

// Uniform3D maps Hash3D into [-1, 1].
func Uniform3D(x, y, z int32, seed uint32) float32 {
	return 2*(float32(Hash3D(x, y, z, seed))/maxUint32) - 1
}

// Signed1D reinterprets Hash1D as signed and maps it into [-1, 1].
func Signed1D(x int32, seed uint32) float32 {
	return float32(int32(Hash1D(x, seed))) / maxInt32
}

// Signed2D reinterprets Hash2D as signed and maps it into [-1, 1].
func Signed2D(x, y int32, seed uint32) float32 {
	return float32(int32(Hash2D(x, y, seed))) / maxInt32
}
