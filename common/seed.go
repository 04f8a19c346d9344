package common

import "math"

// SeededRNG is a Mulberry32 pseudo-random number generator. All spawn
// randomness in the game flows through one of these so that rounds can be
// replayed deterministically under test.
type SeededRNG struct {
	state       uint32
	initialSeed uint32
}

// NewSeededRNG creates a generator with the given seed.
func NewSeededRNG(seed uint32) *SeededRNG {
	return &SeededRNG{
		state:       seed,
		initialSeed: seed,
	}
}

// SetSeed replaces the seed and resets the generator state.
func (r *SeededRNG) SetSeed(seed uint32) {
	r.state = seed
	r.initialSeed = seed
}

// Reset rewinds the generator to its initial seed.
func (r *SeededRNG) Reset() {
	r.state = r.initialSeed
}

// Random returns the next value in [0, 1) using the Mulberry32 step.
func (r *SeededRNG) Random() float64 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64((t^(t>>14))>>0) / 4294967296.0
}

// RandomFloat returns a value in [min, max).
func (r *SeededRNG) RandomFloat(min, max float64) float64 {
	return r.Random()*(max-min) + min
}

// RandomIndex returns an integer in [0, n). Used to pick a spawn edge.
func (r *SeededRNG) RandomIndex(n int) int {
	return int(r.Random() * float64(n))
}

// RandomAngle returns a direction in [0, 2*pi).
func (r *SeededRNG) RandomAngle() float64 {
	return r.Random() * 2 * math.Pi
}
