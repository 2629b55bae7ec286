package core

import "math"

// FastRand is a xorshift64 generator
// Not safe for concurrent use; the simulation owns one instance per World
type FastRand struct {
	state uint64
}

// NewFastRand seeds a generator, zero seed is remapped since xorshift sticks at zero
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 0x9E3779B97F4A7C15
	}
	return &FastRand{state: seed}
}

// Next returns the next raw 64-bit value
func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	r.state = x
	return x
}

// Intn returns a value in [0, n), 0 for n <= 0
func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a value in [0, 1)
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a value in [lo, hi), lo when the range is empty
func (r *FastRand) Range(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + r.Float64()*(hi-lo)
}

// Bool returns true with probability 1/2
func (r *FastRand) Bool() bool {
	return r.Next()&(1<<32) != 0
}

// Radians converts degrees to radians
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}
