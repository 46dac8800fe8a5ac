package vmath

import "math"

// Rand is the sampling surface used by spawners
type Rand interface {
	Intn(n int) int
}

// FastRand is a xorshift64 (13, 17, 5) generator, not safe for concurrent use
type FastRand struct {
	state uint64
}

// NewFastRand seeds a generator, zero seed is remapped since xorshift has a zero fixed point
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
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

// --- Wrapping ---

// WrapInt maps v into [0, n) with true (non-negative) modulo
func WrapInt(v, n int) int {
	if n <= 0 {
		return 0
	}
	m := v % n
	if m < 0 {
		m += n
	}
	return m
}

// WrapFloat maps v into [0, n) with true (non-negative) modulo
func WrapFloat(v, n float64) float64 {
	if n <= 0 {
		return 0
	}
	m := math.Mod(v, n)
	if m < 0 {
		m += n
	}
	// -tiny + n rounds to n in float64
	if m >= n {
		m = 0
	}
	return m
}
