package core

import "time"

// RNG is a deterministic pseudo-random number generator.
// Uses a 64-bit LCG; the whole state is one word so snapshots can carry it.
type RNG struct {
	state uint64
}

// NewRNG creates a new RNG with the given seed.
func NewRNG(seed int64) *RNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &RNG{state: s}
}

// State returns the raw generator state.
func (r *RNG) State() uint64 {
	return r.state
}

// Next generates the next random uint64.
func (r *RNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a random int in [0, n).
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	// High bits of an LCG are the well-mixed ones.
	return int((r.Next() >> 33) % uint64(n)) //#nosec G115 -- n is always positive
}

// IntRange returns a random int in [min, max], both inclusive.
func (r *RNG) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.Intn(max-min+1)
}

// Float64 returns a random float64 in [0, 1).
func (r *RNG) Float64() float64 {
	return float64(r.Next()>>11) / float64(1<<53)
}

// Range returns a random float64 in [min, max).
func (r *RNG) Range(min, max float64) float64 {
	return min + (max-min)*r.Float64()
}

// Bool returns a fair coin flip.
func (r *RNG) Bool() bool {
	return r.Next()>>63 == 1
}

// Chance returns true with probability p.
func (r *RNG) Chance(p float64) bool {
	return r.Float64() < p
}

// Weighted picks an index from integer weights with a cumulative draw.
// Returns -1 when no weight is positive.
func (r *RNG) Weighted(weights []int) int {
	total := 0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return -1
	}

	roll := r.Intn(total)
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if roll < w {
			return i
		}
		roll -= w
	}
	return len(weights) - 1
}

// DailySeed returns a seed shared by everyone on the same calendar day (YYYYMMDD).
func DailySeed(now time.Time) int64 {
	y, m, d := now.Date()
	return int64(y*10000 + int(m)*100 + d)
}
