package util

import "math/rand"

func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	src := rand.NewSource(seed)
	return rand.New(src)
}

// Jitter returns v displaced uniformly within ±amount.
func Jitter(rng *rand.Rand, v, amount float64) float64 {
	if amount <= 0 {
		return v
	}
	return v + (rng.Float64()*2-1)*amount
}
