// Package rng provides the seedable random sources used by level generation.
// Every generation call takes an explicit Random so runs can be reproduced.
package rng

import (
	"math/rand"
	"time"
)

// Random produces integers uniformly distributed in a closed range.
type Random interface {
	// Number returns an integer in [min, max]. When min > max, min is
	// clamped to max and max is returned.
	Number(min, max int) int
}

// Chance returns true with the given percent probability (0-100).
func Chance(r Random, percent int) bool {
	return r.Number(0, 99) < percent
}

// Source adapts a *rand.Rand to Random.
type Source struct {
	r *rand.Rand
}

// FromRand wraps an existing *rand.Rand.
func FromRand(r *rand.Rand) *Source {
	return &Source{r: r}
}

// NewSource returns a Source seeded with seed.
func NewSource(seed int64) *Source {
	return FromRand(rand.New(rand.NewSource(seed)))
}

// Number returns an integer in [min, max]
func (s *Source) Number(min, max int) int {
	if min >= max {
		return max
	}
	return min + s.r.Intn(max-min+1)
}

// NewTimeSeeded returns a CMWC generator seeded from the wall clock.
func NewTimeSeeded() *CMWC {
	return NewCMWC(uint32(time.Now().UnixNano()))
}
