// Package rng is the single source of randomness for a generation run.
//
// Every draw of a run goes through one *Rand, so the sequence of calls is part
// of the output: generators document the order in which they draw and the
// same seed with the same configuration reproduces the same picture.
package rng

import (
	"errors"
	"math/rand"
)

// ErrEmptyChoice indicates a choice from an empty set.
var ErrEmptyChoice = errors.New("rng: choice from empty set")

// Rand is a seeded uniform source. It is not safe for concurrent use; batch
// runs create one Rand per seed.
type Rand struct {
	seed  int64
	src   *rand.Rand
	draws int
}

// New creates a Rand seeded with seed.
func New(seed int64) *Rand {
	return &Rand{seed: seed, src: rand.New(rand.NewSource(seed))}
}

// Seed returns the seed the source was created with.
func (r *Rand) Seed() int64 {
	return r.seed
}

// Draws reports how many values have been drawn so far.
func (r *Rand) Draws() int {
	return r.draws
}

// Float64 returns a uniform value in [0, 1).
func (r *Rand) Float64() float64 {
	r.draws++
	return r.src.Float64()
}

// Centered returns a uniform value in [-0.5, 0.5).
func (r *Rand) Centered() float64 {
	return r.Float64() - 0.5
}

// Between returns lo + (hi-lo)*u for a fresh uniform u.
func (r *Rand) Between(lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}

// IntBetween picks an integer uniformly from [lo, hi]. When hi < lo it returns
// lo without drawing.
func (r *Rand) IntBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	r.draws++
	return lo + r.src.Intn(hi-lo+1)
}

// Choice picks one element uniformly.
func (r *Rand) Choice(items []string) (string, error) {
	if len(items) == 0 {
		return "", ErrEmptyChoice
	}
	r.draws++
	return items[r.src.Intn(len(items))], nil
}
