// Package rng wraps math/rand behind an injectable source so the
// simulation can be seeded in tests and soak runs.
package rng

import (
	"math/rand"
	"time"
)

type Source struct {
	r *rand.Rand
}

// New returns a source seeded with the given value.
func New(seed int64) *Source {
	return &Source{r: rand.New(rand.NewSource(seed))}
}

// NewFromTime returns a source seeded from the wall clock.
func NewFromTime() *Source {
	return New(time.Now().UnixNano())
}

func (s *Source) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.r.Intn(n)
}

// Between returns a uniform integer in [min, max] inclusive.
func (s *Source) Between(min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + s.r.Intn(max-min+1)
}

// Chance rolls a percentage check. pct <= 0 never passes, pct >= 100
// always passes.
func (s *Source) Chance(pct int) bool {
	if pct <= 0 {
		return false
	}
	if pct >= 100 {
		return true
	}
	return s.r.Intn(100) < pct
}

func (s *Source) Float64() float64 {
	return s.r.Float64()
}

func (s *Source) Shuffle(n int, swap func(i, j int)) {
	s.r.Shuffle(n, swap)
}

// Pick returns a uniformly chosen element. The zero value is returned
// for an empty list.
func Pick[T any](s *Source, list []T) T {
	var zero T
	if len(list) == 0 {
		return zero
	}
	return list[s.r.Intn(len(list))]
}
