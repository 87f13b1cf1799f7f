package rng

import "math/rand"

// source adapts a Generator to math/rand.
type source struct {
	r Rand
}

var _ rand.Source64 = (*source)(nil)

// Source returns a math/rand.Source64 drawing from g, so that g can back a
// *rand.Rand. The returned source shares g's state.
func Source(g Generator) rand.Source64 {
	return &source{r: Rand{g: g}}
}

func (s *source) Int63() int64    { return int64(s.r.Uint64() >> 1) }
func (s *source) Uint64() uint64  { return s.r.Uint64() }
func (s *source) Seed(seed int64) { s.r.Seed(uint64(seed)) }
