// Package splitmix implements the SplitMix64 generator used to expand a single
// seed word into the larger states of the other engines.
package splitmix

// T is a SplitMix64 generator. The zero value is valid and is seeded with 0.
type T struct {
	state uint64
}

// New returns a T seeded with seed.
func New(seed uint64) T { return T{state: seed} }

// Uint64 returns the next 64 bit output.
func (s *T) Uint64() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// Uint63 returns the top 63 bits of the next output.
func (s *T) Uint63() uint64 { return s.Uint64() >> 1 }

// Uint32 returns the top 32 bits of the next output.
func (s *T) Uint32() uint32 { return uint32(s.Uint64() >> 32) }

// Uint31 returns the top 31 bits of the next output.
func (s *T) Uint31() uint32 { return uint32(s.Uint64() >> 33) }

// Fill64 fills buf with successive outputs.
func (s *T) Fill64(buf []uint64) {
	for i := range buf {
		buf[i] = s.Uint64()
	}
}

// Fill32 fills buf with successive 32 bit outputs.
func (s *T) Fill32(buf []uint32) {
	for i := range buf {
		buf[i] = s.Uint32()
	}
}

// Fill31 fills buf with successive 31 bit outputs.
func (s *T) Fill31(buf []uint32) {
	for i := range buf {
		buf[i] = s.Uint31()
	}
}
