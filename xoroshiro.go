package rng

import (
	"math/bits"

	"github.com/zeebo/rng/internal/splitmix"
)

// Scrambled linear generators (Blackman and Vigna), all using the ** output
// scrambler.

func starstar(x uint64) uint64 { return bits.RotateLeft64(x*5, 7) * 9 }

//
// Xoroshiro256
//

// Xoroshiro256 is xoshiro256**, period 2^256 - 1.
type Xoroshiro256 struct {
	s [4]uint64
}

// NewXoroshiro256 returns a Xoroshiro256 seeded with seed.
func NewXoroshiro256(seed uint64) *Xoroshiro256 {
	x := new(Xoroshiro256)
	x.Seed(seed)
	return x
}

func (x *Xoroshiro256) Kind() Kind { return KindXoroshiro256 }

func (x *Xoroshiro256) Seed(seed uint64) {
	sm := splitmix.New(seed)
	sm.Fill64(x.s[:])
}

func (x *Xoroshiro256) SeedWords(words []uint64) error {
	if err := exactWords(KindXoroshiro256, words, len(x.s)); err != nil {
		return err
	}
	copy(x.s[:], words)
	return nil
}

func (x *Xoroshiro256) Next() uint64 {
	s := &x.s
	s1 := s[1]
	out := starstar(s1)

	s[2] ^= s[0]
	s[3] ^= s1
	s[1] ^= s[2]
	s[0] ^= s[3]
	s[2] ^= s1 << 17
	s[3] = bits.RotateLeft64(s[3], 45)

	return out
}

func (x *Xoroshiro256) Uint32() uint32   { return uint32(x.Next() >> 32) }
func (x *Xoroshiro256) Uint64() uint64   { return x.Next() }
func (x *Xoroshiro256) Float64() float64 { return float64s(x.Next()) }

func (x *Xoroshiro256) State() State {
	return State{Kind: KindXoroshiro256, Words: append([]uint64(nil), x.s[:]...)}
}

func (x *Xoroshiro256) SetState(s State) error {
	if err := s.check(KindXoroshiro256, len(x.s)); err != nil {
		return err
	}
	copy(x.s[:], s.Words)
	return nil
}

//
// Xoroshiro512
//

// Xoroshiro512 is xoshiro512**, period 2^512 - 1.
type Xoroshiro512 struct {
	s [8]uint64
}

// NewXoroshiro512 returns a Xoroshiro512 seeded with seed.
func NewXoroshiro512(seed uint64) *Xoroshiro512 {
	x := new(Xoroshiro512)
	x.Seed(seed)
	return x
}

func (x *Xoroshiro512) Kind() Kind { return KindXoroshiro512 }

func (x *Xoroshiro512) Seed(seed uint64) {
	sm := splitmix.New(seed)
	sm.Fill64(x.s[:])
}

func (x *Xoroshiro512) SeedWords(words []uint64) error {
	if err := exactWords(KindXoroshiro512, words, len(x.s)); err != nil {
		return err
	}
	copy(x.s[:], words)
	return nil
}

func (x *Xoroshiro512) Next() uint64 {
	s := &x.s
	s1 := s[1]
	out := starstar(s1)

	s[2] ^= s[0]
	s[5] ^= s1
	s[1] ^= s[2]
	s[7] ^= s[3]
	s[3] ^= s[4]
	s[4] ^= s[5]
	s[0] ^= s[6]
	s[6] ^= s[7]
	s[6] ^= s1 << 11
	s[7] = bits.RotateLeft64(s[7], 21)

	return out
}

func (x *Xoroshiro512) Uint32() uint32   { return uint32(x.Next() >> 32) }
func (x *Xoroshiro512) Uint64() uint64   { return x.Next() }
func (x *Xoroshiro512) Float64() float64 { return float64s(x.Next()) }

func (x *Xoroshiro512) State() State {
	return State{Kind: KindXoroshiro512, Words: append([]uint64(nil), x.s[:]...)}
}

func (x *Xoroshiro512) SetState(s State) error {
	if err := s.check(KindXoroshiro512, len(x.s)); err != nil {
		return err
	}
	copy(x.s[:], s.Words)
	return nil
}

//
// Xoroshiro1024
//

// Xoroshiro1024 is xoroshiro1024**, period 2^1024 - 1.
type Xoroshiro1024 struct {
	s     [16]uint64
	index int
}

// NewXoroshiro1024 returns a Xoroshiro1024 seeded with seed.
func NewXoroshiro1024(seed uint64) *Xoroshiro1024 {
	x := new(Xoroshiro1024)
	x.Seed(seed)
	return x
}

func (x *Xoroshiro1024) Kind() Kind { return KindXoroshiro1024 }

func (x *Xoroshiro1024) Seed(seed uint64) {
	sm := splitmix.New(seed)
	sm.Fill64(x.s[:])
	x.index = 0
}

func (x *Xoroshiro1024) SeedWords(words []uint64) error {
	w, err := expandWords(KindXoroshiro1024, words, len(x.s))
	if err != nil {
		return err
	}
	copy(x.s[:], w)
	x.index = 0
	return nil
}

func (x *Xoroshiro1024) Next() uint64 {
	s := &x.s
	q := x.index
	p := (q + 1) & 15
	x.index = p

	s0 := s[p]
	s15 := s[q] ^ s0

	s[q] = bits.RotateLeft64(s0, 25) ^ s15 ^ s15<<27
	s[p] = bits.RotateLeft64(s15, 36)

	return starstar(s0)
}

func (x *Xoroshiro1024) Uint32() uint32   { return uint32(x.Next() >> 32) }
func (x *Xoroshiro1024) Uint64() uint64   { return x.Next() }
func (x *Xoroshiro1024) Float64() float64 { return float64s(x.Next()) }

func (x *Xoroshiro1024) State() State {
	return State{Kind: KindXoroshiro1024, Words: append([]uint64(nil), x.s[:]...), Index: x.index}
}

func (x *Xoroshiro1024) SetState(s State) error {
	if err := s.check(KindXoroshiro1024, len(x.s)); err != nil {
		return err
	}
	copy(x.s[:], s.Words)
	x.index = s.cursor(len(x.s))
	return nil
}
