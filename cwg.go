package rng

import (
	"github.com/zeebo/rng/internal/splitmix"
	"github.com/zeebo/rng/internal/uint128"
)

// Collatz-Weyl generators (Dzialo). A chaotic Collatz-like state is mixed with
// a Weyl sequence advancing by an odd increment s. Distinct increments give
// independent streams, so there is no jump function.

//
// Cwg64
//

// Cwg64 has 64 bit words throughout and a period of at least 2^70.
type Cwg64 struct {
	a, s, state, weyl uint64
}

// NewCwg64 returns a Cwg64 seeded with seed.
func NewCwg64(seed uint64) *Cwg64 {
	c := new(Cwg64)
	c.Seed(seed)
	return c
}

func (c *Cwg64) Kind() Kind { return KindCwg64 }

func (c *Cwg64) Seed(seed uint64) {
	sm := splitmix.New(seed)
	c.a, c.weyl = 0, 0
	c.s = sm.Uint64() | 1
	c.state = sm.Uint64()
}

// SeedWords takes a, s, state and weyl in that order.
func (c *Cwg64) SeedWords(words []uint64) error {
	if err := exactWords(KindCwg64, words, 4); err != nil {
		return err
	}
	if words[1]&1 == 0 {
		return ErrInvalidIncrement.New("%v increment %#x must be odd", KindCwg64, words[1])
	}
	c.a, c.s, c.state, c.weyl = words[0], words[1], words[2], words[3]
	return nil
}

// Increment returns the Weyl increment.
func (c *Cwg64) Increment() uint64 { return c.s }

// SetIncrement selects the stream. s must be odd.
func (c *Cwg64) SetIncrement(s uint64) error {
	if s&1 == 0 {
		return ErrInvalidIncrement.New("%v increment %#x must be odd", KindCwg64, s)
	}
	c.s = s
	return nil
}

func (c *Cwg64) Next() uint64 {
	c.a += c.state
	c.weyl += c.s
	c.state = (c.state>>1)*(c.a|1) ^ c.weyl
	return c.state ^ c.a>>48
}

func (c *Cwg64) Uint32() uint32   { return uint32(c.Next() >> 32) }
func (c *Cwg64) Uint64() uint64   { return c.Next() }
func (c *Cwg64) Float64() float64 { return float64s(c.Next()) }

func (c *Cwg64) State() State {
	return State{Kind: KindCwg64, Words: []uint64{c.a, c.s, c.state, c.weyl}}
}

func (c *Cwg64) SetState(s State) error {
	if err := s.check(KindCwg64, 4); err != nil {
		return err
	}
	return c.SeedWords(s.Words)
}

//
// Cwg128x64
//

// Cwg128x64 keeps a 128 bit chaotic state with 64 bit Weyl words and returns
// 64 bits per draw. Its period is at least 2^71.
type Cwg128x64 struct {
	a, s, weyl uint64
	state      uint128.T
}

// NewCwg128x64 returns a Cwg128x64 seeded with seed.
func NewCwg128x64(seed uint64) *Cwg128x64 {
	c := new(Cwg128x64)
	c.Seed(seed)
	return c
}

func (c *Cwg128x64) Kind() Kind { return KindCwg128x64 }

func (c *Cwg128x64) Seed(seed uint64) {
	sm := splitmix.New(seed)
	c.a, c.weyl = 0, 0
	c.s = sm.Uint64() | 1
	c.state.Hi = sm.Uint64()
	c.state.Lo = sm.Uint64()
}

// Seed128 seeds the high and low halves from separate SplitMix streams.
func (c *Cwg128x64) Seed128(hi, lo uint64) {
	smHi, smLo := splitmix.New(hi), splitmix.New(lo)
	c.a, c.weyl = 0, 0
	c.s = smLo.Uint64() | 1
	c.state.Hi = smHi.Uint64()
	c.state.Lo = smLo.Uint64()
}

// SeedWords takes a, s, state high, state low and weyl in that order.
func (c *Cwg128x64) SeedWords(words []uint64) error {
	if err := exactWords(KindCwg128x64, words, 5); err != nil {
		return err
	}
	if words[1]&1 == 0 {
		return ErrInvalidIncrement.New("%v increment %#x must be odd", KindCwg128x64, words[1])
	}
	c.a, c.s, c.weyl = words[0], words[1], words[4]
	c.state = uint128.T{Hi: words[2], Lo: words[3]}
	return nil
}

// Increment returns the Weyl increment.
func (c *Cwg128x64) Increment() uint64 { return c.s }

// SetIncrement selects the stream. s must be odd.
func (c *Cwg128x64) SetIncrement(s uint64) error {
	if s&1 == 0 {
		return ErrInvalidIncrement.New("%v increment %#x must be odd", KindCwg128x64, s)
	}
	c.s = s
	return nil
}

func (c *Cwg128x64) Next() uint64 {
	c.a += c.state.Lo
	c.weyl += c.s
	c.state = c.state.Or(uint128.From64(1)).Mul(uint128.From64(c.a >> 1))
	c.state.Lo ^= c.weyl
	return c.state.Lo ^ c.a>>48
}

func (c *Cwg128x64) Uint32() uint32   { return uint32(c.Next() >> 32) }
func (c *Cwg128x64) Uint64() uint64   { return c.Next() }
func (c *Cwg128x64) Float64() float64 { return float64s(c.Next()) }

func (c *Cwg128x64) State() State {
	return State{Kind: KindCwg128x64, Words: []uint64{c.a, c.s, c.state.Hi, c.state.Lo, c.weyl}}
}

func (c *Cwg128x64) SetState(s State) error {
	if err := s.check(KindCwg128x64, 5); err != nil {
		return err
	}
	return c.SeedWords(s.Words)
}

//
// Cwg128
//

// Cwg128 has 128 bit words throughout and returns 128 bits per draw. Its
// period is at least 2^135.
type Cwg128 struct {
	a, s, state, weyl uint128.T
}

// NewCwg128 returns a Cwg128 seeded with seed.
func NewCwg128(seed uint64) *Cwg128 {
	c := new(Cwg128)
	c.Seed(seed)
	return c
}

func (c *Cwg128) Kind() Kind { return KindCwg128 }

func (c *Cwg128) Seed(seed uint64) {
	sm := splitmix.New(seed)
	c.a, c.weyl = uint128.T{}, uint128.T{}
	c.s.Hi = sm.Uint64()
	c.s.Lo = sm.Uint64() | 1
	c.state.Hi = sm.Uint64()
	c.state.Lo = sm.Uint64()
}

// Seed128 seeds the high and low halves from separate SplitMix streams.
func (c *Cwg128) Seed128(hi, lo uint64) {
	smHi, smLo := splitmix.New(hi), splitmix.New(lo)
	c.a, c.weyl = uint128.T{}, uint128.T{}
	c.s.Hi = smHi.Uint64()
	c.s.Lo = smLo.Uint64() | 1
	c.state.Hi = smHi.Uint64()
	c.state.Lo = smLo.Uint64()
}

// SeedWords takes a, s, state and weyl as high/low word pairs in that order.
func (c *Cwg128) SeedWords(words []uint64) error {
	if err := exactWords(KindCwg128, words, 8); err != nil {
		return err
	}
	if words[3]&1 == 0 {
		return ErrInvalidIncrement.New("%v increment %#x%016x must be odd", KindCwg128, words[2], words[3])
	}
	c.a = uint128.T{Hi: words[0], Lo: words[1]}
	c.s = uint128.T{Hi: words[2], Lo: words[3]}
	c.state = uint128.T{Hi: words[4], Lo: words[5]}
	c.weyl = uint128.T{Hi: words[6], Lo: words[7]}
	return nil
}

// Increment returns the Weyl increment.
func (c *Cwg128) Increment() uint128.T { return c.s }

// SetIncrement selects the stream. s must be odd.
func (c *Cwg128) SetIncrement(s uint128.T) error {
	if s.Lo&1 == 0 {
		return ErrInvalidIncrement.New("%v increment %#x%016x must be odd", KindCwg128, s.Hi, s.Lo)
	}
	c.s = s
	return nil
}

// Next returns a full 128 bit draw.
func (c *Cwg128) Next() uint128.T {
	c.a = c.a.Add(c.state)
	c.weyl = c.weyl.Add(c.s)
	c.state = c.state.Rsh(1).Mul(c.a.Or(uint128.From64(1))).Xor(c.weyl)
	return c.state.Xor(c.a.Rsh(96))
}

func (c *Cwg128) Uint32() uint32 { return uint32(c.Next().Hi >> 32) }
func (c *Cwg128) Uint64() uint64 { return c.Next().Hi }

func (c *Cwg128) Float64() float64 { return float64s(c.Next().Hi) }

func (c *Cwg128) State() State {
	return State{Kind: KindCwg128, Words: []uint64{
		c.a.Hi, c.a.Lo,
		c.s.Hi, c.s.Lo,
		c.state.Hi, c.state.Lo,
		c.weyl.Hi, c.weyl.Lo,
	}}
}

func (c *Cwg128) SetState(s State) error {
	if err := s.check(KindCwg128, 8); err != nil {
		return err
	}
	return c.SeedWords(s.Words)
}
