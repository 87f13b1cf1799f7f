package rng

import (
	"github.com/zeebo/rng/internal/splitmix"
)

// FastRand engines are bare LCGs. They are quick and statistically weak, and
// are meant for callers who only want speed. NewFastRand32 and NewFastRand63
// seed from the clock.

const fastRand63Mask = 1<<63 - 1

//
// FastRand32
//

// FastRand32 is the 32 bit LCG x = 69069*x + 1.
type FastRand32 struct {
	state uint32
}

// NewFastRand32 returns a FastRand32 seeded from the clock.
func NewFastRand32() *FastRand32 {
	f := new(FastRand32)
	SeedTime(f)
	return f
}

func (f *FastRand32) Kind() Kind { return KindFastRand32 }

func (f *FastRand32) Seed(seed uint64) {
	sm := splitmix.New(seed)
	f.state = sm.Uint32()
}

func (f *FastRand32) SeedWords(words []uint64) error {
	if err := exactWords(KindFastRand32, words, 1); err != nil {
		return err
	}
	f.state = uint32(words[0])
	return nil
}

func (f *FastRand32) Next() uint32 {
	f.state = 69069*f.state + 1
	return f.state
}

func (f *FastRand32) Uint32() uint32   { return f.Next() }
func (f *FastRand32) Uint64() uint64   { return uint64(f.Next()) }
func (f *FastRand32) Float64() float64 { return float32s(f.Next()) }

func (f *FastRand32) State() State {
	return State{Kind: KindFastRand32, Words: []uint64{uint64(f.state)}}
}

func (f *FastRand32) SetState(s State) error {
	if err := s.check(KindFastRand32, 1); err != nil {
		return err
	}
	f.state = uint32(s.Words[0])
	return nil
}

//
// FastRand63
//

// FastRand63 is an LCG modulo 2^63 returning 63 bits per draw.
type FastRand63 struct {
	state uint64
}

// NewFastRand63 returns a FastRand63 seeded from the clock.
func NewFastRand63() *FastRand63 {
	f := new(FastRand63)
	SeedTime(f)
	return f
}

func (f *FastRand63) Kind() Kind { return KindFastRand63 }

func (f *FastRand63) Seed(seed uint64) {
	sm := splitmix.New(seed)
	f.state = sm.Uint63()
}

func (f *FastRand63) SeedWords(words []uint64) error {
	if err := exactWords(KindFastRand63, words, 1); err != nil {
		return err
	}
	f.state = words[0] & fastRand63Mask
	return nil
}

func (f *FastRand63) Next() uint64 {
	f.state = (0x7ff319faa77be975*f.state + 1) & fastRand63Mask
	return f.state
}

func (f *FastRand63) Uint32() uint32   { return uint32(f.Next() >> 31) }
func (f *FastRand63) Uint64() uint64   { return f.Next() }
func (f *FastRand63) Float64() float64 { return float63(f.Next()) }

func (f *FastRand63) State() State {
	return State{Kind: KindFastRand63, Words: []uint64{f.state}}
}

func (f *FastRand63) SetState(s State) error {
	if err := s.check(KindFastRand63, 1); err != nil {
		return err
	}
	f.state = s.Words[0] & fastRand63Mask
	return nil
}
