package rng

import (
	"math/bits"

	"github.com/zeebo/rng/internal/splitmix"
)

// Counter based generators (Widynski). Draw n is a pure function of n and the
// key, so setting the counter jumps anywhere in the stream.

// squaresKey builds a key with 16 hex digits where no digit is zero and no
// digit repeats within either 8 digit half.
func squaresKey(seed uint64) uint64 {
	sm := splitmix.New(seed)
	pick := func(n int) int {
		return int(float64(n) * float64(sm.Uint32()) * (1.0 / (1 << 32)))
	}

	hd := [15]uint64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
	var v uint64

	for n := 0; n < 8; n++ {
		i := pick(15 - n)
		v = v<<4 + hd[i]
		hd[i], hd[14-n] = hd[14-n], hd[i]
	}

	hd[7], hd[14] = hd[14], hd[7]
	i := pick(14)
	v = v<<4 + hd[i]
	hd[i], hd[14] = hd[14], hd[i]

	for n := 0; n < 7; n++ {
		i := pick(14 - n)
		v = v<<4 + hd[i]
		hd[i], hd[13-n] = hd[13-n], hd[i]
	}

	return v | 1
}

// squares is the shared counter and key state.
type squares struct {
	counter uint64
	key     uint64
}

func (s *squares) seed(seed uint64) {
	s.counter = 0
	s.key = squaresKey(seed)
}

func (s *squares) seedWords(k Kind, words []uint64) error {
	if err := exactWords(k, words, 2); err != nil {
		return err
	}
	if words[1]&1 == 0 {
		return ErrInvalidKey.New("%v key %#x must be odd", k, words[1])
	}
	s.counter, s.key = words[0], words[1]
	return nil
}

func (s *squares) state(k Kind) State {
	return State{Kind: k, Words: []uint64{s.counter, s.key}}
}

func (s *squares) setState(k Kind, st State) error {
	if err := st.check(k, 2); err != nil {
		return err
	}
	return s.seedWords(k, st.Words)
}

// rounds runs the three shared square-and-swap rounds and returns x, y and z.
func (s *squares) rounds() (x, y, z uint64) {
	s.counter++
	y = s.counter * s.key
	z = y + s.key
	x = y
	x = bits.RotateLeft64(x*x+y, 32)
	x = bits.RotateLeft64(x*x+z, 32)
	x = bits.RotateLeft64(x*x+y, 32)
	return x, y, z
}

// Counter returns the number of draws made since seeding.
func (s *squares) Counter() uint64 { return s.counter }

// SetCounter jumps so that the next draw is draw n+1.
func (s *squares) SetCounter(n uint64) { s.counter = n }

// Key returns the key.
func (s *squares) Key() uint64 { return s.key }

//
// Squares32
//

// Squares32 uses four rounds and returns 32 bits per draw.
type Squares32 struct {
	squares
}

// NewSquares32 returns a Squares32 seeded with seed.
func NewSquares32(seed uint64) *Squares32 {
	s := new(Squares32)
	s.Seed(seed)
	return s
}

func (s *Squares32) Kind() Kind                     { return KindSquares32 }
func (s *Squares32) Seed(seed uint64)               { s.seed(seed) }
func (s *Squares32) SeedWords(words []uint64) error { return s.seedWords(KindSquares32, words) }

func (s *Squares32) Next() uint32 {
	x, _, z := s.rounds()
	return uint32((x*x + z) >> 32)
}

func (s *Squares32) Uint32() uint32   { return s.Next() }
func (s *Squares32) Uint64() uint64   { return uint64(s.Next()) }
func (s *Squares32) Float64() float64 { return float32s(s.Next()) }

func (s *Squares32) State() State            { return s.state(KindSquares32) }
func (s *Squares32) SetState(st State) error { return s.setState(KindSquares32, st) }

//
// Squares64
//

// Squares64 uses five rounds and returns 64 bits per draw.
type Squares64 struct {
	squares
}

// NewSquares64 returns a Squares64 seeded with seed.
func NewSquares64(seed uint64) *Squares64 {
	s := new(Squares64)
	s.Seed(seed)
	return s
}

func (s *Squares64) Kind() Kind                     { return KindSquares64 }
func (s *Squares64) Seed(seed uint64)               { s.seed(seed) }
func (s *Squares64) SeedWords(words []uint64) error { return s.seedWords(KindSquares64, words) }

func (s *Squares64) Next() uint64 {
	x, y, z := s.rounds()
	t := x*x + z
	x = bits.RotateLeft64(t, 32)
	return t ^ (x*x+y)>>32
}

func (s *Squares64) Uint32() uint32   { return uint32(s.Next() >> 32) }
func (s *Squares64) Uint64() uint64   { return s.Next() }
func (s *Squares64) Float64() float64 { return float64s(s.Next()) }

func (s *Squares64) State() State            { return s.state(KindSquares64) }
func (s *Squares64) SetState(st State) error { return s.setState(KindSquares64, st) }
