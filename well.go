package rng

import (
	"github.com/zeebo/rng/internal/splitmix"
)

// Well Equidistributed Long-period Linear generators (Panneton, L'Ecuyer and
// Matsumoto). The buffer is walked backwards: each step writes the new word at
// the cursor and the feedback word just before it, then moves the cursor back.

func m3pos(x uint32, t uint) uint32 { return x ^ x>>t }
func m3neg(x uint32, t uint) uint32 { return x ^ x<<t }

func m5neg(x uint32, t uint, a uint32) uint32 { return x ^ x<<t&a }

func m6(x uint32, q, t, s uint, a uint32) uint32 {
	y := (x<<q ^ x>>(32-q)) &^ (1 << s)
	if x&(1<<t) != 0 {
		return y ^ a
	}
	return y
}

// temper is the Matsumoto-Kurita tempering used by the c and b variants.
func temper(x, b, c uint32) uint32 {
	x ^= x << 7 & b
	return x ^ x<<15&c
}

//
// Well512a
//

// Well512a has a period of 2^512 - 1.
type Well512a struct {
	list  [16]uint32
	index int
}

// NewWell512a returns a Well512a seeded with seed.
func NewWell512a(seed uint64) *Well512a {
	w := new(Well512a)
	w.Seed(seed)
	return w
}

func (w *Well512a) Kind() Kind { return KindWell512a }

func (w *Well512a) Seed(seed uint64) {
	sm := splitmix.New(seed)
	sm.Fill32(w.list[:])
	w.index = 0
}

func (w *Well512a) SeedWords(words []uint64) error {
	v, err := expandWords(KindWell512a, words, len(w.list))
	if err != nil {
		return err
	}
	load32(w.list[:], v)
	w.index = 0
	return nil
}

// Next advances the generator and returns the new word.
func (w *Well512a) Next() uint32 {
	l, i := &w.list, w.index
	i1 := (i - 1) & 15

	z0 := l[i1]
	z1 := m3neg(l[i], 16) ^ m3neg(l[(i+13)&15], 15)
	z2 := m3pos(l[(i+9)&15], 11)
	z3 := z1 ^ z2

	l[i] = z3
	l[i1] = m3neg(z0, 2) ^ m3neg(z1, 18) ^ z2<<28 ^ m5neg(z3, 5, 0xda442d24)
	w.index = i1

	return z3
}

func (w *Well512a) Uint32() uint32   { return w.Next() }
func (w *Well512a) Uint64() uint64   { return uint64(w.Next()) }
func (w *Well512a) Float64() float64 { return float32s(w.Next()) }

func (w *Well512a) State() State {
	return State{Kind: KindWell512a, Words: words32(w.list[:]), Index: w.index}
}

func (w *Well512a) SetState(s State) error {
	if err := s.check(KindWell512a, len(w.list)); err != nil {
		return err
	}
	load32(w.list[:], s.Words)
	w.index = s.cursor(len(w.list))
	return nil
}

//
// Well1024a
//

// Well1024a has a period of 2^1024 - 1.
type Well1024a struct {
	list  [32]uint32
	index int
}

// NewWell1024a returns a Well1024a seeded with seed.
func NewWell1024a(seed uint64) *Well1024a {
	w := new(Well1024a)
	w.Seed(seed)
	return w
}

func (w *Well1024a) Kind() Kind { return KindWell1024a }

func (w *Well1024a) Seed(seed uint64) {
	sm := splitmix.New(seed)
	sm.Fill32(w.list[:])
	w.index = 0
}

func (w *Well1024a) SeedWords(words []uint64) error {
	v, err := expandWords(KindWell1024a, words, len(w.list))
	if err != nil {
		return err
	}
	load32(w.list[:], v)
	w.index = 0
	return nil
}

// Next advances the generator and returns the new word.
func (w *Well1024a) Next() uint32 {
	l, i := &w.list, w.index
	i1 := (i - 1) & 31

	z0 := l[i1]
	z1 := l[i] ^ m3pos(l[(i+3)&31], 8)
	z2 := m3neg(l[(i+24)&31], 19) ^ m3neg(l[(i+10)&31], 14)
	z3 := z1 ^ z2

	l[i] = z3
	l[i1] = m3neg(z0, 11) ^ m3neg(z1, 7) ^ m3neg(z2, 13)
	w.index = i1

	return z3
}

func (w *Well1024a) Uint32() uint32   { return w.Next() }
func (w *Well1024a) Uint64() uint64   { return uint64(w.Next()) }
func (w *Well1024a) Float64() float64 { return float32s(w.Next()) }

func (w *Well1024a) State() State {
	return State{Kind: KindWell1024a, Words: words32(w.list[:]), Index: w.index}
}

func (w *Well1024a) SetState(s State) error {
	if err := s.check(KindWell1024a, len(w.list)); err != nil {
		return err
	}
	load32(w.list[:], s.Words)
	w.index = s.cursor(len(w.list))
	return nil
}

//
// Well19937c
//

// Well19937c has a period of 2^19937 - 1 and tempered output.
type Well19937c struct {
	list  [624]uint32
	index int
}

// NewWell19937c returns a Well19937c seeded with seed.
func NewWell19937c(seed uint64) *Well19937c {
	w := new(Well19937c)
	w.Seed(seed)
	return w
}

func (w *Well19937c) Kind() Kind { return KindWell19937c }

func (w *Well19937c) Seed(seed uint64) {
	sm := splitmix.New(seed)
	sm.Fill32(w.list[:])
	w.index = 0
}

func (w *Well19937c) SeedWords(words []uint64) error {
	v, err := expandWords(KindWell19937c, words, len(w.list))
	if err != nil {
		return err
	}
	load32(w.list[:], v)
	w.index = 0
	return nil
}

// Next advances the generator and returns the tempered word.
func (w *Well19937c) Next() uint32 {
	const n = 624
	l, i := &w.list, w.index
	i1, i2 := (i+n-1)%n, (i+n-2)%n

	z0 := l[i1]&0x00000001 ^ l[i2]&0xfffffffe
	z1 := m3neg(l[i], 25) ^ m3pos(l[(i+70)%n], 27)
	z2 := l[(i+179)%n]>>9 ^ m3pos(l[(i+449)%n], 1)
	z3 := z1 ^ z2

	l[i] = z3
	l[i1] = z0 ^ m3neg(z1, 9) ^ z2<<21 ^ m3pos(z3, 21)
	w.index = i1

	return temper(z3, 0xe46e1700, 0x9b868000)
}

func (w *Well19937c) Uint32() uint32   { return w.Next() }
func (w *Well19937c) Uint64() uint64   { return uint64(w.Next()) }
func (w *Well19937c) Float64() float64 { return float32s(w.Next()) }

func (w *Well19937c) State() State {
	return State{Kind: KindWell19937c, Words: words32(w.list[:]), Index: w.index}
}

func (w *Well19937c) SetState(s State) error {
	if err := s.check(KindWell19937c, len(w.list)); err != nil {
		return err
	}
	load32(w.list[:], s.Words)
	w.index = s.cursor(len(w.list))
	return nil
}

//
// Well44497b
//

// Well44497b has a period of 2^44497 - 1 and tempered output.
type Well44497b struct {
	list  [1391]uint32
	index int
}

// NewWell44497b returns a Well44497b seeded with seed.
func NewWell44497b(seed uint64) *Well44497b {
	w := new(Well44497b)
	w.Seed(seed)
	return w
}

func (w *Well44497b) Kind() Kind { return KindWell44497b }

func (w *Well44497b) Seed(seed uint64) {
	sm := splitmix.New(seed)
	sm.Fill32(w.list[:])
	w.index = 0
}

func (w *Well44497b) SeedWords(words []uint64) error {
	v, err := expandWords(KindWell44497b, words, len(w.list))
	if err != nil {
		return err
	}
	load32(w.list[:], v)
	w.index = 0
	return nil
}

// Next advances the generator and returns the tempered word.
func (w *Well44497b) Next() uint32 {
	const n = 1391
	l, i := &w.list, w.index
	i1, i2 := (i+n-1)%n, (i+n-2)%n

	z0 := l[i1]&0x0001ffff ^ l[i2]&0xfffe0000
	z1 := m3neg(l[i], 24) ^ m3pos(l[(i+23)%n], 30)
	z2 := m3neg(l[(i+481)%n], 10) ^ l[(i+229)%n]<<26
	z3 := z1 ^ z2

	l[i] = z3
	l[i1] = z0 ^ m3pos(z1, 20) ^ m6(z2, 9, 14, 5, 0xb729fcec) ^ z3
	w.index = i1

	return temper(z3, 0x93dd1400, 0xfa118000)
}

func (w *Well44497b) Uint32() uint32   { return w.Next() }
func (w *Well44497b) Uint64() uint64   { return uint64(w.Next()) }
func (w *Well44497b) Float64() float64 { return float32s(w.Next()) }

func (w *Well44497b) State() State {
	return State{Kind: KindWell44497b, Words: words32(w.list[:]), Index: w.index}
}

func (w *Well44497b) SetState(s State) error {
	if err := s.check(KindWell44497b, len(w.list)); err != nil {
		return err
	}
	load32(w.list[:], s.Words)
	w.index = s.cursor(len(w.list))
	return nil
}
