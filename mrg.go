package rng

import (
	"github.com/zeebo/rng/internal/splitmix"
)

// Multiple recursive generators. Each new word is a combination of lagged
// words in a circular buffer, reduced modulo 2^32 (Mrg287) or the Mersenne
// prime 2^31-1 (Mrg1457, Mrg49507).

const mrg31Mod = 0x7fffffff

// load31 narrows and reduces seed words into a 31 bit buffer.
func load31(dst []uint32, src []uint64) {
	for i, v := range src {
		dst[i] = uint32(v % mrg31Mod)
	}
}

//
// Mrg287
//

// Mrg287 is Marsaglia's lagged 4-term additive generator over 256 words,
// with a period of about 2^287.
type Mrg287 struct {
	list  [256]uint32
	index int
}

// NewMrg287 returns a Mrg287 seeded with seed.
func NewMrg287(seed uint64) *Mrg287 {
	m := new(Mrg287)
	m.Seed(seed)
	return m
}

func (m *Mrg287) Kind() Kind { return KindMrg287 }

func (m *Mrg287) Seed(seed uint64) {
	sm := splitmix.New(seed)
	sm.Fill32(m.list[:])
	m.index = 0
}

func (m *Mrg287) SeedWords(words []uint64) error {
	w, err := expandWords(KindMrg287, words, len(m.list))
	if err != nil {
		return err
	}
	load32(m.list[:], w)
	m.index = 0
	return nil
}

// Next advances the generator and returns the new word.
func (m *Mrg287) Next() uint32 {
	i := m.index
	v := m.list[(i-55)&255] + m.list[(i-119)&255] + m.list[(i-179)&255] + m.list[i]
	m.list[i] = v
	m.index = (i + 1) & 255
	return v
}

func (m *Mrg287) Uint32() uint32   { return m.Next() }
func (m *Mrg287) Uint64() uint64   { return uint64(m.Next()) }
func (m *Mrg287) Float64() float64 { return float32s(m.Next()) }

func (m *Mrg287) State() State {
	return State{Kind: KindMrg287, Words: words32(m.list[:]), Index: m.index}
}

func (m *Mrg287) SetState(s State) error {
	if err := s.check(KindMrg287, len(m.list)); err != nil {
		return err
	}
	load32(m.list[:], s.Words)
	m.index = s.cursor(len(m.list))
	return nil
}

//
// Mrg1457
//

// Mrg1457 is a 3-term multiple recursive generator modulo 2^31-1 over 47
// words (DX-47-3), with a period of about 2^1457.
type Mrg1457 struct {
	list  [47]uint32
	index int
}

// NewMrg1457 returns a Mrg1457 seeded with seed.
func NewMrg1457(seed uint64) *Mrg1457 {
	m := new(Mrg1457)
	m.Seed(seed)
	return m
}

func (m *Mrg1457) Kind() Kind { return KindMrg1457 }

func (m *Mrg1457) Seed(seed uint64) {
	sm := splitmix.New(seed)
	sm.Fill31(m.list[:])
	m.index = 0
}

func (m *Mrg1457) SeedWords(words []uint64) error {
	w, err := expandWords(KindMrg1457, words, len(m.list))
	if err != nil {
		return err
	}
	load31(m.list[:], w)
	m.index = 0
	return nil
}

// Next advances the generator and returns the new 31 bit word.
func (m *Mrg1457) Next() uint32 {
	i := m.index
	i1, i24 := i-1, i-24
	if i1 < 0 {
		i1 += 47
	}
	if i24 < 0 {
		i24 += 47
	}

	sum := uint64(m.list[i1]) + uint64(m.list[i24]) + uint64(m.list[i])
	v := uint32((0x04080000 * sum) % mrg31Mod)

	m.list[i] = v
	if m.index = i + 1; m.index == 47 {
		m.index = 0
	}
	return v
}

func (m *Mrg1457) Uint32() uint32   { return m.Next() }
func (m *Mrg1457) Uint64() uint64   { return uint64(m.Next()) }
func (m *Mrg1457) Float64() float64 { return float31(m.Next()) }

func (m *Mrg1457) State() State {
	return State{Kind: KindMrg1457, Words: words32(m.list[:]), Index: m.index}
}

func (m *Mrg1457) SetState(s State) error {
	if err := s.check(KindMrg1457, len(m.list)); err != nil {
		return err
	}
	load31(m.list[:], s.Words)
	m.index = s.cursor(len(m.list))
	return nil
}

//
// Mrg49507
//

// Mrg49507 is a 2-term multiple recursive generator modulo 2^31-1 over 1597
// words (DX-1597-2-7), with a period of about 2^49507.
type Mrg49507 struct {
	list  [1597]uint32
	index int
}

// NewMrg49507 returns a Mrg49507 seeded with seed.
func NewMrg49507(seed uint64) *Mrg49507 {
	m := new(Mrg49507)
	m.Seed(seed)
	return m
}

func (m *Mrg49507) Kind() Kind { return KindMrg49507 }

func (m *Mrg49507) Seed(seed uint64) {
	sm := splitmix.New(seed)
	sm.Fill31(m.list[:])
	m.index = 0
}

func (m *Mrg49507) SeedWords(words []uint64) error {
	w, err := expandWords(KindMrg49507, words, len(m.list))
	if err != nil {
		return err
	}
	load31(m.list[:], w)
	m.index = 0
	return nil
}

// Next advances the generator and returns the new 31 bit word.
func (m *Mrg49507) Next() uint32 {
	i := m.index
	i7 := i - 7
	if i7 < 0 {
		i7 += 1597
	}

	// the multiplier is -(2^25 + 2^7) modulo 2^64
	sum := uint64(m.list[i7]) + uint64(m.list[i])
	v := uint32((0xfffffffffdffff80 * sum) % mrg31Mod)

	m.list[i] = v
	if m.index = i + 1; m.index == 1597 {
		m.index = 0
	}
	return v
}

func (m *Mrg49507) Uint32() uint32   { return m.Next() }
func (m *Mrg49507) Uint64() uint64   { return uint64(m.Next()) }
func (m *Mrg49507) Float64() float64 { return float31(m.Next()) }

func (m *Mrg49507) State() State {
	return State{Kind: KindMrg49507, Words: words32(m.list[:]), Index: m.index}
}

func (m *Mrg49507) SetState(s State) error {
	if err := s.check(KindMrg49507, len(m.list)); err != nil {
		return err
	}
	load31(m.list[:], s.Words)
	m.index = s.cursor(len(m.list))
	return nil
}
