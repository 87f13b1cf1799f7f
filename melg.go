package rng

import (
	"github.com/zeebo/rng/internal/splitmix"
)

// melgParams holds the recurrence constants of one MELG variant.
type melgParams struct {
	kind  Kind
	n     int    // number of recurrence words; the state holds one more
	upper uint64 // mask of the high bits taken from w[i]
	lower uint64 // mask of the low bits taken from w[i+1]
	lag   int
	sh1   uint
	sh2   uint
	sh3   uint   // tempering shift
	tap   int    // tempering tap
	mask  uint64 // tempering mask
	acond uint64 // twist constant
}

var (
	melg607Params = melgParams{
		kind: KindMelg607, n: 9,
		upper: 0xffffffff80000000, lower: 0x000000007fffffff,
		lag: 5, sh1: 13, sh2: 35, sh3: 30, tap: 3,
		mask: 0x66edc62a6bf8c826, acond: 0x81f1fd68012348bc,
	}
	melg19937Params = melgParams{
		kind: KindMelg19937, n: 311,
		upper: 0xfffffffe00000000, lower: 0x00000001ffffffff,
		lag: 81, sh1: 23, sh2: 33, sh3: 16, tap: 19,
		mask: 0x6aede6fd97b338ec, acond: 0x5c32e06df730fc42,
	}
	melg44497Params = melgParams{
		kind: KindMelg44497, n: 695,
		upper: 0xffff800000000000, lower: 0x00007fffffffffff,
		lag: 373, sh1: 37, sh2: 14, sh3: 6, tap: 95,
		mask: 0x06fbbee29aaefd91, acond: 0x4fa9ca36f293c9a9,
	}
)

// Melg is a 64 bit Maximally Equidistributed Long-period Linear generator
// (Harase and Kimoto). The state is n recurrence words plus one feedback word
// stored last.
type Melg struct {
	p     *melgParams
	list  []uint64
	index int
}

func newMelg(p *melgParams, seed uint64) *Melg {
	m := &Melg{p: p, list: make([]uint64, p.n+1)}
	m.Seed(seed)
	return m
}

// NewMelg607 returns a MELG with period 2^607 - 1.
func NewMelg607(seed uint64) *Melg { return newMelg(&melg607Params, seed) }

// NewMelg19937 returns a MELG with period 2^19937 - 1.
func NewMelg19937(seed uint64) *Melg { return newMelg(&melg19937Params, seed) }

// NewMelg44497 returns a MELG with period 2^44497 - 1.
func NewMelg44497(seed uint64) *Melg { return newMelg(&melg44497Params, seed) }

func (m *Melg) Kind() Kind { return m.p.kind }

func (m *Melg) Seed(seed uint64) {
	sm := splitmix.New(seed)
	sm.Fill64(m.list)
	m.index = 0
}

func (m *Melg) SeedWords(words []uint64) error {
	w, err := expandWords(m.p.kind, words, len(m.list))
	if err != nil {
		return err
	}
	copy(m.list, w)
	m.index = 0
	return nil
}

// Next advances the generator and returns the tempered output.
func (m *Melg) Next() uint64 {
	p, l, n := m.p, m.list, m.p.n

	i := m.index
	i1 := i + 1
	if i1 == n {
		i1 = 0
	}
	m.index = i1

	x := l[i]&p.upper | l[i1]&p.lower

	s := l[n]
	s = x>>1 ^ p.acond*(x&1) ^ l[(i+p.lag)%n] ^ s ^ s<<p.sh1
	l[n] = s

	si := x ^ s ^ s>>p.sh2
	l[i] = si

	return si ^ si<<p.sh3 ^ l[(i+p.tap)%n]&p.mask
}

func (m *Melg) Uint32() uint32   { return uint32(m.Next() >> 32) }
func (m *Melg) Uint64() uint64   { return m.Next() }
func (m *Melg) Float64() float64 { return float64s(m.Next()) }

func (m *Melg) State() State {
	return State{Kind: m.p.kind, Words: append([]uint64(nil), m.list...), Index: m.index}
}

func (m *Melg) SetState(s State) error {
	if err := s.check(m.p.kind, len(m.list)); err != nil {
		return err
	}
	copy(m.list, s.Words)
	m.index = s.cursor(m.p.n)
	return nil
}
