package rng

import (
	"math/bits"

	"github.com/zeebo/rng/internal/splitmix"
	"github.com/zeebo/rng/internal/uint128"
)

// Permuted congruential generators (O'Neill). The state advances by a plain
// LCG step and the output is a permutation of the state before the step.

const (
	pcgMul64 = 6364136223846793005
	pcgInc64 = 1442695040888963407
)

var (
	pcgMul128 = uint128.T{Hi: 0x2360ed051fc65da4, Lo: 0x4385df649fccf645}
	pcgInc128 = uint128.T{Hi: 0x5851f42d4c957f2d, Lo: 0x14057b7ef767814f}
)

//
// Pcg64x32
//

// Pcg64x32 is a 64 bit state PCG with a 32 bit random xorshift output.
type Pcg64x32 struct {
	state uint64
}

// NewPcg64x32 returns a Pcg64x32 seeded with seed.
func NewPcg64x32(seed uint64) *Pcg64x32 { return &Pcg64x32{state: seed} }

func (p *Pcg64x32) Kind() Kind { return KindPcg64x32 }

// Seed sets the LCG state directly to seed.
func (p *Pcg64x32) Seed(seed uint64) { p.state = seed }

func (p *Pcg64x32) SeedWords(words []uint64) error {
	if err := exactWords(KindPcg64x32, words, 1); err != nil {
		return err
	}
	p.state = words[0]
	return nil
}

// Next advances the generator and returns the permuted old state.
func (p *Pcg64x32) Next() uint32 {
	prev := p.state
	p.state = pcgMul64*prev + pcgInc64

	// the top 3 bits pick how far the xorshifted state is shifted down
	shift := prev >> 61
	return uint32((prev ^ prev>>22) >> (22 + shift))
}

func (p *Pcg64x32) Uint32() uint32   { return p.Next() }
func (p *Pcg64x32) Uint64() uint64   { return uint64(p.Next()) }
func (p *Pcg64x32) Float64() float64 { return float32s(p.Next()) }

func (p *Pcg64x32) State() State {
	return State{Kind: KindPcg64x32, Words: []uint64{p.state}}
}

func (p *Pcg64x32) SetState(s State) error {
	if err := s.check(KindPcg64x32, 1); err != nil {
		return err
	}
	p.state = s.Words[0]
	return nil
}

//
// Pcg128x64
//

// Pcg128x64 is a 128 bit state PCG with a 64 bit xorshift-low random rotate
// output.
type Pcg128x64 struct {
	state uint128.T
}

// NewPcg128x64 returns a Pcg128x64 seeded with seed.
func NewPcg128x64(seed uint64) *Pcg128x64 {
	p := new(Pcg128x64)
	p.Seed(seed)
	return p
}

func (p *Pcg128x64) Kind() Kind { return KindPcg128x64 }

// Seed uses seed as the high word of the state and its complement as the low
// word.
func (p *Pcg128x64) Seed(seed uint64) {
	p.state = uint128.T{Hi: seed, Lo: ^seed}
}

// Seed128 sets the full 128 bit state.
func (p *Pcg128x64) Seed128(hi, lo uint64) { p.state = uint128.T{Hi: hi, Lo: lo} }

func (p *Pcg128x64) SeedWords(words []uint64) error {
	if err := exactWords(KindPcg128x64, words, 2); err != nil {
		return err
	}
	p.state = uint128.T{Hi: words[0], Lo: words[1]}
	return nil
}

// Next advances the generator and returns the permuted old state.
func (p *Pcg128x64) Next() uint64 {
	prev := p.state
	p.state = pcgMul128.Mul(prev).Add(pcgInc128)
	return bits.RotateLeft64(prev.Hi^prev.Lo, -int(prev.Hi>>58))
}

func (p *Pcg128x64) Uint32() uint32   { return uint32(p.Next() >> 32) }
func (p *Pcg128x64) Uint64() uint64   { return p.Next() }
func (p *Pcg128x64) Float64() float64 { return float64s(p.Next()) }

func (p *Pcg128x64) State() State {
	return State{Kind: KindPcg128x64, Words: []uint64{p.state.Hi, p.state.Lo}}
}

func (p *Pcg128x64) SetState(s State) error {
	if err := s.check(KindPcg128x64, 2); err != nil {
		return err
	}
	p.state = uint128.T{Hi: s.Words[0], Lo: s.Words[1]}
	return nil
}

//
// Pcg1024x32
//

// Pcg1024x32 extends a Pcg64x32 with a table of 1024 words that is xor'd into
// every output, giving a period of about 2^32830. The table advances each time
// the low 32 bits of the inner state wrap to zero.
type Pcg1024x32 struct {
	inner Pcg64x32
	table [1024]uint32
}

// NewPcg1024x32 returns a Pcg1024x32 seeded with seed.
func NewPcg1024x32(seed uint64) *Pcg1024x32 {
	p := new(Pcg1024x32)
	p.Seed(seed)
	return p
}

func (p *Pcg1024x32) Kind() Kind { return KindPcg1024x32 }

func (p *Pcg1024x32) Seed(seed uint64) {
	p.inner.Seed(seed)
	sm := splitmix.New(seed)
	sm.Fill32(p.table[:])
}

// SeedWords takes the inner LCG state followed by up to 1024 table words.
func (p *Pcg1024x32) SeedWords(words []uint64) error {
	w, err := expandWords(KindPcg1024x32, words, 1+len(p.table))
	if err != nil {
		return err
	}
	p.inner.state = w[0]
	load32(p.table[:], w[1:])
	return nil
}

// Next advances the generator and returns the inner output mixed with a table
// word chosen by the inner state.
func (p *Pcg1024x32) Next() uint32 {
	cur := p.inner.state
	if uint32(cur) == 0 {
		p.advanceTable()
	}
	ext := p.table[(cur>>22)&1023]
	return p.inner.Next() ^ ext
}

func (p *Pcg1024x32) Uint32() uint32   { return p.Next() }
func (p *Pcg1024x32) Uint64() uint64   { return uint64(p.Next()) }
func (p *Pcg1024x32) Float64() float64 { return float32s(p.Next()) }

func (p *Pcg1024x32) State() State {
	words := make([]uint64, 1+len(p.table))
	words[0] = p.inner.state
	for i, v := range p.table {
		words[i+1] = uint64(v)
	}
	return State{Kind: KindPcg1024x32, Words: words}
}

func (p *Pcg1024x32) SetState(s State) error {
	if err := s.check(KindPcg1024x32, 1+len(p.table)); err != nil {
		return err
	}
	p.inner.state = s.Words[0]
	load32(p.table[:], s.Words[1:])
	return nil
}

// advanceTable steps every table word like a multi-word counter: a word that
// wraps to a small value carries into the next one.
func (p *Pcg1024x32) advanceTable() {
	carry := false
	for i := range p.table {
		if carry {
			carry = p.extStep(i)
		}
		if p.extStep(i) {
			carry = true
		}
	}
}

// extStep advances table word i by one step of its own permuted LCG and
// reports whether it wrapped.
func (p *Pcg1024x32) extStep(i int) bool {
	v := p.table[i]
	st := 0xacb86d69 * (v ^ v>>22)
	st = invxrs(st, 32, 4+uint(st>>28))
	st = 0x2c9277b5*st + 2*uint32(i+1)
	st ^= st >> 16
	p.table[i] = st
	return st == st&3
}

// invxrs inverts x ^= x >> shift on the low bits of value.
func invxrs(value uint32, bits, shift uint) uint32 {
	if 2*shift >= bits {
		return value ^ value>>shift
	}

	botBits := bits - 2*shift
	botMask := uint32(1)<<botBits - 1
	topMask := ^botMask
	top := value ^ value>>shift

	newBits := bits - shift
	bot := invxrs((top|value&botMask)&(uint32(1)<<newBits-1), newBits, shift)

	return top&topMask | bot&botMask
}
