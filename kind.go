package rng

import (
	"strings"
)

// Kind identifies an engine.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindMrg287
	KindMrg1457
	KindMrg49507
	KindLFib78
	KindLFib116
	KindLFib668
	KindLFib1340
	KindWell512a
	KindWell1024a
	KindWell19937c
	KindWell44497b
	KindMelg607
	KindMelg19937
	KindMelg44497
	KindPcg64x32
	KindPcg128x64
	KindPcg1024x32
	KindXoroshiro256
	KindXoroshiro512
	KindXoroshiro1024
	KindSquares32
	KindSquares64
	KindCwg64
	KindCwg128x64
	KindCwg128
	KindFastRand32
	KindFastRand63

	numKinds
)

var kindInfo = [numKinds]struct {
	name string
	bits uint
}{
	KindInvalid:       {"Invalid", 0},
	KindMrg287:        {"Mrg287", 32},
	KindMrg1457:       {"Mrg1457", 31},
	KindMrg49507:      {"Mrg49507", 31},
	KindLFib78:        {"LFib78", 64},
	KindLFib116:       {"LFib116", 64},
	KindLFib668:       {"LFib668", 64},
	KindLFib1340:      {"LFib1340", 64},
	KindWell512a:      {"Well512a", 32},
	KindWell1024a:     {"Well1024a", 32},
	KindWell19937c:    {"Well19937c", 32},
	KindWell44497b:    {"Well44497b", 32},
	KindMelg607:       {"Melg607", 64},
	KindMelg19937:     {"Melg19937", 64},
	KindMelg44497:     {"Melg44497", 64},
	KindPcg64x32:      {"Pcg64_32", 32},
	KindPcg128x64:     {"Pcg128_64", 64},
	KindPcg1024x32:    {"Pcg1024_32", 32},
	KindXoroshiro256:  {"Xoroshiro256", 64},
	KindXoroshiro512:  {"Xoroshiro512", 64},
	KindXoroshiro1024: {"Xoroshiro1024", 64},
	KindSquares32:     {"Squares32", 32},
	KindSquares64:     {"Squares64", 64},
	KindCwg64:         {"Cwg64", 64},
	KindCwg128x64:     {"Cwg128_64", 64},
	KindCwg128:        {"Cwg128", 128},
	KindFastRand32:    {"FastRand32", 32},
	KindFastRand63:    {"FastRand63", 63},
}

// String returns the engine name, like "Pcg128_64".
func (k Kind) String() string {
	if k >= numKinds {
		return "Invalid"
	}
	return kindInfo[k].name
}

// Bits returns the width of one engine output.
func (k Kind) Bits() uint {
	if k >= numKinds {
		return 0
	}
	return kindInfo[k].bits
}

// Kinds returns every valid Kind.
func Kinds() []Kind {
	out := make([]Kind, 0, numKinds-1)
	for k := KindInvalid + 1; k < numKinds; k++ {
		out = append(out, k)
	}
	return out
}

// ParseKind looks up a Kind by name. Matching ignores case, and the width
// separator may be written as "_", "-" or "x", so "pcg128_64" and "Pcg128x64"
// both name KindPcg128x64.
func ParseKind(name string) (Kind, bool) {
	name = strings.ToLower(name)
	for k := KindInvalid + 1; k < numKinds; k++ {
		canon := strings.ToLower(kindInfo[k].name)
		for _, sep := range []string{"_", "-", "x"} {
			if strings.Replace(canon, "_", sep, 1) == name {
				return k, true
			}
		}
	}
	return KindInvalid, false
}
