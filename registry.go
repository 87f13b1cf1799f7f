package rng

var constructors = [numKinds]func(seed uint64) Generator{
	KindMrg287:        func(s uint64) Generator { return NewMrg287(s) },
	KindMrg1457:       func(s uint64) Generator { return NewMrg1457(s) },
	KindMrg49507:      func(s uint64) Generator { return NewMrg49507(s) },
	KindLFib78:        func(s uint64) Generator { return NewLFib78(s) },
	KindLFib116:       func(s uint64) Generator { return NewLFib116(s) },
	KindLFib668:       func(s uint64) Generator { return NewLFib668(s) },
	KindLFib1340:      func(s uint64) Generator { return NewLFib1340(s) },
	KindWell512a:      func(s uint64) Generator { return NewWell512a(s) },
	KindWell1024a:     func(s uint64) Generator { return NewWell1024a(s) },
	KindWell19937c:    func(s uint64) Generator { return NewWell19937c(s) },
	KindWell44497b:    func(s uint64) Generator { return NewWell44497b(s) },
	KindMelg607:       func(s uint64) Generator { return NewMelg607(s) },
	KindMelg19937:     func(s uint64) Generator { return NewMelg19937(s) },
	KindMelg44497:     func(s uint64) Generator { return NewMelg44497(s) },
	KindPcg64x32:      func(s uint64) Generator { return NewPcg64x32(s) },
	KindPcg128x64:     func(s uint64) Generator { return NewPcg128x64(s) },
	KindPcg1024x32:    func(s uint64) Generator { return NewPcg1024x32(s) },
	KindXoroshiro256:  func(s uint64) Generator { return NewXoroshiro256(s) },
	KindXoroshiro512:  func(s uint64) Generator { return NewXoroshiro512(s) },
	KindXoroshiro1024: func(s uint64) Generator { return NewXoroshiro1024(s) },
	KindSquares32:     func(s uint64) Generator { return NewSquares32(s) },
	KindSquares64:     func(s uint64) Generator { return NewSquares64(s) },
	KindCwg64:         func(s uint64) Generator { return NewCwg64(s) },
	KindCwg128x64:     func(s uint64) Generator { return NewCwg128x64(s) },
	KindCwg128:        func(s uint64) Generator { return NewCwg128(s) },
	KindFastRand32:    func(s uint64) Generator { f := new(FastRand32); f.Seed(s); return f },
	KindFastRand63:    func(s uint64) Generator { f := new(FastRand63); f.Seed(s); return f },
}

// NewSeeded returns an engine of the given kind seeded with seed.
func NewSeeded(kind Kind, seed uint64) (Generator, error) {
	if kind >= numKinds || constructors[kind] == nil {
		return nil, ErrInvalidArgument.New("unknown kind %d", kind)
	}
	return constructors[kind](seed), nil
}

// NewKind returns an engine of the given kind seeded from the clock.
func NewKind(kind Kind) (Generator, error) {
	return NewSeeded(kind, timeSeed())
}
