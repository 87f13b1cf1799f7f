package rng

import (
	"encoding/binary"

	"github.com/zeebo/rng/internal/splitmix"
	"github.com/zeebo/xxh3"
)

// SeedTime seeds g from the monotonic clock.
func SeedTime(g Generator) { g.Seed(timeSeed()) }

// SeedBytes seeds g from the hash of data.
func SeedBytes(g Generator, data []byte) { g.Seed(xxh3.Hash(data)) }

// SeedString seeds g from the hash of data.
func SeedString(g Generator, data string) { g.Seed(xxh3.HashString(data)) }

// SeedFloat seeds g from a float in [0, 1), scaled to the full 64 bit seed
// range. Other values return ErrInvalidArgument and leave g unchanged.
func SeedFloat(g Generator, seed float64) error {
	v, err := floatSeed(seed)
	if err != nil {
		return err
	}
	g.Seed(v)
	return nil
}

func floatSeed(seed float64) (uint64, error) {
	if !(seed >= 0 && seed < 1) {
		return 0, ErrInvalidArgument.New("float seed %v must be in [0, 1)", seed)
	}
	return uint64(seed * (1 << 64)), nil
}

// Seeder128 is implemented by engines with a native 128 bit seed.
type Seeder128 interface {
	Seed128(hi, lo uint64)
}

// SeedUint128 seeds g from a 128 bit value. Engines without a 128 bit seed
// are seeded with the low word.
func SeedUint128(g Generator, hi, lo uint64) {
	if s, ok := g.(Seeder128); ok {
		s.Seed128(hi, lo)
		return
	}
	g.Seed(lo)
}

// expandWords returns n words starting with the supplied words. Missing words
// are filled from a SplitMix stream keyed by the hash of the supplied words so
// that different short lists expand to different states.
func expandWords(k Kind, words []uint64, n int) ([]uint64, error) {
	if len(words) == 0 || len(words) > n {
		return nil, ErrInvalidSeedLength.New("%v accepts 1 to %d seed words, got %d", k, n, len(words))
	}

	out := make([]uint64, n)
	copy(out, words)
	if len(words) == n {
		return out, nil
	}

	buf := make([]byte, 8*len(words))
	for i, w := range words {
		binary.LittleEndian.PutUint64(buf[8*i:], w)
	}
	sm := splitmix.New(xxh3.Hash(buf))
	sm.Fill64(out[len(words):])

	return out, nil
}

// exactWords validates that words has exactly n entries.
func exactWords(k Kind, words []uint64, n int) error {
	if len(words) != n {
		return ErrInvalidSeedLength.New("%v needs exactly %d seed words, got %d", k, n, len(words))
	}
	return nil
}
