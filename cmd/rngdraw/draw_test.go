package main

import (
	"testing"

	"github.com/zeebo/assert"

	"github.com/zeebo/rng"
)

func TestNewEngine(t *testing.T) {
	t.Run("IntegerSeed", func(t *testing.T) {
		g, err := newEngine("pcg128_64", "1")
		assert.NoError(t, err)
		assert.Equal(t, g.Uint64(), uint64(0xffffffffffffffff))
		assert.Equal(t, g.Uint64(), uint64(0x67edbc92ac518991))
	})

	t.Run("NegativeSeed", func(t *testing.T) {
		g, err := newEngine("Melg19937", "-2")
		assert.NoError(t, err)
		assert.Equal(t, g.Uint64(), uint64(0x7e8303f79ca95b09))
	})

	t.Run("HexSeed", func(t *testing.T) {
		a, err := newEngine("cwg64", "0x10")
		assert.NoError(t, err)
		b, err := newEngine("cwg64", "16")
		assert.NoError(t, err)
		assert.That(t, rng.Equal(a, b))
	})

	t.Run("TextSeed", func(t *testing.T) {
		a, err := newEngine("well512a", "hello")
		assert.NoError(t, err)

		b := rng.NewWell512a(0)
		rng.SeedString(b, "hello")
		assert.That(t, rng.Equal(a, b))
	})

	t.Run("ClockSeed", func(t *testing.T) {
		g, err := newEngine("squares32", "")
		assert.NoError(t, err)
		assert.Equal(t, g.Kind(), rng.KindSquares32)
	})

	t.Run("Unknown", func(t *testing.T) {
		_, err := newEngine("mt19937", "1")
		assert.That(t, err != nil)
	})
}
