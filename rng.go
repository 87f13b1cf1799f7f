// Package rng provides a collection of pseudo-random number generator engines
// sharing one interface. Engines are deterministic: the same seed always gives
// the same stream, and an engine's State can be saved and loaded to replay or
// fork a stream.
//
// None of the engines are cryptographically secure. An engine is a plain value
// owned by one goroutine. Sharing one between goroutines requires external
// synchronization.
package rng

import (
	"github.com/zeebo/errs"
)

var (
	// ErrInvalidSeedLength is returned when a word list or state has the wrong
	// number of words for an engine.
	ErrInvalidSeedLength = errs.Class("invalid seed length")

	// ErrInvalidIncrement is returned when a Collatz-Weyl engine is given an
	// even Weyl increment.
	ErrInvalidIncrement = errs.Class("invalid increment")

	// ErrInvalidKey is returned when a Squares engine is given an even key.
	ErrInvalidKey = errs.Class("invalid key")

	// ErrStateFamilyMismatch is returned when a State from one kind of engine
	// is loaded into another kind.
	ErrStateFamilyMismatch = errs.Class("state family mismatch")

	// ErrInvalidArgument is returned by Rand for out of domain arguments.
	ErrInvalidArgument = errs.Class("invalid argument")
)

// Generator is the contract every engine implements.
type Generator interface {
	// Kind returns which engine this is.
	Kind() Kind

	// Seed resets the state from a single word. Negative seeds should be
	// passed as uint64(int64(seed)).
	Seed(seed uint64)

	// SeedWords resets the state from an explicit word list. It fails with
	// ErrInvalidSeedLength if the engine cannot use that many words, and
	// leaves the state unchanged on any error.
	SeedWords(words []uint64) error

	// Uint32 advances the engine once and returns 32 bits of the output.
	Uint32() uint32

	// Uint64 advances the engine once and returns the output zero extended.
	Uint64() uint64

	// Float64 advances the engine once and returns the output scaled into
	// [0, 1).
	Float64() float64

	// State returns a snapshot of the engine state.
	State() State

	// SetState loads a snapshot taken from an engine of the same kind. It
	// leaves the state unchanged on error.
	SetState(State) error
}

// Equal returns true if both generators have identical state, so that they
// will produce identical streams.
func Equal(a, b Generator) bool {
	return a.State().Equal(b.State())
}
