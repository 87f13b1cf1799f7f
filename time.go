package rng

import (
	_ "unsafe"

	"github.com/zeebo/rng/internal/splitmix"
)

//go:linkname nanotime runtime.nanotime
func nanotime() (mono int64)

// timeSeed returns a seed word derived from one read of the monotonic clock.
func timeSeed() uint64 {
	sm := splitmix.New(uint64(nanotime()))
	return sm.Uint64()
}
