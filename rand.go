package rng

import (
	"math"
	"math/bits"
	"sort"

	"github.com/zeebo/rng/internal/bitset"
)

// Rand wraps a Generator with bounded integers, sequence helpers and
// non-uniform distributions. Like the engines it wraps, a Rand is not safe for
// concurrent use.
type Rand struct {
	g          Generator
	gaussNext  float64
	gaussValid bool
}

// New returns a Rand drawing from g.
func New(g Generator) *Rand { return &Rand{g: g} }

// Generator returns the wrapped engine.
func (r *Rand) Generator() Generator { return r.g }

// Seed reseeds the engine and drops any cached normal value.
func (r *Rand) Seed(seed uint64) {
	r.g.Seed(seed)
	r.gaussValid = false
}

// Checkpoint is a snapshot of a Rand: the engine state and the cached second
// normal value, if any.
type Checkpoint struct {
	State      State
	GaussNext  float64
	GaussValid bool
}

// Checkpoint returns a snapshot that Restore can load.
func (r *Rand) Checkpoint() Checkpoint {
	return Checkpoint{
		State:      r.g.State(),
		GaussNext:  r.gaussNext,
		GaussValid: r.gaussValid,
	}
}

// Restore loads a snapshot. On error nothing is changed.
func (r *Rand) Restore(c Checkpoint) error {
	if err := r.g.SetState(c.State); err != nil {
		return err
	}
	r.gaussNext, r.gaussValid = c.GaussNext, c.GaussValid
	return nil
}

// SetState loads an engine state and drops any cached normal value.
func (r *Rand) SetState(s State) error {
	if err := r.g.SetState(s); err != nil {
		return err
	}
	r.gaussValid = false
	return nil
}

// Float64 returns a float uniformly in [0, 1).
func (r *Rand) Float64() float64 { return r.g.Float64() }

// Uint32 returns 32 uniformly random bits, drawing twice from 31 bit engines.
func (r *Rand) Uint32() uint32 {
	if r.g.Kind().Bits() >= 32 {
		return r.g.Uint32()
	}
	hi, lo := r.g.Uint32(), r.g.Uint32()
	return hi<<1 | lo>>30
}

// Uint64 returns 64 uniformly random bits, drawing as many times as the
// engine width requires.
func (r *Rand) Uint64() uint64 {
	switch w := r.g.Kind().Bits(); {
	case w >= 64:
		return r.g.Uint64()
	case w == 63:
		hi, lo := r.g.Uint64(), r.g.Uint64()
		return hi<<1 | lo>>62
	default:
		return uint64(r.Uint32())<<32 | uint64(r.Uint32())
	}
}

// Uint32n returns a uniform value in [0, n).
func (r *Rand) Uint32n(n uint32) uint32 { return fastMod(r.Uint32(), n) }

// Uint64n returns a uniform value in [0, n).
func (r *Rand) Uint64n(n uint64) uint64 {
	hi, _ := bits.Mul64(r.Uint64(), n)
	return hi
}

// Intn returns a uniform value in [0, n). It panics if n <= 0.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		panic("invalid argument to Intn")
	}
	if uint64(n) <= math.MaxUint32 {
		return int(r.Uint32n(uint32(n)))
	}
	return int(r.Uint64n(uint64(n)))
}

// fastMod maps a full range random v into [0, n) with a multiply and shift.
func fastMod(v, n uint32) uint32 {
	return uint32((uint64(v) * uint64(n)) >> 32)
}

// Uniform returns a float uniformly in [a, b).
func (r *Rand) Uniform(a, b float64) float64 {
	return a + (b-a)*r.Float64()
}

// Randint returns an integer uniformly in [a, b], both ends included.
func (r *Rand) Randint(a, b int64) (int64, error) {
	if b < a {
		return 0, ErrInvalidArgument.New("empty range [%d, %d]", a, b)
	}
	n := uint64(b-a) + 1
	if n == 0 {
		return int64(r.Uint64()), nil
	}
	return a + int64(r.Uint64n(n)), nil
}

// Randrange returns a uniformly chosen value of start + i*step that lies
// between start (included) and stop (excluded).
func (r *Rand) Randrange(start, stop, step int64) (int64, error) {
	switch {
	case step == 0:
		return 0, ErrInvalidArgument.New("zero step")
	case start == stop:
		return 0, ErrInvalidArgument.New("empty range [%d, %d)", start, stop)
	case (stop > start) != (step > 0):
		return 0, ErrInvalidArgument.New("step %d never reaches %d from %d", step, stop, start)
	}

	width, n := stop-start, int64(0)
	if step > 0 {
		n = (width + step - 1) / step
	} else {
		n = (width + step + 1) / step
	}
	return start + step*int64(r.Uint64n(uint64(n))), nil
}

// Choice returns a uniformly chosen index into a sequence of length n.
func (r *Rand) Choice(n int) (int, error) {
	if n <= 0 {
		return 0, ErrInvalidArgument.New("cannot choose from an empty sequence")
	}
	return r.Intn(n), nil
}

// Shuffle randomly permutes a sequence of length n using swap.
func (r *Rand) Shuffle(n int, swap func(i, j int)) {
	for i := 0; i < n-1; i++ {
		swap(i, i+r.Intn(n-i))
	}
}

// Perm returns a random permutation of [0, n).
func (r *Rand) Perm(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	r.Shuffle(n, func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Sample returns k distinct indices chosen uniformly from [0, n), in
// selection order.
func (r *Rand) Sample(n, k int) ([]int, error) {
	if k < 0 || k > n {
		return nil, ErrInvalidArgument.New("cannot sample %d items from %d", k, n)
	}

	out := make([]int, 0, k)

	// dense samples shuffle a pool; sparse ones reject repeats
	if 3*k > n {
		pool := make([]int, n)
		for i := range pool {
			pool[i] = i
		}
		for i := 0; i < k; i++ {
			j := i + r.Intn(n-i)
			pool[i], pool[j] = pool[j], pool[i]
			out = append(out, pool[i])
		}
		return out, nil
	}

	seen := bitset.New(n)
	for len(out) < k {
		if j := r.Intn(n); seen.Set(uint(j)) {
			out = append(out, j)
		}
	}
	return out, nil
}

// SampleCounts is like Sample over a population where element i is repeated
// counts[i] times. It returns population indices, which may repeat.
func (r *Rand) SampleCounts(counts []int, k int) ([]int, error) {
	cum := make([]int, len(counts))
	total := 0
	for i, c := range counts {
		if c < 0 {
			return nil, ErrInvalidArgument.New("negative count %d at %d", c, i)
		}
		total += c
		cum[i] = total
	}

	picks, err := r.Sample(total, k)
	if err != nil {
		return nil, err
	}
	for i, p := range picks {
		picks[i] = sort.SearchInts(cum, p+1)
	}
	return picks, nil
}

// Read fills p with random bytes. It always returns len(p), nil.
func (r *Rand) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(r.Uint32n(256))
	}
	return len(p), nil
}

// Bytes returns n random bytes.
func (r *Rand) Bytes(n int) []byte {
	out := make([]byte, n)
	_, _ = r.Read(out)
	return out
}
