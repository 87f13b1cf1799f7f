package bitset

// T is a fixed size set of small non-negative integers.
type T []uint64

// New returns a T able to hold the values [0, n).
func New(n int) T { return make(T, (n+63)/64) }

// Set adds idx to the set and returns true if it was not already present.
func (b T) Set(idx uint) bool {
	w, m := idx/64, uint64(1)<<(idx%64)
	had := b[w]&m > 0
	b[w] |= m
	return !had
}
