package rng

// State is a snapshot of an engine's internal state. Words holds the engine's
// state words in an engine specific order, each zero extended to 64 bits, and
// Index is the cursor for engines that keep one.
//
// A State is only meaningful to an engine of the same Kind.
type State struct {
	Kind  Kind
	Words []uint64
	Index int
}

// Clone returns a deep copy of the State.
func (s State) Clone() State {
	s.Words = append([]uint64(nil), s.Words...)
	return s
}

// Equal returns true if both states are bitwise identical.
func (s State) Equal(o State) bool {
	if s.Kind != o.Kind || s.Index != o.Index || len(s.Words) != len(o.Words) {
		return false
	}
	for i := range s.Words {
		if s.Words[i] != o.Words[i] {
			return false
		}
	}
	return true
}

// check validates that s can be loaded into an engine of kind k holding n
// words.
func (s State) check(k Kind, n int) error {
	if s.Kind != k {
		return ErrStateFamilyMismatch.New("cannot load %v state into %v", s.Kind, k)
	}
	if len(s.Words) != n {
		return ErrInvalidSeedLength.New("%v state has %d words, need %d", k, len(s.Words), n)
	}
	return nil
}

// cursor reduces the snapshot index into [0, n).
func (s State) cursor(n int) int {
	idx := s.Index % n
	if idx < 0 {
		idx += n
	}
	return idx
}

func words32(src []uint32) []uint64 {
	out := make([]uint64, len(src))
	for i, v := range src {
		out[i] = uint64(v)
	}
	return out
}

func load32(dst []uint32, src []uint64) {
	for i, v := range src {
		dst[i] = uint32(v)
	}
}
