// Package uint128 implements unsigned 128 bit integers out of two 64 bit
// words. All arithmetic wraps modulo 2^128.
package uint128

import "math/bits"

// T is a 128 bit unsigned integer.
type T struct {
	Hi uint64
	Lo uint64
}

// From64 returns x as a T.
func From64(x uint64) T { return T{Lo: x} }

func (x T) Add(y T) T {
	lo, carry := bits.Add64(x.Lo, y.Lo, 0)
	hi, _ := bits.Add64(x.Hi, y.Hi, carry)
	return T{Hi: hi, Lo: lo}
}

// Mul returns the low 128 bits of x * y.
func (x T) Mul(y T) T {
	hi, lo := bits.Mul64(x.Lo, y.Lo)
	hi += x.Hi*y.Lo + x.Lo*y.Hi
	return T{Hi: hi, Lo: lo}
}

// Mul64 returns the full product of two 64 bit words.
func Mul64(x, y uint64) T {
	hi, lo := bits.Mul64(x, y)
	return T{Hi: hi, Lo: lo}
}

// Rsh returns x >> n. Shifts of 128 or more return zero.
func (x T) Rsh(n uint) T {
	switch {
	case n >= 128:
		return T{}
	case n >= 64:
		return T{Lo: x.Hi >> (n - 64)}
	default:
		return T{Hi: x.Hi >> n, Lo: x.Lo>>n | x.Hi<<(64-n)}
	}
}

func (x T) Or(y T) T  { return T{Hi: x.Hi | y.Hi, Lo: x.Lo | y.Lo} }
func (x T) Xor(y T) T { return T{Hi: x.Hi ^ y.Hi, Lo: x.Lo ^ y.Lo} }
