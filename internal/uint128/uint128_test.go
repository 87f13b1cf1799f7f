package uint128

import (
	"math/big"
	"testing"

	"github.com/zeebo/assert"
	"github.com/zeebo/pcg"
)

var mod128 = new(big.Int).Lsh(big.NewInt(1), 128)

func toBig(x T) *big.Int {
	b := new(big.Int).SetUint64(x.Hi)
	b.Lsh(b, 64)
	return b.Or(b, new(big.Int).SetUint64(x.Lo))
}

func fromBig(b *big.Int) T {
	b = new(big.Int).Mod(b, mod128)
	lo := new(big.Int).And(b, new(big.Int).SetUint64(^uint64(0)))
	hi := new(big.Int).Rsh(b, 64)
	return T{Hi: hi.Uint64(), Lo: lo.Uint64()}
}

func random() T { return T{Hi: pcg.Uint64(), Lo: pcg.Uint64()} }

func TestUint128(t *testing.T) {
	t.Run("Mul64", func(t *testing.T) {
		for i := 0; i < 100000; i++ {
			x, y := pcg.Uint64(), pcg.Uint64()
			exp := new(big.Int).Mul(new(big.Int).SetUint64(x), new(big.Int).SetUint64(y))
			assert.Equal(t, Mul64(x, y), fromBig(exp))
		}
	})

	t.Run("Mul", func(t *testing.T) {
		for i := 0; i < 100000; i++ {
			x, y := random(), random()
			exp := new(big.Int).Mul(toBig(x), toBig(y))
			assert.Equal(t, x.Mul(y), fromBig(exp))
		}
	})

	t.Run("Add", func(t *testing.T) {
		for i := 0; i < 100000; i++ {
			x, y := random(), random()
			assert.Equal(t, x.Add(y), fromBig(new(big.Int).Add(toBig(x), toBig(y))))
		}
	})

	t.Run("Carry", func(t *testing.T) {
		max := T{Hi: ^uint64(0), Lo: ^uint64(0)}
		assert.Equal(t, max.Add(From64(1)), T{})
		assert.Equal(t, T{Lo: ^uint64(0)}.Add(From64(1)), T{Hi: 1})
		assert.Equal(t, max.Mul(max), From64(1))
	})

	t.Run("Rsh", func(t *testing.T) {
		for i := 0; i < 10000; i++ {
			x := random()
			n := uint(pcg.Uint32n(140))
			assert.Equal(t, x.Rsh(n), fromBig(new(big.Int).Rsh(toBig(x), n)))
		}
	})

	t.Run("Bitwise", func(t *testing.T) {
		x, y := random(), random()
		assert.Equal(t, x.Or(y), T{Hi: x.Hi | y.Hi, Lo: x.Lo | y.Lo})
		assert.Equal(t, x.Xor(y), T{Hi: x.Hi ^ y.Hi, Lo: x.Lo ^ y.Lo})
		assert.Equal(t, x.Xor(x), T{})
	})
}
