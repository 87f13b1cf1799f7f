package rng

import (
	"testing"

	"github.com/zeebo/assert"

	"github.com/zeebo/rng/internal/tests"
	"github.com/zeebo/rng/internal/uint128"
)

func neg(v int64) uint64 { return uint64(v) }

var knownAnswers = []struct {
	kind Kind
	seed uint64
	out  []uint64
}{
	{KindMrg287, 1, []uint64{0xdf8fa498, 0x1056b873, 0x24aadca6, 0xcf2941d0, 0xe213ae1c}},
	{KindMrg287, neg(-2), []uint64{0xe0147fc3, 0xf9cf8af4, 0x3cabdda2, 0xe76c65b3, 0xe1a5a4c5}},
	{KindMrg1457, 1, []uint64{0x12ce8e15, 0x5ef95e9b, 0x49993ccf, 0x217ffbdc, 0x6fb12f95}},
	{KindMrg49507, 1, []uint64{0x131406ec, 0x4b1d5f0c, 0x6aabce3b, 0x086e1d9f, 0x5fbf49e1}},

	{KindLFib78, 1, []uint64{0x0580fd76d4acba81, 0x469ecf77f6668ef1, 0x682f109d6a7ead06, 0x9c8454a893bc1346, 0x16effb7f88fec11c}},
	{KindLFib116, 1, []uint64{0x273547545209e67b, 0x24987009bf9618d4, 0x68f5121e440f357a, 0xb29808df1d36c522, 0xf95982fb2800b4c5}},
	{KindLFib668, 1, []uint64{0x006c6675dd712147, 0xd2fdcf21b619c898, 0xd77796cc06953a70, 0x61e326fd27d79024, 0x0590efed9dc150bd}},
	{KindLFib1340, 1, []uint64{0x952a109fe83cd2be, 0x041cbf7396197a05, 0xf0ae341bba23e17c, 0x61eecbcaf968dcfe, 0xa46a59bd8d5a5d9a}},

	{KindWell512a, 1, []uint64{0x50e458df, 0x23583e39, 0x83dab7be, 0x0a68c750, 0x7d8e1823}},
	{KindWell1024a, 1, []uint64{0x97897348, 0x1ffd928e, 0x5e8f8ff9, 0x281eaa99, 0x7778e6c4}},
	{KindWell19937c, 1, []uint64{0xc67d4efe, 0x5b97a4c0, 0xe941f25a, 0xdb3d4e0c, 0xf2a50b0e}},
	{KindWell44497b, 1, []uint64{0x72be36cc, 0xab9f28e7, 0xcdce22d6, 0xe9402219, 0x24f24314}},

	{KindMelg607, 1, []uint64{0x89cc9fe3a1f1d1b0, 0x18b0815477e51d1b, 0x6851950251a7f4ca, 0x3c565e3f08a1db87, 0xbdf32cc567babffd}},
	{KindMelg19937, 1, []uint64{0x8337b3f21128d0fb, 0x626fe223f5ea21c9, 0x331b17f1e09050ae, 0x92d99deddc4659ba, 0xacd463db31fe1f52}},
	{KindMelg19937, neg(-2), []uint64{0x7e8303f79ca95b09, 0xf87e4b6028b477c9, 0xde8797964daeb770, 0x6e8cce9e70a2a9f2, 0x9ee9b37de0a89ea5}},
	{KindMelg44497, 1, []uint64{0x65e91b062db707c3, 0x34d0f409caaa7c42, 0xb342b8909a505ec8, 0xab7accf231022eaf, 0x77e697a671f58dc6}},

	{KindPcg64x32, 1, []uint64{0, 0x2bb70e8f, 0x9a212e89, 0xbf5c61d9, 0x01aa228e}},
	{KindPcg128x64, 1, []uint64{0xffffffffffffffff, 0x67edbc92ac518991, 0xfb5bd5e201b571a8, 0xe8628ad72b23b4c0, 0xc2722d77d9a50970}},
	{KindPcg128x64, neg(-2), []uint64{0xffffffffffffffff, 0x1963c455dfac3e9d, 0x2921be25fcc5113a, 0xd9c4377d1bc7d6f5, 0x1e95a9af631c3bbf}},
	{KindPcg1024x32, 1, []uint64{0x910a2dec, 0x1364cbc7, 0xec5f61c7, 0x82a5b817, 0x28cc1c10}},
	{KindPcg1024x32, neg(-2), []uint64{0x0567368d, 0x04b1ab02, 0x4c8abf2a, 0x42c79439, 0xf19624b2}},

	{KindXoroshiro256, 1, []uint64{0xb3f2af6d0fc710c5, 0x853b559647364cea, 0x92f89756082a4514, 0x642e1c7bc266a3a7, 0xb27a48e29a233673}},
	{KindXoroshiro512, 1, []uint64{0xb3f2af6d0fc710c5, 0x853b559647364cea, 0x12b0ebbfe54e43b6, 0x7dc8a7e8eb0ac06b, 0x616dbf8258a39551}},
	{KindXoroshiro1024, 1, []uint64{0xb3f2af6d0fc710c5, 0xf9d20113ec80c6d5, 0x8253bcf0deab787c, 0xf6f50e5ea678c37c, 0x458df629d8b843a8}},

	{KindSquares32, 1, []uint64{0xe98228c6, 0x27824168, 0xabd2b4ad, 0x605b47f3, 0x6c6a1b46}},
	{KindSquares64, 1, []uint64{0xe98228c678a39846, 0x278241683a3d3709, 0xabd2b4ad3710b88d, 0x605b47f37f0987be, 0x6c6a1b461a98879a}},

	{KindCwg64, 1, []uint64{0xd15981ccf78370af, 0x92a898cc34dc3e71, 0x77e3762f7fc15b08, 0x1f2ee85f2316e3ef, 0x73e2d6de8708ac18}},
	{KindCwg128x64, 1, []uint64{0xfe58a46deb3255a3, 0xff5247d888e1f6f9, 0xc8edfbc5db97fbd8, 0x1477776d4bcda574, 0x6b67ce70627acf91}},
	{KindCwg128, 1, []uint64{0x754ee327c1a233ee, 0x9fd66bc3ea4ccd07, 0x7c7021f701a00e33, 0x7bd58f7d944d7137, 0xcf5ca544e57e9414}},

	{KindFastRand32, 1, []uint64{0xd767c1fd, 0x84ed309a, 0xae01bd53, 0x2b54d278, 0xd414a219}},
	{KindFastRand63, 1, []uint64{0x1e8b7bf8ca5f91e1, 0x54491bb4578e74d6, 0x000dcbc269442bcf, 0x092d1d243d7c6c9c, 0x13db4f804bab9f4d}},
}

// floatAnswers are the first draws after SeedFloat(g, 0.357).
var floatAnswers = []struct {
	kind Kind
	out  []uint64
}{
	{KindMrg287, []uint64{0x10db7df2, 0xb81442a6, 0xb3b2a67f, 0xbe5fc073, 0xcacd06b3}},
	{KindMrg1457, []uint64{0x2dbd706e, 0x190a1ed2, 0x060f71e7, 0x34b3ea09, 0x632b30b5}},
	{KindMrg49507, []uint64{0x5517b3cb, 0x61d5b167, 0x5694860f, 0x2b2eacb9, 0x608e74f4}},

	{KindLFib78, []uint64{0x70106df293b39627, 0x83df841a679efbdb, 0xc91e42acab88388b, 0x4d8b2fd6229515b2, 0x0769374f9f6f7153}},
	{KindLFib116, []uint64{0xf0a16a2497e98a9a, 0xe9ad933c54510151, 0x7d1a2e9f963ac7fe, 0x6e2bfd0cac2bbaff, 0xa81fe325117cecda}},
	{KindLFib668, []uint64{0xc9f4d246e1a58df0, 0x973c164d6b903fb9, 0x4f00504d1d381d87, 0x01651ae97159ce6e, 0x32f7ce671dc133cd}},
	{KindLFib1340, []uint64{0x5632b0658fc55ee9, 0x3f3537953c7230d8, 0x9ac51b0ebba3b7f4, 0x30d65f7ca083d20a, 0x7d279a8cfe4abece}},

	{KindWell512a, []uint64{0xf5955f81, 0x22322858, 0xaaeaa9ca, 0x09d68741, 0x5375bd2b}},
	{KindWell1024a, []uint64{0xf1d1222b, 0x91802bb8, 0x4dfcba4a, 0x6df924ca, 0x7f685e83}},
	{KindWell19937c, []uint64{0x99ebdc45, 0xdf2354b1, 0xc8ebe74b, 0x07c4502d, 0x56530c36}},
	{KindWell44497b, []uint64{0x70cad36d, 0x2a6be26c, 0xdffb16b7, 0xbba77a8f, 0xd2dfcd4b}},

	{KindMelg607, []uint64{0xba94143022cf49ee, 0xabd911badf8f412e, 0xf5ef4d745967b451, 0x07ffe4e0733ba781, 0xf56e57b2cdd98f34}},
	{KindMelg19937, []uint64{0x5a424dc00c26a38d, 0xc12cc1e9bb1ad975, 0x552fd21da33853cb, 0x9997dfbf7d0e2c47, 0xc27b7be6c7d9f175}},
	{KindMelg44497, []uint64{0xa74def89031d7ffb, 0x48af133670a6f10f, 0x385628befdd1ee66, 0xe6f87805031745ff, 0x131ba98e409a1e35}},

	{KindPcg64x32, []uint64{0x645b713d, 0x422a71da, 0x8b4de3ef, 0x4fea2236, 0x4534954b}},
	{KindPcg128x64, []uint64{0x20c0016d916872b0, 0x7b9897ebf33ccfe3, 0x55b49f0fe1223331, 0xa441c2f7b505f885, 0xf62f46d0314e73c7}},
	{KindPcg1024x32, []uint64{0x313a03cd, 0x19e0b3e7, 0xebea2f9b, 0x26de931e, 0x77638b76}},

	{KindXoroshiro256, []uint64{0x80e9769bafcbd01d, 0xb96885c177a72daf, 0xb67b6dd8732977df, 0x3c927f5a021714d1, 0xc28bf2d43293a71e}},
	{KindXoroshiro512, []uint64{0x80e9769bafcbd01d, 0xb96885c177a72daf, 0xd41abe5142e3d5e1, 0x38284ef2881f2551, 0xb22d3c0a578ad547}},
	{KindXoroshiro1024, []uint64{0x80e9769bafcbd01d, 0x36aeef896aecfb5f, 0x7554d6edeae5ae7a, 0x8241b87e93fc5ee1, 0x449b805d6871b018}},

	{KindSquares32, []uint64{0xf2b6259d, 0x5f5b62c6, 0x6438f7df, 0xbbb674d3, 0x47f9ac1f}},
	{KindSquares64, []uint64{0xf2b6259de7380a32, 0x5f5b62c6612937da, 0x6438f7df064a6375, 0xbbb674d3d702c2fc, 0x47f9ac1f4b93cf5c}},

	{KindCwg64, []uint64{0x57e08bdb9c153110, 0x5a1a62dba3f9344f, 0x34137ef62f66b56a, 0xcd2808938477fe22, 0x9afdebcd5f09d213}},
	{KindCwg128x64, []uint64{0xc528f6001bce6f6c, 0x2074ad4a7283a9ae, 0x25b7e72bb5a6037d, 0x40ca44afd9b64e2c, 0xebe74cd080e7675d}},
	{KindCwg128, []uint64{0xa56a1f0bfbe70516, 0x1990fd15e26c40fc, 0x5558a89f610b4e27, 0xb2cfc7cd9aa34420, 0x34de721b11fe3449}},

	{KindFastRand32, []uint64{0x31af5044, 0x00baba75, 0xcb7440b2, 0x1412d88b, 0xe0a17650}},
	{KindFastRand63, []uint64{0x0deb2cba2da18a56, 0x294eb076730e7f4f, 0x5d1e3c047b74161c, 0x1c3be0f3f7a196cd, 0x15fc89176e9980b2}},
}

func mustSeeded(t testing.TB, k Kind, seed uint64) Generator {
	t.Helper()
	g, err := NewSeeded(k, seed)
	assert.NoError(t, err)
	return g
}

func TestKnownAnswers(t *testing.T) {
	for _, ka := range knownAnswers {
		ka := ka
		t.Run(ka.kind.String(), func(t *testing.T) {
			g := mustSeeded(t, ka.kind, ka.seed)
			for i, want := range ka.out {
				got := g.Uint64()
				if got != want {
					t.Fatalf("seed %#x draw %d: got %#x want %#x", ka.seed, i, got, want)
				}
			}
		})
	}
}

func TestFloatAnswers(t *testing.T) {
	assert.Equal(t, len(floatAnswers), int(numKinds))

	for _, fa := range floatAnswers {
		fa := fa
		t.Run(fa.kind.String(), func(t *testing.T) {
			g := mustSeeded(t, fa.kind, 0)
			assert.NoError(t, SeedFloat(g, 0.357))
			for i, want := range fa.out {
				got := g.Uint64()
				if got != want {
					t.Fatalf("draw %d: got %#x want %#x", i, got, want)
				}
			}
		})
	}
}

func TestEngines(t *testing.T) {
	for _, k := range Kinds() {
		k := k
		t.Run(k.String(), func(t *testing.T) {
			t.Run("Kind", func(t *testing.T) {
				assert.Equal(t, mustSeeded(t, k, 1).Kind(), k)
			})

			t.Run("Replay", func(t *testing.T) {
				tests.Replay(t, mustSeeded(t, k, 0), 0x1234)
			})

			t.Run("Seeds", func(t *testing.T) {
				a, b := mustSeeded(t, k, 1), mustSeeded(t, k, 2)
				same := 0
				for i := 0; i < 8; i++ {
					if a.Uint64() == b.Uint64() {
						same++
					}
				}
				assert.That(t, same < 8)
			})

			t.Run("UnitInterval", func(t *testing.T) {
				tests.UnitInterval(t, mustSeeded(t, k, 7), 1e6)
			})

			t.Run("Mean", func(t *testing.T) {
				tests.Mean(t, mustSeeded(t, k, 9), 1e5)
			})

			t.Run("Uint32Width", func(t *testing.T) {
				g := mustSeeded(t, k, 3)
				var or uint32
				for i := 0; i < 256; i++ {
					or |= g.Uint32()
				}
				if k.Bits() == 31 {
					assert.Equal(t, or, uint32(1<<31-1))
				} else {
					assert.Equal(t, or, uint32(1<<32-1))
				}
			})

			t.Run("StateRoundTrip", func(t *testing.T) {
				g := mustSeeded(t, k, 11)
				for i := 0; i < 100; i++ {
					g.Uint64()
				}
				st := g.State()
				assert.Equal(t, st.Kind, k)

				want := make([]uint64, 100)
				for i := range want {
					want[i] = g.Uint64()
				}

				h := mustSeeded(t, k, 12)
				assert.NoError(t, h.SetState(st))
				assert.That(t, Equal(h, mustRestore(t, k, st)))
				for i := range want {
					assert.Equal(t, h.Uint64(), want[i])
				}
			})

			t.Run("StateIsCopy", func(t *testing.T) {
				g := mustSeeded(t, k, 11)
				st := g.State()
				before := st.Clone()
				g.Uint64()
				assert.That(t, st.Equal(before))
			})

			t.Run("StateMismatch", func(t *testing.T) {
				g := mustSeeded(t, k, 5)
				before := g.State()

				other := KindMrg287
				if k == KindMrg287 {
					other = KindCwg64
				}
				err := g.SetState(mustSeeded(t, other, 5).State())
				assert.That(t, ErrStateFamilyMismatch.Has(err))
				assert.That(t, g.State().Equal(before))

				short := before.Clone()
				short.Words = short.Words[:len(short.Words)-1]
				err = g.SetState(short)
				assert.That(t, ErrInvalidSeedLength.Has(err))
				assert.That(t, g.State().Equal(before))
			})

			t.Run("SeedWordsLength", func(t *testing.T) {
				g := mustSeeded(t, k, 5)
				before := g.State()

				err := g.SeedWords(nil)
				assert.That(t, ErrInvalidSeedLength.Has(err))

				err = g.SeedWords(make([]uint64, len(before.Words)+1))
				assert.That(t, ErrInvalidSeedLength.Has(err))
				assert.That(t, g.State().Equal(before))
			})
		})
	}
}

func mustRestore(t testing.TB, k Kind, st State) Generator {
	t.Helper()
	g := mustSeeded(t, k, 0)
	assert.NoError(t, g.SetState(st))
	return g
}

func TestSeedWords(t *testing.T) {
	t.Run("Expands", func(t *testing.T) {
		a, b := NewXoroshiro1024(0), NewXoroshiro1024(0)
		assert.NoError(t, a.SeedWords([]uint64{1, 2}))
		assert.NoError(t, b.SeedWords([]uint64{1, 3}))

		as, bs := a.State(), b.State()
		assert.Equal(t, as.Words[0], uint64(1))
		assert.Equal(t, as.Words[1], uint64(2))
		assert.That(t, as.Words[2] != bs.Words[2])
		assert.Equal(t, as.Index, 0)
	})

	t.Run("Deterministic", func(t *testing.T) {
		a, b := NewLFib116(0), NewLFib116(1)
		assert.NoError(t, a.SeedWords([]uint64{5, 6, 7}))
		assert.NoError(t, b.SeedWords([]uint64{5, 6, 7}))
		assert.That(t, Equal(a, b))
	})

	t.Run("MrgReduced", func(t *testing.T) {
		m := NewMrg1457(0)
		assert.NoError(t, m.SeedWords([]uint64{1<<31 - 1, 1<<31 + 4, 9}))
		st := m.State()
		assert.Equal(t, st.Words[0], uint64(0))
		assert.Equal(t, st.Words[1], uint64(5))
		assert.Equal(t, st.Words[2], uint64(9))
	})

	t.Run("Exact", func(t *testing.T) {
		x := NewXoroshiro256(0)
		assert.That(t, ErrInvalidSeedLength.Has(x.SeedWords([]uint64{1, 2, 3})))
		assert.NoError(t, x.SeedWords([]uint64{1, 2, 3, 4}))
		assert.DeepEqual(t, x.State().Words, []uint64{1, 2, 3, 4})
	})

	t.Run("Pcg1024x32Short", func(t *testing.T) {
		a, b := NewPcg1024x32(0), NewPcg1024x32(0)
		assert.NoError(t, a.SeedWords([]uint64{5, 6}))
		assert.NoError(t, b.SeedWords([]uint64{5, 7}))

		as, bs := a.State(), b.State()
		assert.Equal(t, len(as.Words), 1025)
		assert.Equal(t, as.Words[0], uint64(5))
		assert.Equal(t, as.Words[1], uint64(6))
		assert.That(t, as.Words[2] != bs.Words[2])

		assert.That(t, ErrInvalidSeedLength.Has(a.SeedWords(make([]uint64, 1026))))
		assert.That(t, a.State().Equal(as))
	})
}

func TestPcg(t *testing.T) {
	t.Run("Pcg64x32State", func(t *testing.T) {
		p := NewPcg64x32(1)
		for i := 0; i < 5; i++ {
			p.Next()
		}
		assert.Equal(t, p.State().Words[0], uint64(0xcba276b4b881a9f0))
	})

	t.Run("Pcg128x64State", func(t *testing.T) {
		p := NewPcg128x64(1)
		for i := 0; i < 5; i++ {
			p.Next()
		}
		assert.DeepEqual(t, p.State().Words, []uint64{0xc40120e741540b65, 0x5973d6ce5b782899})

		p.Seed(neg(-2))
		for i := 0; i < 5; i++ {
			p.Next()
		}
		assert.DeepEqual(t, p.State().Words, []uint64{0xac01c10183cfadee, 0x9eac6e4920629ef8})
	})

	t.Run("Seed128", func(t *testing.T) {
		a, b := NewPcg128x64(0), NewPcg128x64(0)
		a.Seed128(1, ^uint64(1))
		b.Seed(1)
		assert.That(t, Equal(a, b))

		a.Seed128(0xfffffffffffffffe, 0xfffffffffffffffd)
		for _, want := range []uint64{0x6, 0x3a155d7c5ef8f6a4, 0xd201f88a2ca35bd8, 0x52b144175afe0a9d, 0xc1ce58340ac335b6} {
			assert.Equal(t, a.Next(), want)
		}
		assert.DeepEqual(t, a.State().Words, []uint64{0x680482828082d4e7, 0x4260f9a56f2a0124})
	})

	t.Run("Pcg1024x32Table", func(t *testing.T) {
		p := NewPcg1024x32(1)
		st := p.State()
		assert.Equal(t, st.Words[0], uint64(1))
		assert.Equal(t, st.Words[2], uint64(0xbeeb8da1))

		for i := 0; i < 5; i++ {
			p.Next()
		}
		assert.Equal(t, p.State().Words[0], uint64(0xcba276b4b881a9f0))
	})

	t.Run("Pcg1024x32Advance", func(t *testing.T) {
		p := NewPcg1024x32(1)
		st := p.State()
		st.Words[0] = 0x1234567800000000
		assert.NoError(t, p.SetState(st))

		q := NewPcg1024x32(2)
		assert.NoError(t, q.SetState(st))

		for i := 0; i < 2048; i++ {
			assert.Equal(t, p.Next(), q.Next())
		}
		assert.That(t, !p.State().Equal(st))
		assert.That(t, Equal(p, q))
	})
}

func TestSquares(t *testing.T) {
	t.Run("Key", func(t *testing.T) {
		assert.Equal(t, squaresKey(1), uint64(0x9bd658ae46c9d5e3))
		assert.Equal(t, squaresKey(neg(-2)), uint64(0xfbe269a13c127d8f))
		assert.Equal(t, squaresKey(9), uint64(0xbf4a3268dabe3f75))
	})

	t.Run("KeyDigits", func(t *testing.T) {
		for seed := uint64(0); seed < 1000; seed++ {
			key := squaresKey(seed)
			assert.Equal(t, key&1, uint64(1))
			for half := 0; half < 2; half++ {
				var seen [16]bool
				for d := 0; d < 8; d++ {
					digit := (key >> (4 * (8*half + d))) & 15
					if d == 0 && half == 0 {
						// the low digit may have been bumped by the |1
						continue
					}
					assert.That(t, digit != 0)
					assert.That(t, !seen[digit])
					seen[digit] = true
				}
			}
		}
	})

	t.Run("SetCounter", func(t *testing.T) {
		s := NewSquares64(1)
		want := make([]uint64, 10)
		for i := range want {
			want[i] = s.Next()
		}
		assert.Equal(t, s.Counter(), uint64(10))

		s.SetCounter(4)
		for i := 4; i < 10; i++ {
			assert.Equal(t, s.Next(), want[i])
		}
	})

	t.Run("EvenKey", func(t *testing.T) {
		s := NewSquares32(1)
		before := s.State()
		err := s.SeedWords([]uint64{0, 0x1234})
		assert.That(t, ErrInvalidKey.Has(err))
		assert.That(t, s.State().Equal(before))
	})
}

func TestCwg(t *testing.T) {
	t.Run("Cwg128State", func(t *testing.T) {
		c := NewCwg128(1)
		for i := 0; i < 5; i++ {
			c.Next()
		}
		st := c.State()
		assert.DeepEqual(t, st.Words[0:2], []uint64{0x05fea34f3d0ed5bf, 0x7ff1cccac2df6bbc})
		assert.DeepEqual(t, st.Words[6:8], []uint64{0xd532e59ead0bcfc8, 0xba99c426fbca9e03})
	})

	t.Run("Cwg128Full", func(t *testing.T) {
		c := NewCwg128(1)
		assert.Equal(t, c.Next(), uint128.T{Hi: 0x754ee327c1a233ee, Lo: 0x23fcb9247bb8f03e})
		assert.Equal(t, c.Next(), uint128.T{Hi: 0x9fd66bc3ea4ccd07, Lo: 0x790e21e4306abd20})
	})

	t.Run("Seed128", func(t *testing.T) {
		const hi, lo = 0xfffffffffffffffe, 0xfffffffffffffffd

		c := NewCwg128(0)
		c.Seed128(hi, lo)
		assert.DeepEqual(t, c.State().Words, []uint64{
			0, 0,
			0xf3203e9039f4a821, 0xf75f04cbb5a1a1dd,
			0xba56949915dcf9e9, 0xec779c3693f88501,
			0, 0,
		})
		for _, want := range []uint128.T{
			{Hi: 0xae85c9c4e3191d32, Lo: 0x6c288dd04b7ff7c4},
			{Hi: 0x1fd9e09b1271b43c, Lo: 0x04e33950ce3e8275},
			{Hi: 0x9dc870ccfe9ae50a, Lo: 0x2d83d25ba93a87e2},
			{Hi: 0x3e681e8e1ee91ac3, Lo: 0xf59c640e4c36251f},
			{Hi: 0x0892781da9fea0e2, Lo: 0x718743f4145e5de1},
		} {
			assert.Equal(t, c.Next(), want)
		}

		c2 := NewCwg128x64(0)
		SeedUint128(c2, hi, lo)
		assert.DeepEqual(t, c2.State().Words, []uint64{
			0, 0xf75f04cbb5a1a1dd, 0xf3203e9039f4a821, 0xec779c3693f88501, 0,
		})
		for _, want := range []uint64{0xec288dd0f1298f2a, 0x4e26f7747cde7909, 0x3137387601cab2ab, 0xa1faef3817023fcf, 0xbfa5bbb9b880621a} {
			assert.Equal(t, c2.Next(), want)
		}
		assert.DeepEqual(t, c2.State().Words, []uint64{
			0xf9f9492a1acd86a4, 0xf75f04cbb5a1a1dd, 0xaa642445fb13ed6e, 0xbfa5bbb9b8809be3, 0xd4db17fa8c282951,
		})

		c3 := NewCwg64(0)
		SeedUint128(c3, hi, lo)
		assert.Equal(t, c3.Increment(), uint64(0xf75f04cbb5a1a1dd))
		for _, want := range []uint64{0xec288dd0f1298f2a, 0x44e33950a6e20488, 0x4d83d25b218ca498, 0x459c640e6a48e1de, 0xc98743f470b82316} {
			assert.Equal(t, c3.Next(), want)
		}
	})

	t.Run("EvenIncrement", func(t *testing.T) {
		c := NewCwg64(1)
		before := c.State()

		assert.That(t, ErrInvalidIncrement.Has(c.SetIncrement(2)))
		assert.That(t, ErrInvalidIncrement.Has(c.SeedWords([]uint64{0, 4, 1, 0})))
		assert.That(t, c.State().Equal(before))

		c2 := NewCwg128x64(1)
		assert.That(t, ErrInvalidIncrement.Has(c2.SetIncrement(0)))

		c3 := NewCwg128(1)
		assert.That(t, ErrInvalidIncrement.Has(c3.SetIncrement(uint128.T{Hi: 1})))
	})

	t.Run("Streams", func(t *testing.T) {
		a, b := NewCwg64(1), NewCwg64(1)
		assert.NoError(t, a.SetIncrement(1))
		assert.NoError(t, b.SetIncrement(3))
		assert.Equal(t, a.Increment(), uint64(1))

		same := 0
		for i := 0; i < 64; i++ {
			if a.Next() == b.Next() {
				same++
			}
		}
		assert.That(t, same < 4)
	})
}

func TestFastRand(t *testing.T) {
	t.Run("Seed", func(t *testing.T) {
		f32 := new(FastRand32)
		f32.Seed(1)
		assert.Equal(t, f32.State().Words[0], uint64(0x910a2dec))

		f63 := new(FastRand63)
		f63.Seed(1)
		assert.Equal(t, f63.State().Words[0], uint64(0x488516f644812e60))
	})

	t.Run("Mask", func(t *testing.T) {
		f := new(FastRand63)
		assert.NoError(t, f.SeedWords([]uint64{^uint64(0)}))
		assert.Equal(t, f.State().Words[0], uint64(fastRand63Mask))
		for i := 0; i < 1000; i++ {
			assert.That(t, f.Next() <= fastRand63Mask)
		}
	})

	t.Run("Clock", func(t *testing.T) {
		assert.Equal(t, NewFastRand32().Kind(), KindFastRand32)
		assert.Equal(t, NewFastRand63().Kind(), KindFastRand63)
	})
}

func BenchmarkEngines(b *testing.B) {
	for _, k := range Kinds() {
		k := k
		b.Run(k.String(), func(b *testing.B) {
			tests.RunBenchmarks(b, func(seed uint64) tests.Type {
				g, _ := NewSeeded(k, seed)
				return g
			})
		})
	}
}
