package curves

import (
	"math/big"
	"sync"

	"github.com/mratsim/constantine-sub017/math/fp"
	"github.com/mratsim/constantine-sub017/math/twistededwards"
)

// Bandersnatch/Banderwagon parameters, the same constants the teacher's
// banderwagon.go hardcodes: the twisted-Edwards curve -5x^2+y^2 = 1+dx^2y^2
// over the BLS12-381 scalar field, cofactor 4, with Banderwagon the
// prime-order-n quotient subgroup and Bandersnatch the full cofactor-4
// group both are built from.
var (
	bandersnatchFp, _ = new(big.Int).SetString("73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001", 16)
	bandersnatchN, _  = new(big.Int).SetString("1cfb69d4ca675f520cce760202687600ff8f87007419047174fd06b52876e7e1", 16)
	bandersnatchD, _  = new(big.Int).SetString("6389c12633c267cbc66e3bf86be3b6d8cb66677177e54f92b369f2f5188d58e7", 16)
	bandersnatchGx, _ = new(big.Int).SetString("29c132cc2c0b34c5743711777bbe42f32b79c022ad998465e1e71866a252ae18", 16)
	bandersnatchGy, _ = new(big.Int).SetString("2a6c669eda123e0f157d8b50badcd586358cad81eee464605e3167b6cc974166", 16)
)

const bandersnatchNumLimbs = 4
const bandersnatchCofactor = 4

var bandersnatchOnce sync.Once
var bandersnatchFpConsts *fp.Constants
var bandersnatchA, bandersnatchDElem fp.Element
var bandersnatchGenX, bandersnatchGenY fp.Element

// bandersnatchDeriveOnce derives the shared Fp constants, curve parameters
// and generator that both the full group (Bandersnatch) and its
// prime-order subgroup (Banderwagon) records build on, mirroring the
// teacher's module-level banderFr/banderA/banderD/banderGenX/banderGenY
// variables, generalized to math/fp.Element.
func bandersnatchDeriveOnce() {
	bandersnatchOnce.Do(func() {
		bandersnatchFpConsts = newFpConstants("bandersnatch-Fp", bandersnatchFp, bandersnatchNumLimbs, 255)
		bandersnatchA = elementFromBig(bandersnatchFpConsts, big.NewInt(-5), bandersnatchFp)
		bandersnatchDElem = elementFromBig(bandersnatchFpConsts, bandersnatchD, bandersnatchFp)
		bandersnatchGenX = elementFromBig(bandersnatchFpConsts, bandersnatchGx, bandersnatchFp)
		bandersnatchGenY = elementFromBig(bandersnatchFpConsts, bandersnatchGy, bandersnatchFp)
	})
}

var bandersnatchRecordOnce sync.Once
var bandersnatchCached *Record

// bandersnatchRecord derives the full cofactor-4 Bandersnatch group. Its
// group order 4n is carried in TwistedEdwards.Order; its Fr is the
// prime-order-n scalar field it shares with Banderwagon, since 4n is even
// and has no Montgomery field constants. No ec.Curve[fp.Element]/G1 is
// populated here since this
// family's native representation is twisted-Edwards, not
// short-Weierstrass -- see Record.TwistedEdwards's doc comment.
func bandersnatchRecord() *Record {
	bandersnatchRecordOnce.Do(func() {
		bandersnatchDeriveOnce()

		fullOrder := new(big.Int).Mul(bandersnatchN, big.NewInt(bandersnatchCofactor))
		frConsts := newFpConstants("bandersnatch-Fr", bandersnatchN, bandersnatchNumLimbs, 253)

		bandersnatchCached = &Record{
			ID: Bandersnatch,
			Fp: bandersnatchFpConsts,
			Fr: frConsts,
			TwistedEdwards: &twistededwards.Constants{
				Fp:    bandersnatchFpConsts,
				A:     bandersnatchA,
				D:     bandersnatchDElem,
				Order: limbsFromBig(fullOrder, bandersnatchNumLimbs),
			},
		}
	})
	return bandersnatchCached
}

var banderwagonRecordOnce sync.Once
var banderwagonCached *Record

// banderwagonRecord derives Banderwagon, the prime-order-n quotient
// subgroup of Bandersnatch EIP-6800 uses for Verkle tree commitments
// (BanderEqual's (x,y)~(-x,-y) quotient identity, carried here as
// twistededwards.Equal).
func banderwagonRecord() *Record {
	banderwagonRecordOnce.Do(func() {
		bandersnatchDeriveOnce()

		frConsts := newFpConstants("banderwagon-Fr", bandersnatchN, bandersnatchNumLimbs, 253)

		banderwagonCached = &Record{
			ID: Banderwagon,
			Fp: bandersnatchFpConsts,
			Fr: frConsts,
			TwistedEdwards: &twistededwards.Constants{
				Fp:    bandersnatchFpConsts,
				A:     bandersnatchA,
				D:     bandersnatchDElem,
				Order: limbsFromBig(bandersnatchN, bandersnatchNumLimbs),
			},
		}
	})
	return banderwagonCached
}

// BandersnatchGenerator returns the shared generator point in affine
// coordinates, valid for both the Bandersnatch and Banderwagon records
// (Banderwagon's generator is this same point, taken in the order-n
// subgroup it already lives in).
func BandersnatchGenerator() (x, y fp.Element) {
	bandersnatchDeriveOnce()
	return bandersnatchGenX, bandersnatchGenY
}
