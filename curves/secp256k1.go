package curves

import (
	"math/big"
	"sync"

	"github.com/mratsim/constantine-sub017/internal/limb"
	"github.com/mratsim/constantine-sub017/math/ec"
	"github.com/mratsim/constantine-sub017/math/fp"
)

// secp256k1 parameters from SEC 2, the same constants the teacher's
// secp256k1_curve.go hardcodes into *big.Int; GLV lattice constants
// (lambda, minus_b1/minus_b2, g1/g2) are libsecp256k1's, via
// other_examples' mleku-p256k1 glv.go transcription.
var (
	secp256k1P, _      = new(big.Int).SetString("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f", 16)
	secp256k1N, _       = new(big.Int).SetString("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141", 16)
	secp256k1Gx, _      = new(big.Int).SetString("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798", 16)
	secp256k1Gy, _      = new(big.Int).SetString("483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8", 16)
	secp256k1B          = big.NewInt(7)
	secp256k1Beta, _    = new(big.Int).SetString("7ae96a2b657c07106e64479eac3434e99cf0497512f58995c1396c28719501ee", 16)
	secp256k1Lambda, _  = new(big.Int).SetString("5363ad4cc05c30e0a5261c028812645a122e22ea20816678df02967c1b23bd72", 16)
	secp256k1MinusB1, _ = new(big.Int).SetString("e4437ed6010e88286f547fa90abfe4c3", 16)
	secp256k1MinusB2, _ = new(big.Int).SetString("fffffffffffffffffffffffffffffffe8a280ac50774346dd765cda83db1562c", 16)
	secp256k1G1Const, _ = new(big.Int).SetString("3086d221a7d46bcde86c90e49284eb153daa8a1471e8ca7fe893209a45dbb031", 16)
	secp256k1G2Const, _ = new(big.Int).SetString("e4437ed6010e88286f547fa90abfe4c4221208ac9df506c61571b4ae8ac47f71", 16)
)

// secp256k1C is the pseudo-Mersenne constant in p = 2^256 - secp256k1C:
// p's low word is 0xfffffffefffffc2f = 2^64 - (2^32+977), so
// 2^256 - p == 2^32 + 977.
const secp256k1C = 1<<32 + 977

var secp256k1Once sync.Once
var secp256k1Cached *Record

// secp256k1NumLimbs is the limb width used for both Fp and Fr (both are
// 256-bit moduli here).
const secp256k1NumLimbs = 4

func secp256k1Record() *Record {
	secp256k1Once.Do(func() {
		fpConsts := newCrandallFpConstants("secp256k1-Fp", secp256k1P, secp256k1C, secp256k1NumLimbs, 256)
		frConsts := newFpConstants("secp256k1-Fr", secp256k1N, secp256k1NumLimbs, 256)

		gx := elementFromBig(fpConsts, secp256k1Gx, secp256k1P)
		gy := elementFromBig(fpConsts, secp256k1Gy, secp256k1P)
		beta := elementFromBig(fpConsts, secp256k1Beta, secp256k1P)

		lambda := elementFromBig(frConsts, secp256k1Lambda, secp256k1N)
		minusB1 := elementFromBig(frConsts, secp256k1MinusB1, secp256k1N)
		minusB2 := elementFromBig(frConsts, secp256k1MinusB2, secp256k1N)

		g1 := limbsFromBig(secp256k1G1Const, secp256k1NumLimbs)
		g2 := limbsFromBig(secp256k1G2Const, secp256k1NumLimbs)
		halfOrder := limbsFromBig(new(big.Int).Rsh(secp256k1N, 1), secp256k1NumLimbs)

		curve := &ec.Curve[fp.Element]{
			Name:      "secp256k1",
			A:         fp.Zero(fpConsts),
			B:         elementFromBig(fpConsts, secp256k1B, secp256k1P),
			Generator: ec.Affine[fp.Element]{X: gx, Y: gy},
			Order:     frConsts.Modulus,
			Cofactor:  limb.New(secp256k1NumLimbs),
		}
		curve.Cofactor[0] = 1

		curve.Endomorphism = &ec.Endomorphism[fp.Element]{
			Psi: func(p ec.Jacobian[fp.Element]) ec.Jacobian[fp.Element] {
				return ec.Jacobian[fp.Element]{X: p.X.Mul(beta), Y: p.Y, Z: p.Z}
			},
			Split: &ec.ScalarSplit{
				Fr:        frConsts,
				Lambda:    lambda,
				MinusB1:   minusB1,
				MinusB2:   minusB2,
				G1:        g1,
				G2:        g2,
				ShiftBits: 384,
				HalfOrder: halfOrder,
			},
		}

		secp256k1Cached = &Record{
			ID: Secp256k1,
			Fp: fpConsts,
			Fr: frConsts,
			G1: curve,
		}
	})
	return secp256k1Cached
}
