package curves

import (
	"math/big"
	"sync"

	"github.com/mratsim/constantine-sub017/math/ec"
	"github.com/mratsim/constantine-sub017/math/fp"
)

// BLS12-381 parameters, transcribed from the public curve specification
// (the same values gnark-crypto's and blst's own parameter tables carry),
// like the BN254 constants in bn254.go -- transcribed from memory, not
// execution-checked against an oracle here; TestBLS12381CrosscheckBlst
// (bls12381_blst_backend_test.go, build tag "blst") is what actually verifies
// them against an independent implementation.
var (
	bls12381P, _  = new(big.Int).SetString("1a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffaaab", 16)
	bls12381N, _  = new(big.Int).SetString("73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001", 16)
	bls12381Gx, _ = new(big.Int).SetString("17f1d3a73197d7942695638c4fa9ac0fc3688c4f9774b905a14e3a3f171bac586c55e83ff97a1aeffb3af00adb22c6bb", 16)
	bls12381Gy, _ = new(big.Int).SetString("08b3f481e3aaa0f1a09e30ed741d8ae4fcf5e095d5d00af600db18cb2c04b3edd03cc744a2888ae40caa232946c5e7e1", 16)
	bls12381B     = big.NewInt(4)
	bls12381H1, _ = new(big.Int).SetString("396c8c005555e1568c00aaab0000aaab", 16)
)

const bls12381NumLimbs = 6

var bls12381Once sync.Once
var bls12381Cached *Record

// bls12381Record derives BLS12-381's G1 group only: base field, scalar
// field, and the short-Weierstrass curve y^2=x^3+4. No tower/G2 is built
// here (see DESIGN.md's BLS12-381 entry for the scope decision); Fp2/G2
// are left nil like every other not-fully-wired curve's Record.
func bls12381Record() *Record {
	bls12381Once.Do(func() {
		fpConsts := newFpConstants("bls12381-Fp", bls12381P, bls12381NumLimbs, 381)
		frConsts := newFpConstants("bls12381-Fr", bls12381N, bls12381NumLimbs, 255)

		gx := elementFromBig(fpConsts, bls12381Gx, bls12381P)
		gy := elementFromBig(fpConsts, bls12381Gy, bls12381P)
		b := elementFromBig(fpConsts, bls12381B, bls12381P)

		curve := &ec.Curve[fp.Element]{
			Name:      "bls12381-g1",
			A:         fp.Zero(fpConsts),
			B:         b,
			Generator: ec.Affine[fp.Element]{X: gx, Y: gy},
			Order:     frConsts.Modulus,
			Cofactor:  limbsFromBig(bls12381H1, bls12381NumLimbs),
		}

		bls12381Cached = &Record{
			ID: BLS12381,
			Fp: fpConsts,
			Fr: frConsts,
			G1: curve,
		}
	})
	return bls12381Cached
}
