package curves

import (
	"math/big"
	"sync"

	"github.com/mratsim/constantine-sub017/internal/limb"
	"github.com/mratsim/constantine-sub017/math/ec"
	"github.com/mratsim/constantine-sub017/math/fp"
	"github.com/mratsim/constantine-sub017/math/tower"
)

// BN254 (alt_bn128) G1 parameters, the same constants the teacher's
// bn254_fp.go/bn254_g1.go hardcode: y^2 = x^3 + 3 over F_p, generator
// (1, 2).
var (
	bn254P, _  = new(big.Int).SetString("21888242871839275222246405745257275088696311157297823662689037894645226208583", 10)
	bn254N, _  = new(big.Int).SetString("21888242871839275222246405745257275088548364400416034343698204186575808495617", 10)
	bn254Gx, _ = new(big.Int).SetString("1", 10)
	bn254Gy, _ = new(big.Int).SetString("2", 10)
	bn254B     = big.NewInt(3)
)

// BN254's sextic twist: the degree-6 (D-type) twist with non-residue
// Xi = 9+i over Fp2 = Fp[i]/(i^2+1), and the G2 generator and twisted
// curve coefficient b' = b/Xi the teacher's bn254_fp2.go/bn254_g2.go would
// hardcode for a pairing-capable G2. Transcribed from the published BN254
// parameters (the same values gnark-crypto's and py_ecc's bn254 packages
// carry); like the Renes-Costello-Batina formulas in math/ec, these are
// unverified by execution -- see DESIGN.md.
var (
	bn254XiA0 = big.NewInt(9)
	bn254XiA1 = big.NewInt(1)

	bn254G2Xc0, _ = new(big.Int).SetString("10857046999023057135944570762232829481370756359578518086990519993285655852781", 10)
	bn254G2Xc1, _ = new(big.Int).SetString("11559732032986387107991004021392285783925812861821192530917403151452391805634", 10)
	bn254G2Yc0, _ = new(big.Int).SetString("8495653923123431417604973247489272438418190587263600148770280649306958101930", 10)
	bn254G2Yc1, _ = new(big.Int).SetString("4082367875863433681332203403145435568316851327593401208105741076214120093531", 10)

	bn254TwistBc0, _ = new(big.Int).SetString("19485874751759354771024239261021720505790618469301721065564631296452457478373", 10)
	bn254TwistBc1, _ = new(big.Int).SetString("266929791119991161246907387137283842545076965332900288569378510910307636690", 10)
)

var bn254Once sync.Once
var bn254Cached *Record

const bn254NumLimbs = 4

// bn254Record derives BN254's G1 group, and its Fp2/Fp6/Fp12 tower and G2
// group. GLV is not wired for BN254's G1 in this registry: BN curves do
// admit a 2-dimensional GLV decomposition (their j-invariant is also 0),
// but deriving its lattice basis needs its own reduction computation
// distinct from secp256k1's hardcoded libsecp256k1 constants, and no pack
// example ships those BN254-specific basis vectors to ground this on --
// see DESIGN.md. G1's ScalarMul falls back to the plain windowed path
// until that basis is sourced.
func bn254Record() *Record {
	bn254Once.Do(func() {
		fpConsts := newFpConstants("bn254-Fp", bn254P, bn254NumLimbs, 254)
		frConsts := newFpConstants("bn254-Fr", bn254N, bn254NumLimbs, 254)

		gx := elementFromBig(fpConsts, bn254Gx, bn254P)
		gy := elementFromBig(fpConsts, bn254Gy, bn254P)

		curve := &ec.Curve[fp.Element]{
			Name:      "bn254",
			A:         fp.Zero(fpConsts),
			B:         elementFromBig(fpConsts, bn254B, bn254P),
			Generator: ec.Affine[fp.Element]{X: gx, Y: gy},
			Order:     frConsts.Modulus,
			Cofactor:  limb.New(bn254NumLimbs),
		}
		curve.Cofactor[0] = 1

		fp2Consts := &tower.Fp2Constants{
			Base: fpConsts,
			Beta: elementFromBig(fpConsts, big.NewInt(-1), bn254P),
		}
		xi := tower.Fp2{
			A0: elementFromBig(fpConsts, bn254XiA0, bn254P),
			A1: elementFromBig(fpConsts, bn254XiA1, bn254P),
			C:  fp2Consts,
		}
		fp6Consts := &tower.Fp6Constants{Base: fp2Consts, Xi: xi}
		fp12Consts = &tower.Fp12Constants{Base: fp6Consts}

		pMinus1 := new(big.Int).Sub(bn254P, big.NewInt(1))
		gamma1 := fp2Pow(xi, new(big.Int).Div(pMinus1, big.NewInt(3)))
		gamma2 := fp2Pow(xi, new(big.Int).Div(new(big.Int).Mul(pMinus1, big.NewInt(2)), big.NewInt(3)))
		fp12Gamma := fp2Pow(xi, new(big.Int).Div(pMinus1, big.NewInt(6)))

		bn254FrobGammas = tower.Fp6FrobGammas{Gamma1: gamma1, Gamma2: gamma2}
		bn254Fp12FrobGamma = tower.Fp12FrobGamma{
			Inner: bn254FrobGammas,
			Gamma: fp12Gamma,
		}

		g2x := tower.Fp2{A0: elementFromBig(fpConsts, bn254G2Xc0, bn254P), A1: elementFromBig(fpConsts, bn254G2Xc1, bn254P), C: fp2Consts}
		g2y := tower.Fp2{A0: elementFromBig(fpConsts, bn254G2Yc0, bn254P), A1: elementFromBig(fpConsts, bn254G2Yc1, bn254P), C: fp2Consts}
		twistB := tower.Fp2{A0: elementFromBig(fpConsts, bn254TwistBc0, bn254P), A1: elementFromBig(fpConsts, bn254TwistBc1, bn254P), C: fp2Consts}

		g2 := &ec.Curve[tower.Fp2]{
			Name:      "bn254-g2",
			A:         tower.Fp2Zero(fp2Consts),
			B:         twistB,
			Generator: ec.Affine[tower.Fp2]{X: g2x, Y: g2y},
			Order:     frConsts.Modulus,
			// G2's true cofactor (#E'(Fp2)/r, which is not 1 the way G1's
			// is) is not derived here -- no pack example ships the BN254
			// twist order to ground that derivation on, and no test in
			// this package calls clear_cofactor on a G2 point yet, only
			// IsOnCurve/Frobenius -- see DESIGN.md. Left at 1 as an
			// explicit placeholder rather than a silently wrong value.
			Cofactor: bn254G2PlaceholderCofactor(),
		}

		bn254Cached = &Record{
			ID:  BN254Snarks,
			Fp:  fpConsts,
			Fr:  frConsts,
			G1:  curve,
			Fp2: fp2Consts,
			G2:  g2,
		}
	})
	return bn254Cached
}

// bn254FrobGammas and bn254Fp12FrobGamma are the Frobenius coefficient
// tables for BN254's tower, populated once inside bn254Record; exported
// accessors below let tests exercise Fp6Frobenius/Fp12Frobenius without
// threading the whole Record through.
var (
	bn254FrobGammas    tower.Fp6FrobGammas
	bn254Fp12FrobGamma tower.Fp12FrobGamma
	fp12Consts         *tower.Fp12Constants
)

// BN254Fp12Constants returns the Fp12 tower constants (Xi-derived, via
// Fp2/Fp6) for BN254, deriving the record first if it has not run yet.
func BN254Fp12Constants() *tower.Fp12Constants {
	bn254Record()
	return fp12Consts
}

// BN254FrobGammas returns the (Gamma1, Gamma2) pair Fp6Frobenius needs for
// BN254's tower, deriving the record first if it has not run yet.
func BN254FrobGammas() tower.Fp6FrobGammas {
	bn254Record()
	return bn254FrobGammas
}

// BN254Fp12FrobGamma returns the coefficient Fp12Frobenius needs for
// BN254's tower.
func BN254Fp12FrobGamma() tower.Fp12FrobGamma {
	bn254Record()
	return bn254Fp12FrobGamma
}

// fp2Pow computes base^exp by square-and-multiply over exp's bits, the
// same MSB-first schedule tower.Fp12Exp uses one tower level up; exp is
// always a curve-derived public constant (never secret data), so doing
// this with *big.Int bit access is not a constant-time violation.
func fp2Pow(base tower.Fp2, exp *big.Int) tower.Fp2 {
	result := tower.Fp2One(base.C)
	for i := exp.BitLen() - 1; i >= 0; i-- {
		result = tower.Fp2Square(result)
		if exp.Bit(i) == 1 {
			result = tower.Fp2Mul(result, base)
		}
	}
	return result
}

// bn254G2PlaceholderCofactor returns 1, pending a real derivation of
// #E'(Fp2)/r -- see the Cofactor field comment at its one call site.
func bn254G2PlaceholderCofactor() limb.Limbs {
	c := limb.New(bn254NumLimbs)
	c[0] = 1
	return c
}
