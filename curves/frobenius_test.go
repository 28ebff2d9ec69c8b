package curves

import (
	"math/big"
	"testing"

	"github.com/mratsim/constantine-sub017/math/tower"
)

// TestBN254Fp12FrobeniusTwelveIsIdentity exercises spec section 8's tower
// testable property directly: raising any Fp12 element to the base field's
// characteristic p twelve times in a row (the degree of the Fp12/Fp
// extension) returns the element unchanged, since the Frobenius generates
// the whole (cyclic, order-12) Galois group. Fp6Frobenius/Fp12Frobenius are
// otherwise unreachable from any curve registry entry or test, so this is
// also what makes them genuinely exercised code rather than dead weight.
func TestBN254Fp12FrobeniusTwelveIsIdentity(t *testing.T) {
	rec := Get(BN254Snarks)
	fp12c := BN254Fp12Constants()
	gamma := BN254Fp12FrobGamma()

	a := tower.Fp12{
		C0: tower.Fp6{
			C0: tower.Fp2{A0: elementFromBig(rec.Fp, big.NewInt(3), bn254P), A1: elementFromBig(rec.Fp, big.NewInt(5), bn254P), C: rec.Fp2},
			C1: tower.Fp2{A0: elementFromBig(rec.Fp, big.NewInt(7), bn254P), A1: elementFromBig(rec.Fp, big.NewInt(11), bn254P), C: rec.Fp2},
			C2: tower.Fp2{A0: elementFromBig(rec.Fp, big.NewInt(13), bn254P), A1: elementFromBig(rec.Fp, big.NewInt(17), bn254P), C: rec.Fp2},
			C:  fp12c.Base,
		},
		C1: tower.Fp6{
			C0: tower.Fp2{A0: elementFromBig(rec.Fp, big.NewInt(19), bn254P), A1: elementFromBig(rec.Fp, big.NewInt(23), bn254P), C: rec.Fp2},
			C1: tower.Fp2{A0: elementFromBig(rec.Fp, big.NewInt(29), bn254P), A1: elementFromBig(rec.Fp, big.NewInt(31), bn254P), C: rec.Fp2},
			C2: tower.Fp2{A0: elementFromBig(rec.Fp, big.NewInt(37), bn254P), A1: elementFromBig(rec.Fp, big.NewInt(41), bn254P), C: rec.Fp2},
			C:  fp12c.Base,
		},
		C: fp12c,
	}

	got := a
	for i := 0; i < 12; i++ {
		got = tower.Fp12Frobenius(got, gamma)
	}

	if !got.Equal(a) {
		t.Fatal("frobenius_map(a, 12) != a for bn254's Fp12 tower")
	}
}
