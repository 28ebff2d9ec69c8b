package curves

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	gnarkfr "github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/mratsim/constantine-sub017/math/ec"
)

// TestBN254G1CrosscheckGnark differentially tests this package's BN254 G1
// scalar multiplication against gnark-crypto's independent BN254
// implementation, the same role decred's library plays for secp256k1: it
// catches a bug shared between our own derivation of the curve constants
// and the published ones we transcribed them from.
func TestBN254G1CrosscheckGnark(t *testing.T) {
	rec := Get(BN254Snarks)
	g := ec.FromAffine(rec.G1.Generator)

	_, _, gnarkG1Gen, _ := bn254.Generators()

	scalars := []string{"1", "2", "3", "12345678901234567890", "21888242871839275222246405745257275088548364400416034343698204186575808495616"}

	for _, s := range scalars {
		k, ok := new(big.Int).SetString(s, 10)
		if !ok {
			t.Fatalf("bad scalar literal %q", s)
		}

		ours := ec.ScalarMul(g, limbsFromBig(k, bn254NumLimbs), rec.G1).ToAffine()
		ourX := trimLeadingZeros(ours.X.ToBytesBE())
		ourY := trimLeadingZeros(ours.Y.ToBytesBE())

		var scalar gnarkfr.Element
		scalar.SetBigInt(k)
		var theirsJac bn254.G1Jac
		theirsJac.ScalarMultiplication(&gnarkG1Gen, scalar.BigInt(new(big.Int)))
		var theirs bn254.G1Affine
		theirs.FromJacobian(&theirsJac)

		theirXBytes := theirs.X.Bytes()
		theirYBytes := theirs.Y.Bytes()
		theirX := trimLeadingZeros(theirXBytes[:])
		theirY := trimLeadingZeros(theirYBytes[:])

		if !bytesEqual(ourX, theirX) || !bytesEqual(ourY, theirY) {
			t.Fatalf("scalar %s: our result (%x, %x) disagrees with gnark-crypto's (%x, %x)", s, ourX, ourY, theirX, theirY)
		}
	}
}
