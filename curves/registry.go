package curves

import (
	"github.com/mratsim/constantine-sub017/math/ec"
	"github.com/mratsim/constantine-sub017/math/fp"
	"github.com/mratsim/constantine-sub017/math/tower"
	"github.com/mratsim/constantine-sub017/math/twistededwards"
)

// ID identifies one of the curves this package registers. Curve selection
// is a compile-time constant throughout the rest of the module (no curve
// is ever chosen from untrusted input), matching spec section 4.6's
// "registry resolved at compile/init time, not per-call" requirement.
type ID int

// The 14 curve families spec section 6's External Interfaces list names.
// Every one of them gets an ID (so Get and String are total over the whole
// list), but as of this writing only five have a registry builder (see
// registry's map and Get's doc comment); the rest are valid, documented nil
// entries rather than missing constants.
const (
	Secp256k1 ID = iota
	P256
	P224
	BN254Snarks
	BN254Nogami
	BLS12381
	BLS12377
	BW6761
	Pallas
	Vesta
	Edwards25519
	Bandersnatch
	Banderwagon
	Jubjub
)

func (id ID) String() string {
	switch id {
	case Secp256k1:
		return "secp256k1"
	case P256:
		return "p256"
	case P224:
		return "p224"
	case BN254Snarks:
		return "bn254_snarks"
	case BN254Nogami:
		return "bn254_nogami"
	case BLS12381:
		return "bls12381"
	case BLS12377:
		return "bls12377"
	case BW6761:
		return "bw6761"
	case Pallas:
		return "pallas"
	case Vesta:
		return "vesta"
	case Edwards25519:
		return "edwards25519"
	case Bandersnatch:
		return "bandersnatch"
	case Banderwagon:
		return "banderwagon"
	case Jubjub:
		return "jubjub"
	default:
		return "unknown"
	}
}

// Record is everything a curve family contributes to the registry: its
// base and scalar field constants, and its G1 group (every
// short-Weierstrass registered curve has one). G2 is only populated for
// pairing-friendly curves whose twist this package has wired (nil
// otherwise); callers that need a curve's G2 group must check for nil and
// report "not implemented" rather than dereferencing it, per spec section
// 4.6's per-curve-capability Non-goal. TwistedEdwards is populated instead
// of G1 for the curve families that are natively twisted-Edwards rather
// than short-Weierstrass (Bandersnatch, Banderwagon, Jubjub, Edwards25519);
// G1 is left nil for those.
type Record struct {
	ID ID

	Fp *fp.Constants
	Fr *fp.Constants

	G1 *ec.Curve[fp.Element]

	Fp2 *tower.Fp2Constants
	G2  *ec.Curve[tower.Fp2]

	TwistedEdwards *twistededwards.Constants
}

var registry = map[ID]func() *Record{
	Secp256k1:    secp256k1Record,
	BN254Snarks:  bn254Record,
	BLS12381:     bls12381Record,
	Bandersnatch: bandersnatchRecord,
	Banderwagon:  banderwagonRecord,
}

// Get returns the Record for id. Each entry's builder function is itself
// guarded by a sync.Once in its own curve file (secp256k1Record,
// bn254Record, bls12381Record, bandersnatchRecord, banderwagonRecord,
// ...), so derivation runs once per curve no matter how many times Get is
// called. Of the 14 IDs spec section 6 names, Secp256k1, BN254Snarks,
// BLS12381, Bandersnatch and Banderwagon have a registry entry as of this
// writing; every other ID (P256, P224, BN254Nogami, BLS12377, BW6761,
// Pallas, Vesta, Edwards25519, Jubjub) is a valid ID value that simply has
// no builder yet and returns nil -- callers must check before use, and
// TestRegistryUnwiredCurveIsNil documents this as the contract rather than
// an oversight.
func Get(id ID) *Record {
	build, ok := registry[id]
	if !ok {
		return nil
	}
	return build()
}
