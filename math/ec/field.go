// Package ec implements the short-Weierstrass elliptic curve group layer,
// per spec section 4.5. A single generic Point type serves both G1-style
// curves (base field math/fp.Element) and G2-style curves over a sextic
// twist (base field math/tower.Fp2): which concrete field a Point uses is
// the type parameter F, constrained below to the method set both field
// types already expose.
//
// Grounded on the teacher's per-curve bn254_g1.go/bn254_g2.go/
// bls12381_g1.go/bls12381_g2.go, which hardcode one Jacobian point struct
// per curve/field pair over *big.Int; this package generalizes the same
// Jacobian shape and naming (IsInfinity, FromAffine, ToAffine) to any
// registered field via Go generics instead of one file per pair.
package ec

import "github.com/mratsim/constantine-sub017/internal/ct"

// Field is the method set math/fp.Element and math/tower.Fp2 both already
// provide (directly, or via the small wrapper methods added alongside
// them) and that this package's point arithmetic needs. F is
// self-referential so Point[F] can call e.g. a.Add(b) and get back another
// F without an external "ring" object.
type Field[F any] interface {
	Add(F) F
	Sub(F) F
	Neg() F
	Mul(F) F
	Square() F
	Inv() F
	ZeroLike() F
	OneLike() F
	CSelect(ct.Bool, F) F
	CEqual(F) ct.Bool
	CIsZero() ct.Bool
}
