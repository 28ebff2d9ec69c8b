package ec

import (
	"github.com/mratsim/constantine-sub017/internal/limb"
	"github.com/mratsim/constantine-sub017/math/fp"
)

// Curve describes a short-Weierstrass curve y^2 = x^3 + A*x + B over a
// field F, plus the data scalar multiplication and subgroup handling need.
// One Curve value is shared (by pointer) across every Point built over it,
// the same registry-constants-by-pointer pattern math/fp.Constants and
// math/tower.Fp2Constants use one level down.
type Curve[F Field[F]] struct {
	Name string

	A, B F

	// Generator is the distinguished base point of the prime-order
	// subgroup, in affine coordinates.
	Generator Affine[F]

	// Order is the prime order r of the subgroup Generator lives in,
	// little-endian limbs. Public (not secret) data.
	Order limb.Limbs

	// Cofactor is h, the generic fallback clear_cofactor multiplier.
	// Public data.
	Cofactor limb.Limbs

	// Endomorphism optionally supplies a GLV/GLS decomposition. Left nil,
	// ScalarMul falls back to plain constant-time windowed double-and-add.
	Endomorphism *Endomorphism[F]

	// FastSubgroupCheck optionally implements a curve-specific
	// is_in_subgroup test (e.g. Bowe's test for BLS12 curves) faster than
	// the generic r*P == O fallback. Left nil to use the fallback.
	FastSubgroupCheck func(p Jacobian[F]) bool

	// FastClearCofactor optionally implements an endomorphism-accelerated
	// clear_cofactor (Budroni et al for BLS G2, Fuentes-Castaneda for BN
	// G2, Wahby-Boneh for BLS G1). Left nil to use scalar multiplication
	// by Cofactor.
	FastClearCofactor func(p Jacobian[F]) Jacobian[F]
}

// Endomorphism holds a curve's GLV (or GLS) endomorphism data: the map psi
// itself plus the constants needed to split a scalar k into (k0, k1) with
// k0 + k1*lambda == k (mod r) and both about half the bit length of k,
// using Babai rounding in the mulShiftVar form (libsecp256k1's
// secp256k1_ecmult_const_split_lambda / other_examples'
// 2094e7e6_mleku-p256k1__glv.go's scalarSplitLambda, generalized off
// hardcoded secp256k1 constants to registry-supplied ones).
//
// spec section 4.5 describes an m-dimensional decomposition (m=2 for G1,
// m=4 for G2) recoded with windowed GLV-SAC digits. This repository
// implements only the 2-dimensional case and recodes it with plain signed
// binary (w=1) rather than a windowed SAC table -- see DESIGN.md's
// "GLV scalar mul as window-1, not windowed SAC" open design note for the
// reasoning.
type Endomorphism[F Field[F]] struct {
	// Psi maps P=(x,y) to psi(P)=lambda*P using the curve's efficiently
	// computable endomorphism (e.g. (x,y) -> (beta*x, y) for curves with
	// j-invariant 0).
	Psi func(p Jacobian[F]) Jacobian[F]

	// Split holds the scalar-field-only constants decomposeGLV needs; it
	// carries no dependency on F since it only ever operates on Fr.
	Split *ScalarSplit
}

// ScalarSplit holds everything decomposeGLV needs to split a scalar k into
// (k0, k1) with k0 + sign(k1)*k1*lambda == k (mod r), both roughly half
// r's bit length, via Babai rounding in the mulShiftVar form (see glv.go).
type ScalarSplit struct {
	// Fr is the scalar field (mod r) Montgomery constants used for the
	// mod-r steps of decomposition (c1*(-b1) + c2*(-b2), and k - c*lambda).
	Fr *fp.Constants

	// Lambda is the cube root of unity mod r with Psi(P) == [Lambda]P,
	// in Fr's Montgomery form.
	Lambda fp.Element

	// MinusB1, MinusB2 are -b1, -b2 reduced mod r, in Fr's Montgomery
	// form, where (a1,b1),(a2,b2) is the shortest-vector-reduced basis of
	// the sublattice {(a,b) in Z^2 : a + b*lambda == 0 (mod r)}.
	MinusB1, MinusB2 fp.Element

	// G1, G2 are round(2^ShiftBits * b2/r) and round(2^ShiftBits *
	// (-b1)/r) respectively, raw (non-Montgomery) limbs the width of a
	// scalar; used only by the raw mulShiftRight step of decomposition,
	// never reduced mod r.
	G1, G2 limb.Limbs

	// ShiftBits is the fixed right-shift mulShiftRight applies; chosen at
	// registry construction time to retain enough precision for r's bit
	// width (see other_examples' reference: 384 for a 256-bit order).
	ShiftBits int

	// HalfOrder is floor(r/2), raw limbs, used to fold each component
	// into a signed, reduced-magnitude representative.
	HalfOrder limb.Limbs
}
