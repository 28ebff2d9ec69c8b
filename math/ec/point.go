package ec

import "github.com/mratsim/constantine-sub017/internal/ct"

// Affine is a point in affine coordinates (x, y). The identity is
// represented as (0, 0), following the teacher's g1FromAffine/g1ToAffine
// convention (a real curve point never has x == y == 0 since B != 0).
type Affine[F Field[F]] struct {
	X, Y F
}

// Jacobian is a point in standard projective coordinates (X, Y, Z)
// representing the affine point (X/Z, Y/Z) -- the representation the
// Renes-Costello-Batina complete formulas in addition.go operate on. The
// name is kept as "Jacobian" to match the teacher's G1Point/G2Point
// naming even though the division weights differ; see DESIGN.md's
// "projective, not Jacobian, coordinates" open design note. Z == 0 is the
// point at infinity, per the teacher's Z-is-infinity-flag convention.
type Jacobian[F Field[F]] struct {
	X, Y, Z F
}

// Infinity returns the point at infinity (0 : 1 : 0) over the same field as
// a sample value z (used only to reach z's ZeroLike/OneLike without
// threading a separate *Constants through this package).
func Infinity[F Field[F]](sample F) Jacobian[F] {
	zero := sample.ZeroLike()
	one := sample.OneLike()
	return Jacobian[F]{X: zero, Y: one, Z: zero}
}

// IsInfinity reports whether p is the point at infinity (Z == 0).
func (p Jacobian[F]) IsInfinity() ct.Bool { return p.Z.CIsZero() }

// FromAffine lifts an affine point into Jacobian coordinates with Z=1.
// (0,0) maps to the point at infinity, matching Affine's identity
// convention.
func FromAffine[F Field[F]](a Affine[F]) Jacobian[F] {
	isInf := ct.And(a.X.CIsZero(), a.Y.CIsZero())
	one := a.X.OneLike()
	zero := a.X.ZeroLike()
	return Jacobian[F]{
		X: a.X,
		Y: a.Y,
		Z: zero.CSelect(isInf, one),
	}
}

// ToAffine converts a single Jacobian point to affine coordinates via one
// field inversion. Returns (0,0) for the point at infinity. Callers
// converting many points should use BatchAffine instead, which shares a
// single inversion across the whole batch.
func (p Jacobian[F]) ToAffine() Affine[F] {
	isInf := p.IsInfinity()
	zInv := p.Z.Inv()
	x := p.X.Mul(zInv)
	y := p.Y.Mul(zInv)
	zero := p.X.ZeroLike()
	return Affine[F]{
		X: zero.CSelect(isInf, x),
		Y: zero.CSelect(isInf, y),
	}
}

// Neg returns -P = (X, -Y, Z).
func (p Jacobian[F]) Neg() Jacobian[F] {
	return Jacobian[F]{X: p.X, Y: p.Y.Neg(), Z: p.Z}
}

// CSelect returns p if mask is True, q otherwise.
func (p Jacobian[F]) CSelect(mask ct.Bool, q Jacobian[F]) Jacobian[F] {
	return Jacobian[F]{
		X: p.X.CSelect(mask, q.X),
		Y: p.Y.CSelect(mask, q.Y),
		Z: p.Z.CSelect(mask, q.Z),
	}
}

// CCopy overwrites *dst with src iff mask is True.
func CCopy[F Field[F]](mask ct.Bool, dst *Jacobian[F], src Jacobian[F]) {
	*dst = src.CSelect(mask, *dst)
}

// Equal reports whether p and q represent the same curve point, compared
// via cross-multiplication so it never needs an inversion:
// (X1*Z2 == X2*Z1) AND (Y1*Z2 == Y2*Z1), with both-infinity also counting
// as equal.
func (p Jacobian[F]) Equal(q Jacobian[F]) ct.Bool {
	pInf := p.IsInfinity()
	qInf := q.IsInfinity()
	bothInf := ct.And(pInf, qInf)
	eitherInf := ct.Or(pInf, qInf)

	u1 := p.X.Mul(q.Z)
	u2 := q.X.Mul(p.Z)
	s1 := p.Y.Mul(q.Z)
	s2 := q.Y.Mul(p.Z)

	coordsEqual := ct.And(u1.CEqual(u2), s1.CEqual(s2))
	return ct.Or(bothInf, ct.And(ct.Not(eitherInf), coordsEqual))
}
