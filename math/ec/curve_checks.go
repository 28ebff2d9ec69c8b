package ec

import "github.com/mratsim/constantine-sub017/internal/ct"

// IsOnCurve verifies the curve equation in projective coordinates:
// Y^2*Z == X^3 + A*X*Z^2 + B*Z^3, which holds for (X/Z, Y/Z) on
// y^2 = x^3 + A*x + B without requiring an inversion. The point at
// infinity is conventionally on-curve, matching the teacher's
// g1IsOnCurve's "(0,0) is the identity and considered valid" rule.
func IsOnCurve[F Field[F]](p Jacobian[F], curve *Curve[F]) ct.Bool {
	x, y, z := p.X, p.Y, p.Z
	z2 := z.Square()
	z3 := z2.Mul(z)

	lhs := y.Square().Mul(z)
	rhs := x.Square().Mul(x).Add(curve.A.Mul(x).Mul(z2)).Add(curve.B.Mul(z3))

	return ct.Or(p.IsInfinity(), lhs.CEqual(rhs))
}

// IsInSubgroup reports whether p belongs to the prime-order subgroup of
// order curve.Order. If the curve registry supplies a FastSubgroupCheck
// (e.g. Bowe's BLS12 pairing-based test), that is used; otherwise this
// falls back to the universal (but slow) r*P == O test.
func IsInSubgroup[F Field[F]](p Jacobian[F], curve *Curve[F]) ct.Bool {
	if curve.FastSubgroupCheck != nil {
		return ct.B(curve.FastSubgroupCheck(p))
	}
	rp := ScalarMul(p, curve.Order, curve)
	return rp.IsInfinity()
}

// ClearCofactor returns a point in the prime-order subgroup built from p.
// If the registry supplies a FastClearCofactor (Budroni et al for BLS G2,
// Fuentes-Castaneda for BN G2, Wahby-Boneh for BLS G1), that is used;
// otherwise this falls back to multiplying by curve.Cofactor.
func ClearCofactor[F Field[F]](p Jacobian[F], curve *Curve[F]) Jacobian[F] {
	if curve.FastClearCofactor != nil {
		return curve.FastClearCofactor(p)
	}
	return ScalarMul(p, curve.Cofactor, curve)
}
