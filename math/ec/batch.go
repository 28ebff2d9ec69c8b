package ec

import "github.com/mratsim/constantine-sub017/internal/ct"

// BatchAffine converts N Jacobian points to affine coordinates sharing a
// single field inversion, via the standard simultaneous-inversion trick
// (the same running-product idea math/fp.BatchInvert uses one level
// down): running products z0, z0*z1, z0*z1*z2, ... are built forward, the
// total product is inverted once, then the inverse is peeled back off in
// reverse to recover each 1/zi.
//
// Points at infinity (Z == 0) are masked out of the running product with
// a substituted 1, mirroring math/fp.BatchInvert's zero-masking, and are
// patched back to (0,0) affine via CSelect rather than a branch on the
// mask.
func BatchAffine[F Field[F]](points []Jacobian[F]) []Affine[F] {
	n := len(points)
	if n == 0 {
		return nil
	}

	one := points[0].X.OneLike()
	zero := points[0].X.ZeroLike()

	isInf := make([]ct.Bool, n)
	z := make([]F, n)
	running := make([]F, n)
	acc := one
	for i := 0; i < n; i++ {
		isInf[i] = points[i].IsInfinity()
		z[i] = one.CSelect(isInf[i], points[i].Z)
		running[i] = acc
		acc = acc.Mul(z[i])
	}

	accInv := acc.Inv()

	out := make([]Affine[F], n)
	for i := n - 1; i >= 0; i-- {
		zInv := accInv.Mul(running[i])
		accInv = accInv.Mul(z[i])

		x := points[i].X.Mul(zInv)
		y := points[i].Y.Mul(zInv)
		out[i] = Affine[F]{
			X: zero.CSelect(isInf[i], x),
			Y: zero.CSelect(isInf[i], y),
		}
	}
	return out
}
