package tower

// Frobenius coefficients for Fp6 and Fp12. Raising a tower element to the
// base field's characteristic p commutes with addition and, for the
// coefficients themselves (elements of Fp2), equals conjugation (see
// Fp2Frobenius's doc comment). What is curve-specific is how the
// generators v (Fp6) and w (Fp12) transform: v^p = v * Xi^((p-1)/3) and
// w^p = w * Xi^((p-1)/6) for an appropriate embedding of those scalars
// back into the tower. Those "gamma" constants depend on p and Xi and are
// derived once, variable-time, by a curve's registry entry (the same
// sync.Once-guarded derivation math/fp.Constants.MontR2 uses) -- this
// package only consumes them.

// Fp6FrobGammas holds Xi^((p-1)/3) and Xi^(2(p-1)/3), the two coefficients
// Fp6Frobenius needs for its c1 and c2 terms.
type Fp6FrobGammas struct {
	Gamma1, Gamma2 Fp2
}

// Fp6Frobenius raises e to the base field's characteristic p, given the
// precomputed gammas for this particular Frobenius power (callers raising
// to p, p^2, ... each need their own gamma pair).
func Fp6Frobenius(e Fp6, g Fp6FrobGammas) Fp6 {
	c0 := Fp2Frobenius(e.C0)
	c1 := Fp2Mul(Fp2Frobenius(e.C1), g.Gamma1)
	c2 := Fp2Mul(Fp2Frobenius(e.C2), g.Gamma2)
	return Fp6{C0: c0, C1: c1, C2: c2, C: e.C}
}

// Fp12FrobGamma holds Xi^((p-1)/6) = w^(p-1) (since w^6 = Xi), the single extra
// coefficient Fp12Frobenius needs once its Fp6 coefficients have each been
// pushed through Fp6Frobenius.
type Fp12FrobGamma struct {
	Inner Fp6FrobGammas
	Gamma Fp2
}

// Fp12Frobenius raises e to the base field's characteristic p.
func Fp12Frobenius(e Fp12, g Fp12FrobGamma) Fp12 {
	c0 := Fp6Frobenius(e.C0, g.Inner)
	c1 := Fp6MulByFp2(Fp6Frobenius(e.C1, g.Inner), g.Gamma)
	return Fp12{C0: c0, C1: c1, C: e.C}
}
