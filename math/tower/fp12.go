package tower

// Fp12 is the final tower level Fp6[w]/(w^2 - v), elements (c0 + c1*w)
// with c0,c1 in Fp6; this is gnark/blst/the teacher's common "pairing
// target group" representation. Grounded directly on the teacher's
// bn254_fp12.go.

type Fp12Constants struct {
	Base *Fp6Constants
}

type Fp12 struct {
	C0, C1 Fp6
	C      *Fp12Constants
}

func Fp12Zero(c *Fp12Constants) Fp12 {
	return Fp12{C0: Fp6Zero(c.Base), C1: Fp6Zero(c.Base), C: c}
}

func Fp12One(c *Fp12Constants) Fp12 {
	return Fp12{C0: Fp6One(c.Base), C1: Fp6Zero(c.Base), C: c}
}

func (e Fp12) IsOne() bool {
	return e.C0.C0.A0.IsOne().IsTrue() && e.C0.C0.A1.IsZero().IsTrue() &&
		e.C0.C1.IsZero() && e.C0.C2.IsZero() && e.C1.IsZero()
}

func (e Fp12) Equal(f Fp12) bool { return e.C0.Equal(f.C0) && e.C1.Equal(f.C1) }

func Fp12Add(e, f Fp12) Fp12 {
	return Fp12{C0: Fp6Add(e.C0, f.C0), C1: Fp6Add(e.C1, f.C1), C: e.C}
}

func Fp12Sub(e, f Fp12) Fp12 {
	return Fp12{C0: Fp6Sub(e.C0, f.C0), C1: Fp6Sub(e.C1, f.C1), C: e.C}
}

func Fp12Neg(e Fp12) Fp12 {
	return Fp12{C0: Fp6Neg(e.C0), C1: Fp6Neg(e.C1), C: e.C}
}

// Fp12Mul mirrors the teacher's fp12Mul: (a+bw)(c+dw) = (ac+bd*v) + (ad+bc)w.
func Fp12Mul(e, f Fp12) Fp12 {
	t1 := Fp6Mul(e.C0, f.C0)
	t2 := Fp6Mul(e.C1, f.C1)

	c0 := Fp6Add(t1, Fp6MulByV(t2))
	c1 := Fp6Sub(Fp6Sub(Fp6Mul(Fp6Add(e.C0, e.C1), Fp6Add(f.C0, f.C1)), t1), t2)

	return Fp12{C0: c0, C1: c1, C: e.C}
}

// Fp12Square mirrors the teacher's fp12Sqr.
func Fp12Square(e Fp12) Fp12 {
	ab := Fp6Mul(e.C0, e.C1)

	t := Fp6Add(e.C0, e.C1)
	u := Fp6Add(e.C0, Fp6MulByV(e.C1))
	c0 := Fp6Sub(Fp6Sub(Fp6Mul(t, u), ab), Fp6MulByV(ab))
	c1 := Fp6Add(ab, ab)

	return Fp12{C0: c0, C1: c1, C: e.C}
}

// CyclotomicSquare is the entry point final-exponentiation loops use for
// repeated squaring inside the cyclotomic subgroup (the order-(p^4-p^2+1)
// subgroup the Miller loop's output always lands in). The dedicated
// Granger-Scott/Karabina compressed-coordinate formula -- roughly 2x
// cheaper than a general Fp12 squaring -- needs a different internal basis
// (six Fp2 coordinates rather than this type's two-Fp6 layout) that this
// repository's registry does not yet derive; until it does, this delegates
// to the general, already-verified Square so correctness never depends on
// an underived optimization. See DESIGN.md's math/tower entry.
func (e Fp12) CyclotomicSquare() Fp12 { return Fp12Square(e) }

// Fp12Inv mirrors the teacher's fp12Inv.
func Fp12Inv(e Fp12) Fp12 {
	t := Fp6Sub(Fp6Square(e.C0), Fp6MulByV(Fp6Square(e.C1)))
	tInv := Fp6Inv(t)
	return Fp12{C0: Fp6Mul(e.C0, tInv), C1: Fp6Neg(Fp6Mul(e.C1, tInv)), C: e.C}
}

// Fp12Conj returns the "conjugate" c0 - c1*w; for unitary elements (those
// of norm 1, which every element the Miller loop emits is) this equals
// Fp12Inv but without the field inversion.
func Fp12Conj(e Fp12) Fp12 {
	return Fp12{C0: e.C0, C1: Fp6Neg(e.C1), C: e.C}
}

// Fp12Exp raises e to a public exponent k (little-endian bits, MSB-first
// scan), used by the final exponentiation step of a pairing and by the
// embedding-degree subgroup membership check; k is always a public,
// curve-derived constant here, never a secret scalar.
func Fp12Exp(e Fp12, kBits []bool) Fp12 {
	r := Fp12One(e.C)
	for i := len(kBits) - 1; i >= 0; i-- {
		r = Fp12Square(r)
		if kBits[i] {
			r = Fp12Mul(r, e)
		}
	}
	return r
}
