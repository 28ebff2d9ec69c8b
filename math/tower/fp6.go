package tower

// Fp6 is the cubic extension Fp2[v]/(v^3 - Xi), elements (c0 + c1*v +
// c2*v^2) with c0,c1,c2 in Fp2. Grounded directly on the teacher's
// bn254_fp6.go (fp6Mul/fp6Sqr/fp6Inv's Karatsuba/Toom-Cook layering),
// generalized from the hardcoded xi=(9+i) to a registry-supplied Xi.

// Fp6Constants names the cubic non-residue Xi (an Fp2 element) with
// v^3 == Xi.
type Fp6Constants struct {
	Base *Fp2Constants
	Xi   Fp2
}

type Fp6 struct {
	C0, C1, C2 Fp2
	C          *Fp6Constants
}

func Fp6Zero(c *Fp6Constants) Fp6 {
	return Fp6{C0: Fp2Zero(c.Base), C1: Fp2Zero(c.Base), C2: Fp2Zero(c.Base), C: c}
}

func Fp6One(c *Fp6Constants) Fp6 {
	return Fp6{C0: Fp2One(c.Base), C1: Fp2Zero(c.Base), C2: Fp2Zero(c.Base), C: c}
}

func (e Fp6) IsZero() bool { return e.C0.IsZero() && e.C1.IsZero() && e.C2.IsZero() }

func (e Fp6) Equal(f Fp6) bool {
	return e.C0.Equal(f.C0) && e.C1.Equal(f.C1) && e.C2.Equal(f.C2)
}

// mulByNonResidue multiplies an Fp2 value by Xi, the move needed whenever a
// cross term "overflows" past v^2 and must wrap around using v^3 == Xi.
func (c *Fp6Constants) mulByNonResidue(e Fp2) Fp2 {
	return Fp2Mul(e, c.Xi)
}

func Fp6Add(e, f Fp6) Fp6 {
	return Fp6{C0: Fp2Add(e.C0, f.C0), C1: Fp2Add(e.C1, f.C1), C2: Fp2Add(e.C2, f.C2), C: e.C}
}

func Fp6Sub(e, f Fp6) Fp6 {
	return Fp6{C0: Fp2Sub(e.C0, f.C0), C1: Fp2Sub(e.C1, f.C1), C2: Fp2Sub(e.C2, f.C2), C: e.C}
}

func Fp6Neg(e Fp6) Fp6 {
	return Fp6{C0: Fp2Neg(e.C0), C1: Fp2Neg(e.C1), C2: Fp2Neg(e.C2), C: e.C}
}

// Fp6Mul mirrors the teacher's fp6Mul Toom-Cook-over-Fp2 schedule exactly,
// with the hardcoded xi multiply replaced by C.mulByNonResidue.
func Fp6Mul(e, f Fp6) Fp6 {
	c := e.C
	t0 := Fp2Mul(e.C0, f.C0)
	t1 := Fp2Mul(e.C1, f.C1)
	t2 := Fp2Mul(e.C2, f.C2)

	c0 := Fp2Add(t0, c.mulByNonResidue(
		Fp2Sub(Fp2Sub(Fp2Mul(Fp2Add(e.C1, e.C2), Fp2Add(f.C1, f.C2)), t1), t2)))

	c1 := Fp2Add(
		Fp2Sub(Fp2Sub(Fp2Mul(Fp2Add(e.C0, e.C1), Fp2Add(f.C0, f.C1)), t0), t1),
		c.mulByNonResidue(t2))

	c2 := Fp2Add(
		Fp2Sub(Fp2Sub(Fp2Mul(Fp2Add(e.C0, e.C2), Fp2Add(f.C0, f.C2)), t0), t2),
		t1)

	return Fp6{C0: c0, C1: c1, C2: c2, C: c}
}

// Fp6Square mirrors the teacher's fp6Sqr (a CH-SQR3-style cubic squaring).
func Fp6Square(e Fp6) Fp6 {
	c := e.C
	s0 := Fp2Square(e.C0)
	ab := Fp2Mul(e.C0, e.C1)
	s1 := Fp2Add(ab, ab)
	s2 := Fp2Square(Fp2Sub(Fp2Add(e.C0, e.C2), e.C1))
	bc := Fp2Mul(e.C1, e.C2)
	s3 := Fp2Add(bc, bc)
	s4 := Fp2Square(e.C2)

	c0 := Fp2Add(s0, c.mulByNonResidue(s3))
	c1 := Fp2Add(s1, c.mulByNonResidue(s4))
	c2 := Fp2Sub(Fp2Sub(Fp2Add(Fp2Add(s1, s2), s3), s0), s4)

	return Fp6{C0: c0, C1: c1, C2: c2, C: c}
}

// Fp6Inv mirrors the teacher's fp6Inv cubic-extension inverse formula.
func Fp6Inv(e Fp6) Fp6 {
	c := e.C
	a := Fp2Sub(Fp2Square(e.C0), c.mulByNonResidue(Fp2Mul(e.C1, e.C2)))
	b := Fp2Sub(c.mulByNonResidue(Fp2Square(e.C2)), Fp2Mul(e.C0, e.C1))
	cc := Fp2Sub(Fp2Square(e.C1), Fp2Mul(e.C0, e.C2))

	f := Fp2Add(Fp2Mul(e.C0, a), c.mulByNonResidue(Fp2Add(Fp2Mul(e.C2, b), Fp2Mul(e.C1, cc))))
	fInv := Fp2Inv(f)

	return Fp6{C0: Fp2Mul(a, fInv), C1: Fp2Mul(b, fInv), C2: Fp2Mul(cc, fInv), C: c}
}

// Fp6MulByFp2 multiplies e by an Fp2 scalar (scaling every coefficient).
func Fp6MulByFp2(e Fp6, s Fp2) Fp6 {
	return Fp6{C0: Fp2Mul(e.C0, s), C1: Fp2Mul(e.C1, s), C2: Fp2Mul(e.C2, s), C: e.C}
}

// Fp6MulByV multiplies e by v, shifting coefficients and wrapping c2
// through Xi: (c0 + c1 v + c2 v^2) * v = c2*Xi + c0*v + c1*v^2.
func Fp6MulByV(e Fp6) Fp6 {
	return Fp6{
		C0: e.C.mulByNonResidue(e.C2),
		C1: e.C0,
		C2: e.C1,
		C:  e.C,
	}
}

// Fp6MulBy01 is the sparse multiplication kernel used by Miller-loop-style
// callers when the second operand has c2 == 0 (only c0, c1 populated): the
// general Fp6Mul schedule specialized to t2 == 0.
func Fp6MulBy01(e Fp6, b0, b1 Fp2) Fp6 {
	c := e.C
	t0 := Fp2Mul(e.C0, b0)
	t1 := Fp2Mul(e.C1, b1)

	c0 := Fp2Add(t0, c.mulByNonResidue(Fp2Mul(e.C2, b1)))
	c1 := Fp2Sub(Fp2Sub(Fp2Mul(Fp2Add(e.C0, e.C1), Fp2Add(b0, b1)), t0), t1)
	c2 := Fp2Add(Fp2Mul(e.C2, b0), t1)

	return Fp6{C0: c0, C1: c1, C2: c2, C: c}
}
