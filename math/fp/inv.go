package fp

import (
	"github.com/mratsim/constantine-sub017/internal/ct"
	"github.com/mratsim/constantine-sub017/internal/limb"
)

// Inv returns e^-1 mod p, or zero if e is zero. It uses Fermat's little
// theorem (e^(p-2) mod p) rather than a safe-gcd binary inversion: spec
// section 4.3 calls out Bernstein-Yang as the production algorithm, but its
// divstep recurrence needs a signed, variable-length transition-matrix
// representation this repository's slice-based Limbs type does not carry
// (see DESIGN.md's math/fp entry). The exponentiation approach keeps the
// same "single addition chain, no secret-dependent branch" contract: a
// squaring runs for every exponent bit, each multiplication depends only on
// a bit of the public exponent (p-2), and nothing branches on e.
func (e Element) Inv() Element {
	exp := limb.Clone(e.c.Modulus)
	two := limb.New(e.c.NumLimbs)
	two[0] = 2
	limb.Sub(exp, exp, two)
	return e.Pow(exp)
}

// Pow returns e^exp mod p via fixed-width square-and-multiply over the
// public exponent exp (little-endian limbs). The exponent here is always
// either p-2 (Inv) or another public constant (square root addition
// chains), never a secret scalar, so branching on its bits is fine; this is
// not the routine to use for scalar-multiplication-style secret exponents.
func (e Element) Pow(exp limb.Limbs) Element {
	result := One(e.c)
	base := e.Clone()
	for i := 0; i < len(exp); i++ {
		word := exp[i]
		for b := 0; b < 64; b++ {
			if word&1 == 1 {
				result = result.Mul(base)
			}
			base = base.Square()
			word >>= 1
		}
	}
	return result
}

// BatchInvert replaces every element of es with its inverse, using a single
// field inversion for the whole batch via the standard Montgomery trick
// (accumulate running products, invert once, peel back), per spec section
// 4.3's "Simultaneous inversion" property. Elements equal to zero are left
// as zero, matching Inv's convention, and are excluded from the running
// product so they don't poison the other entries' results.
func BatchInvert(es []Element) {
	n := len(es)
	if n == 0 {
		return
	}
	c := es[0].c

	isZero := make([]ct.Bool, n)
	running := make([]Element, n)
	acc := One(c)
	for i := 0; i < n; i++ {
		isZero[i] = es[i].IsZero()
		running[i] = acc
		factor := Select(isZero[i], One(c), es[i])
		acc = acc.Mul(factor)
	}

	accInv := acc.Inv()

	for i := n - 1; i >= 0; i-- {
		factor := Select(isZero[i], One(c), es[i])
		inv := accInv.Mul(running[i])
		accInv = accInv.Mul(factor)
		es[i] = Select(isZero[i], Zero(c), inv)
	}
}

// legendreExponent returns e^((p-1)/2) mod p: 1 if e is a nonzero square,
// p-1 (i.e. -1) if e is a nonsquare, 0 if e is zero. Used by IsSquare.
func (e Element) legendreExponent() Element {
	exp := limb.Clone(e.c.Modulus)
	one := limb.New(e.c.NumLimbs)
	one[0] = 1
	limb.Sub(exp, exp, one)
	limb.ShiftRight1(exp)
	return e.Pow(exp)
}

// IsSquare reports whether e is a quadratic residue mod p (zero counts as
// a square, matching the convention spec section
// 4.3's sqrt family uses: Sqrt(0) == 0).
func (e Element) IsSquare() ct.Bool {
	l := e.legendreExponent()
	return ct.Or(e.IsZero(), l.IsOne())
}
