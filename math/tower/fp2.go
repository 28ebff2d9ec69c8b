// Package tower implements the tower extension fields Fp2/Fp6/Fp12 used by
// pairing-friendly curves, per spec section 4.4. Every level is built
// purely from math/fp.Element and the level below it -- no new limb or
// Montgomery machinery is introduced here, following spec 4.4's framing of
// the tower as "composition, not a new arithmetic primitive".
//
// Grounded on the teacher's bn254_fp2.go/bn254_fp6.go/bn254_fp12.go, which
// hardcode the BN254 curve's tower over *big.Int; this package generalizes
// the same Karatsuba/Toom-Cook layering to any registered Fp2/Fp6/Fp12
// tower driven by constants supplied once by a curve's registry entry,
// the same pattern math/fp.Constants uses one level down.
package tower

import (
	"github.com/mratsim/constantine-sub017/internal/ct"
	"github.com/mratsim/constantine-sub017/math/fp"
)

// Fp2Constants describes a quadratic extension Fp[i]/(i^2 - Beta), where
// Beta is a designated non-residue of the base field (e.g. -1 for BN254
// and BLS12-381).
type Fp2Constants struct {
	Base *fp.Constants
	Beta fp.Element
}

// Fp2 is an element a0 + a1*i of Fp[i]/(i^2 - Beta).
type Fp2 struct {
	A0, A1 fp.Element
	C      *Fp2Constants
}

func Fp2Zero(c *Fp2Constants) Fp2 {
	return Fp2{A0: fp.Zero(c.Base), A1: fp.Zero(c.Base), C: c}
}

func Fp2One(c *Fp2Constants) Fp2 {
	return Fp2{A0: fp.One(c.Base), A1: fp.Zero(c.Base), C: c}
}

func (e Fp2) Clone() Fp2 { return Fp2{A0: e.A0.Clone(), A1: e.A1.Clone(), C: e.C} }

func (e Fp2) IsZero() bool { return e.A0.IsZero().IsTrue() && e.A1.IsZero().IsTrue() }

func (e Fp2) Equal(f Fp2) bool {
	return e.A0.Equal(f.A0).IsTrue() && e.A1.Equal(f.A1).IsTrue()
}

func Fp2Add(e, f Fp2) Fp2 {
	return Fp2{A0: e.A0.Add(f.A0), A1: e.A1.Add(f.A1), C: e.C}
}

func Fp2Sub(e, f Fp2) Fp2 {
	return Fp2{A0: e.A0.Sub(f.A0), A1: e.A1.Sub(f.A1), C: e.C}
}

func Fp2Neg(e Fp2) Fp2 {
	return Fp2{A0: e.A0.Neg(), A1: e.A1.Neg(), C: e.C}
}

// Fp2Mul returns e*f via the Karatsuba shortcut the teacher's fp2Mul uses:
// (a0+a1 i)(b0+b1 i) = (a0 b0 + Beta a1 b1) + ((a0+a1)(b0+b1) - a0 b0 - a1 b1) i.
func Fp2Mul(e, f Fp2) Fp2 {
	v0 := e.A0.Mul(f.A0)
	v1 := e.A1.Mul(f.A1)
	a0 := v0.Add(e.C.Beta.Mul(v1))
	a1 := e.A0.Add(e.A1).Mul(f.A0.Add(f.A1)).Sub(v0).Sub(v1)
	return Fp2{A0: a0, A1: a1, C: e.C}
}

// Fp2Square returns e^2, using the teacher's (a+b)(a-b)/2ab decomposition
// generalized to an arbitrary Beta: (a+b i)^2 = (a^2+Beta b^2) + 2ab i.
func Fp2Square(e Fp2) Fp2 {
	ab := e.A0.Mul(e.A1)
	a0 := e.A0.Add(e.A1).Mul(e.A0.Add(e.C.Beta.Mul(e.A1))).Sub(ab).Sub(e.C.Beta.Mul(ab))
	a1 := ab.Add(ab)
	return Fp2{A0: a0, A1: a1, C: e.C}
}

// Fp2Conj returns the conjugate a0 - a1*i.
func Fp2Conj(e Fp2) Fp2 {
	return Fp2{A0: e.A0.Clone(), A1: e.A1.Neg(), C: e.C}
}

// Fp2Frobenius raises e to the base field's characteristic p. Since
// a^p == a for every a in Fp (Fermat), and i^p == i * Beta^((p-1)/2) == -i
// for any non-residue Beta by Euler's criterion, the Frobenius map on Fp2
// is exactly conjugation for every odd-characteristic field -- no
// curve-specific coefficient table is needed at this level (unlike Fp6/
// Fp12's Frobenius, which does need one; see frobenius.go).
func Fp2Frobenius(e Fp2) Fp2 { return Fp2Conj(e) }

// Fp2Inv returns e^-1: (a0-a1 i) / (a0^2 - Beta*a1^2).
func Fp2Inv(e Fp2) Fp2 {
	norm := e.A0.Mul(e.A0).Sub(e.C.Beta.Mul(e.A1.Mul(e.A1)))
	inv := norm.Inv()
	return Fp2{A0: e.A0.Mul(inv), A1: e.A1.Neg().Mul(inv), C: e.C}
}

// Fp2MulByBase multiplies e by a base-field scalar s (placed in the a0
// position), i.e. scalar multiplication of the extension by Fp.
func Fp2MulByBase(e Fp2, s fp.Element) Fp2 {
	return Fp2{A0: e.A0.Mul(s), A1: e.A1.Mul(s), C: e.C}
}

// The instance-method wrappers below exist solely so Fp2 satisfies
// math/ec's generic Field constraint, which needs uniform method syntax
// across math/fp.Element and math/tower.Fp2 (the two base rings G1-style
// and G2-style curve points are built over).

func (e Fp2) Add(f Fp2) Fp2 { return Fp2Add(e, f) }
func (e Fp2) Sub(f Fp2) Fp2 { return Fp2Sub(e, f) }
func (e Fp2) Neg() Fp2      { return Fp2Neg(e) }
func (e Fp2) Mul(f Fp2) Fp2 { return Fp2Mul(e, f) }
func (e Fp2) Square() Fp2   { return Fp2Square(e) }
func (e Fp2) Inv() Fp2      { return Fp2Inv(e) }
func (e Fp2) ZeroLike() Fp2 { return Fp2Zero(e.C) }
func (e Fp2) OneLike() Fp2  { return Fp2One(e.C) }
func (e Fp2) CSelect(mask ct.Bool, other Fp2) Fp2 {
	return Fp2{
		A0: e.A0.CSelect(mask, other.A0),
		A1: e.A1.CSelect(mask, other.A1),
		C:  e.C,
	}
}

// CEqual and CIsZero give Fp2 the same constant-time-named methods as
// math/fp.Element, so both satisfy math/ec's generic Field constraint; the
// plain-bool Equal/IsZero above stay as is since this package's own tests
// already rely on that signature.
func (e Fp2) CEqual(f Fp2) ct.Bool {
	return ct.And(e.A0.Equal(f.A0), e.A1.Equal(f.A1))
}
func (e Fp2) CIsZero() ct.Bool {
	return ct.And(e.A0.IsZero(), e.A1.IsZero())
}
