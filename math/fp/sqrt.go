package fp

import (
	"github.com/mratsim/constantine-sub017/internal/ct"
	"github.com/mratsim/constantine-sub017/internal/limb"
)

// Sqrt returns (root, true) if e is a quadratic residue mod p, with
// root*root == e, and (zero, false) otherwise. Sqrt(0) == (0, true), per
// spec section 4.3's sqrt family convention.
//
// Moduli that are 3-mod-4 (the secp256k1, BN254 and BLS12-381 base fields)
// or 5-mod-8 take an addition-chain recipe. Every other modulus takes the
// Tonelli-Shanks fallback below, which is variable-time and reads
// Constants.NonResidue; among the registered fields this includes the
// Bandersnatch/Banderwagon base field (the BLS12-381 scalar field, 1 mod
// 8), and the curves package sets NonResidue for none of its fields.
func Sqrt(e Element) (Element, ct.Bool) {
	isZero := e.IsZero()
	// Substitute 1 for 0 so every algorithm below operates on a genuine
	// unit; the real zero case is patched back in at the end via Select,
	// so this substitution never leaks e's zero-ness through timing.
	x := Select(isZero, One(e.c), e)

	var root Element
	switch {
	case e.c.Modulus[0]&3 == 3:
		root = sqrt3Mod4(x)
	case e.c.Modulus[0]&7 == 5:
		root = sqrt5Mod8(x)
	default:
		root = sqrtTonelliShanks(x)
	}

	isSquare := ct.Or(isZero, root.Square().Equal(x))
	root = Select(isZero, Zero(e.c), root)
	root = Select(ct.Not(isSquare), Zero(e.c), root)
	return root, isSquare
}

// sqrt3Mod4 computes x^((p+1)/4), the standard recipe when p is 3 mod 4.
func sqrt3Mod4(x Element) Element {
	exp := limb.Clone(x.c.Modulus)
	one := limb.New(x.c.NumLimbs)
	one[0] = 1
	limb.Add(exp, exp, one)
	limb.ShiftRight1(exp)
	limb.ShiftRight1(exp)
	return x.Pow(exp)
}

// sqrt5Mod8 computes the Atkin recipe for p == 5 mod 8:
//
//	v = (2x)^((p-5)/8)
//	i = 2*x*v^2
//	root = x*v*(i-1)
func sqrt5Mod8(x Element) Element {
	exp := limb.Clone(x.c.Modulus)
	five := limb.New(x.c.NumLimbs)
	five[0] = 5
	limb.Sub(exp, exp, five)
	limb.ShiftRight1(exp)
	limb.ShiftRight1(exp)
	limb.ShiftRight1(exp)

	x2 := x.Double()
	v := x2.Pow(exp)
	i := x2.Mul(v.Square())
	root := x.Mul(v).Mul(i.Sub(One(x.c)))
	return root
}

// sqrtTonelliShanks is the generic fallback for moduli that are neither
// 3-mod-4 nor 5-mod-8. It is variable-time: the number of loop iterations
// depends on the multiplicative order of x^q, i.e. on the value of x, and
// no masked copies hide it. For a non-residue the search finds no i below
// m and the loop stops; Sqrt's root*root == x check then reports failure.
func sqrtTonelliShanks(x Element) Element {
	c := x.c

	// p - 1 = q * 2^s, q odd.
	q := limb.Clone(c.Modulus)
	one := limb.New(c.NumLimbs)
	one[0] = 1
	limb.Sub(q, q, one)
	s := 0
	for q[0]&1 == 0 {
		limb.ShiftRight1(q)
		s++
	}

	z := Element{limbs: limb.Clone(c.NonResidue), c: c}

	m := s
	cc := z.Pow(q)
	qPlus1Half := limb.Clone(q)
	limb.Add(qPlus1Half, qPlus1Half, one)
	limb.ShiftRight1(qPlus1Half)
	t := x.Pow(q)
	r := x.Pow(qPlus1Half)

	for !t.IsOne().IsTrue() {
		// Find the least i in (0, m) with t^(2^i) == 1.
		i := 0
		tt := t.Clone()
		for !tt.IsOne().IsTrue() {
			tt = tt.Square()
			i++
		}
		if i >= m {
			break
		}

		b := cc
		for k := 0; k < m-i-1; k++ {
			b = b.Square()
		}
		m = i
		cc = b.Square()
		t = t.Mul(cc)
		r = r.Mul(b)
	}
	return r
}
