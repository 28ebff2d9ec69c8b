// Package fp implements prime-field arithmetic in Montgomery form, per
// spec section 4.3. A single Element type serves both the base field Fp
// and the scalar field Fr of every registered curve: which field a given
// Element belongs to is determined entirely by the *Constants it carries,
// following the registry-driven design of spec section 4.6 rather than
// generating one Go type per curve/field pair.
//
// Grounded on the teacher's per-curve FpElement method-based API
// (bn254_fp_extended.go: NewFpElement/Add/Sub/Mul/Inv/Sqrt), generalized
// from hardcoded *big.Int Montgomery constants to registry-supplied ones
// and from math/big's variable-time modular reduction to the CIOS
// constant-time schedule spec section 4.3 mandates.
package fp

import (
	"github.com/mratsim/constantine-sub017/internal/ct"
	"github.com/mratsim/constantine-sub017/internal/limb"
)

// Constants is everything a field needs to do Montgomery arithmetic,
// supplied once by a curve's registry entry and shared (read-only, by
// pointer) across every Element that belongs to that field.
type Constants struct {
	Name string

	// NumLimbs is N, the number of 64-bit limbs needed for the modulus.
	NumLimbs int

	// Modulus is p (or r), little-endian limbs.
	Modulus limb.Limbs

	// M0Inv is -p[0]^-1 mod 2^64, the CIOS reduction multiplier.
	M0Inv ct.Word

	// MontR2 is R^2 mod p where R = 2^(NumLimbs*64), used by ToMont.
	MontR2 limb.Limbs

	// MontOne is R mod p, the Montgomery representation of 1.
	MontOne limb.Limbs

	// BitLen is the bit length of the modulus (ceil to nothing; exact).
	BitLen int

	// ByteLen is ceil(BitLen/8), the canonical serialization length.
	ByteLen int

	// NonResidue is a known quadratic non-residue mod p, in Montgomery
	// form. Only consulted by the generic Tonelli-Shanks path in sqrt.go
	// (fields whose modulus is 3-mod-4 or 5-mod-8 never touch it).
	NonResidue limb.Limbs

	// Crandall is non-nil for pseudo-Mersenne moduli p = 2^m - c with m =
	// NumLimbs*64 (spec section 4.3's "m = N*W" case, e.g. secp256k1's Fp
	// on a 64-bit target): when set, Mul/ToMont/FromMont bypass CIOS
	// Montgomery multiplication entirely and use CrandallReduce on plain
	// (non-Montgomery) values instead, since the 2^m==c identity makes the
	// Montgomery R-scaling unnecessary overhead. Left nil for every other
	// field, which keeps using montMul.
	Crandall *CrandallParams
}

// CrandallParams names the small constant c in a pseudo-Mersenne modulus
// p = 2^(NumLimbs*64) - c, for CrandallReduce.
type CrandallParams struct {
	C ct.Word
}

// Element is a field element stored in Montgomery form: Limbs represents
// a*R mod p for the logical value a, per the Data Model's Fp invariant.
type Element struct {
	limbs limb.Limbs
	c     *Constants
}

// Zero returns the additive identity of the field described by c.
func Zero(c *Constants) Element {
	return Element{limbs: limb.New(c.NumLimbs), c: c}
}

// One returns the multiplicative identity.
func One(c *Constants) Element {
	e := Zero(c)
	copy(e.limbs, c.MontOne)
	return e
}

// Constants returns the field this element belongs to.
func (e Element) Constants() *Constants { return e.c }

// Clone returns an independent copy of e.
func (e Element) Clone() Element {
	return Element{limbs: limb.Clone(e.limbs), c: e.c}
}

// IsZero reports whether e == 0. Montgomery form preserves zero (0*R mod p
// == 0), so this can compare the stored limbs directly.
func (e Element) IsZero() ct.Bool { return limb.IsZero(e.limbs) }

// IsOne reports whether e == 1.
func (e Element) IsOne() ct.Bool { return limb.Eq(e.limbs, e.c.MontOne) }

// Equal reports whether e == f. Both must belong to the same field.
func (e Element) Equal(f Element) ct.Bool { return limb.Eq(e.limbs, f.limbs) }

// ZeroLike and OneLike return the additive/multiplicative identity of e's
// own field, letting generic code (math/ec's Field constraint) obtain them
// from an existing value without carrying a separate *Constants around.
func (e Element) ZeroLike() Element { return Zero(e.c) }
func (e Element) OneLike() Element  { return One(e.c) }

// CSelect returns e if mask is True, other otherwise -- the instance-method
// form of the package-level Select, needed to satisfy math/ec's generic
// Field constraint.
func (e Element) CSelect(mask ct.Bool, other Element) Element { return Select(mask, e, other) }

// CEqual and CIsZero are the names math/ec's generic Field constraint calls;
// here they are plain aliases since Element's own Equal/IsZero already
// return ct.Bool. math/tower.Fp2 needs separate constant-time-named methods
// because its Equal/IsZero return a plain bool for its own test suite.
func (e Element) CEqual(f Element) ct.Bool { return e.Equal(f) }
func (e Element) CIsZero() ct.Bool         { return e.IsZero() }

// CSwap conditionally swaps e and f in place iff mask is True.
func CSwap(mask ct.Bool, e, f *Element) { limb.CSwap(mask, e.limbs, f.limbs) }

// CCopy overwrites dst with src iff mask is True.
func CCopy(mask ct.Bool, dst *Element, src Element) { limb.CCopy(mask, dst.limbs, src.limbs) }

// Select returns a if mask is True, b otherwise.
func Select(mask ct.Bool, a, b Element) Element {
	r := Zero(a.c)
	limb.Select(r.limbs, mask, a.limbs, b.limbs)
	return r
}

// Add returns e + f mod p.
func (e Element) Add(f Element) Element {
	r := Zero(e.c)
	carry := limb.Add(r.limbs, e.limbs, f.limbs)
	reduceAfterAdd(r.limbs, e.c.Modulus, carry)
	return r
}

// reduceAfterAdd conditionally subtracts the modulus once, using the carry
// out of the addition to decide whether a subtraction is even needed as an
// extra, branch-free hint (CSub itself never branches on its mask).
func reduceAfterAdd(r, modulus limb.Limbs, carry ct.Word) {
	tmp := limb.New(len(r))
	borrow := limb.Sub(tmp, r, modulus)
	// Need to subtract iff (carry == 1) OR (no borrow, i.e. r >= modulus).
	needSub := ct.Or(ct.IsNonZero(carry), ct.Not(ct.IsNonZero(borrow)))
	limb.CCopy(needSub, r, tmp)
}

// Sub returns e - f mod p.
func (e Element) Sub(f Element) Element {
	r := Zero(e.c)
	borrow := limb.Sub(r.limbs, e.limbs, f.limbs)
	limb.CAdd(r.limbs, r.limbs, e.c.Modulus, ct.IsNonZero(borrow))
	return r
}

// Neg returns -e mod p.
func (e Element) Neg() Element {
	return Zero(e.c).Sub(e)
}

// Double returns 2*e mod p.
func (e Element) Double() Element { return e.Add(e) }

// Halve returns e/2 mod p (p is always odd, so this is well defined): if e
// is even, shift right; otherwise add p first to make it even, then shift.
func (e Element) Halve() Element {
	r := e.Clone()
	odd := ct.Bool(-(r.limbs[0] & 1))
	carry := limb.CAdd(r.limbs, r.limbs, e.c.Modulus, odd)
	limb.ShiftRight1(r.limbs)
	r.limbs[len(r.limbs)-1] |= carry << 63
	return r
}

// Mul returns e * f mod p. Fields with a pseudo-Mersenne modulus
// (e.c.Crandall != nil) use CrandallReduce on a plain schoolbook product
// instead of CIOS Montgomery multiplication; every other field uses
// montMul. Either way Element never exposes which path it took -- the
// fast path is a drop-in, not a separate type.
func (e Element) Mul(f Element) Element {
	r := Zero(e.c)
	if e.c.Crandall != nil {
		wide := limb.New(2 * e.c.NumLimbs)
		limb.Mul(wide, e.limbs, f.limbs)
		CrandallReduce(r.limbs, wide, e.c.Modulus, e.c.Crandall.C)
		return r
	}
	montMul(r.limbs, e.limbs, f.limbs, e.c.Modulus, e.c.M0Inv)
	return r
}

// Square returns e^2 mod p. A dedicated squaring CIOS pass is not
// implemented (unlike internal/limb.Square's schoolbook specialization)
// because Montgomery reduction's own cost dominates for field-sized
// operands at the widths this repository targets; Mul(e,e) is correct and
// is what this delegates to.
func (e Element) Square() Element { return e.Mul(e) }

// montMul computes r = a*b*R^-1 mod p using the Coarsely-Integrated
// Operand Scanning schedule of spec section 4.3. t is a length-(n+2)
// scratch accumulator; every inner loop runs exactly n iterations
// regardless of operand values.
func montMul(r, a, b, modulus limb.Limbs, m0inv ct.Word) {
	n := len(modulus)
	t := make(limb.Limbs, n+2)

	for i := 0; i < n; i++ {
		// Multiply-accumulate pass: t += a * b[i].
		var carry ct.Word
		for j := 0; j < n; j++ {
			hi, lo := ct.MulAddAdd64(a[j], b[i], t[j], carry)
			t[j] = lo
			carry = hi
		}
		sum, c := ct.Add64(t[n], carry, 0)
		t[n] = sum
		t[n+1] += c

		// Reduction pass: m = t[0]*m0inv mod 2^64; t += m * modulus.
		m := t[0] * m0inv
		var carry2 ct.Word
		for j := 0; j < n; j++ {
			hi, lo := ct.MulAddAdd64(m, modulus[j], t[j], carry2)
			t[j] = lo
			carry2 = hi
		}
		sum2, c2 := ct.Add64(t[n], carry2, 0)
		t[n] = sum2
		t[n+1] += c2

		// Shift the accumulator down by one word (t[0] is now zero by
		// construction of m).
		for k := 0; k < n+1; k++ {
			t[k] = t[k+1]
		}
		t[n+1] = 0
	}

	// Final conditional subtraction to bring the result into [0, p).
	tmp := limb.New(n)
	borrow := limb.Sub(tmp, t[:n], modulus)
	keep := ct.And(ct.IsZero(t[n]), ct.IsNonZero(borrow))
	limb.Select(r, keep, t[:n], tmp)
}

// ToMont converts a raw value, given as limbs in [0, p), into e's internal
// representation: its Montgomery form a*R mod p (via montMul(a, R^2 mod
// p)) for CIOS fields, or the raw value unchanged for Crandall fields,
// which never leave plain representation in the first place.
func ToMont(c *Constants, raw limb.Limbs) Element {
	r := Zero(c)
	if c.Crandall != nil {
		copy(r.limbs, raw)
		return r
	}
	montMul(r.limbs, raw, c.MontR2, c.Modulus, c.M0Inv)
	return r
}

// FromMont converts e's internal representation back to a raw value in
// [0, p): montMul(e, 1) for CIOS fields, or the stored limbs unchanged for
// Crandall fields.
func FromMont(e Element) limb.Limbs {
	if e.c.Crandall != nil {
		return limb.Clone(e.limbs)
	}
	one := limb.New(e.c.NumLimbs)
	one[0] = 1
	raw := limb.New(e.c.NumLimbs)
	montMul(raw, e.limbs, one, e.c.Modulus, e.c.M0Inv)
	return raw
}
