package ec

import (
	"github.com/mratsim/constantine-sub017/internal/ct"
	"github.com/mratsim/constantine-sub017/internal/limb"
	"github.com/mratsim/constantine-sub017/math/fp"
)

// mulShiftRight computes round((a*b) >> shift), truncated to len(a) limbs,
// following other_examples' mulShiftVar: the full double-width product is
// computed once, then the result window is extracted by a word+bit shift
// and rounded using the bit immediately below the cutoff -- all of it
// fixed-shape arithmetic over a's and b's lengths, never branching on
// either operand's value.
func mulShiftRight(a, b limb.Limbs, shift int) limb.Limbs {
	n := len(a)
	wide := limb.New(2 * n)
	limb.Mul(wide, a, b)

	out := limb.New(n)
	wordShift := shift / 64
	bitShift := uint(shift % 64)
	for i := 0; i < n; i++ {
		idx := i + wordShift
		var lo, hi ct.Word
		if idx < len(wide) {
			lo = wide[idx]
		}
		if idx+1 < len(wide) {
			hi = wide[idx+1]
		}
		if bitShift == 0 {
			out[i] = lo
		} else {
			out[i] = (lo >> bitShift) | (hi << (64 - bitShift))
		}
	}

	// Round up if the bit just below the cutoff was set.
	if shift > 0 {
		bitIdx := shift - 1
		word := bitIdx / 64
		if word < len(wide) {
			bit := (wide[word] >> uint(bitIdx%64)) & 1
			one := limb.New(n)
			one[0] = 1
			limb.CAdd(out, out, one, ct.IsNonZero(bit))
		}
	}
	return out
}

// decomposeGLV splits k (raw limbs, reduced mod e.Fr's modulus) into
// (k0, k0Neg, k1, k1Neg) with k0 + sign(k1)*k1*lambda == k (mod r) and
// both of magnitude roughly half of r's bit length.
func decomposeGLV(k limb.Limbs, e *ScalarSplit) (k0 limb.Limbs, k0Neg ct.Bool, k1 limb.Limbs, k1Neg ct.Bool) {
	c1raw := mulShiftRight(k, e.G1, e.ShiftBits)
	c2raw := mulShiftRight(k, e.G2, e.ShiftBits)

	c1 := fp.ToMont(e.Fr, c1raw)
	c2 := fp.ToMont(e.Fr, c2raw)
	c1 = c1.Mul(e.MinusB1)
	c2 = c2.Mul(e.MinusB2)
	r2 := c1.Add(c2)

	kElem := fp.ToMont(e.Fr, k)
	r1 := kElem.Sub(r2.Mul(e.Lambda))

	k0, k0Neg = toSigned(r1, e.Fr, e.HalfOrder)
	k1, k1Neg = toSigned(r2, e.Fr, e.HalfOrder)
	return
}

// toSigned converts v (an Fr element) to a signed-magnitude
// representative: (raw, false) if raw < halfOrder, else (r-raw, true).
func toSigned(v fp.Element, fr *fp.Constants, halfOrder limb.Limbs) (limb.Limbs, ct.Bool) {
	raw := fp.FromMont(v)
	diff := limb.New(fr.NumLimbs)
	borrow := limb.Sub(diff, raw, halfOrder)
	// No borrow means raw >= halfOrder: treat as the negative representative.
	isNeg := ct.IsZero(borrow)

	neg := limb.New(fr.NumLimbs)
	limb.Sub(neg, fr.Modulus, raw)

	out := limb.New(fr.NumLimbs)
	limb.Select(out, isNeg, neg, raw)
	return out, isNeg
}
