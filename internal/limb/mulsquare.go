package limb

import "github.com/mratsim/constantine-sub017/internal/ct"

// Mul computes the full N x N -> 2N product r2 = a * b via schoolbook
// operand scanning: for each limb a[i] it adds the row a[i]*b into r2 at
// offset i, carrying one word along the row. It is not product-scanning
// (Comba): output positions are not summed column by column in a
// double-word accumulator. len(r2) must be len(a)+len(b); len(a) ==
// len(b) == N.
func Mul(r2, a, b Limbs) {
	n := len(a)
	SetZero(r2)
	for i := 0; i < n; i++ {
		var carry ct.Word
		for j := 0; j < n; j++ {
			hi, lo := ct.Mul64(a[i], b[j])
			var c ct.Word
			r2[i+j], c = ct.Add64(r2[i+j], lo, 0)
			hi += c
			r2[i+j], c = ct.Add64(r2[i+j], carry, 0)
			hi += c
			carry = hi
		}
		r2[i+n] = carry
	}
}

// Square computes r2 = a*a, specialized so that cross terms a[i]*a[j] for
// i<j are computed once and doubled, then the a[i]^2 diagonal is added
// once -- spec section 4.2's "~40% fewer multiplications" optimization.
//
// Every inner loop below runs a fixed number of iterations determined only
// by n = len(a); carry propagation never early-exits on a carry value, so
// the instruction trace is independent of a's contents.
func Square(r2, a Limbs) {
	n := len(a)
	SetZero(r2)

	// Cross terms, i < j, accumulated (not yet doubled).
	for i := 0; i < n; i++ {
		var carry ct.Word
		for j := i + 1; j < n; j++ {
			hi, lo := ct.Mul64(a[i], a[j])
			var c ct.Word
			r2[i+j], c = ct.Add64(r2[i+j], lo, 0)
			hi += c
			r2[i+j], c = ct.Add64(r2[i+j], carry, 0)
			hi += c
			carry = hi
		}
		// Propagate the row's leftover carry to the end of the buffer in
		// a fixed-length pass (no early exit on carry == 0).
		for k := i + n; k < len(r2); k++ {
			var c ct.Word
			r2[k], c = ct.Add64(r2[k], carry, 0)
			carry = c
		}
	}

	// Double the cross-term accumulation.
	dbl := make(Limbs, len(r2))
	carry := ct.Word(0)
	for i := range r2 {
		next := r2[i] >> 63
		dbl[i] = (r2[i] << 1) | carry
		carry = next
	}
	copy(r2, dbl)

	// Add the diagonal a[i]^2, propagating each diagonal term's carry to
	// the end of the buffer in a fixed-length pass.
	for i := 0; i < n; i++ {
		hi, lo := ct.Mul64(a[i], a[i])
		var c ct.Word
		r2[2*i], c = ct.Add64(r2[2*i], lo, 0)
		hi += c
		carry := hi
		for k := 2*i + 1; k < len(r2); k++ {
			r2[k], c = ct.Add64(r2[k], carry, 0)
			carry = c
		}
	}
}

// MulWord computes r = a * w (single-word multiplier), returning the
// carry limb. len(r) == len(a).
func MulWord(r, a Limbs, w ct.Word) ct.Word {
	var carry ct.Word
	for i := range a {
		hi, lo := ct.MulAdd64(a[i], w, carry)
		r[i] = lo
		carry = hi
	}
	return carry
}
