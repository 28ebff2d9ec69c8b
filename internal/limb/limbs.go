// Package limb implements saturated, base-2^64 multi-precision integer
// arithmetic over slices of machine words, per spec section 4.2. Every
// exported function is total (no panics, no runtime errors) and
// constant-time in the shape of its arguments: the number of instructions
// executed and the addresses touched depend only on len(a)/len(b), never
// on the words' values.
//
// A value of type Limbs is little-endian by significance: Limbs[0] is the
// least-significant word. Grounded on the slice-of-words "nat" shape used
// throughout the corpus's own arbitrary-precision code (e.g.
// other_examples' math/big nat.go), generalizing the teacher's per-curve
// *big.Int fields to an explicit, fixed-width, branch-free engine.
package limb

import "github.com/mratsim/constantine-sub017/internal/ct"

// Limbs is an ordered, little-endian sequence of machine words. Its length
// is fixed at construction and never changes for the lifetime of a value.
type Limbs = []ct.Word

// New allocates a zeroed Limbs of the given word count.
func New(n int) Limbs { return make(Limbs, n) }

// Clone returns a fresh copy of a.
func Clone(a Limbs) Limbs {
	b := make(Limbs, len(a))
	copy(b, a)
	return b
}

// SetZero zeroes every word of r.
func SetZero(r Limbs) {
	for i := range r {
		r[i] = 0
	}
}

// SetUint64 sets r to v, zeroing the remaining limbs.
func SetUint64(r Limbs, v uint64) {
	SetZero(r)
	if len(r) > 0 {
		r[0] = v
	}
}

// IsZero returns True iff every limb of a is zero.
func IsZero(a Limbs) ct.Bool {
	acc := ct.Word(0)
	for _, w := range a {
		acc |= w
	}
	return ct.IsZero(acc)
}

// Eq returns True iff a == b (equal length required by the caller; shorter
// operands are the caller's bug, not something this function branches on
// since curve-internal callers always pass same-width operands).
func Eq(a, b Limbs) ct.Bool {
	acc := ct.Word(0)
	for i := range a {
		acc |= a[i] ^ b[i]
	}
	return ct.IsZero(acc)
}

// Cmp returns -1, 0, 1 masked as described by spec 4.2: it folds the
// comparison into a single pass, most-significant limb first, using a
// select to latch the first differing limb's ordering without branching
// on a data-dependent "break".
func Cmp(a, b Limbs) int {
	lt := ct.False
	gt := ct.False
	decided := ct.False
	for i := len(a) - 1; i >= 0; i-- {
		isLt := ct.Lt(a[i], b[i])
		isGt := ct.Lt(b[i], a[i])
		newLt := ct.And(ct.Not(decided), isLt)
		newGt := ct.And(ct.Not(decided), isGt)
		lt = ct.Or(lt, newLt)
		gt = ct.Or(gt, newGt)
		decided = ct.Or(decided, ct.Or(isLt, isGt))
	}
	return int(ct.Word(gt)&1) - int(ct.Word(lt)&1)
}

// Add computes r = a + b and returns the carry out of the top limb.
func Add(r, a, b Limbs) ct.Word {
	var carry ct.Word
	for i := range r {
		r[i], carry = ct.Add64(a[i], b[i], carry)
	}
	return carry
}

// Sub computes r = a - b and returns the borrow out of the top limb.
func Sub(r, a, b Limbs) ct.Word {
	var borrow ct.Word
	for i := range r {
		r[i], borrow = ct.Sub64(a[i], b[i], borrow)
	}
	return borrow
}

// CAdd computes r = a + (mask AND b), i.e. adds b to a only when mask is
// True, without branching on mask.
func CAdd(r, a, b Limbs, mask ct.Bool) ct.Word {
	var carry ct.Word
	m := ct.Word(mask)
	for i := range r {
		masked := b[i] & m
		r[i], carry = ct.Add64(a[i], masked, carry)
	}
	return carry & m
}

// CSub computes r = a - (mask AND b).
func CSub(r, a, b Limbs, mask ct.Bool) ct.Word {
	var borrow ct.Word
	m := ct.Word(mask)
	for i := range r {
		masked := b[i] & m
		r[i], borrow = ct.Sub64(a[i], masked, borrow)
	}
	return borrow & m
}

// CSwap conditionally swaps a and b in place iff mask is True.
func CSwap(mask ct.Bool, a, b Limbs) {
	for i := range a {
		ct.Swap(mask, &a[i], &b[i])
	}
}

// CCopy overwrites dst with src iff mask is True.
func CCopy(mask ct.Bool, dst, src Limbs) {
	for i := range dst {
		ct.Copy(mask, &dst[i], src[i])
	}
}

// Select writes a into r if mask is True, b otherwise.
func Select(r Limbs, mask ct.Bool, a, b Limbs) {
	for i := range r {
		r[i] = ct.Select(mask, a[i], b[i])
	}
}

// ShiftLeft1 shifts a left by one bit in place, returning the bit shifted
// out of the top.
func ShiftLeft1(a Limbs) ct.Word {
	var carry ct.Word
	for i := range a {
		next := a[i] >> 63
		a[i] = (a[i] << 1) | carry
		carry = next
	}
	return carry
}

// ShiftRight1 shifts a right by one bit in place, returning the bit
// shifted out of the bottom.
func ShiftRight1(a Limbs) ct.Word {
	var carry ct.Word
	for i := len(a) - 1; i >= 0; i-- {
		next := a[i] & 1
		a[i] = (a[i] >> 1) | (carry << 63)
		carry = next
	}
	return carry
}

// ShiftLeftWords shifts a left by n whole words, discarding words shifted
// past the top and filling with zero at the bottom.
func ShiftLeftWords(r, a Limbs, n int) {
	if n >= len(a) {
		SetZero(r)
		return
	}
	for i := len(r) - 1; i >= n; i-- {
		r[i] = a[i-n]
	}
	for i := 0; i < n; i++ {
		r[i] = 0
	}
}

// ShiftRightWords shifts a right by n whole words.
func ShiftRightWords(r, a Limbs, n int) {
	if n >= len(a) {
		SetZero(r)
		return
	}
	for i := 0; i < len(r)-n; i++ {
		r[i] = a[i+n]
	}
	for i := len(r) - n; i < len(r); i++ {
		r[i] = 0
	}
}

// Bit returns the i-th bit of a (0 = least significant) as 0 or 1. i is
// always a fixed, public loop index in every caller (scalar multiplication
// scans a fixed bit range); only the returned bit value is secret, and
// extracting it is a single shift-and-mask with no data-dependent branch.
func Bit(a Limbs, i int) ct.Word {
	word := i / 64
	if word >= len(a) {
		return 0
	}
	return (a[word] >> uint(i%64)) & 1
}

// BitLen returns the index (1-based) of the highest set bit, or 0 if a is
// zero. This is a non-secret helper used only by registry constant
// derivation (curve moduli, not secret data), never on attacker- or
// key-controlled values, so it is allowed to be variable-time.
func BitLen(a Limbs) int {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != 0 {
			return i*64 + bitLenWord(a[i])
		}
	}
	return 0
}

func bitLenWord(w ct.Word) int {
	n := 0
	for w != 0 {
		w >>= 1
		n++
	}
	return n
}
