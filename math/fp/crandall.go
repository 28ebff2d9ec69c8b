package fp

import (
	"github.com/mratsim/constantine-sub017/internal/ct"
	"github.com/mratsim/constantine-sub017/internal/limb"
)

// CrandallReduce reduces a double-width product u (len(u) == 2n) modulo a
// pseudo-Mersenne prime p = 2^m - c with m = n*64 (the "m = N*W" case spec
// section 4.3 singles out, e.g. secp256k1 on a 64-bit target), using the
// identity 2^m == c (mod p) to fold the high half onto the low half and
// multiply by the small constant c instead of doing a full-width division.
//
// c must fit in a single 64-bit word. secp256k1's c = 2^32 + 977 is
// slightly above 2^(W/2) = 2^32 for W = 64, so c^2 does not fit in one
// word; the fold below tracks and re-folds every overflow bit rather than
// assume it does, so it stays correct for such c.
// n == len(modulus) == len(r).
func CrandallReduce(r, u, modulus limb.Limbs, c ct.Word) {
	n := len(modulus)
	hi := u[n:]
	lo := u[:n]

	// First fold: t = lo + hi*c. hi < 2^(64n), c is one word, so the carry
	// out of this multiply-word (kept in overflow, since t has only n limbs)
	// is itself < c.
	t := limb.New(n)
	carryMul := limb.MulWord(t, hi, c)
	carryAdd := limb.Add(t, t, lo)
	overflow := carryMul + carryAdd

	// Fold any remaining overflow back in via the same 2^(64n) == c
	// identity, repeating a fixed number of times. overflow shrinks by
	// roughly a factor of 2^64/c at each pass (it starts below c, and
	// folding a value below c can itself only overflow by 0, 1 or 2 more
	// words), so four passes drives it to zero for every width this
	// package targets; the loop always runs its full fixed count rather
	// than stopping early once overflow happens to hit zero, so the trace
	// does not depend on u's value.
	for pass := 0; pass < 4; pass++ {
		hiF, loF := ct.Mul64(overflow, c)
		ov1 := addWordAt(t, 0, loF)
		ov2 := addWordAt(t, 1, hiF)
		overflow = ov1 + ov2
	}

	// t is now in [0, a small multiple of p); a handful of fixed
	// conditional-subtraction passes bring it into [0, p).
	for pass := 0; pass < 4; pass++ {
		tmp := limb.New(n)
		borrow := limb.Sub(tmp, t, modulus)
		limb.CCopy(ct.IsZero(borrow), t, tmp)
	}
	copy(r, t)
}

// addWordAt adds value into dst[at], propagating the carry through the
// rest of dst in a fixed-length pass, and returns whatever carry (0 or 1)
// overflowed past the top of dst -- the caller is responsible for folding
// that back in rather than silently discarding it.
func addWordAt(dst limb.Limbs, at int, value ct.Word) ct.Word {
	if at >= len(dst) {
		return value
	}
	carry := value
	for k := at; k < len(dst); k++ {
		var c ct.Word
		dst[k], c = ct.Add64(dst[k], carry, 0)
		carry = c
	}
	return carry
}
