package limb

import "github.com/mratsim/constantine-sub017/internal/ct"

// Reduce computes r = u mod modulus for a double-width u (len(u) ==
// 2*len(modulus)) via repeated conditional subtraction of modulus shifted
// into alignment, most-significant limb first. This is the generic
// fallback reduction spec section 4.2 calls for outside of the Montgomery
// CIOS path (math/fp uses CIOS for the hot path). No package in this
// repository calls it: the curves registry derives R^2 mod p and its other
// one-time constants with math/big.
//
// r must have the same width as modulus. u is destroyed.
func Reduce(r Limbs, u Limbs, modulus Limbs) {
	n := len(modulus)
	// Align the modulus to the top and subtract down, bit by bit: this is
	// a schoolbook long-division reduction. It is intentionally simple
	// (not Barrett-with-precomputed-reciprocal) and not constant-time: it
	// branches on each Cmp result.
	rem := Clone(u)
	shifted := New(len(u))
	for shift := len(u)*64 - n*64; shift >= 0; shift-- {
		copy(shifted, modulus)
		shiftLeftBits(shifted, uint(shift))
		if Cmp(rem, shifted) >= 0 {
			Sub(rem, rem, shifted)
		}
	}
	copy(r, rem[:n])
}

// shiftLeftBits shifts a left by an arbitrary bit count in place, growing
// into the same fixed-width buffer (bits shifted past the top are lost).
// Variable-time, registry-derivation-only helper (see Reduce's doc).
func shiftLeftBits(a Limbs, n uint) {
	words := int(n / 64)
	bits := uint(n % 64)
	if words > 0 {
		for i := len(a) - 1; i >= 0; i-- {
			if i-words >= 0 {
				a[i] = a[i-words]
			} else {
				a[i] = 0
			}
		}
	}
	if bits > 0 {
		var carry ct.Word
		for i := 0; i < len(a); i++ {
			next := a[i] >> (64 - bits)
			a[i] = (a[i] << bits) | carry
			carry = next
		}
	}
}
