package limb

import (
	"github.com/holiman/uint256"

	"github.com/mratsim/constantine-sub017/internal/ct"
)

// The 256-bit-modulus fields this repository registers (secp256k1, BN254's
// base and scalar fields, and the Banderwagon/Bandersnatch base and scalar
// fields) all use exactly 4 sixty-four-bit limbs. For that specific, very
// common width math/fp's byte encoding reaches for
// github.com/holiman/uint256's fixed-array Int instead of the generic
// variable-width slice path, mirroring spec section 9's "opt-in
// specializations behind a trait method with a default": the generic path
// in internal/ct/bytes.go remains correct for any width and is what the
// wider fields (BLS12-381) use; this file is only a faster byte<->limb
// boundary for the 4-limb case.

// FromBytes32BE decodes a 32-byte big-endian buffer into a 4-word Limbs
// using uint256's constant-width conversion instead of the generic
// variable-length loop in bytes.go.
func FromBytes32BE(dst Limbs, src *[32]byte) {
	var u uint256.Int
	u.SetBytes32(src[:])
	dst[0] = u[0]
	dst[1] = u[1]
	dst[2] = u[2]
	dst[3] = u[3]
}

// ToBytes32BE encodes a 4-word Limbs into a 32-byte big-endian buffer.
func ToBytes32BE(dst *[32]byte, src Limbs) {
	u := uint256.Int{src[0], src[1], src[2], src[3]}
	b := u.Bytes32()
	*dst = b
}

// addWithCarryRef cross-checks internal/ct's Add64 shape against
// uint256's independently-implemented 4-limb addition; used only from
// _test.go files as a second oracle, never from the arithmetic core.
func addWithCarryRef(a, b Limbs) (Limbs, ct.Word) {
	ua := uint256.Int{a[0], a[1], a[2], a[3]}
	ub := uint256.Int{b[0], b[1], b[2], b[3]}
	var sum uint256.Int
	overflow := sum.AddOverflow(&ua, &ub)
	r := New(4)
	r[0], r[1], r[2], r[3] = sum[0], sum[1], sum[2], sum[3]
	carry := ct.Word(0)
	if overflow {
		carry = 1
	}
	return r, carry
}
