// Package curves is the compile-time curve/field registry: one file per
// curve family, each deriving its Montgomery field constants, generator,
// and (where applicable) GLV endomorphism data once via math/big and
// caching the result behind sync.Once, the same lazy-singleton shape the
// teacher's secp256k1_curve.go uses for S256(). Every derivation here runs
// once at first use on public constants (moduli, generators, lattice
// reduction basis vectors), never on secret data, so doing it with
// variable-time math/big is not a constant-time violation.
package curves

import (
	"math/big"

	"github.com/mratsim/constantine-sub017/internal/ct"
	"github.com/mratsim/constantine-sub017/internal/limb"
	"github.com/mratsim/constantine-sub017/math/fp"
)

func hexToBig(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("curves: invalid hex constant " + s)
	}
	return v
}

func decToBig(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("curves: invalid decimal constant " + s)
	}
	return v
}

// limbsFromBig packs v (assumed non-negative and < 2^(n*64)) into n
// little-endian 64-bit limbs.
func limbsFromBig(v *big.Int, n int) limb.Limbs {
	out := limb.New(n)
	b := v.Bytes()
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	for i := 0; i < len(b); i++ {
		word := i / 8
		if word >= n {
			break
		}
		out[word] |= uint64(b[i]) << (uint(i%8) * 8)
	}
	return out
}

// bigFromLimbs is the inverse of limbsFromBig, used only to fold a raw
// derived value (e.g. a reduced exponent) back into a *big.Int for a
// further one-time math/big computation.
func bigFromLimbs(l limb.Limbs) *big.Int {
	out := new(big.Int)
	for i := len(l) - 1; i >= 0; i-- {
		out.Lsh(out, 64)
		out.Or(out, new(big.Int).SetUint64(uint64(l[i])))
	}
	return out
}

// newFpConstants derives a *fp.Constants for the field Z/modulusZ from its
// modulus alone: R^2 mod p, R mod p (Montgomery one), and -p[0]^-1 mod
// 2^64 (the CIOS reduction multiplier), following the same derivation
// math/fp's own test fixtures use, generalized into a registry-time helper
// so every curve file below can share it.
func newFpConstants(name string, modulus *big.Int, numLimbs, bitLen int) *fp.Constants {
	modulusLimbs := limbsFromBig(modulus, numLimbs)

	r := new(big.Int).Lsh(big.NewInt(1), uint(numLimbs*64))
	montR2 := new(big.Int).Mod(new(big.Int).Mul(r, r), modulus)
	montOne := new(big.Int).Mod(r, modulus)

	base := new(big.Int).Lsh(big.NewInt(1), 64)
	inv := new(big.Int).ModInverse(new(big.Int).SetUint64(uint64(modulusLimbs[0])), base)
	m0inv := new(big.Int).Mod(new(big.Int).Sub(base, inv), base)

	return &fp.Constants{
		Name:     name,
		NumLimbs: numLimbs,
		Modulus:  modulusLimbs,
		M0Inv:    ct.Word(m0inv.Uint64()),
		MontR2:   limbsFromBig(montR2, numLimbs),
		MontOne:  limbsFromBig(montOne, numLimbs),
		BitLen:   bitLen,
		ByteLen:  (bitLen + 7) / 8,
	}
}

func elementFromBig(c *fp.Constants, v, modulus *big.Int) fp.Element {
	raw := limbsFromBig(new(big.Int).Mod(v, modulus), c.NumLimbs)
	return fp.ToMont(c, raw)
}

// newCrandallFpConstants derives a *fp.Constants for a pseudo-Mersenne
// modulus p = 2^(numLimbs*64) - c (spec section 4.3's "m = N*W" case).
// Fields built this way never enter Montgomery form (fp.ToMont/FromMont
// special-case c.Crandall != nil into the identity), so MontOne is the
// literal raw value 1; MontR2 keeps the R^2 mod p value newFpConstants
// derives, but nothing consults it for these fields.
func newCrandallFpConstants(name string, modulus *big.Int, c ct.Word, numLimbs, bitLen int) *fp.Constants {
	consts := newFpConstants(name, modulus, numLimbs, bitLen)
	one := limb.New(numLimbs)
	one[0] = 1
	consts.MontOne = one
	consts.Crandall = &fp.CrandallParams{C: c}
	return consts
}
