package tower

import (
	"math/big"
	"math/rand"

	"github.com/mratsim/constantine-sub017/internal/ct"
	"github.com/mratsim/constantine-sub017/internal/limb"
	"github.com/mratsim/constantine-sub017/math/fp"
)

// secp256k1's prime again, same fixture math/fp's own tests use: 3-mod-4,
// small enough to keep tower tests fast without needing the (not yet
// built) curve registry.
var testModulusBig, _ = new(big.Int).SetString(
	"fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f", 16)

func fromBig(dst limb.Limbs, v *big.Int) {
	bz := v.Bytes()
	buf := make([]byte, len(dst)*8)
	copy(buf[len(buf)-len(bz):], bz)
	for i := range dst {
		var w uint64
		for b := 0; b < 8; b++ {
			w |= uint64(buf[len(buf)-1-(i*8+b)]) << (8 * b)
		}
		dst[i] = w
	}
}

func testFpConstants() *fp.Constants {
	n := 4
	modulus := limb.New(n)
	fromBig(modulus, testModulusBig)

	r := new(big.Int).Lsh(big.NewInt(1), uint(n*64))
	montR2Big := new(big.Int).Mod(new(big.Int).Mul(r, r), testModulusBig)
	montR2 := limb.New(n)
	fromBig(montR2, montR2Big)

	montOneBig := new(big.Int).Mod(r, testModulusBig)
	montOne := limb.New(n)
	fromBig(montOne, montOneBig)

	base := new(big.Int).Lsh(big.NewInt(1), 64)
	inv := new(big.Int).ModInverse(new(big.Int).SetUint64(uint64(modulus[0])), base)
	m0inv := new(big.Int).Mod(new(big.Int).Sub(base, inv), base)

	return &fp.Constants{
		Name:     "test-secp256k1-prime",
		NumLimbs: n,
		Modulus:  modulus,
		M0Inv:    ct.Word(m0inv.Uint64()),
		MontR2:   montR2,
		MontOne:  montOne,
		BitLen:   testModulusBig.BitLen(),
		ByteLen:  32,
	}
}

func fpFromInt64(c *fp.Constants, v int64) fp.Element {
	raw := limb.New(c.NumLimbs)
	bv := big.NewInt(v)
	bv.Mod(bv, testModulusBig)
	fromBig(raw, bv)
	return fp.ToMont(c, raw)
}

func randFp(c *fp.Constants, r *rand.Rand) fp.Element {
	buf := make([]byte, 32)
	r.Read(buf)
	v := new(big.Int).SetBytes(buf)
	v.Mod(v, testModulusBig)
	raw := limb.New(c.NumLimbs)
	fromBig(raw, v)
	return fp.ToMont(c, raw)
}

func testFp2Constants() *Fp2Constants {
	c := testFpConstants()
	beta := fpFromInt64(c, -1) // i^2 = -1, a valid non-residue since p == 3 mod 4
	return &Fp2Constants{Base: c, Beta: beta}
}

func randFp2(c *Fp2Constants, r *rand.Rand) Fp2 {
	return Fp2{A0: randFp(c.Base, r), A1: randFp(c.Base, r), C: c}
}

func testFp6Constants() *Fp6Constants {
	c2 := testFp2Constants()
	xi := Fp2{A0: fpFromInt64(c2.Base, 9), A1: fpFromInt64(c2.Base, 1), C: c2}
	return &Fp6Constants{Base: c2, Xi: xi}
}

func randFp6(c *Fp6Constants, r *rand.Rand) Fp6 {
	return Fp6{C0: randFp2(c.Base, r), C1: randFp2(c.Base, r), C2: randFp2(c.Base, r), C: c}
}

func testFp12Constants() *Fp12Constants {
	return &Fp12Constants{Base: testFp6Constants()}
}

func randFp12(c *Fp12Constants, r *rand.Rand) Fp12 {
	return Fp12{C0: randFp6(c.Base, r), C1: randFp6(c.Base, r), C: c}
}
