//go:build blst

package curves

import (
	"math/big"

	blst "github.com/supranational/blst/bindings/go"
)

// This file is only compiled with `-tags blst`: blst ships cgo-wrapped
// assembly, so it is kept behind a build tag rather than an unconditional
// import, mirroring the teacher's pattern of gating optional accelerated
// backends behind a build tag rather than making them a hard dependency
// of the default build.

// BLS12381ScalarMulBlst computes [k]G1Generator using blst's assembly
// implementation, for differential testing against this package's own
// constant-time math/ec path (see TestBLS12381CrosscheckBlst).
func BLS12381ScalarMulBlst(k *big.Int) (x, y *big.Int) {
	var scalar blst.Scalar
	scalar.FromBEndian(leftPad(k.Bytes(), 32))

	p := blst.P1Generator().Mult(&scalar)
	aff := p.ToAffine()

	return new(big.Int).SetBytes(aff.X().Bytes()), new(big.Int).SetBytes(aff.Y().Bytes())
}

func leftPad(b []byte, n int) []byte {
	if len(b) >= n {
		return b
	}
	out := make([]byte, n)
	copy(out[n-len(b):], b)
	return out
}
