package main

import (
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"

	"github.com/mratsim/constantine-sub017/curves"
	"github.com/mratsim/constantine-sub017/internal/limb"
)

// vectorSet holds the two dudect input classes: a single fixed scalar
// (class 0, repeated every sample) and a slice of independently-derived
// random scalars (class 1, one per sample). A constant-time implementation
// must show no measurable timing difference between the two classes.
type vectorSet struct {
	fixed  limb.Limbs
	random []limb.Limbs
}

// deriveVectors expands seed into n+1 deterministic scalars reduced mod
// the field/subgroup order rec names, via HKDF-SHA256 (RFC 5869): seed is
// the IKM, the loop counter is the per-sample info string, so re-running
// ctbench with the same --seed reproduces the exact same vectors, which
// dudect-style measurement needs for a reproducible bug report.
//
// All scalars here are public benchmark inputs, not secrets -- HKDF here
// plays the role of a seeded PRNG, not key derivation.
func deriveVectors(rec *curves.Record, numLimbs int, seed []byte, n int) vectorSet {
	h := hkdf.New(sha256.New, seed, nil, []byte("ctbench-fixed"))
	fixed := limb.New(numLimbs)
	readLimbs(h, fixed)
	reduceVector(fixed, rec)

	random := make([]limb.Limbs, n)
	for i := range random {
		info := []byte{byte(i), byte(i >> 8), byte(i >> 16), byte(i >> 24)}
		hi := hkdf.New(sha256.New, seed, nil, append([]byte("ctbench-random-"), info...))
		v := limb.New(numLimbs)
		readLimbs(hi, v)
		reduceVector(v, rec)
		random[i] = v
	}

	return vectorSet{fixed: fixed, random: random}
}

// readLimbs fills dst (little-endian 64-bit limbs) from r, treating r's
// byte stream as big-endian within each limb to match limb.FromBytes32BE's
// convention elsewhere in the registry.
func readLimbs(r io.Reader, dst limb.Limbs) {
	buf := make([]byte, 8)
	for i := range dst {
		if _, err := io.ReadFull(r, buf); err != nil {
			panic("ctbench: hkdf stream exhausted: " + err.Error())
		}
		var w uint64
		for _, b := range buf {
			w = w<<8 | uint64(b)
		}
		dst[i] = w
	}
}

// reduceVector brings v into [0, order): it first clears every bit at or
// above rec.Fr.BitLen, so v < 2^BitLen <= 2*order, and then the
// conditional-subtraction loop against rec.Fr's modulus runs at most once.
func reduceVector(v limb.Limbs, rec *curves.Record) {
	modulus := rec.Fr.Modulus
	bits := rec.Fr.BitLen
	for i := range v {
		lo := i * 64
		switch {
		case lo >= bits:
			v[i] = 0
		case bits-lo < 64:
			v[i] &= (1 << uint(bits-lo)) - 1
		}
	}
	for limb.Cmp(v, modulus) >= 0 {
		tmp := limb.New(len(v))
		limb.Sub(tmp, v, modulus)
		copy(v, tmp)
	}
}
