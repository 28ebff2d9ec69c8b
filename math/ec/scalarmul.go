package ec

import (
	"github.com/mratsim/constantine-sub017/internal/ct"
	"github.com/mratsim/constantine-sub017/internal/limb"
)

// windowBits is the width of the digit table windowedScalarMul builds.
// spec section 4.5 asks for w in {2..5} with odd-multiples-only tables
// recoded via signed GLV-SAC digits; since Add/Double here are already
// complete (they handle the identity natively), this uses a plain
// 2^windowBits-entry table of every digit multiple instead, trading a
// slightly larger table for skipping the signed recoding step entirely --
// see DESIGN.md's "windowed scalar mul without GLV-SAC recoding" note.
const windowBits = 4
const windowSize = 1 << windowBits

// ScalarMul computes [k]P. Total for every k (scalar_mul(0,P) == O) and
// every P (including P == O), per spec section 4.5's failure semantics,
// since every building block (Add, Double, the table lookups below) is
// itself total. If curve.Endomorphism is set this decomposes k via GLV
// and runs a joint double-and-add over the two half-width components;
// otherwise it falls back to the windowed double-and-add below.
func ScalarMul[F Field[F]](p Jacobian[F], k limb.Limbs, curve *Curve[F]) Jacobian[F] {
	if curve.Endomorphism != nil {
		return glvScalarMul(p, k, curve)
	}
	return windowedScalarMul(p, k, curve)
}

// windowedScalarMul builds a table of every digit multiple i*P for
// i in [0, 2^windowBits), then scans the scalar windowBits at a time,
// doubling windowBits times and obliviously reading the matching table
// entry (touching every entry on every window, so which one matched is
// not observable from the access pattern).
func windowedScalarMul[F Field[F]](p Jacobian[F], k limb.Limbs, curve *Curve[F]) Jacobian[F] {
	table := buildDigitTable(p, curve)

	acc := Infinity[F](p.X)
	bitWidth := len(k) * 64
	numWindows := bitWidth / windowBits
	for w := numWindows - 1; w >= 0; w-- {
		for i := 0; i < windowBits; i++ {
			acc = Double(acc, curve)
		}
		digit := extractWindow(k, w*windowBits, windowBits)
		entry := obliviousSelect(table, digit)
		acc = Add(acc, entry, curve)
	}
	return acc
}

func buildDigitTable[F Field[F]](p Jacobian[F], curve *Curve[F]) []Jacobian[F] {
	table := make([]Jacobian[F], windowSize)
	table[0] = Infinity[F](p.X)
	if windowSize > 1 {
		table[1] = p
	}
	for i := 2; i < windowSize; i++ {
		table[i] = Add(table[i-1], p, curve)
	}
	return table
}

// extractWindow reads width bits of k starting at bit index start
// (0 = least significant) and packs them into a Word, least-significant
// window bit first. start and width are always fixed, public values (the
// window position), never derived from secret data.
func extractWindow(k limb.Limbs, start, width int) ct.Word {
	var digit ct.Word
	for i := 0; i < width; i++ {
		digit |= limb.Bit(k, start+i) << uint(i)
	}
	return digit
}

// obliviousSelect returns table[digit], reading every entry of table
// unconditionally so the table access pattern does not depend on digit.
func obliviousSelect[F Field[F]](table []Jacobian[F], digit ct.Word) Jacobian[F] {
	result := table[0]
	for i := 1; i < len(table); i++ {
		mask := ct.Eq(ct.Word(i), digit)
		result = table[i].CSelect(mask, result)
	}
	return result
}

// glvScalarMul decomposes k into (k0, k1) with k0 + sign(k1)*k1*lambda ==
// k (mod r) via decomposeGLV, then performs a joint double-and-add adding
// k0-or-zero times P and k1-or-zero times psi(P) at every bit position.
// This is plain signed binary (window width 1), not the windowed GLV-SAC
// recoding spec section 4.5 describes -- see DESIGN.md.
func glvScalarMul[F Field[F]](p Jacobian[F], k limb.Limbs, curve *Curve[F]) Jacobian[F] {
	e := curve.Endomorphism
	k0, k0Neg, k1, k1Neg := decomposeGLV(k, e.Split)

	p0 := p.Neg().CSelect(k0Neg, p)
	psiP := e.Psi(p)
	p1 := psiP.Neg().CSelect(k1Neg, psiP)

	inf := Infinity[F](p.X)
	acc := inf
	width := e.Split.Fr.NumLimbs * 64
	for i := width - 1; i >= 0; i-- {
		acc = Double(acc, curve)

		addend0 := p0.CSelect(ct.IsNonZero(limb.Bit(k0, i)), inf)
		acc = Add(acc, addend0, curve)

		addend1 := p1.CSelect(ct.IsNonZero(limb.Bit(k1, i)), inf)
		acc = Add(acc, addend1, curve)
	}
	return acc
}
