package limb

import (
	"math/big"
	"math/rand"
	"testing"
)

func TestMulAgainstBigInt(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	for i := 0; i < 300; i++ {
		a := randLimbs(r, testWidth)
		b := randLimbs(r, testWidth)

		r2 := New(2 * testWidth)
		Mul(r2, a, b)

		want := new(big.Int).Mul(toBig(a), toBig(b))
		if toBig(r2).Cmp(want) != 0 {
			t.Fatalf("Mul(%x,%x) = %x, want %x", toBig(a), toBig(b), toBig(r2), want)
		}
	}
}

func TestSquareAgainstBigInt(t *testing.T) {
	r := rand.New(rand.NewSource(100))
	for i := 0; i < 300; i++ {
		a := randLimbs(r, testWidth)

		sq := New(2 * testWidth)
		Square(sq, a)

		want := new(big.Int).Mul(toBig(a), toBig(a))
		if toBig(sq).Cmp(want) != 0 {
			t.Fatalf("Square(%x) = %x, want %x", toBig(a), toBig(sq), want)
		}
	}
}

func TestSquareMatchesMul(t *testing.T) {
	r := rand.New(rand.NewSource(101))
	for i := 0; i < 300; i++ {
		a := randLimbs(r, testWidth)

		sq := New(2 * testWidth)
		Square(sq, a)

		mul := New(2 * testWidth)
		Mul(mul, a, a)

		if toBig(sq).Cmp(toBig(mul)) != 0 {
			t.Fatalf("Square/Mul mismatch for %x: square=%x mul=%x", toBig(a), toBig(sq), toBig(mul))
		}
	}
}

func TestMulWord(t *testing.T) {
	r := rand.New(rand.NewSource(102))
	for i := 0; i < 300; i++ {
		a := randLimbs(r, testWidth)
		w := r.Uint64()

		out := New(testWidth)
		carry := MulWord(out, a, w)

		want := new(big.Int).Mul(toBig(a), new(big.Int).SetUint64(w))
		mod := new(big.Int).Lsh(big.NewInt(1), uint(testWidth*64))
		wantCarry := new(big.Int).Rsh(want, uint(testWidth*64))
		wantLow := new(big.Int).Mod(want, mod)

		if toBig(out).Cmp(wantLow) != 0 {
			t.Fatalf("MulWord low = %x, want %x", toBig(out), wantLow)
		}
		if new(big.Int).SetUint64(uint64(carry)).Cmp(wantCarry) != 0 {
			t.Fatalf("MulWord carry = %d, want %s", carry, wantCarry.String())
		}
	}
}
