package limb

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/mratsim/constantine-sub017/internal/ct"
)

const testWidth = 4 // 256 bits

func randLimbs(r *rand.Rand, n int) Limbs {
	l := New(n)
	for i := range l {
		l[i] = r.Uint64()
	}
	return l
}

func toBig(a Limbs) *big.Int {
	n := new(big.Int)
	for i := len(a) - 1; i >= 0; i-- {
		n.Lsh(n, 64)
		n.Or(n, new(big.Int).SetUint64(a[i]))
	}
	return n
}

func fromBig(n *big.Int, width int) Limbs {
	l := New(width)
	m := new(big.Int).Set(n)
	mask := new(big.Int).SetUint64(^uint64(0))
	for i := 0; i < width; i++ {
		w := new(big.Int).And(m, mask)
		l[i] = w.Uint64()
		m.Rsh(m, 64)
	}
	return l
}

func TestAddSubAgainstBigInt(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		a := randLimbs(r, testWidth)
		b := randLimbs(r, testWidth)

		sum := New(testWidth)
		carry := Add(sum, a, b)

		want := new(big.Int).Add(toBig(a), toBig(b))
		wantCarry := uint64(0)
		mod := new(big.Int).Lsh(big.NewInt(1), uint(testWidth*64))
		if want.Cmp(mod) >= 0 {
			wantCarry = 1
			want.Mod(want, mod)
		}
		if toBig(sum).Cmp(want) != 0 || carry != ct.Word(wantCarry) {
			t.Fatalf("Add mismatch: got sum=%x carry=%d, want sum=%x carry=%d",
				toBig(sum), carry, want, wantCarry)
		}

		diff := New(testWidth)
		borrow := Sub(diff, a, b)
		wantDiff := new(big.Int).Sub(toBig(a), toBig(b))
		wantBorrow := uint64(0)
		if wantDiff.Sign() < 0 {
			wantBorrow = 1
			wantDiff.Add(wantDiff, mod)
		}
		if toBig(diff).Cmp(wantDiff) != 0 || borrow != ct.Word(wantBorrow) {
			t.Fatalf("Sub mismatch: got diff=%x borrow=%d, want diff=%x borrow=%d",
				toBig(diff), borrow, wantDiff, wantBorrow)
		}
	}
}

func TestCmp(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		a := randLimbs(r, testWidth)
		b := randLimbs(r, testWidth)
		got := Cmp(a, b)
		want := toBig(a).Cmp(toBig(b))
		if got != want {
			t.Fatalf("Cmp(%x,%x) = %d, want %d", toBig(a), toBig(b), got, want)
		}
	}
	a := randLimbs(r, testWidth)
	if Cmp(a, a) != 0 {
		t.Fatal("Cmp(a,a) should be 0")
	}
}

func TestCAddCSub(t *testing.T) {
	a := fromBig(big.NewInt(10), testWidth)
	b := fromBig(big.NewInt(5), testWidth)

	r := New(testWidth)
	CAdd(r, a, b, ct.False)
	if toBig(r).Int64() != 10 {
		t.Fatalf("CAdd(false) = %d, want 10", toBig(r))
	}
	CAdd(r, a, b, ct.True)
	if toBig(r).Int64() != 15 {
		t.Fatalf("CAdd(true) = %d, want 15", toBig(r))
	}

	CSub(r, a, b, ct.False)
	if toBig(r).Int64() != 10 {
		t.Fatalf("CSub(false) = %d, want 10", toBig(r))
	}
	CSub(r, a, b, ct.True)
	if toBig(r).Int64() != 5 {
		t.Fatalf("CSub(true) = %d, want 5", toBig(r))
	}
}

func TestCSwapCCopy(t *testing.T) {
	a := fromBig(big.NewInt(1), testWidth)
	b := fromBig(big.NewInt(2), testWidth)

	CSwap(ct.False, a, b)
	if toBig(a).Int64() != 1 || toBig(b).Int64() != 2 {
		t.Fatal("CSwap(false) should not swap")
	}
	CSwap(ct.True, a, b)
	if toBig(a).Int64() != 2 || toBig(b).Int64() != 1 {
		t.Fatal("CSwap(true) should swap")
	}

	dst := fromBig(big.NewInt(100), testWidth)
	src := fromBig(big.NewInt(200), testWidth)
	CCopy(ct.False, dst, src)
	if toBig(dst).Int64() != 100 {
		t.Fatal("CCopy(false) should not copy")
	}
	CCopy(ct.True, dst, src)
	if toBig(dst).Int64() != 200 {
		t.Fatal("CCopy(true) should copy")
	}
}

func TestShifts(t *testing.T) {
	a := fromBig(big.NewInt(1), testWidth)
	ShiftLeft1(a)
	if toBig(a).Int64() != 2 {
		t.Fatalf("ShiftLeft1(1) = %d, want 2", toBig(a))
	}
	ShiftRight1(a)
	if toBig(a).Int64() != 1 {
		t.Fatalf("ShiftRight1(2) = %d, want 1", toBig(a))
	}
}

func TestIsZeroEq(t *testing.T) {
	z := New(testWidth)
	if !IsZero(z).IsTrue() {
		t.Fatal("IsZero(zero) should be true")
	}
	a := fromBig(big.NewInt(7), testWidth)
	if IsZero(a).IsTrue() {
		t.Fatal("IsZero(7) should be false")
	}
	b := fromBig(big.NewInt(7), testWidth)
	if !Eq(a, b).IsTrue() {
		t.Fatal("Eq(7,7) should be true")
	}
}
