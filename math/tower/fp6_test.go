package tower

import (
	"math/rand"
	"testing"
)

func TestFp6AddSubNeg(t *testing.T) {
	c := testFp6Constants()
	r := rand.New(rand.NewSource(10))
	for i := 0; i < 100; i++ {
		a := randFp6(c, r)
		b := randFp6(c, r)
		if !Fp6Sub(Fp6Add(a, b), b).Equal(a) {
			t.Fatal("(a+b)-b != a")
		}
		if !Fp6Add(a, Fp6Neg(a)).IsZero() {
			t.Fatal("a + (-a) != 0")
		}
	}
}

func TestFp6SquareMatchesMul(t *testing.T) {
	c := testFp6Constants()
	r := rand.New(rand.NewSource(11))
	for i := 0; i < 100; i++ {
		a := randFp6(c, r)
		if !Fp6Square(a).Equal(Fp6Mul(a, a)) {
			t.Fatal("Fp6Square(a) != Fp6Mul(a,a)")
		}
	}
}

func TestFp6MulAssociative(t *testing.T) {
	c := testFp6Constants()
	r := rand.New(rand.NewSource(12))
	for i := 0; i < 100; i++ {
		a := randFp6(c, r)
		b := randFp6(c, r)
		d := randFp6(c, r)
		if !Fp6Mul(Fp6Mul(a, b), d).Equal(Fp6Mul(a, Fp6Mul(b, d))) {
			t.Fatal("Fp6 multiplication not associative")
		}
	}
}

func TestFp6Inv(t *testing.T) {
	c := testFp6Constants()
	r := rand.New(rand.NewSource(13))
	one := Fp6One(c)
	for i := 0; i < 100; i++ {
		a := randFp6(c, r)
		if a.IsZero() {
			continue
		}
		if !Fp6Mul(a, Fp6Inv(a)).Equal(one) {
			t.Fatal("a * a^-1 != 1")
		}
	}
}

func TestFp6MulByVConsistency(t *testing.T) {
	c := testFp6Constants()
	r := rand.New(rand.NewSource(14))
	v := Fp6{C0: Fp2Zero(c.Base), C1: Fp2One(c.Base), C2: Fp2Zero(c.Base), C: c}
	for i := 0; i < 50; i++ {
		a := randFp6(c, r)
		if !Fp6MulByV(a).Equal(Fp6Mul(a, v)) {
			t.Fatal("Fp6MulByV(a) != a * v")
		}
	}
}

func TestFp6MulBy01MatchesFullMul(t *testing.T) {
	c := testFp6Constants()
	r := rand.New(rand.NewSource(15))
	for i := 0; i < 100; i++ {
		a := randFp6(c, r)
		b0 := randFp2(c.Base, r)
		b1 := randFp2(c.Base, r)
		full := Fp6{C0: b0, C1: b1, C2: Fp2Zero(c.Base), C: c}

		if !Fp6MulBy01(a, b0, b1).Equal(Fp6Mul(a, full)) {
			t.Fatal("Fp6MulBy01 != Fp6Mul with c2=0")
		}
	}
}
