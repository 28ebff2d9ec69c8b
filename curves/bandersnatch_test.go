package curves

import (
	"testing"

	"github.com/mratsim/constantine-sub017/internal/limb"
	"github.com/mratsim/constantine-sub017/math/twistededwards"
)

func TestBandersnatchGeneratorOnCurve(t *testing.T) {
	rec := Get(Bandersnatch)
	gx, gy := BandersnatchGenerator()
	p := twistededwards.FromAffine(gx, gy, rec.TwistedEdwards)
	if !twistededwards.IsOnCurve(p).IsTrue() {
		t.Fatal("bandersnatch generator reported off-curve")
	}
}

func TestBanderwagonDoubleMatchesAdd(t *testing.T) {
	rec := Get(Banderwagon)
	gx, gy := BandersnatchGenerator()
	p := twistededwards.FromAffine(gx, gy, rec.TwistedEdwards)

	doubled := twistededwards.Double(p)
	added := twistededwards.Add(p, p)
	if !twistededwards.Equal(doubled, added).IsTrue() {
		t.Fatal("Double(P) != Add(P,P) for banderwagon")
	}
}

func TestBanderwagonScalarMulByOneAndTwo(t *testing.T) {
	rec := Get(Banderwagon)
	gx, gy := BandersnatchGenerator()
	p := twistededwards.FromAffine(gx, gy, rec.TwistedEdwards)

	one := limb.New(bandersnatchNumLimbs)
	one[0] = 1
	got := twistededwards.ScalarMul(p, one)
	if !twistededwards.Equal(got, p).IsTrue() {
		t.Fatal("ScalarMul(1, G) != G for banderwagon")
	}

	two := limb.New(bandersnatchNumLimbs)
	two[0] = 2
	gotTwo := twistededwards.ScalarMul(p, two)
	if !twistededwards.Equal(gotTwo, twistededwards.Double(p)).IsTrue() {
		t.Fatal("ScalarMul(2, G) != Double(G) for banderwagon")
	}
}

func TestBandersnatchAndBanderwagonShareGenerator(t *testing.T) {
	full := Get(Bandersnatch)
	quotient := Get(Banderwagon)
	if !full.TwistedEdwards.A.Equal(quotient.TwistedEdwards.A).IsTrue() {
		t.Fatal("bandersnatch and banderwagon must share the same curve parameter A")
	}

	gx, gy := BandersnatchGenerator()
	p1 := twistededwards.FromAffine(gx, gy, full.TwistedEdwards)
	p2 := twistededwards.FromAffine(gx, gy, quotient.TwistedEdwards)
	if !twistededwards.IsOnCurve(p1).IsTrue() || !twistededwards.IsOnCurve(p2).IsTrue() {
		t.Fatal("shared generator must lie on both the full and quotient group's curve")
	}
}
