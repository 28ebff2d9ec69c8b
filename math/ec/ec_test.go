package ec

import (
	"math/big"
	"testing"

	"github.com/mratsim/constantine-sub017/internal/ct"
	"github.com/mratsim/constantine-sub017/internal/limb"
	"github.com/mratsim/constantine-sub017/math/fp"
)

// secp256k1 fixture: a=0, b=7, the same curve the teacher's
// secp256k1_curve.go implements over *big.Int. Using the curve's own
// published generator coordinates (read off that file) as a known-good
// point means these tests need no independent point-generation logic.
var (
	testP, _  = new(big.Int).SetString("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f", 16)
	testGx, _ = new(big.Int).SetString("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798", 16)
	testGy, _ = new(big.Int).SetString("483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8", 16)
)

func fromBig(dst limb.Limbs, v *big.Int) {
	b := v.Bytes()
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	for i := range dst {
		dst[i] = 0
	}
	for i := 0; i < len(b); i++ {
		word := i / 8
		shift := uint(i%8) * 8
		if word < len(dst) {
			dst[word] |= uint64(b[i]) << shift
		}
	}
}

func newTestFpConstants() *fp.Constants {
	n := 4
	modulus := limb.New(n)
	fromBig(modulus, testP)

	r := new(big.Int).Lsh(big.NewInt(1), uint(n*64))
	rSquared := new(big.Int).Mod(new(big.Int).Mul(r, r), testP)
	montR2 := limb.New(n)
	fromBig(montR2, rSquared)

	montOneBig := new(big.Int).Mod(r, testP)
	montOne := limb.New(n)
	fromBig(montOne, montOneBig)

	base := new(big.Int).Lsh(big.NewInt(1), 64)
	inv := new(big.Int).ModInverse(new(big.Int).SetUint64(uint64(modulus[0])), base)
	m0inv := new(big.Int).Sub(base, inv)
	m0inv.Mod(m0inv, base)

	return &fp.Constants{
		Name:     "test-secp256k1",
		NumLimbs: n,
		Modulus:  modulus,
		M0Inv:    ct.Word(m0inv.Uint64()),
		MontR2:   montR2,
		MontOne:  montOne,
		BitLen:   256,
		ByteLen:  32,
	}
}

func elementFromBig(c *fp.Constants, v *big.Int) fp.Element {
	raw := limb.New(c.NumLimbs)
	fromBig(raw, new(big.Int).Mod(v, testP))
	return fp.ToMont(c, raw)
}

func testCurve(c *fp.Constants) *Curve[fp.Element] {
	gx := elementFromBig(c, testGx)
	gy := elementFromBig(c, testGy)
	return &Curve[fp.Element]{
		Name:      "test-secp256k1",
		A:         fp.Zero(c),
		B:         elementFromBig(c, big.NewInt(7)),
		Generator: Affine[fp.Element]{X: gx, Y: gy},
	}
}

func TestIsOnCurveGenerator(t *testing.T) {
	c := newTestFpConstants()
	curve := testCurve(c)
	g := FromAffine(curve.Generator)
	if !IsOnCurve(g, curve).IsTrue() {
		t.Fatal("generator reported off-curve")
	}
}

func TestDoubleMatchesAdd(t *testing.T) {
	c := newTestFpConstants()
	curve := testCurve(c)
	g := FromAffine(curve.Generator)

	doubled := Double(g, curve)
	added := Add(g, g, curve)
	if !doubled.Equal(added).IsTrue() {
		t.Fatal("Double(P) != Add(P,P)")
	}
	if !IsOnCurve(doubled, curve).IsTrue() {
		t.Fatal("2*G off curve")
	}
}

func TestIdentityLaws(t *testing.T) {
	c := newTestFpConstants()
	curve := testCurve(c)
	g := FromAffine(curve.Generator)
	inf := Infinity[fp.Element](g.X)

	if !Add(g, inf, curve).Equal(g).IsTrue() {
		t.Fatal("P + O != P")
	}
	if !Add(inf, g, curve).Equal(g).IsTrue() {
		t.Fatal("O + P != P")
	}
	if !Add(g, g.Neg(), curve).IsInfinity().IsTrue() {
		t.Fatal("P + (-P) != O")
	}
	if !Double(inf, curve).IsInfinity().IsTrue() {
		t.Fatal("Double(O) != O")
	}
}

func TestAddCommutative(t *testing.T) {
	c := newTestFpConstants()
	curve := testCurve(c)
	g := FromAffine(curve.Generator)
	twoG := Double(g, curve)

	if !Add(g, twoG, curve).Equal(Add(twoG, g, curve)).IsTrue() {
		t.Fatal("P+Q != Q+P")
	}
}

func TestScalarMulMatchesRepeatedAdd(t *testing.T) {
	c := newTestFpConstants()
	curve := testCurve(c)
	g := FromAffine(curve.Generator)

	k := limb.New(4)
	k[0] = 5
	got := ScalarMul(g, k, curve)

	want := Infinity[fp.Element](g.X)
	for i := 0; i < 5; i++ {
		want = Add(want, g, curve)
	}
	if !got.Equal(want).IsTrue() {
		t.Fatal("ScalarMul(5, G) != G+G+G+G+G")
	}
}

func TestScalarMulZeroIsInfinity(t *testing.T) {
	c := newTestFpConstants()
	curve := testCurve(c)
	g := FromAffine(curve.Generator)

	k := limb.New(4)
	got := ScalarMul(g, k, curve)
	if !got.IsInfinity().IsTrue() {
		t.Fatal("ScalarMul(0, P) != O")
	}

	inf := Infinity[fp.Element](g.X)
	k[0] = 123
	got2 := ScalarMul(inf, k, curve)
	if !got2.IsInfinity().IsTrue() {
		t.Fatal("ScalarMul(k, O) != O")
	}
}

func TestMixedAddMatchesAdd(t *testing.T) {
	c := newTestFpConstants()
	curve := testCurve(c)
	g := FromAffine(curve.Generator)
	twoG := Double(g, curve)

	mixed := MixedAdd(twoG, curve.Generator, curve)
	full := Add(twoG, g, curve)
	if !mixed.Equal(full).IsTrue() {
		t.Fatal("MixedAdd(P, affine(Q)) != Add(P, Q)")
	}
}

func TestBatchAffineMatchesToAffine(t *testing.T) {
	c := newTestFpConstants()
	curve := testCurve(c)
	g := FromAffine(curve.Generator)

	points := []Jacobian[fp.Element]{
		g,
		Double(g, curve),
		Add(g, Double(g, curve), curve),
		Infinity[fp.Element](g.X),
	}
	batch := BatchAffine(points)
	for i, p := range points {
		want := p.ToAffine()
		if !batch[i].X.CEqual(want.X).IsTrue() || !batch[i].Y.CEqual(want.Y).IsTrue() {
			t.Fatalf("BatchAffine[%d] != ToAffine", i)
		}
	}
}

func TestIsOnCurveRejectsBadPoint(t *testing.T) {
	c := newTestFpConstants()
	curve := testCurve(c)
	bad := Affine[fp.Element]{X: elementFromBig(c, big.NewInt(1)), Y: elementFromBig(c, big.NewInt(2))}
	if IsOnCurve(FromAffine(bad), curve).IsTrue() {
		t.Fatal("(1,2) reported on-curve for secp256k1")
	}
}
