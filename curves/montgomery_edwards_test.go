package curves

import (
	"math/big"
	"testing"

	"phantom.dev/ecc"
	"phantom.dev/mp"
)

func checkEdwardsOnCurve(t *testing.T, name string, p *Param) {
	t.Helper()
	c := p.Cfg
	x2, y2 := c.NewElement(), c.NewElement()
	c.Sqr(x2, p.Gx)
	c.Sqr(y2, p.Gy)

	ax2 := c.NewElement()
	c.Mul(ax2, c.A, x2)
	lhs := c.NewElement()
	c.Add(lhs, ax2, y2)

	x2y2 := c.NewElement()
	c.Mul(x2y2, x2, y2)
	rhs := c.NewElement()
	c.Mul(rhs, c.D, x2y2)
	one := c.NewElement()
	one[0] = 1
	c.Add(rhs, rhs, one)

	if !c.Equal(lhs, rhs) {
		t.Fatalf("%s: G does not satisfy a*x^2+y^2 = 1+d*x^2*y^2", name)
	}
}

func TestEdwards25519GeneratorOnCurve(t *testing.T) {
	checkEdwardsOnCurve(t, "edwards25519", Edwards25519())
}

func TestEdwards448GeneratorOnCurve(t *testing.T) {
	checkEdwardsOnCurve(t, "edwards448", Edwards448())
}

func TestCurve25519ByteLenAndBasePoint(t *testing.T) {
	p := Curve25519()
	if p.ByteLen != 32 || p.Bits != 255 {
		t.Fatalf("curve25519: ByteLen=%d Bits=%d, want 32/255", p.ByteLen, p.Bits)
	}
	if p.Gx[0] != 9 {
		t.Fatalf("curve25519: Gx low word = %d, want 9 (u=9)", p.Gx[0])
	}
}

func TestCurve448ByteLenAndBasePoint(t *testing.T) {
	p := Curve448()
	if p.ByteLen != 56 || p.Bits != 448 {
		t.Fatalf("curve448: ByteLen=%d Bits=%d, want 56/448", p.ByteLen, p.Bits)
	}
	if p.Gx[0] != 5 {
		t.Fatalf("curve448: Gx low word = %d, want 5", p.Gx[0])
	}
}

// TestCurve25519LadderK10 reproduces the literal k=10 Montgomery-ladder
// scenario against u=9: raw ScalarPointMul, with no RFC 7748 scalar clamp
// applied, since the scenario names an exact scalar rather than a clamped
// random one.
func TestCurve25519LadderK10(t *testing.T) {
	p := Curve25519()
	base := ecc.NewMontgomeryProjective(p.Cfg)
	copy(base.X, p.Gx)
	base.Z[0] = 1
	base.Infinity = false

	eng := ecc.NewEngine[*ecc.MontgomeryProjective](p.Cfg, ecc.MontLadderRecoder{})
	if st := eng.Setup(base); st != ecc.PointOK {
		t.Fatalf("Setup status = %v", st)
	}
	k := make([]mp.Word, p.Cfg.Limbs())
	k[0] = 10
	zero := ecc.NewMontgomeryProjective(p.Cfg)
	result, st := eng.ScalarPointMul(k, p.Bits, zero)
	if st != ecc.PointOK {
		t.Fatalf("ScalarPointMul status = %v", st)
	}
	mixed := result.ConvertToMixed(p.Cfg).(*ecc.MontgomeryProjective)
	if mixed.Infinity {
		t.Fatal("10*G unexpectedly at infinity")
	}

	got := limbsToBig(mixed.X)
	want, ok := new(big.Int).SetString("41eda655b159060471fb4ce5d7cb3fe43ee51843d2080e0383ce42892c3a9c7b", 16)
	if !ok {
		t.Fatal("bad hex constant")
	}
	if got.Cmp(want) != 0 {
		t.Fatalf("10*G u-coordinate = %x, want %x", got, want)
	}
}

// TestEdwards448KnownMultiple reproduces the literal
// k=315879992934921009807084090 scalar-multiplication scenario against
// Edwards448's standard (RFC 8032 Goldilocks) base point.
func TestEdwards448KnownMultiple(t *testing.T) {
	p := Edwards448()
	k256, err := ParseDecimal256("315879992934921009807084090")
	if err != nil {
		t.Fatalf("ParseDecimal256: %v", err)
	}
	k := make([]mp.Word, p.Cfg.Limbs())
	copy(k, k256)

	g := ecc.NewEdwardsProjective(p.Cfg)
	gAff := &ecc.EdwardsAffine{X: p.Gx, Y: p.Gy}
	g.ConvertFrom(p.Cfg, gAff)

	eng := ecc.NewEngine[*ecc.EdwardsProjective](p.Cfg, ecc.NAFwRecoder{W: 4})
	if st := eng.Setup(g); st != ecc.PointOK {
		t.Fatalf("Setup status = %v", st)
	}
	zero := ecc.NewEdwardsProjective(p.Cfg)
	result, st := eng.ScalarPointMul(k, p.Bits, zero)
	if st != ecc.PointOK {
		t.Fatalf("ScalarPointMul status = %v", st)
	}
	aff := result.ConvertToMixed(p.Cfg).(*ecc.EdwardsAffine)

	wantX, _ := new(big.Int).SetString("c1ed0c5162d9465f43f22b73801fef0d858f1458706fda34958bc15987317f420a78927e2860414c35f93fcc3a797472c28734c7f68a5363", 16)
	wantY, _ := new(big.Int).SetString("158f2d5aac19a3680075adcd14be18266d5c3b7a02b2968bb2efd07e718ff019c2890f7e376467e459a288a36558e0cdf8eb4dde33122620", 16)
	if limbsToBig(aff.X).Cmp(wantX) != 0 {
		t.Fatalf("k*G x = %x, want %x", limbsToBig(aff.X), wantX)
	}
	if limbsToBig(aff.Y).Cmp(wantY) != 0 {
		t.Fatalf("k*G y = %x, want %x", limbsToBig(aff.Y), wantY)
	}
}

func TestMontgomeryCurveSingletonsAreCached(t *testing.T) {
	if Curve25519() != Curve25519() {
		t.Fatal("Curve25519() is not cached")
	}
	if Edwards448() != Edwards448() {
		t.Fatal("Edwards448() is not cached")
	}
}
