package curves

import "testing"

// checkOnCurve verifies y^2 == x^3+a*x+b (mod p) using the curve's own
// Config arithmetic, exercising Config.Mul/Sqr/Add across each curve's real
// limb width rather than the small single-limb fixtures the ecc package's
// own tests use.
func checkOnCurve(t *testing.T, name string, p *Param) {
	t.Helper()
	c := p.Cfg
	lhs := c.NewElement()
	c.Sqr(lhs, p.Gy)

	x3 := c.NewElement()
	c.Sqr(x3, p.Gx)
	c.Mul(x3, x3, p.Gx)

	ax := c.NewElement()
	c.Mul(ax, c.A, p.Gx)

	rhs := c.NewElement()
	c.Add(rhs, x3, ax)
	c.Add(rhs, rhs, c.B)

	if !c.Equal(lhs, rhs) {
		t.Fatalf("%s: G does not satisfy y^2 = x^3+ax+b", name)
	}
}

func TestR1GeneratorsOnCurve(t *testing.T) {
	checkOnCurve(t, "secp192r1", SECP192R1())
	checkOnCurve(t, "secp224r1", SECP224R1())
	checkOnCurve(t, "secp256r1", SECP256R1())
	checkOnCurve(t, "secp384r1", SECP384R1())
	checkOnCurve(t, "secp521r1", SECP521R1())
}

func TestK1GeneratorOnCurve(t *testing.T) {
	checkOnCurve(t, "secp256k1", SECP256K1())
}

func TestSingletonsAreCached(t *testing.T) {
	if SECP256R1() != SECP256R1() {
		t.Fatal("SECP256R1() should return the same cached *Param across calls")
	}
	if SECP256K1() != SECP256K1() {
		t.Fatal("SECP256K1() should return the same cached *Param across calls")
	}
}

func TestParamFieldWidths(t *testing.T) {
	cases := []struct {
		p       *Param
		byteLen int
	}{
		{SECP192R1(), 24},
		{SECP224R1(), 28},
		{SECP256R1(), 32},
		{SECP384R1(), 48},
		{SECP521R1(), 66},
	}
	for _, c := range cases {
		if c.p.ByteLen != c.byteLen {
			t.Fatalf("%s: ByteLen = %d, want %d", c.p.Name, c.p.ByteLen, c.byteLen)
		}
	}
}
