package ecc

import "phantom.dev/mp"

// MontgomeryProjective is an XZ-only Montgomery-curve point (By^2 = x^3 +
// A*x^2 + x), used exclusively with the x-only ladder (spec §4.4.1).
// Config.D carries the precomputed (A+2)/4 constant the ladder step
// needs, grounded on the X25519/X448 differential-addition-and-doubling
// step (p256k1 has no Montgomery form to adapt -- secp256k1 is a
// short-Weierstrass curve -- so this is learned from the retrieval
// pack's Curve25519-family references instead).
type MontgomeryProjective struct {
	X, Z     []mp.Word
	Infinity bool
}

func NewMontgomeryProjective(cfg *Config) *MontgomeryProjective {
	x := cfg.NewElement()
	z := cfg.NewElement()
	return &MontgomeryProjective{X: x, Z: z, Infinity: true}
}

func (p *MontgomeryProjective) IsInfinity() bool { return p.Infinity }
func (p *MontgomeryProjective) SetInfinity() {
	p.Infinity = true
	for i := range p.Z {
		p.Z[i] = 0
	}
	if len(p.X) > 0 {
		p.X[0] = 1
		for i := 1; i < len(p.X); i++ {
			p.X[i] = 0
		}
	}
}

// Doubling doubles the receiver in place using the standard Montgomery
// xDBL formula: X' = (X+Z)^2*(X-Z)^2, Z' = 4XZ*((X-Z)^2 + ((A+2)/4)*4XZ).
func (p *MontgomeryProjective) Doubling(cfg *Config) Status {
	sum, diff := cfg.NewElement(), cfg.NewElement()
	cfg.Add(sum, p.X, p.Z)
	cfg.Sub(diff, p.X, p.Z)
	sum2, diff2 := cfg.NewElement(), cfg.NewElement()
	cfg.Sqr(sum2, sum)
	cfg.Sqr(diff2, diff)

	newX := cfg.NewElement()
	cfg.Mul(newX, sum2, diff2)

	t := cfg.NewElement()
	cfg.Sub(t, sum2, diff2) // 4*X*Z

	at := cfg.NewElement()
	cfg.Mul(at, cfg.D, t)
	inner := cfg.NewElement()
	cfg.Add(inner, diff2, at)

	newZ := cfg.NewElement()
	cfg.Mul(newZ, t, inner)

	p.X, p.Z = newX, newZ
	return PointOK
}

func (p *MontgomeryProjective) Negate(cfg *Config) Status {
	// Montgomery XZ coordinates carry no y; negation is only meaningful
	// combined with the affine y recovered separately, so this is a no-op
	// success rather than an error (the x-only ladder never negates).
	return PointOK
}

// Addition is not used by the x-only ladder (LadderStep replaces it); kept
// as notSupported so Engine's non-ladder algorithms fail loudly if misused
// against a Montgomery point.
func (p *MontgomeryProjective) Addition(cfg *Config, other Point) Status {
	return notSupported()
}

// LadderStep implements the combined differential add-and-double step
// (xDBLADD): p (R0) becomes 2*R0, other (R1) becomes R0+R1, using base's
// X coordinate as the fixed difference X(R1-R0) the x-only ladder relies
// on throughout.
func (p *MontgomeryProjective) LadderStep(cfg *Config, other Point, base Point) Status {
	r1, ok := other.(*MontgomeryProjective)
	if !ok {
		return notSupported()
	}
	xBase, ok := base.(*MontgomeryProjective)
	if !ok {
		return notSupported()
	}

	sum0, diff0 := cfg.NewElement(), cfg.NewElement()
	cfg.Add(sum0, p.X, p.Z)
	cfg.Sub(diff0, p.X, p.Z)
	sum1, diff1 := cfg.NewElement(), cfg.NewElement()
	cfg.Add(sum1, r1.X, r1.Z)
	cfg.Sub(diff1, r1.X, r1.Z)

	da, cb := cfg.NewElement(), cfg.NewElement()
	cfg.Mul(da, diff0, sum1)
	cfg.Mul(cb, sum0, diff1)

	addDaCb, subDaCb := cfg.NewElement(), cfg.NewElement()
	cfg.Add(addDaCb, da, cb)
	cfg.Sub(subDaCb, da, cb)

	newX1, newZ1 := cfg.NewElement(), cfg.NewElement()
	cfg.Sqr(newX1, addDaCb)
	cfg.Sqr(newZ1, subDaCb)
	cfg.Mul(newZ1, newZ1, xBase.X)

	sum0sq, diff0sq := cfg.NewElement(), cfg.NewElement()
	cfg.Sqr(sum0sq, sum0)
	cfg.Sqr(diff0sq, diff0)

	newX0 := cfg.NewElement()
	cfg.Mul(newX0, sum0sq, diff0sq)

	t := cfg.NewElement()
	cfg.Sub(t, sum0sq, diff0sq)
	at := cfg.NewElement()
	cfg.Mul(at, cfg.D, t)
	inner := cfg.NewElement()
	cfg.Add(inner, diff0sq, at)
	newZ0 := cfg.NewElement()
	cfg.Mul(newZ0, t, inner)

	p.X, p.Z = newX0, newZ0
	r1.X, r1.Z = newX1, newZ1
	p.Infinity = cfg.IsZero(p.Z)
	r1.Infinity = cfg.IsZero(r1.Z)
	return PointOK
}

func (p *MontgomeryProjective) YRecovery(cfg *Config, x []mp.Word, yOdd bool) Status {
	return notSupported()
}

func (p *MontgomeryProjective) ConvertFrom(cfg *Config, other Point) Status {
	o, ok := other.(*MontgomeryProjective)
	if !ok {
		return notSupported()
	}
	p.X = append([]mp.Word{}, o.X...)
	p.Z = append([]mp.Word{}, o.Z...)
	p.Infinity = o.Infinity
	return PointOK
}

// ConvertToMixed normalizes Z to 1 (affine x-coordinate only).
func (p *MontgomeryProjective) ConvertToMixed(cfg *Config) Point {
	out := NewMontgomeryProjective(cfg)
	if p.Infinity || cfg.IsZero(p.Z) {
		out.Infinity = true
		return out
	}
	zInv := cfg.NewElement()
	cfg.Inverse(zInv, p.Z)
	cfg.Mul(out.X, p.X, zInv)
	out.Z[0] = 1
	out.Infinity = false
	return out
}

func (p *MontgomeryProjective) Copy() Point {
	return &MontgomeryProjective{X: append([]mp.Word{}, p.X...), Z: append([]mp.Word{}, p.Z...), Infinity: p.Infinity}
}
