package ecc

import "phantom.dev/mp"

// WeierstrassPrimeAffine is a short-Weierstrass point y^2 = x^3 + a*x + b
// over a prime field in affine coordinates, grounded directly on
// p256k1's GroupElementAffine (group.go): setXY/setXOVar/negate/equal
// generalised from the fixed secp256k1 curve (a=0, b=7) to an arbitrary
// (a, b) pair carried in Config.
type WeierstrassPrimeAffine struct {
	X, Y     []mp.Word
	Infinity bool
}

// NewWeierstrassPrimeAffine returns the point at infinity sized to cfg.
func NewWeierstrassPrimeAffine(cfg *Config) *WeierstrassPrimeAffine {
	return &WeierstrassPrimeAffine{X: cfg.NewElement(), Y: cfg.NewElement(), Infinity: true}
}

func (p *WeierstrassPrimeAffine) IsInfinity() bool { return p.Infinity }

func (p *WeierstrassPrimeAffine) SetInfinity() {
	p.Infinity = true
}

// Doubling is not meaningful in affine coordinates for this point type
// (p256k1's GroupElementAffine has no double of its own either --
// only Jacobian does); callers needing a doubled affine point go through
// WeierstrassPrimeJacobian and ConvertToMixed.
func (p *WeierstrassPrimeAffine) Doubling(cfg *Config) Status { return notSupported() }

func (p *WeierstrassPrimeAffine) Addition(cfg *Config, other Point) Status {
	return notSupported()
}

func (p *WeierstrassPrimeAffine) Negate(cfg *Config) Status {
	if p.Infinity {
		return PointAtInfinity
	}
	cfg.Neg(p.Y, p.Y)
	return PointOK
}

func (p *WeierstrassPrimeAffine) LadderStep(cfg *Config, other, base Point) Status {
	return notSupported()
}

// YRecovery reconstructs y from x and the requested oddness, solving
// y^2 = x^3 + a*x + b (group.go's setXOVar, generalised off b=7 to the
// curve's own (a, b)).
func (p *WeierstrassPrimeAffine) YRecovery(cfg *Config, x []mp.Word, yOdd bool) Status {
	k := cfg.Limbs()
	x2, x3, ax, rhs := cfg.NewElement(), cfg.NewElement(), cfg.NewElement(), cfg.NewElement()
	cfg.Sqr(x2, x)
	cfg.Mul(x3, x2, x)
	cfg.Mul(ax, cfg.A, x)
	cfg.Add(rhs, x3, ax)
	cfg.Add(rhs, rhs, cfg.B)

	y := cfg.NewElement()
	if !cfg.Sqrt(y, rhs) {
		return PointError
	}
	if (y[0]&1 == 1) != yOdd {
		cfg.Neg(y, y)
	}
	p.X = append([]mp.Word{}, x[:k]...)
	p.Y = y
	p.Infinity = false
	return PointOK
}

// ConvertFrom sets p from another point, supporting the Jacobian -> affine
// direction (group.go's setGEJ, via Config.Inverse rather than
// p256k1's per-prime field inverse).
func (p *WeierstrassPrimeAffine) ConvertFrom(cfg *Config, other Point) Status {
	switch o := other.(type) {
	case *WeierstrassPrimeJacobian:
		if o.Infinity {
			p.SetInfinity()
			return PointOK
		}
		zInv := cfg.NewElement()
		cfg.Inverse(zInv, o.Z)
		z2 := cfg.NewElement()
		cfg.Sqr(z2, zInv)
		z3 := cfg.NewElement()
		cfg.Mul(z3, z2, zInv)
		p.X = cfg.NewElement()
		p.Y = cfg.NewElement()
		cfg.Mul(p.X, o.X, z2)
		cfg.Mul(p.Y, o.Y, z3)
		p.Infinity = false
		return PointOK
	case *WeierstrassPrimeAffine:
		p.X = append([]mp.Word{}, o.X...)
		p.Y = append([]mp.Word{}, o.Y...)
		p.Infinity = o.Infinity
		return PointOK
	default:
		return notSupported()
	}
}

func (p *WeierstrassPrimeAffine) ConvertToMixed(cfg *Config) Point {
	return p.Copy()
}

func (p *WeierstrassPrimeAffine) Copy() Point {
	return &WeierstrassPrimeAffine{
		X: append([]mp.Word{}, p.X...), Y: append([]mp.Word{}, p.Y...), Infinity: p.Infinity,
	}
}

// WeierstrassPrimeJacobian is a short-Weierstrass point in Jacobian
// coordinates (X, Y, Z) with affine (X/Z^2, Y/Z^3), grounded directly on
// p256k1's GroupElementJacobian.double/addVar/addGE (group.go): p256k1's
// own a=0 shape when Config.AIsZero, and the general-a Jacobian doubling
// otherwise. Config.AIsMinus3 selects no separate path; a=-3 curves use
// the general-a Jacobian formulas, not the Bernstein-Lange complete
// formulas.
type WeierstrassPrimeJacobian struct {
	X, Y, Z  []mp.Word
	Infinity bool
}

func NewWeierstrassPrimeJacobian(cfg *Config) *WeierstrassPrimeJacobian {
	z := cfg.NewElement()
	z[0] = 0
	y := cfg.NewElement()
	y[0] = 1
	return &WeierstrassPrimeJacobian{X: cfg.NewElement(), Y: y, Z: z, Infinity: true}
}

func (p *WeierstrassPrimeJacobian) IsInfinity() bool { return p.Infinity }

func (p *WeierstrassPrimeJacobian) SetInfinity() {
	p.Infinity = true
}

// Doubling implements group.go's GroupElementJacobian.double exactly for
// a==0 curves (secp256k1's own shape, L = 3/2*X1^2) and the general a!=0
// formula (L = (3*X1^2 + a*Z1^4)/2) otherwise, both folding through the
// same "L, S, T" naming group.go uses.
func (p *WeierstrassPrimeJacobian) Doubling(cfg *Config) Status {
	if p.Infinity {
		return PointAtInfinity
	}

	lEl, sEl := cfg.NewElement(), cfg.NewElement()

	// S = Y1^2
	cfg.Sqr(sEl, p.Y)

	if cfg.AIsZero {
		// L = 3/2 * X1^2 (p256k1's secp256k1 shape, a=0)
		cfg.Sqr(lEl, p.X)
		cfg.MulSmall(lEl, lEl, 3)
		cfg.Half(lEl, lEl)
	} else {
		// L = (3*X1^2 + a*Z1^4) / 2
		x2 := cfg.NewElement()
		cfg.Sqr(x2, p.X)
		cfg.MulSmall(x2, x2, 3)
		z2 := cfg.NewElement()
		cfg.Sqr(z2, p.Z)
		z4 := cfg.NewElement()
		cfg.Sqr(z4, z2)
		az4 := cfg.NewElement()
		cfg.Mul(az4, cfg.A, z4)
		cfg.Add(lEl, x2, az4)
		cfg.Half(lEl, lEl)
	}

	// Z3 = Y1*Z1
	newZ := cfg.NewElement()
	cfg.Mul(newZ, p.Y, p.Z)

	// T = -X1*S
	tEl2 := cfg.NewElement()
	cfg.Neg(tEl2, sEl)
	cfg.Mul(tEl2, tEl2, p.X)

	// X3 = L^2 + 2*T
	newX := cfg.NewElement()
	cfg.Sqr(newX, lEl)
	cfg.Add(newX, newX, tEl2)
	cfg.Add(newX, newX, tEl2)

	// S' = S^2
	cfg.Sqr(sEl, sEl)

	// T' = X3 + T
	cfg.Add(tEl2, tEl2, newX)

	// Y3 = -(L*(X3+T) + S^2)
	newY := cfg.NewElement()
	cfg.Mul(newY, tEl2, lEl)
	cfg.Add(newY, newY, sEl)
	cfg.Neg(newY, newY)

	p.X, p.Y, p.Z = newX, newY, newZ
	return PointOK
}

// Addition implements group.go's GroupElementJacobian.addVar: full
// Jacobian-Jacobian addition with the h==0/i==0 degenerate cases routed to
// Doubling or infinity.
func (p *WeierstrassPrimeJacobian) Addition(cfg *Config, other Point) Status {
	b, ok := other.(*WeierstrassPrimeJacobian)
	if !ok {
		if aff, isAff := other.(*WeierstrassPrimeAffine); isAff {
			return p.addAffine(cfg, aff)
		}
		return notSupported()
	}
	if p.Infinity {
		*p = *b.copyStruct()
		return PointOK
	}
	if b.Infinity {
		return PointOK
	}

	z22, z12 := cfg.NewElement(), cfg.NewElement()
	cfg.Sqr(z22, b.Z)
	cfg.Sqr(z12, p.Z)

	u1, u2 := cfg.NewElement(), cfg.NewElement()
	cfg.Mul(u1, p.X, z22)
	cfg.Mul(u2, b.X, z12)

	s1, s2 := cfg.NewElement(), cfg.NewElement()
	cfg.Mul(s1, p.Y, z22)
	cfg.Mul(s1, s1, b.Z)
	cfg.Mul(s2, b.Y, z12)
	cfg.Mul(s2, s2, p.Z)

	h, i := cfg.NewElement(), cfg.NewElement()
	cfg.Sub(h, u2, u1)
	cfg.Sub(i, s1, s2)

	if cfg.IsZero(h) {
		if cfg.IsZero(i) {
			return p.Doubling(cfg)
		}
		p.SetInfinity()
		return PointOK
	}

	t := cfg.NewElement()
	cfg.Mul(t, h, b.Z)
	newZ := cfg.NewElement()
	cfg.Mul(newZ, p.Z, t)

	h2 := cfg.NewElement()
	cfg.Sqr(h2, h)
	cfg.Neg(h2, h2)
	h3 := cfg.NewElement()
	cfg.Mul(h3, h2, h)
	cfg.Mul(t, u1, h2)

	newX := cfg.NewElement()
	cfg.Sqr(newX, i)
	cfg.Add(newX, newX, h3)
	cfg.Add(newX, newX, t)
	cfg.Add(newX, newX, t)

	cfg.Add(t, t, newX)
	newY := cfg.NewElement()
	cfg.Mul(newY, t, i)
	cfg.Mul(h3, h3, s1)
	cfg.Add(newY, newY, h3)

	p.X, p.Y, p.Z, p.Infinity = newX, newY, newZ, false
	return PointOK
}

// addAffine implements group.go's GroupElementJacobian.addGEWithZR with a
// mixed Jacobian+affine operand (affine Z implicitly 1).
func (p *WeierstrassPrimeJacobian) addAffine(cfg *Config, b *WeierstrassPrimeAffine) Status {
	if p.Infinity {
		p.ConvertFrom(cfg, b)
		return PointOK
	}
	if b.Infinity {
		return PointOK
	}

	z12 := cfg.NewElement()
	cfg.Sqr(z12, p.Z)

	u1 := append([]mp.Word{}, p.X...)
	u2 := cfg.NewElement()
	cfg.Mul(u2, b.X, z12)

	s1 := append([]mp.Word{}, p.Y...)
	s2 := cfg.NewElement()
	cfg.Mul(s2, b.Y, z12)
	cfg.Mul(s2, s2, p.Z)

	h, i := cfg.NewElement(), cfg.NewElement()
	cfg.Sub(h, u2, u1)
	cfg.Sub(i, s1, s2)

	if cfg.IsZero(h) {
		if cfg.IsZero(i) {
			return p.Doubling(cfg)
		}
		p.SetInfinity()
		return PointOK
	}

	newZ := cfg.NewElement()
	cfg.Mul(newZ, p.Z, h)

	h2 := cfg.NewElement()
	cfg.Sqr(h2, h)
	cfg.Neg(h2, h2)
	h3 := cfg.NewElement()
	cfg.Mul(h3, h2, h)
	t := cfg.NewElement()
	cfg.Mul(t, u1, h2)

	newX := cfg.NewElement()
	cfg.Sqr(newX, i)
	cfg.Add(newX, newX, h3)
	cfg.Add(newX, newX, t)
	cfg.Add(newX, newX, t)

	cfg.Add(t, t, newX)
	newY := cfg.NewElement()
	cfg.Mul(newY, t, i)
	cfg.Mul(h3, h3, s1)
	cfg.Add(newY, newY, h3)

	p.X, p.Y, p.Z, p.Infinity = newX, newY, newZ, false
	return PointOK
}

func (p *WeierstrassPrimeJacobian) Negate(cfg *Config) Status {
	if p.Infinity {
		return PointAtInfinity
	}
	cfg.Neg(p.Y, p.Y)
	return PointOK
}

func (p *WeierstrassPrimeJacobian) LadderStep(cfg *Config, other, base Point) Status {
	return notSupported()
}

func (p *WeierstrassPrimeJacobian) YRecovery(cfg *Config, x []mp.Word, yOdd bool) Status {
	aff := NewWeierstrassPrimeAffine(cfg)
	st := aff.YRecovery(cfg, x, yOdd)
	if st != PointOK {
		return st
	}
	return p.ConvertFrom(cfg, aff)
}

func (p *WeierstrassPrimeJacobian) ConvertFrom(cfg *Config, other Point) Status {
	switch o := other.(type) {
	case *WeierstrassPrimeAffine:
		if o.Infinity {
			p.SetInfinity()
			return PointOK
		}
		one := cfg.NewElement()
		one[0] = 1
		p.X = append([]mp.Word{}, o.X...)
		p.Y = append([]mp.Word{}, o.Y...)
		p.Z = one
		p.Infinity = false
		return PointOK
	case *WeierstrassPrimeJacobian:
		*p = *o.copyStruct()
		return PointOK
	default:
		return notSupported()
	}
}

func (p *WeierstrassPrimeJacobian) ConvertToMixed(cfg *Config) Point {
	aff := NewWeierstrassPrimeAffine(cfg)
	aff.ConvertFrom(cfg, p)
	return aff
}

func (p *WeierstrassPrimeJacobian) Copy() Point { return p.copyStruct() }

func (p *WeierstrassPrimeJacobian) copyStruct() *WeierstrassPrimeJacobian {
	return &WeierstrassPrimeJacobian{
		X: append([]mp.Word{}, p.X...), Y: append([]mp.Word{}, p.Y...),
		Z: append([]mp.Word{}, p.Z...), Infinity: p.Infinity,
	}
}
