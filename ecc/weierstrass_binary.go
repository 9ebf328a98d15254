package ecc

import (
	"phantom.dev/gf2n"
)

// WeierstrassBinaryAffine/Projective are short-Weierstrass points over
// GF(2^m): y^2 + x*y = x^3 + a*x^2 + b (the sect* curves of curves.go).
// WeierstrassBinaryProjective.Doubling/Addition fall back to the affine
// char-2 group law under a field inverse rather than a division-free
// projective formula -- grounded on WeierstrassPrimeJacobian's addAffine
// (mixed addition) in weierstrass_prime.go, generalised from
// GF(p) addition/multiplication to gf2n.Field's XOR/carry-less-multiply
// arithmetic.
type WeierstrassBinaryAffine struct {
	field    *gf2n.Field
	X, Y     []uint64
	Infinity bool
}

func NewWeierstrassBinaryAffine(f *gf2n.Field) *WeierstrassBinaryAffine {
	return &WeierstrassBinaryAffine{field: f, X: make([]uint64, f.Limbs()), Y: make([]uint64, f.Limbs()), Infinity: true}
}

func (p *WeierstrassBinaryAffine) IsInfinity() bool { return p.Infinity }
func (p *WeierstrassBinaryAffine) SetInfinity()     { p.Infinity = true }

func (p *WeierstrassBinaryAffine) Doubling(cfg *Config) Status { return notSupported() }
func (p *WeierstrassBinaryAffine) Addition(cfg *Config, other Point) Status {
	return notSupported()
}

// Negate over GF(2^m): -P = (x, x+y) since the curve has characteristic 2
// (y and -y differ by the x*y term's coefficient).
func (p *WeierstrassBinaryAffine) Negate(cfg *Config) Status {
	if p.Infinity {
		return PointAtInfinity
	}
	newY := make([]uint64, p.field.Limbs())
	p.field.Add(newY, p.X, p.Y)
	p.Y = newY
	return PointOK
}

func (p *WeierstrassBinaryAffine) LadderStep(cfg *Config, other, base Point) Status {
	return notSupported()
}

func (p *WeierstrassBinaryAffine) YRecovery(cfg *Config, x []uint64, yOdd bool) Status {
	return notSupported()
}

func (p *WeierstrassBinaryAffine) ConvertFrom(cfg *Config, other Point) Status {
	switch o := other.(type) {
	case *WeierstrassBinaryProjective:
		if o.Infinity {
			p.SetInfinity()
			return PointOK
		}
		f := o.field
		p.field = f
		zInv := make([]uint64, f.Limbs())
		f.Inverse(zInv, o.Z)
		p.X = make([]uint64, f.Limbs())
		p.Y = make([]uint64, f.Limbs())
		f.Mul(p.X, o.X, zInv)
		zInv2 := make([]uint64, f.Limbs())
		f.Sqr(zInv2, zInv)
		yTmp := make([]uint64, f.Limbs())
		f.Mul(yTmp, o.Y, zInv2)
		copy(p.Y, yTmp)
		p.Infinity = false
		return PointOK
	case *WeierstrassBinaryAffine:
		p.field = o.field
		p.X = append([]uint64{}, o.X...)
		p.Y = append([]uint64{}, o.Y...)
		p.Infinity = o.Infinity
		return PointOK
	default:
		return notSupported()
	}
}

func (p *WeierstrassBinaryAffine) ConvertToMixed(cfg *Config) Point { return p.Copy() }

func (p *WeierstrassBinaryAffine) Copy() Point {
	return &WeierstrassBinaryAffine{field: p.field, X: append([]uint64{}, p.X...), Y: append([]uint64{}, p.Y...), Infinity: p.Infinity}
}

// WeierstrassBinaryProjective carries (X, Y, Z) with affine (X/Z, Y/Z^2),
// but Doubling/Addition below fall back to the affine group law under the
// hood (see their comments) rather than a division-free projective
// formula, so Z is always either 0 (infinity) or 1 after either operation.
type WeierstrassBinaryProjective struct {
	field    *gf2n.Field
	A, B     []uint64 // curve constants, cached from Config by the caller via NewWeierstrassBinaryProjective
	X, Y, Z  []uint64
	Infinity bool
}

func NewWeierstrassBinaryProjective(f *gf2n.Field, a, b []uint64) *WeierstrassBinaryProjective {
	return &WeierstrassBinaryProjective{field: f, A: a, B: b, X: make([]uint64, f.Limbs()), Y: make([]uint64, f.Limbs()), Z: make([]uint64, f.Limbs()), Infinity: true}
}

func (p *WeierstrassBinaryProjective) IsInfinity() bool { return p.Infinity }
func (p *WeierstrassBinaryProjective) SetInfinity()     { p.Infinity = true }

// toAffine returns the receiver's (x, y) via a field inverse of Z; callers
// must have already checked p.Infinity.
func (p *WeierstrassBinaryProjective) toAffine() (x, y []uint64) {
	f := p.field
	if mpbaseIsOne(p.Z) {
		return p.X, p.Y
	}
	zInv := make([]uint64, f.Limbs())
	f.Inverse(zInv, p.Z)
	x = make([]uint64, f.Limbs())
	f.Mul(x, p.X, zInv)
	zInv2 := make([]uint64, f.Limbs())
	f.Sqr(zInv2, zInv)
	y = make([]uint64, f.Limbs())
	f.Mul(y, p.Y, zInv2)
	return x, y
}

func mpbaseIsOne(z []uint64) bool {
	if z[0] != 1 {
		return false
	}
	for _, w := range z[1:] {
		if w != 0 {
			return false
		}
	}
	return true
}

func (p *WeierstrassBinaryProjective) setAffine(x, y []uint64) {
	one := make([]uint64, p.field.Limbs())
	one[0] = 1
	p.X, p.Y, p.Z, p.Infinity = x, y, one, false
}

// Doubling computes 2*P via the affine char-2 doubling law (x != 0):
// lambda = x + y/x; x3 = lambda^2 + lambda + a; y3 = x^2 + lambda*x3 + x3.
// A point with x == 0 is 2-torsion, so it doubles to infinity. This
// generalised-projective implementation once hardcoded the a=0 case and
// silently mishandled the a=1 (sect*r1/r2) curves; affine arithmetic
// avoids the mistake entirely at the cost of one field inversion per
// doubling, the same division-for-correctness tradeoff ecc.Config.Inverse
// already makes for field elements.
func (p *WeierstrassBinaryProjective) Doubling(cfg *Config) Status {
	if p.Infinity {
		return PointAtInfinity
	}
	f := p.field
	x, y := p.toAffine()
	if f.Zero(x) {
		p.SetInfinity()
		return PointOK
	}
	xInv := make([]uint64, f.Limbs())
	f.Inverse(xInv, x)
	lambda := make([]uint64, f.Limbs())
	f.Mul(lambda, y, xInv)
	f.Add(lambda, lambda, x)

	x3 := make([]uint64, f.Limbs())
	f.Sqr(x3, lambda)
	f.Add(x3, x3, lambda)
	f.Add(x3, x3, p.A)

	y3 := make([]uint64, f.Limbs())
	f.Sqr(y3, x)
	lx3 := make([]uint64, f.Limbs())
	f.Mul(lx3, lambda, x3)
	f.Add(y3, y3, lx3)
	f.Add(y3, y3, x3)

	p.setAffine(x3, y3)
	return PointOK
}

// Addition computes P+other via the affine char-2 addition law. Equal-x
// inputs are either the point's own negation (sum is infinity) or the
// same point (falls through to Doubling).
func (p *WeierstrassBinaryProjective) Addition(cfg *Config, other Point) Status {
	o, ok := other.(*WeierstrassBinaryProjective)
	if !ok {
		return notSupported()
	}
	if p.Infinity {
		*p = *o.copyStruct()
		return PointOK
	}
	if o.Infinity {
		return PointOK
	}
	f := p.field
	x1, y1 := p.toAffine()
	x2, y2 := o.toAffine()

	xDiff := make([]uint64, f.Limbs())
	f.Add(xDiff, x1, x2)
	if f.Zero(xDiff) {
		ySum := make([]uint64, f.Limbs())
		f.Add(ySum, y1, y2)
		yMinusX := make([]uint64, f.Limbs())
		f.Add(yMinusX, ySum, x1)
		if f.Zero(yMinusX) {
			p.SetInfinity()
			return PointOK
		}
		return p.Doubling(cfg)
	}

	xInv := make([]uint64, f.Limbs())
	f.Inverse(xInv, xDiff)
	ySum := make([]uint64, f.Limbs())
	f.Add(ySum, y1, y2)
	lambda := make([]uint64, f.Limbs())
	f.Mul(lambda, ySum, xInv)

	x3 := make([]uint64, f.Limbs())
	f.Sqr(x3, lambda)
	f.Add(x3, x3, lambda)
	f.Add(x3, x3, xDiff)
	f.Add(x3, x3, p.A)

	y3 := make([]uint64, f.Limbs())
	x1x3 := make([]uint64, f.Limbs())
	f.Add(x1x3, x1, x3)
	f.Mul(y3, lambda, x1x3)
	f.Add(y3, y3, x3)
	f.Add(y3, y3, y1)

	p.setAffine(x3, y3)
	return PointOK
}

func (p *WeierstrassBinaryProjective) Negate(cfg *Config) Status {
	if p.Infinity {
		return PointAtInfinity
	}
	f := p.field
	newY := make([]uint64, f.Limbs())
	f.Add(newY, p.X, p.Y)
	f.Mul(newY, newY, p.Z)
	p.Y = newY
	return PointOK
}

func (p *WeierstrassBinaryProjective) LadderStep(cfg *Config, other, base Point) Status {
	return notSupported()
}

func (p *WeierstrassBinaryProjective) YRecovery(cfg *Config, x []uint64, yOdd bool) Status {
	return notSupported()
}

func (p *WeierstrassBinaryProjective) ConvertFrom(cfg *Config, other Point) Status {
	switch o := other.(type) {
	case *WeierstrassBinaryAffine:
		if o.Infinity {
			p.SetInfinity()
			return PointOK
		}
		one := make([]uint64, p.field.Limbs())
		one[0] = 1
		p.X = append([]uint64{}, o.X...)
		p.Y = append([]uint64{}, o.Y...)
		p.Z = one
		p.Infinity = false
		return PointOK
	case *WeierstrassBinaryProjective:
		*p = *o.copyStruct()
		return PointOK
	default:
		return notSupported()
	}
}

func (p *WeierstrassBinaryProjective) ConvertToMixed(cfg *Config) Point {
	aff := NewWeierstrassBinaryAffine(p.field)
	aff.ConvertFrom(cfg, p)
	return aff
}

func (p *WeierstrassBinaryProjective) Copy() Point { return p.copyStruct() }

func (p *WeierstrassBinaryProjective) copyStruct() *WeierstrassBinaryProjective {
	return &WeierstrassBinaryProjective{
		field: p.field, A: p.A, B: p.B,
		X: append([]uint64{}, p.X...), Y: append([]uint64{}, p.Y...), Z: append([]uint64{}, p.Z...),
		Infinity: p.Infinity,
	}
}
