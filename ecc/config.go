// Package ecc implements the point types and scalar-multiplication engine
// shared by every curve family in the curves package: short-Weierstrass
// over a prime field and over GF(2^m), Montgomery, and twisted Edwards.
//
// A Config borrows (never owns) the modular-reduction strategy and curve
// constants a caller built once per curve; every point type carries a
// *Config rather than copying the modulus into each point, mirroring
// p256k1's single package-level FieldElement arithmetic shared by every
// GroupElement variant.
package ecc

import (
	"phantom.dev/mp"
	"phantom.dev/mpbase"
)

// Config is the prime-field equivalent of spec's ecc_config<W>: a modular-
// reduction strategy plus the curve's constants, stored by value (spec §9:
// "store constants by value inline; do not reproduce reference-counting").
type Config struct {
	Mod *mp.ModConfig

	A, B, D []mp.Word

	AIsMinus3 bool
	AIsMinus1 bool
	AIsZero   bool
	BIsOne    bool
}

// NewConfig builds a Config, detecting the fast-path flags from the
// supplied constants.
func NewConfig(mod *mp.ModConfig, a, b, d []mp.Word) *Config {
	c := &Config{Mod: mod}
	k := mod.K
	c.A = widen(a, k)
	c.B = widen(b, k)
	c.D = widen(d, k)

	c.AIsZero = mpbase.IsZero(c.A, k)

	minus3 := make([]mp.Word, k)
	c.Sub(minus3, zeroLimbs(k), widen([]mp.Word{3}, k))
	c.AIsMinus3 = eq(c.A, minus3, k)

	minus1 := make([]mp.Word, k)
	c.Sub(minus1, zeroLimbs(k), widen([]mp.Word{1}, k))
	c.AIsMinus1 = eq(c.A, minus1, k)

	one := make([]mp.Word, k)
	one[0] = 1
	c.BIsOne = eq(c.B, one, k)

	return c
}

func widen(x []mp.Word, k int) []mp.Word {
	z := make([]mp.Word, k)
	copy(z, x)
	return z
}

func zeroLimbs(k int) []mp.Word { return make([]mp.Word, k) }

func eq(a, b []mp.Word, k int) bool {
	return mpbase.Cmp(a, k, b, k) == 0
}

// Limbs returns the modulus limb count every field element in this
// configuration is sized to.
func (c *Config) Limbs() int { return c.Mod.K }

// NewElement returns a zeroed field-element scratch buffer.
func (c *Config) NewElement() []mp.Word { return make([]mp.Word, c.Mod.K) }

// Add sets z = x + y mod p.
func (c *Config) Add(z, x, y []mp.Word) {
	k := c.Mod.K
	sum := make([]mp.Word, k+1)
	sum[k] = mpbase.AddN(sum[:k], x[:k], y[:k], k)
	if sum[k] != 0 || mpbase.Cmp(sum[:k], k, c.Mod.Mod, k) >= 0 {
		mpbase.SubN(sum[:k], sum[:k], c.Mod.Mod, k)
	}
	copy(z[:k], sum[:k])
}

// Sub sets z = x - y mod p.
func (c *Config) Sub(z, x, y []mp.Word) {
	k := c.Mod.K
	diff := make([]mp.Word, k)
	borrow := mpbase.SubN(diff, x[:k], y[:k], k)
	if borrow != 0 {
		mpbase.AddN(diff, diff, c.Mod.Mod, k)
	}
	copy(z[:k], diff)
}

// Neg sets z = -x mod p.
func (c *Config) Neg(z, x []mp.Word) {
	c.Sub(z, zeroLimbs(c.Mod.K), x)
}

// IsZero reports whether x == 0.
func (c *Config) IsZero(x []mp.Word) bool {
	return mpbase.IsZero(x, c.Mod.K)
}

// Equal reports whether x == y as field elements (both already reduced).
func (c *Config) Equal(x, y []mp.Word) bool {
	return eq(x, y, c.Mod.K)
}

// Mul sets z = x*y mod p.
func (c *Config) Mul(z, x, y []mp.Word) {
	k := c.Mod.K
	full := make([]mp.Word, 2*k)
	mpbase.Mul(full, x[:k], k, y[:k], k)
	c.reduce(z, full)
}

// reduce folds a 2k-limb product into z as a plain residue. A Montgomery
// ModConfig's ReduceMod returns full*R^-1, so its result is multiplied by
// R^2 and reduced once more to cancel the R^-1.
func (c *Config) reduce(z, full []mp.Word) {
	k := c.Mod.K
	c.Mod.ReduceMod(z[:k], full)
	if c.Mod.Reduction == mp.ReductionMontgomery {
		mpbase.Mul(full, z[:k], k, c.Mod.MontR2[:k], k)
		c.Mod.ReduceMod(z[:k], full)
	}
}

// Sqr sets z = x^2 mod p.
func (c *Config) Sqr(z, x []mp.Word) {
	k := c.Mod.K
	full := make([]mp.Word, 2*k)
	mpbase.Sqr(full, x[:k], k)
	c.reduce(z, full)
}

// MulSmall sets z = x*s mod p for a small machine-word multiplier s
// (used for the 3*X^2 / 2*t style small-integer scalings in the doubling
// formulas below, mirroring p256k1's FieldElement.mulInt).
func (c *Config) MulSmall(z, x []mp.Word, s mp.Word) {
	k := c.Mod.K
	full := make([]mp.Word, k+1)
	full[k] = mpbase.Mul1(full[:k], x[:k], k, s)
	qp := make([]mp.Word, 2)
	rem := make([]mp.Word, k)
	mpbase.TdivQr(qp, rem, full, k+1, c.Mod.Mod, k)
	copy(z[:k], rem)
}

// Half sets z = x/2 mod p, for an odd modulus p: if x is even, z = x>>1,
// else z = (x+p)>>1 (p256k1's FieldElement.half, generalised off the
// fixed secp256k1 prime).
func (c *Config) Half(z, x []mp.Word) {
	k := c.Mod.K
	t := make([]mp.Word, k+1)
	if x[0]&1 == 0 {
		copy(t[:k], x[:k])
	} else {
		t[k] = mpbase.AddN(t[:k], x[:k], c.Mod.Mod, k)
	}
	mpbase.Rshift(t[:k], t[:k], k, 1)
	if t[k] != 0 {
		t[k-1] |= mp.Word(1) << 63
	}
	copy(z[:k], t[:k])
}

// Inverse sets z = x^-1 mod p via Fermat's little theorem (x^(p-2)), using
// the generic modexp engine rather than a curve-specific addition chain —
// this Config serves every prime named in curves, not one fixed prime, so
// it cannot hardcode p256k1's per-prime addition chain (field_mul.go's
// inv/sqrt); Powm's sliding-window exponentiation is the grounding for
// every exponentiation in this file.
func (c *Config) Inverse(z, x []mp.Word) {
	k := c.Mod.K
	exp := make([]mp.Word, k)
	two := make([]mp.Word, k)
	two[0] = 2
	borrow := mpbase.SubN(exp, c.Mod.Mod, two, k)
	_ = borrow
	c.powm(z, x, exp)
}

// Sqrt sets z = a square root of x mod p if one exists, reporting false
// otherwise. Primes that are 3 mod 4 take p256k1's x^((p+1)/4) shortcut;
// every other prime goes through the general Tonelli-Shanks algorithm,
// since curves carries primes with every residue class mod 4 and mod 8
// (NIST P-224 is 1 mod 4, Curve25519's prime is 5 mod 8), not only
// secp256k1's 3-mod-4 case.
func (c *Config) Sqrt(z, x []mp.Word) bool {
	k := c.Mod.K
	if c.IsZero(x) {
		copy(z[:k], zeroLimbs(k))
		return true
	}

	pm1 := make([]mp.Word, k)
	one := make([]mp.Word, k)
	one[0] = 1
	mpbase.SubN(pm1, c.Mod.Mod, one, k)

	if pm1[0]&3 == 2 { // p mod 4 == 3
		exp := make([]mp.Word, k)
		mpbase.AddN(exp, c.Mod.Mod, one, k)
		mpbase.Rshift(exp, exp, k, 2)
		c.powm(z, x, exp)
		check := c.NewElement()
		c.Sqr(check, z)
		return c.Equal(check, x)
	}

	return c.tonelliShanks(z, x)
}

func (c *Config) tonelliShanks(z, x []mp.Word) bool {
	k := c.Mod.K
	one := make([]mp.Word, k)
	one[0] = 1

	q := make([]mp.Word, k)
	mpbase.SubN(q, c.Mod.Mod, one, k)
	s := 0
	for q[0]&1 == 0 && !mpbase.IsZero(q, k) {
		mpbase.Rshift(q, q, k, 1)
		s++
	}

	var nonResidue []mp.Word
	cand := make([]mp.Word, k)
	for n := mp.Word(2); ; n++ {
		cand[0] = n
		for i := 1; i < k; i++ {
			cand[i] = 0
		}
		ls := c.legendre(cand)
		if ls == -1 {
			nonResidue = append([]mp.Word{}, cand...)
			break
		}
	}

	mVar := s
	cEl := c.NewElement()
	c.powm(cEl, nonResidue, q)
	tEl := c.NewElement()
	c.powm(tEl, x, q)
	qp1h := make([]mp.Word, k)
	mpbase.AddN(qp1h, q, one, k)
	mpbase.Rshift(qp1h, qp1h, k, 1)
	rEl := c.NewElement()
	c.powm(rEl, x, qp1h)

	for {
		if c.IsZero(tEl) {
			copy(z[:k], zeroLimbs(k))
			return true
		}
		if eq(tEl, one, k) {
			copy(z[:k], rEl)
			return true
		}
		i := 0
		tmp := c.NewElement()
		copy(tmp, tEl)
		for !eq(tmp, one, k) {
			c.Sqr(tmp, tmp)
			i++
			if i >= mVar {
				return false
			}
		}
		bEl := c.NewElement()
		copy(bEl, cEl)
		for j := 0; j < mVar-i-1; j++ {
			c.Sqr(bEl, bEl)
		}
		mVar = i
		c.Sqr(cEl, bEl)
		c.Mul(tEl, tEl, cEl)
		c.Mul(rEl, rEl, bEl)
	}
}

// legendre returns the Legendre symbol (a/p) as -1, 0, or 1, via the
// Jacobi-symbol machinery in mpbase (valid for prime p).
func (c *Config) legendre(a []mp.Word) int {
	return mpbase.JacobiN(a, c.Mod.K, c.Mod.Mod, c.Mod.K)
}

func (c *Config) powm(z, base, exp []mp.Word) {
	k := c.Mod.K
	expBits := bitLenLimbs(exp, k)
	if expBits == 0 {
		one := make([]mp.Word, k)
		one[0] = 1
		copy(z[:k], one)
		return
	}
	var ops mpbase.PowmOps[mp.Word]
	if c.Mod.Reduction == mp.ReductionMontgomery {
		ops = mpbase.NewMontgomeryOps(c.Mod.Mod, c.Mod.MontInv, c.Mod.MontR2, k)
	} else {
		ops = mpbase.NewNaiveOps(c.Mod.Mod, k)
	}
	r := make([]mp.Word, k)
	mpbase.Powm(r, base[:k], k, exp[:k], expBits, ops)
	copy(z[:k], r)
}

func bitLenLimbs(a []mp.Word, k int) int {
	n := mpbase.NormalizedSize(a, k)
	if n == 0 {
		return 0
	}
	top := a[n-1]
	bits := 0
	for top != 0 {
		bits++
		top >>= 1
	}
	return (n-1)*64 + bits
}
