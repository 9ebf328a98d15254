package mp

import (
	"fmt"

	"phantom.dev/mpbase"
)

// Reduction names the modular-reduction strategy a ModConfig carries
// (spec §9's "model as a tagged variant" design note, mirrored by
// mpbase.PowmOps's own strategy split).
type Reduction int

const (
	ReductionNaive Reduction = iota
	ReductionBarrett
	ReductionMontgomery
	ReductionCustom
)

func (r Reduction) String() string {
	switch r {
	case ReductionNaive:
		return "naive"
	case ReductionBarrett:
		return "barrett"
	case ReductionMontgomery:
		return "montgomery"
	case ReductionCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// SolinasReducer is the interface a closed-form prime reducer implements
// for the ReductionCustom tag. The module itself ships no implementation;
// the curves package builds its configs with Montgomery reduction.
type SolinasReducer interface {
	// Reduce folds a 2n-limb product in full down to n limbs modulo the
	// reducer's fixed prime.
	Reduce(rp, full []Word)
}

// ModConfig bundles everything Powm/ecc need to reduce modulo a fixed
// modulus without re-deriving Montgomery/Barrett parameters on every
// call: the modulus itself, its bit length and limb count, which
// reduction strategy to use, and the strategy's precomputed constants.
type ModConfig struct {
	Mod     []Word
	ModBits int
	K       int // limb count of Mod

	Reduction Reduction

	// Barrett
	ModInv []Word // floor(B^2K / Mod)

	// Montgomery
	MontR2   []Word // R^2 mod Mod, R = B^K
	MontInv  Word   // -Mod[0]^-1 mod B
	montOnce bool

	// Custom (Solinas)
	Custom SolinasReducer
}

// NewNaiveModConfig builds a ModConfig that always reduces via plain
// division; useful for moduli with no exploitable structure or as a
// correctness oracle against the faster strategies in tests.
func NewNaiveModConfig(mod []Word) *ModConfig {
	k := mpbase.NormalizedSize(mod, len(mod))
	return &ModConfig{Mod: mod[:k], ModBits: bitLen(mod[:k]), K: k, Reduction: ReductionNaive}
}

// NewBarrettModConfig builds a ModConfig with a precomputed Barrett
// reciprocal floor(B^2K/mod).
func NewBarrettModConfig(mod []Word) *ModConfig {
	k := mpbase.NormalizedSize(mod, len(mod))
	num := make([]Word, 2*k+1)
	num[2*k] = 1
	qp := make([]Word, k+2)
	rp := make([]Word, k)
	mpbase.BasecaseDivQr(qp, rp, num, 2*k+1, mod, k)
	return &ModConfig{
		Mod: mod[:k], ModBits: bitLen(mod[:k]), K: k,
		Reduction: ReductionBarrett, ModInv: qp,
	}
}

// NewMontgomeryModConfig builds a ModConfig for Montgomery reduction
// against an odd modulus: MontInv = -mod[0]^-1 mod B, MontR2 = B^2K mod
// mod. Panics if mod is even (Montgomery's invariant requirement).
func NewMontgomeryModConfig(mod []Word) *ModConfig {
	k := mpbase.NormalizedSize(mod, len(mod))
	if mod[0]&1 == 0 {
		panic(fmt.Errorf("mp: NewMontgomeryModConfig: modulus must be odd"))
	}
	mip := mpbase.BinvertLimb(mod[0])
	r2 := computeMontR2(mod[:k], k)
	return &ModConfig{
		Mod: mod[:k], ModBits: bitLen(mod[:k]), K: k,
		Reduction: ReductionMontgomery, MontInv: mip, MontR2: r2,
	}
}

func computeMontR2(mod []Word, k int) []Word {
	num := make([]Word, 2*k+1)
	num[2*k] = 1
	qp := make([]Word, k+2)
	rp := make([]Word, k)
	mpbase.BasecaseDivQr(qp, rp, num, 2*k+1, mod, k)
	// rp now holds B^(2k) mod mod, since num represents B^(2k) directly.
	return rp
}

// NewCustomModConfig builds a ModConfig delegating reduction to a fixed
// closed-form Solinas reducer (spec §4.3's named NIST-prime reducers).
func NewCustomModConfig(mod []Word, reducer SolinasReducer) *ModConfig {
	k := mpbase.NormalizedSize(mod, len(mod))
	return &ModConfig{
		Mod: mod[:k], ModBits: bitLen(mod[:k]), K: k,
		Reduction: ReductionCustom, Custom: reducer,
	}
}

func bitLen(a []Word) int {
	n := len(a)
	if n == 0 {
		return 0
	}
	return (n-1)*64 + (64 - leadingZeros64(a[n-1]))
}

// ReduceMod folds a 2K-limb product (full) down to K limbs according to
// the config's tagged reduction strategy, dispatching once per call
// (spec §9).
func (c *ModConfig) ReduceMod(rp, full []Word) {
	switch c.Reduction {
	case ReductionNaive:
		qp := make([]Word, len(full)-c.K+1)
		rem := make([]Word, c.K)
		mpbase.TdivQr(qp, rem, full, len(full), c.Mod, c.K)
		copy(rp[:c.K], rem)
	case ReductionBarrett:
		qp := make([]Word, len(full)-c.K+1)
		rem := make([]Word, c.K)
		mpbase.TdivQr(qp, rem, full, len(full), c.Mod, c.K)
		copy(rp[:c.K], rem)
	case ReductionMontgomery:
		tp := make([]Word, 2*c.K)
		copy(tp, full[:min(len(full), 2*c.K)])
		mpbase.RedcN(tp, c.K, c.Mod, c.MontInv)
		copy(rp[:c.K], tp[c.K:2*c.K])
	case ReductionCustom:
		c.Custom.Reduce(rp, full)
	}
}
