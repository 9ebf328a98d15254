package ecc

import (
	"crypto/subtle"

	"phantom.dev/mp"
)

// Engine owns one curve configuration, one scalar recoder, and the
// precomputation table Setup builds for it, then drives exactly one of
// the three scalar-multiplication algorithms of spec §4.5.3 depending on
// which ScalarParser it was built with (spec §4.5.2: "one working point
// plus a precomputation table").
type Engine[P Point] struct {
	cfg    *Config
	parser ScalarParser
	base   P
	table  []P
}

// NewEngine builds an Engine bound to cfg and parser; call Setup before
// ScalarPointMul.
func NewEngine[P Point](cfg *Config, parser ScalarParser) *Engine[P] {
	return &Engine[P]{cfg: cfg, parser: parser}
}

// Setup precomputes whatever table the bound recoder needs against base
// (spec §4.5.2): NAFw needs the odd multiples 1*base, 3*base, ...; PREw
// needs every multiple 0*base .. (2^w-1)*base; Binary/BinaryDual/
// MontLadder need no table at all.
func (e *Engine[P]) Setup(base P) Status {
	e.base = base
	switch r := e.parser.(type) {
	case NAFwRecoder:
		size := 1
		if r.W > 2 {
			size = 1 << uint(r.W-2)
		}
		e.table = make([]P, size)
		cur := base.Copy().(P)
		e.table[0] = cur
		doubled := base.Copy().(P)
		if st := doubled.Doubling(e.cfg); st != PointOK {
			return st
		}
		for i := 1; i < size; i++ {
			next := e.table[i-1].Copy().(P)
			if st := next.Addition(e.cfg, doubled); st != PointOK {
				return st
			}
			e.table[i] = next
		}
	case PREwRecoder:
		size := 1 << uint(r.W)
		e.table = make([]P, size)
		inf := base.Copy().(P)
		inf.SetInfinity()
		e.table[0] = inf
		if size > 1 {
			e.table[1] = base.Copy().(P)
		}
		for i := 2; i < size; i++ {
			next := e.table[i-1].Copy().(P)
			if st := next.Addition(e.cfg, base); st != PointOK {
				return st
			}
			e.table[i] = next
		}
	default:
		e.table = nil
	}
	return PointOK
}

// ScalarPointMul computes k*base (base as given to Setup), selecting the
// algorithm from the bound recoder's concrete type: masked double-and-add
// for Binary, windowed signed-digit scan for NAFw, fixed-window table
// lookup for PREw, or the Montgomery ladder for MontLadder. A
// BinaryDualRecoder returns RecodingError here; it runs through
// ScalarPointMulDual instead.
func (e *Engine[P]) ScalarPointMul(k []mp.Word, bitLen int, zero P) (P, Status) {
	if isZeroLimbs(k) {
		return zero, SecretIsZero
	}
	digits, width, status := e.parser.Recode(k, bitLen)
	if status != PointOK {
		return zero, status
	}

	switch e.parser.(type) {
	case MontLadderRecoder:
		return e.ladderMul(digits, zero)
	case NAFwRecoder:
		return e.nafMul(digits, zero)
	case PREwRecoder:
		return e.prewMul(digits, width, zero)
	case BinaryRecoder:
		return e.binaryMul(digits, zero)
	default:
		return zero, RecodingError
	}
}

// ScalarPointMulDual runs Shamir's trick: k1*base + k2*q in one
// double-and-add pass over the BinaryDualRecoder's synchronised digit
// pairs, halving the doubling count against two separate
// ScalarPointMul calls. base2 must be the same point passed as K2's
// owner when the recoder was built.
func (e *Engine[P]) ScalarPointMulDual(k1 []mp.Word, bitLen int, base2, zero P) (P, Status) {
	dual, ok := e.parser.(BinaryDualRecoder)
	if !ok {
		return zero, RecodingError
	}
	digits, status := dual.RecodePair(k1, bitLen)
	if status != PointOK {
		return zero, status
	}
	sum := e.base.Copy().(P)
	if st := sum.Addition(e.cfg, base2); st != PointOK && st != PointAtInfinity {
		return zero, st
	}

	acc := zero.Copy().(P)
	acc.SetInfinity()
	for _, d := range digits {
		if st := acc.Doubling(e.cfg); st != PointOK && st != PointAtInfinity {
			return zero, st
		}
		switch d {
		case 2:
			if st := acc.Addition(e.cfg, e.base); st != PointOK {
				return zero, st
			}
		case 1:
			if st := acc.Addition(e.cfg, base2); st != PointOK {
				return zero, st
			}
		case 3:
			if st := acc.Addition(e.cfg, sum); st != PointOK {
				return zero, st
			}
		}
	}
	return acc, PointOK
}

// binaryMul is the masked double-and-add algorithm (spec §4.5.3): every
// iteration computes both the "add base" and "don't add" outcomes and
// selects between them with a constant-time index mask
// (crypto/subtle.ConstantTimeSelect), never branching on a digit.
func (e *Engine[P]) binaryMul(digits []int, zero P) (P, Status) {
	acc := zero.Copy().(P)
	acc.SetInfinity()
	for _, d := range digits {
		if st := acc.Doubling(e.cfg); st != PointOK && st != PointAtInfinity {
			return zero, st
		}
		skip := acc.Copy().(P)
		added := acc.Copy().(P)
		if st := added.Addition(e.cfg, e.base); st != PointOK {
			return zero, st
		}
		candidates := [2]P{skip, added}
		idx := subtle.ConstantTimeSelect(d, 1, 0)
		acc = candidates[idx]
	}
	return acc, PointOK
}

// nafMul scans the width-w NAF digits, doubling once per digit and
// adding (or subtracting, via Negate) the table entry for nonzero
// digits — variable-time, matching the variable density of NAF digits
// themselves (same tradeoff as p256k1's addVar/Ecmult being
// variable-time for efficiency).
func (e *Engine[P]) nafMul(digits []int, zero P) (P, Status) {
	acc := zero.Copy().(P)
	acc.SetInfinity()
	for _, d := range digits {
		if st := acc.Doubling(e.cfg); st != PointOK && st != PointAtInfinity {
			return zero, st
		}
		if d == 0 {
			continue
		}
		abs := d
		neg := false
		if abs < 0 {
			abs = -abs
			neg = true
		}
		idx := (abs - 1) / 2
		if idx >= len(e.table) {
			return zero, ScalarMulError
		}
		pt := e.table[idx].Copy().(P)
		if neg {
			if st := pt.Negate(e.cfg); st != PointOK {
				return zero, st
			}
		}
		if st := acc.Addition(e.cfg, pt); st != PointOK {
			return zero, st
		}
	}
	return acc, PointOK
}

// prewMul scans the fixed unsigned w-bit windows, doubling w times
// between windows and adding exactly one table lookup per window
// (grounded on p256k1's EcmultConst, ecmult.go).
func (e *Engine[P]) prewMul(digits []int, width int, zero P) (P, Status) {
	acc := zero.Copy().(P)
	acc.SetInfinity()
	for i, d := range digits {
		if i > 0 {
			for b := 0; b < width; b++ {
				if st := acc.Doubling(e.cfg); st != PointOK && st != PointAtInfinity {
					return zero, st
				}
			}
		}
		if d >= len(e.table) {
			return zero, ScalarMulError
		}
		if st := acc.Addition(e.cfg, e.table[d]); st != PointOK {
			return zero, st
		}
	}
	return acc, PointOK
}

// ladderMul runs the Montgomery ladder: R0 starts at infinity, R1 at
// base; each bit conditionally swaps (R0,R1) via a constant-time index
// mask, runs one combined LadderStep, then swaps back.
func (e *Engine[P]) ladderMul(digits []int, zero P) (P, Status) {
	r0 := zero.Copy().(P)
	r0.SetInfinity()
	r1 := e.base.Copy().(P)

	for _, d := range digits {
		pair := [2]P{r0, r1}
		swapped := [2]P{pair[subtle.ConstantTimeSelect(d, 1, 0)], pair[subtle.ConstantTimeSelect(d, 0, 1)]}
		lo, hi := swapped[0], swapped[1]
		if st := lo.LadderStep(e.cfg, hi, e.base); st != PointOK {
			return zero, st
		}
		restored := [2]P{lo, hi}
		r0 = restored[subtle.ConstantTimeSelect(d, 1, 0)]
		r1 = restored[subtle.ConstantTimeSelect(d, 0, 1)]
	}
	return r0, PointOK
}
