// Package number implements the word-level primitives of the arithmetic
// core: exact 2-word products and quotients, pre-inverted reciprocals, and
// the single-limb GCD family used to derive Montgomery/Barrett parameters.
//
// Every routine is a pure function of its inputs; there is no heap use and
// no hidden state. Routines are generic over the limb word type W, but the
// public EC surface built on top of mpbase/mp/ecc instantiates W = uint64.
package number

import (
	"math/bits"

	"github.com/klauspost/cpuid/v2"
)

// Word is the limb word type. mpbase and number are generic over it; the
// public surface fixes W = uint64 (see mp.Word).
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// HasFastWideMul reports whether the running CPU carries the ADX/BMI2
// instruction pair the Go compiler's math/bits.Mul64/Div64 intrinsics use
// to lower Umul/UdivQrnnd to single hardware instructions on amd64. It
// changes nothing about which code path runs -- math/bits already picks
// the best lowering available for the build target -- it exists so a
// caller benchmarking W=uint64 against a narrower instantiation can tell
// whether a slow result came from the algorithm or from running on a
// CPU without the fast path.
var HasFastWideMul = cpuid.CPU.Supports(cpuid.ADX, cpuid.BMI2)

// BitSize returns bits(W) for the instantiated word type.
func BitSize[W Word]() int {
	var w W
	switch any(w).(type) {
	case uint8:
		return 8
	case uint16:
		return 16
	case uint32:
		return 32
	case uint64:
		return 64
	default:
		panic("number: unsupported word type")
	}
}

func mask[W Word](bs int) uint64 {
	if bs >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << uint(bs)) - 1
}

// AddWW computes a+b as a double-word result (carry, sum).
func AddWW[W Word](a, b W) (carry, sum W) {
	bs := BitSize[W]()
	if bs == 64 {
		s, c := bits.Add64(uint64(a), uint64(b), 0)
		return W(c), W(s)
	}
	s := uint64(a) + uint64(b)
	m := mask[W](bs)
	return W(s >> uint(bs)), W(s & m)
}

// AddWWC computes a+b+carryIn as a double-word result (carryOut, sum).
func AddWWC[W Word](a, b, carryIn W) (carryOut, sum W) {
	bs := BitSize[W]()
	if bs == 64 {
		s, c := bits.Add64(uint64(a), uint64(b), uint64(carryIn))
		return W(c), W(s)
	}
	s := uint64(a) + uint64(b) + uint64(carryIn)
	m := mask[W](bs)
	return W(s >> uint(bs)), W(s & m)
}

// SubWW computes a-b as a double-word result (borrow, diff).
func SubWW[W Word](a, b W) (borrow, diff W) {
	bs := BitSize[W]()
	if bs == 64 {
		d, bw := bits.Sub64(uint64(a), uint64(b), 0)
		return W(bw), W(d)
	}
	if uint64(a) >= uint64(b) {
		return 0, W(uint64(a) - uint64(b))
	}
	m := mask[W](bs)
	return 1, W((uint64(a) + m + 1 - uint64(b)) & m)
}

// SubWWB computes a-b-borrowIn as a double-word result (borrowOut, diff).
func SubWWB[W Word](a, b, borrowIn W) (borrowOut, diff W) {
	bs := BitSize[W]()
	if bs == 64 {
		d, bw := bits.Sub64(uint64(a), uint64(b), uint64(borrowIn))
		return W(bw), W(d)
	}
	bi := uint64(borrowIn)
	bb := uint64(b) + bi
	if uint64(a) >= bb {
		return 0, W(uint64(a) - bb)
	}
	m := mask[W](bs)
	return 1, W((uint64(a) + m + 1 - bb) & m)
}

// Add2 adds two double-word values (ah:al) + (bh:bl), discarding any carry
// out of the top word.
func Add2[W Word](ah, al, bh, bl W) (rh, rl W) {
	carry, lo := AddWW(al, bl)
	_, hi := AddWWC(ah, bh, carry)
	return hi, lo
}

// Sub2 subtracts two double-word values (ah:al) - (bh:bl), discarding any
// borrow out of the top word.
func Sub2[W Word](ah, al, bh, bl W) (rh, rl W) {
	borrow, lo := SubWW(al, bl)
	_, hi := SubWWB(ah, bh, borrow)
	return hi, lo
}

// Umul computes the exact 2-word product a*b, writing the high and low
// words. Uses the native wide-multiply instruction via math/bits.Mul64;
// for narrower W the product always fits entirely in lo since
// bits(W)*2 <= 64.
func Umul[W Word](a, b W) (hi, lo W) {
	bs := BitSize[W]()
	h, l := bits.Mul64(uint64(a), uint64(b))
	if bs == 64 {
		return W(h), W(l)
	}
	m := mask[W](bs)
	return W(l >> uint(bs)), W(l & m)
}

// UdivQrnnd computes the exact quotient and remainder of the 2-word
// dividend n1*B+n0 by d. Precondition: n1 < d.
func UdivQrnnd[W Word](n1, n0, d W) (q, r W) {
	bs := BitSize[W]()
	if bs == 64 {
		q64, r64 := bits.Div64(uint64(n1), uint64(n0), uint64(d))
		return W(q64), W(r64)
	}
	num := uint64(n1)<<uint(bs) | uint64(n0)
	return W(num / uint64(d)), W(num % uint64(d))
}

// Uinverse returns the 2/1 pre-inverted reciprocal
// floor((B^2-1)/d) - B for a normalised divisor d (top bit set).
//
// Derivation: B^2-1, written as the double word (B-1-d+d : B-1), reduces to
// a single UdivQrnnd call with the high word (B-1-d) guaranteed < d by
// normalisation; the resulting quotient is exactly the reciprocal (see
// DESIGN.md for the worked derivation).
func Uinverse[W Word](d W) W {
	allOnes := ^W(0)
	hi := allOnes - d
	q, _ := UdivQrnnd(hi, allOnes, d)
	return q
}

// Uinverse3by2 computes the 3/2 pre-inverted reciprocal for a normalised
// 2-limb divisor (d1:d0), d1 having its top bit set. Ported from the
// Möller-Granlund invert_pi1 algorithm.
func Uinverse3by2[W Word](d1, d0 W) W {
	v := Uinverse(d1)
	p := d1 * v
	p += d0
	if p < d0 {
		v--
		if p >= d1 {
			v--
			p -= d1
		}
		p -= d1
	}
	t1, t0 := Umul(v, d0)
	p += t1
	if p < t1 {
		v--
		if p >= d1 {
			if p > d1 || t0 >= d0 {
				v--
			}
		}
	}
	return v
}

// UdivQrnndPreinv performs 2/1 division given a pre-inverted reciprocal
// dinv = Uinverse(d). Precondition: d normalised, n1 < d. The adjustment
// loop is bounded by two corrective steps.
func UdivQrnndPreinv[W Word](n1, n0, d, dinv W) (q, r W) {
	qh, ql := Umul(n1, dinv)
	qh, ql = Add2(qh, ql, n1+1, n0)
	rr := n0 - qh*d
	if rr > ql {
		qh--
		rr += d
	}
	if rr >= d {
		rr -= d
		qh++
	}
	return qh, rr
}

// UdivQrnnndDPreinv performs 3/2 division of the 3-word dividend
// (n2:n1:n0) by the 2-limb normalised divisor (d1:d0), given its 3/2
// reciprocal dinv = Uinverse3by2(d1, d0). Returns the quotient and the
// 2-word remainder (r1:r0).
func UdivQrnnndDPreinv[W Word](n2, n1, n0, d1, d0, dinv W) (q, r1, r0 W) {
	qh, q0 := Umul(n2, dinv)
	qh, q0 = Add2(qh, q0, n2, n1)

	r1v := n1 - d1*qh
	r1v, r0v := Sub2(r1v, n0, d1, d0)
	t1, t0 := Umul(d0, qh)
	r1v, r0v = Sub2(r1v, r0v, t1, t0)
	qh++

	if r1v >= q0 {
		qh--
		r1v, r0v = Add2(r1v, r0v, d1, d0)
	}
	if r1v >= d1 && (r1v > d1 || r0v >= d0) {
		qh++
		r1v, r0v = Sub2(r1v, r0v, d1, d0)
	}
	return qh, r1v, r0v
}

// UninvMinus1 returns -q^-1 mod 2^bits(W) for odd q, via Newton's
// iteration seeded from a small lookup table. Used by Hensel division and
// Montgomery setup (mpbase.BinvertLimb re-exports it unchanged).
func UninvMinus1[W Word](q W) W {
	inv := newtonSeed(q)
	for i := 0; i < 5; i++ {
		inv = inv * (2 - q*inv)
	}
	return -inv
}

var invLUT = [128]uint8{
	0x01, 0xab, 0xcd, 0xb7, 0x39, 0xa3, 0xc5, 0xef,
	0xf1, 0x1b, 0x3d, 0xa7, 0x29, 0x13, 0x35, 0xdf,
	0xe1, 0x8b, 0xad, 0x97, 0x19, 0x83, 0xa5, 0xcf,
	0xd1, 0xfb, 0x1d, 0x87, 0x09, 0xf3, 0x15, 0xbf,
	0xc1, 0x6b, 0x8d, 0x77, 0xf9, 0x63, 0x85, 0xaf,
	0xb1, 0xdb, 0xfd, 0x67, 0xe9, 0xd3, 0xf5, 0x9f,
	0xa1, 0x4b, 0x6d, 0x57, 0xd9, 0x43, 0x65, 0x8f,
	0x91, 0xbb, 0xdd, 0x47, 0xc9, 0xb3, 0xd5, 0x7f,
	0x81, 0x2b, 0x4d, 0x37, 0xb9, 0x23, 0x45, 0x6f,
	0x71, 0x9b, 0xbd, 0x27, 0xa9, 0x93, 0xb5, 0x5f,
	0x61, 0x0b, 0x2d, 0x17, 0x99, 0x03, 0x25, 0x4f,
	0x51, 0x7b, 0x9d, 0x07, 0x89, 0x73, 0x95, 0x3f,
	0x41, 0xeb, 0x0d, 0xf7, 0x79, 0xe3, 0x05, 0x2f,
	0x31, 0x5b, 0x7d, 0xe7, 0x69, 0x53, 0x75, 0x1f,
	0x21, 0xcb, 0xed, 0xd7, 0x59, 0xc3, 0xe5, 0x0f,
	0x11, 0x3b, 0x5d, 0xc7, 0x49, 0x33, 0x55, 0xff,
}

// newtonSeed returns an 8-bit accurate seed for the Newton iteration that
// computes q^-1 mod 2^bits(W), indexed by the low 7 bits of q (q is odd).
func newtonSeed[W Word](q W) W {
	idx := (uint8(q) >> 1) & 0x7f
	return W(invLUT[idx])
}

// Ugcd returns gcd(a, b) for single limbs, via the classical Euclidean
// algorithm. Not constant-time: callers operate on non-secret moduli only
// (spec's side-channel discipline excludes GCD/division from the
// constant-time surface).
func Ugcd[W Word](a, b W) W {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Uxgcd returns (g, x, y) such that a*x + b*y = g = gcd(a, b). Parameter
// derivation only (Montgomery/Barrett setup); uses signed int64 arithmetic,
// valid for the word widths this package instantiates (<=64-bit limbs with
// magnitudes bounded by the operands).
func Uxgcd[W Word](a, b W) (g W, x, y int64) {
	oldR, r := int64(a), int64(b)
	oldS, s := int64(1), int64(0)
	oldT, t := int64(0), int64(1)
	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
		oldT, t = t, oldT-q*t
	}
	return W(oldR), oldS, oldT
}

// Ubinxgcd is the entry point for the binary extended GCD variant; it
// delegates to the Euclidean Uxgcd and has the same contract.
func Ubinxgcd[W Word](a, b W) (g W, x, y int64) {
	return Uxgcd(a, b)
}

// UmodMulInverse returns a^-1 mod m for gcd(a, m) = 1, used to derive the
// Montgomery/Barrett setup constants. Panics if a and m are not coprime
// (arithmetic-layer failure per spec §7 "documented runtime error").
func UmodMulInverse[W Word](a, m W) W {
	g, x, _ := Uxgcd(a, m)
	if g != 1 {
		panic("number: UmodMulInverse: a and m are not coprime")
	}
	mm := int64(m)
	x %= mm
	if x < 0 {
		x += mm
	}
	return W(x)
}
