package ecc

import "phantom.dev/mp"

// ScalarParser recodes a scalar into the signed-digit (or bit) sequence
// one of Engine's three scalar-multiplication algorithms consumes (spec
// §4.5.1): each recoder trades precomputation size against the number of
// point additions the multiplication performs.
type ScalarParser interface {
	// Recode returns the digit sequence for k (a little-endian limb
	// scalar of bitLen bits), most-significant digit first, plus the
	// window width the digits are drawn from (1 for plain bits).
	Recode(k []mp.Word, bitLen int) (digits []int, width int, status Status)
}

// BinaryRecoder emits one {0,1} digit per bit, most significant first —
// the base case every other recoder's precomputation amortises against.
type BinaryRecoder struct{}

func (BinaryRecoder) Recode(k []mp.Word, bitLen int) ([]int, int, Status) {
	digits := make([]int, bitLen)
	for i := 0; i < bitLen; i++ {
		bit := bitLen - 1 - i
		digits[i] = int(getBit(k, bit))
	}
	return digits, 1, PointOK
}

// BinaryDualRecoder recodes two scalars into one synchronised digit-pair
// sequence for Shamir's-trick simultaneous multiplication (k1*P + k2*Q in
// one double-and-add pass, halving the doubling count against doing the
// two multiplications separately).
type BinaryDualRecoder struct {
	K2 []mp.Word
}

// RecodePair returns, for each bit position (most significant first), the
// 2-bit digit pair (bit of k1)<<1 | (bit of k2).
func (d BinaryDualRecoder) RecodePair(k1 []mp.Word, bitLen int) ([]int, Status) {
	digits := make([]int, bitLen)
	for i := 0; i < bitLen; i++ {
		bit := bitLen - 1 - i
		digits[i] = int(getBit(k1, bit))<<1 | int(getBit(d.K2, bit))
	}
	return digits, PointOK
}

func (d BinaryDualRecoder) Recode(k []mp.Word, bitLen int) ([]int, int, Status) {
	digits, status := d.RecodePair(k, bitLen)
	return digits, 2, status
}

// NAFwRecoder produces the width-w non-adjacent form: signed odd digits
// in [-(2^(w-1)-1), 2^(w-1)-1] with at least w-1 zero digits between any
// two nonzero ones, grounded on the classical NAF recoding algorithm
// (p256k1's EcmultConst (ecmult.go) uses a fixed unsigned window rather
// than NAF; NAFw is the signed-digit generalisation spec §4.5.1 names
// alongside it).
type NAFwRecoder struct {
	W int // 2..7
}

func (r NAFwRecoder) Recode(k []mp.Word, bitLen int) ([]int, int, Status) {
	w := r.W
	if w < 2 || w > 7 {
		return nil, 0, RecodingError
	}
	limbs := len(k)
	work := make([]mp.Word, limbs+1)
	copy(work, k)

	mod := mp.Word(1) << uint(w)
	half := mp.Word(1) << uint(w-1)

	var digits []int
	for !isZeroLimbs(work) {
		if work[0]&1 == 1 {
			d := work[0] % mod
			if d >= half {
				d -= mod
			}
			digits = append(digits, int(int64(d)))
			subSigned(work, int64(d))
		} else {
			digits = append(digits, 0)
		}
		shiftRight1(work)
	}
	// digits is little-endian (LSB first); Engine expects MSB-first.
	reverseInts(digits)
	return digits, w, PointOK
}

func getBit(k []mp.Word, bit int) mp.Word {
	limb := bit / 64
	if limb >= len(k) {
		return 0
	}
	return (k[limb] >> uint(bit%64)) & 1
}

func isZeroLimbs(a []mp.Word) bool {
	for _, w := range a {
		if w != 0 {
			return false
		}
	}
	return true
}

func shiftRight1(a []mp.Word) {
	var carry mp.Word
	for i := len(a) - 1; i >= 0; i-- {
		next := a[i] & 1
		a[i] = a[i]>>1 | carry<<63
		carry = next
	}
}

func subSigned(a []mp.Word, d int64) {
	if d >= 0 {
		borrow := mp.Word(d)
		for i := 0; i < len(a) && borrow != 0; i++ {
			old := a[i]
			a[i] -= borrow
			if a[i] > old {
				borrow = 1
			} else {
				borrow = 0
			}
		}
		return
	}
	carry := mp.Word(-d)
	for i := 0; i < len(a) && carry != 0; i++ {
		old := a[i]
		a[i] += carry
		if a[i] < old {
			carry = 1
		} else {
			carry = 0
		}
	}
}

func reverseInts(a []int) {
	for i, j := 0, len(a)-1; i < j; i, j = i+1, j-1 {
		a[i], a[j] = a[j], a[i]
	}
}

// PREwRecoder is the fixed unsigned w-bit window recoder (grounded
// directly on p256k1's EcmultConst, ecmult.go: precompute all 2^w
// multiples of the base, then scan the scalar w bits at a time, every
// window consuming exactly one precomputed table lookup regardless of
// its value — the constant-time counterpart to NAFw's variable-density
// signed digits).
type PREwRecoder struct {
	W int // 2..8
}

func (r PREwRecoder) Recode(k []mp.Word, bitLen int) ([]int, int, Status) {
	w := r.W
	if w < 2 || w > 8 {
		return nil, 0, RecodingError
	}
	windows := (bitLen + w - 1) / w
	digits := make([]int, windows)
	for i := 0; i < windows; i++ {
		hi := bitLen - i*w - 1
		lo := hi - w + 1
		if lo < 0 {
			lo = 0
		}
		val := 0
		for b := hi; b >= lo; b-- {
			val <<= 1
			val |= int(getBit(k, b))
		}
		digits[i] = val
	}
	return digits, w, PointOK
}

// MontLadderRecoder emits plain bits most-significant-first for the
// Montgomery x-only ladder (spec §4.5.1): LadderStep itself folds the
// conditional swap, so no signed-digit precomputation table is needed
// here, unlike NAFw/PREw.
type MontLadderRecoder struct{}

func (MontLadderRecoder) Recode(k []mp.Word, bitLen int) ([]int, int, Status) {
	digits := make([]int, bitLen)
	for i := 0; i < bitLen; i++ {
		digits[i] = int(getBit(k, bitLen-1-i))
	}
	return digits, 1, PointOK
}
