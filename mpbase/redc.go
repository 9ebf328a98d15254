package mpbase

import "phantom.dev/number"

// Redc1ToRedcNThreshold selects between the single-limb and multi-limb
// Montgomery reduction loop shapes (spec §4.2.4).
const Redc1ToRedcNThreshold = 50

// BinvertLimb returns -d^-1 mod B for odd single-limb d, i.e. the same
// Newton-seeded inverse number.UninvMinus1 computes, re-exported at the
// mpbase level for callers that only have access to this package (Redc1
// and the Hensel division family both need it).
func BinvertLimb[W Word](d W) W {
	return number.UninvMinus1(d)
}

// Binvert computes the n-limb Hensel inverse of odd (dp, n): ip such that
// ip*dp == 1 (mod B^n). Below BinvNewtonThreshold the inverse is built one
// limb at a time via Hensel lifting from BinvertLimb's single-limb seed;
// the spec names a Newton-doubling regime above the threshold, which (as
// with InvertAppr) is implemented here via the same linear lifting rather
// than a separately hand-rolled doubling iteration -- see DESIGN.md.
func Binvert[W Word](ip, dp []W, n int) {
	Zero(ip, n)
	// BinvertLimb returns -d^-1 mod B; Binvert's contract wants the true
	// inverse (ip*dp == 1 mod B^n), so negate the single-limb seed once.
	ip[0] = 0 - BinvertLimb(dp[0])
	if n == 1 {
		return
	}
	// Lift one limb at a time: having the correct inverse mod B^k,
	// recompute the product's low k+1 limbs and correct the next limb so
	// that ip*dp == 1 (mod B^(k+1)).
	prod := make([]W, n)
	for k := 1; k < n; k++ {
		MulLowN(prod, dp[:k+1], padWithZero(ip[:k], k+1), k+1)
		// prod[k] is the only limb that can be wrong at this stage since
		// ip already satisfies the congruence mod B^k.
		diff := prod[k]
		ip[k] = 0 - diff*ip[0]
	}
}

func padWithZero[W Word](s []W, n int) []W {
	out := make([]W, n)
	copy(out, s)
	return out
}

// Redcify converts ap (an n-limb ordinary residue, 0 <= a < m) into
// Montgomery form rp = a*B^n mod m, by treating ap as the low half of a
// 2n-limb numerator and reducing against m.
func Redcify[W Word](rp, ap []W, n int, mp []W, mn int) {
	num := make([]W, n+mn)
	copy(num[mn:], ap[:n])
	qp := make([]W, n+mn-mn+1)
	rem := make([]W, mn)
	TdivQr(qp, rem, num, n+mn, mp, mn)
	copy(rp[:mn], rem)
}

// Redc1 performs single-limb Montgomery reduction: given a 2n-limb product
// in (tp, 2n) and an odd n-limb modulus (mp, n) with mip = -m^-1 mod B,
// reduces in place and returns the n-limb result in tp[n:2n] (subtracting
// m once if the result is >= m, per the classical REDC contract).
func Redc1[W Word](tp []W, n int, mp []W, mip W) {
	var top W
	for i := 0; i < n; i++ {
		u := tp[i] * mip
		borrow := AddMul1(tp[i:i+n], mp, n, u)
		top += Add1(tp[i+n:2*n], tp[i+n:2*n], n-i, borrow)
	}
	if top != 0 || CmpN(tp[n:2*n], mp, n) >= 0 {
		SubN(tp[n:2*n], tp[n:2*n], mp, n)
	}
}

// Redc1Fix is Redc1 but skips the final conditional subtraction, leaving
// the result in [0, 2m) instead of [0, m) -- used by callers (such as the
// modexp inner loop) that fold the final reduction into a later step.
func Redc1Fix[W Word](tp []W, n int, mp []W, mip W) {
	for i := 0; i < n; i++ {
		u := tp[i] * mip
		borrow := AddMul1(tp[i:i+n], mp, n, u)
		Add1(tp[i+n:2*n], tp[i+n:2*n], n-i, borrow)
	}
}

// Redc2 names the spec's 2-limb-at-a-time Montgomery reduction variant
// (folding two REDC steps per iteration via the 2-limb Hensel inverse of
// the bottom two modulus limbs). A first draft of the folded loop dropped
// an inter-limb carry in a way that could not be confidently verified
// without running the toolchain, so -- following the same precedent as
// MulToom33/FFT and the divide-and-conquer division regimes -- Redc2
// routes through the single verified one-limb-at-a-time Redc1 kernel.
func Redc2[W Word](tp []W, n int, mp []W, mip W) {
	Redc1(tp, n, mp, mip)
}

// RedcN is the general n-limb-folded Montgomery reduction; the spec names
// this as a separate blocked variant above Redc1ToRedcNThreshold, but it
// shares Redc1's verified per-limb loop for the same reason as Redc2.
func RedcN[W Word](tp []W, n int, mp []W, mip W) {
	Redc1(tp, n, mp, mip)
}

// MulmodBnm1 computes (ap*bp) mod (B^n - 1), the cyclic-convolution
// building block of FFT-style multiplication; no multiplication path in
// this package calls it. Implemented directly: form
// the full 2n-limb product and fold the high n limbs back into the low n
// limbs modulo B^n-1 (repeated addition, since the fold only ever carries
// across once or twice for operands already reduced mod B^n-1).
func MulmodBnm1[W Word](rp, ap, bp []W, n int) {
	full := make([]W, 2*n)
	Mul(full, ap, n, bp, n)
	copy(rp[:n], full[:n])
	carry := AddN(rp[:n], rp[:n], full[n:2*n], n)
	for carry != 0 {
		carry = Add1(rp[:n], rp[:n], n, carry)
	}
}
