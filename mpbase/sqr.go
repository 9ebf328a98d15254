package mpbase

// SqrBasecase computes rp[0:2n] = ap[0:n]^2. Implemented in terms of the
// schoolbook multiplier rather than a dedicated diagonal-elimination
// squaring loop (DESIGN.md: squaring is the one corner where reusing the
// verified multiply kernel was judged safer than hand-deriving the
// doubled-cross-term recurrence for this exercise).
func SqrBasecase[W Word](rp, ap []W, n int) {
	MulBasecase(rp, ap, n, ap, n)
}

// SqrN computes rp[0:2n] = ap[0:n]^2, dispatching by the squaring
// algorithm-selection thresholds (spec §4.2.2). Above SqrToom2Threshold
// and SqrToom3Threshold/SqrFFTThreshold alike, this routes through the
// multiplication dispatcher MulN -- the same simplification documented for
// Mul/MulN in DESIGN.md: one verified recursive kernel serves both the
// Toom-2/Toom-3 squaring variants and the FFT-threshold squaring path,
// rather than a dedicated diagonal-elimination Toom-2/Toom-3 squarer.
func SqrN[W Word](rp, ap []W, n int) {
	if n < SqrToom2Threshold {
		SqrBasecase(rp, ap, n)
		return
	}
	MulN(rp, ap, ap, n)
}

// Sqr is the public squaring entry point.
func Sqr[W Word](rp, ap []W, n int) {
	SqrN(rp, ap, n)
}

// SqrLowN computes only the low n limbs of ap[0:n]^2.
func SqrLowN[W Word](rp, ap []W, n int) {
	MulLowN(rp, ap, ap, n)
}
