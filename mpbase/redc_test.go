package mpbase

import "testing"

// Montgomery parameters for m=97 (1 limb), precomputed by hand:
// R = 2^64 mod 97 = 61, R^2 mod 97 = 35, mip = -97^-1 mod 2^64.
const (
	testM97   = uint64(97)
	testMip97 = uint64(0x5c5f02a3a0fd5c5f)
	testR2_97 = uint64(35)
)

func TestBinvertLimbMatchesHandDerivedMip(t *testing.T) {
	if got := BinvertLimb(testM97); got != testMip97 {
		t.Fatalf("BinvertLimb(97) = %#x, want %#x", got, testMip97)
	}
}

func TestMontgomeryRoundTrip(t *testing.T) {
	mp := []uint64{testM97}
	ops := NewMontgomeryOps(mp, testMip97, []uint64{testR2_97}, 1)

	a := []uint64{5}
	dom := make([]uint64, 1)
	ops.ToDomain(dom, a)
	if dom[0] != 14 { // 5*61 mod 97 = 14
		t.Fatalf("ToDomain(5) = %d, want 14", dom[0])
	}
	back := make([]uint64, 1)
	ops.FromDomain(back, dom)
	if back[0] != 5 {
		t.Fatalf("FromDomain(ToDomain(5)) = %d, want 5", back[0])
	}
}

func TestMontgomeryMulMatchesPlainModMul(t *testing.T) {
	mp := []uint64{testM97}
	ops := NewMontgomeryOps(mp, testMip97, []uint64{testR2_97}, 1)

	a, b := []uint64{11}, []uint64{13}
	aDom, bDom := make([]uint64, 1), make([]uint64, 1)
	ops.ToDomain(aDom, a)
	ops.ToDomain(bDom, b)

	prodDom := make([]uint64, 1)
	ops.Mul(prodDom, aDom, bDom)
	prod := make([]uint64, 1)
	ops.FromDomain(prod, prodDom)

	want := uint64(11*13) % 97
	if prod[0] != want {
		t.Fatalf("Montgomery 11*13 mod 97 = %d, want %d", prod[0], want)
	}
}

func TestBinvertMultiLimb(t *testing.T) {
	// Odd 2-limb modulus; Binvert's ip must satisfy ip*dp == 1 (mod B^2).
	dp := []uint64{0xDEADBEEFDEADBEEF, 0x1}
	ip := make([]uint64, 2)
	Binvert(ip, dp, 2)

	prod := make([]uint64, 4)
	MulBasecase(prod, ip, 2, dp, 2)
	if prod[0] != 1 || prod[1] != 0 {
		t.Fatalf("ip*dp mod B^2 = [%#x %#x], want [1 0]", prod[0], prod[1])
	}
}

func TestMulmodBnm1(t *testing.T) {
	// n=1: (a*b) mod (B-1); pick operands that keep the product's fold
	// within a couple of additions.
	a := []uint64{5}
	b := []uint64{7}
	rp := make([]uint64, 1)
	MulmodBnm1(rp, a, b, 1)
	want := (uint64(35)) % (^uint64(0))
	if rp[0] != want {
		t.Fatalf("MulmodBnm1(5,7) = %d, want %d", rp[0], want)
	}
}
