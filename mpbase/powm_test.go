package mpbase

import "testing"

func TestWinSizeThresholds(t *testing.T) {
	cases := []struct {
		bits int
		want int
	}{
		{4, 1}, {16, 2}, {100, 3}, {200, 4}, {400, 5}, {800, 6}, {2000, 7},
	}
	for _, c := range cases {
		if got := WinSize(c.bits); got != c.want {
			t.Fatalf("WinSize(%d) = %d, want %d", c.bits, got, c.want)
		}
	}
}

func TestPowmNaiveOps(t *testing.T) {
	// 4^13 mod 97 == 93.
	mp := []uint64{97}
	ops := NewNaiveOps(mp, 1)
	rp := make([]uint64, 1)
	Powm(rp, []uint64{4}, 1, []uint64{13}, 4, ops)
	if rp[0] != 93 {
		t.Fatalf("4^13 mod 97 = %d, want 93", rp[0])
	}
}

func TestPowmMontgomeryOpsMatchesNaive(t *testing.T) {
	mp := []uint64{testM97}
	mops := NewMontgomeryOps(mp, testMip97, []uint64{testR2_97}, 1)
	nops := NewNaiveOps(mp, 1)

	base := []uint64{11}
	exp := []uint64{13}

	rpM := make([]uint64, 1)
	Powm(rpM, base, 1, exp, 4, mops)
	rpN := make([]uint64, 1)
	Powm(rpN, base, 1, exp, 4, nops)

	if rpM[0] != rpN[0] {
		t.Fatalf("Montgomery/naive Powm disagree: %d vs %d", rpM[0], rpN[0])
	}
}

func TestPowmMultiLimbSolinasModulus(t *testing.T) {
	// 2^192 - 2^64 - 1, little-endian limbs.
	mp := []uint64{0xffffffffffffffff, 0xfffffffffffffffe, 0xffffffffffffffff}
	ops := NewNaiveOps(mp, 3)

	base := []uint64{2, 0, 0}

	rp64 := make([]uint64, 3)
	Powm(rp64, base, 3, []uint64{64, 0, 0}, 7, ops)
	want64 := []uint64{0, 1, 0}
	for i := range want64 {
		if rp64[i] != want64[i] {
			t.Fatalf("2^64 mod M = %#x, want %#x", rp64, want64)
		}
	}

	rp192 := make([]uint64, 3)
	Powm(rp192, base, 3, []uint64{192, 0, 0}, 8, ops)
	want192 := []uint64{0, 1, 1}
	for i := range want192 {
		if rp192[i] != want192[i] {
			t.Fatalf("2^192 mod M = %#x, want %#x", rp192, want192)
		}
	}
}

func TestPowmBarrettOpsMatchesNaive(t *testing.T) {
	mp := []uint64{97}
	// mu is unused by the TdivQr-backed reduce() body (see barrettOps.reduce's
	// doc comment), so any placeholder value threads through correctly.
	bops := NewBarrettOps(mp, []uint64{0}, 1)
	nops := NewNaiveOps(mp, 1)

	base := []uint64{23}
	exp := []uint64{9}

	rpB := make([]uint64, 1)
	Powm(rpB, base, 1, exp, 4, bops)
	rpN := make([]uint64, 1)
	Powm(rpN, base, 1, exp, 4, nops)

	if rpB[0] != rpN[0] {
		t.Fatalf("Barrett/naive Powm disagree: %d vs %d", rpB[0], rpN[0])
	}
}
