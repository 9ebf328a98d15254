package shamir

import (
	"bytes"
	"testing"
)

func TestSplitCombineRoundTrip(t *testing.T) {
	secret := []byte("a secret that spans more than one 32-byte chunk of GF(256) shares")
	shares, err := Split(secret, 5, 3)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if len(shares) != 5 {
		t.Fatalf("got %d shares, want 5", len(shares))
	}

	got, err := Combine(shares[:3])
	if err != nil {
		t.Fatalf("Combine: %v", err)
	}
	if !bytes.Equal(got, secret) {
		t.Fatalf("Combine(shares[:3]) = %q, want %q", got, secret)
	}
}

// TestShamirN5K3ConcreteScenario reproduces spec §8's literal n=5, k=3
// scenario directly: any three of five shares reconstruct the secret,
// and two shares alone do not.
func TestShamirN5K3ConcreteScenario(t *testing.T) {
	secret := make([]byte, 32)
	for i := range secret {
		secret[i] = byte(i * 7)
	}
	shares, err := Split(secret, 5, 3)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if len(shares) != 5 {
		t.Fatalf("got %d shares, want 5", len(shares))
	}

	subsets := [][]int{{0, 1, 2}, {1, 3, 4}, {0, 2, 4}}
	for _, idx := range subsets {
		sub := make([][]byte, len(idx))
		for i, j := range idx {
			sub[i] = shares[j]
		}
		got, err := Combine(sub)
		if err != nil {
			t.Fatalf("Combine(%v): %v", idx, err)
		}
		if !bytes.Equal(got, secret) {
			t.Fatalf("Combine(%v) = %x, want %x", idx, got, secret)
		}
	}

	two, err := Combine(shares[:2])
	if err == nil && bytes.Equal(two, secret) {
		t.Fatal("two of five shares alone reconstructed the secret")
	}
}

func TestCombineAnySubsetOfKReconstructs(t *testing.T) {
	secret := []byte("another secret")
	shares, err := Split(secret, 6, 4)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}

	subsets := [][]int{
		{0, 1, 2, 3},
		{2, 3, 4, 5},
		{0, 2, 4, 5},
	}
	for _, idx := range subsets {
		sub := make([][]byte, len(idx))
		for i, j := range idx {
			sub[i] = shares[j]
		}
		got, err := Combine(sub)
		if err != nil {
			t.Fatalf("Combine(%v): %v", idx, err)
		}
		if !bytes.Equal(got, secret) {
			t.Fatalf("Combine(%v) = %q, want %q", idx, got, secret)
		}
	}
}

func TestSplitRejectsInvalidParams(t *testing.T) {
	secret := []byte("x")
	cases := []struct{ n, k int }{
		{0, 1}, {5, 0}, {3, 5}, {256, 1},
	}
	for _, c := range cases {
		if _, err := Split(secret, c.n, c.k); err != ErrInvalidParams {
			t.Fatalf("Split(n=%d,k=%d) err = %v, want ErrInvalidParams", c.n, c.k, err)
		}
	}
}

func TestSplitRejectsEmptySecret(t *testing.T) {
	if _, err := Split(nil, 3, 2); err != ErrEmptySecret {
		t.Fatalf("err = %v, want ErrEmptySecret", err)
	}
}

func TestCombineRejectsTooFewShares(t *testing.T) {
	shares, err := Split([]byte("secret"), 3, 2)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if _, err := Combine(shares[:1]); err != ErrTooFewShares {
		t.Fatalf("err = %v, want ErrTooFewShares", err)
	}
}

func TestCombineRejectsMismatchedShareLengths(t *testing.T) {
	shares, err := Split([]byte("secret"), 3, 2)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	bad := append([][]byte{}, shares...)
	bad[1] = append(bad[1], 0xFF)
	if _, err := Combine(bad); err != ErrShareMismatch {
		t.Fatalf("err = %v, want ErrShareMismatch", err)
	}
}

func TestCombineRejectsDuplicateIndex(t *testing.T) {
	shares, err := Split([]byte("secret"), 3, 2)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	dup := [][]byte{shares[0], append([]byte{}, shares[0]...)}
	if _, err := Combine(dup); err != ErrDuplicateShare {
		t.Fatalf("err = %v, want ErrDuplicateShare", err)
	}
}

func TestSplitSingleByteSecret(t *testing.T) {
	secret := []byte{0x42}
	shares, err := Split(secret, 3, 2)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	got, err := Combine(shares[:2])
	if err != nil {
		t.Fatalf("Combine: %v", err)
	}
	if !bytes.Equal(got, secret) {
		t.Fatalf("got %v, want %v", got, secret)
	}
}

func TestScalarMulInvAgreeWithGf256(t *testing.T) {
	for a := 1; a < 256; a++ {
		inv := scalarInv(byte(a))
		if scalarMul(byte(a), inv) != 1 {
			t.Fatalf("scalarMul(%#x, scalarInv(%#x)=%#x) != 1", a, a, inv)
		}
	}
}
