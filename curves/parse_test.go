package curves

import "testing"

func TestParseHex256MatchesSECP256K1(t *testing.T) {
	p, err := ParseHex256("0xFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F")
	if err != nil {
		t.Fatalf("ParseHex256: %v", err)
	}
	want := SECP256K1().Cfg.Mod.Mod
	if len(p) != len(want) {
		t.Fatalf("limb count = %d, want %d", len(p), len(want))
	}
	for i := range want {
		if p[i] != want[i] {
			t.Fatalf("limb %d = %#x, want %#x", i, p[i], want[i])
		}
	}
}

func TestParseDecimal256(t *testing.T) {
	// 2^256 - 2^32 - 977, secp256k1's p in decimal.
	p, err := ParseDecimal256("115792089237316195423570985008687907853269984665640564039457584007908834671663")
	if err != nil {
		t.Fatalf("ParseDecimal256: %v", err)
	}
	want := SECP256K1().Cfg.Mod.Mod
	for i := range want {
		if p[i] != want[i] {
			t.Fatalf("limb %d = %#x, want %#x", i, p[i], want[i])
		}
	}
}
