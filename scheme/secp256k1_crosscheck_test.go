package scheme

import (
	"bytes"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"

	"phantom.dev/curves"
)

// TestSecp256k1PublicKeyMatchesBtcec cross-checks this package's generic
// Config/Engine-driven public key derivation against btcsuite/btcd/btcec's
// established secp256k1 implementation for the same raw private scalar --
// the same role p256k1's own integration_test.go gave btcec/v2, just
// against scheme.SetPrivateKey/PublicKey instead of p256k1's now-
// removed fixed-prime Scalar/GroupElement types.
func TestSecp256k1PublicKeyMatchesBtcec(t *testing.T) {
	p := curves.SECP256K1()
	priv, pub, err := Keygen(p)
	if err != nil {
		t.Fatalf("Keygen: %v", err)
	}
	secBytes := priv.GetPrivateKey()

	_, btcPub := btcec.PrivKeyFromBytes(secBytes)
	want := btcPub.SerializeUncompressed()
	got := pub.Bytes()
	if !bytes.Equal(got, want) {
		t.Fatalf("public key mismatch:\n  got  %x\n  want %x", got, want)
	}
}

// TestSecp256k1PublicKeyMatchesBtcecFixedScalar repeats the same check
// against a fixed, non-random scalar so the cross-check fixture itself is
// reproducible without depending on Keygen's randomness.
func TestSecp256k1PublicKeyMatchesBtcecFixedScalar(t *testing.T) {
	p := curves.SECP256K1()
	sec := make([]byte, p.ByteLen)
	sec[p.ByteLen-1] = 0x01
	for i := 0; i < 16; i++ {
		sec[i] = byte(i + 1)
	}

	priv, err := SetPrivateKey(p, sec)
	if err != nil {
		t.Fatalf("SetPrivateKey: %v", err)
	}
	pub, err := priv.PublicKey()
	if err != nil {
		t.Fatalf("PublicKey: %v", err)
	}

	_, btcPub := btcec.PrivKeyFromBytes(sec)
	want := btcPub.SerializeUncompressed()
	got := pub.Bytes()
	if !bytes.Equal(got, want) {
		t.Fatalf("public key mismatch:\n  got  %x\n  want %x", got, want)
	}
}
