package scheme

import (
	"crypto/rand"
	"errors"
	"fmt"

	"phantom.dev/curves"
	"phantom.dev/ecc"
	"phantom.dev/mp"
)

// MontgomeryKeygen and MontgomeryKeyExchange implement RFC 7748's X25519/
// X448 raw scalar multiplication over curves.Curve25519()/curves.Curve448(),
// the x-only counterpart to scheme.go's Weierstrass ECDH: where Keygen
// rejection-samples a scalar against the curve order (ECSeckeyGenerate's
// approach, generalised), X25519/X448 scalars are any random byte string
// run through a fixed clamp, so no rejection loop is needed here.
//
// X25519/X448 encode both scalars and u-coordinates little-endian (RFC
// 7748 §5's decodeScalar/decodeUCoordinate); every other function in this
// package follows p256k1's big-endian SEC1 convention instead, so the
// byte order here is deliberately local to this file.
var ErrLowOrderPoint = errors.New("scheme: shared secret is all-zero (low-order input point)")

// MontgomeryKeygen draws a random clamped private scalar and its
// corresponding public u-coordinate against p's standard base point.
func MontgomeryKeygen(p *curves.Param) (priv, pub []byte, err error) {
	priv = make([]byte, p.ByteLen)
	if _, err := rand.Read(priv); err != nil {
		return nil, nil, fmt.Errorf("scheme: %w", err)
	}
	clampMontgomeryScalar(priv, p)
	pub, err = montgomeryLadder(p, priv, p.Gx)
	if err != nil {
		return nil, nil, err
	}
	return priv, pub, nil
}

// clampMontgomeryScalar applies RFC 7748's fixed bit-clamp in place: it
// clears the low bits that would otherwise land the ladder off the prime-
// order subgroup and fixes the scalar's bit length so every clamped value
// runs the ladder for the same number of steps regardless of its random
// high bits.
func clampMontgomeryScalar(k []byte, p *curves.Param) {
	switch p.ByteLen {
	case 32: // Curve25519
		k[0] &^= 7
		k[31] &^= 0x80
		k[31] |= 0x40
	case 56: // Curve448
		k[0] &^= 3
		k[55] |= 0x80
	}
}

// MontgomeryKeyExchange multiplies priv (clamped) against peerU, a peer's
// raw u-coordinate, and returns the resulting shared u-coordinate. Per RFC
// 7748 §6.1, any field element is accepted as peerU -- including ones on
// the curve's quadratic twist -- and the only required check is that the
// output is not the all-zero low-order result.
func MontgomeryKeyExchange(p *curves.Param, priv, peerU []byte) ([]byte, error) {
	if len(peerU) != p.ByteLen {
		return nil, fmt.Errorf("scheme: peer u-coordinate must be %d bytes", p.ByteLen)
	}
	// RFC 7748 §5's decodeUCoordinate masks any padding bits above the
	// field's bit length before use -- Curve25519 packs a 255-bit field
	// into 32 bytes, so the top bit of the last byte (little-endian) is
	// untrusted padding, not part of the value. Curve448's 448-bit field
	// fills its 56 bytes exactly, so this is a no-op there.
	masked := append([]byte(nil), peerU...)
	if pad := p.ByteLen*8 - p.Bits; pad > 0 {
		masked[p.ByteLen-1] &^= 0xFF << uint(8-pad)
	}
	u := intToLimbs(new(mp.Int).SetBytes(reverseBytes(masked)), p.Cfg.Limbs())
	out, err := montgomeryLadder(p, priv, u)
	if err != nil {
		return nil, err
	}
	zero := true
	for _, b := range out {
		if b != 0 {
			zero = false
			break
		}
	}
	if zero {
		return nil, ErrLowOrderPoint
	}
	return out, nil
}

func montgomeryLadder(p *curves.Param, priv []byte, u []mp.Word) ([]byte, error) {
	if len(priv) != p.ByteLen {
		return nil, fmt.Errorf("scheme: private scalar must be %d bytes", p.ByteLen)
	}
	clamped := append([]byte(nil), priv...)
	clampMontgomeryScalar(clamped, p)
	k := intToLimbs(new(mp.Int).SetBytes(reverseBytes(clamped)), p.Cfg.Limbs())

	base := ecc.NewMontgomeryProjective(p.Cfg)
	copy(base.X, u)
	base.Z[0] = 1
	base.Infinity = false

	eng := ecc.NewEngine[*ecc.MontgomeryProjective](p.Cfg, ecc.MontLadderRecoder{})
	if st := eng.Setup(base); st != ecc.PointOK {
		return nil, fmt.Errorf("scheme: ladder setup failed: %s", st)
	}
	zero := ecc.NewMontgomeryProjective(p.Cfg)
	result, st := eng.ScalarPointMul(k, p.Bits, zero)
	if st != ecc.PointOK {
		return nil, fmt.Errorf("scheme: ladder multiplication failed: %s", st)
	}
	mixed := result.ConvertToMixed(p.Cfg).(*ecc.MontgomeryProjective)
	if mixed.Infinity {
		return make([]byte, p.ByteLen), nil
	}
	return reverseBytes(limbsToBytesFixed(mixed.X, p.ByteLen)), nil
}

func reverseBytes(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}
