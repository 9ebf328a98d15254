package scheme

import (
	"errors"
	"fmt"

	"phantom.dev"
	"phantom.dev/ecc"
)

// KeyExchange computes an EC Diffie-Hellman shared secret, hashed the
// same way ecdhHashFunctionSHA256 (ecdh.go) hashes secp256k1's: a version
// byte folding in the result point's Y parity, then SHA-256 over
// version||X. ecdhHashFunctionSHA256 itself is unexported, so this
// reimplements its three lines rather than reaching into p256k1's own
// package, but calls p256k1's own NewSHA256 (backed by
// minio/sha256-simd) to do it.
func KeyExchange(priv *PrivateKey, peer *PublicKey) ([]byte, error) {
	if priv.Param.Name != peer.Param.Name {
		return nil, ErrCurveMismatch
	}
	p := priv.Param
	jac, st := scalarMulPoint(p, priv.D, peer.Pt)
	if st != ecc.PointOK {
		return nil, fmt.Errorf("scheme: key exchange multiplication failed: %s", st)
	}
	aff, ok := jac.ConvertToMixed(p.Cfg).(*ecc.WeierstrassPrimeAffine)
	if !ok || aff.Infinity {
		return nil, errors.New("scheme: key exchange result is point at infinity")
	}

	x := limbsToBytesFixed(aff.X, p.ByteLen)
	y := limbsToBytesFixed(aff.Y, p.ByteLen)
	version := byte((y[len(y)-1] & 0x01) | 0x02)

	h := p256k1.NewSHA256()
	h.Write([]byte{version})
	h.Write(x)
	out := make([]byte, 32)
	h.Finalize(out)
	return out, nil
}

// KeyExchangeHKDF derives outLen bytes of key material from a KeyExchange
// shared secret via p256k1's own HKDF (RFC 5869, hash.go) -- the
// general-purpose key-derivation counterpart to KeyExchange's fixed
// 32-byte SHA-256 hash, for callers needing a longer or differently
// salted/labelled output.
func KeyExchangeHKDF(priv *PrivateKey, peer *PublicKey, outLen int, salt, info []byte) ([]byte, error) {
	secret, err := KeyExchange(priv, peer)
	if err != nil {
		return nil, err
	}
	out := make([]byte, outLen)
	if err := p256k1.HKDF(out, secret, salt, info); err != nil {
		return nil, err
	}
	return out, nil
}
