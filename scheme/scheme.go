// Package scheme is the one worked consumer of the curves/ecc layer: ECDH
// and ECDSA key management over an arbitrary short-Weierstrass prime
// curve (secp256r1, p256k1's own secp256k1, or any other curves.Param
// built on ecc.WeierstrassPrimeAffine/Jacobian).
//
// Where p256k1's ecdh.go/ecdsa.go/eckey.go hardcode secp256k1's
// GroupElementAffine/Jacobian and Scalar types, every function here takes
// a *curves.Param and drives the same shape of computation through
// ecc.Config/ecc.Engine instead, so the identical code path runs over
// P-256 and over secp256k1 as a cross-check of one another.
package scheme

import (
	"crypto/rand"
	"errors"
	"fmt"

	"phantom.dev/curves"
	"phantom.dev/ecc"
	"phantom.dev/mp"
)

var (
	ErrZeroScalar    = errors.New("scheme: scalar is zero")
	ErrScalarRange   = errors.New("scheme: scalar not reduced mod curve order")
	ErrInvalidPoint  = errors.New("scheme: invalid public key point")
	ErrCurveMismatch = errors.New("scheme: keys belong to different curves")
)

// PrivateKey is a scalar reduced mod Param.Order, carried as a limb slice
// the same width as Order.K so it feeds directly into ecc.Config's
// modular arithmetic without reconversion.
type PrivateKey struct {
	Param *curves.Param
	D     []mp.Word
}

// PublicKey is a point on Param's curve, in affine coordinates (the
// on-the-wire representation every serialisation below reads and writes).
type PublicKey struct {
	Param *curves.Param
	Pt    *ecc.WeierstrassPrimeAffine
}

// orderConfig wraps Param.Order in an ecc.Config so scalar arithmetic
// (nonce combination, the Sign/Verify s-value, signature-s low-form
// check) reuses Config's Add/Sub/Mul/Inverse instead of a second,
// duplicate modular-arithmetic implementation -- the curve's field
// element and its scalar are both "a value mod a fixed modulus" and
// Config already generalises that.
func orderConfig(p *curves.Param) *ecc.Config {
	zero := make([]mp.Word, p.Order.K)
	return ecc.NewConfig(p.Order, zero, zero, nil)
}

// Keygen draws a uniformly random private scalar in [1, order) by
// rejection sampling Param.ByteLen random bytes against the curve order
// -- generalised directly off p256k1's ECSeckeyGenerate/
// ECSeckeyVerify loop (eckey.go), which does the same rejection test
// fixed to secp256k1's 32 bytes -- then derives the matching public point.
func Keygen(p *curves.Param) (*PrivateKey, *PublicKey, error) {
	d, err := randScalar(p)
	if err != nil {
		return nil, nil, err
	}
	pub, err := derivePublic(p, d)
	if err != nil {
		return nil, nil, err
	}
	return &PrivateKey{Param: p, D: d}, pub, nil
}

func randScalar(p *curves.Param) ([]mp.Word, error) {
	order := limbsToInt(p.Order.Mod)
	buf := make([]byte, p.ByteLen)
	for {
		if _, err := rand.Read(buf); err != nil {
			return nil, fmt.Errorf("scheme: %w", err)
		}
		cand := new(mp.Int).SetBytes(buf)
		if cand.Sign() == 0 || cand.Cmp(order) >= 0 {
			continue
		}
		return intToLimbs(cand, p.Order.K), nil
	}
}

func derivePublic(p *curves.Param, d []mp.Word) (*PublicKey, error) {
	jac, st := scalarMulBase(p, d)
	if st != ecc.PointOK {
		return nil, fmt.Errorf("scheme: base point multiplication failed: %s", st)
	}
	aff, ok := jac.ConvertToMixed(p.Cfg).(*ecc.WeierstrassPrimeAffine)
	if !ok {
		return nil, ErrInvalidPoint
	}
	return &PublicKey{Param: p, Pt: aff}, nil
}

// SetPrivateKey loads a big-endian, Param.ByteLen-byte scalar, rejecting
// zero and anything not already reduced mod the curve order (grounded on
// ECSeckeyVerify's same two checks, generalised off the fixed 32 bytes).
func SetPrivateKey(p *curves.Param, raw []byte) (*PrivateKey, error) {
	if len(raw) != p.ByteLen {
		return nil, fmt.Errorf("scheme: private key must be %d bytes", p.ByteLen)
	}
	cand := new(mp.Int).SetBytes(raw)
	if cand.Sign() == 0 {
		return nil, ErrZeroScalar
	}
	if cand.Cmp(limbsToInt(p.Order.Mod)) >= 0 {
		return nil, ErrScalarRange
	}
	return &PrivateKey{Param: p, D: intToLimbs(cand, p.Order.K)}, nil
}

// GetPrivateKey returns the private scalar as Param.ByteLen big-endian bytes.
func (priv *PrivateKey) GetPrivateKey() []byte {
	return limbsToBytesFixed(priv.D, priv.Param.ByteLen)
}

// PublicKey derives the public point for this private key.
func (priv *PrivateKey) PublicKey() (*PublicKey, error) {
	return derivePublic(priv.Param, priv.D)
}

// Bytes returns the uncompressed SEC1 encoding 0x04 || X || Y, zero-filled
// for the point at infinity (generalised off p256k1's toBytes/
// fromBytes 64-byte X||Y layout in group.go, with the standard SEC1
// leading tag added since this package serves more than one curve width).
func (pub *PublicKey) Bytes() []byte {
	p := pub.Param
	out := make([]byte, 2*p.ByteLen+1)
	if pub.Pt.Infinity {
		return out
	}
	out[0] = 0x04
	copy(out[1:1+p.ByteLen], limbsToBytesFixed(pub.Pt.X, p.ByteLen))
	copy(out[1+p.ByteLen:], limbsToBytesFixed(pub.Pt.Y, p.ByteLen))
	return out
}

// SetPublicKey parses the uncompressed SEC1 encoding produced by Bytes,
// verifying the point actually satisfies the curve equation (group.go's
// fromBytes trusts its input; this generalisation cannot, since raw bytes
// here may come from an untrusted peer rather than a value this module
// itself just serialised).
func SetPublicKey(p *curves.Param, raw []byte) (*PublicKey, error) {
	if len(raw) != 2*p.ByteLen+1 || raw[0] != 0x04 {
		return nil, errors.New("scheme: invalid uncompressed public key encoding")
	}
	k := p.Cfg.Limbs()
	x := intToLimbs(new(mp.Int).SetBytes(raw[1:1+p.ByteLen]), k)
	y := intToLimbs(new(mp.Int).SetBytes(raw[1+p.ByteLen:]), k)
	pt := &ecc.WeierstrassPrimeAffine{X: x, Y: y, Infinity: false}
	if !onCurve(p, pt) {
		return nil, ErrInvalidPoint
	}
	return &PublicKey{Param: p, Pt: pt}, nil
}

// Compressed returns the SEC1 compressed encoding (0x02/0x03 || X),
// exercising YRecovery's counterpart direction -- Y's sign is folded into
// the tag byte instead of carried explicitly.
func (pub *PublicKey) Compressed() []byte {
	p := pub.Param
	out := make([]byte, p.ByteLen+1)
	if pub.Pt.Infinity {
		return out
	}
	yBytes := limbsToBytesFixed(pub.Pt.Y, p.ByteLen)
	if yBytes[len(yBytes)-1]&1 == 1 {
		out[0] = 0x03
	} else {
		out[0] = 0x02
	}
	copy(out[1:], limbsToBytesFixed(pub.Pt.X, p.ByteLen))
	return out
}

// SetPublicKeyCompressed parses the compressed encoding via
// WeierstrassPrimeAffine.YRecovery, the one ecc.Point method this package
// has no other caller for.
func SetPublicKeyCompressed(p *curves.Param, raw []byte) (*PublicKey, error) {
	if len(raw) != p.ByteLen+1 || (raw[0] != 0x02 && raw[0] != 0x03) {
		return nil, errors.New("scheme: invalid compressed public key encoding")
	}
	x := intToLimbs(new(mp.Int).SetBytes(raw[1:]), p.Cfg.Limbs())
	pt := ecc.NewWeierstrassPrimeAffine(p.Cfg)
	if st := pt.YRecovery(p.Cfg, x, raw[0] == 0x03); st != ecc.PointOK {
		return nil, ErrInvalidPoint
	}
	return &PublicKey{Param: p, Pt: pt}, nil
}

func onCurve(p *curves.Param, pt *ecc.WeierstrassPrimeAffine) bool {
	cfg := p.Cfg
	lhs := cfg.NewElement()
	cfg.Sqr(lhs, pt.Y)
	x2, x3, ax, rhs := cfg.NewElement(), cfg.NewElement(), cfg.NewElement(), cfg.NewElement()
	cfg.Sqr(x2, pt.X)
	cfg.Mul(x3, x2, pt.X)
	cfg.Mul(ax, cfg.A, pt.X)
	cfg.Add(rhs, x3, ax)
	cfg.Add(rhs, rhs, cfg.B)
	return cfg.Equal(lhs, rhs)
}

// scalarMulBase computes k*G for Param's standard base point, building a
// fresh NAFw-recoded Engine per call -- this package favours a correct,
// simple single-shot path over the caller-held, reusable Engine the ecc
// package itself exposes for repeated multiplication by the same base.
func scalarMulBase(p *curves.Param, k []mp.Word) (*ecc.WeierstrassPrimeJacobian, ecc.Status) {
	g := &ecc.WeierstrassPrimeAffine{X: p.Gx, Y: p.Gy}
	return scalarMulPoint(p, k, g)
}

func scalarMulPoint(p *curves.Param, k []mp.Word, pt *ecc.WeierstrassPrimeAffine) (*ecc.WeierstrassPrimeJacobian, ecc.Status) {
	base := ecc.NewWeierstrassPrimeJacobian(p.Cfg)
	if st := base.ConvertFrom(p.Cfg, pt); st != ecc.PointOK {
		return nil, st
	}
	eng := ecc.NewEngine[*ecc.WeierstrassPrimeJacobian](p.Cfg, ecc.NAFwRecoder{W: 4})
	if st := eng.Setup(base); st != ecc.PointOK {
		return nil, st
	}
	zero := ecc.NewWeierstrassPrimeJacobian(p.Cfg)
	return eng.ScalarPointMul(k, p.Bits, zero)
}
