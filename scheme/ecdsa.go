package scheme

import (
	"errors"
	"fmt"

	"phantom.dev"
	"phantom.dev/curves"
	"phantom.dev/ecc"
	"phantom.dev/mp"
)

// Sign produces an ECDSA signature over a Param.ByteLen-byte message
// digest, generalising ECDSASign (ecdsa.go) off secp256k1's fixed 32-byte
// Scalar/GroupElement types: the RFC 6979 deterministic-nonce generator
// is p256k1's own RFC6979HMACSHA256 unchanged (it already loops to
// fill more than one 32-byte HMAC block, so it needs no change to serve
// curves wider than 256 bits), and the low-S normalisation at the end is
// p256k1's isHigh/condNegate pair re-expressed with ecc.Config.Neg.
func Sign(priv *PrivateKey, msgHash []byte) (r, s []byte, err error) {
	p := priv.Param
	if len(msgHash) != p.ByteLen {
		return nil, nil, fmt.Errorf("scheme: message hash must be %d bytes", p.ByteLen)
	}
	oc := orderConfig(p)

	secBytes := priv.GetPrivateKey()
	nonceKey := make([]byte, 0, len(msgHash)+len(secBytes))
	nonceKey = append(nonceKey, msgHash...)
	nonceKey = append(nonceKey, secBytes...)
	rng := p256k1.NewRFC6979HMACSHA256(nonceKey)
	defer rng.Clear()

	order := limbsToInt(p.Order.Mod)
	nonceBuf := make([]byte, p.ByteLen)
	var nonce []mp.Word
	for {
		rng.Generate(nonceBuf)
		cand := new(mp.Int).SetBytes(nonceBuf)
		if cand.Sign() == 0 || cand.Cmp(order) >= 0 {
			continue
		}
		nonce = intToLimbs(cand, p.Order.K)
		break
	}
	rng.Finalize()

	rJac, st := scalarMulBase(p, nonce)
	if st != ecc.PointOK {
		return nil, nil, fmt.Errorf("scheme: nonce point multiplication failed: %s", st)
	}
	rAff, ok := rJac.ConvertToMixed(p.Cfg).(*ecc.WeierstrassPrimeAffine)
	if !ok || rAff.Infinity {
		return nil, nil, errors.New("scheme: signature R is point at infinity")
	}

	rWords := reduceBytesModOrder(p, limbsToBytesFixed(rAff.X, p.ByteLen))
	if oc.IsZero(rWords) {
		return nil, nil, errors.New("scheme: signature r is zero")
	}

	msgWords := reduceBytesModOrder(p, msgHash)

	t := oc.NewElement()
	oc.Mul(t, rWords, priv.D)
	oc.Add(t, t, msgWords)

	nonceInv := oc.NewElement()
	oc.Inverse(nonceInv, nonce)

	sWords := oc.NewElement()
	oc.Mul(sWords, nonceInv, t)
	if oc.IsZero(sWords) {
		return nil, nil, errors.New("scheme: signature s is zero")
	}

	if isHighScalar(oc, sWords) {
		oc.Neg(sWords, sWords)
	}

	return limbsToBytesFixed(rWords, p.ByteLen), limbsToBytesFixed(sWords, p.ByteLen), nil
}

// isHighScalar reports whether s > order/2, the same threshold
// ECDSASign's sig.s.isHigh() checks before condNegate-ing to the
// canonical low-S form.
func isHighScalar(oc *ecc.Config, s []mp.Word) bool {
	order := limbsToInt(oc.Mod.Mod)
	half, rem := new(mp.Int), new(mp.Int)
	half.QuoRem(order, mp.NewInt(2), rem)
	return limbsToInt(s).Cmp(half) > 0
}

// Verify checks an ECDSA signature, computing R = u1*G + u2*P in one
// Shamir's-trick pass via Engine.ScalarPointMulDual instead of
// ECDSAVerify's manual 256-iteration double-and-add loop for u2*P
// (ecdsa.go leaves that loop as a documented TODO; the dual recoder this
// module already has for exactly this shape replaces it outright).
func Verify(pub *PublicKey, msgHash, rBytes, sBytes []byte) bool {
	p := pub.Param
	if len(msgHash) != p.ByteLen || len(rBytes) != p.ByteLen || len(sBytes) != p.ByteLen {
		return false
	}
	oc := orderConfig(p)
	order := limbsToInt(p.Order.Mod)

	rInt := new(mp.Int).SetBytes(rBytes)
	sInt := new(mp.Int).SetBytes(sBytes)
	if rInt.Sign() == 0 || sInt.Sign() == 0 || rInt.Cmp(order) >= 0 || sInt.Cmp(order) >= 0 {
		return false
	}
	rWords := intToLimbs(rInt, p.Order.K)
	sWords := intToLimbs(sInt, p.Order.K)

	sInv := oc.NewElement()
	oc.Inverse(sInv, sWords)

	msgWords := reduceBytesModOrder(p, msgHash)
	u1 := oc.NewElement()
	oc.Mul(u1, msgWords, sInv)
	u2 := oc.NewElement()
	oc.Mul(u2, rWords, sInv)

	R, st := verifyDualMul(p, u1, u2, pub.Pt)
	if st != ecc.PointOK || R.IsInfinity() {
		return false
	}

	rAff, ok := R.ConvertToMixed(p.Cfg).(*ecc.WeierstrassPrimeAffine)
	if !ok {
		return false
	}
	computedR := reduceBytesModOrder(p, limbsToBytesFixed(rAff.X, p.ByteLen))
	return oc.Equal(computedR, rWords)
}

// verifyDualMul computes u1*G + u2*pub via BinaryDualRecoder's
// synchronised digit pairs (ecc/scalar.go), the Shamir's-trick
// simultaneous multiplication spec §4.5.1 names alongside NAFw/PREw.
func verifyDualMul(p *curves.Param, u1, u2 []mp.Word, pub *ecc.WeierstrassPrimeAffine) (*ecc.WeierstrassPrimeJacobian, ecc.Status) {
	baseG := ecc.NewWeierstrassPrimeJacobian(p.Cfg)
	if st := baseG.ConvertFrom(p.Cfg, &ecc.WeierstrassPrimeAffine{X: p.Gx, Y: p.Gy}); st != ecc.PointOK {
		return nil, st
	}
	pubJac := ecc.NewWeierstrassPrimeJacobian(p.Cfg)
	if st := pubJac.ConvertFrom(p.Cfg, pub); st != ecc.PointOK {
		return nil, st
	}
	eng := ecc.NewEngine[*ecc.WeierstrassPrimeJacobian](p.Cfg, ecc.BinaryDualRecoder{K2: u2})
	if st := eng.Setup(baseG); st != ecc.PointOK {
		return nil, st
	}
	zero := ecc.NewWeierstrassPrimeJacobian(p.Cfg)
	return eng.ScalarPointMulDual(u1, p.Bits, pubJac, zero)
}
