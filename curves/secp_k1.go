package curves

import (
	"sync"

	"phantom.dev/ecc"
)

var (
	secp256k1Once sync.Once
	secp256k1     *Param
)

// SECP256K1 returns the Koblitz prime curve p256k1's library was
// originally built around -- the scheme package's worked cross-check runs
// the same ECDSA/ECDH it runs over secp256r1, but through this general
// Config/Engine path instead of p256k1's original fixed-prime
// FieldElement/GroupElement types, so the two curves are exercised by the
// same generic code and can be compared against the same test vectors.
func SECP256K1() *Param {
	secp256k1Once.Do(func() {
		p := words(0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFEFFFFFC2F)
		mod := montConfig(p)
		a := words(0, 0, 0, 0)
		b := words(0, 0, 0, 7)
		n := words(0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFE, 0xBAAEDCE6AF48A03B, 0xBFD25E8CD0364141)
		cfg := ecc.NewConfig(mod, a, b, nil)
		secp256k1 = &Param{
			Name: "secp256k1", Bits: 256, ByteLen: 32,
			Cfg: cfg, Order: montConfig(n),
			Gx: words(0x79BE667EF9DCBBAC, 0x55A06295CE870B07, 0x029BFCDB2DCE28D9, 0x59F2815B16F81798),
			Gy: words(0x483ADA7726A3C465, 0x5DA4FBFC0E1108A8, 0xFD17B448A6855419, 0x9C47D08FFB10D4B8),
		}
	})
	return secp256k1
}
