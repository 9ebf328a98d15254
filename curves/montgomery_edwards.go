package curves

import (
	"sync"

	"phantom.dev/ecc"
)

// Curve25519 (Montgomery, RFC 7748) and Edwards25519 (twisted Edwards,
// RFC 8032) share the same prime p = 2^255-19 and scalar order; the
// Montgomery constant A=486662 and the Edwards constant d are related by
// the standard birational map between the two models, but each is carried
// as its own Param/Config since Engine dispatches on point type rather
// than on curve family.

var (
	curve25519Once sync.Once
	curve25519P    *Param

	edwards25519Once sync.Once
	edwards25519P    *Param

	curve448Once sync.Once
	curve448P    *Param

	edwards448Once sync.Once
	edwards448P   *Param
)

// Curve25519 returns the X25519 Montgomery parameter set. Cfg.D carries
// (A+2)/4 for MontgomeryProjective's ladder step per ecc/montgomery.go.
func Curve25519() *Param {
	curve25519Once.Do(func() {
		p := words(0x7FFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFED)
		mod := montConfig(p)
		a := words(0, 0, 0, 486662)
		d := words(0, 0, 0, 121666) // (A+2)/4
		n := words(0x1000000000000000, 0x0000000000000000, 0x14DEF9DEA2F79CD6, 0x5812631A5CF5D3ED)
		cfg := ecc.NewConfig(mod, a, nil, d)
		curve25519P = &Param{
			Name: "curve25519", Bits: 255, ByteLen: 32,
			Cfg: cfg, Order: montConfig(n),
			Gx: words(0, 0, 0, 9),
		}
	})
	return curve25519P
}

// Edwards25519 returns the Ed25519 twisted-Edwards parameter set
// (a=-1, d as below), sharing Curve25519's prime and scalar order.
func Edwards25519() *Param {
	edwards25519Once.Do(func() {
		p := words(0x7FFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFED)
		mod := montConfig(p)
		a := words(0x7FFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFEC) // p-1
		d := words(0x52036CEE2B6FFE73, 0x8CC740797779E898, 0x00700A4D4141D8AB, 0x75EB4DCA135978A3)
		n := words(0x1000000000000000, 0x0000000000000000, 0x14DEF9DEA2F79CD6, 0x5812631A5CF5D3ED)
		cfg := ecc.NewConfig(mod, a, words(0, 0, 0, 1), d)
		edwards25519P = &Param{
			Name: "edwards25519", Bits: 255, ByteLen: 32,
			Cfg: cfg, Order: montConfig(n),
			Gx: words(0x216936D3CD6E53FE, 0xC0A4E231FDD6DC5C, 0x692CC7609525A7B2, 0xC9562D608F25D51A),
			Gy: words(0x6666666666666666, 0x6666666666666666, 0x6666666666666666, 0x6666666666666658),
		}
	})
	return edwards25519P
}

// Curve448 returns the X448 Montgomery parameter set (RFC 7748): p =
// 2^448 - 2^224 - 1, A = 156326.
//
// The 448-bit p/order words below were recomputed and re-split into
// 64-bit groups after errors in a first transcription; DESIGN.md records
// which words were corrected.
func Curve448() *Param {
	curve448Once.Do(func() {
		p := words(
			0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF,
			0xFFFFFFFEFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF,
			0xFFFFFFFFFFFFFFFF,
		)
		mod := montConfig(p)
		a := words(0, 0, 0, 0, 0, 0, 156326)
		d := words(0, 0, 0, 0, 0, 0, 39082) // (A+2)/4
		n := words(
			0x3FFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF,
			0xFFFFFFFF7CCA23E9, 0xC44EDB49AED63690, 0x216CC2728DC58F55,
			0x2378C292AB5844F3,
		)
		cfg := ecc.NewConfig(mod, a, nil, d)
		curve448P = &Param{
			Name: "curve448", Bits: 448, ByteLen: 56,
			Cfg: cfg, Order: montConfig(n),
			Gx: words(0, 0, 0, 0, 0, 0, 5),
		}
	})
	return curve448P
}

// Edwards448 returns the Ed448 (Edwards-Goldilocks) parameter set:
// a=1, d=-39081, sharing Curve448's prime.
func Edwards448() *Param {
	edwards448Once.Do(func() {
		p := words(
			0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF,
			0xFFFFFFFEFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF,
			0xFFFFFFFFFFFFFFFF,
		)
		mod := montConfig(p)
		a := words(0, 0, 0, 0, 0, 0, 1)
		// d = -39081 mod p = p - 0x98A9
		d := words(
			0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF,
			0xFFFFFFFEFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF,
			0xFFFFFFFFFFFF6756,
		)
		n := words(
			0x3FFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF,
			0xFFFFFFFF7CCA23E9, 0xC44EDB49AED63690, 0x216CC2728DC58F55,
			0x2378C292AB5844F3,
		)
		cfg := ecc.NewConfig(mod, a, words(0, 0, 0, 0, 0, 0, 1), d)
		edwards448P = &Param{
			Name: "edwards448", Bits: 448, ByteLen: 57,
			Cfg: cfg, Order: montConfig(n),
			Gx: words(
				0x4F1970C66BED0DED, 0x221D15A622BF36DA, 0x9E146570470F1767,
				0xEA6DE324A3D3A464, 0x12AE1AF72AB66511, 0x433B80E18B00938E,
				0x2626A82BC70CC05E,
			),
			Gy: words(
				0x693F46716EB6BC24, 0x8876203756C9C762, 0x4BEA73736CA39840,
				0x87789C1E05A0C2D7, 0x3AD3FF1CE67C39C4, 0xFDBD132C4ED7C8AD,
				0x9808795BF230FA14,
			),
		}
	})
	return edwards448P
}
