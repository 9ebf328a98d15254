package curves

import (
	"sync"

	"phantom.dev/ecc"
)

// The NIST/SEC2 short-Weierstrass prime curves (y^2 = x^3 + a*x + b),
// parameter values from SEC2 v2 / FIPS 186-4 Appendix D.1.2.

var (
	secp192r1Once sync.Once
	secp192r1     *Param

	secp224r1Once sync.Once
	secp224r1     *Param

	secp256r1Once sync.Once
	secp256r1     *Param

	secp384r1Once sync.Once
	secp384r1     *Param

	secp521r1Once sync.Once
	secp521r1     *Param
)

// SECP192R1 returns the P-192 parameter set.
func SECP192R1() *Param {
	secp192r1Once.Do(func() {
		p := words(0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFE, 0xFFFFFFFFFFFFFFFF)
		mod := montConfig(p)
		a := words(0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFE, 0xFFFFFFFFFFFFFFFC)
		b := words(0x64210519E59C80E7, 0x0FA7E9AB72243049, 0xFEB8DEECC146B9B1)
		n := words(0xFFFFFFFFFFFFFFFF, 0xFFFFFFFF99DEF836, 0x146BC9B1B4D22831)
		cfg := ecc.NewConfig(mod, a, b, nil)
		secp192r1 = &Param{
			Name: "secp192r1", Bits: 192, ByteLen: 24,
			Cfg: cfg, Order: montConfig(n),
			Gx: words(0x188DA80EB03090F6, 0x7CBF20EB43A18800, 0xF4FF0AFD82FF1012),
			Gy: words(0x07192B95FFC8DA78, 0x631011ED6B24CDD5, 0x73F977A11E794811),
		}
	})
	return secp192r1
}

// SECP224R1 returns the P-224 parameter set. P-224's 224-bit field does
// not divide evenly into 64-bit limbs, so it is carried in 4 words (256
// bits) with the top word's upper 32 bits always zero.
func SECP224R1() *Param {
	secp224r1Once.Do(func() {
		p := words(0x00000000FFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFF00000000, 0x0000000000000001)
		mod := montConfig(p)
		a := words(0x00000000FFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFEFFFFFFFF, 0xFFFFFFFFFFFFFFFE)
		b := words(0x00000000B4050A85, 0x0C04B3ABF5413256, 0x5044B0B7D7BFD8BA, 0x270B39432355FFB4)
		n := words(0x00000000FFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0xFFFF16A2E0B8F03E, 0x13DD29455C5C2A3D)
		cfg := ecc.NewConfig(mod, a, b, nil)
		secp224r1 = &Param{
			Name: "secp224r1", Bits: 224, ByteLen: 28,
			Cfg: cfg, Order: montConfig(n),
			Gx: words(0x00000000B70E0CBD, 0x6BB4BF7F321390B9, 0x4A03C1D356C21122, 0x343280D6115C1D21),
			Gy: words(0x00000000BD376388, 0xB5F723FB4C22DFE6, 0xCD4375A05A074764, 0x44D5819985007E34),
		}
	})
	return secp224r1
}

// SECP256R1 returns the P-256 parameter set.
func SECP256R1() *Param {
	secp256r1Once.Do(func() {
		p := words(0xFFFFFFFF00000001, 0x0000000000000000, 0x00000000FFFFFFFF, 0xFFFFFFFFFFFFFFFF)
		mod := montConfig(p)
		a := words(0xFFFFFFFF00000001, 0x0000000000000000, 0x00000000FFFFFFFF, 0xFFFFFFFFFFFFFFFC)
		b := words(0x5AC635D8AA3A93E7, 0xB3EBBD55769886BC, 0x651D06B0CC53B0F6, 0x3BCE3C3E27D2604B)
		n := words(0xFFFFFFFF00000000, 0xFFFFFFFFFFFFFFFF, 0xBCE6FAADA7179E84, 0xF3B9CAC2FC632551)
		cfg := ecc.NewConfig(mod, a, b, nil)
		secp256r1 = &Param{
			Name: "secp256r1", Bits: 256, ByteLen: 32,
			Cfg: cfg, Order: montConfig(n),
			Gx: words(0x6B17D1F2E12C4247, 0xF8BCE6E563A440F2, 0x77037D812DEB33A0, 0xF4A13945D898C296),
			Gy: words(0x4FE342E2FE1A7F9B, 0x8EE7EB4A7C0F9E16, 0x2BCE33576B315ECE, 0xCBB6406837BF51F5),
		}
	})
	return secp256r1
}

// SECP384R1 returns the P-384 parameter set.
func SECP384R1() *Param {
	secp384r1Once.Do(func() {
		p := words(
			0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF,
			0xFFFFFFFFFFFFFFFE, 0xFFFFFFFF00000000, 0x00000000FFFFFFFF,
		)
		mod := montConfig(p)
		a := words(
			0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF,
			0xFFFFFFFFFFFFFFFE, 0xFFFFFFFF00000000, 0x00000000FFFFFFFC,
		)
		b := words(
			0xB3312FA7E23EE7E4, 0x988E056BE3F82D19, 0x181D9C6EFE814112,
			0x0314088F5013875A, 0xC656398D8A2ED19D, 0x2A85C8EDD3EC2AEF,
		)
		n := words(
			0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF,
			0xC7634D81F4372DDF, 0x581A0DB248B0A77A, 0xECEC196ACCC52973,
		)
		cfg := ecc.NewConfig(mod, a, b, nil)
		secp384r1 = &Param{
			Name: "secp384r1", Bits: 384, ByteLen: 48,
			Cfg: cfg, Order: montConfig(n),
			Gx: words(
				0xAA87CA22BE8B0537, 0x8EB1C71EF320AD74, 0x6E1D3B628BA79B98,
				0x59F741E082542A38, 0x5502F25DBF55296C, 0x3A545E3872760AB7,
			),
			Gy: words(
				0x3617DE4A96262C6F, 0x5D9E98BF9292DC29, 0xF8F41DBD289A147C,
				0xE9DA3113B5F0B8C0, 0x0A60B1CE1D7E819D, 0x7A431D7C90EA0E5F,
			),
		}
	})
	return secp384r1
}

// SECP521R1 returns the P-521 parameter set: p = 2^521-1, carried in 9
// 64-bit words (576 bits) with the top word's upper 55 bits always zero.
func SECP521R1() *Param {
	secp521r1Once.Do(func() {
		p := words(
			0x00000000000001FF, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF,
			0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF,
			0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF,
		)
		mod := montConfig(p)
		a := words(
			0x00000000000001FF, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF,
			0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF,
			0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFC,
		)
		b := words(
			0x0000000000000051, 0x953EB9618E1C9A1F, 0x929A21A0B68540EE,
			0xA2DA725B99B315F3, 0xB8B489918EF109E1, 0x56193951EC7E937B,
			0x1652C0BD3BB1BF07, 0x3573DF883D2C34F1, 0xEF451FD46B503F00,
		)
		n := words(
			0x00000000000001FF, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF,
			0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFA51, 0x868783BF2F966B7F,
			0xCC0148F709A5D03B, 0xB5C9B8899C47AEBB, 0x6FB71E91386409,
		)
		cfg := ecc.NewConfig(mod, a, b, nil)
		secp521r1 = &Param{
			Name: "secp521r1", Bits: 521, ByteLen: 66,
			Cfg: cfg, Order: montConfig(n),
			Gx: words(
				0x00000000000000C6, 0x858E06B70404E9CD, 0x9E3ECB662395B442,
				0x9C648139053FB521, 0xF828AF606B4D3DBA, 0xA14B5E77EFE75928,
				0xFE1DC127A2FFA8DE, 0x3348B3C1856A429B, 0xF97E7E31C2E5BD66,
			),
			Gy: words(
				0x0000000000000118, 0x39296A789A3BC004, 0x5C8A5FB42C7D1BD9,
				0x98F54449579B4468, 0x17AFBD17273E662C, 0x97EE72995EF42640,
				0xC550B9013FAD0761, 0x353C7086A272C240, 0x88BE94769FD16650,
			),
		}
	})
	return secp521r1
}
