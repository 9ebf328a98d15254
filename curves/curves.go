// Package curves supplies the named parameter sets of spec §6: one
// constructor per curve, each returning a ready-to-use ecc.Config (or, for
// the sect* family, a gf2n.Field) together with the standard base point.
//
// Every constant below is transcribed from the relevant public standard
// (SEC2, FIPS 186-4, RFC 7748, RFC 8032) rather than re-derived, except the
// sect* family's b, base point and order, which are generated substitutes
// (see curves/sect.go), the way
// p256k1's own field.go/glv.go embed the secp256k1 constants directly as
// uint64 literals rather than parsing them from a string at runtime. The
// limb layout always runs least-significant word first, matching mp.Word's
// convention throughout the rest of the module.
package curves

import (
	"phantom.dev/ecc"
	"phantom.dev/gf2n"
	"phantom.dev/mp"
)

// Param bundles one curve's field configuration, curve constants and base
// point, plus a Montgomery-reduced ModConfig for its scalar (order)
// arithmetic -- the scheme package's ECDSA/ECDH/Schnorr layer reduces
// nonces and private scalars against Order the same way it reduces field
// elements against Field.
type Param struct {
	Name    string
	Bits    int // field bit length
	ByteLen int

	IsBinary bool
	Field    *gf2n.Field // set when IsBinary

	Cfg   *ecc.Config
	Order *mp.ModConfig

	// A, B are the curve's a/b constants for the binary (IsBinary) family,
	// where ecc.WeierstrassBinaryProjective needs them passed directly to
	// its constructor rather than reading them from Cfg (prime-field
	// curves carry a/b in Cfg.A/Cfg.B instead).
	A, B []mp.Word

	Gx, Gy []mp.Word
}

// words builds a little-endian mp.Word slice from its arguments given
// most-significant-word-first, the natural order for transcribing a hex
// constant split into 64-bit groups.
func words(be ...uint64) []mp.Word {
	n := len(be)
	w := make([]mp.Word, n)
	for i, v := range be {
		w[n-1-i] = mp.Word(v)
	}
	return w
}

func montConfig(mod []mp.Word) *mp.ModConfig {
	return mp.NewMontgomeryModConfig(mod)
}
