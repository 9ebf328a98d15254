package curves

import (
	"fmt"

	"github.com/holiman/uint256"
	"phantom.dev/mp"
)

// ParseHex256 and ParseDecimal256 turn a human-typed curve constant --
// copy-pasted from a standard's published hex or decimal string -- into
// the little-endian 4-limb (256-bit) form every curve constructor above
// builds in code instead, via uint256.Int rather than reimplementing a
// base-16/base-10 string parser: no curve named in this package exceeds
// 256 bits except secp384r1/secp521r1/the sect* binary family, which this
// helper does not serve (those constructors stay as literal words() calls).
func ParseHex256(s string) ([]mp.Word, error) {
	z, err := uint256.FromHex(s)
	if err != nil {
		return nil, fmt.Errorf("curves: ParseHex256: %w", err)
	}
	return uint256Limbs(z), nil
}

// ParseDecimal256 parses a base-10 string into 256-bit limb form.
func ParseDecimal256(s string) ([]mp.Word, error) {
	z := new(uint256.Int)
	if err := z.SetFromDecimal(s); err != nil {
		return nil, fmt.Errorf("curves: ParseDecimal256: %w", err)
	}
	return uint256Limbs(z), nil
}

func uint256Limbs(z *uint256.Int) []mp.Word {
	buf := z.Bytes32()
	return words(
		beWord(buf[0:8]), beWord(buf[8:16]), beWord(buf[16:24]), beWord(buf[24:32]),
	)
}

func beWord(b []byte) uint64 {
	var w uint64
	for _, v := range b {
		w = w<<8 | uint64(v)
	}
	return w
}
