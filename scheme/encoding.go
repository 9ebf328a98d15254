package scheme

import (
	"phantom.dev/curves"
	"phantom.dev/mp"
)

// intToLimbs/limbsToInt bridge mp.Int's variable-length big-endian byte
// representation and the fixed-width little-endian mp.Word slices every
// ecc.Config/ecc.Point method expects, the same big-endian-bytes <->
// little-endian-limbs convention mp.Int.SetBytes/Bytes itself uses
// (mp/mp.go), just re-targeted at a caller-supplied limb count instead of
// the smallest size that fits.
func intToLimbs(x *mp.Int, k int) []mp.Word {
	raw := x.Bytes()
	w := make([]mp.Word, k)
	for i, b := range raw {
		idx := (len(raw) - 1 - i) / 8
		pos := (len(raw) - 1 - i) % 8
		if idx < k {
			w[idx] |= mp.Word(b) << uint(8*pos)
		}
	}
	return w
}

func limbsToInt(w []mp.Word) *mp.Int {
	buf := make([]byte, len(w)*8)
	for i, l := range w {
		for j := 0; j < 8; j++ {
			buf[len(buf)-1-(i*8+j)] = byte(l >> uint(8*j))
		}
	}
	return new(mp.Int).SetBytes(buf)
}

// limbsToBytesFixed renders w as exactly byteLen big-endian bytes,
// left-padded with zeros -- the on-the-wire width mp.Int.Bytes() itself
// does not guarantee (it strips leading zero bytes).
func limbsToBytesFixed(w []mp.Word, byteLen int) []byte {
	b := limbsToInt(w).Bytes()
	if len(b) > byteLen {
		b = b[len(b)-byteLen:]
	}
	out := make([]byte, byteLen)
	copy(out[byteLen-len(b):], b)
	return out
}

// reduceBytesModOrder reduces an arbitrary-width big-endian byte string
// (a message hash, a candidate nonce, a curve's X-coordinate) into
// [0, order) -- the one place this package falls back to mp.Int's general
// division instead of ecc.Config's fixed-width modular arithmetic, since
// the input here is not already known to be smaller than 2*order the way
// Config.Mul/Config.Add's operands are.
func reduceBytesModOrder(p *curves.Param, raw []byte) []mp.Word {
	order := limbsToInt(p.Order.Mod)
	x := new(mp.Int).SetBytes(raw)
	m := new(mp.Int).Mod(x, order)
	return intToLimbs(m, p.Order.K)
}
