// Package mp provides the public arbitrary-precision integer facade
// (mpz-equivalent, spec §4.3) built on mpbase's limb-vector primitives,
// plus ModConfig: a tagged modular-reduction strategy shared by the Powm
// and ecc layers.
package mp

import (
	"errors"
	"fmt"

	"phantom.dev/mpbase"
)

// Word is the limb type the public surface instantiates (spec §9: "pick
// one concrete W per platform"). number/mpbase stay generic; everything
// above this package fixes W = uint64.
type Word = uint64

var (
	// ErrDivideByZero is the error Int operations panic with (wrapped)
	// when asked to divide or reduce modulo zero.
	ErrDivideByZero = errors.New("mp: division by zero")
	// ErrNotInvertible is returned when a modular inverse is requested for
	// operands that are not coprime.
	ErrNotInvertible = errors.New("mp: value has no inverse modulo m")
)

// Int is a signed arbitrary-precision integer: a little-endian limb slice
// plus a sign. The zero value is the integer 0.
type Int struct {
	limbs []Word
	neg   bool
}

// NewInt returns the Int representing x.
func NewInt(x int64) *Int {
	z := &Int{}
	u := uint64(x)
	if x < 0 {
		z.neg = true
		u = uint64(-x)
	}
	z.limbs = []Word{u}
	z.normalize()
	return z
}

// SetBytes sets z to the big-endian unsigned integer represented by buf.
func (z *Int) SetBytes(buf []byte) *Int {
	n := (len(buf) + 7) / 8
	z.limbs = make([]Word, n)
	for i, b := range buf {
		limbIdx := (len(buf) - 1 - i) / 8
		bytePos := (len(buf) - 1 - i) % 8
		z.limbs[limbIdx] |= Word(b) << uint(8*bytePos)
	}
	z.neg = false
	z.normalize()
	return z
}

// Bytes returns the big-endian unsigned byte representation of |z|, with
// no leading zero byte unless z is zero (in which case it returns a
// single zero byte).
func (z *Int) Bytes() []byte {
	n := len(z.limbs)
	if n == 0 {
		return []byte{0}
	}
	buf := make([]byte, n*8)
	for i, l := range z.limbs {
		for j := 0; j < 8; j++ {
			buf[len(buf)-1-(i*8+j)] = byte(l >> uint(8*j))
		}
	}
	i := 0
	for i < len(buf)-1 && buf[i] == 0 {
		i++
	}
	return buf[i:]
}

func (z *Int) normalize() {
	z.limbs = z.limbs[:mpbase.NormalizedSize(z.limbs, len(z.limbs))]
	if len(z.limbs) == 0 {
		z.neg = false
	}
}

// Sign returns -1, 0, or 1.
func (z *Int) Sign() int {
	if len(z.limbs) == 0 {
		return 0
	}
	if z.neg {
		return -1
	}
	return 1
}

// BitLen returns the number of bits required to represent |z|, 0 for z==0.
func (z *Int) BitLen() int {
	n := len(z.limbs)
	if n == 0 {
		return 0
	}
	top := z.limbs[n-1]
	bits := (n-1)*64 + (64 - leadingZeros64(top))
	return bits
}

func leadingZeros64(x Word) int {
	n := 0
	for i := 63; i >= 0; i-- {
		if x&(1<<uint(i)) != 0 {
			break
		}
		n++
	}
	return n
}

// Cmp returns -1, 0, or 1 comparing z to y (signed comparison).
func (z *Int) Cmp(y *Int) int {
	if z.neg != y.neg {
		if z.neg {
			return -1
		}
		return 1
	}
	c := mpbase.Cmp(z.limbs, len(z.limbs), y.limbs, len(y.limbs))
	if z.neg {
		return -c
	}
	return c
}

func widen(a, b []Word) (int, []Word, []Word) {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	ap := make([]Word, n)
	bp := make([]Word, n)
	copy(ap, a)
	copy(bp, b)
	return n, ap, bp
}

// Add sets z = x + y and returns z.
func (z *Int) Add(x, y *Int) *Int {
	if x.neg == y.neg {
		n, xp, yp := widen(x.limbs, y.limbs)
		r := make([]Word, n+1)
		r[n] = mpbase.AddN(r[:n], xp, yp, n)
		z.limbs = r
		z.neg = x.neg
		z.normalize()
		return z
	}
	// opposite signs: subtract the smaller magnitude from the larger.
	if cmpMag(x.limbs, y.limbs) >= 0 {
		n, xp, yp := widen(x.limbs, y.limbs)
		r := make([]Word, n)
		mpbase.SubN(r, xp, yp, n)
		z.limbs = r
		z.neg = x.neg
		z.normalize()
		return z
	}
	n, xp, yp := widen(x.limbs, y.limbs)
	r := make([]Word, n)
	mpbase.SubN(r, yp, xp, n)
	z.limbs = r
	z.neg = y.neg
	z.normalize()
	return z
}

func cmpMag(a, b []Word) int {
	return mpbase.Cmp(a, len(a), b, len(b))
}

// Sub sets z = x - y and returns z.
func (z *Int) Sub(x, y *Int) *Int {
	negY := &Int{limbs: y.limbs, neg: !y.neg}
	return z.Add(x, negY)
}

// Mul sets z = x * y and returns z.
func (z *Int) Mul(x, y *Int) *Int {
	if len(x.limbs) == 0 || len(y.limbs) == 0 {
		z.limbs = nil
		z.neg = false
		return z
	}
	r := make([]Word, len(x.limbs)+len(y.limbs))
	mpbase.Mul(r, x.limbs, len(x.limbs), y.limbs, len(y.limbs))
	z.limbs = r
	z.neg = x.neg != y.neg
	z.normalize()
	return z
}

// QuoRem sets z = x/y (truncated toward zero) and r = x - z*y, returning
// (z, r). Panics with ErrDivideByZero if y is zero, matching the
// arithmetic layer's documented-runtime-error contract (spec §7).
func (z *Int) QuoRem(x, y, r *Int) (*Int, *Int) {
	if len(y.limbs) == 0 {
		panic(fmt.Errorf("mp: QuoRem: %w", ErrDivideByZero))
	}
	if cmpMag(x.limbs, y.limbs) < 0 {
		z.limbs = nil
		z.neg = false
		r.limbs = append([]Word{}, x.limbs...)
		r.neg = x.neg
		r.normalize()
		return z, r
	}
	qn := len(x.limbs) - len(y.limbs) + 1
	qp := make([]Word, qn)
	rp := make([]Word, len(y.limbs))
	mpbase.BasecaseDivQr(qp, rp, x.limbs, len(x.limbs), y.limbs, len(y.limbs))
	z.limbs = qp
	z.neg = x.neg != y.neg
	z.normalize()
	r.limbs = rp
	r.neg = x.neg
	r.normalize()
	return z, r
}

// Mod sets z = x mod m, with 0 <= z < m (Euclidean remainder, not
// truncated), panicking with ErrDivideByZero if m is zero.
func (z *Int) Mod(x, m *Int) *Int {
	if len(m.limbs) == 0 {
		panic(fmt.Errorf("mp: Mod: %w", ErrDivideByZero))
	}
	q, r := &Int{}, &Int{}
	q.QuoRem(x, m, r)
	if r.neg && r.Sign() != 0 {
		r.Add(r, &Int{limbs: append([]Word{}, m.limbs...)})
		r.neg = false
	}
	z.limbs = r.limbs
	z.neg = false
	z.normalize()
	return z
}

// String returns the decimal representation of z.
func (z *Int) String() string {
	if len(z.limbs) == 0 {
		return "0"
	}
	work := append([]Word{}, z.limbs...)
	var digits []byte
	ten := []Word{10}
	for !mpbase.IsZero(work, len(work)) {
		qp := make([]Word, len(work))
		rp := make([]Word, 1)
		mpbase.BasecaseDivQr(qp, rp, work, len(work), ten, 1)
		digits = append(digits, byte('0')+byte(rp[0]))
		work = qp[:mpbase.NormalizedSize(qp, len(qp))]
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	if z.neg {
		return "-" + string(digits)
	}
	return string(digits)
}
