// Package shamir implements Shamir secret sharing over GF(256): Split
// turns a secret into n shares of which any k reconstruct it via
// Combine, exactly the worked example the arithmetic core's spec names
// as its consumer-facing demonstration of the GF(256) surface.
//
// The secret is treated as the constant term of a degree k-1 polynomial
// with random GF(256) coefficients, evaluated at share indices 1..n;
// Combine reconstructs the constant term by Lagrange interpolation at
// x=0. Every field operation runs through gf256's bitsliced Block type,
// 32 secret bytes at a time, matching the chunked layout of
// other_examples/16f207c3_aquarelle-tech-darkmatter__shamir (which
// processes one scalar byte at a time with log/exp tables) generalized
// to this module's 32-lane bitsliced arithmetic instead.
package shamir

import (
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/zeebo/blake3"

	"phantom.dev/gf256"
)

var (
	ErrInvalidParams  = errors.New("shamir: n and k must satisfy 0 < k <= n")
	ErrEmptySecret    = errors.New("shamir: cannot split an empty secret")
	ErrShareMismatch  = errors.New("shamir: shares must be non-empty and equal length")
	ErrTooFewShares   = errors.New("shamir: fewer than two shares supplied")
	ErrDuplicateShare = errors.New("shamir: duplicate share index")
	ErrSelfCheck      = errors.New("shamir: internal reconstruction self-check failed")
)

const chunkSize = 32

// Split generates n shares of secret, any k of which (via Combine)
// reconstruct it. Each share is shard_length = len(secret)+1 bytes: the
// polynomial's value at the share's index, followed by the index byte
// itself.
func Split(secret []byte, n, k int) ([][]byte, error) {
	if n <= 0 || k <= 0 || k > n || n > 255 {
		return nil, ErrInvalidParams
	}
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}

	shares := make([][]byte, n)
	for i := range shares {
		shares[i] = make([]byte, len(secret)+1)
		shares[i][len(secret)] = byte(i + 1)
	}

	for off := 0; off < len(secret); off += chunkSize {
		end := off + chunkSize
		if end > len(secret) {
			end = len(secret)
		}
		chunk := secret[off:end]

		coeffs := make([]gf256.Block, k)
		coeffs[0] = gf256.Pack(chunk)
		for d := 1; d < k; d++ {
			r := make([]byte, chunkSize)
			if _, err := rand.Read(r); err != nil {
				return nil, fmt.Errorf("shamir: %w", err)
			}
			coeffs[d] = gf256.Pack(r)
		}

		for i := 0; i < n; i++ {
			x := gf256.Broadcast(byte(i + 1))
			acc := coeffs[k-1]
			for d := k - 2; d >= 0; d-- {
				var prod gf256.Block
				gf256.Mul(&prod, acc, x)
				acc = prod
				gf256.Add(&acc, coeffs[d])
			}
			var out [chunkSize]byte
			gf256.Unpack(acc, out[:])
			copy(shares[i][off:end], out[:end-off])
		}
	}

	if k < n {
		check, err := Combine(shares[:k])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSelfCheck, err)
		}
		if !hashEqual(check, secret) {
			return nil, ErrSelfCheck
		}
	}

	return shares, nil
}

// Combine reconstructs the secret from at least k of the shares Split
// produced (any subset works; indices need not be contiguous).
func Combine(shares [][]byte) ([]byte, error) {
	if len(shares) < 2 {
		return nil, ErrTooFewShares
	}
	shardLen := len(shares[0])
	if shardLen < 2 {
		return nil, ErrShareMismatch
	}
	for _, s := range shares {
		if len(s) != shardLen {
			return nil, ErrShareMismatch
		}
	}

	secretLen := shardLen - 1
	xs := make([]byte, len(shares))
	seen := make(map[byte]bool, len(shares))
	for i, s := range shares {
		x := s[secretLen]
		if seen[x] {
			return nil, ErrDuplicateShare
		}
		seen[x] = true
		xs[i] = x
	}

	secret := make([]byte, secretLen)
	for off := 0; off < secretLen; off += chunkSize {
		end := off + chunkSize
		if end > secretLen {
			end = secretLen
		}

		var acc gf256.Block
		for i, s := range shares {
			basis := lagrangeBasisAtZero(xs, i)
			var y [chunkSize]byte
			copy(y[:], s[off:end])
			yBlock := gf256.Pack(y[:])

			var term gf256.Block
			gf256.Mul(&term, yBlock, basis)
			gf256.Add(&acc, term)
		}

		var out [chunkSize]byte
		gf256.Unpack(acc, out[:])
		copy(secret[off:end], out[:end-off])
	}

	return secret, nil
}

// lagrangeBasisAtZero computes, broadcast to all 32 lanes, the i'th
// Lagrange basis polynomial of xs evaluated at 0: prod_{j != i}
// (0 - xs[j]) / (xs[i] - xs[j]), which in characteristic 2 is
// prod_{j != i} xs[j] / (xs[i] ^ xs[j]). The basis itself is a single
// scalar shared by all 32 lanes of the chunk, so it is computed with
// scalarMul/scalarInv's plain log/exp tables rather than the bitsliced
// Block ops, then broadcast once for Combine's per-chunk Mul.
func lagrangeBasisAtZero(xs []byte, i int) gf256.Block {
	var num, den byte = 1, 1
	for j, xj := range xs {
		if j == i {
			continue
		}
		num = scalarMul(num, xj)
		den = scalarMul(den, xs[i]^xj)
	}
	return gf256.Broadcast(scalarMul(num, scalarInv(den)))
}

// scalarMul/scalarInv implement single-byte GF(256) arithmetic (mod
// x^8+x^4+x^3+x+1) via log/exp tables, grounded on
// other_examples/16f207c3_aquarelle-tech-darkmatter__shamir's mult/div --
// used only for the Lagrange basis scalars above, which are identical
// across a chunk's 32 lanes and so are cheaper computed once than
// bitsliced.
func scalarMul(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	sum := int(gf256LogTable[a]) + int(gf256LogTable[b])
	return gf256ExpTable[sum%255]
}

func scalarInv(a byte) byte {
	if a == 0 {
		panic("shamir: division by zero in Lagrange basis")
	}
	diff := (255 - int(gf256LogTable[a])) % 255
	return gf256ExpTable[diff]
}

// hashEqual compares two byte slices via their blake3 digests rather
// than a direct byte comparison, as an independent self-check that
// Split's freshly generated shares truly reconstruct the input secret
// before handing them back to the caller.
func hashEqual(a, b []byte) bool {
	ha := blake3.Sum256(a)
	hb := blake3.Sum256(b)
	return ha == hb
}

// gf256ExpTable/gf256LogTable are the generator-3 log/antilog tables for
// GF(256) mod x^8+x^4+x^3+x+1, the same field gf256.Block's bitsliced
// ops reduce against; log[0] is unused (scalarMul/scalarInv special-case
// zero before consulting it).
var gf256ExpTable = [256]byte{
	0x01, 0x03, 0x05, 0x0F, 0x11, 0x33, 0x55, 0xFF,
	0x1A, 0x2E, 0x72, 0x96, 0xA1, 0xF8, 0x13, 0x35,
	0x5F, 0xE1, 0x38, 0x48, 0xD8, 0x73, 0x95, 0xA4,
	0xF7, 0x02, 0x06, 0x0A, 0x1E, 0x22, 0x66, 0xAA,
	0xE5, 0x34, 0x5C, 0xE4, 0x37, 0x59, 0xEB, 0x26,
	0x6A, 0xBE, 0xD9, 0x70, 0x90, 0xAB, 0xE6, 0x31,
	0x53, 0xF5, 0x04, 0x0C, 0x14, 0x3C, 0x44, 0xCC,
	0x4F, 0xD1, 0x68, 0xB8, 0xD3, 0x6E, 0xB2, 0xCD,
	0x4C, 0xD4, 0x67, 0xA9, 0xE0, 0x3B, 0x4D, 0xD7,
	0x62, 0xA6, 0xF1, 0x08, 0x18, 0x28, 0x78, 0x88,
	0x83, 0x9E, 0xB9, 0xD0, 0x6B, 0xBD, 0xDC, 0x7F,
	0x81, 0x98, 0xB3, 0xCE, 0x49, 0xDB, 0x76, 0x9A,
	0xB5, 0xC4, 0x57, 0xF9, 0x10, 0x30, 0x50, 0xF0,
	0x0B, 0x1D, 0x27, 0x69, 0xBB, 0xD6, 0x61, 0xA3,
	0xFE, 0x19, 0x2B, 0x7D, 0x87, 0x92, 0xAD, 0xEC,
	0x2F, 0x71, 0x93, 0xAE, 0xE9, 0x20, 0x60, 0xA0,
	0xFB, 0x16, 0x3A, 0x4E, 0xD2, 0x6D, 0xB7, 0xC2,
	0x5D, 0xE7, 0x32, 0x56, 0xFA, 0x15, 0x3F, 0x41,
	0xC3, 0x5E, 0xE2, 0x3D, 0x47, 0xC9, 0x40, 0xC0,
	0x5B, 0xED, 0x2C, 0x74, 0x9C, 0xBF, 0xDA, 0x75,
	0x9F, 0xBA, 0xD5, 0x64, 0xAC, 0xEF, 0x2A, 0x7E,
	0x82, 0x9D, 0xBC, 0xDF, 0x7A, 0x8E, 0x89, 0x80,
	0x9B, 0xB6, 0xC1, 0x58, 0xE8, 0x23, 0x65, 0xAF,
	0xEA, 0x25, 0x6F, 0xB1, 0xC8, 0x43, 0xC5, 0x54,
	0xFC, 0x1F, 0x21, 0x63, 0xA5, 0xF4, 0x07, 0x09,
	0x1B, 0x2D, 0x77, 0x99, 0xB0, 0xCB, 0x46, 0xCA,
	0x45, 0xCF, 0x4A, 0xDE, 0x79, 0x8B, 0x86, 0x91,
	0xA8, 0xE3, 0x3E, 0x42, 0xC6, 0x51, 0xF3, 0x0E,
	0x12, 0x36, 0x5A, 0xEE, 0x29, 0x7B, 0x8D, 0x8C,
	0x8F, 0x8A, 0x85, 0x94, 0xA7, 0xF2, 0x0D, 0x17,
	0x39, 0x4B, 0xDD, 0x7C, 0x84, 0x97, 0xA2, 0xFD,
	0x1C, 0x24, 0x6C, 0xB4, 0xC7, 0x52, 0xF6, 0x01,
}

var gf256LogTable = [256]byte{
	0x00, 0x00, 0x19, 0x01, 0x32, 0x02, 0x1A, 0xC6,
	0x4B, 0xC7, 0x1B, 0x68, 0x33, 0xEE, 0xDF, 0x03,
	0x64, 0x04, 0xE0, 0x0E, 0x34, 0x8D, 0x81, 0xEF,
	0x4C, 0x71, 0x08, 0xC8, 0xF8, 0x69, 0x1C, 0xC1,
	0x7D, 0xC2, 0x1D, 0xB5, 0xF9, 0xB9, 0x27, 0x6A,
	0x4D, 0xE4, 0xA6, 0x72, 0x9A, 0xC9, 0x09, 0x78,
	0x65, 0x2F, 0x8A, 0x05, 0x21, 0x0F, 0xE1, 0x24,
	0x12, 0xF0, 0x82, 0x45, 0x35, 0x93, 0xDA, 0x8E,
	0x96, 0x8F, 0xDB, 0xBD, 0x36, 0xD0, 0xCE, 0x94,
	0x13, 0x5C, 0xD2, 0xF1, 0x40, 0x46, 0x83, 0x38,
	0x66, 0xDD, 0xFD, 0x30, 0xBF, 0x06, 0x8B, 0x62,
	0xB3, 0x25, 0xE2, 0x98, 0x22, 0x88, 0x91, 0x10,
	0x7E, 0x6E, 0x48, 0xC3, 0xA3, 0xB6, 0x1E, 0x42,
	0x3A, 0x6B, 0x28, 0x54, 0xFA, 0x85, 0x3D, 0xBA,
	0x2B, 0x79, 0x0A, 0x15, 0x9B, 0x9F, 0x5E, 0xCA,
	0x4E, 0xD4, 0xAC, 0xE5, 0xF3, 0x73, 0xA7, 0x57,
	0xAF, 0x58, 0xA8, 0x50, 0xF4, 0xEA, 0xD6, 0x74,
	0x4F, 0xAE, 0xE9, 0xD5, 0xE7, 0xE6, 0xAD, 0xE8,
	0x2C, 0xD7, 0x75, 0x7A, 0xEB, 0x16, 0x0B, 0xF5,
	0x59, 0xCB, 0x5F, 0xB0, 0x9C, 0xA9, 0x51, 0xA0,
	0x7F, 0x0C, 0xF6, 0x6F, 0x17, 0xC4, 0x49, 0xEC,
	0xD8, 0x43, 0x1F, 0x2D, 0xA4, 0x76, 0x7B, 0xB7,
	0xCC, 0xBB, 0x3E, 0x5A, 0xFB, 0x60, 0xB1, 0x86,
	0x3B, 0x52, 0xA1, 0x6C, 0xAA, 0x55, 0x29, 0x9D,
	0x97, 0xB2, 0x87, 0x90, 0x61, 0xBE, 0xDC, 0xFC,
	0xBC, 0x95, 0xCF, 0xCD, 0x37, 0x3F, 0x5B, 0xD1,
	0x53, 0x39, 0x84, 0x3C, 0x41, 0xA2, 0x6D, 0x47,
	0x14, 0x2A, 0x9E, 0x5D, 0x56, 0xF2, 0xD3, 0xAB,
	0x44, 0x11, 0x92, 0xD9, 0x23, 0x20, 0x2E, 0x89,
	0xB4, 0x7C, 0xB8, 0x26, 0x77, 0x99, 0xE3, 0xA5,
	0x67, 0x4A, 0xED, 0xDE, 0xC5, 0x31, 0xFE, 0x18,
	0x0D, 0x63, 0x8C, 0x80, 0xC0, 0xF7, 0x70, 0x07,
}
