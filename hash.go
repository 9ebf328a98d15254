package p256k1

import (
	"crypto/sha256"
	"errors"
	"hash"
	"sync"
	"unsafe"

	sha256simd "github.com/minio/sha256-simd"
)

// memclear clears memory to prevent leaking sensitive information --
// every Clear method below on a hash/HMAC/RFC6979 context wipes its
// buffer this way rather than just letting it be garbage collected.
func memclear(ptr unsafe.Pointer, n uintptr) {
	for i := uintptr(0); i < n; i++ {
		*(*byte)(unsafe.Pointer(uintptr(ptr) + i)) = 0
	}
}

// Precomputed TaggedHash prefixes for common BIP-340 tags
// These are computed once, on first use, to avoid repeated hash operations
var (
	bip340AuxTagHash       [32]byte
	bip340NonceTagHash     [32]byte
	bip340ChallengeTagHash [32]byte
	taggedHashInitOnce     sync.Once
)

func initTaggedHashPrefixes() {
	bip340AuxTagHash = sha256.Sum256([]byte("BIP0340/aux"))
	bip340NonceTagHash = sha256.Sum256([]byte("BIP0340/nonce"))
	bip340ChallengeTagHash = sha256.Sum256([]byte("BIP0340/challenge"))
}

// getTaggedHashPrefix returns the precomputed SHA256(tag) for common tags
func getTaggedHashPrefix(tag []byte) [32]byte {
	taggedHashInitOnce.Do(initTaggedHashPrefixes)

	// Fast path for common BIP-340 tags
	if len(tag) >= 11 && len(tag) <= 17 {
		switch string(tag) {
		case "BIP0340/aux":
			return bip340AuxTagHash
		case "BIP0340/nonce":
			return bip340NonceTagHash
		case "BIP0340/challenge":
			return bip340ChallengeTagHash
		}
	}

	// Fallback for unknown tags
	return sha256.Sum256(tag)
}

// SHA256 represents a SHA-256 hash context
type SHA256 struct {
	hasher hash.Hash
}

// NewSHA256 creates a new SHA-256 hash context
func NewSHA256() *SHA256 {
	h := &SHA256{}
	h.hasher = sha256simd.New()
	return h
}

// Write writes data to the hash
func (h *SHA256) Write(data []byte) {
	h.hasher.Write(data)
}

// Sum finalizes the hash and returns the 32-byte result
func (h *SHA256) Sum(out []byte) []byte {
	if out == nil {
		out = make([]byte, 32)
	}
	copy(out, h.hasher.Sum(nil))
	return out
}

// Finalize finalizes the hash and writes the result to out32 (must be 32 bytes)
func (h *SHA256) Finalize(out32 []byte) {
	if len(out32) != 32 {
		panic("output buffer must be 32 bytes")
	}
	sum := h.hasher.Sum(nil)
	copy(out32, sum)
}

// Clear clears the hash context to prevent leaking sensitive information
func (h *SHA256) Clear() {
	memclear(unsafe.Pointer(h), unsafe.Sizeof(*h))
}

// HMACSHA256 represents an HMAC-SHA256 context
type HMACSHA256 struct {
	inner, outer SHA256
}

// NewHMACSHA256 creates a new HMAC-SHA256 context with the given key
func NewHMACSHA256(key []byte) *HMACSHA256 {
	h := &HMACSHA256{}

	// Prepare key: if keylen > 64, hash it first
	var rkey [64]byte
	if len(key) <= 64 {
		copy(rkey[:], key)
		// Zero pad the rest
		for i := len(key); i < 64; i++ {
			rkey[i] = 0
		}
	} else {
		// Hash the key if it's too long
		hasher := sha256.New()
		hasher.Write(key)
		sum := hasher.Sum(nil)
		copy(rkey[:32], sum)
		// Zero pad the rest
		for i := 32; i < 64; i++ {
			rkey[i] = 0
		}
	}

	// Initialize outer hash with key XOR 0x5c
	h.outer = SHA256{hasher: sha256.New()}
	for i := 0; i < 64; i++ {
		rkey[i] ^= 0x5c
	}
	h.outer.hasher.Write(rkey[:])

	// Initialize inner hash with key XOR 0x36
	h.inner = SHA256{hasher: sha256.New()}
	for i := 0; i < 64; i++ {
		rkey[i] ^= 0x5c ^ 0x36
	}
	h.inner.hasher.Write(rkey[:])

	// Clear sensitive key material
	memclear(unsafe.Pointer(&rkey), unsafe.Sizeof(rkey))
	return h
}

// Write writes data to the inner hash
func (h *HMACSHA256) Write(data []byte) {
	h.inner.Write(data)
}

// Finalize finalizes the HMAC and writes the result to out32 (must be 32 bytes)
func (h *HMACSHA256) Finalize(out32 []byte) {
	if len(out32) != 32 {
		panic("output buffer must be 32 bytes")
	}

	// Finalize inner hash
	var temp [32]byte
	h.inner.Finalize(temp[:])

	// Feed inner hash result to outer hash
	h.outer.Write(temp[:])

	// Finalize outer hash
	h.outer.Finalize(out32)

	// Clear temp
	memclear(unsafe.Pointer(&temp), unsafe.Sizeof(temp))
}

// Clear clears the HMAC context
func (h *HMACSHA256) Clear() {
	h.inner.Clear()
	h.outer.Clear()
	memclear(unsafe.Pointer(h), unsafe.Sizeof(*h))
}

// RFC6979HMACSHA256 implements RFC 6979 deterministic nonce generation
type RFC6979HMACSHA256 struct {
	v     [32]byte
	k     [32]byte
	retry int
}

// NewRFC6979HMACSHA256 initializes a new RFC6979 HMAC-SHA256 context
func NewRFC6979HMACSHA256(key []byte) *RFC6979HMACSHA256 {
	rng := &RFC6979HMACSHA256{}

	// RFC6979 3.2.b: V = 0x01 0x01 0x01 ... 0x01 (32 bytes)
	for i := 0; i < 32; i++ {
		rng.v[i] = 0x01
	}

	// RFC6979 3.2.c: K = 0x00 0x00 0x00 ... 0x00 (32 bytes)
	for i := 0; i < 32; i++ {
		rng.k[i] = 0x00
	}

	// RFC6979 3.2.d: K = HMAC_K(V || 0x00 || key)
	hmac := NewHMACSHA256(rng.k[:])
	hmac.Write(rng.v[:])
	hmac.Write([]byte{0x00})
	hmac.Write(key)
	hmac.Finalize(rng.k[:])
	hmac.Clear()

	// V = HMAC_K(V)
	hmac = NewHMACSHA256(rng.k[:])
	hmac.Write(rng.v[:])
	hmac.Finalize(rng.v[:])
	hmac.Clear()

	// RFC6979 3.2.f: K = HMAC_K(V || 0x01 || key)
	hmac = NewHMACSHA256(rng.k[:])
	hmac.Write(rng.v[:])
	hmac.Write([]byte{0x01})
	hmac.Write(key)
	hmac.Finalize(rng.k[:])
	hmac.Clear()

	// V = HMAC_K(V)
	hmac = NewHMACSHA256(rng.k[:])
	hmac.Write(rng.v[:])
	hmac.Finalize(rng.v[:])
	hmac.Clear()

	rng.retry = 0
	return rng
}

// Generate generates output bytes using RFC6979
func (rng *RFC6979HMACSHA256) Generate(out []byte) {
	// RFC6979 3.2.h: If retry, update K and V
	if rng.retry != 0 {
		hmac := NewHMACSHA256(rng.k[:])
		hmac.Write(rng.v[:])
		hmac.Write([]byte{0x00})
		hmac.Finalize(rng.k[:])
		hmac.Clear()

		hmac = NewHMACSHA256(rng.k[:])
		hmac.Write(rng.v[:])
		hmac.Finalize(rng.v[:])
		hmac.Clear()
	}

	// Generate output bytes
	outlen := len(out)
	for outlen > 0 {
		hmac := NewHMACSHA256(rng.k[:])
		hmac.Write(rng.v[:])
		hmac.Finalize(rng.v[:])
		hmac.Clear()

		now := outlen
		if now > 32 {
			now = 32
		}
		copy(out, rng.v[:now])
		out = out[now:]
		outlen -= now
	}

	rng.retry = 1
}

// Finalize finalizes the RFC6979 context
func (rng *RFC6979HMACSHA256) Finalize() {
	// Nothing to do, but matches C API
}

// Clear clears the RFC6979 context
func (rng *RFC6979HMACSHA256) Clear() {
	memclear(unsafe.Pointer(rng), unsafe.Sizeof(*rng))
}

// SHA256Simple computes a plain SHA-256 digest of input into out32 (must be
// 32 bytes).
func SHA256Simple(out32 []byte, input []byte) {
	if len(out32) != 32 {
		panic("output must be 32 bytes")
	}
	sum := sha256.Sum256(input)
	copy(out32, sum[:])
}

// TaggedSHA256 computes a BIP-340 tagged hash into out32 (must be 32 bytes):
// SHA256(SHA256(tag) || SHA256(tag) || msg).
func TaggedSHA256(out32 []byte, tag []byte, msg []byte) {
	if len(out32) != 32 {
		panic("output must be 32 bytes")
	}
	sum := TaggedHash(tag, msg)
	copy(out32, sum[:])
}

// rfc6979NonceFunction derives a deterministic nonce from key32/msg32 (and
// optional extra entropy/algorithm identifier) per RFC 6979 §3.2,
// discarding the first attempt generated outputs for attempt > 0, the same
// retry scheme ECDSA signing uses to skip a nonce rejected by a prior
// candidate.
func rfc6979NonceFunction(nonce32, msg32, key32, algo16, data []byte, attempt uint) bool {
	if len(nonce32) != 32 || len(msg32) != 32 || len(key32) != 32 {
		return false
	}
	keyData := append([]byte{}, key32...)
	keyData = append(keyData, msg32...)
	if len(data) == 32 {
		keyData = append(keyData, data...)
	}
	if len(algo16) == 16 {
		keyData = append(keyData, algo16...)
	}

	rng := NewRFC6979HMACSHA256(keyData)
	var tmp [32]byte
	for i := uint(0); i <= attempt; i++ {
		rng.Generate(tmp[:])
	}
	copy(nonce32, tmp[:])
	rng.Clear()
	return true
}

// HKDF derives len(output) bytes of key material from ikm via RFC 5869
// HKDF-SHA256: Extract with salt (32 zero bytes if empty) into a PRK, then
// Expand the PRK against info across as many HMAC blocks as output needs.
func HKDF(output []byte, ikm []byte, salt []byte, info []byte) error {
	if len(output) == 0 {
		return errors.New("output length must be greater than 0")
	}
	if len(salt) == 0 {
		salt = make([]byte, 32)
	}

	var prk [32]byte
	hmac := NewHMACSHA256(salt)
	hmac.Write(ikm)
	hmac.Finalize(prk[:])
	hmac.Clear()

	outlen := len(output)
	outidx := 0
	var t []byte
	blockNum := byte(1)
	for outidx < outlen {
		hmac = NewHMACSHA256(prk[:])
		if len(t) > 0 {
			hmac.Write(t)
		}
		if len(info) > 0 {
			hmac.Write(info)
		}
		hmac.Write([]byte{blockNum})

		var tBlock [32]byte
		hmac.Finalize(tBlock[:])
		hmac.Clear()

		copyLen := len(tBlock)
		if copyLen > outlen-outidx {
			copyLen = outlen - outidx
		}
		copy(output[outidx:outidx+copyLen], tBlock[:copyLen])
		outidx += copyLen

		t = tBlock[:]
		blockNum++
	}

	memclear(unsafe.Pointer(&prk[0]), 32)
	if len(t) > 0 {
		memclear(unsafe.Pointer(&t[0]), uintptr(len(t)))
	}
	return nil
}

// TaggedHash computes SHA256(SHA256(tag) || SHA256(tag) || data)
// This is used in BIP-340 for Schnorr signatures
// Optimized to use precomputed tag hashes for common BIP-340 tags
func TaggedHash(tag []byte, data []byte) [32]byte {
	var result [32]byte

	// Get precomputed SHA256(tag) prefix (or compute if not cached)
	tagHash := getTaggedHashPrefix(tag)

	// Second hash: SHA256(SHA256(tag) || SHA256(tag) || data)
	h := sha256.New()
	h.Write(tagHash[:]) // SHA256(tag)
	h.Write(tagHash[:]) // SHA256(tag) again
	h.Write(data)       // data
	copy(result[:], h.Sum(nil))

	return result
}
