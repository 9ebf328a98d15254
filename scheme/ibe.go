package scheme

import "errors"

// ErrNotImplemented marks every stub below: identity-based encryption and
// RSA-style public-key operations are named interfaces only, out of
// scope for this module's elliptic-curve core.
var ErrNotImplemented = errors.New("not implemented: out of scope for the core")

// IBEExtract would derive an identity's private key from a master secret
// (Boneh-Franklin-style key derivation). Declared so callers can see the
// shape of the operation this package does not implement.
func IBEExtract(master *PrivateKey, identity []byte) (*PrivateKey, error) {
	return nil, ErrNotImplemented
}

// IBEEncrypt would encrypt plaintext to an identity under a master public
// key, with no corresponding private key needed at encryption time.
func IBEEncrypt(masterPub *PublicKey, identity, plaintext []byte) ([]byte, error) {
	return nil, ErrNotImplemented
}

// IBEDecrypt would decrypt ciphertext produced by IBEEncrypt using an
// identity's extracted private key.
func IBEDecrypt(priv *PrivateKey, ciphertext []byte) ([]byte, error) {
	return nil, ErrNotImplemented
}

// RSAPublicKey and RSAPrivateKey name the operand shape RSAEncrypt/
// RSADecrypt below would take: this module's scalar-multiplication
// engine has no modulus-exponentiation consumer, so they carry no
// methods.
type RSAPublicKey struct {
	N, E []byte
}

type RSAPrivateKey struct {
	N, D []byte
}

// RSAEncrypt would compute ciphertext = plaintext^E mod N.
func RSAEncrypt(pub *RSAPublicKey, plaintext []byte) ([]byte, error) {
	return nil, ErrNotImplemented
}

// RSADecrypt would compute plaintext = ciphertext^D mod N.
func RSADecrypt(priv *RSAPrivateKey, ciphertext []byte) ([]byte, error) {
	return nil, ErrNotImplemented
}
