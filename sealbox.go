package sealbox

import (
	"fmt"

	"github.com/sealbox/sealbox-go/internal/crypto"
)

const (
	// KeySize is the size of an AES-256 key in bytes.
	KeySize = crypto.KeySize
	// NonceSize is the size of an AES-GCM nonce in bytes.
	NonceSize = crypto.NonceSize
	// TagSize is the size of an AES-GCM authentication tag in bytes.
	TagSize = crypto.TagSize
)

// Encrypt seals plaintext with AES-256-GCM under a 32-byte key. It returns
// the ciphertext with the 16-byte tag appended, plus the fresh random
// 12-byte nonce used for this call. The caller must keep the nonce
// available for decryption; it is not secret and may be stored alongside
// the ciphertext.
func Encrypt(key, plaintext []byte) (ciphertext, nonce []byte, err error) {
	return crypto.Encrypt(key, plaintext)
}

// Decrypt opens ciphertext produced by [Encrypt] using the same key and
// the nonce returned by it, verifying and stripping the trailing 16-byte
// tag. Any tampering with the ciphertext, tag, nonce, or key yields
// [ErrAuthenticationFailed].
func Decrypt(key, nonce, ciphertext []byte) ([]byte, error) {
	return crypto.Decrypt(key, nonce, ciphertext)
}

// Seal encrypts plaintext and returns a single self-contained buffer in
// the layout:
//
//	nonce (12 bytes) || ciphertext || tag (16 bytes)
//
// Use [Open] to decrypt it.
func Seal(key, plaintext []byte) ([]byte, error) {
	ciphertext, nonce, err := crypto.Encrypt(key, plaintext)
	if err != nil {
		return nil, err
	}
	return append(nonce, ciphertext...), nil
}

// Open decrypts a buffer produced by [Seal]. A buffer too short to hold a
// nonce and tag fails authentication rather than reporting its layout.
func Open(key, sealed []byte) ([]byte, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), KeySize)
	}

	if len(sealed) < NonceSize+TagSize {
		return nil, ErrAuthenticationFailed
	}

	return crypto.Decrypt(key, sealed[:NonceSize], sealed[NonceSize:])
}
