package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// newGCM constructs the AES-256-GCM AEAD for the given key. The key length
// must already have been validated by the caller.
func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCipherInit, err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCipherInit, err)
	}

	return aead, nil
}

// Encrypt seals plaintext with AES-256-GCM under key, drawing a fresh
// random nonce for this call. It returns the ciphertext with the 16-byte
// tag appended, plus the nonce that was passed to the seal operation.
//
// There is deliberately no nonce parameter: nonce reuse under the same key
// breaks AES-GCM completely, so the nonce is always generated here.
func Encrypt(key, plaintext []byte) (ciphertext, nonce []byte, err error) {
	if len(key) != KeySize {
		return nil, nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), KeySize)
	}

	aead, err := newGCM(key)
	if err != nil {
		return nil, nil, err
	}

	nonce, err = generateNonce()
	if err != nil {
		return nil, nil, err
	}

	return aead.Seal(nil, nonce, plaintext, nil), nonce, nil
}

// Decrypt opens ciphertext with AES-256-GCM under key and nonce, verifying
// and stripping the trailing 16-byte tag. Every open failure (tampered
// ciphertext, wrong key, wrong nonce, truncated input) is reported as
// ErrAuthenticationFailed with no further detail, and no plaintext bytes
// are ever returned alongside an error.
func Decrypt(key, nonce, ciphertext []byte) ([]byte, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), KeySize)
	}

	if len(nonce) != NonceSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidNonceSize, len(nonce), NonceSize)
	}

	if len(ciphertext) < TagSize {
		return nil, ErrAuthenticationFailed
	}

	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}

	return plaintext, nil
}
