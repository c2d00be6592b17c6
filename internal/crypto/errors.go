package crypto

import "errors"

var (
	// ErrInvalidKeySize is returned when the key is not exactly 32 bytes.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidNonceSize is returned when the nonce is not exactly 12 bytes.
	ErrInvalidNonceSize = errors.New("invalid nonce size")

	// ErrAuthenticationFailed is returned when tag verification fails during
	// decryption. It covers tampered ciphertext, a wrong key, a wrong nonce,
	// and truncated input without distinguishing between them.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrCipherInit is returned when the underlying cipher cannot be
	// constructed from otherwise well-sized key material.
	ErrCipherInit = errors.New("cipher initialization failed")
)
