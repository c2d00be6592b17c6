package sealbox

import (
	"github.com/sealbox/sealbox-go/internal/crypto"
)

// Sentinel errors for errors.Is() checks.
var (
	// ErrInvalidKeySize is returned when the key is not exactly 32 bytes.
	// This is a precondition violation: no cryptographic work is attempted.
	ErrInvalidKeySize = crypto.ErrInvalidKeySize

	// ErrInvalidNonceSize is returned when the nonce supplied to Decrypt is
	// not exactly 12 bytes.
	ErrInvalidNonceSize = crypto.ErrInvalidNonceSize

	// ErrAuthenticationFailed is returned when tag verification fails
	// during decryption. It covers tampered ciphertext, a wrong key, a
	// wrong nonce, and truncated input; the sub-cause is deliberately not
	// reported.
	ErrAuthenticationFailed = crypto.ErrAuthenticationFailed

	// ErrCipherInit is returned when the underlying cipher cannot be
	// constructed. This is an unexpected internal error.
	ErrCipherInit = crypto.ErrCipherInit
)
