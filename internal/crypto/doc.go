// Package crypto implements the AES-256-GCM primitive behind the sealbox
// public API.
//
// # Algorithm
//
// AES-256-GCM: authenticated encryption with associated data (AEAD) with a
// 32-byte key, a 12-byte nonce, and a 16-byte authentication tag appended
// to the ciphertext. Associated data is always empty in this scheme.
//
// # Critical Security Notes
//
// AES-GCM nonces MUST be unique for each encryption with the same key.
// Nonce reuse completely breaks the security of AES-GCM, allowing
// attackers to recover the authentication key and forge messages. For that
// reason [Encrypt] has no nonce parameter: it always draws a fresh random
// nonce and returns the one it sealed with.
//
// Decryption failures are deliberately uniform. A tampered ciphertext, a
// wrong key, a wrong nonce, and a truncated buffer all surface as
// [ErrAuthenticationFailed] so that callers cannot be used as a decryption
// oracle.
//
// Keys are caller-owned. This package never retains, logs, or embeds key
// or plaintext material in error values.
package crypto
