// Package sealbox provides minimal authenticated encryption for byte
// buffers using AES-256-GCM.
//
// Basic usage:
//
//	ciphertext, nonce, err := sealbox.Encrypt(key, plaintext)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	plaintext, err = sealbox.Decrypt(key, nonce, ciphertext)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Algorithm Suite
//
//   - AES-256-GCM: Authenticated encryption with associated data (AEAD).
//     Provides confidentiality and integrity in a single primitive with a
//     32-byte key, a 12-byte nonce, and a 16-byte authentication tag
//     appended to the ciphertext. Associated data is always empty.
//
// # Security Model
//
// The encryption scheme provides:
//
//   - Confidentiality: Only holders of the key can recover the plaintext.
//   - Integrity: Any modification of the ciphertext, tag, nonce, or key
//     causes decryption to fail rather than return altered data.
//   - Failure uniformity: A wrong key, a wrong nonce, tampering, and
//     truncation are indistinguishable in the returned error, so callers
//     cannot be used as a decryption oracle.
//
// # Critical Security Notes
//
// Nonces MUST be unique for each encryption with the same key. Nonce reuse
// completely breaks the security of AES-GCM. [Encrypt] therefore generates
// a fresh random nonce on every call and never accepts one from the
// caller; the nonce it returns is the nonce the plaintext was sealed with.
//
// The caller is responsible for transporting or storing the nonce
// alongside the ciphertext, since it is required for decryption. Callers
// that prefer a single buffer can use [Seal] and [Open], which use the
// layout nonce (12 bytes) || ciphertext || tag (16 bytes).
//
// # Key Management
//
// Keys are caller-owned, exactly 32 bytes, and treated as opaque. This
// package never persists or logs key material; embedding applications
// should zero keys when releasing them. Keep keys secure: they should
// never be logged, transmitted in plaintext, or stored in version control.
package sealbox
