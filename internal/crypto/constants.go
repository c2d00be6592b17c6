package crypto

const (
	// KeySize is the size of an AES-256 key in bytes.
	KeySize = 32
	// NonceSize is the size of an AES-GCM nonce in bytes.
	NonceSize = 12
	// TagSize is the size of an AES-GCM authentication tag in bytes.
	TagSize = 16
)

// Ciphersuite is the canonical string representation of the cipher in use.
var Ciphersuite = "AES-256-GCM"
