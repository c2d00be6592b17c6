// Command testhelper exposes encrypt/decrypt over JSON on stdin/stdout so
// that other-language SDK test suites can verify interoperability with
// this implementation. All byte fields are URL-safe base64 without
// padding.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	sealbox "github.com/sealbox/sealbox-go"
	"github.com/sealbox/sealbox-go/internal/crypto"
)

// Config wires the helper's standard streams so tests can capture them.
type Config struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// DefaultConfig returns a Config bound to the process streams.
func DefaultConfig() Config {
	return Config{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

func run(args []string, cfg Config) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: testhelper <encrypt|decrypt|roundtrip>")
	}

	switch args[1] {
	case "encrypt":
		return runEncrypt(cfg)
	case "decrypt":
		return runDecrypt(cfg)
	case "roundtrip":
		return runRoundtrip(cfg)
	default:
		return fmt.Errorf("unknown command: %s", args[1])
	}
}

type encryptInput struct {
	Key       string `json:"key"`
	Plaintext string `json:"plaintext"`
}

type encryptOutput struct {
	Algorithm  string `json:"algorithm"`
	Nonce      string `json:"nonce"`
	Ciphertext string `json:"ciphertext"`
}

type decryptInput struct {
	Key        string `json:"key"`
	Nonce      string `json:"nonce"`
	Ciphertext string `json:"ciphertext"`
}

type decryptOutput struct {
	Plaintext string `json:"plaintext"`
}

func runEncrypt(cfg Config) error {
	var in encryptInput
	if err := json.NewDecoder(cfg.Stdin).Decode(&in); err != nil {
		return fmt.Errorf("parse input: %w", err)
	}

	key, err := crypto.FromBase64URL(in.Key)
	if err != nil {
		return fmt.Errorf("decode key: %w", err)
	}

	plaintext, err := crypto.FromBase64URL(in.Plaintext)
	if err != nil {
		return fmt.Errorf("decode plaintext: %w", err)
	}

	ciphertext, nonce, err := sealbox.Encrypt(key, plaintext)
	if err != nil {
		return fmt.Errorf("encrypt: %w", err)
	}

	return json.NewEncoder(cfg.Stdout).Encode(encryptOutput{
		Algorithm:  crypto.Ciphersuite,
		Nonce:      crypto.ToBase64URL(nonce),
		Ciphertext: crypto.ToBase64URL(ciphertext),
	})
}

func runDecrypt(cfg Config) error {
	var in decryptInput
	if err := json.NewDecoder(cfg.Stdin).Decode(&in); err != nil {
		return fmt.Errorf("parse input: %w", err)
	}

	key, err := crypto.FromBase64URL(in.Key)
	if err != nil {
		return fmt.Errorf("decode key: %w", err)
	}

	nonce, err := crypto.FromBase64URL(in.Nonce)
	if err != nil {
		return fmt.Errorf("decode nonce: %w", err)
	}

	ciphertext, err := crypto.FromBase64URL(in.Ciphertext)
	if err != nil {
		return fmt.Errorf("decode ciphertext: %w", err)
	}

	plaintext, err := sealbox.Decrypt(key, nonce, ciphertext)
	if err != nil {
		return fmt.Errorf("decrypt: %w", err)
	}

	return json.NewEncoder(cfg.Stdout).Encode(decryptOutput{
		Plaintext: crypto.ToBase64URL(plaintext),
	})
}

func runRoundtrip(cfg Config) error {
	var in encryptInput
	if err := json.NewDecoder(cfg.Stdin).Decode(&in); err != nil {
		return fmt.Errorf("parse input: %w", err)
	}

	key, err := crypto.FromBase64URL(in.Key)
	if err != nil {
		return fmt.Errorf("decode key: %w", err)
	}

	plaintext, err := crypto.FromBase64URL(in.Plaintext)
	if err != nil {
		return fmt.Errorf("decode plaintext: %w", err)
	}

	ciphertext, nonce, err := sealbox.Encrypt(key, plaintext)
	if err != nil {
		return fmt.Errorf("encrypt: %w", err)
	}

	decrypted, err := sealbox.Decrypt(key, nonce, ciphertext)
	if err != nil {
		return fmt.Errorf("decrypt: %w", err)
	}

	if string(decrypted) != string(plaintext) {
		return fmt.Errorf("round trip mismatch")
	}

	return json.NewEncoder(cfg.Stdout).Encode(map[string]bool{"success": true})
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
