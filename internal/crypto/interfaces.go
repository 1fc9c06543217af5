// SPDX-License-Identifier: Apache-2.0

// Package crypto implements the payload encryption service of the trust
// boundary: password-derived, authenticated encryption of opaque text
// payloads used for encrypted backup export and import.
//
// The service is stateless apart from its immutable key-derivation
// parameters. Every Encrypt call draws a fresh salt and nonce from the OS
// CSPRNG, so two encryptions of the same plaintext under the same password
// never produce related outputs.
package crypto

import "github.com/promptdock/promptdock/models"

// PayloadCipher encrypts and decrypts backup payloads under a user password.
//
// Both operations are CPU-bound: key derivation is deliberately slow, so
// callers must not run them on a goroutine that has to stay responsive.
type PayloadCipher interface {
	// Encrypt derives a key from password and a fresh random salt, seals
	// plaintext with AES-256-GCM under a fresh random nonce, and returns
	// the three base64-encoded fields. Fails only for an empty password or
	// a CSPRNG read error.
	Encrypt(plaintext, password string) (models.EncryptedPayload, error)

	// Decrypt reverses Encrypt. It fails with ErrEmptyPassword,
	// ErrMalformedPayload (field not base64 / ciphertext too short) or
	// ErrAuthenticationFailed (wrong password or tampering); it never
	// returns garbage plaintext on a bad input.
	Decrypt(payload models.EncryptedPayload, password string) (string, error)
}
