// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"

	"github.com/promptdock/promptdock/models"
)

const (
	saltSize  = 16
	nonceSize = 12
	// gcmTagSize is the minimum length of a valid GCM ciphertext.
	gcmTagSize = 16
)

// Params holds the Argon2id tuning parameters of a payload cipher. The value
// is immutable once the cipher is constructed; tests and constrained devices
// pass reduced work factors here instead of mutating shared state.
type Params struct {
	Time    uint32
	Memory  uint32
	Threads uint8
	KeyLen  uint32
}

// DefaultParams returns the Argon2id parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func DefaultParams() Params {
	return Params{
		Time:    1,
		Memory:  64 * 1024, // 64 MiB
		Threads: 4,
		KeyLen:  32, // 256 bits
	}
}

// payloadCipher is the private implementation of [PayloadCipher].
type payloadCipher struct {
	params Params
}

// NewPayloadCipher constructs a [PayloadCipher] with the given Argon2id
// parameters. Zero fields are replaced with their defaults so a partially
// filled Params from config cannot silently produce a weak derivation.
func NewPayloadCipher(params Params) PayloadCipher {
	def := DefaultParams()
	if params.Time == 0 {
		params.Time = def.Time
	}
	if params.Memory == 0 {
		params.Memory = def.Memory
	}
	if params.Threads == 0 {
		params.Threads = def.Threads
	}
	if params.KeyLen == 0 {
		params.KeyLen = def.KeyLen
	}
	return &payloadCipher{params: params}
}

// Encrypt implements [PayloadCipher].
func (c *payloadCipher) Encrypt(plaintext, password string) (models.EncryptedPayload, error) {
	if strings.TrimSpace(password) == "" {
		return models.EncryptedPayload{}, ErrEmptyPassword
	}

	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return models.EncryptedPayload{}, fmt.Errorf("generate salt: %w", err)
	}

	nonce := make([]byte, nonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return models.EncryptedPayload{}, fmt.Errorf("generate nonce: %w", err)
	}

	gcm, err := c.newGCM(password, salt)
	if err != nil {
		return models.EncryptedPayload{}, err
	}

	cipherText := gcm.Seal(nil, nonce, []byte(plaintext), nil)

	return models.EncryptedPayload{
		CipherText: base64.StdEncoding.EncodeToString(cipherText),
		Salt:       base64.StdEncoding.EncodeToString(salt),
		IV:         base64.StdEncoding.EncodeToString(nonce),
	}, nil
}

// Decrypt implements [PayloadCipher]. Field decoding is checked before the
// expensive key derivation runs, so malformed payloads fail fast and with a
// distinct error from authentication failures.
func (c *payloadCipher) Decrypt(payload models.EncryptedPayload, password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", ErrEmptyPassword
	}

	cipherText, err := base64.StdEncoding.DecodeString(payload.CipherText)
	if err != nil {
		return "", ErrMalformedPayload
	}
	salt, err := base64.StdEncoding.DecodeString(payload.Salt)
	if err != nil {
		return "", ErrMalformedPayload
	}
	nonce, err := base64.StdEncoding.DecodeString(payload.IV)
	if err != nil {
		return "", ErrMalformedPayload
	}

	if len(cipherText) < gcmTagSize || len(nonce) != nonceSize {
		return "", ErrMalformedPayload
	}

	gcm, err := c.newGCM(password, salt)
	if err != nil {
		return "", err
	}

	plaintext, err := gcm.Open(nil, nonce, cipherText, nil)
	if err != nil {
		// Collapse all cipher failures into one sentinel: distinguishing
		// them would hand an attacker a decryption oracle.
		return "", ErrAuthenticationFailed
	}

	return string(plaintext), nil
}

// newGCM derives the AES-256 key from (password, salt) with Argon2id and
// builds the GCM instance.
func (c *payloadCipher) newGCM(password string, salt []byte) (cipher.AEAD, error) {
	key := argon2.IDKey(
		[]byte(password),
		salt,
		c.params.Time,
		c.params.Memory,
		c.params.Threads,
		c.params.KeyLen,
	)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}
