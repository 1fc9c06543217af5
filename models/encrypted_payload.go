// SPDX-License-Identifier: Apache-2.0

package models

// EncryptedPayload is the result of one backup encryption operation.
// All three fields are base64 (standard encoding) strings, so the record is
// text-safe and can be exported as-is. The payload is inert: it carries no
// key material, and without the password it is indistinguishable from noise.
//
// Salt and IV are generated fresh on every encryption call and are never
// reused, even for identical plaintext and password.
type EncryptedPayload struct {
	// CipherText is the AES-GCM output (ciphertext plus authentication tag).
	CipherText string `json:"cipher_text"`

	// Salt is the random key-derivation salt for this payload.
	Salt string `json:"salt"`

	// IV is the random GCM nonce for this payload.
	IV string `json:"iv"`
}
