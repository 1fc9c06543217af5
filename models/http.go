// SPDX-License-Identifier: Apache-2.0

package models

// EncodeRequest asks the server to encode a site configuration into a
// shareable configuration code.
type EncodeRequest struct {
	Config SiteConfig `json:"config"`
}

// CodeResponse carries a produced configuration code along with any
// advisories collected while validating the configuration before encoding.
type CodeResponse struct {
	Code     string            `json:"code"`
	Warnings []SecurityWarning `json:"warnings,omitempty"`
}

// DecodeRequest asks the server to decode a pasted configuration code.
type DecodeRequest struct {
	Code string `json:"code"`
}

// ConfigResponse carries a site configuration and, when validation ran, the
// advisories it produced.
type ConfigResponse struct {
	Config   SiteConfig        `json:"config"`
	Warnings []SecurityWarning `json:"warnings,omitempty"`
}

// ValidateRequest asks the server to validate a site configuration before it
// is offered to the user as an import preview.
type ValidateRequest struct {
	Config SiteConfig `json:"config"`
}

// ImportRequest asks the server to decode, validate and persist a
// configuration code in one confirmed step.
type ImportRequest struct {
	// Code is the pasted configuration code.
	Code string `json:"code"`

	// Overwrite allows replacing an existing configuration for the same
	// hostname. Without it, a duplicate hostname is a conflict.
	Overwrite bool `json:"overwrite,omitempty"`
}

// ImportResponse reports the persisted configuration and any advisories
// collected during validation.
type ImportResponse struct {
	Config   SiteConfig        `json:"config"`
	Warnings []SecurityWarning `json:"warnings,omitempty"`

	// Replaced is true when an existing configuration for the same hostname
	// was overwritten.
	Replaced bool `json:"replaced,omitempty"`
}

// BackupEncryptRequest asks the server to encrypt an exported backup under a
// user password.
type BackupEncryptRequest struct {
	Plaintext string `json:"plaintext"`
	Password  string `json:"password"`

	// Label optionally names the stored backup record.
	Label string `json:"label,omitempty"`
}

// BackupDecryptRequest asks the server to decrypt a previously exported
// backup payload.
type BackupDecryptRequest struct {
	Payload  EncryptedPayload `json:"payload"`
	Password string           `json:"password"`
}

// BackupDecryptResponse carries the restored plaintext. The caller hands it
// to the import pipeline; this core does not interpret it.
type BackupDecryptResponse struct {
	Plaintext string `json:"plaintext"`
}
