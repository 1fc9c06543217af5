// SPDX-License-Identifier: Apache-2.0

package models

import "time"

// BackupRecord is a stored encrypted backup. The payload is opaque to the
// store: without the password it is just three base64 strings.
type BackupRecord struct {
	// ID is the unique identifier of the record.
	ID string `json:"id"`

	// Label is an optional user-facing name for the backup.
	Label string `json:"label,omitempty"`

	// Payload is the encrypted backup content.
	Payload EncryptedPayload `json:"payload"`

	// CreatedAt is the time the backup was stored.
	CreatedAt time.Time `json:"created_at"`
}
