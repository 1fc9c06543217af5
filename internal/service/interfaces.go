// SPDX-License-Identifier: Apache-2.0

// Package service wires the trust-boundary core together: the configuration
// encoder (encode / decode / validate of shareable site configuration codes)
// and the backup service (password-derived encryption of exported backups).
//
// Every operation is a pure computation over its inputs. Nothing here touches
// the persistent store or the network; sequencing a decode-then-persist flow
// is the caller's concern.
package service

import (
	"context"

	"github.com/promptdock/promptdock/models"
)

// ConfigCodeService encodes, decodes and validates shareable site
// configuration codes.
type ConfigCodeService interface {
	// EncodeConfig serializes cfg into a single text-safe configuration
	// code at the current format version. Encoding does not re-run
	// security validation; callers run ValidateConfig before offering
	// export.
	EncodeConfig(ctx context.Context, cfg models.SiteConfig) (string, error)

	// DecodeConfig parses a pasted configuration code. It fails with the
	// codec sentinels (invalid format, unsupported version, checksum
	// mismatch) and never returns a partially trusted configuration.
	DecodeConfig(ctx context.Context, code string) (models.SiteConfig, error)

	// ValidateConfig sanitizes cfg and runs structural and selector-safety
	// validation. Structural problems fail with ErrValidationFailed
	// (wrapping the field sentinel); selector rejections fail with
	// ErrSecurityViolation. Advisory warnings are returned alongside a
	// successful result, never as errors.
	ValidateConfig(ctx context.Context, cfg models.SiteConfig) (models.ValidationResult, error)
}

// BackupService encrypts and decrypts exported backup payloads.
type BackupService interface {
	// ExportBackup encrypts plaintext under password.
	ExportBackup(ctx context.Context, plaintext, password string) (models.EncryptedPayload, error)

	// RestoreBackup decrypts a previously exported payload. The restored
	// plaintext is handed back verbatim; interpreting it is the import
	// pipeline's job.
	RestoreBackup(ctx context.Context, payload models.EncryptedPayload, password string) (string, error)
}
