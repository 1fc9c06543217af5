// SPDX-License-Identifier: Apache-2.0

// Package adapter provides transport-layer abstractions for communicating with
// the promptdock companion server.
//
// The primary abstraction is [ServerAdapter], which decouples the CLI client
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrSecurityViolation] for 422).
package adapter

import (
	"context"

	"github.com/promptdock/promptdock/models"
)

// ServerAdapter defines transport-agnostic communication with the companion
// server. Implementations are responsible for serialisation and for mapping
// transport-level errors to the sentinel values defined in this package.
type ServerAdapter interface {
	// EncodeConfig asks the server to validate and encode cfg into a
	// shareable configuration code. Advisory warnings collected during
	// validation are returned alongside the code.
	EncodeConfig(ctx context.Context, cfg models.SiteConfig) (models.CodeResponse, error)

	// DecodeConfig asks the server to decode and validate a pasted
	// configuration code. The returned configuration is sanitized and safe
	// to preview.
	DecodeConfig(ctx context.Context, code string) (models.ConfigResponse, error)

	// ValidateConfig runs server-side validation of cfg without encoding or
	// persisting it.
	ValidateConfig(ctx context.Context, cfg models.SiteConfig) (models.ConfigResponse, error)

	// ImportConfig decodes, validates and persists a configuration code in
	// one confirmed step. Returns [ErrConflict] (wrapped) when a
	// configuration for the same hostname already exists and overwrite is
	// false.
	ImportConfig(ctx context.Context, code string, overwrite bool) (models.ImportResponse, error)

	// ListConfigs fetches all persisted site configurations.
	ListConfigs(ctx context.Context) ([]models.SiteConfig, error)

	// GetConfig fetches the persisted configuration for hostname. Returns
	// [ErrNotFound] (wrapped) when none exists.
	GetConfig(ctx context.Context, hostname string) (models.ConfigResponse, error)

	// DeleteConfig removes the persisted configuration for hostname.
	DeleteConfig(ctx context.Context, hostname string) error

	// EncryptBackup encrypts plaintext under password on the server. When
	// label is non-empty the server also stores a backup record.
	EncryptBackup(ctx context.Context, plaintext, password, label string) (models.EncryptedPayload, error)

	// DecryptBackup decrypts a previously exported payload. Returns
	// [ErrUnauthorized] (wrapped) when the password is wrong or the payload
	// was tampered with.
	DecryptBackup(ctx context.Context, payload models.EncryptedPayload, password string) (string, error)

	// ListBackups fetches all stored backup records.
	ListBackups(ctx context.Context) ([]models.BackupRecord, error)

	// ServerVersion fetches the server build metadata.
	ServerVersion(ctx context.Context) (map[string]string, error)
}
