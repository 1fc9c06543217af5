// SPDX-License-Identifier: Apache-2.0

// Package store persists the outputs of the trust boundary: site
// configurations a user has explicitly confirmed, and exported encrypted
// backup records. Nothing is written here until the service layer has
// validated the data and the user has confirmed the action; the store never
// runs validation itself.
package store

import (
	"context"
	"time"

	"github.com/promptdock/promptdock/models"
)

// ConfigStore is the persistence contract for confirmed site configurations
// and exported backups.
type ConfigStore interface {
	// SaveConfig persists cfg keyed by its hostname. When a configuration
	// for the hostname already exists, overwrite decides between replacing
	// it (replaced=true) and failing with ErrConfigAlreadyExists.
	SaveConfig(ctx context.Context, cfg models.SiteConfig, overwrite bool) (replaced bool, err error)

	// GetConfig returns the configuration for hostname, or ErrConfigNotFound.
	GetConfig(ctx context.Context, hostname string) (models.SiteConfig, error)

	// ListConfigs returns all stored configurations ordered by hostname.
	ListConfigs(ctx context.Context) ([]models.SiteConfig, error)

	// DeleteConfig removes the configuration for hostname, or returns
	// ErrConfigNotFound when there is none.
	DeleteConfig(ctx context.Context, hostname string) error

	// SaveBackup stores an encrypted backup payload and returns the id of
	// the new record.
	SaveBackup(ctx context.Context, payload models.EncryptedPayload, label string) (string, error)

	// ListBackups returns all stored backups, newest first.
	ListBackups(ctx context.Context) ([]models.BackupRecord, error)

	// PruneBackups deletes backup records created before cutoff and returns
	// the number of removed records.
	PruneBackups(ctx context.Context, cutoff time.Time) (int64, error)

	// Close releases the underlying database handle.
	Close() error
}
