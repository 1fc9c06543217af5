// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/promptdock/promptdock/models"
)

type sqliteStorage struct {
	db *sql.DB
}

// NewSQLiteStorage opens (or creates) the sqlite database at path and
// bootstraps the schema. Use ":memory:" for an ephemeral store.
func NewSQLiteStorage(path string) (ConfigStore, error) {
	if path == "" {
		path = ":memory:"
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpeningDatabase, err)
	}

	// One writer at a time keeps sqlite happy under concurrent handlers.
	db.SetMaxOpenConns(1)

	s := &sqliteStorage{db: db}
	if err := s.bootstrap(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// NewStorageWithDB wraps an existing database handle without bootstrapping
// the schema. It exists for tests driving the store through sqlmock.
func NewStorageWithDB(db *sql.DB) ConfigStore {
	return &sqliteStorage{db: db}
}

func (s *sqliteStorage) bootstrap() error {
	for _, query := range []string{createSiteConfigsTable, createBackupsTable} {
		if _, err := s.db.Exec(query); err != nil {
			return fmt.Errorf("%w: %w", ErrBootstrappingSchema, err)
		}
	}
	return nil
}

// SaveConfig implements [ConfigStore]. The existence check and the write run
// in one transaction so two concurrent imports of the same hostname cannot
// both pass the duplicate check.
func (s *sqliteStorage) SaveConfig(ctx context.Context, cfg models.SiteConfig, overwrite bool) (bool, error) {
	positioning, err := marshalPositioning(cfg.Positioning)
	if err != nil {
		return false, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var existingID string
	err = tx.QueryRowContext(ctx, selectConfigIDByHostname, cfg.Hostname).Scan(&existingID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		now := time.Now().UTC()
		_, err = tx.ExecContext(ctx, insertSiteConfig,
			uuid.NewString(), cfg.Hostname, cfg.DisplayName, positioning, now, now)
		if err != nil {
			return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		if err = tx.Commit(); err != nil {
			return false, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
		}
		return false, nil

	case err != nil:
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if !overwrite {
		return false, ErrConfigAlreadyExists
	}

	_, err = tx.ExecContext(ctx, updateSiteConfig,
		cfg.DisplayName, positioning, time.Now().UTC(), cfg.Hostname)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err = tx.Commit(); err != nil {
		return false, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return true, nil
}

// GetConfig implements [ConfigStore].
func (s *sqliteStorage) GetConfig(ctx context.Context, hostname string) (models.SiteConfig, error) {
	row := s.db.QueryRowContext(ctx, selectConfigByHostname, hostname)

	cfg, err := scanConfig(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SiteConfig{}, ErrConfigNotFound
	}
	if err != nil {
		return models.SiteConfig{}, err
	}
	return cfg, nil
}

// ListConfigs implements [ConfigStore].
func (s *sqliteStorage) ListConfigs(ctx context.Context) ([]models.SiteConfig, error) {
	rows, err := s.db.QueryContext(ctx, selectAllConfigs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var configs []models.SiteConfig
	for rows.Next() {
		cfg, err := scanConfig(rows.Scan)
		if err != nil {
			return nil, err
		}
		configs = append(configs, cfg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return configs, nil
}

// DeleteConfig implements [ConfigStore].
func (s *sqliteStorage) DeleteConfig(ctx context.Context, hostname string) error {
	res, err := s.db.ExecContext(ctx, deleteConfigByHostname, hostname)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrConfigNotFound
	}
	return nil
}

// SaveBackup implements [ConfigStore].
func (s *sqliteStorage) SaveBackup(ctx context.Context, payload models.EncryptedPayload, label string) (string, error) {
	id := uuid.NewString()

	_, err := s.db.ExecContext(ctx, insertBackup,
		id, label, payload.CipherText, payload.Salt, payload.IV, time.Now().UTC())
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return id, nil
}

// ListBackups implements [ConfigStore].
func (s *sqliteStorage) ListBackups(ctx context.Context) ([]models.BackupRecord, error) {
	rows, err := s.db.QueryContext(ctx, selectAllBackups)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var backups []models.BackupRecord
	for rows.Next() {
		var rec models.BackupRecord
		err := rows.Scan(&rec.ID, &rec.Label,
			&rec.Payload.CipherText, &rec.Payload.Salt, &rec.Payload.IV, &rec.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		backups = append(backups, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return backups, nil
}

// PruneBackups implements [ConfigStore].
func (s *sqliteStorage) PruneBackups(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, deleteBackupsBefore, cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return removed, nil
}

// Close implements [ConfigStore].
func (s *sqliteStorage) Close() error {
	return s.db.Close()
}

// scanConfig reads one site_configs row through the given scan function.
// sql.ErrNoRows passes through unwrapped so callers can map it.
func scanConfig(scan func(dest ...any) error) (models.SiteConfig, error) {
	var cfg models.SiteConfig
	var positioning sql.NullString

	if err := scan(&cfg.Hostname, &cfg.DisplayName, &positioning); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SiteConfig{}, err
		}
		return models.SiteConfig{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if positioning.Valid && positioning.String != "" {
		var p models.Positioning
		if err := json.Unmarshal([]byte(positioning.String), &p); err != nil {
			return models.SiteConfig{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		cfg.Positioning = &p
	}
	return cfg, nil
}

// marshalPositioning serializes the optional positioning block to its JSON
// column representation; absent positioning maps to NULL.
func marshalPositioning(p *models.Positioning) (any, error) {
	if p == nil {
		return nil, nil
	}

	raw, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return string(raw), nil
}
