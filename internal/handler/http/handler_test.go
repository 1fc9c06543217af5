// SPDX-License-Identifier: Apache-2.0

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/promptdock/promptdock/internal/config"
	"github.com/promptdock/promptdock/internal/logger"
	"github.com/promptdock/promptdock/internal/service"
	"github.com/promptdock/promptdock/internal/store"
	"github.com/promptdock/promptdock/models"
)

// fakeStore is an in-memory ConfigStore used by handler tests.
type fakeStore struct {
	configs map[string]models.SiteConfig
	backups []models.BackupRecord

	failWith error
}

func newFakeStore() *fakeStore {
	return &fakeStore{configs: map[string]models.SiteConfig{}}
}

func (f *fakeStore) SaveConfig(_ context.Context, cfg models.SiteConfig, overwrite bool) (bool, error) {
	if f.failWith != nil {
		return false, f.failWith
	}
	_, exists := f.configs[cfg.Hostname]
	if exists && !overwrite {
		return false, store.ErrConfigAlreadyExists
	}
	f.configs[cfg.Hostname] = cfg
	return exists, nil
}

func (f *fakeStore) GetConfig(_ context.Context, hostname string) (models.SiteConfig, error) {
	if f.failWith != nil {
		return models.SiteConfig{}, f.failWith
	}
	cfg, ok := f.configs[hostname]
	if !ok {
		return models.SiteConfig{}, store.ErrConfigNotFound
	}
	return cfg, nil
}

func (f *fakeStore) ListConfigs(_ context.Context) ([]models.SiteConfig, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var configs []models.SiteConfig
	for _, cfg := range f.configs {
		configs = append(configs, cfg)
	}
	return configs, nil
}

func (f *fakeStore) DeleteConfig(_ context.Context, hostname string) error {
	if f.failWith != nil {
		return f.failWith
	}
	if _, ok := f.configs[hostname]; !ok {
		return store.ErrConfigNotFound
	}
	delete(f.configs, hostname)
	return nil
}

func (f *fakeStore) SaveBackup(_ context.Context, payload models.EncryptedPayload, label string) (string, error) {
	if f.failWith != nil {
		return "", f.failWith
	}
	rec := models.BackupRecord{ID: "backup-1", Label: label, Payload: payload}
	f.backups = append(f.backups, rec)
	return rec.ID, nil
}

func (f *fakeStore) ListBackups(_ context.Context) ([]models.BackupRecord, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.backups, nil
}

func (f *fakeStore) PruneBackups(_ context.Context, cutoff time.Time) (int64, error) {
	var kept []models.BackupRecord
	var removed int64
	for _, rec := range f.backups {
		if rec.CreatedAt.Before(cutoff) {
			removed++
			continue
		}
		kept = append(kept, rec)
	}
	f.backups = kept
	return removed, nil
}

func (f *fakeStore) Close() error { return nil }

func newTestHandler(t *testing.T) (*chi.Mux, *fakeStore) {
	t.Helper()

	services := service.NewServices(config.App{
		ArgonTime:    1,
		ArgonMemory:  16,
		ArgonThreads: 1,
		ArgonKeyLen:  32,
	})
	fs := newFakeStore()
	h := NewHandler(services, fs, models.NewAppBuildInfo("v1.0.0", "2026-01-02", "abcdef0"), logger.Nop())

	return h.Init(), fs
}

func doJSON(t *testing.T, router http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func testSiteConfig() models.SiteConfig {
	return models.SiteConfig{
		Hostname:    "chat.example.com",
		DisplayName: "Example Chat",
		Positioning: &models.Positioning{
			Mode:      models.PositioningModeCustom,
			Selector:  "#prompt-input",
			Placement: models.PlacementAfter,
			ZIndex:    100,
		},
	}
}
