// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	t.Setenv("APP_ARGON_TIME", "2")
	t.Setenv("APP_ARGON_MEMORY", "32768")
	t.Setenv("APP_SELECTOR_WARN_RATIO", "0.9")
	t.Setenv("SERVER_ADDRESS", "127.0.0.1:9000")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "45s")
	t.Setenv("STORAGE_SQLITE_PATH", "/tmp/test.db")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, uint32(2), cfg.App.ArgonTime)
	assert.Equal(t, uint32(32768), cfg.App.ArgonMemory)
	assert.Equal(t, 0.9, cfg.App.SelectorWarnRatio)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Address)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "/tmp/test.db", cfg.Storage.SQLitePath)
}

func TestParseJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	payload := `{
		"app": {"argon_time": 3, "selector_warn_ratio": 0.7},
		"server": {"address": "localhost:7000", "request_timeout": "1m"},
		"storage": {"sqlite_path": "dock.db"},
		"client": {"server_url": "http://localhost:7000", "timeout": "30s"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, uint32(3), cfg.App.ArgonTime)
	assert.Equal(t, 0.7, cfg.App.SelectorWarnRatio)
	assert.Equal(t, "localhost:7000", cfg.Server.Address)
	assert.Equal(t, time.Minute, cfg.Server.RequestTimeout)
	assert.Equal(t, "dock.db", cfg.Storage.SQLitePath)
	assert.Equal(t, 30*time.Second, cfg.Client.Timeout)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestValidate_RejectsNonLoopbackAddress(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()
	cfg.Server.Address = "0.0.0.0:7642"

	assert.ErrorIs(t, cfg.validate(), ErrServerAddressNotLoopback)

	cfg.Server.Address = "192.168.1.5:7642"
	assert.ErrorIs(t, cfg.validate(), ErrServerAddressNotLoopback)
}

func TestValidate_AcceptsLoopbackAddresses(t *testing.T) {
	for _, addr := range []string{"127.0.0.1:7642", "localhost:7642", "[::1]:7642"} {
		cfg := &StructuredConfig{}
		cfg.applyDefaults()
		cfg.Server.Address = addr

		assert.NoError(t, cfg.validate(), "address %q", addr)
	}
}

func TestValidate_RejectsBadWarnRatio(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()
	cfg.App.SelectorWarnRatio = 1.5

	assert.ErrorIs(t, cfg.validate(), ErrInvalidAppConfigs)
}

func TestValidate_RejectsNegativeBackupRetention(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()
	cfg.Storage.BackupRetention = -time.Hour

	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()

	assert.Equal(t, DefaultServerAddress, cfg.Server.Address)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultSQLitePath, cfg.Storage.SQLitePath)
	assert.Equal(t, "http://"+DefaultServerAddress, cfg.Client.ServerURL)
	assert.Equal(t, DefaultClientTimeout, cfg.Client.Timeout)
}

func TestNetAddress_Set(t *testing.T) {
	var addr NetAddress

	require.NoError(t, addr.Set("localhost:8080"))
	assert.Equal(t, "localhost:8080", addr.String())

	assert.Error(t, addr.Set("no-port"))
	assert.Error(t, addr.Set("localhost:0"))
	assert.Error(t, addr.Set("not-an-ip:80"))
}
