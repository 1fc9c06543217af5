// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// promptdock companion. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds trust-boundary settings: key-derivation work factors and
	// the selector advisory threshold.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the loopback
	// HTTP API.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds the sqlite persistence settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Client holds settings for the CLI client talking to the API.
	Client Client `envPrefix:"CLIENT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged below the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration for the trust boundary.
//
// The Argon2id parameters are passed verbatim into the payload cipher; zero
// values fall back to the cipher's defaults (OWASP 2024 recommendations).
type App struct {
	// ArgonTime is the Argon2id iteration count.
	// Env: APP_ARGON_TIME
	ArgonTime uint32 `env:"ARGON_TIME"`

	// ArgonMemory is the Argon2id memory cost in KiB.
	// Env: APP_ARGON_MEMORY
	ArgonMemory uint32 `env:"ARGON_MEMORY"`

	// ArgonThreads is the Argon2id parallelism degree.
	// Env: APP_ARGON_THREADS
	ArgonThreads uint8 `env:"ARGON_THREADS"`

	// ArgonKeyLen is the derived key length in bytes.
	// Env: APP_ARGON_KEY_LEN
	ArgonKeyLen uint32 `env:"ARGON_KEY_LEN"`

	// SelectorWarnRatio is the fraction of a selector complexity limit at
	// which validation attaches an advisory warning. Must lie in (0, 1];
	// zero keeps the validator default of 0.8.
	// Env: APP_SELECTOR_WARN_RATIO
	SelectorWarnRatio float64 `env:"SELECTOR_WARN_RATIO"`
}

// Server holds network settings for the loopback HTTP API consumed by the
// extension UI.
type Server struct {
	// Address is the listen address in host:port form. The API carries
	// plaintext backups in flight, so anything other than a loopback host
	// is rejected by validation.
	// Env: SERVER_ADDRESS
	Address string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m"). Key
	// derivation is deliberately slow, so this must leave headroom for it.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage holds the sqlite persistence settings.
type Storage struct {
	// SQLitePath is the path of the sqlite database file holding confirmed
	// site configurations and exported backups.
	// Env: STORAGE_SQLITE_PATH
	SQLitePath string `env:"SQLITE_PATH"`

	// BackupRetention is how long stored backup records are kept before the
	// retention sweeper removes them (e.g. "2160h" for 90 days). Zero
	// disables the sweeper.
	// Env: STORAGE_BACKUP_RETENTION
	BackupRetention time.Duration `env:"BACKUP_RETENTION"`
}

// Client holds configuration for the CLI client.
type Client struct {
	// ServerURL is the base URL of the companion API.
	// Env: CLIENT_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// Timeout bounds one client request, including server-side key
	// derivation time.
	// Env: CLIENT_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Defaults applied by validation when a field is left unset by all sources.
const (
	DefaultServerAddress  = "127.0.0.1:7642"
	DefaultRequestTimeout = 60 * time.Second
	DefaultSQLitePath     = "promptdock.db"
	DefaultClientTimeout  = 90 * time.Second
)

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
