// SPDX-License-Identifier: Apache-2.0

package config

import (
	"net"
	"strings"
)

// applyDefaults fills fields left unset by every source.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.Address == "" {
		cfg.Server.Address = DefaultServerAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Storage.SQLitePath == "" {
		cfg.Storage.SQLitePath = DefaultSQLitePath
	}
	if cfg.Client.ServerURL == "" {
		cfg.Client.ServerURL = "http://" + cfg.Server.Address
	}
	if cfg.Client.Timeout == 0 {
		cfg.Client.Timeout = DefaultClientTimeout
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	host, _, err := net.SplitHostPort(cfg.Server.Address)
	if err != nil {
		return ErrInvalidServerConfigs
	}
	if !isLoopbackHost(host) {
		// The API carries plaintext backups; it must never listen on a
		// routable interface.
		return ErrServerAddressNotLoopback
	}

	if cfg.App.SelectorWarnRatio < 0 || cfg.App.SelectorWarnRatio > 1 {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.BackupRetention < 0 {
		return ErrInvalidStorageConfigs
	}

	return nil
}

func isLoopbackHost(host string) bool {
	if strings.EqualFold(host, "localhost") {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
