// SPDX-License-Identifier: Apache-2.0

package service

import (
	"github.com/promptdock/promptdock/internal/config"
	"github.com/promptdock/promptdock/internal/crypto"
	"github.com/promptdock/promptdock/internal/validators"
)

// Services aggregates all trust-boundary services consumed by the transport
// layer.
type Services struct {
	ConfigCodes ConfigCodeService
	Backups     BackupService
}

// NewServices builds the service set from application configuration. Key
// derivation work factors and the selector advisory threshold come from cfg,
// so tests and constrained deployments tune them without global state.
func NewServices(cfg config.App) *Services {
	cipher := crypto.NewPayloadCipher(crypto.Params{
		Time:    cfg.ArgonTime,
		Memory:  cfg.ArgonMemory,
		Threads: cfg.ArgonThreads,
		KeyLen:  cfg.ArgonKeyLen,
	})

	policy := validators.DefaultSelectorPolicy()
	if cfg.SelectorWarnRatio > 0 {
		policy.WarnRatio = cfg.SelectorWarnRatio
	}

	return &Services{
		ConfigCodes: NewConfigCodeService(policy),
		Backups:     NewBackupService(cipher),
	}
}
