// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"context"
	"time"

	"github.com/promptdock/promptdock/internal/logger"
)

// BackupPruner removes backup records older than a cutoff.
type BackupPruner interface {
	PruneBackups(ctx context.Context, cutoff time.Time) (int64, error)
}

// RetentionWorker periodically deletes backup records older than maxAge.
// Encrypted backups accumulate silently through labeled exports; without a
// sweep the database grows without bound.
type RetentionWorker struct {
	pruner   BackupPruner
	maxAge   time.Duration
	interval time.Duration

	logger *logger.Logger
}

func NewRetentionWorker(pruner BackupPruner, maxAge, interval time.Duration, logger *logger.Logger) *RetentionWorker {
	return &RetentionWorker{
		pruner:   pruner,
		maxAge:   maxAge,
		interval: interval,
		logger:   logger,
	}
}

// Run implements [Worker]. One sweep runs immediately, then once per
// interval until ctx is cancelled.
func (w *RetentionWorker) Run(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.sweep(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				w.sweep(ctx)
			}
		}
	}()
}

func (w *RetentionWorker) sweep(ctx context.Context) {
	cutoff := time.Now().Add(-w.maxAge)

	removed, err := w.pruner.PruneBackups(ctx, cutoff)
	if err != nil {
		w.logger.Err(err).Msg("backup retention sweep failed")
		return
	}
	if removed > 0 {
		w.logger.Info().Int64("removed", removed).Time("cutoff", cutoff).Msg("pruned expired backups")
	}
}
