// SPDX-License-Identifier: Apache-2.0

// Package workers provides abstractions for managing and running background
// workers in the application. It defines the Worker interface, a Workers
// aggregate that runs multiple workers in a unified way, and the backup
// retention sweeper.
package workers

import "context"

// Worker is implemented by any background worker. Run starts the worker and
// returns immediately; the worker stops when ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}
