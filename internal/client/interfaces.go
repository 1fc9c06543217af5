// SPDX-License-Identifier: Apache-2.0

package client

import "context"

// Client defines the minimal contract for runnable client applications.
type Client interface {
	// Run executes one client command with its arguments and returns when
	// the command completes.
	Run(ctx context.Context, args []string) error
}
