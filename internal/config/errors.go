// SPDX-License-Identifier: Apache-2.0

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates an unparsable server listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")

	// ErrServerAddressNotLoopback indicates a listen address outside the
	// loopback range. The API must stay local to the machine.
	ErrServerAddressNotLoopback = errors.New("server address must be a loopback address")

	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an advisory ratio outside (0, 1]).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")

	// ErrInvalidStorageConfigs indicates invalid storage settings (for
	// example, a negative backup retention period).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
