// SPDX-License-Identifier: Apache-2.0

package service

import "errors"

var (
	// ErrSecurityViolation marks a configuration whose selector was
	// rejected by the safety rule table. Kept distinct from structural
	// validation errors so the UI can explain "disallowed pattern" instead
	// of implying a typo.
	ErrSecurityViolation = errors.New("configuration rejected by security policy")

	// ErrValidationFailed marks a structurally invalid configuration:
	// missing hostname, malformed offsets and similar shape problems.
	// The wrapped validators sentinel names the exact field.
	ErrValidationFailed = errors.New("configuration validation failed")
)
