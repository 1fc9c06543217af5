// SPDX-License-Identifier: Apache-2.0

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyHostname    = errors.New("hostname is required")
	ErrInvalidHostname  = errors.New("hostname is not a valid domain")
	ErrEmptyDisplayName = errors.New("display name is required")
	ErrInvalidMode      = errors.New("unknown positioning mode")
	ErrEmptySelector    = errors.New("positioning selector is required")
	ErrInvalidPlacement = errors.New("unknown placement value")
	ErrOffsetOutOfRange = errors.New("offset is out of range")
	ErrInvalidZIndex    = errors.New("z-index is out of range")
)
