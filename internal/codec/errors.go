// SPDX-License-Identifier: Apache-2.0

package codec

import "errors"

// Sentinel errors returned by Decode. Callers match them with [errors.Is] to
// tell the user whether to re-paste the code (format), upgrade (version) or
// re-request it (checksum).
var (
	// ErrInvalidFormat is returned when the code cannot be parsed into a
	// {version, payload, checksum} envelope at all.
	ErrInvalidFormat = errors.New("configuration code has an invalid format")

	// ErrUnsupportedVersion is returned when the envelope parses but its
	// version is not one this decoder understands. Newer versions fail
	// closed; no best-effort parse is attempted.
	ErrUnsupportedVersion = errors.New("configuration code version is not supported")

	// ErrChecksumMismatch is returned when the recomputed checksum differs
	// from the embedded one: the code was truncated, corrupted or tampered
	// with. No payload byte is exposed on this path.
	ErrChecksumMismatch = errors.New("configuration code checksum mismatch")
)
