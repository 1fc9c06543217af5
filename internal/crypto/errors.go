// SPDX-License-Identifier: Apache-2.0

package crypto

import "errors"

// Sentinel errors returned by the payload cipher. Only this closed set ever
// crosses the package boundary: raw cipher and codec errors are swallowed so
// failure text cannot be used as a decryption oracle.
var (
	// ErrEmptyPassword is returned when the password is empty or consists
	// only of whitespace. Weak passwords are accepted; absent ones are not.
	ErrEmptyPassword = errors.New("password must not be empty")

	// ErrMalformedPayload is returned when a payload field is not valid
	// base64 or the ciphertext is too short to carry an authentication tag.
	// This is a shape problem, detected before any key derivation runs.
	ErrMalformedPayload = errors.New("malformed encrypted payload")

	// ErrAuthenticationFailed is returned when GCM authentication fails:
	// wrong password, or tampering with ciphertext, salt or IV.
	ErrAuthenticationFailed = errors.New("decryption failed: wrong password or corrupted payload")
)
