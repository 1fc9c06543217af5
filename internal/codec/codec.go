// SPDX-License-Identifier: Apache-2.0

// Package codec implements the configuration code wire format: a versioned,
// checksummed, text-safe serialization of a custom site configuration that
// users copy between browser profiles.
//
// The format treats parsing and trusting as two separate steps. Decode first
// parses the envelope, then gates on the version, then verifies the checksum,
// and only after all three does it hand the payload bytes to the caller.
package codec

import (
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
)

// Version is the current configuration code format version. Encoders always
// produce it; decoders accept exactly the versions listed in knownVersions.
const Version = 1

// knownVersions is the closed set of format versions this decoder accepts.
var knownVersions = map[int]struct{}{
	1: {},
}

// envelope is the on-the-wire JSON structure inside the outer base64 layer.
type envelope struct {
	// V is the format version.
	V int `json:"v"`

	// P is the base64url-encoded payload.
	P string `json:"p"`

	// C is the checksum over (version, payload).
	C string `json:"c"`
}

// Encode wraps payload into a single text-safe configuration code string.
// The outer base64 layer keeps the code one copy-pasteable token with no
// JSON punctuation to mangle in chat or email.
func Encode(version int, payload []byte) (string, error) {
	env := envelope{
		V: version,
		P: base64.RawURLEncoding.EncodeToString(payload),
		C: Checksum(version, payload),
	}

	raw, err := json.Marshal(env)
	if err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// Decode parses a configuration code back into its version and payload.
//
// Failure order: ErrInvalidFormat (outer base64 or envelope JSON broken, or
// the inner payload not base64), then ErrUnsupportedVersion, then
// ErrChecksumMismatch. The payload is never returned on any failure path.
func Decode(code string) (int, []byte, error) {
	raw, err := base64.RawURLEncoding.DecodeString(code)
	if err != nil {
		return 0, nil, ErrInvalidFormat
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return 0, nil, ErrInvalidFormat
	}
	if env.P == "" || env.C == "" {
		return 0, nil, ErrInvalidFormat
	}

	if _, ok := knownVersions[env.V]; !ok {
		return 0, nil, ErrUnsupportedVersion
	}

	payload, err := base64.RawURLEncoding.DecodeString(env.P)
	if err != nil {
		return 0, nil, ErrInvalidFormat
	}

	if subtle.ConstantTimeCompare([]byte(Checksum(env.V, payload)), []byte(env.C)) != 1 {
		return 0, nil, ErrChecksumMismatch
	}

	return env.V, payload, nil
}
