// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"crypto/sha256"
	"encoding/base64"
	"strconv"
)

// checksumSize is the number of SHA-256 bytes kept for the embedded digest.
// Eight bytes keep the code short while making an accidental collision on a
// corrupted paste practically impossible. The digest detects corruption, not
// forgery: it carries no secret.
const checksumSize = 8

// Checksum computes the integrity digest embedded in a configuration code.
// The version participates in the digest so a payload cannot be replayed
// under a different format version.
func Checksum(version int, payload []byte) string {
	h := sha256.New()
	h.Write([]byte("v" + strconv.Itoa(version) + ":"))
	h.Write(payload)
	sum := h.Sum(nil)
	return base64.RawURLEncoding.EncodeToString(sum[:checksumSize])
}
