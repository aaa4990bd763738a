// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// fingerprintSize is the digest length in bytes; 6 bytes give 12 hex chars.
const fingerprintSize = 6

// Fingerprint returns a short, stable, non-reversible identifier for a
// secret such as a push token, suitable for log fields. Empty input yields "".
func Fingerprint(secret string) string {
	if secret == "" {
		return ""
	}

	h, err := blake2b.New(fingerprintSize, nil)
	if err != nil {
		// only returned for invalid sizes or keys
		panic(err)
	}
	h.Write([]byte(secret))

	return hex.EncodeToString(h.Sum(nil))
}
