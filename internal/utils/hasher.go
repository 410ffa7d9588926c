package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash generates a SHA-256 hash of the input parts, separated by a NUL byte
// so that ("ab", "c") and ("a", "bc") never collide.
func Hash(parts ...string) string {
	hasher := sha256.New()
	for i, p := range parts {
		if i > 0 {
			hasher.Write([]byte{0})
		}
		hasher.Write([]byte(p))
	}
	return hex.EncodeToString(hasher.Sum(nil))
}
