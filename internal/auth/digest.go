package auth

import (
	"crypto/sha256"
	"encoding/hex"
)

// Digest returns the lowercase hex SHA-256 of the plaintext password.
//
// Single-pass, no salt, and login compares digests with plain string
// equality. That is deliberately weak but matches the stored-credential
// format of existing stores; hardening it would reject every previously
// registered password. Flagged in DESIGN.md.
func Digest(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}
