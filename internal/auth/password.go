// Package auth implements credential hashing for local accounts.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	hashScheme        = "pbkdf2"
	DefaultIterations = 120_000
	saltLen           = 16
	keyLen            = 32
)

// PasswordHasher derives and verifies PBKDF2-HMAC-SHA256 password hashes.
// The encoded form is pbkdf2$<iterations>$<base64 salt>$<base64 key>.
type PasswordHasher struct {
	iterations int
}

// NewPasswordHasher creates a hasher. A non-positive iteration count falls
// back to DefaultIterations.
func NewPasswordHasher(iterations int) *PasswordHasher {
	if iterations <= 0 {
		iterations = DefaultIterations
	}
	return &PasswordHasher{iterations: iterations}
}

// Hash derives a new salted hash for password.
func (h *PasswordHasher) Hash(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	key := pbkdf2.Key([]byte(password), salt, h.iterations, keyLen, sha256.New)

	return strings.Join([]string{
		hashScheme,
		strconv.Itoa(h.iterations),
		base64.StdEncoding.EncodeToString(salt),
		base64.StdEncoding.EncodeToString(key),
	}, "$"), nil
}

// Verify reports whether password matches the encoded hash.
// The stored iteration count and key length are honored, so hashes created
// with other settings still verify. Malformed input never matches.
func (h *PasswordHasher) Verify(password, encoded string) bool {
	parts := strings.Split(encoded, "$")
	if len(parts) != 4 || parts[0] != hashScheme {
		return false
	}

	iterations, err := strconv.Atoi(parts[1])
	if err != nil || iterations <= 0 {
		return false
	}

	salt, err := base64.StdEncoding.DecodeString(parts[2])
	if err != nil || len(salt) == 0 {
		return false
	}

	expected, err := base64.StdEncoding.DecodeString(parts[3])
	if err != nil || len(expected) == 0 {
		return false
	}

	actual := pbkdf2.Key([]byte(password), salt, iterations, len(expected), sha256.New)

	return subtle.ConstantTimeCompare(expected, actual) == 1
}
