package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	pbkdf2Iterations = 210_000
	pbkdf2KeyLen     = 32
	saltLen          = 16 // bytes
)

// Hash derives a hex encoded digest from a per-user salt and a secret input
// using PBKDF2-SHA256. Deterministic for a given (salt, input) pair.
func Hash(salt, input string) string {
	key := pbkdf2.Key([]byte(input), []byte(salt), pbkdf2Iterations, pbkdf2KeyLen, sha256.New)
	return hex.EncodeToString(key)
}

// RandomSalt returns a fresh hex encoded salt.
func RandomSalt() (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	return hex.EncodeToString(salt), nil
}

// VerifyHash compares a stored digest against Hash(salt, input) in constant time.
func VerifyHash(digest, salt, input string) bool {
	return subtle.ConstantTimeCompare([]byte(digest), []byte(Hash(salt, input))) == 1
}
