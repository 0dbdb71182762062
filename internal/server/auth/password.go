// Package auth implements the credential hasher and the identity token
// codecs used by the user service and the HTTP auth gate.
package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword produces a salted one-way bcrypt digest of the plaintext.
// bcrypt generates a fresh random salt on every call and embeds it in the
// digest, so hashing the same plaintext twice yields different strings and
// verification needs no separately stored salt.
func HashPassword(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(digest), nil
}

// CheckPassword reports whether plaintext matches the bcrypt digest.
// The salt is recovered from the digest itself; bcrypt performs the
// comparison internally.
func CheckPassword(plaintext string, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
