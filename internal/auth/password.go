// ABOUTME: Password hashing and verification using salted bcrypt
// ABOUTME: Hashing is one-way; a lost password can only be replaced, never recovered

package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// dummyHash is a valid bcrypt hash of a random string. It is compared against
// when no real hash exists so that failed lookups take the same time as
// failed password checks, preventing email enumeration via timing.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// HashPassword returns a salted bcrypt hash of the password. The salt is
// randomized per call, so hashing the same password twice yields different
// blobs that both verify.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether the password matches the stored hash.
// The comparison is constant-time within bcrypt.
func VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// verifyDummy burns a bcrypt comparison against a throwaway hash. Called on
// the unknown-email path to keep authentication timing flat.
func verifyDummy(password string) {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
}
