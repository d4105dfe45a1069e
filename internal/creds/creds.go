// Package creds isolates credential checking behind a replaceable interface
// so the dummy comparison can be swapped for real hashing without touching
// handlers or services.
package creds

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

type Verifier interface {
	Verify(stored, given string) bool
}

// Plain compares the stored password byte for byte. Dummy auth only.
type Plain struct{}

func (Plain) Verify(stored, given string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(given)) == 1
}

// Bcrypt treats the stored value as a bcrypt hash.
type Bcrypt struct{}

func (Bcrypt) Verify(stored, given string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
}

func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// FromMode picks the verifier for the AUTH_MODE config value.
func FromMode(mode string) Verifier {
	if mode == "bcrypt" {
		return Bcrypt{}
	}
	return Plain{}
}
