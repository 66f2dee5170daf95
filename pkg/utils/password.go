package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt reads at most this many bytes of a password.
const maxPasswordBytes = 72

var ErrEmptyPassword = errors.New("password must not be empty")

// HashPassword returns a salted bcrypt hash of plain. A cost outside
// bcrypt's accepted range falls back to bcrypt.DefaultCost.
func HashPassword(plain string, cost int) (string, error) {
	if plain == "" {
		return "", ErrEmptyPassword
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// CheckPassword reports whether plain matches hash. The comparison is constant time.
// Input longer than bcrypt can hash never matches, since HashPassword refuses it.
func CheckPassword(hash, plain string) bool {
	if hash == "" || len(plain) > maxPasswordBytes {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
