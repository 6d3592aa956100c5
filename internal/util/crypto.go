package util

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// MinTokenLength is the shortest admin token HashToken accepts.
const MinTokenLength = 16

var ErrTokenMismatch = errors.New("token does not match")

// HashToken returns a bcrypt hash suitable for api.admin_token_hash.
func HashToken(token string) (string, error) {
	if err := ValidateToken(token); err != nil {
		return "", err
	}
	sum, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(sum), nil
}

// CheckToken compares token against a bcrypt hash.
func CheckToken(hash, token string) error {
	if hash == "" || token == "" {
		return ErrTokenMismatch
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(token)); err != nil {
		return ErrTokenMismatch
	}
	return nil
}

func ValidateToken(token string) error {
	if len(token) < MinTokenLength {
		return fmt.Errorf("token must be at least %d characters", MinTokenLength)
	}
	if strings.TrimSpace(token) != token {
		return fmt.Errorf("token must not start or end with whitespace")
	}
	return nil
}
