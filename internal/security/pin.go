package security

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MinPINLength is the minimum number of digits accepted for a parent PIN.
const MinPINLength = 4

// HashParentPIN hashes a parent PIN with bcrypt for storage in preferences.
func HashParentPIN(pin string) (string, error) {
	if len(pin) < MinPINLength {
		return "", fmt.Errorf("PIN must be at least %d characters", MinPINLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash PIN: %w", err)
	}
	return string(hash), nil
}

// CheckParentPIN compares a candidate PIN against a stored bcrypt hash.
func CheckParentPIN(hash, pin string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin)) == nil
}
