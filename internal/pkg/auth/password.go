package auth

import (
	"unicode"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/Grenders/transport-api/internal/pkg/errors"
)

// HashPassword returns the bcrypt hash of a plaintext password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext password matches the hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidateStrongPassword enforces the reset-flow password policy: at least
// 8 characters with an uppercase letter, a digit and a special character.
func ValidateStrongPassword(password string) error {
	if len(password) < 8 {
		return apperrors.ErrValidation.WithField(
			"new_password", "Password must be at least 8 characters long")
	}

	var hasUpper, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	if !hasUpper {
		return apperrors.ErrValidation.WithField(
			"new_password", "Password must contain at least one uppercase letter")
	}
	if !hasDigit {
		return apperrors.ErrValidation.WithField(
			"new_password", "Password must contain at least one digit")
	}
	if !hasSpecial {
		return apperrors.ErrValidation.WithField(
			"new_password", "Password must contain at least one special character")
	}
	return nil
}
