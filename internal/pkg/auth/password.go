package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// Password length bounds for staff accounts. bcrypt rejects input over 72 bytes.
const (
	MinPasswordLength = 6
	MaxPasswordLength = 72
)

// BcryptCost is the hashing cost for staff passwords
var BcryptCost = 12

// HashPassword hashes a plain-text password
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword compares a bcrypt hash with a plain-text password
func CheckPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
