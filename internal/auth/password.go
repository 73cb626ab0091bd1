package auth

import "golang.org/x/crypto/bcrypt"

const bcryptCost = 10

// HashPassword applies a salted bcrypt hash to the plaintext. The result is
// safe to persist; the plaintext is never stored or logged.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword verifies a plaintext password against a stored hash.
// A malformed stored hash counts as a mismatch, not an error.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
