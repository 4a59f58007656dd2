// Package auth handles password hashing. Only the bcrypt hash is ever
// persisted; the plaintext never leaves the create-user path.
package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a salted bcrypt hash from the plaintext password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext password matches the stored hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
