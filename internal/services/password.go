package services

import "golang.org/x/crypto/bcrypt"

// HashPassword applies a salted bcrypt hash. Each call salts freshly, so two
// hashes of the same password differ.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored hash. A
// malformed hash counts as a mismatch, never a success.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
