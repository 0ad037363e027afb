// Package password wraps bcrypt hashing for stored credentials. Plaintext
// passwords never leave this package and are never logged.
package password

import "golang.org/x/crypto/bcrypt"

// Work factor 10, matching bcrypt's default. Each call salts independently,
// so two hashes of the same plaintext differ.
const cost = bcrypt.DefaultCost

func Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

func Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
