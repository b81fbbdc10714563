package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost is the bcrypt work factor used for password hashing.
const bcryptCost = 10

// HashPassword returns the salted bcrypt digest of the given plaintext.
// The plaintext must never be logged or stored.
func HashPassword(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// CheckPassword reports whether plaintext matches the stored bcrypt digest.
// bcrypt's comparison is constant-time.
func CheckPassword(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
