package hash

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"

	"golang.org/x/crypto/argon2"
)

const (
	saltLength  = 16
	iterations  = 3
	memory      = 64 * 1024
	parallelism = 2
	keyLength   = 32
)

// NewSalt returns a fresh random salt, generated once per user at creation.
func NewSalt() (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	return base64.RawStdEncoding.EncodeToString(salt), nil
}

// Password derives an argon2id hash from the password and salt. The same
// (password, salt) pair always yields the same hash; the recovery flow relies
// on this to recompute the hash with the user's stored salt.
func Password(password, salt string) string {
	sum := argon2.IDKey([]byte(password), []byte(salt), iterations, memory, parallelism, keyLength)

	return base64.RawStdEncoding.EncodeToString(sum)
}

func Verify(password, salt, passwordHash string) bool {
	return subtle.ConstantTimeCompare([]byte(Password(password, salt)), []byte(passwordHash)) == 1
}
