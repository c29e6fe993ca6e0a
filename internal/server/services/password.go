package services

import (
	"crypto/subtle"

	"golang.org/x/crypto/argon2"
)

// argon2id parameters for password hashing. Changing them invalidates
// stored hashes, so bump only together with a rehash-on-login migration.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
)

// HashPassword derives the stored password hash from a plaintext password
// and the user's salt.
func HashPassword(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, argonTime, argonMemory, argonThreads, argonKeyLen)
}

// CheckPassword compares a candidate password against the stored hash in
// constant time.
func CheckPassword(password, salt, hash []byte) bool {
	candidate := HashPassword(password, salt)
	return subtle.ConstantTimeCompare(candidate, hash) == 1
}
