// Package service declares the stateless capabilities the use cases depend on.
// Implementations live under internal/infra.
package service

// PasswordHasher hashes account passwords and verifies sign-in attempts.
type PasswordHasher interface {
	// Hash returns a salted hash of password.
	Hash(password string) (string, error)

	// Check reports whether password matches hash. Any malformed hash is a mismatch.
	Check(password, hash string) bool
}
