// Package service defines interfaces for stateless domain logic that does
// not belong to a single entity, implemented under internal/infra.
package service

// PasswordHasher hashes and verifies employee passwords. The concrete
// algorithm (bcrypt) stays out of the domain.
type PasswordHasher interface {
	// Hash produces a salted hash of a plaintext password.
	Hash(password string) (string, error)

	// Check reports whether the plaintext password matches the hash.
	Check(password, hash string) bool
}
