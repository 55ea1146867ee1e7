// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// CredentialHasher turns a cleartext password into a salted, one-way digest.
// Failures are hashing-kind errors and are never retried.
type CredentialHasher interface {
	// GenerateSalt returns fresh bytes from a cryptographically secure source.
	GenerateSalt() ([]byte, error)

	// DeriveHash is deterministic: the same password and salt always give the
	// same digest.
	DeriveHash(password string, salt []byte) ([]byte, error)
}
