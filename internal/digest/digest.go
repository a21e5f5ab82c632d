// Package digest abstracts the one-way password digest used for credential
// verification. The directory stores digests, never plaintext; Verify compares
// a candidate password against a stored digest without revealing either.
package digest

// Digest is a pluggable password hashing scheme.
type Digest interface {
	// Sum computes the storable digest of a plaintext password.
	Sum(password string) (string, error)

	// Verify reports whether password matches the stored digest.
	Verify(password, stored string) bool
}
