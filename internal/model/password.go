package model

// PasswordHasher produces and verifies salted one-way password digests.
// Verify reports a plain mismatch as false, never as an error.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, digest string) bool
}
