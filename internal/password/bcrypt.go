package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/fintrack/fintrack-server/internal/model"
)

var _ model.PasswordHasher = (*Bcrypt)(nil)

// Bcrypt implements PasswordHasher backed by bcrypt. Every Hash call
// draws a fresh random salt which bcrypt embeds in the digest, so
// verification is self-contained.
type Bcrypt struct {
	cost int
}

// NewBcrypt creates a Bcrypt hasher with the default cost.
func NewBcrypt() *Bcrypt {
	return &Bcrypt{cost: bcrypt.DefaultCost}
}

// Hash derives a salted digest from the plaintext password.
func (b *Bcrypt) Hash(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("%w: password must not be empty", model.ErrInvalidInput)
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(digest), nil
}

// Verify reports whether the plaintext password matches the digest.
// The comparison inside bcrypt is constant time; any failure, including
// a malformed digest, reads as a mismatch.
func (b *Bcrypt) Verify(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
