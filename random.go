package vaultcore

import (
	"fmt"

	"github.com/beewallet/vaultcore-go/internal/crypto"
)

// Random returns n cryptographically secure random bytes from the OS
// CSPRNG. Returns ErrInvalidInput if n is not positive or if the entropy
// source fails; it never degrades to a weaker source.
func Random(n int) ([]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: requested %d random bytes", ErrInvalidInput, n)
	}

	b := make([]byte, n)
	if err := crypto.ReadRandom(b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return b, nil
}

// RandomFill fills the caller-owned slice b with cryptographically secure
// random bytes. Returns ErrInvalidInput if b is empty or the entropy source
// fails.
func RandomFill(b []byte) error {
	if err := crypto.ReadRandom(b); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}
