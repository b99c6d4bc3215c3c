package vaultcore

import (
	"errors"
	"fmt"

	"github.com/beewallet/vaultcore-go/internal/crypto"
)

// Seal encrypts plaintext under key with XChaCha20-Poly1305. The result is
// nonce || ciphertext || tag, exactly len(plaintext) + Overhead bytes, with
// the nonce drawn fresh from the OS CSPRNG. A nil plaintext is treated as
// empty; sealing the empty plaintext is valid and produces an
// Overhead-sized message.
//
// The key is received by value; Seal wipes its local copy before returning,
// on every path. The caller's copy is untouched.
func Seal(key Key, plaintext []byte) ([]byte, error) {
	defer crypto.Wipe(key[:])

	sealed, err := crypto.Seal(key[:], plaintext)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return sealed, nil
}

// Unseal authenticates and decrypts a message produced by Seal. Inputs
// shorter than Overhead are rejected with ErrInvalidInput before any
// cryptographic work. Any authentication failure (wrong key, corrupted
// ciphertext, truncated or extended input) returns ErrDecryptFailed with
// no partial plaintext and no hint of which case occurred.
//
// The returned plaintext is exclusively owned by the caller; wipe it with
// Wipe when done. Unseal wipes its local key copy before returning, on
// every path.
func Unseal(key Key, sealed []byte) ([]byte, error) {
	defer crypto.Wipe(key[:])

	plaintext, err := crypto.Open(key[:], sealed)
	if err != nil {
		if errors.Is(err, crypto.ErrDecryptionFailed) {
			return nil, ErrDecryptFailed
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return plaintext, nil
}
