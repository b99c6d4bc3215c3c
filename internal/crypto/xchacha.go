package crypto

import (
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

// Seal encrypts plaintext with XChaCha20-Poly1305 under key.
// The output layout is: nonce (24 bytes) || ciphertext || tag (16 bytes),
// so len(sealed) == len(plaintext) + Overhead. The nonce is drawn fresh
// from the OS CSPRNG on every call; sealing the same plaintext twice under
// the same key yields different output.
func Seal(key, plaintext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), KeySize)
	}

	sealed := make([]byte, NonceSize, NonceSize+len(plaintext)+TagSize)
	if err := ReadRandom(sealed[:NonceSize]); err != nil {
		return nil, err
	}

	// Seal appends ciphertext||tag after the nonce prefix.
	return aead.Seal(sealed, sealed[:NonceSize], plaintext, nil), nil
}

// Open decrypts a message produced by Seal. Messages shorter than Overhead
// are rejected before any cryptographic work. Decryption and tag
// verification are a single atomic AEAD operation: a wrong key, a flipped
// bit, and a truncated tail all fail identically with ErrDecryptionFailed
// and produce no partial plaintext.
func Open(key, sealed []byte) ([]byte, error) {
	if len(sealed) < Overhead {
		return nil, fmt.Errorf("%w: got %d bytes, need at least %d", ErrSealedTooShort, len(sealed), Overhead)
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), KeySize)
	}

	nonce, ciphertext := sealed[:NonceSize], sealed[NonceSize:]

	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	return plaintext, nil
}
