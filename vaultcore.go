package vaultcore

import (
	"fmt"

	"github.com/beewallet/vaultcore-go/internal/crypto"
)

// Fixed field sizes, in bytes.
const (
	// KeySize is the size of a symmetric key.
	KeySize = crypto.KeySize
	// SaltSize is the size of a key-derivation salt.
	SaltSize = crypto.SaltSize
	// NonceSize is the size of the nonce prefixed to every sealed message.
	NonceSize = crypto.NonceSize
	// TagSize is the size of the authentication tag appended to every
	// sealed message.
	TagSize = crypto.TagSize
	// Overhead is the fixed size Seal adds to a plaintext (NonceSize +
	// TagSize), and the minimum valid length of a sealed message.
	Overhead = crypto.Overhead
)

// Key is a 256-bit symmetric key. Using a fixed-size array type makes a
// wrong-length key unrepresentable, so Seal and Unseal never need to check.
// Keys are copied by value; wipe every copy with Zero when it is no longer
// needed.
type Key [KeySize]byte

// Salt is a 128-bit key-derivation salt. It is not secret, but must be
// unique per passphrase to defeat precomputed dictionary attacks.
type Salt [SaltSize]byte

// NewKey copies b into a Key. Returns ErrInvalidInput if b is not exactly
// KeySize bytes.
func NewKey(b []byte) (Key, error) {
	var key Key
	if len(b) != KeySize {
		return key, fmt.Errorf("%w: key must be %d bytes, got %d", ErrInvalidInput, KeySize, len(b))
	}
	copy(key[:], b)
	return key, nil
}

// NewSalt copies b into a Salt. Returns ErrInvalidInput if b is not exactly
// SaltSize bytes.
func NewSalt(b []byte) (Salt, error) {
	var salt Salt
	if len(b) != SaltSize {
		return salt, fmt.Errorf("%w: salt must be %d bytes, got %d", ErrInvalidInput, SaltSize, len(b))
	}
	copy(salt[:], b)
	return salt, nil
}

// Zero wipes the key in place. The key must not be used afterwards.
func (k *Key) Zero() {
	crypto.Wipe(k[:])
}

// Wipe overwrites b with zero bytes, for scrubbing plaintexts, passphrases,
// and other caller-owned secret material. The write cannot be elided by the
// compiler. Wiping an empty or nil slice is a no-op.
func Wipe(b []byte) {
	crypto.Wipe(b)
}
