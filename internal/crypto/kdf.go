package crypto

import (
	"fmt"

	"golang.org/x/crypto/argon2"
)

// DeriveKey derives a KeySize-byte key from a passphrase and salt using
// Argon2id with the package's fixed cost parameters. The same (passphrase,
// salt) pair always yields the same key; no randomness is involved.
//
// The passphrase is read but never retained. The caller owns the returned
// key and must wipe it when done.
func DeriveKey(passphrase, salt []byte) ([]byte, error) {
	if len(passphrase) == 0 {
		return nil, ErrEmptyPassphrase
	}
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidSaltSize, len(salt), SaltSize)
	}

	key := argon2.IDKey(passphrase, salt, argon2Time, argon2Memory, argon2Threads, KeySize)
	if len(key) != KeySize {
		Wipe(key)
		return nil, ErrKDFOutput
	}

	return key, nil
}
