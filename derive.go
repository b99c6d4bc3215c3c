package vaultcore

import (
	"errors"
	"fmt"

	"github.com/beewallet/vaultcore-go/internal/crypto"
)

// DeriveKey derives a Key from a passphrase and salt using Argon2id with
// fixed, build-time parameters. Derivation is deterministic: the same
// (passphrase, salt) pair always yields the same key. The passphrase is
// read but never retained; the intermediate derivation buffer is wiped
// before return on every path.
//
// Returns ErrInvalidInput if the passphrase is empty, and ErrKDFFailed if
// derivation fails internally.
func DeriveKey(passphrase []byte, salt Salt) (Key, error) {
	var key Key

	raw, err := crypto.DeriveKey(passphrase, salt[:])
	if err != nil {
		if errors.Is(err, crypto.ErrKDFOutput) {
			return key, fmt.Errorf("%w: %v", ErrKDFFailed, err)
		}
		return key, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	copy(key[:], raw)
	crypto.Wipe(raw)
	return key, nil
}
