package crypto

import "errors"

var (
	// ErrInvalidKeySize is returned when a key is not exactly KeySize bytes.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidSaltSize is returned when a salt is not exactly SaltSize bytes.
	ErrInvalidSaltSize = errors.New("invalid salt size")

	// ErrEmptyPassphrase is returned when key derivation is attempted with an
	// empty passphrase.
	ErrEmptyPassphrase = errors.New("empty passphrase")

	// ErrSealedTooShort is returned when a sealed message is shorter than the
	// fixed nonce+tag overhead. The message is rejected before any
	// cryptographic work is attempted.
	ErrSealedTooShort = errors.New("sealed message too short")

	// ErrDecryptionFailed is returned when AEAD open fails. It deliberately
	// covers wrong key, corrupted ciphertext, and truncated or extended input
	// without distinguishing between them.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrKDFOutput is returned when the key derivation function produces
	// output of an unexpected length.
	ErrKDFOutput = errors.New("key derivation produced malformed output")

	// ErrEntropyUnavailable is returned when the OS random source fails.
	ErrEntropyUnavailable = errors.New("entropy source unavailable")

	// ErrZeroLength is returned for a zero-length random fill request.
	ErrZeroLength = errors.New("zero-length random request")
)
