package vaultcore

import "errors"

// Sentinel errors for errors.Is() checks. Every error returned by this
// package wraps exactly one of these three.
var (
	// ErrInvalidInput is returned for malformed, absent, or wrong-sized
	// arguments, and for entropy-source unavailability.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDecryptFailed is returned when authentication verification fails
	// during Unseal. It covers both a wrong key and a tampered or corrupted
	// message, intentionally without distinguishing between them.
	ErrDecryptFailed = errors.New("decryption failed")

	// ErrKDFFailed is returned when key derivation fails internally.
	ErrKDFFailed = errors.New("key derivation failed")
)
