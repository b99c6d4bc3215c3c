// Package ffi exposes the vault core as six flat operations carrying
// numeric status codes instead of Go errors, for callers in a different
// memory space, such as a host runtime reaching the core through a C shim
// or any embedder that can only move raw bytes and integers across its
// boundary.
// In-process Go callers should use the vaultcore package directly.
//
// Every operation that produces data returns a [Buffer]: a {data, length,
// status} triple. On success the caller exclusively owns the Buffer from
// the moment of return; this layer retains no alias and never touches it
// again. On failure the Buffer carries only a status code and no data.
// Callers must check [Buffer.Status] before reading [Buffer.Data], and must
// dispose of every successful Buffer with [Buffer.Release].
package ffi

import (
	"errors"

	vaultcore "github.com/beewallet/vaultcore-go"
	"github.com/beewallet/vaultcore-go/internal/crypto"
)

// Status is the result code carried across the boundary.
type Status int32

const (
	// StatusOK indicates success.
	StatusOK Status = 0
	// StatusInvalidInput indicates a malformed, absent, or wrong-sized
	// argument, or an entropy-source failure.
	StatusInvalidInput Status = -1
	// StatusDecryptFailed indicates authentication verification failure:
	// wrong key or tampered message, indistinguishably.
	StatusDecryptFailed Status = -2
	// StatusKDFFailed indicates an internal key-derivation failure.
	StatusKDFFailed Status = -3
)

// Buffer is the owned byte sequence handed across the boundary.
type Buffer struct {
	// Data is the payload. Nil whenever Status is not StatusOK.
	Data []byte
	// Status reports the outcome of the operation that produced the Buffer.
	Status Status
}

func success(data []byte) Buffer {
	return Buffer{Data: data, Status: StatusOK}
}

func failure(s Status) Buffer {
	return Buffer{Status: s}
}

// Len returns the payload length in bytes; zero for failed Buffers.
func (b *Buffer) Len() int {
	return len(b.Data)
}

// Release zeroizes the Buffer's bytes and drops the reference, after which
// the memory is reclaimable. Release is the sole sanctioned way to dispose
// of an owned Buffer. Reading Data after Release, or releasing the same
// Buffer twice, is a violation of the ownership contract: no per-buffer
// bookkeeping guards against it.
func (b *Buffer) Release() {
	crypto.Wipe(b.Data)
	b.Data = nil
}

// Scrub zeroizes a caller-owned region in place without deallocating, for
// memory whose allocation this layer does not own, such as a passphrase
// buffer the caller staged or a plaintext copied out of a Buffer.
func Scrub(b []byte) {
	crypto.Wipe(b)
}

// DeriveKey derives a 32-byte key from passphrase and a 16-byte salt.
// The returned Buffer holds the key; the caller owns it and must Release it
// after copying the key wherever it is needed.
func DeriveKey(passphrase, salt []byte) Buffer {
	s, err := vaultcore.NewSalt(salt)
	if err != nil {
		return failure(StatusInvalidInput)
	}

	key, err := vaultcore.DeriveKey(passphrase, s)
	if err != nil {
		return failure(statusOf(err))
	}

	out := make([]byte, vaultcore.KeySize)
	copy(out, key[:])
	key.Zero()
	return success(out)
}

// Seal encrypts plaintext under a 32-byte key. The returned Buffer holds
// nonce || ciphertext || tag, exactly len(plaintext) + 40 bytes.
func Seal(key, plaintext []byte) Buffer {
	k, err := vaultcore.NewKey(key)
	if err != nil {
		return failure(StatusInvalidInput)
	}
	defer k.Zero()

	sealed, err := vaultcore.Seal(k, plaintext)
	if err != nil {
		return failure(statusOf(err))
	}
	return success(sealed)
}

// Unseal authenticates and decrypts a message produced by Seal. Inputs
// shorter than the 40-byte nonce+tag overhead fail with StatusInvalidInput
// before any cryptographic work; authentication failures yield
// StatusDecryptFailed and an empty Buffer.
func Unseal(key, sealed []byte) Buffer {
	k, err := vaultcore.NewKey(key)
	if err != nil {
		return failure(StatusInvalidInput)
	}
	defer k.Zero()

	plaintext, err := vaultcore.Unseal(k, sealed)
	if err != nil {
		return failure(statusOf(err))
	}
	return success(plaintext)
}

// RandomFill fills the caller-owned region out with cryptographically
// secure random bytes. Fails with StatusInvalidInput if out is empty or the
// entropy source is unavailable.
func RandomFill(out []byte) Status {
	if err := vaultcore.RandomFill(out); err != nil {
		return StatusInvalidInput
	}
	return StatusOK
}

func statusOf(err error) Status {
	switch {
	case errors.Is(err, vaultcore.ErrDecryptFailed):
		return StatusDecryptFailed
	case errors.Is(err, vaultcore.ErrKDFFailed):
		return StatusKDFFailed
	default:
		return StatusInvalidInput
	}
}
