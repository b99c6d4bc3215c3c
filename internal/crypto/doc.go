// Package crypto implements the vault core primitives: Argon2id key
// derivation, XChaCha20-Poly1305 authenticated encryption, access to the
// OS CSPRNG, and zeroization of secret-holding buffers.
//
// # Algorithm Suite
//
// The package uses the following cryptographic algorithms:
//
//   - Argon2id (RFC 9106, version 0x13): Memory-hard password hashing for
//     deriving encryption keys from passphrases. Parameters are fixed at
//     64 MiB memory, 3 iterations, 4 lanes.
//
//   - XChaCha20-Poly1305: Authenticated encryption (AEAD) with a 256-bit
//     key and a 192-bit extended nonce. The extended nonce makes random,
//     non-coordinated nonce generation collision-safe for the lifetime of
//     a key, so no counter or shared state is needed.
//
// # Critical Security Notes
//
// Decryption and tag verification are a single AEAD operation. A wrong key,
// a corrupted ciphertext, and a truncated message all fail identically with
// [ErrDecryptionFailed]; callers learn nothing about which case occurred and
// never see partial plaintext.
//
// Nonces are always drawn from the OS CSPRNG. If the entropy source fails,
// the operation fails; the package never falls back to a weaker source or a
// fixed nonce.
//
// Derived keys and intermediate secret material are wiped with [Wipe] on
// every exit path, including error returns.
package crypto
