// Package vaultcore is the cryptographic foundation of a secrets vault:
// it turns a passphrase into a symmetric key and uses that key to seal
// (authenticate-and-encrypt) and unseal (verify-and-decrypt) arbitrary
// byte blobs.
//
// The package is an in-process library boundary. It owns no storage, no
// transport, and no policy; the surrounding application decides where
// sealed messages live and how passphrases are obtained.
//
// # Algorithm Suite
//
//   - Argon2id (version 0x13) for key derivation: 64 MiB memory,
//     3 iterations, 4 lanes, 32-byte output. The parameters are build-time
//     constants tuned to roughly 200ms per derivation on commodity
//     hardware.
//
//   - XChaCha20-Poly1305 for authenticated encryption. The 192-bit
//     extended nonce is drawn fresh from the OS CSPRNG on every Seal, which
//     is collision-safe for the lifetime of a key without any coordination
//     between callers.
//
// # Sealed Message Format
//
// A sealed message is nonce (24 bytes) || ciphertext || tag (16 bytes),
// with no version tag or length header; the total length is always the
// plaintext length plus [Overhead]. Length is carried out of band by the
// byte slice itself.
//
// # Memory Hygiene
//
// Secret material never outlives its use unscrubbed. [DeriveKey] wipes its
// intermediate buffer after copying into the returned [Key]; [Seal] and
// [Unseal] wipe their local key copies on every path, including error
// returns. Callers own the values handed back to them and are expected to
// call [Key.Zero] and [Wipe] when finished with keys and plaintexts.
//
// # Errors
//
// Every failure wraps exactly one of three sentinels: [ErrInvalidInput],
// [ErrDecryptFailed], or [ErrKDFFailed]. ErrDecryptFailed intentionally
// does not distinguish a wrong key from a tampered or truncated message.
//
// # Concurrency
//
// All operations are synchronous pure functions of their inputs plus OS
// entropy. There is no shared mutable state, so concurrent calls from
// independent goroutines need no locking.
//
// Basic usage:
//
//	raw, err := vaultcore.Random(vaultcore.SaltSize)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	salt, _ := vaultcore.NewSalt(raw)
//
//	key, err := vaultcore.DeriveKey(passphrase, salt)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer key.Zero()
//
//	sealed, err := vaultcore.Seal(key, secret)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	plaintext, err := vaultcore.Unseal(key, sealed)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer vaultcore.Wipe(plaintext)
package vaultcore
