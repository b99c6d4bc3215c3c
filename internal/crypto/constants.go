package crypto

const (
	// KeySize is the size of an XChaCha20-Poly1305 key in bytes.
	KeySize = 32
	// SaltSize is the size of an Argon2id salt in bytes.
	SaltSize = 16
	// NonceSize is the size of an XChaCha20-Poly1305 extended nonce in bytes.
	NonceSize = 24
	// TagSize is the size of a Poly1305 authentication tag in bytes.
	TagSize = 16

	// Overhead is the fixed size Seal adds to a plaintext: the prepended
	// nonce plus the appended authentication tag. It is also the minimum
	// valid length of a sealed message.
	Overhead = NonceSize + TagSize
)

// Argon2id cost parameters. Fixed at build time, not caller-configurable;
// tuned so one derivation takes roughly 200ms on commodity hardware.
const (
	argon2Memory  = 64 * 1024 // KiB
	argon2Time    = 3
	argon2Threads = 4
)
