package crypto

import "github.com/awnumar/memguard"

// Wipe overwrites b with zero bytes. memguard routes the write through a
// memset the compiler cannot elide as a dead store, so the bytes are gone
// even if b is never read again. Wiping an empty or nil slice is a no-op.
func Wipe(b []byte) {
	if len(b) == 0 {
		return
	}
	memguard.WipeBytes(b)
}
