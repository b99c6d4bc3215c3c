package crypto

import "testing"

func TestWipe(t *testing.T) {
	b := []byte("secret key material")
	Wipe(b)

	for i, v := range b {
		if v != 0 {
			t.Fatalf("byte %d = %#x after Wipe, want 0", i, v)
		}
	}
}

func TestWipe_EmptyAndNil(t *testing.T) {
	// Must not panic.
	Wipe(nil)
	Wipe([]byte{})
}
