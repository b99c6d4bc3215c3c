package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
)

// randReader is the entropy source used for nonce generation and random
// fills. It defaults to the OS CSPRNG and can be overridden for testing.
var randReader io.Reader = rand.Reader

// ReadRandom fills b with cryptographically secure random bytes. A
// zero-length request is an error, as is any failure of the underlying
// entropy source; the function never substitutes a weaker source.
func ReadRandom(b []byte) error {
	if len(b) == 0 {
		return ErrZeroLength
	}

	if _, err := io.ReadFull(randReader, b); err != nil {
		return fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
	}

	return nil
}
