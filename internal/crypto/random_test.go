package crypto

import (
	"bytes"
	"errors"
	"testing"
)

func TestReadRandom_FillsBuffer(t *testing.T) {
	a := make([]byte, 32)
	b := make([]byte, 32)

	if err := ReadRandom(a); err != nil {
		t.Fatalf("ReadRandom() error = %v", err)
	}
	if err := ReadRandom(b); err != nil {
		t.Fatalf("ReadRandom() error = %v", err)
	}

	// Two successive 32-byte draws colliding means the source is broken.
	if bytes.Equal(a, b) {
		t.Error("two successive random draws returned identical bytes")
	}
}

func TestReadRandom_ZeroLength(t *testing.T) {
	if err := ReadRandom(nil); !errors.Is(err, ErrZeroLength) {
		t.Errorf("ReadRandom(nil) error = %v, want ErrZeroLength", err)
	}
	if err := ReadRandom([]byte{}); !errors.Is(err, ErrZeroLength) {
		t.Errorf("ReadRandom(empty) error = %v, want ErrZeroLength", err)
	}
}

func TestReadRandom_SourceFailure(t *testing.T) {
	restore := SetRandReaderForTesting(failingReader{})
	defer restore()

	if err := ReadRandom(make([]byte, 16)); !errors.Is(err, ErrEntropyUnavailable) {
		t.Errorf("ReadRandom() error = %v, want ErrEntropyUnavailable", err)
	}
}
