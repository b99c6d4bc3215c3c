package crypto

import (
	"bytes"
	"errors"
	"testing"
)

func TestDeriveKey_Deterministic(t *testing.T) {
	passphrase := []byte("test passphrase")
	salt := make([]byte, SaltSize)

	key1, err := DeriveKey(passphrase, salt)
	if err != nil {
		t.Fatalf("DeriveKey() error = %v", err)
	}
	key2, err := DeriveKey(passphrase, salt)
	if err != nil {
		t.Fatalf("DeriveKey() error = %v", err)
	}

	if len(key1) != KeySize {
		t.Errorf("key length = %d, want %d", len(key1), KeySize)
	}
	if !bytes.Equal(key1, key2) {
		t.Error("same passphrase and salt produced different keys")
	}
}

func TestDeriveKey_DistinctInputsDistinctKeys(t *testing.T) {
	salt := make([]byte, SaltSize)
	otherSalt := make([]byte, SaltSize)
	otherSalt[0] = 1

	base, err := DeriveKey([]byte("test passphrase"), salt)
	if err != nil {
		t.Fatalf("DeriveKey() error = %v", err)
	}

	otherPass, err := DeriveKey([]byte("test passphrase!"), salt)
	if err != nil {
		t.Fatalf("DeriveKey() error = %v", err)
	}
	if bytes.Equal(base, otherPass) {
		t.Error("different passphrases produced the same key")
	}

	salted, err := DeriveKey([]byte("test passphrase"), otherSalt)
	if err != nil {
		t.Fatalf("DeriveKey() error = %v", err)
	}
	if bytes.Equal(base, salted) {
		t.Error("different salts produced the same key")
	}
}

func TestDeriveKey_InvalidInput(t *testing.T) {
	tests := []struct {
		name       string
		passphrase []byte
		salt       []byte
		wantErr    error
	}{
		{"empty passphrase", []byte{}, make([]byte, SaltSize), ErrEmptyPassphrase},
		{"nil passphrase", nil, make([]byte, SaltSize), ErrEmptyPassphrase},
		{"nil salt", []byte("pass"), nil, ErrInvalidSaltSize},
		{"short salt", []byte("pass"), make([]byte, SaltSize-1), ErrInvalidSaltSize},
		{"long salt", []byte("pass"), make([]byte, SaltSize+1), ErrInvalidSaltSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := DeriveKey(tt.passphrase, tt.salt)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("DeriveKey() error = %v, want %v", err, tt.wantErr)
			}
			if key != nil {
				t.Error("DeriveKey() returned a key alongside an error")
			}
		})
	}
}
