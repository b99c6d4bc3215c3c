package vaultcore_test

import (
	"fmt"
	"log"

	vaultcore "github.com/beewallet/vaultcore-go"
)

func Example() {
	// A real application generates a fresh random salt per passphrase and
	// stores it alongside the sealed data.
	salt, err := vaultcore.NewSalt(make([]byte, vaultcore.SaltSize))
	if err != nil {
		log.Fatal(err)
	}

	key, err := vaultcore.DeriveKey([]byte("correct horse battery staple"), salt)
	if err != nil {
		log.Fatal(err)
	}
	defer key.Zero()

	sealed, err := vaultcore.Seal(key, []byte("Hello, vault!"))
	if err != nil {
		log.Fatal(err)
	}

	plaintext, err := vaultcore.Unseal(key, sealed)
	if err != nil {
		log.Fatal(err)
	}
	defer vaultcore.Wipe(plaintext)

	fmt.Println(string(plaintext))
	// Output: Hello, vault!
}
