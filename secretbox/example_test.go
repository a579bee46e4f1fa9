package secretbox_test

import (
	"crypto/rand"
	"fmt"

	"saltbox/secretbox"
)

func Example() {
	key, err := secretbox.GenerateKey(rand.Reader)
	if err != nil {
		panic(err)
	}

	// A key/nonce pair must never be reused. Generating the nonce at
	// random per message and prepending it to the sealed box is a common
	// arrangement.
	nonce, err := secretbox.GenerateNonce(rand.Reader)
	if err != nil {
		panic(err)
	}
	sealed := secretbox.Seal(nonce[:], []byte("Example plaintext data."), nonce, key)

	// The receiver splits the nonce back off before opening.
	var recvNonce [secretbox.NonceSize]byte
	copy(recvNonce[:], sealed[:secretbox.NonceSize])
	opened, err := secretbox.Open(nil, sealed[secretbox.NonceSize:], &recvNonce, key)
	if err != nil {
		panic(err)
	}

	fmt.Println(string(opened))
	// Output: Example plaintext data.
}
