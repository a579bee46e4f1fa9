package box_test

import (
	"crypto/rand"
	"fmt"

	"saltbox/box"
)

func Example() {
	// Both sides are shown for the example; real applications only run
	// one of them. The public keys must be exchanged beforehand over a
	// channel the parties trust.
	alicePub, alicePriv, err := box.GenerateKey(rand.Reader)
	if err != nil {
		panic(err)
	}
	bobPub, bobPriv, err := box.GenerateKey(rand.Reader)
	if err != nil {
		panic(err)
	}

	// Alice seals for Bob. The nonce does not need to be secret, only
	// unique per message, so it travels in the clear ahead of the box.
	nonce, err := box.GenerateNonce(rand.Reader)
	if err != nil {
		panic(err)
	}
	sealed := box.Seal(nonce[:], []byte("Example plaintext data."), nonce, bobPub, alicePriv)

	// Bob splits the nonce back off and opens with Alice's public key.
	var recvNonce [box.NonceSize]byte
	copy(recvNonce[:], sealed[:box.NonceSize])
	opened, err := box.Open(nil, sealed[box.NonceSize:], &recvNonce, alicePub, bobPriv)
	if err != nil {
		panic(err)
	}

	fmt.Println(string(opened))
	// Output: Example plaintext data.
}

func ExamplePrecompute() {
	alicePub, alicePriv, err := box.GenerateKey(rand.Reader)
	if err != nil {
		panic(err)
	}
	bobPub, bobPriv, err := box.GenerateKey(rand.Reader)
	if err != nil {
		panic(err)
	}

	// A stream of messages is expected, so each side derives the shared
	// key once up front. Both derivations produce the same key.
	var aliceShared, bobShared [box.SharedKeySize]byte
	box.Precompute(&aliceShared, bobPub, alicePriv)
	box.Precompute(&bobShared, alicePub, bobPriv)

	nonce, err := box.GenerateNonce(rand.Reader)
	if err != nil {
		panic(err)
	}
	sealed := box.SealAfterPrecomputation(nonce[:], []byte("hello again"), nonce, &aliceShared)

	var recvNonce [box.NonceSize]byte
	copy(recvNonce[:], sealed[:box.NonceSize])
	opened, err := box.OpenAfterPrecomputation(nil, sealed[box.NonceSize:], &recvNonce, &bobShared)
	if err != nil {
		panic(err)
	}

	fmt.Println(string(opened))
	// Output: hello again
}
