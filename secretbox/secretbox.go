package secretbox

import (
	"errors"
	"io"
	"unsafe"

	"golang.org/x/crypto/poly1305"
	"golang.org/x/crypto/salsa20/salsa"

	"saltbox/internal/memzero"
)

const (
	// KeySize is the size, in bytes, of a secret key.
	KeySize = 32

	// NonceSize is the size, in bytes, of a nonce.
	NonceSize = 24

	// Overhead is the number of bytes a sealed box is longer than the
	// message it carries.
	Overhead = poly1305.TagSize
)

var (
	// ErrAuthFailed is returned when the authenticator does not match
	// the ciphertext. No plaintext is released in this case.
	ErrAuthFailed = errors.New("secretbox: message authentication failed")

	// ErrTooShort is returned when a ciphertext is shorter than Overhead
	// and so cannot contain an authenticator.
	ErrTooShort = errors.New("secretbox: ciphertext too short")
)

// GenerateKey reads a new secret key from rand.
func GenerateKey(rand io.Reader) (*[KeySize]byte, error) {
	key := new([KeySize]byte)
	if _, err := io.ReadFull(rand, key[:]); err != nil {
		return nil, err
	}
	return key, nil
}

// GenerateNonce reads a new random nonce from rand.
func GenerateNonce(rand io.Reader) (*[NonceSize]byte, error) {
	nonce := new([NonceSize]byte)
	if _, err := io.ReadFull(rand, nonce[:]); err != nil {
		return nil, err
	}
	return nonce, nil
}

// setup derives the Salsa20 subkey and initial counter for a key/nonce
// pair. XSalsa20 splits the 24-byte nonce: the first 16 bytes feed
// HSalsa20 together with the key, the last 8 become the stream half of
// the counter. The block counter half starts at zero.
func setup(subKey *[KeySize]byte, counter *[16]byte, nonce *[NonceSize]byte, key *[KeySize]byte) {
	var hNonce [16]byte
	copy(hNonce[:], nonce[:16])
	salsa.HSalsa20(subKey, &hNonce, key, &salsa.Sigma)
	copy(counter[:8], nonce[16:])
}

// Seal encrypts and authenticates message using the key and nonce,
// appends the result to out and returns the updated slice. The sealed
// form is Overhead bytes longer than the message: the Poly1305
// authenticator followed by the encrypted payload.
//
// The key/nonce pair must not be reused across messages.
func Seal(out, message []byte, nonce *[NonceSize]byte, key *[KeySize]byte) []byte {
	var subKey [KeySize]byte
	var counter [16]byte
	setup(&subKey, &counter, nonce, key)
	defer memzero.Zero(subKey[:])

	// The first keystream block is reserved: its first half becomes the
	// one-time Poly1305 key and its second half encrypts the first 32
	// bytes of the message. Authenticator key bytes never double as
	// payload keystream.
	var firstBlock [64]byte
	salsa.XORKeyStream(firstBlock[:], firstBlock[:], &counter, &subKey)
	defer memzero.Zero(firstBlock[:])

	var polyKey [32]byte
	copy(polyKey[:], firstBlock[:32])
	defer memzero.Zero(polyKey[:])

	ret, ct := sliceForAppend(out, Overhead+len(message))
	if anyOverlap(ct, message) {
		panic("secretbox: invalid buffer overlap")
	}
	payload := ct[Overhead:]

	firstMessageBlock := message
	if len(firstMessageBlock) > 32 {
		firstMessageBlock = firstMessageBlock[:32]
	}
	for i, b := range firstMessageBlock {
		payload[i] = firstBlock[32+i] ^ b
	}

	rest := message[len(firstMessageBlock):]
	if len(rest) > 0 {
		// Block 1 onwards keys the remainder of the payload.
		counter[8] = 1
		salsa.XORKeyStream(payload[len(firstMessageBlock):], rest, &counter, &subKey)
	}

	var tag [Overhead]byte
	poly1305.Sum(&tag, payload, &polyKey)
	copy(ct[:Overhead], tag[:])
	return ret
}

// Open authenticates and decrypts box, appending the plaintext to out.
// It returns ErrTooShort if box cannot contain an authenticator, and
// ErrAuthFailed if the authenticator does not match the payload. No
// plaintext is released unless the whole box authenticates.
func Open(out, box []byte, nonce *[NonceSize]byte, key *[KeySize]byte) ([]byte, error) {
	if len(box) < Overhead {
		return nil, ErrTooShort
	}

	var subKey [KeySize]byte
	var counter [16]byte
	setup(&subKey, &counter, nonce, key)
	defer memzero.Zero(subKey[:])

	var firstBlock [64]byte
	salsa.XORKeyStream(firstBlock[:], firstBlock[:], &counter, &subKey)
	defer memzero.Zero(firstBlock[:])

	var polyKey [32]byte
	copy(polyKey[:], firstBlock[:32])
	defer memzero.Zero(polyKey[:])

	// Authenticate before any decryption work. Verify compares in
	// constant time.
	var tag [Overhead]byte
	copy(tag[:], box[:Overhead])
	payload := box[Overhead:]
	if !poly1305.Verify(&tag, payload, &polyKey) {
		return nil, ErrAuthFailed
	}

	ret, plaintext := sliceForAppend(out, len(payload))
	if anyOverlap(plaintext, box) {
		panic("secretbox: invalid buffer overlap")
	}

	firstPayloadBlock := payload
	if len(firstPayloadBlock) > 32 {
		firstPayloadBlock = firstPayloadBlock[:32]
	}
	for i, b := range firstPayloadBlock {
		plaintext[i] = firstBlock[32+i] ^ b
	}

	rest := payload[len(firstPayloadBlock):]
	if len(rest) > 0 {
		counter[8] = 1
		salsa.XORKeyStream(plaintext[len(firstPayloadBlock):], rest, &counter, &subKey)
	}
	return ret, nil
}

// sliceForAppend extends in by n bytes, returning both the full slice
// and the newly appended portion.
func sliceForAppend(in []byte, n int) (head, tail []byte) {
	if total := len(in) + n; cap(in) >= total {
		head = in[:total]
	} else {
		head = make([]byte, total)
		copy(head, in)
	}
	tail = head[len(in):]
	return
}

// anyOverlap reports whether x and y share memory at any index.
func anyOverlap(x, y []byte) bool {
	return len(x) > 0 && len(y) > 0 &&
		uintptr(unsafe.Pointer(&x[0])) <= uintptr(unsafe.Pointer(&y[len(y)-1])) &&
		uintptr(unsafe.Pointer(&y[0])) <= uintptr(unsafe.Pointer(&x[len(x)-1]))
}
