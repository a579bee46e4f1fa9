package box

import (
	"crypto/sha512"
	"io"

	"golang.org/x/crypto/curve25519"
	"golang.org/x/crypto/salsa20/salsa"

	"saltbox/internal/memzero"
	"saltbox/secretbox"
)

const (
	// PublicKeySize is the size, in bytes, of a public key.
	PublicKeySize = 32

	// PrivateKeySize is the size, in bytes, of a private key.
	PrivateKeySize = 32

	// SharedKeySize is the size, in bytes, of a key produced by Precompute.
	SharedKeySize = 32

	// NonceSize is the size, in bytes, of a nonce.
	NonceSize = secretbox.NonceSize

	// Overhead is the number of bytes a sealed box is longer than the
	// message it carries.
	Overhead = secretbox.Overhead
)

// Errors returned by Open and OpenAfterPrecomputation.
var (
	ErrAuthFailed = secretbox.ErrAuthFailed
	ErrTooShort   = secretbox.ErrTooShort
)

// GenerateKey reads seed material from rand and returns a new key pair.
//
// The 32 seed bytes pass through SHA-512/256 before becoming the private
// key, so structure in the random source does not surface directly as
// the scalar. The scalar is stored unclamped; clamping happens inside
// each multiplication.
func GenerateKey(rand io.Reader) (publicKey *[PublicKeySize]byte, privateKey *[PrivateKeySize]byte, err error) {
	var seed [32]byte
	if _, err = io.ReadFull(rand, seed[:]); err != nil {
		return nil, nil, err
	}
	defer memzero.Zero(seed[:])

	privateKey = new([PrivateKeySize]byte)
	sum := sha512.Sum512_256(seed[:])
	copy(privateKey[:], sum[:])
	memzero.Zero(sum[:])

	publicKey = new([PublicKeySize]byte)
	curve25519.ScalarBaseMult(publicKey, privateKey)
	return publicKey, privateKey, nil
}

// GenerateNonce reads a new random nonce from rand.
func GenerateNonce(rand io.Reader) (*[NonceSize]byte, error) {
	nonce := new([NonceSize]byte)
	if _, err := io.ReadFull(rand, nonce[:]); err != nil {
		return nil, err
	}
	return nonce, nil
}

// Precompute derives into sharedKey the symmetric key Seal and Open use
// for this key pair, so a sequence of exchanges with one peer pays for
// the scalar multiplication once.
func Precompute(sharedKey *[SharedKeySize]byte, peersPublicKey *[PublicKeySize]byte, privateKey *[PrivateKeySize]byte) {
	// curve25519.ScalarMult rather than X25519: a low-order peer point
	// must map to the all-zero shared secret and carry on through
	// HSalsa20, not fail.
	curve25519.ScalarMult(sharedKey, privateKey, peersPublicKey)
	var zeros [16]byte
	salsa.HSalsa20(sharedKey, &zeros, sharedKey, &salsa.Sigma)
}

// Seal encrypts and authenticates message for the peer, appends the
// result to out and returns the updated slice. The nonce must be unique
// for each message exchanged between these two keys.
func Seal(out, message []byte, nonce *[NonceSize]byte, peersPublicKey *[PublicKeySize]byte, privateKey *[PrivateKeySize]byte) []byte {
	var sharedKey [SharedKeySize]byte
	Precompute(&sharedKey, peersPublicKey, privateKey)
	defer memzero.Zero(sharedKey[:])
	return secretbox.Seal(out, message, nonce, &sharedKey)
}

// Open authenticates and decrypts a box from the peer, appending the
// plaintext to out. It returns ErrTooShort if the box cannot contain an
// authenticator, and ErrAuthFailed if it was not sealed between these
// two keys or has been modified.
func Open(out, box []byte, nonce *[NonceSize]byte, peersPublicKey *[PublicKeySize]byte, privateKey *[PrivateKeySize]byte) ([]byte, error) {
	var sharedKey [SharedKeySize]byte
	Precompute(&sharedKey, peersPublicKey, privateKey)
	defer memzero.Zero(sharedKey[:])
	return secretbox.Open(out, box, nonce, &sharedKey)
}

// SealAfterPrecomputation behaves like Seal with a key already derived
// by Precompute.
func SealAfterPrecomputation(out, message []byte, nonce *[NonceSize]byte, sharedKey *[SharedKeySize]byte) []byte {
	return secretbox.Seal(out, message, nonce, sharedKey)
}

// OpenAfterPrecomputation behaves like Open with a key already derived
// by Precompute.
func OpenAfterPrecomputation(out, box []byte, nonce *[NonceSize]byte, sharedKey *[SharedKeySize]byte) ([]byte, error) {
	return secretbox.Open(out, box, nonce, sharedKey)
}
