package domain

// X25519Public is a Curve25519 public key.
type X25519Public [32]byte

func (p X25519Public) Slice() []byte { return p[:] }

// X25519Private is a Curve25519 private key.
type X25519Private [32]byte

func (k X25519Private) Slice() []byte { return k[:] }

// Fingerprint is a short hex digest identifying a public key.
type Fingerprint string

// Identity holds the long-term box key pair stored locally.
type Identity struct {
	Public  X25519Public
	Private X25519Private
}
