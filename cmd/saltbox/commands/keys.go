package commands

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"saltbox/box"
	"saltbox/internal/domain"
	"saltbox/secretbox"
)

// encodeKey returns the standard base64 encoding of a public key.
func encodeKey(pub domain.X25519Public) string {
	return base64.StdEncoding.EncodeToString(pub.Slice())
}

// parsePublicKey decodes a base64 X25519 public key.
func parsePublicKey(s string) (domain.X25519Public, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return domain.X25519Public{}, fmt.Errorf("decoding public key: %w", err)
	}
	if len(raw) != box.PublicKeySize {
		return domain.X25519Public{}, fmt.Errorf(
			"public key must be %d bytes, got %d", box.PublicKeySize, len(raw))
	}
	var pub domain.X25519Public
	copy(pub[:], raw)
	return pub, nil
}

// parseSecretKey decodes a hex symmetric key.
func parseSecretKey(s string) (*[secretbox.KeySize]byte, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decoding key: %w", err)
	}
	if len(raw) != secretbox.KeySize {
		return nil, fmt.Errorf("key must be %d bytes, got %d", secretbox.KeySize, len(raw))
	}
	key := new([secretbox.KeySize]byte)
	copy(key[:], raw)
	return key, nil
}
