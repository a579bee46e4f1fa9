// Package identity manages creation, encryption and loading of the local identity.
//
// It enforces passphrase policy, generates the X25519 key pair, and persists
// it via the domain.IdentityStore.
package identity
