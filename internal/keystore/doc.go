// Package keystore provides encrypted file-based persistence for the
// local identity.
//
// The identity is serialised as JSON and sealed into a versioned blob
// carrying a 16-byte random salt, the scrypt parameters used to stretch
// the passphrase, and a ChaCha20-Poly1305 ciphertext keyed by the
// stretched passphrase and bound to the salt. Files are written
// atomically with mode 0600 under the configured home directory.
package keystore
