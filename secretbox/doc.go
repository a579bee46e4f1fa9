// Package secretbox encrypts and authenticates small messages with
// XSalsa20 and Poly1305, interoperable with NaCl's crypto_secretbox.
//
// Sealing a message adds Overhead (16) bytes: a one-time Poly1305
// authenticator prepended to the encrypted payload. Opening verifies the
// authenticator before releasing any plaintext, so a forged or corrupted
// box yields an error and nothing else.
//
// The security of the construct depends on the key/nonce pair being
// unique for every message. Nonces are 24 bytes, large enough that
// generating them at random per message is safe with a strong entropy
// source; a counter kept by the application works as well.
//
// The length of a message is not hidden. Callers who need to conceal it
// must pad before sealing.
package secretbox
