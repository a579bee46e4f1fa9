// Package box seals messages between two parties with public-key
// authenticated encryption, interoperable with NaCl's crypto_box.
//
// A box is sealed with the sender's private key and the receiver's
// public key, and opened with the counterpart pair. Both sides derive
// the same symmetric key from a Curve25519 exchange followed by
// HSalsa20; the message itself is then protected exactly as in package
// secretbox, XSalsa20 encryption with a prepended one-time Poly1305
// authenticator.
//
// Opening proves the box was sealed by one of the two key pairs, not
// which one. Applications that need third-party-verifiable sender
// authentication need signatures instead.
//
// When many messages flow between the same two keys, Precompute with
// SealAfterPrecomputation and OpenAfterPrecomputation pays for the curve
// arithmetic once. The results are byte-identical to Seal and Open; NaCl
// names the split crypto_box_beforenm and crypto_box_afternm.
package box
