// Package commands defines the saltbox CLI and wires dependencies for subcommands.
//
// Commands
//
//   - init           Create the local identity
//   - pubkey         Print your public key for sharing
//   - fingerprint    Print the identity fingerprint, or that of a peer key
//   - seal           Encrypt a file for a peer or under a shared key
//   - open           Decrypt a file from a peer or under a shared key
//
// seal and open take input and output paths, with "-" standing for
// standard input or output. Sealed files carry the 24-byte nonce ahead
// of the box itself.
//
// # Implementation
//
// The root command resolves the home directory and builds a dependency
// graph (keystore, identity service) before any subcommand runs, so
// handlers can use a shared app context.
package commands
