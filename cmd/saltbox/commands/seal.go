package commands

import (
	"crypto/rand"
	"fmt"

	"github.com/spf13/cobra"

	"saltbox/box"
	"saltbox/internal/memzero"
	"saltbox/secretbox"
)

// seal <in> <out>: encrypt a file and prepend the random nonce, so the
// output is nonce || ciphertext || tag and decrypts with open.
func sealCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seal <in> <out>",
		Short: "Encrypt a file for a peer or under a shared key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if (peerKey == "") == (rawKey == "") {
				return fmt.Errorf("exactly one of --peer or --key required")
			}

			plaintext, err := readInput(args[0])
			if err != nil {
				return err
			}

			nonce, err := box.GenerateNonce(rand.Reader)
			if err != nil {
				return err
			}

			var out []byte
			if rawKey != "" {
				key, err := parseSecretKey(rawKey)
				if err != nil {
					return err
				}
				defer memzero.Zero(key[:])
				out = secretbox.Seal(nonce[:], plaintext, nonce, key)
			} else {
				peer, err := parsePublicKey(peerKey)
				if err != nil {
					return err
				}
				if passphrase == "" {
					return fmt.Errorf("passphrase required (-p)")
				}
				id, err := wire.Identity.LoadIdentity(passphrase)
				if err != nil {
					return err
				}
				priv := [box.PrivateKeySize]byte(id.Private)
				defer memzero.Zero(priv[:])
				out = box.Seal(nonce[:], plaintext, nonce, (*[box.PublicKeySize]byte)(&peer), &priv)
			}

			if err := writeOutput(args[1], out); err != nil {
				return err
			}
			if args[1] != "-" {
				fmt.Printf("Sealed %d bytes to %s\n", len(plaintext), args[1])
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&peerKey, "peer", "", "recipient public key (base64)")
	cmd.Flags().StringVar(&rawKey, "key", "", "shared secret key (hex)")
	return cmd
}
