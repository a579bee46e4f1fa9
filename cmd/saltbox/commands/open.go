package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"saltbox/box"
	"saltbox/internal/memzero"
	"saltbox/secretbox"
)

// open <in> <out>: decrypt a file written by seal.
func openCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "open <in> <out>",
		Short: "Decrypt a file from a peer or under a shared key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if (peerKey == "") == (rawKey == "") {
				return fmt.Errorf("exactly one of --peer or --key required")
			}

			blob, err := readInput(args[0])
			if err != nil {
				return err
			}
			if len(blob) < box.NonceSize+box.Overhead {
				return fmt.Errorf("%s: too short to be a sealed file", args[0])
			}
			var nonce [box.NonceSize]byte
			copy(nonce[:], blob[:box.NonceSize])
			sealed := blob[box.NonceSize:]

			var plaintext []byte
			if rawKey != "" {
				key, err := parseSecretKey(rawKey)
				if err != nil {
					return err
				}
				defer memzero.Zero(key[:])
				pt, err := secretbox.Open(nil, sealed, &nonce, key)
				if err != nil {
					return err
				}
				plaintext = pt
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
				pt, err := box.Open(nil, sealed, &nonce, (*[box.PublicKeySize]byte)(&peer), &priv)
				if err != nil {
					return err
				}
				plaintext = pt
			}

			if err := writeOutput(args[1], plaintext); err != nil {
				return err
			}
			if args[1] != "-" {
				fmt.Printf("Opened %d bytes to %s\n", len(plaintext), args[1])
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&peerKey, "peer", "", "peer public key (base64)")
	cmd.Flags().StringVar(&rawKey, "key", "", "shared secret key (hex)")
	return cmd
}
