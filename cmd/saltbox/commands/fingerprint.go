package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	identitysvc "saltbox/internal/identity"
)

// fingerprint [public-key]: fingerprint the local identity, or a peer key
// passed as base64.
func fingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint [public-key]",
		Short: "Print the identity fingerprint, or that of a peer public key",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				pub, err := parsePublicKey(args[0])
				if err != nil {
					return err
				}
				fmt.Printf("Fingerprint: %s\n", identitysvc.Fingerprint(pub))
				return nil
			}

			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			fp, err := wire.Identity.FingerprintIdentity(passphrase)
			if err != nil {
				return err
			}
			fmt.Printf("Fingerprint: %s\n", fp)
			return nil
		},
	}
}
