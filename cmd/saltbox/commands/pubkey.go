package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func pubkeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pubkey",
		Short: "Print your public key for sharing with peers",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			id, err := wire.Identity.LoadIdentity(passphrase)
			if err != nil {
				return err
			}
			fmt.Println(encodeKey(id.Public))
			return nil
		},
	}
}
