package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"saltbox/internal/app"
)

var (
	home       string
	passphrase string
	wire       *app.Wire

	peerKey string
	rawKey  string
)

// Execute builds the root command tree and runs it.
func Execute() error {
	root := &cobra.Command{
		Use:   "saltbox",
		Short: "Authenticated encryption for files using NaCl box and secretbox",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".saltbox")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			w, err := app.NewWire(app.Config{Home: home})
			if err != nil {
				return err
			}
			wire = w
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.saltbox)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase to protect keys")

	root.AddCommand(initCmd(), pubkeyCmd(), fingerprintCmd(), sealCmd(), openCmd())
	return root.Execute()
}
