package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"keywire/internal/app"
)

var (
	home       string
	passphrase string
	relayURL   string

	appCtx *app.App
)

func Execute() error {
	root := &cobra.Command{
		Use:   "keywire",
		Short: "Diffie-Hellman session demo client",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".keywire")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}
			appCtx = app.New(app.Config{Home: home, RelayURL: relayURL})
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.keywire)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase to protect the session key")
	root.PersistentFlags().StringVar(&relayURL, "relay", "http://127.0.0.1:8080", "server base URL")

	root.AddCommand(handshakeCmd(), sendCmd(), fingerprintCmd(), closeCmd())
	return root.Execute()
}
