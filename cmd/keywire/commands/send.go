package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// send <message>: encrypt and send a message under the established session.
func sendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "send <message>",
		Short: "Encrypt and send a message to the server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}

			if err := appCtx.Sessions.Send(cmd.Context(), passphrase, []byte(args[0])); err != nil {
				return err
			}
			fmt.Println("sent, receipt verified")
			return nil
		},
	}
}
