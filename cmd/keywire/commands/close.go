package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// closeCmd forgets the session on the server and removes the local record.
func closeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "close",
		Short: "Tear down the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}

			if err := appCtx.Sessions.Close(cmd.Context(), passphrase); err != nil {
				return err
			}
			fmt.Println("session closed")
			return nil
		},
	}
}
