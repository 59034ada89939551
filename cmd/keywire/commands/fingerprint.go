package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// fingerprintCmd shows the stored session and the server's key fingerprint.
func fingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint",
		Short: "Show the current session and server fingerprint",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}

			record, ok, err := appCtx.Sessions.Current(passphrase)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("no session. run handshake first")
			}

			fmt.Printf("Session:            %s\n", record.ID)
			fmt.Printf("Server fingerprint: %s\n", record.ServerFingerprint)
			fmt.Printf("Established:        %s\n", time.Unix(record.CreatedUTC, 0).UTC().Format(time.RFC3339))
			return nil
		},
	}
}
