package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// handshakeCmd runs the DH exchange against the server and persists the new
// session for future messaging.
func handshakeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "handshake",
		Short: "Establish an encrypted session with the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}

			record, err := appCtx.Sessions.Establish(cmd.Context(), passphrase)
			if err != nil {
				return fmt.Errorf("establishing session: %w", err)
			}

			fmt.Printf("Session %s established. Server fingerprint %s, TTL %s\n",
				record.ID, record.ServerFingerprint,
				time.Duration(record.TTLSeconds)*time.Second)
			return nil
		},
	}
}
