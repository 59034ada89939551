package interfaces

import (
	"context"

	domaintypes "keywire/internal/domain/types"
)

// SessionService establishes, uses, and tears down the client's session.
type SessionService interface {
	Establish(ctx context.Context, passphrase string) (domaintypes.SessionRecord, error)
	Send(ctx context.Context, passphrase string, plaintext []byte) error
	Current(passphrase string) (domaintypes.SessionRecord, bool, error)
	Close(ctx context.Context, passphrase string) error
}
