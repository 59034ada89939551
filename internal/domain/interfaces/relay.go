package interfaces

import (
	"context"

	domaintypes "keywire/internal/domain/types"
)

// RelayClient is how the client talks to the demo server, all with context.
type RelayClient interface {
	Handshake(
		ctx context.Context,
		req domaintypes.HandshakeRequest,
	) (domaintypes.HandshakeResponse, error)

	SendEnvelope(
		ctx context.Context,
		env domaintypes.Envelope,
	) (domaintypes.Receipt, error)

	CloseSession(ctx context.Context, id domaintypes.SessionID) error
}
