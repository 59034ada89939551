package domain

import (
	interfaces "keywire/internal/domain/interfaces"
	types "keywire/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	SessionID         = types.SessionID
	Fingerprint       = types.Fingerprint
	SessionKey        = types.SessionKey
	KeyPair           = types.KeyPair
	HandshakeRequest  = types.HandshakeRequest
	HandshakeResponse = types.HandshakeResponse
	Envelope          = types.Envelope
	Receipt           = types.Receipt
	SessionRecord     = types.SessionRecord
)

// SessionKeyBytes mirrors types.SessionKeyBytes.
const SessionKeyBytes = types.SessionKeyBytes

// SessionKeyFromBytes mirrors types.SessionKeyFromBytes.
func SessionKeyFromBytes(b []byte) (SessionKey, error) {
	return types.SessionKeyFromBytes(b)
}

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	RelayClient    = interfaces.RelayClient
	SessionStore   = interfaces.SessionStore
	SessionService = interfaces.SessionService
)
