package types

// SessionID identifies one established session on the server.
type SessionID string

// String returns the string form of the session identifier.
func (id SessionID) String() string { return string(id) }

// Fingerprint is a short identifier for public values presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }
