package types

// SessionRecord is the client-side view of an established session. The
// session key itself is persisted separately, encrypted under the user's
// passphrase; the record holds only public metadata.
type SessionRecord struct {
	ID                SessionID   `json:"id"`
	RelayURL          string      `json:"relay_url"`
	ServerPublic      []byte      `json:"server_public"`
	ServerFingerprint Fingerprint `json:"server_fingerprint"`
	TTLSeconds        int64       `json:"ttl_seconds"`
	CreatedUTC        int64       `json:"created_utc"`
}
