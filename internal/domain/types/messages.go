package types

// HandshakeRequest carries the client's public value to the server.
// The value is the minimal big-endian encoding of the public integer.
type HandshakeRequest struct {
	ClientPublic []byte `json:"client_public"`
}

// HandshakeResponse is the server's half of the exchange plus the session
// the server registered for the derived key.
type HandshakeResponse struct {
	SessionID    SessionID `json:"session_id"`
	ServerPublic []byte    `json:"server_public"`
	TTLSeconds   int64     `json:"ttl_seconds"`
}

// Envelope is the wire-format message posted to the server under an
// established session.
type Envelope struct {
	SessionID SessionID `json:"session_id"`
	Nonce     []byte    `json:"nonce"`
	Cipher    []byte    `json:"cipher"`
}

// Receipt is the server's encrypted acknowledgement of an Envelope. Its
// plaintext is the SHA-256 digest of the message the server decrypted, so
// the client can confirm both sides hold the same key.
type Receipt struct {
	Nonce  []byte `json:"nonce"`
	Cipher []byte `json:"cipher"`
}
