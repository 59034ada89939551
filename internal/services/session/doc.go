// Package session establishes and uses the client's encrypted session.
//
// It runs the Diffie-Hellman handshake against the server, persists the
// derived key, and wraps message exchange under that key.
package session
