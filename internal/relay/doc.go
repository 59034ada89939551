// Package relay carries the demo's client/server HTTP plumbing: the client
// side of the handshake and message exchange, and the server handlers that
// sit in front of the session key registry.
package relay
