// Package store persists the client's session between CLI invocations.
// The session key is encrypted at rest under the user's passphrase.
package store
