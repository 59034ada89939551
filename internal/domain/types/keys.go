package types

import (
	"fmt"
	"math/big"
)

// SessionKeyBytes is the width of every session key: the SHA-256 output size.
const SessionKeyBytes = 32

// SessionKey is the 256-bit symmetric key both peers derive from the
// Diffie-Hellman exchange.
type SessionKey [SessionKeyBytes]byte

// Slice returns the key as a []byte.
func (k SessionKey) Slice() []byte { return k[:] }

// SessionKeyFromBytes copies b into a SessionKey. It rejects any length
// other than exactly SessionKeyBytes.
func SessionKeyFromBytes(b []byte) (SessionKey, error) {
	var k SessionKey
	if len(b) != SessionKeyBytes {
		return k, fmt.Errorf("session key must be %d bytes, got %d", SessionKeyBytes, len(b))
	}
	copy(k[:], b)
	return k, nil
}

// KeyPair is an ephemeral Diffie-Hellman key pair. Secret never leaves the
// process that generated it.
type KeyPair struct {
	Secret *big.Int
	Public *big.Int
}
