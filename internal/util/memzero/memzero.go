// Package memzero provides best-effort wiping of secret material.
package memzero

import (
	"crypto/subtle"
	"math/big"
)

// Zero overwrites b with zeros in a constant-time friendly way.
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	zero := make([]byte, len(b))
	subtle.ConstantTimeCopy(1, b, zero)
}

// ZeroBig clears n in place, wiping its backing words before resetting the
// value. Used for ephemeral DH secrets once the shared key is derived.
func ZeroBig(n *big.Int) {
	if n == nil {
		return
	}
	words := n.Bits()
	for i := range words {
		words[i] = 0
	}
	n.SetInt64(0)
}
