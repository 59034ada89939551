package crypto

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// RandomInt returns a uniform random integer in [low, high], inclusive,
// drawn from crypto/rand.
func RandomInt(low, high *big.Int) (*big.Int, error) {
	if low.Cmp(high) > 0 {
		return nil, fmt.Errorf("random int: low %v exceeds high %v", low, high)
	}
	// rand.Int samples [0, span); shift back up by low.
	span := new(big.Int).Sub(high, low)
	span.Add(span, big.NewInt(1))
	n, err := rand.Int(rand.Reader, span)
	if err != nil {
		return nil, err
	}
	return n.Add(n, low), nil
}
