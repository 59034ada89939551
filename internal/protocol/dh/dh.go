package dh

import (
	"crypto/sha256"
	"fmt"
	"math/big"

	"keywire/internal/crypto"
	"keywire/internal/domain"
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// GenerateSecret returns a secret exponent uniform in [2, P-2].
func GenerateSecret() (*big.Int, error) {
	high := new(big.Int).Sub(P, two) // P-2
	secret, err := crypto.RandomInt(two, high)
	if err != nil {
		return nil, fmt.Errorf("generating DH secret: %w", err)
	}
	return secret, nil
}

// DerivePublic computes G^secret mod P.
func DerivePublic(secret *big.Int) *big.Int {
	return ModExp(G, secret, P)
}

// GenerateKeyPair returns a fresh ephemeral key pair.
func GenerateKeyPair() (domain.KeyPair, error) {
	secret, err := GenerateSecret()
	if err != nil {
		return domain.KeyPair{}, err
	}
	return domain.KeyPair{Secret: secret, Public: DerivePublic(secret)}, nil
}

// DeriveSharedSecret computes the 256-bit session key from the peer's public
// value and our secret: SHA-256 over the raw DH result, left-padded with zero
// bytes to at least domain.SessionKeyBytes. The padding keeps both peers
// hashing the same representation when the raw result has leading zero bytes
// and would otherwise encode shorter.
func DeriveSharedSecret(otherPublic, mySecret *big.Int) (domain.SessionKey, error) {
	raw := ModExp(otherPublic, mySecret, P)
	sum := sha256.Sum256(leftPad(raw.Bytes(), domain.SessionKeyBytes))
	return domain.SessionKey(sum), nil
}

// ModExp computes base^exp mod mod by right-to-left square-and-multiply.
// All inputs are arbitrary precision. A nil argument, a zero modulus, or a
// negative exponent is a programming error and panics.
func ModExp(base, exp, mod *big.Int) *big.Int {
	if base == nil || exp == nil || mod == nil {
		panic("dh: ModExp nil argument")
	}
	if mod.Sign() == 0 {
		panic("dh: ModExp zero modulus")
	}
	if exp.Sign() < 0 {
		panic("dh: ModExp negative exponent")
	}

	result := new(big.Int).Set(one)
	b := new(big.Int).Mod(base, mod)
	e := new(big.Int).Set(exp)

	for e.Sign() > 0 {
		if e.Bit(0) == 1 {
			result.Mul(result, b)
			result.Mod(result, mod)
		}
		b.Mul(b, b)
		b.Mod(b, mod)
		e.Rsh(e, 1)
	}
	return result
}

// leftPad prepends zero bytes until b is at least width bytes long.
func leftPad(b []byte, width int) []byte {
	if len(b) >= width {
		return b
	}
	out := make([]byte, width)
	copy(out[width-len(b):], b)
	return out
}
