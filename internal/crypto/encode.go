package crypto

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"math/big"

	"keywire/internal/domain"
)

// B64 returns standard base64 encoding without newlines.
func B64(b []byte) string { return base64.StdEncoding.EncodeToString(b) }

// Fingerprint returns a short fingerprint of a public value for display.
// Secrets are never fingerprinted or logged.
func Fingerprint(pub *big.Int) domain.Fingerprint {
	sum := sha256.Sum256(pub.Bytes())
	return domain.Fingerprint(hex.EncodeToString(sum[:10]))
}
