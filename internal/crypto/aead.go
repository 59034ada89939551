package crypto

import (
	"crypto/rand"
	"errors"

	"golang.org/x/crypto/chacha20poly1305"

	"keywire/internal/domain"
)

// NonceBytes is the AEAD nonce width on the wire.
const NonceBytes = chacha20poly1305.NonceSize

// ErrDecryptionFailed is returned when a ciphertext was tampered with or
// sealed under a different key.
var ErrDecryptionFailed = errors.New("decryption failed")

// Seal encrypts plaintext under the session key with a fresh random nonce.
func Seal(key domain.SessionKey, plaintext []byte) (nonce, ciphertext []byte, err error) {
	aead, err := chacha20poly1305.New(key.Slice())
	if err != nil {
		return nil, nil, err
	}
	nonce = make([]byte, NonceBytes)
	if _, err := rand.Read(nonce); err != nil {
		return nil, nil, err
	}
	return nonce, aead.Seal(nil, nonce, plaintext, nil), nil
}

// Open decrypts a ciphertext produced by Seal. Authentication failure is
// reported as ErrDecryptionFailed; the caller decides whether to retry.
func Open(key domain.SessionKey, nonce, ciphertext []byte) ([]byte, error) {
	if len(nonce) != NonceBytes {
		return nil, ErrDecryptionFailed
	}
	aead, err := chacha20poly1305.New(key.Slice())
	if err != nil {
		return nil, err
	}
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return plaintext, nil
}
