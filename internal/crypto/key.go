package crypto

import (
	"crypto/rand"
	"errors"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"

	"keywire/internal/util/memzero"
)

// SaltBytes is the KEK salt width.
const SaltBytes = 16

// DeriveKEK stretches a passphrase into a key-encryption key with Argon2id.
func DeriveKEK(passphrase string, salt []byte) []byte {
	return argon2.IDKey([]byte(passphrase), salt, 1, 1<<16, 4, chacha20poly1305.KeySize)
}

// NewSalt returns a fresh random KEK salt.
func NewSalt() ([]byte, error) {
	salt := make([]byte, SaltBytes)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// EncryptSecret seals plaintext under a passphrase-derived KEK.
func EncryptSecret(passphrase string, salt, plaintext []byte) (nonce, ciphertext []byte, err error) {
	if len(salt) != SaltBytes {
		return nil, nil, errors.New("bad salt size")
	}
	kek := DeriveKEK(passphrase, salt)
	defer memzero.Zero(kek)

	aead, err := chacha20poly1305.New(kek)
	if err != nil {
		return nil, nil, err
	}
	nonce = make([]byte, NonceBytes)
	if _, err := rand.Read(nonce); err != nil {
		return nil, nil, err
	}
	return nonce, aead.Seal(nil, nonce, plaintext, nil), nil
}

// DecryptSecret reverses EncryptSecret. A wrong passphrase surfaces as
// ErrDecryptionFailed.
func DecryptSecret(passphrase string, salt, nonce, ciphertext []byte) ([]byte, error) {
	if len(salt) != SaltBytes || len(nonce) != NonceBytes {
		return nil, ErrDecryptionFailed
	}
	kek := DeriveKEK(passphrase, salt)
	defer memzero.Zero(kek)

	aead, err := chacha20poly1305.New(kek)
	if err != nil {
		return nil, err
	}
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return plaintext, nil
}
