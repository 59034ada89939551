package crypto_test

import (
	"bytes"
	"errors"
	"math/big"
	"testing"

	"keywire/internal/crypto"
	"keywire/internal/domain"
)

func TestSealOpen_RoundTrip(t *testing.T) {
	key := domain.SessionKey{1, 2, 3}
	msg := []byte("over the wire")

	nonce, ct, err := crypto.Seal(key, msg)
	if err != nil {
		t.Fatalf("seal: %v", err)
	}
	got, err := crypto.Open(key, nonce, ct)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if !bytes.Equal(got, msg) {
		t.Fatalf("plaintext mismatch after round trip")
	}
}

func TestOpen_TamperFails(t *testing.T) {
	key := domain.SessionKey{9}
	nonce, ct, err := crypto.Seal(key, []byte("payload"))
	if err != nil {
		t.Fatalf("seal: %v", err)
	}
	ct[0] ^= 0xff
	if _, err := crypto.Open(key, nonce, ct); !errors.Is(err, crypto.ErrDecryptionFailed) {
		t.Fatalf("want ErrDecryptionFailed, got %v", err)
	}
}

func TestOpen_WrongKeyFails(t *testing.T) {
	nonce, ct, err := crypto.Seal(domain.SessionKey{1}, []byte("payload"))
	if err != nil {
		t.Fatalf("seal: %v", err)
	}
	if _, err := crypto.Open(domain.SessionKey{2}, nonce, ct); !errors.Is(err, crypto.ErrDecryptionFailed) {
		t.Fatalf("want ErrDecryptionFailed, got %v", err)
	}
}

func TestEncryptSecret_WrongPassphraseFails(t *testing.T) {
	salt, err := crypto.NewSalt()
	if err != nil {
		t.Fatalf("salt: %v", err)
	}
	nonce, ct, err := crypto.EncryptSecret("correct", salt, []byte("secret material"))
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	if _, err := crypto.DecryptSecret("wrong", salt, nonce, ct); !errors.Is(err, crypto.ErrDecryptionFailed) {
		t.Fatalf("want ErrDecryptionFailed, got %v", err)
	}
	got, err := crypto.DecryptSecret("correct", salt, nonce, ct)
	if err != nil {
		t.Fatalf("decrypt: %v", err)
	}
	if string(got) != "secret material" {
		t.Fatal("plaintext mismatch")
	}
}

func TestRandomInt_Bounds(t *testing.T) {
	low := big.NewInt(2)
	high := big.NewInt(9)
	for i := 0; i < 100; i++ {
		n, err := crypto.RandomInt(low, high)
		if err != nil {
			t.Fatalf("RandomInt: %v", err)
		}
		if n.Cmp(low) < 0 || n.Cmp(high) > 0 {
			t.Fatalf("value %v outside [2, 9]", n)
		}
	}
	if _, err := crypto.RandomInt(high, low); err == nil {
		t.Fatal("expected error on inverted bounds")
	}
}
