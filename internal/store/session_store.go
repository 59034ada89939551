package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"keywire/internal/crypto"
	"keywire/internal/domain"
	"keywire/internal/util/memzero"
)

const (
	recordFile = "session.json"
	keyFile    = "session_key.json" // keyBlob: salt + nonce + ciphertext
)

// keyBlob is the at-rest form of the session key: sealed under a
// passphrase-derived KEK.
type keyBlob struct {
	Salt   []byte `json:"salt"`
	Nonce  []byte `json:"nonce"`
	Cipher []byte `json:"cipher"`
}

// SessionFileStore persists the client's current session under its home
// directory. The record is plain JSON; the key never touches disk
// unencrypted.
type SessionFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewSessionFileStore returns a SessionFileStore rooted at dir.
func NewSessionFileStore(dir string) *SessionFileStore {
	return &SessionFileStore{dir: dir}
}

// SaveSession writes the record and the passphrase-sealed key.
func (s *SessionFileStore) SaveSession(passphrase string, record domain.SessionRecord, key domain.SessionKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	salt, err := crypto.NewSalt()
	if err != nil {
		return err
	}
	nonce, cipher, err := crypto.EncryptSecret(passphrase, salt, key.Slice())
	if err != nil {
		return fmt.Errorf("sealing session key: %w", err)
	}
	blob := keyBlob{Salt: salt, Nonce: nonce, Cipher: cipher}

	if err := writeJSON(filepath.Join(s.dir, keyFile), blob, 0o600); err != nil {
		return err
	}
	return writeJSON(filepath.Join(s.dir, recordFile), record, 0o600)
}

// LoadSession reads the record and unseals the key. The third return is
// false when no session has been established.
func (s *SessionFileStore) LoadSession(passphrase string) (domain.SessionRecord, domain.SessionKey, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var record domain.SessionRecord
	err := readJSON(filepath.Join(s.dir, recordFile), &record)
	if errors.Is(err, os.ErrNotExist) {
		return domain.SessionRecord{}, domain.SessionKey{}, false, nil
	}
	if err != nil {
		return domain.SessionRecord{}, domain.SessionKey{}, false, err
	}

	var blob keyBlob
	if err := readJSON(filepath.Join(s.dir, keyFile), &blob); err != nil {
		return domain.SessionRecord{}, domain.SessionKey{}, false, err
	}
	raw, err := crypto.DecryptSecret(passphrase, blob.Salt, blob.Nonce, blob.Cipher)
	if err != nil {
		return domain.SessionRecord{}, domain.SessionKey{}, false, fmt.Errorf("unsealing session key: %w", err)
	}
	key, err := domain.SessionKeyFromBytes(raw)
	memzero.Zero(raw)
	if err != nil {
		return domain.SessionRecord{}, domain.SessionKey{}, false, err
	}
	return record, key, true, nil
}

// DeleteSession removes both files; absent files are not an error.
func (s *SessionFileStore) DeleteSession() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := removeIfExists(filepath.Join(s.dir, keyFile)); err != nil {
		return err
	}
	return removeIfExists(filepath.Join(s.dir, recordFile))
}

// Compile-time assertion that SessionFileStore implements domain.SessionStore.
var _ domain.SessionStore = (*SessionFileStore)(nil)
