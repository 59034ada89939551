package session

import (
	"bytes"
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"math/big"
	"time"

	"keywire/internal/crypto"
	"keywire/internal/domain"
	"keywire/internal/protocol/dh"
	"keywire/internal/util/memzero"
)

// ErrNoSession is returned when an operation needs an established session
// and none exists locally.
var ErrNoSession = errors.New("no established session")

// Service runs the client's side of the exchange and persists the result.
//
// Establishing a session means:
//   - Generating an ephemeral DH key pair.
//   - Posting our public value to the server and receiving its public value
//     plus the session id the server registered.
//   - Deriving the shared 256-bit key locally (both sides now agree).
//   - Persisting the session record and the key, sealed under the
//     passphrase, for later send/close invocations.
type Service struct {
	store    domain.SessionStore
	relay    domain.RelayClient
	relayURL string
}

// New constructs a session Service.
func New(store domain.SessionStore, relay domain.RelayClient, relayURL string) *Service {
	return &Service{store: store, relay: relay, relayURL: relayURL}
}

// Establish performs the handshake and stores the resulting session.
func (s *Service) Establish(ctx context.Context, passphrase string) (domain.SessionRecord, error) {
	pair, err := dh.GenerateKeyPair()
	if err != nil {
		return domain.SessionRecord{}, err
	}

	resp, err := s.relay.Handshake(ctx, domain.HandshakeRequest{
		ClientPublic: pair.Public.Bytes(),
	})
	if err != nil {
		return domain.SessionRecord{}, fmt.Errorf("handshake: %w", err)
	}
	serverPub := new(big.Int).SetBytes(resp.ServerPublic)
	if serverPub.Sign() <= 0 {
		return domain.SessionRecord{}, errors.New("handshake: empty server public value")
	}

	key, err := dh.DeriveSharedSecret(serverPub, pair.Secret)
	memzero.ZeroBig(pair.Secret)
	if err != nil {
		return domain.SessionRecord{}, err
	}

	record := domain.SessionRecord{
		ID:                resp.SessionID,
		RelayURL:          s.relayURL,
		ServerPublic:      resp.ServerPublic,
		ServerFingerprint: crypto.Fingerprint(serverPub),
		TTLSeconds:        resp.TTLSeconds,
		CreatedUTC:        time.Now().Unix(),
	}
	if err := s.store.SaveSession(passphrase, record, key); err != nil {
		return domain.SessionRecord{}, fmt.Errorf("persisting session: %w", err)
	}
	return record, nil
}

// Send encrypts plaintext under the session key, posts it, and checks the
// server's receipt: its plaintext must be the SHA-256 digest of what we sent.
func (s *Service) Send(ctx context.Context, passphrase string, plaintext []byte) error {
	record, key, ok, err := s.store.LoadSession(passphrase)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNoSession
	}

	nonce, cipher, err := crypto.Seal(key, plaintext)
	if err != nil {
		return err
	}
	receipt, err := s.relay.SendEnvelope(ctx, domain.Envelope{
		SessionID: record.ID,
		Nonce:     nonce,
		Cipher:    cipher,
	})
	if err != nil {
		return fmt.Errorf("sending message: %w", err)
	}

	ack, err := crypto.Open(key, receipt.Nonce, receipt.Cipher)
	if err != nil {
		return fmt.Errorf("opening receipt: %w", err)
	}
	digest := sha256.Sum256(plaintext)
	if !bytes.Equal(ack, digest[:]) {
		return errors.New("receipt digest mismatch")
	}
	return nil
}

// Current returns the stored session record, if any.
func (s *Service) Current(passphrase string) (domain.SessionRecord, bool, error) {
	record, _, ok, err := s.store.LoadSession(passphrase)
	return record, ok, err
}

// Close tears the session down on both ends: the server forgets the key and
// the local record is removed.
func (s *Service) Close(ctx context.Context, passphrase string) error {
	record, _, ok, err := s.store.LoadSession(passphrase)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNoSession
	}
	if err := s.relay.CloseSession(ctx, record.ID); err != nil {
		return fmt.Errorf("closing remote session: %w", err)
	}
	return s.store.DeleteSession()
}

// Compile-time assertion that Service implements domain.SessionService.
var _ domain.SessionService = (*Service)(nil)
