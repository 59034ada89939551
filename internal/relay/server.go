package relay

import (
	"crypto/sha256"
	"encoding/json"
	"errors"
	"log"
	"math/big"
	"net/http"
	"time"

	"github.com/google/uuid"

	"keywire/internal/crypto"
	"keywire/internal/domain"
	"keywire/internal/protocol/dh"
	"keywire/internal/registry"
	"keywire/internal/util/memzero"
)

// Server owns the server half of the demo: it answers handshakes with its
// own ephemeral DH value, keeps the derived keys in the registry, and
// decrypts traffic posted under established sessions.
type Server struct {
	reg *registry.Registry
	ttl time.Duration
}

// NewServer returns a Server backed by reg. Every session it registers gets
// ttl before eviction; renewed on each decrypted message.
func NewServer(reg *registry.Registry, ttl time.Duration) *Server {
	return &Server{reg: reg, ttl: ttl}
}

// Handler returns the HTTP surface of the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /handshake", s.handleHandshake)
	mux.HandleFunc("POST /msg/{id}", s.handleMessage)
	mux.HandleFunc("DELETE /session/{id}", s.handleCloseSession)
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	return mux
}

func (s *Server) handleHandshake(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	var req domain.HandshakeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	clientPub := new(big.Int).SetBytes(req.ClientPublic)
	if !publicInRange(clientPub) {
		http.Error(w, "public value out of range", http.StatusBadRequest)
		return
	}

	pair, err := dh.GenerateKeyPair()
	if err != nil {
		http.Error(w, "key generation failed", http.StatusInternalServerError)
		return
	}
	key, err := dh.DeriveSharedSecret(clientPub, pair.Secret)
	if err != nil {
		http.Error(w, "key derivation failed", http.StatusInternalServerError)
		return
	}
	memzero.ZeroBig(pair.Secret)

	id := domain.SessionID(uuid.NewString())
	s.reg.Register(id, key, s.ttl)
	log.Printf("handshake: registered session %s (ttl %s)", id, s.ttl)

	writeJSON(w, domain.HandshakeResponse{
		SessionID:    id,
		ServerPublic: pair.Public.Bytes(),
		TTLSeconds:   int64(s.ttl / time.Second),
	})
}

func (s *Server) handleMessage(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	id := domain.SessionID(r.PathValue("id"))
	key, ok := s.reg.Get(id)
	if !ok {
		http.Error(w, "unknown session", http.StatusNotFound)
		return
	}

	var env domain.Envelope
	if err := json.NewDecoder(r.Body).Decode(&env); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	plaintext, err := crypto.Open(key, env.Nonce, env.Cipher)
	if err != nil {
		http.Error(w, "decryption failed", http.StatusBadRequest)
		return
	}
	log.Printf("msg: session %s delivered %d bytes", id, len(plaintext))

	// Activity renews the TTL. The session may have expired between the
	// lookup above and here; that race is reported, not papered over.
	switch err := s.reg.ResetTimeout(id, s.ttl); {
	case errors.Is(err, registry.ErrSessionExpired):
		http.Error(w, "session expired", http.StatusGone)
		return
	case errors.Is(err, registry.ErrSessionNotFound):
		http.Error(w, "unknown session", http.StatusNotFound)
		return
	}

	digest := sha256.Sum256(plaintext)
	nonce, cipher, err := crypto.Seal(key, digest[:])
	if err != nil {
		http.Error(w, "receipt encryption failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, domain.Receipt{Nonce: nonce, Cipher: cipher})
}

func (s *Server) handleCloseSession(w http.ResponseWriter, r *http.Request) {
	id := domain.SessionID(r.PathValue("id"))
	s.reg.Forget(id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, struct {
		Sessions int `json:"sessions"`
	}{Sessions: s.reg.Len()})
}

// publicInRange rejects degenerate public values: 0, 1, and P-1 collapse the
// shared secret, and anything >= P is not a group element.
func publicInRange(pub *big.Int) bool {
	if pub.Cmp(big.NewInt(1)) <= 0 {
		return false
	}
	pMinusOne := new(big.Int).Sub(dh.P, big.NewInt(1))
	return pub.Cmp(pMinusOne) < 0
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
