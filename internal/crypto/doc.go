// Package crypto exposes the minimal primitives used by keywire.
//
// Contents
//
//   - Uniform random big integers from crypto/rand (RandomInt)
//   - ChaCha20-Poly1305 sealing of session traffic (Seal, Open)
//   - Passphrase-based protection of the client's key at rest
//     (DeriveKEK, EncryptSecret, DecryptSecret)
//   - Short public-value fingerprints for display/logging (Fingerprint)
//
// # Notes
//
// Callers should treat returned secrets as sensitive and rely on
// util/memzero when practical to reduce lifetime in memory.
package crypto
