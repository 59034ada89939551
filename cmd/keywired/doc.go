// Command keywired is the demo server: it answers Diffie-Hellman handshakes,
// keeps the derived session keys in an in-memory registry with TTL eviction,
// and acknowledges decrypted messages with encrypted receipts.
package main
