// Package dh implements the finite-field Diffie-Hellman exchange both peers
// run to agree on a session key.
//
// It performs secret and public value generation over a fixed 1024-bit safe
// prime group, and derives the 256-bit session key from the exchanged public
// values. Note this is bare DH: the exchange is unauthenticated and offers no
// protection against an active man in the middle.
package dh
