package dh

import "math/big"

// primeHex is the 1024-bit safe prime of the Second Oakley Group
// (RFC 2409 section 6.2). Both peers must use this exact modulus; the
// parameters are fixed for the life of the process and never negotiated.
const primeHex = "FFFFFFFFFFFFFFFFC90FDAA22168C234C4C6628B80DC1CD1" +
	"29024E088A67CC74020BBEA63B139B22514A08798E3404DD" +
	"EF9519B3CD3A431B302B0A6DF25F14374FE1356D6D51C245" +
	"E485B576625E7EC6F44C42E9A637ED6B0BFF5CB6F406B7ED" +
	"EE386BFB5A899FA5AE9F24117C4B1FE649286651ECE65381" +
	"FFFFFFFFFFFFFFFF"

var (
	// P is the group modulus.
	P *big.Int

	// G is the generator. 4 is a quadratic residue mod a safe prime, so it
	// generates the prime-order subgroup.
	G = big.NewInt(4)
)

func init() {
	p, ok := new(big.Int).SetString(primeHex, 16)
	if !ok {
		panic("dh: bad prime constant")
	}
	P = p
}
