package kangaroo

import (
	"bytes"
	"errors"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// VerifyPrivateKey checks a recovered secp256k1 key against a compressed
// public key using the decred implementation, independently of this
// module's own curve arithmetic.
//
// Args:
//   - privateKey: recovered key, in [1, N)
//   - publicKeyBytes: public key in compressed format (33 bytes)
//
// Returns:
//   - true if privateKey·G serializes to publicKeyBytes
func VerifyPrivateKey(privateKey *big.Int, publicKeyBytes []byte) (bool, error) {
	if len(publicKeyBytes) != 33 {
		return false, errors.New("public key must be 33 bytes (compressed format)")
	}
	if privateKey.Sign() <= 0 || privateKey.Cmp(secp256k1.S256().N) >= 0 {
		return false, errors.New("private key out of valid range")
	}

	var privKeyBytes [32]byte
	privateKey.FillBytes(privKeyBytes[:])

	pubKey := secp256k1.PrivKeyFromBytes(privKeyBytes[:]).PubKey()
	return bytes.Equal(pubKey.SerializeCompressed(), publicKeyBytes), nil
}
