package report

import (
	"errors"
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
)

var errKeyRange = errors.New("private key out of valid range")

// privKey converts a scalar in [1, N) to a btcec key.
func privKey(key *big.Int) (*btcec.PrivateKey, error) {
	if key.Sign() <= 0 || key.Cmp(btcec.S256().N) >= 0 {
		return nil, errKeyRange
	}
	var b [32]byte
	key.FillBytes(b[:])
	priv, _ := btcec.PrivKeyFromBytes(b[:])
	return priv, nil
}

// WIF returns the compressed wallet import format of key.
func WIF(key *big.Int, net *chaincfg.Params) (string, error) {
	priv, err := privKey(key)
	if err != nil {
		return "", err
	}
	wif, err := btcutil.NewWIF(priv, net, true)
	if err != nil {
		return "", err
	}
	return wif.String(), nil
}

// AddressFromPubKey returns the P2PKH address of a serialized public key.
func AddressFromPubKey(pubKey []byte, net *chaincfg.Params) (string, error) {
	addr, err := btcutil.NewAddressPubKeyHash(btcutil.Hash160(pubKey), net)
	if err != nil {
		return "", err
	}
	return addr.EncodeAddress(), nil
}

// AddressFromKey returns the compressed P2PKH address controlled by key.
func AddressFromKey(key *big.Int, net *chaincfg.Params) (string, error) {
	priv, err := privKey(key)
	if err != nil {
		return "", err
	}
	return AddressFromPubKey(priv.PubKey().SerializeCompressed(), net)
}
