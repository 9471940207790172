package chain

import (
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/bulbacards/packmint/internal/domain"
)

// NewKeystoreTransactor unlocks an encrypted JSON keyfile.
func NewKeystoreTransactor(path, passphrase string, chainID *big.Int) (*bind.TransactOpts, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open keyfile: %v", domain.ErrSignerUnavailable, err)
	}
	defer f.Close()

	opts, err := bind.NewTransactorWithChainID(f, passphrase, chainID)
	if err != nil {
		return nil, fmt.Errorf("%w: unlock keyfile: %v", domain.ErrSignerUnavailable, err)
	}
	return opts, nil
}

// NewKeyTransactor builds a signer from a hex private key, with or without 0x.
func NewKeyTransactor(hexKey string, chainID *big.Int) (*bind.TransactOpts, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(hexKey), "0x"))
	if err != nil {
		return nil, fmt.Errorf("%w: parse private key: %v", domain.ErrSignerUnavailable, err)
	}

	opts, err := bind.NewKeyedTransactorWithChainID(key, chainID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSignerUnavailable, err)
	}
	return opts, nil
}
