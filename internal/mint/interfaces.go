package mint

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/bulbacards/packmint/internal/domain"
)

// PackContract is the subset of the contract binding the service uses.
type PackContract interface {
	Address() common.Address
	MintPrice(ctx context.Context) (*big.Int, error)
	TotalPacks(ctx context.Context) (*big.Int, error)
	TotalPacksMinted(ctx context.Context) (*big.Int, error)
	BurnedPacks(ctx context.Context, fromBlock *big.Int) (uint64, error)
	PackMintPacks(amount *big.Int) ([]byte, error)
	PackOpenPacks(ids []*big.Int) ([]byte, error)
	MintPacks(opts *bind.TransactOpts, amount *big.Int) (*types.Transaction, error)
	OpenPacks(opts *bind.TransactOpts, ids []*big.Int) (*types.Transaction, error)
}

// OwnershipScanner discovers owned tokens.
type OwnershipScanner interface {
	Packs(ctx context.Context, owner common.Address) ([]domain.Token, error)
	Cards(ctx context.Context, owner common.Address) ([]domain.Token, error)
	Balances(ctx context.Context, owner common.Address, ids []uint64) (map[uint64]uint64, error)
}

// ReceiptWaiter blocks until a submitted transaction is mined.
type ReceiptWaiter func(ctx context.Context, tx *types.Transaction) (domain.TxReceipt, error)
