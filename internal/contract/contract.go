// Package contract is the Go binding for the pack contract.
package contract

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/bulbacards/packmint/internal/domain"
	"github.com/bulbacards/packmint/internal/metrics"
)

// PackContract wraps a deployed pack contract.
type PackContract struct {
	abi      abi.ABI
	address  common.Address
	contract *bind.BoundContract
	filterer bind.ContractFilterer
}

// packMetadataOutput mirrors the Pack.PackMetadata tuple.
type packMetadataOutput struct {
	TokenId *big.Int
	Uri     string
}

// NewPackContract binds to the contract at addr. transactor may be nil for
// read-only use; filterer may be nil when log queries are not needed.
func NewPackContract(addr common.Address, caller bind.ContractCaller, transactor bind.ContractTransactor, filterer bind.ContractFilterer) (*PackContract, error) {
	parsed, err := abi.JSON(strings.NewReader(PackContractABI))
	if err != nil {
		return nil, fmt.Errorf("parse pack contract abi: %w", err)
	}
	return &PackContract{
		abi:      parsed,
		address:  addr,
		contract: bind.NewBoundContract(addr, parsed, caller, transactor, filterer),
		filterer: filterer,
	}, nil
}

// NewPackContractFromBackend binds using one backend for calls, transactions and logs.
func NewPackContractFromBackend(addr common.Address, backend bind.ContractBackend) (*PackContract, error) {
	return NewPackContract(addr, backend, backend, backend)
}

// Address returns the contract address.
func (c *PackContract) Address() common.Address {
	return c.address
}

// call runs a read and times it. Errors are wrapped with domain.ErrContractRead.
func (c *PackContract) call(ctx context.Context, method string, args ...interface{}) ([]interface{}, error) {
	start := time.Now()
	var out []interface{}
	err := c.contract.Call(&bind.CallOpts{Context: ctx}, &out, method, args...)
	metrics.ObserveContractCall(method, start, err)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrContractRead, method, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %s: empty result", domain.ErrContractRead, method)
	}
	return out, nil
}

func (c *PackContract) callUint(ctx context.Context, method string, args ...interface{}) (*big.Int, error) {
	out, err := c.call(ctx, method, args...)
	if err != nil {
		return nil, err
	}
	v, ok := out[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("%w: %s: unexpected result type %T", domain.ErrContractRead, method, out[0])
	}
	return v, nil
}

// MintPrice returns the full per-pack price in wei.
func (c *PackContract) MintPrice(ctx context.Context) (*big.Int, error) {
	return c.callUint(ctx, MethodMintPrice)
}

// TotalPacks returns the TOTAL_PACKS supply cap.
func (c *PackContract) TotalPacks(ctx context.Context) (*big.Int, error) {
	return c.callUint(ctx, MethodTotalPacks)
}

// TotalPacksMinted returns how many packs have been minted so far.
func (c *PackContract) TotalPacksMinted(ctx context.Context) (*big.Int, error) {
	return c.callUint(ctx, MethodTotalPacksMinted)
}

// BalanceOf returns owner's balance of token id.
func (c *PackContract) BalanceOf(ctx context.Context, owner common.Address, id *big.Int) (*big.Int, error) {
	return c.callUint(ctx, MethodBalanceOf, owner, id)
}

// BalanceOfBatch returns balances for parallel owner/id slices in one call.
func (c *PackContract) BalanceOfBatch(ctx context.Context, owners []common.Address, ids []*big.Int) ([]*big.Int, error) {
	if len(owners) != len(ids) {
		return nil, fmt.Errorf("balanceOfBatch: %d owners for %d ids", len(owners), len(ids))
	}
	out, err := c.call(ctx, MethodBalanceOfBatch, owners, ids)
	if err != nil {
		return nil, err
	}
	balances, ok := out[0].([]*big.Int)
	if !ok {
		return nil, fmt.Errorf("%w: %s: unexpected result type %T", domain.ErrContractRead, MethodBalanceOfBatch, out[0])
	}
	if len(balances) != len(ids) {
		return nil, fmt.Errorf("%w: %s: got %d balances for %d ids", domain.ErrContractRead, MethodBalanceOfBatch, len(balances), len(ids))
	}
	return balances, nil
}

// URI returns the raw metadata URI template for id.
func (c *PackContract) URI(ctx context.Context, id *big.Int) (string, error) {
	out, err := c.call(ctx, MethodURI, id)
	if err != nil {
		return "", err
	}
	uri, ok := out[0].(string)
	if !ok {
		return "", fmt.Errorf("%w: %s: unexpected result type %T", domain.ErrContractRead, MethodURI, out[0])
	}
	return uri, nil
}

// GetFreeMintCount returns how many free packs holder may still mint.
func (c *PackContract) GetFreeMintCount(ctx context.Context, holder common.Address) (*big.Int, error) {
	return c.callUint(ctx, MethodGetFreeMintCount, holder)
}

// GetDiscountedMintCount returns how many discounted packs holder may still mint.
func (c *PackContract) GetDiscountedMintCount(ctx context.Context, holder common.Address) (*big.Int, error) {
	return c.callUint(ctx, MethodGetDiscountedMintCount, holder)
}

// GetPacksMetadataByOwner lists the packs the contract tracks for owner.
func (c *PackContract) GetPacksMetadataByOwner(ctx context.Context, owner common.Address) ([]domain.PackMetadata, error) {
	out, err := c.call(ctx, MethodGetPacksMetadata, owner)
	if err != nil {
		return nil, err
	}
	raw := *abi.ConvertType(out[0], new([]packMetadataOutput)).(*[]packMetadataOutput)

	packs := make([]domain.PackMetadata, 0, len(raw))
	for _, p := range raw {
		packs = append(packs, domain.PackMetadata{TokenID: p.TokenId.Uint64(), URI: p.Uri})
	}
	return packs, nil
}

// MintPacks submits a payable mintPacks(amount). opts.Value must carry the price.
func (c *PackContract) MintPacks(opts *bind.TransactOpts, amount *big.Int) (*types.Transaction, error) {
	return c.transact(opts, MethodMintPacks, amount)
}

// OpenPacks submits openPacks(ids), burning the packs for cards.
func (c *PackContract) OpenPacks(opts *bind.TransactOpts, ids []*big.Int) (*types.Transaction, error) {
	return c.transact(opts, MethodOpenPacks, ids)
}

func (c *PackContract) transact(opts *bind.TransactOpts, method string, args ...interface{}) (*types.Transaction, error) {
	start := time.Now()
	tx, err := c.contract.Transact(opts, method, args...)
	metrics.ObserveContractCall(method, start, err)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrTransactionFailed, method, err)
	}
	return tx, nil
}

// PackMintPacks returns calldata for mintPacks(amount).
func (c *PackContract) PackMintPacks(amount *big.Int) ([]byte, error) {
	return c.abi.Pack(MethodMintPacks, amount)
}

// PackOpenPacks returns calldata for openPacks(ids).
func (c *PackContract) PackOpenPacks(ids []*big.Int) ([]byte, error) {
	return c.abi.Pack(MethodOpenPacks, ids)
}
