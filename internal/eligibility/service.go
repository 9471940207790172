// Package eligibility decides how many free and discounted packs an
// address may still mint.
package eligibility

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/sync/errgroup"

	"github.com/bulbacards/packmint/internal/domain"
	"github.com/bulbacards/packmint/internal/logger"
)

// CountReader reads remaining allowance counters from the pack contract.
type CountReader interface {
	GetFreeMintCount(ctx context.Context, holder common.Address) (*big.Int, error)
	GetDiscountedMintCount(ctx context.Context, holder common.Address) (*big.Int, error)
}

// Service resolves the eligibility of an address.
type Service interface {
	Eligibility(ctx context.Context, holder common.Address) (domain.HolderEligibility, error)
}

// NewStaticService uses only the holders list: listed tiers get their full allowance.
func NewStaticService(list *HolderList) Service {
	return &staticService{list: list}
}

// NewContractService uses only the contract counters. The tier follows the
// counters and the counts are clamped to that tier's allowance.
func NewContractService(reader CountReader) Service {
	return &contractService{reader: reader}
}

// NewCombinedService takes the tier from the list and the remaining counts
// from the contract, clamped to the tier's allowance.
func NewCombinedService(list *HolderList, reader CountReader) Service {
	return &combinedService{list: list, reader: reader}
}

type staticService struct {
	list *HolderList
}

func (s *staticService) Eligibility(_ context.Context, holder common.Address) (domain.HolderEligibility, error) {
	return domain.Allowance(s.list.Tier(holder)), nil
}

type contractService struct {
	reader CountReader
}

func (s *contractService) Eligibility(ctx context.Context, holder common.Address) (domain.HolderEligibility, error) {
	free, discounted, err := readCounts(ctx, s.reader, holder)
	if err != nil {
		return domain.HolderEligibility{}, err
	}

	tier := domain.TierPublic
	switch {
	case free > 0:
		tier = domain.TierWhale
	case discounted > 0:
		tier = domain.TierHolder
	}

	allowance := domain.Allowance(tier)
	allowance.FreePacks = min(allowance.FreePacks, free)
	allowance.DiscountedPacks = min(allowance.DiscountedPacks, discounted)
	return allowance.Normalize(), nil
}

type combinedService struct {
	list   *HolderList
	reader CountReader
}

func (s *combinedService) Eligibility(ctx context.Context, holder common.Address) (domain.HolderEligibility, error) {
	allowance := domain.Allowance(s.list.Tier(holder))
	if allowance.Tier == domain.TierPublic {
		return allowance, nil
	}

	free, discounted, err := readCounts(ctx, s.reader, holder)
	if err != nil {
		return domain.HolderEligibility{}, err
	}

	allowance.FreePacks = min(allowance.FreePacks, free)
	allowance.DiscountedPacks = min(allowance.DiscountedPacks, discounted)
	return allowance.Normalize(), nil
}

// readCounts fetches both counters concurrently.
func readCounts(ctx context.Context, reader CountReader, holder common.Address) (free, discounted int, err error) {
	var freeRaw, discountedRaw *big.Int

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := reader.GetFreeMintCount(gctx, holder)
		freeRaw = v
		return err
	})
	g.Go(func() error {
		v, err := reader.GetDiscountedMintCount(gctx, holder)
		discountedRaw = v
		return err
	})
	if err := g.Wait(); err != nil {
		logger.FromContext(ctx).Warn(LogMsgCountReadFailed, "holder", holder.Hex(), "error", err)
		return 0, 0, fmt.Errorf("read mint allowance for %s: %w", holder.Hex(), err)
	}

	return clampCount(freeRaw), clampCount(discountedRaw), nil
}

// clampCount converts an on-chain counter to int, bounded by the per-mint maximum.
func clampCount(v *big.Int) int {
	if v == nil || v.Sign() <= 0 {
		return 0
	}
	if v.Cmp(big.NewInt(domain.MaxMintAmount)) > 0 {
		return domain.MaxMintAmount
	}
	return int(v.Int64())
}
