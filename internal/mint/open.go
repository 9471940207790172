package mint

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/bulbacards/packmint/internal/chain"
	"github.com/bulbacards/packmint/internal/domain"
)

func (s *service) PrepareOpen(ctx context.Context, address string, packIDs []uint64) (domain.PreparedTx, error) {
	holder, err := chain.ParseAddress(address)
	if err != nil {
		return domain.PreparedTx{}, err
	}

	ids, err := s.validateOpen(ctx, holder, packIDs)
	if err != nil {
		return domain.PreparedTx{}, err
	}

	data, err := s.contract.PackOpenPacks(ids)
	if err != nil {
		return domain.PreparedTx{}, fmt.Errorf("encode openPacks: %w", err)
	}
	return s.preparedTx(holder, big.NewInt(0), data), nil
}

// validateOpen checks the selection is non-empty, contains only distinct pack
// ids, and that holder owns every one of them.
func (s *service) validateOpen(ctx context.Context, holder common.Address, packIDs []uint64) ([]*big.Int, error) {
	if len(packIDs) == 0 {
		return nil, domain.ErrNoPacksSelected
	}

	seen := make(map[uint64]struct{}, len(packIDs))
	for _, id := range packIDs {
		if !domain.IsPackID(id) {
			return nil, fmt.Errorf("%w: %d", domain.ErrNotAPack, id)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: %d", domain.ErrDuplicatePack, id)
		}
		seen[id] = struct{}{}
	}

	balances, err := s.scanner.Balances(ctx, holder, packIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrContractRead, err)
	}

	ids := make([]*big.Int, len(packIDs))
	for i, id := range packIDs {
		if balances[id] == 0 {
			return nil, fmt.Errorf("%w: pack %d", domain.ErrPackNotOwned, id)
		}
		ids[i] = new(big.Int).SetUint64(id)
	}
	return ids, nil
}
