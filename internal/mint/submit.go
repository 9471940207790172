package mint

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"

	"github.com/bulbacards/packmint/internal/contract"
	"github.com/bulbacards/packmint/internal/domain"
	"github.com/bulbacards/packmint/internal/logger"
	"github.com/bulbacards/packmint/internal/metrics"
)

func (s *service) Mint(ctx context.Context, amount int) (domain.Quote, domain.TxReceipt, error) {
	if s.signer == nil || s.wait == nil {
		return domain.Quote{}, domain.TxReceipt{}, domain.ErrSignerUnavailable
	}

	q, err := s.quote(ctx, s.signer.From, amount)
	if err != nil {
		return domain.Quote{}, domain.TxReceipt{}, err
	}

	opts := s.transactOpts(ctx, q.Total)
	tx, err := s.contract.MintPacks(opts, big.NewInt(int64(amount)))
	if err != nil {
		metrics.ObserveTransaction(contract.MethodMintPacks, err)
		return q, domain.TxReceipt{}, err
	}
	logger.FromContext(ctx).Info(LogMsgSubmitted, "method", contract.MethodMintPacks, "tx", tx.Hash().Hex(), "value", q.Total.String())

	receipt, err := s.wait(ctx, tx)
	metrics.ObserveTransaction(contract.MethodMintPacks, err)
	return q, receipt, err
}

func (s *service) Open(ctx context.Context, packIDs []uint64) (domain.TxReceipt, error) {
	if s.signer == nil || s.wait == nil {
		return domain.TxReceipt{}, domain.ErrSignerUnavailable
	}

	ids, err := s.validateOpen(ctx, s.signer.From, packIDs)
	if err != nil {
		return domain.TxReceipt{}, err
	}

	tx, err := s.contract.OpenPacks(s.transactOpts(ctx, nil), ids)
	if err != nil {
		metrics.ObserveTransaction(contract.MethodOpenPacks, err)
		return domain.TxReceipt{}, err
	}
	logger.FromContext(ctx).Info(LogMsgSubmitted, "method", contract.MethodOpenPacks, "tx", tx.Hash().Hex(), "packs", len(ids))

	receipt, err := s.wait(ctx, tx)
	metrics.ObserveTransaction(contract.MethodOpenPacks, err)
	return receipt, err
}

// transactOpts copies the signer so concurrent calls never share Value or Context.
func (s *service) transactOpts(ctx context.Context, value *big.Int) *bind.TransactOpts {
	opts := *s.signer
	opts.Context = ctx
	opts.Value = value
	return &opts
}
