// Package mint quotes, prepares and submits pack mints and openings.
package mint

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/bulbacards/packmint/internal/chain"
	"github.com/bulbacards/packmint/internal/domain"
	"github.com/bulbacards/packmint/internal/eligibility"
	"github.com/bulbacards/packmint/internal/logger"
	"github.com/bulbacards/packmint/internal/metrics"
	"github.com/bulbacards/packmint/internal/pricing"
)

// Service defines the pack operations offered to every front-end.
type Service interface {
	Eligibility(ctx context.Context, address string) (domain.HolderEligibility, error)
	Quote(ctx context.Context, address string, amount int) (domain.Quote, error)
	PrepareMint(ctx context.Context, address string, amount int) (domain.Quote, domain.PreparedTx, error)
	PrepareOpen(ctx context.Context, address string, packIDs []uint64) (domain.PreparedTx, error)
	Packs(ctx context.Context, address string) ([]domain.Token, error)
	Cards(ctx context.Context, address string) ([]domain.Token, error)
	Stats(ctx context.Context) (domain.CollectionStats, error)

	// Mint and Open sign with the configured key and wait for the receipt.
	Mint(ctx context.Context, amount int) (domain.Quote, domain.TxReceipt, error)
	Open(ctx context.Context, packIDs []uint64) (domain.TxReceipt, error)
}

// Config holds chain-level defaults used when contract reads fail.
type Config struct {
	ChainID          int64
	DefaultMintPrice *big.Int
	DefaultTotal     uint64
	// BurnScanFromBlock is where the burned-pack log query starts.
	BurnScanFromBlock *big.Int
}

type service struct {
	contract    PackContract
	eligibility eligibility.Service
	scanner     OwnershipScanner
	signer      *bind.TransactOpts
	wait        ReceiptWaiter
	cfg         Config
}

// NewService creates a mint service. signer and wait may be nil for a
// read-and-prepare-only service; Mint and Open then fail with
// domain.ErrSignerUnavailable.
func NewService(contract PackContract, elig eligibility.Service, scanner OwnershipScanner, signer *bind.TransactOpts, wait ReceiptWaiter, cfg Config) Service {
	if cfg.DefaultMintPrice == nil {
		cfg.DefaultMintPrice, _ = new(big.Int).SetString(domain.DefaultMintPriceWei, 10)
	}
	if cfg.DefaultTotal == 0 {
		cfg.DefaultTotal = domain.TotalPacks
	}
	if cfg.BurnScanFromBlock == nil {
		cfg.BurnScanFromBlock = big.NewInt(0)
	}
	return &service{
		contract:    contract,
		eligibility: elig,
		scanner:     scanner,
		signer:      signer,
		wait:        wait,
		cfg:         cfg,
	}
}

func (s *service) Eligibility(ctx context.Context, address string) (domain.HolderEligibility, error) {
	holder, err := chain.ParseAddress(address)
	if err != nil {
		return domain.HolderEligibility{}, err
	}
	return s.eligibility.Eligibility(ctx, holder)
}

func (s *service) Quote(ctx context.Context, address string, amount int) (domain.Quote, error) {
	holder, err := chain.ParseAddress(address)
	if err != nil {
		return domain.Quote{}, err
	}
	return s.quote(ctx, holder, amount)
}

func (s *service) quote(ctx context.Context, holder common.Address, amount int) (domain.Quote, error) {
	log := logger.FromContext(ctx)

	if amount < 1 {
		return domain.Quote{}, fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount)
	}

	elig, err := s.eligibility.Eligibility(ctx, holder)
	if err != nil {
		return domain.Quote{}, err
	}

	q, err := pricing.Calculate(elig, s.mintPrice(ctx), amount)
	if err != nil {
		return domain.Quote{}, err
	}

	metrics.RecordQuote(string(q.Tier), q.IsFree())
	log.Info(LogMsgQuoted, "holder", holder.Hex(), "tier", q.Tier, "amount", q.Amount,
		"free", q.Free, "discounted", q.Discounted, "full", q.Full, "total", q.Total.String())
	return q, nil
}

// mintPrice reads the on-chain price, falling back to the configured default.
func (s *service) mintPrice(ctx context.Context) *big.Int {
	price, err := s.contract.MintPrice(ctx)
	if err != nil || price == nil {
		logger.FromContext(ctx).Warn(LogMsgMintPriceFallback, "error", err, "default", s.cfg.DefaultMintPrice.String())
		return new(big.Int).Set(s.cfg.DefaultMintPrice)
	}
	return price
}

func (s *service) PrepareMint(ctx context.Context, address string, amount int) (domain.Quote, domain.PreparedTx, error) {
	holder, err := chain.ParseAddress(address)
	if err != nil {
		return domain.Quote{}, domain.PreparedTx{}, err
	}

	q, err := s.quote(ctx, holder, amount)
	if err != nil {
		return domain.Quote{}, domain.PreparedTx{}, err
	}

	data, err := s.contract.PackMintPacks(big.NewInt(int64(amount)))
	if err != nil {
		return domain.Quote{}, domain.PreparedTx{}, fmt.Errorf("encode mintPacks: %w", err)
	}

	return q, s.preparedTx(holder, q.Total, data), nil
}

func (s *service) preparedTx(from common.Address, value *big.Int, data []byte) domain.PreparedTx {
	return domain.PreparedTx{
		ChainID: s.cfg.ChainID,
		From:    from.Hex(),
		To:      s.contract.Address().Hex(),
		Value:   new(big.Int).Set(value),
		Data:    hexutil.Encode(data),
	}
}

func (s *service) Packs(ctx context.Context, address string) ([]domain.Token, error) {
	holder, err := chain.ParseAddress(address)
	if err != nil {
		return nil, err
	}
	return s.scanner.Packs(ctx, holder)
}

func (s *service) Cards(ctx context.Context, address string) ([]domain.Token, error) {
	holder, err := chain.ParseAddress(address)
	if err != nil {
		return nil, err
	}
	return s.scanner.Cards(ctx, holder)
}

// Stats never fails: each figure falls back independently when its read fails.
func (s *service) Stats(ctx context.Context) (domain.CollectionStats, error) {
	log := logger.FromContext(ctx)
	stats := domain.CollectionStats{TotalSupply: s.cfg.DefaultTotal}

	if total, err := s.contract.TotalPacks(ctx); err != nil {
		log.Warn(LogMsgStatsFallback, "field", "total_supply", "error", err)
	} else if total.IsUint64() {
		stats.TotalSupply = total.Uint64()
	}

	if minted, err := s.contract.TotalPacksMinted(ctx); err != nil {
		log.Warn(LogMsgStatsFallback, "field", "total_minted", "error", err)
	} else if minted.IsUint64() {
		stats.TotalMinted = minted.Uint64()
	}

	if burned, err := s.contract.BurnedPacks(ctx, s.cfg.BurnScanFromBlock); err != nil {
		log.Warn(LogMsgStatsFallback, "field", "burned_packs", "error", err)
	} else {
		stats.BurnedPacks = burned
	}

	return stats, nil
}
