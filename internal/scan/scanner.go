// Package scan discovers which packs and cards an address owns by reading
// balances over the bounded token id ranges.
package scan

import (
	"context"
	"fmt"
	"math/big"
	"sort"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/sync/errgroup"

	"github.com/bulbacards/packmint/internal/domain"
	"github.com/bulbacards/packmint/internal/logger"
	"github.com/bulbacards/packmint/internal/metrics"
)

// BalanceReader reads ERC-1155 balances.
type BalanceReader interface {
	BalanceOf(ctx context.Context, owner common.Address, id *big.Int) (*big.Int, error)
	BalanceOfBatch(ctx context.Context, owners []common.Address, ids []*big.Int) ([]*big.Int, error)
}

// MetadataFetcher loads display metadata for a token.
type MetadataFetcher interface {
	Fetch(ctx context.Context, id uint64) (domain.Metadata, error)
}

// PackIndex lists the packs the contract itself tracks for an owner.
type PackIndex interface {
	GetPacksMetadataByOwner(ctx context.Context, owner common.Address) ([]domain.PackMetadata, error)
}

// Config controls scan fan-out.
type Config struct {
	// BatchSize is the number of ids read per batch, and the concurrency limit.
	BatchSize int
	// UseBatchCall issues one balanceOfBatch call per batch instead of one
	// balanceOf call per id.
	UseBatchCall bool
	// Index, when set, answers Packs from the contract's owner listing and
	// falls back to the range scan if the listing call fails.
	Index PackIndex
}

// Scanner walks id ranges. A nil MetadataFetcher skips metadata.
type Scanner struct {
	balances BalanceReader
	metadata MetadataFetcher
	cfg      Config
}

// NewScanner creates a Scanner.
func NewScanner(balances BalanceReader, metadata MetadataFetcher, cfg Config) *Scanner {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = domain.DefaultScanBatchSize
	}
	return &Scanner{balances: balances, metadata: metadata, cfg: cfg}
}

// Packs scans the pack range.
func (s *Scanner) Packs(ctx context.Context, owner common.Address) ([]domain.Token, error) {
	if s.cfg.Index != nil {
		packs, err := s.indexedPacks(ctx, owner)
		if err == nil {
			return packs, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		metrics.ScanIndexFallbacks.Inc()
		logger.FromContext(ctx).Warn(LogMsgIndexFailed, "owner", owner.Hex(), "error", err)
	}
	return s.Scan(ctx, owner, domain.PackIDMin, domain.PackIDMax)
}

// indexedPacks confirms each listed pack with a balance read, so a stale
// listing never reports a pack the owner has since opened or moved.
func (s *Scanner) indexedPacks(ctx context.Context, owner common.Address) ([]domain.Token, error) {
	start := time.Now()
	listed, err := s.cfg.Index.GetPacksMetadataByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}

	seen := make(map[uint64]bool, len(listed))
	ids := make([]uint64, 0, len(listed))
	for _, p := range listed {
		if domain.IsPackID(p.TokenID) && !seen[p.TokenID] {
			seen[p.TokenID] = true
			ids = append(ids, p.TokenID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var owned []domain.Token
	for batchStart := 0; batchStart < len(ids); batchStart += s.cfg.BatchSize {
		batch := ids[batchStart:min(batchStart+s.cfg.BatchSize, len(ids))]
		balances, err := s.readBatch(ctx, owner, batch, domain.KindPack)
		if err != nil {
			return nil, err
		}
		for i, id := range batch {
			if balances[i] > 0 {
				owned = append(owned, domain.Token{ID: id, Kind: domain.KindPack, Balance: balances[i]})
			}
		}
	}

	if err := s.attachMetadata(ctx, owned); err != nil {
		return nil, err
	}

	metrics.ObserveScan(string(domain.KindPack), start, len(owned))
	logger.FromContext(ctx).Debug(LogMsgIndexComplete, "owner", owner.Hex(), "listed", len(listed), "owned", len(owned))
	return owned, nil
}

// Cards scans the card range.
func (s *Scanner) Cards(ctx context.Context, owner common.Address) ([]domain.Token, error) {
	return s.Scan(ctx, owner, domain.CardIDMin, domain.CardIDMax)
}

// Scan returns the tokens in [from, to] that owner holds, sorted by id.
// A failed balance read is logged and the id treated as not owned; a failed
// metadata fetch keeps the token without name or image. Only an invalid
// range or a cancelled context fails the scan.
func (s *Scanner) Scan(ctx context.Context, owner common.Address, from, to uint64) ([]domain.Token, error) {
	if from == 0 || from > to {
		return nil, fmt.Errorf("%w: [%d, %d]", domain.ErrInvalidTokenRange, from, to)
	}

	start := time.Now()
	kind := domain.KindOf(from)
	log := logger.FromContext(ctx).With("owner", owner.Hex(), "kind", kind)

	var owned []domain.Token
	for batchStart := from; batchStart <= to; batchStart += uint64(s.cfg.BatchSize) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		batchEnd := min(batchStart+uint64(s.cfg.BatchSize)-1, to)
		ids := idRange(batchStart, batchEnd)

		balances, err := s.readBatch(ctx, owner, ids, kind)
		if err != nil {
			return nil, err
		}
		for i, id := range ids {
			if balances[i] > 0 {
				owned = append(owned, domain.Token{ID: id, Kind: domain.KindOf(id), Balance: balances[i]})
			}
		}
	}

	if err := s.attachMetadata(ctx, owned); err != nil {
		return nil, err
	}

	sort.Slice(owned, func(i, j int) bool { return owned[i].ID < owned[j].ID })

	metrics.ObserveScan(string(kind), start, len(owned))
	log.Debug(LogMsgScanComplete, "from", from, "to", to, "owned", len(owned), "duration", time.Since(start))
	return owned, nil
}

// Balances reads owner's balance of each id strictly: any failed read fails
// the call. Used where a wrong "not owned" answer would mislead the caller.
func (s *Scanner) Balances(ctx context.Context, owner common.Address, ids []uint64) (map[uint64]uint64, error) {
	out := make(map[uint64]uint64, len(ids))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.BatchSize)
	for _, id := range ids {
		g.Go(func() error {
			bal, err := s.balances.BalanceOf(gctx, owner, new(big.Int).SetUint64(id))
			if err != nil {
				return fmt.Errorf("balance of token %d: %w", id, err)
			}
			mu.Lock()
			out[id] = toUint64(bal)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// readBatch returns one balance per id; failures read as zero. Only a
// cancelled context fails the batch.
func (s *Scanner) readBatch(ctx context.Context, owner common.Address, ids []uint64, kind domain.TokenKind) ([]uint64, error) {
	out := make([]uint64, len(ids))
	log := logger.FromContext(ctx)

	if s.cfg.UseBatchCall {
		owners := make([]common.Address, len(ids))
		bigIDs := make([]*big.Int, len(ids))
		for i, id := range ids {
			owners[i] = owner
			bigIDs[i] = new(big.Int).SetUint64(id)
		}
		balances, err := s.balances.BalanceOfBatch(ctx, owners, bigIDs)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			metrics.ScanFailedBalanceReads.WithLabelValues(string(kind)).Add(float64(len(ids)))
			log.Warn(LogMsgBatchReadFailed, "from", ids[0], "to", ids[len(ids)-1], "error", err)
			return out, nil
		}
		for i := 0; i < len(balances) && i < len(out); i++ {
			out[i] = toUint64(balances[i])
		}
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(len(ids))
	for i, id := range ids {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			bal, err := s.balances.BalanceOf(gctx, owner, new(big.Int).SetUint64(id))
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				metrics.ScanFailedBalanceReads.WithLabelValues(string(kind)).Inc()
				log.Warn(LogMsgBalanceReadFailed, "token_id", id, "error", err)
				return nil
			}
			out[i] = toUint64(bal)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// attachMetadata fills name and image for owned tokens.
func (s *Scanner) attachMetadata(ctx context.Context, tokens []domain.Token) error {
	if s.metadata == nil || len(tokens) == 0 {
		return nil
	}

	var g errgroup.Group
	g.SetLimit(s.cfg.BatchSize)
	for i := range tokens {
		g.Go(func() error {
			md, err := s.metadata.Fetch(ctx, tokens[i].ID)
			if err != nil {
				logger.FromContext(ctx).Warn(LogMsgMetadataFailed, "token_id", tokens[i].ID, "error", err)
				return nil
			}
			tokens[i].Name = md.Name
			tokens[i].Image = md.Image
			return nil
		})
	}
	_ = g.Wait()
	return ctx.Err()
}

func idRange(from, to uint64) []uint64 {
	ids := make([]uint64, 0, to-from+1)
	for id := from; id <= to; id++ {
		ids = append(ids, id)
	}
	return ids
}

func toUint64(v *big.Int) uint64 {
	if v == nil || v.Sign() <= 0 {
		return 0
	}
	if !v.IsUint64() {
		return ^uint64(0)
	}
	return v.Uint64()
}
