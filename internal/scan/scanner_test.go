package scan

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bulbacards/packmint/internal/domain"
	"github.com/bulbacards/packmint/internal/testing/leaktest"
)

var owner = common.HexToAddress("0x00000000000000000000000000000000000000b0")

// stubBalances serves balances from a map and fails selected ids.
type stubBalances struct {
	mu         sync.Mutex
	balances   map[uint64]int64
	failing    map[uint64]bool
	batchErr   error
	calls      int
	batchCalls int
	inFlight   atomic.Int32
	maxFlight  atomic.Int32
}

func (s *stubBalances) BalanceOf(_ context.Context, _ common.Address, id *big.Int) (*big.Int, error) {
	n := s.inFlight.Add(1)
	defer s.inFlight.Add(-1)
	for {
		m := s.maxFlight.Load()
		if n <= m || s.maxFlight.CompareAndSwap(m, n) {
			break
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.failing[id.Uint64()] {
		return nil, errors.New("execution reverted")
	}
	return big.NewInt(s.balances[id.Uint64()]), nil
}

func (s *stubBalances) BalanceOfBatch(_ context.Context, _ []common.Address, ids []*big.Int) ([]*big.Int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.batchCalls++
	if s.batchErr != nil {
		return nil, s.batchErr
	}
	out := make([]*big.Int, len(ids))
	for i, id := range ids {
		out[i] = big.NewInt(s.balances[id.Uint64()])
	}
	return out, nil
}

type stubMetadata struct {
	failing map[uint64]bool
}

func (s stubMetadata) Fetch(_ context.Context, id uint64) (domain.Metadata, error) {
	if s.failing[id] {
		return domain.Metadata{ID: id}, domain.ErrMetadataFetch
	}
	return domain.Metadata{ID: id, Name: "Token", Image: "https://img.example/x.png"}, nil
}

func ids(tokens []domain.Token) []uint64 {
	out := make([]uint64, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.ID
	}
	return out
}

func TestScanner_Packs(t *testing.T) {
	balances := &stubBalances{balances: map[uint64]int64{222: 1, 3: 2, 40: 1}}
	s := NewScanner(balances, stubMetadata{}, Config{BatchSize: 20})

	tokens, err := s.Packs(context.Background(), owner)

	require.NoError(t, err)
	assert.Equal(t, []uint64{3, 40, 222}, ids(tokens), "sorted by id")
	assert.Equal(t, uint64(2), tokens[0].Balance)
	assert.Equal(t, domain.KindPack, tokens[0].Kind)
	assert.Equal(t, "Token", tokens[0].Name)
	assert.Equal(t, domain.TotalPacks, balances.calls, "one read per pack id")
	assert.LessOrEqual(t, balances.maxFlight.Load(), int32(20), "fan-out bounded by batch size")
}

func TestScanner_Cards(t *testing.T) {
	balances := &stubBalances{balances: map[uint64]int64{223: 1, 888: 3, 100: 1}}
	s := NewScanner(balances, nil, Config{})

	tokens, err := s.Cards(context.Background(), owner)

	require.NoError(t, err)
	assert.Equal(t, []uint64{223, 888}, ids(tokens), "pack id 100 is outside the card range")
	assert.Equal(t, domain.KindCard, tokens[0].Kind)
	assert.Empty(t, tokens[0].Name, "no metadata fetcher configured")
	assert.Equal(t, domain.CardIDMax-domain.CardIDMin+1, balances.calls)
}

func TestScanner_FailedReadsAreNotOwned(t *testing.T) {
	balances := &stubBalances{
		balances: map[uint64]int64{1: 1, 2: 1, 3: 1},
		failing:  map[uint64]bool{2: true},
	}
	s := NewScanner(balances, stubMetadata{}, Config{BatchSize: 2})

	tokens, err := s.Scan(context.Background(), owner, 1, 5)

	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 3}, ids(tokens))
}

func TestScanner_MetadataFailureKeepsToken(t *testing.T) {
	balances := &stubBalances{balances: map[uint64]int64{7: 1, 8: 1}}
	s := NewScanner(balances, stubMetadata{failing: map[uint64]bool{8: true}}, Config{BatchSize: 4})

	tokens, err := s.Scan(context.Background(), owner, 1, 10)

	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, "Token", tokens[0].Name)
	assert.Equal(t, uint64(8), tokens[1].ID)
	assert.Empty(t, tokens[1].Name)
	assert.Empty(t, tokens[1].Image)
}

func TestScanner_BatchCallMode(t *testing.T) {
	balances := &stubBalances{balances: map[uint64]int64{5: 1, 25: 4}}
	s := NewScanner(balances, nil, Config{BatchSize: 20, UseBatchCall: true})

	tokens, err := s.Scan(context.Background(), owner, 1, 45)

	require.NoError(t, err)
	assert.Equal(t, []uint64{5, 25}, ids(tokens))
	assert.Equal(t, uint64(4), tokens[1].Balance)
	assert.Equal(t, 3, balances.batchCalls, "45 ids in batches of 20")
	assert.Zero(t, balances.calls)
}

func TestScanner_BatchCallFailure(t *testing.T) {
	balances := &stubBalances{balances: map[uint64]int64{5: 1}, batchErr: errors.New("rpc down")}
	s := NewScanner(balances, nil, Config{BatchSize: 20, UseBatchCall: true})

	tokens, err := s.Scan(context.Background(), owner, 1, 20)

	require.NoError(t, err)
	assert.Empty(t, tokens)
}

func TestScanner_InvalidRange(t *testing.T) {
	s := NewScanner(&stubBalances{}, nil, Config{})

	_, err := s.Scan(context.Background(), owner, 0, 10)
	assert.ErrorIs(t, err, domain.ErrInvalidTokenRange)

	_, err = s.Scan(context.Background(), owner, 10, 9)
	assert.ErrorIs(t, err, domain.ErrInvalidTokenRange)
}

func TestScanner_CancelledContext(t *testing.T) {
	s := NewScanner(&stubBalances{}, nil, Config{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Packs(ctx, owner)
	assert.ErrorIs(t, err, context.Canceled)
}

// blockingBalances answers only once the caller's context ends.
type blockingBalances struct {
	started atomic.Int32
}

func (b *blockingBalances) BalanceOf(ctx context.Context, _ common.Address, _ *big.Int) (*big.Int, error) {
	b.started.Add(1)
	<-ctx.Done()
	return nil, ctx.Err()
}

func (b *blockingBalances) BalanceOfBatch(ctx context.Context, _ []common.Address, _ []*big.Int) ([]*big.Int, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestScanner_CancelledMidBatch(t *testing.T) {
	for _, batchCall := range []bool{false, true} {
		balances := &blockingBalances{}
		s := NewScanner(balances, nil, Config{BatchSize: 20, UseBatchCall: batchCall})

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		tokens, err := s.Scan(ctx, owner, 1, 20)
		cancel()

		assert.ErrorIs(t, err, context.DeadlineExceeded, "batch call %v", batchCall)
		assert.Nil(t, tokens, "an interrupted batch is not reported as not owned")
		assert.LessOrEqual(t, balances.started.Load(), int32(20))
	}
}

func TestScanner_NoGoroutineLeak(t *testing.T) {
	balances := &stubBalances{
		balances: map[uint64]int64{5: 1},
		failing:  map[uint64]bool{7: true, 300: true},
	}
	s := NewScanner(balances, stubMetadata{}, Config{BatchSize: 8})

	leaktest.CheckNoGoroutineLeak(t, func() {
		_, err := s.Cards(context.Background(), owner)
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err = s.Packs(ctx, owner)
		assert.ErrorIs(t, err, context.Canceled)

		_, err = s.Balances(context.Background(), owner, []uint64{5, 7})
		assert.Error(t, err)
	})
}

func TestScanner_Balances(t *testing.T) {
	balances := &stubBalances{balances: map[uint64]int64{1: 2, 2: 0}}
	s := NewScanner(balances, nil, Config{})

	got, err := s.Balances(context.Background(), owner, []uint64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, map[uint64]uint64{1: 2, 2: 0}, got)

	balances.failing = map[uint64]bool{2: true}
	_, err = s.Balances(context.Background(), owner, []uint64{1, 2})
	assert.Error(t, err, "strict reads surface failures")
}

type stubIndex struct {
	packs []domain.PackMetadata
	err   error
	calls int
}

func (s *stubIndex) GetPacksMetadataByOwner(_ context.Context, _ common.Address) ([]domain.PackMetadata, error) {
	s.calls++
	return s.packs, s.err
}

func TestScanner_PacksFromIndex(t *testing.T) {
	t.Run("listed packs confirmed by balance", func(t *testing.T) {
		balances := &stubBalances{balances: map[uint64]int64{3: 1, 40: 1, 90: 1}}
		index := &stubIndex{packs: []domain.PackMetadata{
			{TokenID: 40, URI: "ipfs://40"},
			{TokenID: 3, URI: "ipfs://3"},
			{TokenID: 3, URI: "ipfs://3"},
			{TokenID: 17, URI: "ipfs://17"},
			{TokenID: 500, URI: "ipfs://500"},
		}}
		s := NewScanner(balances, stubMetadata{}, Config{BatchSize: 2, Index: index})

		tokens, err := s.Packs(context.Background(), owner)

		require.NoError(t, err)
		assert.Equal(t, []uint64{3, 40}, ids(tokens), "17 was opened, 500 is a card id, 90 is unlisted")
		assert.Equal(t, "Token", tokens[0].Name)
		assert.Equal(t, 3, balances.calls, "only listed pack ids are read")
		assert.Equal(t, 1, index.calls)
	})

	t.Run("empty listing", func(t *testing.T) {
		balances := &stubBalances{}
		s := NewScanner(balances, nil, Config{Index: &stubIndex{}})

		tokens, err := s.Packs(context.Background(), owner)

		require.NoError(t, err)
		assert.Empty(t, tokens)
		assert.Zero(t, balances.calls)
	})

	t.Run("listing failure falls back to range scan", func(t *testing.T) {
		balances := &stubBalances{balances: map[uint64]int64{5: 1, 222: 1}}
		index := &stubIndex{err: errors.New("execution reverted")}
		s := NewScanner(balances, nil, Config{BatchSize: 20, Index: index})

		tokens, err := s.Packs(context.Background(), owner)

		require.NoError(t, err)
		assert.Equal(t, []uint64{5, 222}, ids(tokens))
		assert.Equal(t, domain.TotalPacks, balances.calls)
	})

	t.Run("cancelled context does not fall back", func(t *testing.T) {
		balances := &stubBalances{}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		s := NewScanner(balances, nil, Config{Index: &stubIndex{err: context.Canceled}})

		_, err := s.Packs(ctx, owner)

		assert.ErrorIs(t, err, context.Canceled)
		assert.Zero(t, balances.calls)
	})
}
