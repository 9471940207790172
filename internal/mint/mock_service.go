package mint

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/bulbacards/packmint/internal/domain"
)

// MockService is a mock implementation of the Service interface
type MockService struct {
	mock.Mock
}

func (m *MockService) Eligibility(ctx context.Context, address string) (domain.HolderEligibility, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(domain.HolderEligibility), args.Error(1)
}

func (m *MockService) Quote(ctx context.Context, address string, amount int) (domain.Quote, error) {
	args := m.Called(ctx, address, amount)
	return args.Get(0).(domain.Quote), args.Error(1)
}

func (m *MockService) PrepareMint(ctx context.Context, address string, amount int) (domain.Quote, domain.PreparedTx, error) {
	args := m.Called(ctx, address, amount)
	return args.Get(0).(domain.Quote), args.Get(1).(domain.PreparedTx), args.Error(2)
}

func (m *MockService) PrepareOpen(ctx context.Context, address string, packIDs []uint64) (domain.PreparedTx, error) {
	args := m.Called(ctx, address, packIDs)
	return args.Get(0).(domain.PreparedTx), args.Error(1)
}

func (m *MockService) Packs(ctx context.Context, address string) ([]domain.Token, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Token), args.Error(1)
}

func (m *MockService) Cards(ctx context.Context, address string) ([]domain.Token, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Token), args.Error(1)
}

func (m *MockService) Stats(ctx context.Context) (domain.CollectionStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.CollectionStats), args.Error(1)
}

func (m *MockService) Mint(ctx context.Context, amount int) (domain.Quote, domain.TxReceipt, error) {
	args := m.Called(ctx, amount)
	return args.Get(0).(domain.Quote), args.Get(1).(domain.TxReceipt), args.Error(2)
}

func (m *MockService) Open(ctx context.Context, packIDs []uint64) (domain.TxReceipt, error) {
	args := m.Called(ctx, packIDs)
	return args.Get(0).(domain.TxReceipt), args.Error(1)
}
