package eligibility

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"

	"github.com/bulbacards/packmint/internal/domain"
)

// MockCountReader is a mock implementation of the CountReader interface
type MockCountReader struct {
	mock.Mock
}

func (m *MockCountReader) GetFreeMintCount(ctx context.Context, holder common.Address) (*big.Int, error) {
	args := m.Called(ctx, holder)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *MockCountReader) GetDiscountedMintCount(ctx context.Context, holder common.Address) (*big.Int, error) {
	args := m.Called(ctx, holder)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

// MockService is a mock implementation of the Service interface
type MockService struct {
	mock.Mock
}

func (m *MockService) Eligibility(ctx context.Context, holder common.Address) (domain.HolderEligibility, error) {
	args := m.Called(ctx, holder)
	return args.Get(0).(domain.HolderEligibility), args.Error(1)
}
