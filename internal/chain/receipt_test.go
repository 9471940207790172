package chain

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bulbacards/packmint/internal/domain"
)

type fakeDeployBackend struct {
	receipt *types.Receipt
	err     error
}

func (f *fakeDeployBackend) TransactionReceipt(context.Context, common.Hash) (*types.Receipt, error) {
	if f.receipt == nil {
		if f.err != nil {
			return nil, f.err
		}
		return nil, ethereum.NotFound
	}
	return f.receipt, nil
}

func (f *fakeDeployBackend) CodeAt(context.Context, common.Address, *big.Int) ([]byte, error) {
	return nil, nil
}

func testTx() *types.Transaction {
	to := common.HexToAddress("0x1234567890abcdef1234567890abcdef12345678")
	return types.NewTx(&types.LegacyTx{Nonce: 1, To: &to, Value: big.NewInt(0), Gas: 21000, GasPrice: big.NewInt(1)})
}

func TestWaitMined(t *testing.T) {
	tx := testTx()

	t.Run("successful receipt", func(t *testing.T) {
		backend := &fakeDeployBackend{receipt: &types.Receipt{
			Status:      types.ReceiptStatusSuccessful,
			TxHash:      tx.Hash(),
			BlockNumber: big.NewInt(100),
			GasUsed:     52000,
		}}

		got, err := WaitMined(context.Background(), backend, tx)

		require.NoError(t, err)
		assert.Equal(t, tx.Hash().Hex(), got.Hash)
		assert.Equal(t, uint64(100), got.BlockNumber)
		assert.Equal(t, uint64(52000), got.GasUsed)
	})

	t.Run("reverted receipt", func(t *testing.T) {
		backend := &fakeDeployBackend{receipt: &types.Receipt{
			Status:      types.ReceiptStatusFailed,
			TxHash:      tx.Hash(),
			BlockNumber: big.NewInt(101),
		}}

		got, err := WaitMined(context.Background(), backend, tx)

		require.ErrorIs(t, err, domain.ErrTransactionFailed)
		assert.Equal(t, uint64(101), got.BlockNumber)
	})

	t.Run("context cancelled while pending", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err := WaitMined(ctx, &fakeDeployBackend{}, tx)

		require.Error(t, err)
		assert.True(t, errors.Is(err, context.DeadlineExceeded))
	})
}
