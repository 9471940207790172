package chain

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/bulbacards/packmint/internal/domain"
	"github.com/bulbacards/packmint/internal/logger"
)

// WaitMined blocks until tx is mined and maps a reverted receipt to
// domain.ErrTransactionFailed.
func WaitMined(ctx context.Context, backend bind.DeployBackend, tx *types.Transaction) (domain.TxReceipt, error) {
	log := logger.FromContext(ctx).With("tx", tx.Hash().Hex())
	log.Info(LogMsgWaitingForReceipt)

	receipt, err := bind.WaitMined(ctx, backend, tx)
	if err != nil {
		return domain.TxReceipt{}, fmt.Errorf("wait for %s: %w", tx.Hash().Hex(), err)
	}

	result := domain.TxReceipt{
		Hash:        receipt.TxHash.Hex(),
		BlockNumber: receipt.BlockNumber.Uint64(),
		GasUsed:     receipt.GasUsed,
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		log.Warn(LogMsgTransactionReverted, "block", result.BlockNumber)
		return result, fmt.Errorf("%w: %s reverted in block %d", domain.ErrTransactionFailed, result.Hash, result.BlockNumber)
	}

	log.Info(LogMsgTransactionMined, "block", result.BlockNumber, "gas_used", result.GasUsed)
	return result, nil
}
