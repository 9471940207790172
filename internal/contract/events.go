package contract

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"

	"github.com/bulbacards/packmint/internal/domain"
	"github.com/bulbacards/packmint/internal/metrics"
)

// TransferSingle is the ERC-1155 single-transfer event.
type TransferSingle struct {
	Operator common.Address
	From     common.Address
	To       common.Address
	Id       *big.Int
	Value    *big.Int
}

// BurnedPacks counts TransferSingle events from fromBlock onwards that sent a
// pack id to the zero address. Each event counts once regardless of value.
func (c *PackContract) BurnedPacks(ctx context.Context, fromBlock *big.Int) (uint64, error) {
	if c.filterer == nil {
		return 0, fmt.Errorf("%w: no log filterer configured", domain.ErrContractRead)
	}

	event := c.abi.Events[EventTransferSingle]
	query := ethereum.FilterQuery{
		FromBlock: fromBlock,
		Addresses: []common.Address{c.address},
		Topics: [][]common.Hash{
			{event.ID},
			nil,
			nil,
			{common.Hash{}}, // to == zero address
		},
	}

	start := time.Now()
	logs, err := c.filterer.FilterLogs(ctx, query)
	metrics.ObserveContractCall(EventTransferSingle, start, err)
	if err != nil {
		return 0, fmt.Errorf("%w: filter %s: %v", domain.ErrContractRead, EventTransferSingle, err)
	}

	var burned uint64
	for _, l := range logs {
		var ev TransferSingle
		if err := c.contract.UnpackLog(&ev, EventTransferSingle, l); err != nil {
			return 0, fmt.Errorf("%w: unpack %s: %v", domain.ErrContractRead, EventTransferSingle, err)
		}
		if ev.To != (common.Address{}) || !ev.Id.IsUint64() || !domain.IsPackID(ev.Id.Uint64()) {
			continue
		}
		burned++
	}
	return burned, nil
}
