package contract

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// fakeChain answers eth_call by decoding the selector and ABI-packing
// whatever the registered handler returns.
type fakeChain struct {
	abi abi.ABI

	mu        sync.Mutex
	handlers  map[string]func(args []interface{}) ([]interface{}, error)
	calls     map[string]int
	logs      []types.Log
	lastQuery ethereum.FilterQuery
	filterErr error
}

func newFakeChain() *fakeChain {
	parsed, err := abi.JSON(strings.NewReader(PackContractABI))
	if err != nil {
		panic(err)
	}
	return &fakeChain{
		abi:      parsed,
		handlers: make(map[string]func([]interface{}) ([]interface{}, error)),
		calls:    make(map[string]int),
	}
}

func (f *fakeChain) on(method string, h func(args []interface{}) ([]interface{}, error)) {
	f.handlers[method] = h
}

func (f *fakeChain) returns(method string, out ...interface{}) {
	f.on(method, func([]interface{}) ([]interface{}, error) { return out, nil })
}

func (f *fakeChain) CodeAt(context.Context, common.Address, *big.Int) ([]byte, error) {
	return []byte{0x60}, nil
}

func (f *fakeChain) CallContract(_ context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	if len(msg.Data) < 4 {
		return nil, errors.New("short calldata")
	}
	method, err := f.abi.MethodById(msg.Data[:4])
	if err != nil {
		return nil, err
	}
	args, err := method.Inputs.Unpack(msg.Data[4:])
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	f.calls[method.Name]++
	h, ok := f.handlers[method.Name]
	f.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("execution reverted: %s not stubbed", method.Name)
	}

	out, err := h(args)
	if err != nil {
		return nil, err
	}
	return method.Outputs.Pack(out...)
}

func (f *fakeChain) FilterLogs(_ context.Context, q ethereum.FilterQuery) ([]types.Log, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastQuery = q
	if f.filterErr != nil {
		return nil, f.filterErr
	}
	return f.logs, nil
}

func (f *fakeChain) SubscribeFilterLogs(context.Context, ethereum.FilterQuery, chan<- types.Log) (ethereum.Subscription, error) {
	return nil, errors.New("subscriptions not supported")
}

// transferLog builds a TransferSingle log as the node would return it.
func (f *fakeChain) transferLog(contract, from, to common.Address, id, value int64) types.Log {
	event := f.abi.Events[EventTransferSingle]
	data, err := event.Inputs.NonIndexed().Pack(big.NewInt(id), big.NewInt(value))
	if err != nil {
		panic(err)
	}
	operator := common.HexToAddress("0x00000000000000000000000000000000000000aa")
	return types.Log{
		Address: contract,
		Topics: []common.Hash{
			event.ID,
			common.BytesToHash(operator.Bytes()),
			common.BytesToHash(from.Bytes()),
			common.BytesToHash(to.Bytes()),
		},
		Data: data,
	}
}
