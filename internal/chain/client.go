// Package chain connects to the EVM node and builds transaction signers.
package chain

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/bulbacards/packmint/internal/domain"
	"github.com/bulbacards/packmint/internal/logger"
)

// Client is a node connection pinned to one chain id.
type Client struct {
	eth     *ethclient.Client
	chainID *big.Int
}

// Dial connects to rpcURL and verifies that the node serves expectedChainID.
func Dial(ctx context.Context, rpcURL string, expectedChainID int64) (*Client, error) {
	eth, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", rpcURL, err)
	}

	id, err := eth.ChainID(ctx)
	if err != nil {
		eth.Close()
		return nil, fmt.Errorf("read chain id: %w", err)
	}
	if id.Cmp(big.NewInt(expectedChainID)) != 0 {
		eth.Close()
		return nil, fmt.Errorf("%w: expected %d, node reports %s", domain.ErrChainMismatch, expectedChainID, id)
	}

	logger.FromContext(ctx).Info(LogMsgConnected, "rpc_url", rpcURL, "chain_id", id)
	return &Client{eth: eth, chainID: id}, nil
}

// ChainID returns the verified chain id.
func (c *Client) ChainID() *big.Int {
	return new(big.Int).Set(c.chainID)
}

// Backend exposes the connection for contract bindings.
func (c *Client) Backend() bind.ContractBackend {
	return c.eth
}

// DeployBackend exposes the connection for receipt polling.
func (c *Client) DeployBackend() bind.DeployBackend {
	return c.eth
}

// Ping reads the latest block number. Used by readiness checks.
func (c *Client) Ping(ctx context.Context) (uint64, error) {
	n, err := c.eth.BlockNumber(ctx)
	if err != nil {
		return 0, fmt.Errorf("read block number: %w", err)
	}
	return n, nil
}

// Close releases the RPC connection.
func (c *Client) Close() {
	c.eth.Close()
}
