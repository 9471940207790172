// Package bootstrap assembles the chain-backed services shared by the API
// server and the operator CLI.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/bulbacards/packmint/internal/chain"
	"github.com/bulbacards/packmint/internal/config"
	"github.com/bulbacards/packmint/internal/contract"
	"github.com/bulbacards/packmint/internal/domain"
	"github.com/bulbacards/packmint/internal/eligibility"
	"github.com/bulbacards/packmint/internal/metadata"
	"github.com/bulbacards/packmint/internal/mint"
	"github.com/bulbacards/packmint/internal/scan"
)

// Services holds the wired components. Close releases the RPC connection.
type Services struct {
	Chain    *chain.Client
	Contract *contract.PackContract
	Scanner  *scan.Scanner
	Mint     mint.Service
}

// Close releases the chain connection.
func (s *Services) Close() {
	if s.Chain != nil {
		s.Chain.Close()
		slog.Debug(LogMsgChainClosed)
	}
}

// BuildServices dials the chain and wires contract, metadata, scanner,
// eligibility and mint services. signer may be nil for read-only use.
func BuildServices(ctx context.Context, cfg *config.ChainConfig, signer *bind.TransactOpts) (*Services, error) {
	client, err := chain.Dial(ctx, cfg.RPCURL, cfg.ChainID)
	if err != nil {
		return nil, err
	}

	svcs, err := wire(client, cfg, signer)
	if err != nil {
		client.Close()
		return nil, err
	}
	return svcs, nil
}

func wire(client *chain.Client, cfg *config.ChainConfig, signer *bind.TransactOpts) (*Services, error) {
	pc, err := contract.NewPackContractFromBackend(common.HexToAddress(cfg.ContractAddress), client.Backend())
	if err != nil {
		return nil, fmt.Errorf("bind pack contract: %w", err)
	}

	fetcher, err := metadata.NewFetcher(pc, &http.Client{Timeout: cfg.MetadataTimeout}, cfg.IPFSGateway, cfg.MetadataCacheSize)
	if err != nil {
		return nil, err
	}

	scanCfg := scan.Config{
		BatchSize:    cfg.ScanBatchSize,
		UseBatchCall: cfg.ScanUseBatchCall,
	}
	if cfg.ScanUsePackIndex {
		scanCfg.Index = pc
	}
	scanner := scan.NewScanner(pc, fetcher, scanCfg)

	elig, err := NewEligibility(cfg, pc)
	if err != nil {
		return nil, err
	}

	var wait mint.ReceiptWaiter
	if signer != nil {
		slog.Info(LogMsgSignerConfigured, "from", signer.From.Hex())
		backend := client.DeployBackend()
		wait = func(ctx context.Context, tx *types.Transaction) (domain.TxReceipt, error) {
			return chain.WaitMined(ctx, backend, tx)
		}
	}

	svc := mint.NewService(pc, elig, scanner, signer, wait, mint.Config{
		ChainID:          cfg.ChainID,
		DefaultMintPrice: cfg.DefaultMintPriceWei,
		DefaultTotal:     domain.TotalPacks,
	})

	return &Services{Chain: client, Contract: pc, Scanner: scanner, Mint: svc}, nil
}

// NewEligibility builds the eligibility service selected by ELIGIBILITY_SOURCE.
func NewEligibility(cfg *config.ChainConfig, counts eligibility.CountReader) (eligibility.Service, error) {
	slog.Info(LogMsgEligibilitySource, "source", cfg.EligibilitySource)

	var list *eligibility.HolderList
	if cfg.UsesStaticList() {
		var err error
		list, err = eligibility.LoadHolderList(cfg.HoldersFile)
		if err != nil {
			return nil, err
		}
		whales, holders := list.Len()
		slog.Info(LogMsgHoldersLoaded, "path", cfg.HoldersFile, "whales", whales, "holders", holders)
	}

	switch cfg.EligibilitySource {
	case config.EligibilitySourceStatic:
		return eligibility.NewStaticService(list), nil
	case config.EligibilitySourceCombined:
		return eligibility.NewCombinedService(list, counts), nil
	default:
		return eligibility.NewContractService(counts), nil
	}
}
