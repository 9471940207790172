package handler

import (
	"net/http"

	"github.com/bulbacards/packmint/internal/domain"
)

// TokenRange is an inclusive id range.
type TokenRange struct {
	Min uint64 `json:"min"`
	Max uint64 `json:"max"`
}

// ClientConfig is what a browser dApp needs to connect its wallet.
type ClientConfig struct {
	ChainID                int64      `json:"chain_id"`
	ContractAddress        string     `json:"contract_address"`
	WalletConnectProjectID string     `json:"walletconnect_project_id,omitempty"`
	NativeSymbol           string     `json:"native_symbol"`
	NativeDecimals         int        `json:"native_decimals"`
	CardsPerPack           int        `json:"cards_per_pack"`
	MaxMintAmount          int        `json:"max_mint_amount"`
	Packs                  TokenRange `json:"packs"`
	Cards                  TokenRange `json:"cards"`
}

// NewClientConfig fills in the fixed collection constants.
func NewClientConfig(chainID int64, contractAddress, walletConnectProjectID string) ClientConfig {
	return ClientConfig{
		ChainID:                chainID,
		ContractAddress:        contractAddress,
		WalletConnectProjectID: walletConnectProjectID,
		NativeSymbol:           domain.NativeSymbol,
		NativeDecimals:         domain.NativeDecimals,
		CardsPerPack:           domain.CardsPerPack,
		MaxMintAmount:          domain.MaxMintAmount,
		Packs:                  TokenRange{Min: domain.PackIDMin, Max: domain.PackIDMax},
		Cards:                  TokenRange{Min: domain.CardIDMin, Max: domain.CardIDMax},
	}
}

// HandleGetConfig returns the public client configuration
// @Summary Client configuration
// @Description Chain id, contract address and token ranges for wallet front-ends
// @Tags config
// @Produce json
// @Success 200 {object} ClientConfig
// @Router /api/v1/config [get]
func HandleGetConfig(cfg ClientConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, cfg)
	}
}
