package handler

import (
	"net/http"

	"github.com/bulbacards/packmint/internal/logger"
	"github.com/bulbacards/packmint/internal/mint"
)

// PrepareMintRequest asks for an unsigned mintPacks transaction.
type PrepareMintRequest struct {
	Address string `json:"address" validate:"required,eth_addr"`
	Amount  int    `json:"amount" validate:"min=1,mint_amount"`
}

// PrepareOpenRequest asks for an unsigned openPacks transaction.
type PrepareOpenRequest struct {
	Address string   `json:"address" validate:"required,eth_addr"`
	PackIDs []uint64 `json:"pack_ids" validate:"required,min=1,unique,dive,pack_id"`
}

// HandleGetQuote prices a mint for an address
// @Summary Mint quote
// @Description Free packs first, then discounted packs, then full price
// @Tags mint
// @Produce json
// @Param address query string true "Wallet address"
// @Param amount query int true "Number of packs (1-10)"
// @Success 200 {object} QuoteResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/mint/quote [get]
func HandleGetQuote(svc mint.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		address, ok := GetQueryParam(r, w, "address")
		if !ok {
			return
		}
		amount, ok := GetIntQueryParam(r, w, "amount")
		if !ok {
			return
		}

		q, err := svc.Quote(r.Context(), address, amount)
		if err != nil {
			respondServiceError(w, r, "Quote", err)
			return
		}

		respondJSON(w, http.StatusOK, newQuoteResponse(q))
	}
}

// HandlePrepareMint builds the payable mintPacks transaction
// @Summary Prepare mint transaction
// @Tags mint
// @Accept json
// @Produce json
// @Param request body PrepareMintRequest true "Mint request"
// @Success 200 {object} PrepareMintResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/mint/prepare [post]
func HandlePrepareMint(svc mint.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PrepareMintRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Prepare mint"); err != nil {
			return
		}

		q, tx, err := svc.PrepareMint(r.Context(), req.Address, req.Amount)
		if err != nil {
			respondServiceError(w, r, "Prepare mint", err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgMintPrepared,
			"address", req.Address, "amount", req.Amount, "tier", q.Tier, "value", tx.Value.String())

		respondJSON(w, http.StatusOK, PrepareMintResponse{
			Quote: newQuoteResponse(q),
			Tx:    newPreparedTxResponse(tx),
		})
	}
}

// HandlePrepareOpen builds the openPacks transaction for owned packs
// @Summary Prepare open transaction
// @Tags packs
// @Accept json
// @Produce json
// @Param request body PrepareOpenRequest true "Open request"
// @Success 200 {object} PreparedTxResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /api/v1/packs/open/prepare [post]
func HandlePrepareOpen(svc mint.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PrepareOpenRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Prepare open"); err != nil {
			return
		}

		tx, err := svc.PrepareOpen(r.Context(), req.Address, req.PackIDs)
		if err != nil {
			respondServiceError(w, r, "Prepare open", err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgOpenPrepared, "address", req.Address, "packs", len(req.PackIDs))

		respondJSON(w, http.StatusOK, newPreparedTxResponse(tx))
	}
}
