package handler

import (
	"context"
	"net/http"

	"github.com/bulbacards/packmint/internal/domain"
	"github.com/bulbacards/packmint/internal/logger"
	"github.com/bulbacards/packmint/internal/mint"
)

// HandleGetEligibility returns the tier and remaining free/discounted packs
// @Summary Holder eligibility
// @Tags holders
// @Produce json
// @Param address path string true "Wallet address"
// @Success 200 {object} EligibilityResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/holders/{address}/eligibility [get]
func HandleGetEligibility(svc mint.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		address, ok := GetAddressParam(r, w)
		if !ok {
			return
		}

		elig, err := svc.Eligibility(r.Context(), address)
		if err != nil {
			respondServiceError(w, r, "Eligibility", err)
			return
		}

		respondJSON(w, http.StatusOK, EligibilityResponse{Address: address, HolderEligibility: elig})
	}
}

// HandleGetPacks lists the unopened packs held by an address
// @Summary Owned packs
// @Tags holders
// @Produce json
// @Param address path string true "Wallet address"
// @Success 200 {object} TokensResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/holders/{address}/packs [get]
func HandleGetPacks(svc mint.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handleListTokens(w, r, svc.Packs, domain.KindPack)
	}
}

// HandleGetCards lists the cards held by an address
// @Summary Owned cards
// @Tags holders
// @Produce json
// @Param address path string true "Wallet address"
// @Success 200 {object} TokensResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/holders/{address}/cards [get]
func HandleGetCards(svc mint.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handleListTokens(w, r, svc.Cards, domain.KindCard)
	}
}

func handleListTokens(w http.ResponseWriter, r *http.Request, list func(context.Context, string) ([]domain.Token, error), kind domain.TokenKind) {
	address, ok := GetAddressParam(r, w)
	if !ok {
		return
	}

	tokens, err := list(r.Context(), address)
	if err != nil {
		respondServiceError(w, r, "List "+string(kind)+"s", err)
		return
	}
	if tokens == nil {
		tokens = []domain.Token{}
	}

	logger.FromContext(r.Context()).Info(LogMsgTokensListed, "kind", kind, "address", address, "count", len(tokens))

	respondJSON(w, http.StatusOK, TokensResponse{Address: address, Count: len(tokens), Tokens: tokens})
}
