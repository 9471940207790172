package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bulbacards/packmint/internal/domain"
	"github.com/bulbacards/packmint/internal/mint"
)

// withAddressParam attaches a chi route context carrying {address}.
func withAddressParam(r *http.Request, address string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("address", address)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestHandleGetEligibility(t *testing.T) {
	svc := new(mint.MockService)
	svc.On("Eligibility", mock.Anything, testAddress).Return(domain.Allowance(domain.TierHolder), nil)

	req := withAddressParam(httptest.NewRequest(http.MethodGet, "/api/v1/holders/x/eligibility", nil), testAddress)
	w := httptest.NewRecorder()
	HandleGetEligibility(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp EligibilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, testAddress, resp.Address)
	assert.Equal(t, domain.TierHolder, resp.Tier)
	assert.Equal(t, 5, resp.DiscountedPacks)
	assert.Equal(t, 0, resp.FreePacks)
}

func TestHandleGetEligibility_InvalidAddress(t *testing.T) {
	svc := new(mint.MockService)
	svc.On("Eligibility", mock.Anything, "0xbad").Return(domain.HolderEligibility{}, domain.ErrInvalidAddress)

	req := withAddressParam(httptest.NewRequest(http.MethodGet, "/", nil), "0xbad")
	w := httptest.NewRecorder()
	HandleGetEligibility(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgInvalidAddressError)
}

func TestHandleGetPacks(t *testing.T) {
	svc := new(mint.MockService)
	packs := []domain.Token{
		{ID: 2, Kind: domain.KindPack, Balance: 1, Name: "Pack #2", Image: "https://ipfs.io/ipfs/Qm/2.png"},
		{ID: 17, Kind: domain.KindPack, Balance: 1},
	}
	svc.On("Packs", mock.Anything, testAddress).Return(packs, nil)

	req := withAddressParam(httptest.NewRequest(http.MethodGet, "/", nil), testAddress)
	w := httptest.NewRecorder()
	HandleGetPacks(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp TokensResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, packs, resp.Tokens)
}

func TestHandleGetCards_Empty(t *testing.T) {
	svc := new(mint.MockService)
	svc.On("Cards", mock.Anything, testAddress).Return(nil, nil)

	req := withAddressParam(httptest.NewRequest(http.MethodGet, "/", nil), testAddress)
	w := httptest.NewRecorder()
	HandleGetCards(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"tokens":[]`)
	assert.Contains(t, w.Body.String(), `"count":0`)
}

func TestHandleGetPacks_MissingAddress(t *testing.T) {
	svc := new(mint.MockService)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	HandleGetPacks(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgMissingAddress)
}

func TestHandleGetCollectionStats(t *testing.T) {
	svc := new(mint.MockService)
	svc.On("Stats", mock.Anything).Return(domain.CollectionStats{TotalSupply: 222, TotalMinted: 150, BurnedPacks: 40}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/collection/stats", nil)
	w := httptest.NewRecorder()
	HandleGetCollectionStats(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, uint64(222), resp.TotalSupply)
	assert.Equal(t, uint64(72), resp.Remaining)
	assert.Equal(t, uint64(110), resp.Unopened)
}

func TestHandleGetConfig(t *testing.T) {
	cfg := NewClientConfig(369, "0x9999999999999999999999999999999999999999", "wc-project")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/config", nil)
	w := httptest.NewRecorder()
	HandleGetConfig(cfg).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp ClientConfig
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, cfg, resp)
	assert.Equal(t, TokenRange{Min: 223, Max: 888}, resp.Cards)
}
