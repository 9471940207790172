package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bulbacards/packmint/internal/domain"
	"github.com/bulbacards/packmint/internal/handler"
	"github.com/bulbacards/packmint/internal/mint"
)

const (
	testAPIKey  = "test-key"
	testAddress = "0x2222222222222222222222222222222222222222"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) (uint64, error) { return 42, nil }

func newTestServer(t *testing.T) (*Server, *mint.MockService) {
	t.Helper()
	svc := new(mint.MockService)
	srv := NewServer(Options{
		Port:         0,
		APIKey:       testAPIKey,
		Chain:        stubPinger{},
		Mint:         svc,
		ClientConfig: handler.NewClientConfig(domain.PulseChainID, "0x9999999999999999999999999999999999999999", ""),
	})
	return srv, svc
}

func do(srv *Server, method, path, body string, authed bool) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if authed {
		req.Header.Set(HeaderAPIKey, testAPIKey)
	}
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestServer_PublicRoutes(t *testing.T) {
	srv, _ := newTestServer(t)

	for _, path := range []string{"/healthz", "/readyz", "/version", "/api/v1/config", "/metrics"} {
		t.Run(path, func(t *testing.T) {
			rec := do(srv, http.MethodGet, path, "", false)
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestServer_ProtectedRoutesNeedKey(t *testing.T) {
	srv, svc := newTestServer(t)

	rec := do(srv, http.MethodGet, "/api/v1/collection/stats", "", false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	svc.AssertNotCalled(t, "Stats", mock.Anything)
}

func TestServer_RoutesReachHandlers(t *testing.T) {
	srv, svc := newTestServer(t)
	svc.On("Stats", mock.Anything).Return(domain.CollectionStats{TotalSupply: 222}, nil)
	svc.On("Packs", mock.Anything, testAddress).Return([]domain.Token{}, nil)
	svc.On("Eligibility", mock.Anything, testAddress).Return(domain.Allowance(domain.TierPublic), nil)
	svc.On("PrepareOpen", mock.Anything, testAddress, []uint64{1}).Return(domain.PreparedTx{}, domain.ErrPackNotOwned)

	rec := do(srv, http.MethodGet, "/api/v1/collection/stats", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_supply":222`)

	rec = do(srv, http.MethodGet, "/api/v1/holders/"+testAddress+"/packs", "", true)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(srv, http.MethodGet, "/api/v1/holders/"+testAddress+"/eligibility", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"tier":"public"`)

	rec = do(srv, http.MethodPost, "/api/v1/packs/open/prepare", `{"address":"`+testAddress+`","pack_ids":[1]}`, true)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	svc.AssertExpectations(t)
}

func TestServer_AdminMetrics(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := do(srv, http.MethodGet, "/api/v1/admin/metrics", "", false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(srv, http.MethodGet, "/api/v1/admin/metrics", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"requests_total_by_status"`)
}

func TestServer_UnknownRoute(t *testing.T) {
	srv, _ := newTestServer(t)
	rec := do(srv, http.MethodGet, "/api/v1/nope", "", true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
