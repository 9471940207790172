package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

const readinessTimeout = 3 * time.Second

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status      string `json:"status"`
	Message     string `json:"message,omitempty"`
	BlockNumber uint64 `json:"block_number,omitempty"`
}

// ChainPinger reports the latest block of the connected chain.
type ChainPinger interface {
	Ping(ctx context.Context) (uint64, error)
}

// HandleHealthz provides a basic liveness check
// @Summary Liveness check
// @Description Returns OK if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: HealthStatusOK})
	}
}

// HandleReadyz provides a readiness check that validates RPC connectivity
// @Summary Readiness check
// @Description Returns OK if the chain RPC answers with a block number
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func HandleReadyz(chain ChainPinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		block, err := chain.Ping(ctx)
		if err != nil {
			slog.Error(LogMsgReadinessFail, "error", err)
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  HealthStatusUnavailable,
				Message: ErrMsgChainUnreachable,
			})
			return
		}

		respondJSON(w, http.StatusOK, HealthResponse{Status: HealthStatusOK, BlockNumber: block})
	}
}
