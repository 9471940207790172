package handler

import (
	"net/http"

	"github.com/bulbacards/packmint/internal/logger"
	"github.com/bulbacards/packmint/internal/mint"
)

// HandleGetCollectionStats returns supply, minted and burned pack counts
// @Summary Collection stats
// @Description Figures that cannot be read fall back to configured defaults
// @Tags collection
// @Produce json
// @Success 200 {object} StatsResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/collection/stats [get]
func HandleGetCollectionStats(svc mint.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.Stats(r.Context())
		if err != nil {
			respondServiceError(w, r, "Collection stats", err)
			return
		}

		logger.FromContext(r.Context()).Debug(LogMsgStatsRetrieved,
			"total_supply", stats.TotalSupply, "total_minted", stats.TotalMinted, "burned", stats.BurnedPacks)

		respondJSON(w, http.StatusOK, StatsResponse{
			CollectionStats: stats,
			Remaining:       stats.Remaining(),
			Unopened:        stats.Unopened(),
		})
	}
}
