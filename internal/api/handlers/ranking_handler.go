package handlers

import (
	"net/http"

	"github.com/cardcollection-app/cardcollection-backend/internal/api/httputil"
	"github.com/cardcollection-app/cardcollection-backend/internal/logger"
	"github.com/cardcollection-app/cardcollection-backend/internal/services/ranking"
)

// RankingHandler exposes the leaderboard and the catalog stats.
type RankingHandler struct {
	svc *ranking.Service
}

// NewRankingHandler creates a new RankingHandler on top of the engine.
func NewRankingHandler(svc *ranking.Service) *RankingHandler {
	return &RankingHandler{svc: svc}
}

// GetRanking handles GET /api/ranking?period=. Unknown period values fall
// back to "all" silently.
func (h *RankingHandler) GetRanking(w http.ResponseWriter, r *http.Request) {
	period := ranking.ParsePeriod(r.URL.Query().Get("period"))

	result, err := h.svc.ComputeRanking(r.Context(), period)
	if err != nil {
		logger.Error("ranking: could not compute for period %q: %v", period, err)
		httputil.Error(w, http.StatusInternalServerError, "Error al obtener ranking")
		return
	}
	httputil.Success(w, result)
}

// GetStats handles GET /api/stats.
func (h *RankingHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.ComputeStats(r.Context())
	if err != nil {
		logger.Error("stats: could not compute: %v", err)
		httputil.Error(w, http.StatusInternalServerError, "Error al obtener estadísticas")
		return
	}
	httputil.Success(w, stats)
}
