package handler

import (
	"net/http"

	"github.com/kihyunnn/Texas-holdem/internal/api/response"
	"github.com/kihyunnn/Texas-holdem/internal/services/stats"
)

// StatsHandler handles aggregate stats endpoints
type StatsHandler struct {
	statsService *stats.Service
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsService *stats.Service) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// Leaderboard handles GET /api/v1/leaderboard
func (h *StatsHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	f, err := filterFromQuery(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	board, err := h.statsService.Leaderboard(r.Context(), f)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerStatsFromModel(board))
}

// Session handles GET /api/v1/stats/session
func (h *StatsHandler) Session(w http.ResponseWriter, r *http.Request) {
	session, err := h.statsService.SessionStats(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerStatsFromModel(session))
}

// Trend handles GET /api/v1/stats/trend
func (h *StatsHandler) Trend(w http.ResponseWriter, r *http.Request) {
	f, err := filterFromQuery(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	points, err := h.statsService.Trend(r.Context(), f)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TrendFromModel(points))
}

// Hands handles GET /api/v1/stats/hands
func (h *StatsHandler) Hands(w http.ResponseWriter, r *http.Request) {
	f, err := filterFromQuery(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	hands, err := h.statsService.HandStats(r.Context(), f)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.HandStatsFromModel(hands))
}
