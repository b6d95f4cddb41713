package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kihyunnn/Texas-holdem/internal/api/request"
	"github.com/kihyunnn/Texas-holdem/internal/api/response"
	"github.com/kihyunnn/Texas-holdem/internal/model"
	"github.com/kihyunnn/Texas-holdem/internal/services/achievement"
	"github.com/kihyunnn/Texas-holdem/internal/services/insight"
	"github.com/kihyunnn/Texas-holdem/internal/services/player"
	"github.com/kihyunnn/Texas-holdem/internal/services/stats"
)

// PlayerHandler handles player-related endpoints
type PlayerHandler struct {
	playerService      *player.Service
	statsService       *stats.Service
	achievementService *achievement.Service
	composer           *insight.Composer
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(
	playerService *player.Service,
	statsService *stats.Service,
	achievementService *achievement.Service,
	composer *insight.Composer,
) *PlayerHandler {
	return &PlayerHandler{
		playerService:      playerService,
		statsService:       statsService,
		achievementService: achievementService,
		composer:           composer,
	}
}

// Create handles POST /api/v1/players
func (h *PlayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	p, err := h.playerService.Create(r.Context(), req.Name)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PlayerFromModel(p))
}

// List handles GET /api/v1/players
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	players, err := h.playerService.List(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	out := make([]response.Player, len(players))
	for i, p := range players {
		out[i] = response.PlayerFromModel(p)
	}
	response.JSON(w, http.StatusOK, out)
}

// Get handles GET /api/v1/players/{id}
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	p, err := h.playerService.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(p))
}

// Delete handles DELETE /api/v1/players/{id}
func (h *PlayerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	if err := h.playerService.Delete(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Stats handles GET /api/v1/players/{id}/stats
func (h *PlayerHandler) Stats(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	f, err := filterFromQuery(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	stat, err := h.statsService.PlayerStats(r.Context(), id, f)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerStatFromModel(*stat))
}

// Insight handles GET /api/v1/players/{id}/insight
func (h *PlayerHandler) Insight(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	f, err := filterFromQuery(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	stat, err := h.statsService.PlayerStats(r.Context(), id, f)
	if err != nil {
		WriteError(w, err)
		return
	}

	narrative := h.composer.PlayerNarrative(r.Context(), *stat)
	response.JSON(w, http.StatusOK, response.Insight{Narrative: narrative})
}

// Achievements handles GET /api/v1/players/{id}/achievements
func (h *PlayerHandler) Achievements(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	earned, err := h.achievementService.Evaluate(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AchievementsFromModel(earned))
}
