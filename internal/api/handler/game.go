package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kihyunnn/Texas-holdem/internal/api/request"
	"github.com/kihyunnn/Texas-holdem/internal/api/response"
	"github.com/kihyunnn/Texas-holdem/internal/model"
	"github.com/kihyunnn/Texas-holdem/internal/services/game"
	"github.com/kihyunnn/Texas-holdem/internal/services/player"
	"github.com/kihyunnn/Texas-holdem/internal/services/stats"
)

const defaultGameListLimit = 20

// GameHandler handles game-related endpoints
type GameHandler struct {
	gameService   *game.Service
	playerService *player.Service
	statsService  *stats.Service
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameService *game.Service, playerService *player.Service, statsService *stats.Service) *GameHandler {
	return &GameHandler{
		gameService:   gameService,
		playerService: playerService,
		statsService:  statsService,
	}
}

// Record handles POST /api/v1/games
func (h *GameHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req request.RecordGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.WinnerID == "" {
		WriteError(w, NewInvalidRequestError("winner_id is required"))
		return
	}
	if req.PotAmount == nil {
		WriteError(w, NewInvalidRequestError("pot_amount is required"))
		return
	}

	in := game.RecordInput{
		WinnerID:    model.PlayerID(req.WinnerID),
		PotAmount:   *req.PotAmount,
		WinningHand: req.WinningHand,
		Notes:       req.Notes,
	}
	for _, p := range req.Participants {
		in.Participants = append(in.Participants, model.Participant{
			PlayerID:  model.PlayerID(p.PlayerID),
			BetAmount: p.BetAmount,
		})
	}

	g, err := h.gameService.Record(r.Context(), in)
	if err != nil {
		WriteError(w, err)
		return
	}

	players, err := h.playerIndex(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, response.GameFromModel(g, players))
}

// List handles GET /api/v1/games
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	f, err := filterFromQuery(r)
	if err != nil {
		WriteError(w, err)
		return
	}
	limit, err := limitFromQuery(r, defaultGameListLimit)
	if err != nil {
		WriteError(w, err)
		return
	}

	games, err := h.statsService.RecentGames(r.Context(), f, limit)
	if err != nil {
		WriteError(w, err)
		return
	}

	players, err := h.playerIndex(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	out := make([]response.Game, len(games))
	for i, g := range games {
		out[i] = response.GameFromModel(g, players)
	}
	response.JSON(w, http.StatusOK, out)
}

// Get handles GET /api/v1/games/{id}. Lookup is by raw record id, so a
// game whose winner has since been deleted still resolves here even though
// the listing and the aggregates no longer carry it.
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	g, err := h.gameService.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	players, err := h.playerIndex(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.GameFromModel(g, players))
}

// Delete handles DELETE /api/v1/games/{id}
func (h *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	if err := h.gameService.Delete(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// playerIndex loads all players keyed by ID for response name resolution
func (h *GameHandler) playerIndex(ctx context.Context) (map[model.PlayerID]*model.Player, error) {
	players, err := h.playerService.List(ctx)
	if err != nil {
		return nil, err
	}
	index := make(map[model.PlayerID]*model.Player, len(players))
	for _, p := range players {
		index[p.ID] = p
	}
	return index, nil
}
