package handler

import (
	"net/http"

	"github.com/kihyunnn/Texas-holdem/internal/api/response"
	"github.com/kihyunnn/Texas-holdem/internal/model"
	"github.com/kihyunnn/Texas-holdem/internal/services/rivalry"
)

// RivalryHandler handles the head-to-head comparison endpoint
type RivalryHandler struct {
	rivalryService *rivalry.Service
}

// NewRivalryHandler creates a new rivalry handler
func NewRivalryHandler(rivalryService *rivalry.Service) *RivalryHandler {
	return &RivalryHandler{rivalryService: rivalryService}
}

// Compare handles GET /api/v1/rivalry
func (h *RivalryHandler) Compare(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	p1 := q.Get("player1")
	p2 := q.Get("player2")
	if p1 == "" || p2 == "" {
		WriteError(w, NewInvalidRequestError("player1 and player2 are required"))
		return
	}

	f, err := filterFromQuery(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	result, err := h.rivalryService.Compare(r.Context(), model.PlayerID(p1), model.PlayerID(p2), f)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RivalryFromModel(result))
}
