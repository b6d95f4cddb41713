package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kihyunnn/Texas-holdem/internal/api/handler"
	"github.com/kihyunnn/Texas-holdem/internal/middleware"
	"github.com/kihyunnn/Texas-holdem/internal/services/achievement"
	"github.com/kihyunnn/Texas-holdem/internal/services/game"
	"github.com/kihyunnn/Texas-holdem/internal/services/insight"
	"github.com/kihyunnn/Texas-holdem/internal/services/player"
	"github.com/kihyunnn/Texas-holdem/internal/services/rivalry"
	"github.com/kihyunnn/Texas-holdem/internal/services/stats"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger             *slog.Logger
	PlayerService      *player.Service
	GameService        *game.Service
	StatsService       *stats.Service
	RivalryService     *rivalry.Service
	AchievementService *achievement.Service
	Composer           *insight.Composer
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	playerHandler := handler.NewPlayerHandler(cfg.PlayerService, cfg.StatsService, cfg.AchievementService, cfg.Composer)
	gameHandler := handler.NewGameHandler(cfg.GameService, cfg.PlayerService, cfg.StatsService)
	statsHandler := handler.NewStatsHandler(cfg.StatsService)
	rivalryHandler := handler.NewRivalryHandler(cfg.RivalryService)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger, middleware.DefaultPanicHandler))
	api.Use(middleware.RequestID())
	api.Use(middleware.Logging(cfg.Logger))

	// Player routes
	api.HandleFunc("/players", playerHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/players", playerHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/players/{id}", playerHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/players/{id}", playerHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/players/{id}/stats", playerHandler.Stats).Methods(http.MethodGet)
	api.HandleFunc("/players/{id}/insight", playerHandler.Insight).Methods(http.MethodGet)
	api.HandleFunc("/players/{id}/achievements", playerHandler.Achievements).Methods(http.MethodGet)

	// Game routes
	api.HandleFunc("/games", gameHandler.Record).Methods(http.MethodPost)
	api.HandleFunc("/games", gameHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/games/{id}", gameHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/games/{id}", gameHandler.Delete).Methods(http.MethodDelete)

	// Aggregation routes
	api.HandleFunc("/leaderboard", statsHandler.Leaderboard).Methods(http.MethodGet)
	api.HandleFunc("/stats/session", statsHandler.Session).Methods(http.MethodGet)
	api.HandleFunc("/stats/trend", statsHandler.Trend).Methods(http.MethodGet)
	api.HandleFunc("/stats/hands", statsHandler.Hands).Methods(http.MethodGet)
	api.HandleFunc("/rivalry", rivalryHandler.Compare).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
