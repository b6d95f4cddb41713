package factory

import (
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/kihyunnn/Texas-holdem/internal/dependencies/clock"
	"github.com/kihyunnn/Texas-holdem/internal/dependencies/random"
	"github.com/kihyunnn/Texas-holdem/internal/services/achievement"
	"github.com/kihyunnn/Texas-holdem/internal/services/game"
	"github.com/kihyunnn/Texas-holdem/internal/services/insight"
	"github.com/kihyunnn/Texas-holdem/internal/services/player"
	"github.com/kihyunnn/Texas-holdem/internal/services/rivalry"
	"github.com/kihyunnn/Texas-holdem/internal/services/stats"
	"github.com/kihyunnn/Texas-holdem/internal/storage"
	"github.com/kihyunnn/Texas-holdem/internal/storage/memory"
	redisstorage "github.com/kihyunnn/Texas-holdem/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	Composer           *insight.Composer
	PlayerService      *player.Service
	GameService        *game.Service
	StatsService       *stats.Service
	RivalryService     *rivalry.Service
	AchievementService *achievement.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// Summarizer provides AI commentary (optional)
	// If nil, insight generation is disabled
	Summarizer insight.Summarizer
	// InsightTimeout bounds a single summarizer call (optional)
	InsightTimeout time.Duration
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	return newWithDependencies(store, clk, rnd, cfg.Summarizer, cfg.InsightTimeout, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, summarizer insight.Summarizer, insightTimeout time.Duration, logger *slog.Logger) *App {
	composer := insight.NewComposer(summarizer, insightTimeout, logger)

	playerService := player.New(store, clk, rnd, logger)
	statsService := stats.New(store, clk, logger)
	gameService := game.New(store, clk, rnd, composer, logger)
	rivalryService := rivalry.New(store, statsService, composer, logger)
	achievementService := achievement.New(store, logger)

	return &App{
		Storage:            store,
		Clock:              clk,
		Random:             rnd,
		Composer:           composer,
		PlayerService:      playerService,
		GameService:        gameService,
		StatsService:       statsService,
		RivalryService:     rivalryService,
		AchievementService: achievementService,
	}
}
