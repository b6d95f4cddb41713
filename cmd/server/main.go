package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/kihyunnn/Texas-holdem/internal/api"
	"github.com/kihyunnn/Texas-holdem/internal/config"
	"github.com/kihyunnn/Texas-holdem/internal/factory"
	"github.com/kihyunnn/Texas-holdem/internal/services/insight"
	redisstorage "github.com/kihyunnn/Texas-holdem/internal/storage/redis"
)

func main() {
	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := config.LoadDotEnv(".env"); err != nil {
		logger.Warn("could not load .env file", slog.String("error", err.Error()))
	}
	cfg := config.Load()

	// Build factory config from environment
	factoryCfg := factory.Config{
		Logger:         logger,
		StorageType:    cfg.StorageType,
		InsightTimeout: cfg.InsightTimeout,
	}

	if cfg.StorageType == factory.StorageTypeRedis {
		if cfg.RedisURL == "" {
			logger.Error("REDIS_URL required when STORAGE_TYPE=redis")
			os.Exit(1)
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		factoryCfg.RedisConfig = &redisCfg
	}

	// Wire the AI summarizer when an API key is configured
	if cfg.OpenAIAPIKey != "" {
		summarizer, err := insight.NewOpenAISummarizer(insight.OpenAIConfig{
			APIKey: cfg.OpenAIAPIKey,
			Model:  cfg.OpenAIModel,
		})
		if err != nil {
			logger.Error("failed to create summarizer", slog.String("error", err.Error()))
			os.Exit(1)
		}
		factoryCfg.Summarizer = summarizer
	} else {
		logger.Info("OPENAI_API_KEY not set, AI insights disabled")
	}

	// Create application factory
	app, err := factory.New(factoryCfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Create API router
	router := api.NewRouter(api.RouterConfig{
		Logger:             logger,
		PlayerService:      app.PlayerService,
		GameService:        app.GameService,
		StatsService:       app.StatsService,
		RivalryService:     app.RivalryService,
		AchievementService: app.AchievementService,
		Composer:           app.Composer,
	})

	serverCfg := api.DefaultServerConfig()
	serverCfg.Host = cfg.Host
	serverCfg.Port = cfg.Port
	server := api.NewServer(router, serverCfg, logger)

	// Run until interrupted
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case sig := <-sigCh:
		logger.Info("received signal", slog.String("signal", sig.String()))
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}
}
