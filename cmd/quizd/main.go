package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/quizd/quizd/internal/cache"
	"github.com/quizd/quizd/internal/config"
	mcpserver "github.com/quizd/quizd/internal/mcp"
	"github.com/quizd/quizd/internal/provider"
	"github.com/quizd/quizd/internal/resolver"
	"github.com/quizd/quizd/internal/server"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	flag.Parse()

	logger := setupLogger()

	// Check mode (HTTP or MCP stdio)
	mode := os.Getenv("MODE")
	if mode == "" {
		mode = "http"
	}

	logger.Info().
		Str("config", *configPath).
		Str("mode", mode).
		Msg("Starting quizd")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	store, err := cache.Open(cfg.Cache.Path)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to open answer cache")
	}
	defer store.Close()

	// The dispatcher re-reads the AI section on every Load, so edits to the
	// config file take effect on the next provider swap.
	dispatcher := provider.NewDispatcher(func() (*provider.Config, error) {
		current, err := config.Load(*configPath)
		if err != nil {
			return nil, err
		}
		return &current.AI, nil
	}, logger)

	if err := dispatcher.Load(); err != nil {
		logger.Fatal().Err(err).Msg("Failed to load provider")
	}
	defer dispatcher.Unload()

	logger.Info().
		Str("provider", dispatcher.ActiveName()).
		Str("cache", cfg.Cache.Path).
		Msg("Resolution pipeline ready")

	res := resolver.New(dispatcher, store, logger)

	switch mode {
	case "http":
		srv := server.New(res, dispatcher, store, cfg.Network, logger)
		if err := srv.Start(); err != nil {
			logger.Fatal().Err(err).Msg("Server failed")
		}

	case "mcp":
		mcpSrv, err := mcpserver.New(res, logger)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to create MCP server")
		}
		if err := mcpSrv.ServeStdio(context.Background()); err != nil {
			logger.Fatal().Err(err).Msg("MCP server failed")
		}

	default:
		logger.Fatal().Str("mode", mode).Msg("Unknown mode. Use 'http' or 'mcp'")
	}
}

// setupLogger configures zerolog
func setupLogger() zerolog.Logger {
	// Pretty console output
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}

	logger := zerolog.New(output).
		With().
		Timestamp().
		Logger()

	// Set log level from environment
	logLevel := os.Getenv("LOG_LEVEL")
	switch logLevel {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	return logger
}
