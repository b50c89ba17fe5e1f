package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jbeshir/feed-ranking/internal/app"
	"github.com/jbeshir/feed-ranking/internal/command"
	"github.com/jbeshir/feed-ranking/internal/domain"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Setup logger
	logLevel := slog.LevelInfo
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		if err := logLevel.UnmarshalText([]byte(lvl)); err != nil {
			fmt.Fprintf(os.Stderr, "invalid LOG_LEVEL: %s\n", lvl)
			os.Exit(1)
		}
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	ctx = domain.ContextWithLogger(ctx, logger)

	if err := run(ctx); err != nil {
		logger.ErrorContext(ctx, "cache warming failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	content, _, err := app.SetupRepositories(ctx)
	if err != nil {
		return fmt.Errorf("setting up repositories: %w", err)
	}

	// Background components such as the in-process sweeper are not started;
	// warming an in-process cache only makes sense for local testing.
	resultCache, _, err := app.SetupResultCache(ctx)
	if err != nil {
		return fmt.Errorf("setting up cache: %w", err)
	}

	warmCmd := command.NewWarmCache(
		content,
		resultCache,
		app.DefaultCachePolicies(ctx),
		app.DefaultEngineConfig(ctx),
		app.DefaultWarmCacheConfig(ctx),
	)

	_, err = warmCmd.Execute(ctx, command.WarmCacheRequest{})
	return err
}
