package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gistmaker/internal/cli"
	"gistmaker/internal/config"
	"gistmaker/internal/database"
	"gistmaker/internal/inference"
	"gistmaker/internal/markdown"
	"gistmaker/internal/summarizer"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)

		return 1
	}

	log := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(log)

	start := time.Now()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	engine, err := inference.NewOpenAIEngine(inference.OpenAIConfig{
		BaseURL:    cfg.EngineBaseURL,
		APIKey:     cfg.EngineAPIKey,
		Model:      cfg.EngineModel,
		MaxRetries: cfg.EngineMaxRetries,
	}, log)
	if err != nil {
		log.ErrorContext(ctx, "Failed to create inference engine",
			"error", err,
			"baseURL", cfg.EngineBaseURL,
			"model", cfg.EngineModel)

		return 1
	}
	defer func() {
		if err = engine.Close(); err != nil {
			log.ErrorContext(ctx, "Failed to close inference engine",
				"error", err)
		}
	}()
	log.InfoContext(ctx, "Inference engine is initialized",
		"baseURL", cfg.EngineBaseURL,
		"model", cfg.EngineModel)

	cache, closeCache := initCache(ctx, cfg, log)
	defer closeCache()

	s := summarizer.New(engine, summarizer.Options{
		Cache:    cache,
		CacheTTL: cfg.CacheTTL,
	}, log)

	app := cli.New(s, markdown.NewFormatter(cfg.ModelDisplayName), cli.Options{
		ModelName: cfg.ModelFamily,
		In:        os.Stdin,
		Out:       os.Stdout,
	}, log)

	if err = app.Run(ctx, os.Args[1:]); err != nil {
		log.ErrorContext(ctx, "Failed to write console output",
			"error", err)

		return 1
	}

	log.InfoContext(ctx, "Exiting...",
		"uptimeSeconds", time.Since(start).Seconds())

	return 0
}

// initCache never fails the run; a broken cache backend degrades to no
// cache.
func initCache(ctx context.Context, cfg config.Config, log *slog.Logger) (summarizer.Cache, func()) {
	noop := func() {}

	switch cfg.CacheBackend {
	case config.CacheBackendOff:
		log.InfoContext(ctx, "Summary cache is disabled")

		return nil, noop
	case config.CacheBackendSQLite:
		db, err := database.New(ctx, cfg.DBPath, log)
		if err != nil {
			log.WarnContext(ctx, "Failed to initialize cache DB so cache is disabled",
				"error", err,
				"dbPath", cfg.DBPath)

			return nil, noop
		}
		log.InfoContext(ctx, "Cache DB is initialized",
			"dbPath", cfg.DBPath)

		return db, func() {
			if err = db.Close(); err != nil {
				log.ErrorContext(ctx, "Failed to close cache DB",
					"error", err,
					"dbPath", cfg.DBPath)
			}
		}
	default:
		cache := summarizer.NewMemoryCache(cfg.CacheMaxEntries)
		if cache == nil {
			return nil, noop
		}
		log.InfoContext(ctx, "Memory cache is initialized",
			"maxEntries", cfg.CacheMaxEntries)

		return cache, noop
	}
}
