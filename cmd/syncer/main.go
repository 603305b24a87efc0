package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"podcast_tracker/internal/config"
	"podcast_tracker/internal/publisher"
	"podcast_tracker/internal/scheduler"
	"podcast_tracker/internal/service"
	"podcast_tracker/internal/source/pocketcasts"
	"podcast_tracker/internal/source/rss"
	"podcast_tracker/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	importPath := flag.String("import", "", "import a mobile-app export database and exit")
	cleanup := flag.Bool("cleanup", false, "remove duplicate podcasts and exit")
	merge := flag.Bool("merge", false, "merge duplicate episodes and exit")
	subscribeURL := flag.String("subscribe", "", "subscribe to a feed URL and exit")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	podcastStore := postgres.NewPodcastStore(db)
	episodeStore := postgres.NewEpisodeStore(db)
	historyStore := postgres.NewListeningHistoryStore(db)
	sessionStore := postgres.NewPlaySessionStore(db)
	syncLogStore := postgres.NewSyncLogStore(db)
	txManager := postgres.NewTransactionManager(db)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	switch {
	case *cleanup:
		cleanupService := service.NewCleanupService(podcastStore, txManager, logger, cfg.Sync.SkipTitleFallback)
		report, err := cleanupService.RemoveDuplicatePodcasts(ctx)
		if err != nil {
			logger.Error("duplicate podcast cleanup failed", "error", err)
			os.Exit(1)
		}
		logger.Info("cleanup done", "deleted", report.DeletedCount, "titles", report.DeletedTitles)
		return

	case *merge:
		mergeService := service.NewMergeService(
			episodeStore, historyStore, sessionStore, txManager, logger, cfg.Sync.PublishedTolerance,
		)
		report, err := mergeService.MergeDuplicateEpisodes(ctx)
		if err != nil {
			logger.Error("duplicate episode merge failed", "error", err)
			os.Exit(1)
		}
		logger.Info("merge done",
			"podcasts", report.PodcastsProcessed,
			"groups", report.DuplicateGroupsFound,
			"removed", report.EpisodesRemoved,
		)
		return
	}

	rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
		QueueName:  cfg.RabbitMQ.QueueName,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer rabbitMQ.Close()

	fetcher := rss.New(rss.Config{
		Timeout:        cfg.Feed.Timeout,
		MaxAttempts:    cfg.Feed.Retry.MaxAttempts,
		InitialBackoff: cfg.Feed.Retry.InitialBackoff,
		MaxBackoff:     cfg.Feed.Retry.MaxBackoff,
	}, logger)

	syncService := service.NewSyncService(
		podcastStore,
		episodeStore,
		historyStore,
		syncLogStore,
		txManager,
		fetcher,
		rabbitMQ,
		logger,
		cfg.Sync,
	)

	if *importPath != "" {
		runImport(ctx, syncService, *importPath, logger)
		return
	}

	if *subscribeURL != "" {
		report, err := syncService.Subscribe(ctx, *subscribeURL)
		if err != nil {
			logger.Error("subscribe failed", "feed_url", *subscribeURL, "error", err)
			os.Exit(1)
		}
		logger.Info("subscribe done",
			"podcasts_added", report.PodcastsAdded,
			"episodes_added", report.EpisodesAdded,
		)
		return
	}

	sched := scheduler.NewScheduler(syncService, cfg.Sync.Interval, logger)

	logger.Info("starting podcast syncer", "interval", cfg.Sync.Interval)

	if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}
}

func runImport(ctx context.Context, syncService *service.SyncService, path string, logger *slog.Logger) {
	reader, err := pocketcasts.Open(path)
	if err != nil {
		logger.Error("failed to open export", "path", path, "error", err)
		os.Exit(1)
	}
	defer reader.Close()

	report, err := syncService.ImportExport(ctx, reader)
	if err != nil {
		logger.Error("import failed", "error", err)
		os.Exit(1)
	}

	logger.Info("import done",
		"podcasts_added", report.PodcastsAdded,
		"podcasts_updated", report.PodcastsUpdated,
		"episodes_added", report.EpisodesAdded,
		"episodes_updated", report.EpisodesUpdated,
		"conflicts", report.ConflictsCount,
		"errors", len(report.Errors),
	)
	for _, msg := range report.Errors {
		logger.Warn("import error", "detail", msg)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
