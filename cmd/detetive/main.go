package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/detetive-digital/detetive/pkg/api"
	"github.com/detetive-digital/detetive/pkg/catalog"
	"github.com/detetive-digital/detetive/pkg/config"
	"github.com/detetive-digital/detetive/pkg/gemini"
	"github.com/detetive-digital/detetive/pkg/scan"
)

func main() {
	cfg := config.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stderr)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cat, err := catalog.LoadFile(cfg.CatalogPath)
	if err != nil {
		log.WithError(err).Fatal("failed to load catalog")
	}

	// Optional Postgres blocked-domain source, read once at startup.
	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			log.WithError(err).Fatal("failed to connect to Postgres")
		}
		domains, err := catalog.LoadBlockedDomains(ctx, pool)
		pool.Close()
		if err != nil {
			log.WithError(err).Fatal("failed to load blocked domains")
		}
		cat = cat.Merge(domains)
		log.WithField("count", len(domains)).Info("blocked domains merged from Postgres")
	}

	analyzer := scan.NewAnalyzer(cat)

	var opts []gemini.Option
	if cfg.GeminiModel != "" {
		opts = append(opts, gemini.WithModel(cfg.GeminiModel))
	}
	opts = append(opts, gemini.WithTimeout(cfg.GeminiTimeout))
	classifier := gemini.NewClient(cfg.GeminiAPIKey, opts...)
	if !classifier.IsAvailable() {
		log.Info("GEMINI_API_KEY not set, running with local analysis only")
	}

	pipeline := scan.NewPipeline(analyzer, classifier, log)

	var limiter *api.RateLimiter
	if cfg.RedisAddr != "" {
		// Short dial timeout and no retries: when Redis is down the limiter
		// fails open without stalling every request on reconnect attempts.
		rdb := redis.NewClient(&redis.Options{
			Addr:        cfg.RedisAddr,
			DialTimeout: 500 * time.Millisecond,
			MaxRetries:  -1,
		})
		limiter = api.NewRateLimiter(rdb, cfg.RateLimit, cfg.RateWindow, log)
	}

	srv := api.New(pipeline, limiter, log)
	app := srv.App()

	errCh := make(chan error, 1)
	go func() { errCh <- app.Listen(cfg.ListenAddr) }()
	log.WithField("addr", cfg.ListenAddr).Info("listening")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		log.WithField("signal", sig.String()).Info("shutting down")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.WithError(err).Error("shutdown error")
		}
	case err := <-errCh:
		log.WithError(err).Fatal("server error")
	}
}
