// Package main provides the campus chatbot server entry point.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/campustrack/chatbot-go/internal/api"
	"github.com/campustrack/chatbot-go/internal/backup"
	"github.com/campustrack/chatbot-go/internal/buildinfo"
	"github.com/campustrack/chatbot-go/internal/chatbot"
	"github.com/campustrack/chatbot-go/internal/config"
	"github.com/campustrack/chatbot-go/internal/genai"
	"github.com/campustrack/chatbot-go/internal/intent"
	"github.com/campustrack/chatbot-go/internal/logger"
	"github.com/campustrack/chatbot-go/internal/metrics"
	"github.com/campustrack/chatbot-go/internal/rag"
	"github.com/campustrack/chatbot-go/internal/sentry"
	"github.com/campustrack/chatbot-go/internal/storage"
	"github.com/campustrack/chatbot-go/internal/warmup"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger (with optional Better Stack log shipping)
	log := logger.NewWithOptions(cfg.LogLevel, os.Stdout, logger.Options{
		BetterStackToken:    cfg.BetterStackToken,
		BetterStackEndpoint: cfg.BetterStackEndpoint,
	})
	log.WithField("version", buildinfo.Version).
		WithField("commit", buildinfo.Commit).
		Info("Starting campus chatbot server")

	// Initialize error tracking (no-op when no token is configured)
	if err := sentry.Initialize(sentry.Config{
		Token:       cfg.SentryToken,
		Host:        cfg.SentryHost,
		Environment: cfg.SentryEnvironment,
		Release:     buildinfo.Version,
		SampleRate:  cfg.SentrySampleRate,
	}); err != nil {
		log.WithError(err).Warn("Failed to initialize error tracking")
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		log.WithError(err).Error("Failed to create data directory")
		os.Exit(1)
	}

	// Create Prometheus registry
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	registry.MustRegister(collectors.NewBuildInfoCollector())

	m := metrics.New(registry)
	log.Info("Metrics initialized")

	// Restore the database from the latest remote snapshot when the local
	// file is missing (fresh disk after a redeploy)
	var backupClient *backup.Client
	var backupManager *backup.Manager
	if cfg.Backup.Enabled {
		backupClient, err = backup.NewClient(context.Background(), cfg.Backup)
		if err != nil {
			log.WithError(err).Error("Failed to create backup storage client")
			os.Exit(1)
		}
		backupManager = backup.NewManager(backupClient, cfg.Backup, m, log)
		if err := backupManager.RestoreIfMissing(context.Background(), cfg.SQLitePath()); err != nil {
			log.WithError(err).Warn("Snapshot restore failed, starting with an empty database")
		}
	}

	// Connect to database
	db, err := storage.New(context.Background(), cfg.SQLitePath())
	if err != nil {
		log.WithError(err).Error("Failed to connect to database")
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()
	log.WithField("path", cfg.SQLitePath()).Info("Database connected")

	// Create vector database for semantic matching (optional, needs an
	// embedding provider API key)
	var vectorDB *rag.VectorDB
	if cfg.HasEmbeddingProvider() {
		embedFunc := genai.NewEmbeddingFunc(cfg, m, log)
		vectorDB, err = rag.NewVectorDB(cfg.VectorDBPath(), embedFunc, log)
		if err != nil {
			log.WithError(err).Warn("Failed to create vector database, semantic matching disabled")
			vectorDB = nil
		} else {
			log.WithField("path", cfg.VectorDBPath()).Info("Vector database ready")
		}
	} else {
		log.Info("No embedding provider configured, semantic matching disabled")
	}

	// Syllabus search always gets the keyword index; vectors join in when
	// an embedding provider is available
	searcher := rag.NewHybridSearcher(vectorDB, rag.NewBM25Index(log), log)

	var matcher *intent.Matcher
	if vectorDB != nil {
		matcher = intent.NewMatcher(vectorDB, cfg.MinSimilarity, log)
		log.WithField("min_similarity", cfg.MinSimilarity).Info("Semantic intent matcher enabled")
	}

	// Create the chatbot service and its HTTP handler
	svc := chatbot.NewService(db, searcher, matcher, cfg, m, log)
	handler := api.NewHandler(svc, db, cfg, m, log)
	log.Info("Chatbot service created")

	// Warm up in the background: catalog gauges plus the keyword, vector
	// and intent indexes. Readiness flips when warmup finishes or the
	// escape-hatch timeout passes.
	warmer := warmup.New(db, searcher, matcher, m, log)
	readiness := warmup.NewReadiness(config.WarmupIndexBuild)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.WithField("panic", r).Error("Panic during warmup")
			}
		}()
		warmCtx, warmCancel := context.WithTimeout(context.Background(), config.WarmupIndexBuild)
		defer warmCancel()
		if err := warmer.Run(warmCtx); err != nil {
			log.WithError(err).Error("Warmup finished with errors")
			sentry.CaptureException(err)
			return
		}
		readiness.MarkReady()
	}()
	log.Info("Background warmup started")

	// Set Gin mode based on log level
	if cfg.LogLevel == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(securityHeadersMiddleware())
	router.Use(requestIDMiddleware())
	router.Use(loggingMiddleware(log))
	router.Use(globalRateLimitMiddleware(cfg.Chat.GlobalRateRPS, m))
	if sentry.IsEnabled() {
		router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}

	// Setup routes
	setupRoutes(router, handler, db, readiness, registry, cfg)

	// Create HTTP server with timeouts sized for chat queries
	// See internal/config/timeouts.go for detailed explanations
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  config.HTTPRead,
		WriteTimeout: config.HTTPWrite,
		IdleTimeout:  config.HTTPIdle,
	}

	// Start background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup

	// Daily status retention pruning (every 12 hours)
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer func() {
			if r := recover(); r != nil {
				log.WithField("panic", r).Error("Panic in status prune goroutine")
			}
		}()
		pruneDailyEntries(ctx, db, cfg.StatusRetention, log)
	}()

	// Catalog size metrics updater (every 5 minutes)
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer func() {
			if r := recover(); r != nil {
				log.WithField("panic", r).Error("Panic in catalog metrics goroutine")
			}
		}()
		updateCatalogMetrics(ctx, warmer, log)
	}()

	// Snapshot backup loop with a distributed lock so only one replica
	// uploads per interval
	if backupManager != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					log.WithField("panic", r).Error("Panic in backup goroutine")
				}
			}()
			runBackupLoop(ctx, backupClient, backupManager, db, cfg.Backup, log)
		}()
	}

	// Start server in goroutine
	go func() {
		log.WithField("port", cfg.Port).Info("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("Failed to start server")
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Stop the per-client rate limiter cleanup goroutine
	handler.Stop()

	// Cancel context to stop background jobs
	cancel()

	// Wait for goroutines to finish (with timeout)
	goDone := make(chan struct{})
	go func() {
		wg.Wait()
		close(goDone)
	}()

	select {
	case <-goDone:
		log.Info("All background goroutines stopped")
	case <-time.After(5 * time.Second):
		log.Warn("Timeout waiting for goroutines to stop")
	}

	// Create shutdown context with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	// Shutdown server gracefully
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
	}

	// Close database connection
	if err := db.Close(); err != nil {
		log.WithError(err).Error("Failed to close database")
	}

	// Flush buffered telemetry
	sentry.Flush(2 * time.Second)
	if err := log.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Failed to flush remote logs")
	}

	log.Info("Server stopped")
}
