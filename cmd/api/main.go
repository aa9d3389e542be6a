package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"jobfluence/api/internal/config"
	"jobfluence/api/internal/handlers"
	"jobfluence/api/internal/logger"
	"jobfluence/api/internal/repositories"
	"jobfluence/api/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zlog, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer zlog.Sync()

	zlog.Info("config loaded", zap.String("env", cfg.Server.Env))

	ctx := context.Background()

	// Document parsing
	tikaExtractor := services.NewTikaExtractor(cfg.Tika.URL, cfg.Tika.Timeout)
	probeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	if version, err := tikaExtractor.Version(probeCtx); err != nil {
		zlog.Warn("tika server not reachable, Word documents will fail", zap.String("url", cfg.Tika.URL), zap.Error(err))
	} else {
		zlog.Info("tika server reachable", zap.String("version", version))
	}
	cancel()

	parser := services.NewDocumentParser(
		services.NewPDFParserService(nil),
		services.NewWordParserService(tikaExtractor),
	)
	uploadService := services.NewUploadService(cfg.Storage.MaxFileSize)

	// Similarity scoring
	geminiService, err := services.NewGeminiService(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.EmbedModel, zlog)
	if err != nil {
		zlog.Fatal("failed to initialize Gemini", zap.Error(err))
	}
	zlog.Info("gemini initialized", zap.String("embed_model", cfg.Gemini.EmbedModel))

	var cache services.EmbeddingCache
	if cfg.Qdrant.URL != "" {
		qdrantService, err := services.NewQdrantService(
			cfg.Qdrant.URL,
			cfg.Qdrant.APIKey,
			cfg.Qdrant.Collection,
			cfg.Qdrant.VectorSize,
			zlog,
		)
		if err != nil {
			zlog.Fatal("failed to initialize Qdrant", zap.Error(err))
		}
		if err := qdrantService.InitCollection(ctx); err != nil {
			zlog.Fatal("failed to initialize Qdrant collection", zap.Error(err))
		}
		cache = qdrantService
		zlog.Info("embedding cache enabled", zap.String("collection", cfg.Qdrant.Collection))
	}

	scorer := services.NewSimilarityScorer(geminiService, cache, cfg.Scoring.MaxChunkSize, zlog)

	var advisor services.AdvisorService
	if cfg.Scoring.TipsEnabled {
		advisor = services.NewAdvisorService(geminiService, cfg.Gemini.MaxRetries)
		zlog.Info("resume tips enabled", zap.String("model", cfg.Gemini.Model))
	}

	// Payment ledger
	var chargeRepo repositories.ChargeRepository
	if cfg.Database.Enabled {
		db, err := config.InitDatabase(cfg, zlog)
		if err != nil {
			zlog.Fatal("failed to initialize database", zap.Error(err))
		}
		chargeRepo = repositories.NewChargeRepository(db)
	}

	app := handlers.NewRouter(handlers.RouterConfig{
		AppName:     "Jobfluence",
		MaxFileSize: cfg.Storage.MaxFileSize,
		AccessLog:   true,
		Parser:      handlers.NewParserHandler(parser, uploadService, cfg.Storage.MaxFileSizeLabel(), zlog),
		Match:       handlers.NewMatchHandler(parser, uploadService, scorer, advisor, cfg.Storage.MaxFileSizeLabel(), zlog),
		Payment:     handlers.NewPaymentHandler(chargeRepo, zlog),
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		zlog.Info("shutting down server")
		if err := app.Shutdown(); err != nil {
			zlog.Error("server forced to shutdown", zap.Error(err))
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	zlog.Info("server starting", zap.String("addr", addr))

	if err := app.Listen(addr); err != nil {
		zlog.Fatal("failed to start server", zap.Error(err))
	}
}
