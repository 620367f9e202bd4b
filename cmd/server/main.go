package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"alcyxob/coach-diet/internal/api"
	"alcyxob/coach-diet/internal/config"
	"alcyxob/coach-diet/internal/diet"
	"alcyxob/coach-diet/internal/llm"
	"alcyxob/coach-diet/internal/repository/mongo"
	"alcyxob/coach-diet/internal/service"
	"alcyxob/coach-diet/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// @title Coach Diet API
// @version 1.0
// @description API for managing coached clients, AI diet plan generation and food photo analysis.
// @host localhost:8080
// @BasePath /api/v1
func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}

	// --- Logger ---
	logger, err := newLogger(cfg.Log)
	if err != nil {
		log.Fatalf("FATAL: Could not create logger: %v", err)
	}
	defer logger.Sync()
	logger.Info("starting coach-diet server")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		logger.Fatal("could not connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := mongo.DisconnectDB(dbClient); err != nil {
			logger.Error("failed to disconnect MongoDB", zap.Error(err))
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	logger.Info("database connection established", zap.String("database", cfg.Database.Name))

	// --- Ensure Indexes ---
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureClientIndexes(ctx, appDB.Collection("clients"))
		mongo.EnsurePlanIndexes(ctx, appDB.Collection("diet_plans"))
	}()

	// --- Initialize Storage (optional: scan archival) ---
	var fileStorage storage.FileStorage
	if cfg.S3.BucketName != "" {
		fileStorage, err = storage.NewS3Storage(cfg.S3)
		if err != nil {
			logger.Fatal("failed to initialize S3 storage", zap.Error(err))
		}
	} else {
		logger.Warn("no S3 bucket configured, scan image archival disabled")
	}

	// --- Initialize Model Gateway ---
	gemini, err := llm.NewGeminiClient(context.Background(), cfg.AI)
	if err != nil {
		logger.Fatal("failed to initialize Gemini client", zap.Error(err))
	}
	defer gemini.Close()
	if cfg.AI.APIKey == "" {
		logger.Warn("no Gemini API key configured, diet generation will serve the fallback plan")
	}

	// --- Initialize Repositories ---
	clientRepo := mongo.NewMongoClientRepository(appDB)
	planRepo := mongo.NewMongoPlanRepository(appDB)

	// --- Initialize Services ---
	generator := diet.NewGenerator(gemini, logger)
	clientService := service.NewClientService(clientRepo, planRepo, logger)
	planService := service.NewPlanService(clientRepo, planRepo, generator, logger)
	scanService := service.NewScanService(gemini, fileStorage, logger)

	// --- Initialize Gin Engine ---
	router := gin.Default()
	api.SetupRoutes(router, clientService, planService, scanService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: router,
		// WriteTimeout must outlast the model gateway's wall-clock budget.
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.AI.Timeout + 10*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("address", cfg.Server.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("ListenAndServe error", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}
	logger.Info("server exiting")
}

// newLogger builds a JSON production logger at the configured level.
func newLogger(cfg config.LogConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return zapCfg.Build()
}
