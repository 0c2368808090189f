package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	_ "github.com/johnquangdev/meeting-minutes/docs"
	"github.com/johnquangdev/meeting-minutes/internal/adapter/handler"
	"github.com/johnquangdev/meeting-minutes/internal/adapter/repository"
	"github.com/johnquangdev/meeting-minutes/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-minutes/internal/infrastructure/database"
	httpmw "github.com/johnquangdev/meeting-minutes/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/meeting-minutes/internal/infrastructure/storage"
	aiuse "github.com/johnquangdev/meeting-minutes/internal/usecase/ai"
	meetingUsecase "github.com/johnquangdev/meeting-minutes/internal/usecase/meeting"
	pkgai "github.com/johnquangdev/meeting-minutes/pkg/ai"
	"github.com/johnquangdev/meeting-minutes/pkg/config"
	"github.com/johnquangdev/meeting-minutes/pkg/jwt"
	pkgvalidator "github.com/johnquangdev/meeting-minutes/pkg/validator"
)

// @title           Meeting Minutes API
// @version         1.0
// @description     Upload meeting recordings, transcribe them and extract summary, people and action items.

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath  /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = false

	// Register validator for request validation
	validator := pkgvalidator.New(cfg.Upload.AllowedExtensions)
	e.Validator = validator

	renderer, err := handler.NewTemplateRenderer()
	if err != nil {
		logger.Fatal("failed to load templates", zap.Error(err))
	}
	e.Renderer = renderer

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${id} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware for the JSON API
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	ctx := context.Background()

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.Open(cfg, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)

	n, err := database.Migrate(db, cfg.Database.Driver)
	if err != nil {
		logger.Fatal("failed to create schema", zap.Error(err))
	}
	logger.Info("schema ready", zap.Int("applied", n))

	// Initialize file storage
	log.Println("🗄️  Initializing file storage...")
	store, err := newFileStore(cfg)
	if err != nil {
		logger.Fatal("failed to initialize file storage", zap.Error(err))
	}

	// Initialize flash message store
	flashStore, err := newFlashStore(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to initialize flash store", zap.Error(err))
	}
	defer flashStore.Close()

	// Initialize AI clients
	log.Println("🤖 Initializing AI components...")
	transcriber, generator, err := newAIClients(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to initialize AI clients", zap.Error(err))
	}
	gateway := aiuse.NewGateway(transcriber, generator, logger)

	// Initialize repositories and services
	meetingRepo := repository.NewMeetingRepository(db)
	meetingService := meetingUsecase.NewService(meetingRepo, store, gateway, validator, cfg.AI.MaxPoints, logger)

	// Session cookies carry flash messages between redirects
	sessionMW := httpmw.NewSessionMiddleware(flashStore, jwt.NewManager(cfg.SecretKey, 0), cfg.IsProduction(), logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(
		cfg,
		db,
		handler.NewMeetingHandler(meetingService, logger),
		handler.NewMeetingAPIHandler(meetingService, logger),
		handler.NewUploadsHandler(store, logger),
		sessionMW,
		logger,
	)
	router.Setup(e)

	// Start server
	go func() {
		addr := cfg.GetServerAddr()
		logger.Info("starting server",
			zap.String("addr", addr),
			zap.String("environment", cfg.Server.Environment),
			zap.String("transcription_provider", cfg.AI.TranscriptionProvider),
			zap.String("summary_provider", cfg.AI.SummaryProvider),
		)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
		return
	}

	log.Println("✅ Server stopped gracefully")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func newFileStore(cfg *config.Config) (storage.FileStore, error) {
	switch cfg.Storage.Type {
	case "minio":
		return storage.NewMinIOStore(&cfg.Storage)
	default:
		return storage.NewLocalStore(cfg.Upload.Dir)
	}
}

func newFlashStore(ctx context.Context, cfg *config.Config) (cache.FlashStore, error) {
	switch cfg.Flash.Store {
	case "redis":
		return cache.NewRedisStore(ctx, &redis.Options{
			Addr:     cfg.GetRedisAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, cfg.Flash.TTL)
	default:
		return cache.NewMemoryStore(cfg.Flash.TTL), nil
	}
}

func newAIClients(ctx context.Context, cfg *config.Config) (aiuse.Transcriber, aiuse.TextGenerator, error) {
	var gemini *pkgai.GeminiClient
	geminiClient := func() (*pkgai.GeminiClient, error) {
		if gemini != nil {
			return gemini, nil
		}
		c, err := pkgai.NewGeminiClient(ctx, &cfg.Gemini)
		if err != nil {
			return nil, err
		}
		gemini = c
		return c, nil
	}

	var transcriber aiuse.Transcriber
	switch cfg.AI.TranscriptionProvider {
	case "assemblyai":
		transcriber = pkgai.NewAssemblyAIClient(&cfg.Assembly)
	default:
		c, err := geminiClient()
		if err != nil {
			return nil, nil, fmt.Errorf("transcription provider: %w", err)
		}
		transcriber = c
	}

	var generator aiuse.TextGenerator
	switch cfg.AI.SummaryProvider {
	case "openai":
		generator = pkgai.NewOpenAIClient(&cfg.OpenAI)
	default:
		c, err := geminiClient()
		if err != nil {
			return nil, nil, fmt.Errorf("summary provider: %w", err)
		}
		generator = c
	}

	return transcriber, generator, nil
}
