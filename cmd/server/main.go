// @title           YOCC Backend API
// @version         1.0.0
// @description     Backend API for YOCC custom furniture orders: order placement and administration, AI texture edits of product photos and palette extraction.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"yocc-backend/docs"
	"yocc-backend/internal/config"
	"yocc-backend/internal/database"
	"yocc-backend/internal/gemini"
	"yocc-backend/internal/handlers"
	"yocc-backend/internal/logger"
	"yocc-backend/internal/openai"
	"yocc-backend/internal/services"
	"yocc-backend/internal/storage"
	"yocc-backend/internal/store"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl, err := logger.New(cfg.Environment)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zl.Sync()

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Update Swagger docs with dynamic base URL
	if cfg.BaseURL != "" {
		baseURL, err := url.Parse(cfg.BaseURL)
		if err == nil {
			docs.SwaggerInfo.Host = baseURL.Host
			if baseURL.Scheme == "https" {
				docs.SwaggerInfo.Schemes = []string{"https", "http"}
			} else {
				docs.SwaggerInfo.Schemes = []string{"http", "https"}
			}
		}
	}

	db, err := database.Open(cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		zl.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.NewMigrator(db, zl).Run(context.Background()); err != nil {
		zl.Fatal("Migration failed", zap.Error(err))
	}

	images, err := newImageStore(context.Background(), cfg)
	if err != nil {
		zl.Fatal("Failed to initialize image store", zap.Error(err))
	}
	zl.Info("Image store ready", zap.String("provider", cfg.StorageProvider))

	orderStore := store.NewOrderStore(db, nil)
	orderService := services.NewOrderService(orderStore, images, zl)
	generationService := services.NewGenerationService(
		openai.NewClient(cfg.OpenAIAPIBaseURL, cfg.OpenAIAPIKey),
		gemini.NewClient(cfg.GeminiAPIBaseURL, cfg.GeminiAPIKey),
		services.GenerationModels{
			Image:  cfg.OpenAIImageModel,
			Vision: cfg.OpenAIVisionModel,
			Edit:   cfg.GeminiImageModel,
		},
		zl,
	)

	router := setupRouter(routerDeps{
		cfg:        cfg,
		logger:     zl,
		orders:     handlers.NewOrdersHandler(orderService),
		generation: handlers.NewGenerationHandler(generationService),
		profiles:   handlers.NewProfilesHandler(orderStore),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zl.Info("Server starting", zap.String("port", cfg.Port), zap.String("env", cfg.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zl.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zl.Error("Server forced to shutdown", zap.Error(err))
	}
}

func newImageStore(ctx context.Context, cfg *config.Config) (storage.ImageStore, error) {
	switch cfg.StorageProvider {
	case "s3":
		client, err := storage.NewS3Client(ctx, storage.S3Options{
			Region:          cfg.AWSRegion,
			Endpoint:        cfg.AWSEndpoint,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
		})
		if err != nil {
			return nil, err
		}
		return storage.NewS3Store(client, cfg.S3Bucket, cfg.AWSRegion, cfg.S3PublicBaseURL), nil
	case "supabase":
		return storage.NewSupabaseStoreFromProject(cfg.SupabaseURL, cfg.SupabasePublishableKey, cfg.SupabaseStorageBucket)
	default:
		return nil, fmt.Errorf("unknown storage provider %q", cfg.StorageProvider)
	}
}
