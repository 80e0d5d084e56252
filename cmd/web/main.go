package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-dreamjob/config"
	"go-dreamjob/internal/delivery/http/web"
	"go-dreamjob/internal/repository/postgres"
	"go-dreamjob/internal/session"
	"go-dreamjob/internal/storage"
	"go-dreamjob/internal/usecase"
	"go-dreamjob/pkg/database"
	"go-dreamjob/pkg/logger"
	pkgredis "go-dreamjob/pkg/redis"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting dreamjob", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup File Store
	store, err := newStore(cfg)
	if err != nil {
		logger.Log.Error("Failed to set up file store", "error", err)
		os.Exit(1)
	}

	// 5. Setup Session Store
	sessionStore := newSessionStore(cfg)
	secret := cfg.SessionSecret
	if secret == "" {
		secret = uuid.NewString()
	}
	sessions := session.NewManager(sessionStore, []byte(secret),
		time.Duration(cfg.SessionTTLMinutes)*time.Minute)

	// 6. Setup Repositories
	candidateRepo := postgres.NewCandidateRepository(dbPool)
	vacancyRepo := postgres.NewVacancyRepository(dbPool)
	cityRepo := postgres.NewCityRepository(dbPool)
	userRepo := postgres.NewUserRepository(dbPool)
	fileRepo := postgres.NewFileRepository(dbPool)

	// 7. Setup UseCases
	validate := validator.New()
	fileUC := usecase.NewFileUsecase(fileRepo, store)
	candidateUC := usecase.NewCandidateUsecase(candidateRepo, fileUC, validate)
	vacancyUC := usecase.NewVacancyUsecase(vacancyRepo, fileUC, validate)
	cityUC := usecase.NewCityUsecase(cityRepo)
	userUC := usecase.NewUserUsecase(userRepo, validate)

	// 8. Setup Router
	router := web.NewRouter(web.RouterDeps{
		CandidateUC: candidateUC,
		VacancyUC:   vacancyUC,
		CityUC:      cityUC,
		UserUC:      userUC,
		FileUC:      fileUC,
		Sessions:    sessions,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

func newStore(cfg *config.Config) (storage.Store, error) {
	if cfg.StorageBackend == "s3" {
		return storage.NewS3Store(context.Background(), storage.S3Config{
			Region:    cfg.S3Region,
			Bucket:    cfg.S3Bucket,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
	}
	return storage.NewDiskStore(cfg.StorageDir)
}

func newSessionStore(cfg *config.Config) session.Store {
	if cfg.RedisURL == "" {
		return session.NewMemoryStore()
	}
	client, err := pkgredis.NewClient(pkgredis.Config{
		URL:      cfg.RedisURL,
		Password: cfg.RedisPassword,
	})
	if err != nil {
		logger.Log.Warn("Redis unavailable, falling back to in-memory sessions", "error", err)
		return session.NewMemoryStore()
	}
	return session.NewRedisStore(client)
}
