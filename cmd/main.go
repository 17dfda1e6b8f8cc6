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

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"zaazu/internal/backup"
	"zaazu/internal/config"
	"zaazu/internal/database"
	"zaazu/internal/httphandlers"
	"zaazu/internal/manager"
	"zaazu/internal/service"
	"zaazu/internal/storage"
	"zaazu/logger"
)

func main() {
	_ = godotenv.Load()

	if err := logger.InitLogger(os.Getenv("APP_ENV")); err != nil {
		fmt.Printf("Error initializing logger: %v\n", err)
		return
	}
	defer logger.Sync()

	cfg := config.New()
	srv, teardown, err := setup(cfg)
	if err != nil {
		log.Fatal(err)
	}

	go func() {
		logger.Info("serving http(s)", zap.String("addr", cfg.ListenAddr))
		if cfg.HasTLSConfig() {
			if err := srv.ListenAndServeTLS(cfg.ServerSSLCertFile, cfg.ServerSSLKeyFile); err != nil && err != http.ErrServerClosed {
				log.Fatal("server closed: ", err)
			}
		} else {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Fatal("server closed: ", err)
			}
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)

	<-done
	log.Println("Shutting down...")

	if teardown != nil {
		if err := teardown(); err != nil {
			logger.Error("teardown failed", zap.Error(err))
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %s\n", err)
	}
}

func setup(cfg config.Config) (*http.Server, func() error, error) {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	db, err := database.Open(cfg.DatabasePath)
	if err != nil {
		cancel()
		return nil, nil, err
	}

	videoRepo := database.NewVideoRepository(db)
	gameRepo := database.NewGameRepository(db)
	activityRepo := database.NewActivityRepository(db)
	achievementRepo := database.NewAchievementRepository(db)
	avatarRepo := database.NewAvatarRepository(db)
	missionRepo := database.NewDailyMissionRepository(db)
	userRepo := database.NewUserRepository(db)
	logEventRepo := database.NewLogEventRepository(db)

	st, err := buildStorage(cfg)
	if err != nil {
		cancel()
		return nil, nil, err
	}
	if err := st.Ping(ctx); err != nil {
		cancel()
		return nil, nil, err
	}

	contentService := service.NewContentService(
		videoRepo, gameRepo, activityRepo, achievementRepo, avatarRepo, missionRepo, userRepo)
	exportService := service.NewExportService(contentService)
	eventService := service.NewEventService(logEventRepo)
	thumbnailService := service.NewThumbnailService(st)

	mn := manager.New(cfg, exportService)

	cleanupScheduler, err := backup.NewCleanupScheduler(cfg)
	if err != nil {
		cancel()
		return nil, nil, err
	}
	if err := cleanupScheduler.Start(ctx); err != nil {
		cancel()
		return nil, nil, err
	}

	apiHandler := httphandlers.NewApiHandler(mn, contentService, eventService, thumbnailService)
	routes := httphandlers.Routes(apiHandler, cfg.PublicDir)

	return &http.Server{
			Addr:    cfg.ListenAddr,
			Handler: routes,
		}, func() error {
			if err := cleanupScheduler.Stop(); err != nil {
				logger.Error("scheduler shutdown failed", zap.Error(err))
			}
			sqlDB, _ := db.DB()
			if sqlDB != nil {
				err := sqlDB.Close()
				logger.Info("DB Closed", zap.Error(err))
			}
			cancel()
			return nil
		}, nil
}

func buildStorage(cfg config.Config) (storage.Storage, error) {
	switch storage.Type(cfg.ThumbnailStorage) {
	case storage.TypeS3:
		return storage.NewObjectStorage(storage.ObjectStorageCredentials{
			Endpoint:    cfg.S3Endpoint,
			AccessKeyID: cfg.S3AccessKeyID,
			SecretKey:   cfg.S3SecretKey,
			Region:      cfg.S3Region,
		})
	default:
		return storage.NewFileStorage(cfg.PublicDir), nil
	}
}
