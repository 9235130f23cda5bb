package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"

	"github.com/shenikar/chennai_live_alerts/internal/config"
	v1 "github.com/shenikar/chennai_live_alerts/internal/handler/http/v1"
	"github.com/shenikar/chennai_live_alerts/internal/models"
	"github.com/shenikar/chennai_live_alerts/internal/service"
	"github.com/shenikar/chennai_live_alerts/internal/simulation"
	"github.com/shenikar/chennai_live_alerts/internal/store"
	"github.com/shenikar/chennai_live_alerts/internal/transport"
	"github.com/shenikar/chennai_live_alerts/internal/webhook"
	"github.com/shenikar/chennai_live_alerts/pkg/logger"
	"github.com/shenikar/chennai_live_alerts/pkg/postgres"
	redisclient "github.com/shenikar/chennai_live_alerts/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/chennai_live_alerts/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const migrationsDir = "migrations"

// @title CHENN-AI Live Alerts API
// @version 1.0
// @description Live civic alerts for Chennai with offline community simulation and report queue.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Постоянное хранилище; при недоступности работаем в памяти
	kv, redisClient, closeStore := openStore(ctx, cfg, log)
	defer closeStore()

	// Источники данных
	alertsTransport := transport.NewClient(cfg, log)
	engine := simulation.NewEngine(kv, log, cfg.StoreKeyPrefix)

	// Контроллер синхронизации
	controller := service.NewSyncController(
		alertsTransport,
		engine,
		log,
		models.AlertFilters{Pincode: cfg.DefaultPincode, Area: cfg.DefaultArea},
		cfg.SyncInterval,
	)

	// Вебхуки об изменениях
	if cfg.WebhookURL != "" {
		webhookClient := redisClient
		if webhookClient == nil {
			webhookClient, err = redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
			if err != nil {
				log.WithError(err).Warn("Redis unavailable, webhooks disabled")
			} else {
				defer webhookClient.Close()
			}
		}
		if webhookClient != nil {
			listener := webhook.NewListener(webhook.NewRedisWebhookPublisher(webhookClient), log)
			listener.Start(ctx)
			defer listener.Close()
			controller.Subscribe(listener.Handle)

			webhookWorker := webhook.NewWebhookWorker(webhookClient, log, cfg)
			webhookWorker.Start(ctx)
		}
	}

	controller.Start(ctx)
	defer controller.Dispose()

	// Инициализация хэндлеров
	handler := v1.NewHandler(controller, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.WithFields(logrus.Fields{
		"port": cfg.HTTPPort,
		"mode": modeName(controller.State()),
	}).Info("HTTP server started")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
	}

	log.Info("Server gracefully stopped")
}

// openStore выбирает драйвер хранилища. Возвращает Redis-клиент, если он уже открыт.
func openStore(ctx context.Context, cfg *config.Config, log *logrus.Logger) (store.KeyValueStore, *goredis.Client, func()) {
	noop := func() {}
	entry := log.WithField("driver", cfg.StoreDriver)

	switch cfg.StoreDriver {
	case config.StoreDriverRedis:
		client, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			entry.WithError(err).Warn("Store unavailable, falling back to in-memory store")
			return store.NewMemoryStore(), nil, noop
		}
		entry.Info("Successfully connected to Redis")
		return store.NewRedisStore(client), client, func() { _ = client.Close() }

	case config.StoreDriverPostgres:
		if err := postgres.RunMigrations(cfg.DatabaseURL, migrationsDir, log); err != nil {
			entry.WithError(err).Warn("Migrations failed, falling back to in-memory store")
			return store.NewMemoryStore(), nil, noop
		}
		dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
		if err != nil {
			entry.WithError(err).Warn("Store unavailable, falling back to in-memory store")
			return store.NewMemoryStore(), nil, noop
		}
		entry.Info("Successfully connected to PostgreSQL")
		return store.NewPostgresStore(dbpool), nil, dbpool.Close
	}

	entry.Info("Using in-memory store")
	return store.NewMemoryStore(), nil, noop
}

func modeName(state models.SyncState) string {
	if state.IsUsingBackend {
		return "backend"
	}
	return "simulation"
}
