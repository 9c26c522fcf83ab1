package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"interviewai/internal/ai"
	"interviewai/internal/ai/gemini"
	"interviewai/internal/cache"
	"interviewai/internal/config"
	"interviewai/internal/logger"
	"interviewai/internal/repository"
	"interviewai/internal/service"
	"interviewai/internal/store"
	"interviewai/internal/transport/rest"
	"interviewai/internal/transport/ws"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	zl, err := logger.New(cfg.LogJSON, cfg.LogDebug)
	if err != nil {
		log.Fatal("logger init:", err)
	}
	defer zl.Sync()

	ctx := context.Background()

	// Text generator: Gemini when a key is configured, deterministic mock
	// otherwise so the service stays usable in development.
	var gen ai.TextGenerator
	if cfg.GeminiAPIKey != "" {
		client, err := gemini.New(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			zl.Fatal("gemini client init failed", zap.Error(err))
		}
		gen = client
		zl.Info("gemini generator configured", zap.String("model", client.Model()))
	} else {
		gen = ai.MockGenerator{}
		zl.Warn("GEMINI_API_KEY not set, using mock generator")
	}

	// Score cache: redis when configured, disk otherwise.
	var scoreCache cache.ScoreCache
	if cfg.RedisURI != "" {
		addr := strings.TrimPrefix(cfg.RedisURI, "redis://")
		rdb := redis.NewClient(&redis.Options{Addr: addr})
		defer rdb.Close()
		if _, err := rdb.Ping(ctx).Result(); err != nil {
			zl.Fatal("redis ping failed", zap.Error(err))
		}
		scoreCache = cache.NewRedisCache(rdb, cfg.CacheTTL)
		zl.Info("redis score cache enabled", zap.String("addr", addr))
	} else {
		disk, err := cache.NewDiskCache(cfg.CacheDir, cfg.CacheMaxAge, zl)
		if err != nil {
			zl.Fatal("disk cache init failed", zap.Error(err))
		}
		scoreCache = disk
		zl.Info("disk score cache enabled", zap.String("dir", cfg.CacheDir))
	}

	// Answer repository: mongo when configured, in-memory otherwise.
	answerRepo := repository.NewMemoryAnswerRepo()
	if cfg.MongoURI != "" {
		mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			zl.Fatal("mongo connect failed", zap.Error(err))
		}
		defer mongoClient.Disconnect(ctx)

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		if err := mongoClient.Ping(pingCtx, nil); err != nil {
			cancel()
			zl.Fatal("mongo ping failed", zap.Error(err))
		}
		cancel()

		answerRepo = repository.NewMongoAnswerRepo(mongoClient.Database("interviewai"))
		zl.Info("mongo answer repository enabled")
	}

	sessions := store.New(cfg.SessionTTL)
	defer sessions.Close()

	wsHub := ws.NewHub(zl)
	defer wsHub.Close()

	authSvc := service.NewAuthService(cfg.HostUsername, cfg.HostPassword, cfg.JWTSecret)
	resumeSvc := service.NewResumeService(gen, zl)
	questionSvc := service.NewQuestionService(gen, zl)
	evaluatorSvc := service.NewEvaluatorService(gen, scoreCache, zl)
	interviewSvc := service.NewInterviewService(resumeSvc, questionSvc, evaluatorSvc, sessions, answerRepo, zl)
	interviewSvc.SetBroadcaster(wsHub)

	router := rest.NewRouter(&rest.Container{
		AuthService:      authSvc,
		InterviewService: interviewSvc,
		EvaluatorService: evaluatorSvc,
		WSHub:            wsHub,
		Logger:           zl,
	})

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: router,
	}

	go func() {
		zl.Info("server starting", zap.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zl.Fatal("listen and serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zl.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Fatal("server forced to shutdown", zap.Error(err))
	}

	zl.Info("server exited")
}
