package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"careernav/internal/bank"
	"careernav/internal/cache"
	"careernav/internal/config"
	"careernav/internal/repository"
	"careernav/internal/service"
	"careernav/internal/transport/rest"
	"careernav/internal/transport/ws"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()
	log.Printf("Question bank: %d questions", bank.Count())

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Initialize repositories
	progressRepo := repository.NewProgressRepo(db)
	resultRepo := repository.NewResultRepo(db)

	// Initialize caches
	progressCache := cache.NewProgressCache(rdb)

	// Initialize services
	authSvc := service.NewAuthService(cfg)
	testSvc := service.NewTestService(progressRepo, resultRepo, progressCache)
	skillsSvc := service.NewSkillsService(resultRepo)

	// Inject broadcaster (wsHub implements service.Broadcaster)
	testSvc.SetBroadcaster(wsHub)
	skillsSvc.SetBroadcaster(wsHub)

	// Create router with container
	container := &rest.Container{
		AuthService:   authSvc,
		TestService:   testSvc,
		SkillsService: skillsSvc,
		ResultRepo:    resultRepo,
		WSHub:         wsHub,
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /v1/auth/login")
		log.Println("  POST /v1/auth/register")
		log.Println("  POST /v1/test/start")
		log.Println("  POST /v1/test/answer")
		log.Println("  GET  /v1/test/progress")
		log.Println("  GET  /v1/test/results")
		log.Println("  POST /v1/skills/evaluate")
		log.Println("  GET  /v1/results")
		log.Println("  GET  /v1/admin/results")
		log.Println("  WS   /v1/ws/dashboard")
		log.Println("  WS   /v1/ws/test")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
