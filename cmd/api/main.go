package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/coherence-app/coherence-engine/internal/adapters/ai"
	"github.com/coherence-app/coherence-engine/internal/adapters/cache"
	adapterHTTP "github.com/coherence-app/coherence-engine/internal/adapters/handler/http"
	"github.com/coherence-app/coherence-engine/internal/adapters/repository"
	"github.com/coherence-app/coherence-engine/internal/core/domain"
	"github.com/coherence-app/coherence-engine/internal/core/services"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	startTime := time.Now()

	_ = godotenv.Load()

	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")
	dbHost := getEnv("DB_HOST", "localhost")
	dbPort := getEnv("DB_PORT", "5432")
	serverPort := getEnv("PORT", "8080")

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("Critical: JWT_SECRET is required")
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		dbUser, dbPass, dbHost, dbPort, dbName)

	log.Println("Connecting to database...")

	db, err := sqlx.Connect("pgx", dsn)
	if err != nil {
		log.Fatalf("Critical: Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	log.Println("Database connected successfully.")

	// Redis is optional: without it the habit cache and the rate
	// limiter are simply skipped.
	var rdb *redis.Client
	if redisHost := os.Getenv("REDIS_HOST"); redisHost != "" {
		redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
		rdb, err = cache.NewRedisClient(redisHost, getEnv("REDIS_PORT", "6379"), os.Getenv("REDIS_PASSWORD"), redisDB)
		if err != nil {
			log.Printf("Warning: redis unavailable, running without cache: %v", err)
			rdb = nil
		} else {
			defer rdb.Close()
			log.Println("Redis connected successfully.")
		}
	}

	userRepo := repository.NewPostgresUserRepository(db)
	var habitRepo domain.HabitRepository = repository.NewPostgresHabitRepository(db)
	if rdb != nil {
		habitRepo = repository.NewCachedHabitRepository(habitRepo, rdb)
	}
	logRepo := repository.NewPostgresHabitLogRepository(db)
	moodRepo := repository.NewPostgresMoodRepository(db)
	txnRepo := repository.NewPostgresTransactionRepository(db)
	journalRepo := repository.NewPostgresJournalRepository(db)

	aiClient := ai.NewClient(getEnv("AI_BASE_URL", "http://localhost:8090"), 30*time.Second)

	authService := services.NewAuthService(userRepo)
	tokenService := services.NewTokenService(jwtSecret, getEnv("JWT_ISSUER", "coherence-engine"), 24*time.Hour, userRepo)
	habitService := services.NewHabitService(habitRepo, logRepo)
	moodService := services.NewMoodService(moodRepo)
	txnService := services.NewTransactionService(txnRepo)
	journalService := services.NewJournalService(journalRepo)
	dashboardService := services.NewDashboardService(moodRepo, habitRepo, logRepo, txnRepo)
	reviewService := services.NewReviewService(moodRepo, habitRepo, logRepo, txnRepo, journalRepo, aiClient)

	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		AuthHandler:        adapterHTTP.NewAuthHandler(authService, tokenService),
		HabitHandler:       adapterHTTP.NewHabitHandler(habitService),
		MoodHandler:        adapterHTTP.NewMoodHandler(moodService),
		TransactionHandler: adapterHTTP.NewTransactionHandler(txnService),
		JournalHandler:     adapterHTTP.NewJournalHandler(journalService),
		DashboardHandler:   adapterHTTP.NewDashboardHandler(dashboardService, habitService),
		ReviewHandler:      adapterHTTP.NewReviewHandler(reviewService),
		TokenService:       tokenService,
		DB:                 db,
		Redis:              rdb,
		StartTime:          startTime,
	})

	srv := &http.Server{
		Addr:         ":" + serverPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Coherence Engine running on http://localhost:%s", serverPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Critical server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Stop signal received. Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Forced shutdown error:", err)
	}

	log.Println("Server stopped gracefully.")
}
