package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"interviewpro/api/internal/analytics"
	"interviewpro/api/internal/config"
	"interviewpro/api/internal/handlers"
	"interviewpro/api/internal/interview"
	"interviewpro/api/internal/jobs"
	"interviewpro/api/internal/llm"
	_ "interviewpro/api/internal/llm/gemini"
	"interviewpro/api/internal/metrics"
	"interviewpro/api/internal/models"
	"interviewpro/api/internal/prompts"
	"interviewpro/api/internal/routers"
	"interviewpro/api/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func registerRoutes(router *chi.Mux, interviewHandler *handlers.InterviewHandler, questionHandler *handlers.QuestionHandler, healthHandler *handlers.HealthHandler, jwtSecret string) {
	routers.HealthRoutes(router, healthHandler)
	routers.InterviewRoutes(router, interviewHandler, jwtSecret)
	routers.QuestionRoutes(router, questionHandler, jwtSecret)
}

// initDatabase initializes the PostgreSQL database connection
func initDatabase(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.Postgres.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&models.InterviewSession{}, &models.Attempt{}, &models.Question{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	logger.Info("Configuration loaded",
		zap.String("provider", cfg.Provider))

	// prompt manager
	promptManager, err := prompts.NewPromptManager()
	if err != nil {
		logger.Fatal("Failed to initialize prompt manager", zap.Error(err))
	}

	// AI provider based on configuration
	aiProvider, err := llm.NewProvider(cfg.Provider)
	if err != nil {
		logger.Fatal("Failed to initialize AI provider", zap.Error(err))
	}

	db, err := initDatabase(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}

	sessionStore := store.NewGormSessionStore(db)
	questionStore := store.NewGormQuestionStore(db)

	orchestrator := interview.NewOrchestrator(aiProvider, promptManager, sessionStore, logger)
	evaluator := interview.NewEvaluator(aiProvider, promptManager, sessionStore, logger)
	aggregator := analytics.NewAggregator(sessionStore, cfg.AnalyticsCacheTTL)

	interviewHandler := handlers.NewInterviewHandler(orchestrator, evaluator, aggregator, logger)
	questionHandler := handlers.NewQuestionHandler(questionStore, logger)
	healthHandler := handlers.NewHealthHandler(aiProvider, promptManager, cfg)

	// session report exporter
	reportJob := jobs.NewSessionReportJob(sessionStore, &jobs.ReportConfig{
		Schedule:  cfg.ReportExportSchedule,
		ExportDir: cfg.ReportExportDir,
		Enabled:   cfg.ReportExportEnabled,
	})
	if cfg.ReportExportEnabled {
		if err := reportJob.Start(); err != nil {
			logger.Error("Failed to start session report job", zap.Error(err))
		} else {
			logger.Info("Session report job started", zap.String("schedule", cfg.ReportExportSchedule))
		}
	}

	router := chi.NewRouter()

	// cors middleware
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	router.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer, middleware.Timeout(60*time.Second))
	router.Use(metrics.Middleware)

	registerRoutes(router, interviewHandler, questionHandler, healthHandler, cfg.JWTSecret)

	serverAddr := ":" + cfg.Port

	// http server with timeouts
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// starting server in a goroutine
	go func() {
		logger.Info("Interview service starting", zap.String("addr", serverAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// wait for interrupt signal to gracefully shutdown the server
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)
	<-shutdownChan

	logger.Info("Interview service shutting down...")

	reportJob.Stop()

	// graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("Interview service exited")
}
