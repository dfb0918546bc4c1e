package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/courseadmin/dashboard/docs"
	"github.com/courseadmin/dashboard/internal/client"
	"github.com/courseadmin/dashboard/internal/config"
	"github.com/courseadmin/dashboard/internal/handlers"
	"github.com/courseadmin/dashboard/internal/logger"
	"github.com/courseadmin/dashboard/internal/middleware"
	"github.com/courseadmin/dashboard/internal/repositories"
	"github.com/courseadmin/dashboard/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

const maxRequestSize = 20 * 1024 * 1024 // 20MB for data URL thumbnails and CSV imports

// @title Course Admin Dashboard API
// @version 1.0
// @description Admin API for course catalog management on top of the course platform backend

// @contact.name API Support

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @description Admin API key required for mutating course endpoints
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting Course Admin Dashboard API",
		zap.String("upstream", cfg.API.BaseURL),
	)

	// Connect to database
	db, err := connectDB(cfg.DSN())
	if err != nil {
		logger.Logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	if err := runMigrations(db); err != nil {
		logger.Logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize upstream client
	upstream := client.New(cfg.API.BaseURL, cfg.API.Timeout, cfg.API.SessionCookie, logger.Logger)

	// Initialize repositories
	courseRepo := repositories.NewCourseRepository(upstream)
	lessonRepo := repositories.NewLessonRepository(upstream)
	quizRepo := repositories.NewQuizRepository(upstream)
	studentRepo := repositories.NewStudentRepository(upstream)
	companyRepo := repositories.NewCompanyRepository(upstream)
	syncRunRepo := repositories.NewSyncRunRepository(db)

	// Initialize services
	syncService := services.NewCourseSyncService(courseRepo, lessonRepo, quizRepo, syncRunRepo, logger.Logger)
	courseService := services.NewCourseService(courseRepo, lessonRepo, syncService, services.NewValidator(), logger.Logger)
	overviewService := services.NewOverviewService(courseRepo, studentRepo, companyRepo, logger.Logger)
	directoryService := services.NewDirectoryService(studentRepo, companyRepo)

	// Initialize middleware
	adminMw := middleware.APIKeyMiddleware(cfg.AdminAPIKey)
	if cfg.AdminAPIKey == "" {
		logger.Logger.Warn("ADMIN_API_KEY is not set, mutating endpoints are unprotected")
	}

	// Initialize handlers
	courseHandler := handlers.NewCourseHandler(courseService, logger.Logger)
	overviewHandler := handlers.NewOverviewHandler(overviewService, logger.Logger)
	directoryHandler := handlers.NewDirectoryHandler(directoryService, logger.Logger)

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.LoggerMiddleware(logger.Logger))
	r.Use(middleware.RecoveryMiddleware(logger.Logger))
	r.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(100, time.Minute))
	r.Use(middleware.RequestSizeLimitMiddleware(maxRequestSize))
	r.Use(middleware.SessionMiddleware)

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	// Scope router to /api/v1
	r.Route("/api/v1", func(r chi.Router) {
		overviewHandler.RegisterRoutes(r)
		directoryHandler.RegisterRoutes(r)
		courseHandler.RegisterRoutes(r, adminMw)
	})

	// Start server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second, // Saves fan out into many sequential upstream calls
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}

// connectDB connects to the database
func connectDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB) error {
	driver, err := mysql.WithInstance(db, &mysql.Config{
		MigrationsTable: "dashboard_schema_migrations",
	})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	migrationPath := "file://migrations"
	if _, err := os.Stat("migrations"); os.IsNotExist(err) {
		// Running from cmd/api
		if _, err := os.Stat("../../migrations"); err == nil {
			migrationPath = "file://../../migrations"
		}
	}

	m, err := migrate.NewWithDatabaseInstance(migrationPath, "mysql", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
