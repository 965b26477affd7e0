package main

import (
	"context"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"forumhub/internal/auth"
	"forumhub/internal/catalog"
	"forumhub/internal/config"
	"forumhub/internal/directory"
	"forumhub/internal/handler"
	"forumhub/internal/middleware"
	"forumhub/internal/repository/postgres"
	"forumhub/internal/service"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Debug {
		logLevel = slog.LevelDebug
	}

	var logOutput io.Writer = os.Stdout
	if logDir := os.Getenv("LOG_DIR"); logDir != "" {
		logFile, err := config.SetupLogFile(logDir, 10)
		if err != nil {
			log.Fatalf("Failed to set up log file: %v", err)
		}
		defer logFile.Close()
		logOutput = io.MultiWriter(os.Stdout, logFile)
	}

	logger := slog.New(slog.NewJSONHandler(logOutput, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
	)

	// Create token verifier against the authorization service's JWKS
	tokenVerifier, err := auth.NewJWKSVerifier(cfg.JWKSURL, logger)
	if err != nil {
		log.Fatalf("Failed to create token verifier: %v", err)
	}
	defer tokenVerifier.Close()

	// Create pgx connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	logger.Info("database connected",
		"max_conns", 25,
		"min_conns", 5,
	)

	// Create table names
	tables := postgres.NewTableNames(cfg.TablePrefix)

	// Create repositories
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	topicRepo := postgres.NewTopicRepository(repoConfig)
	answerRepo := postgres.NewAnswerRepository(repoConfig)
	courseRepo := postgres.NewCourseRepository(repoConfig)
	txManager := postgres.NewTransactionManager(pool)

	// User directory client (one resolve per workflow call, bounded timeout)
	users := directory.NewHTTPClient(cfg.UserServiceURL, cfg.DirectoryTimeout, logger)

	// Course category catalog (embedded)
	categories, err := catalog.NewRegistry()
	if err != nil {
		log.Fatalf("Failed to load course category catalog: %v", err)
	}
	logger.Info("course category catalog loaded")

	// Create services
	topicService := service.NewTopicService(topicRepo, answerRepo, courseRepo, users, logger)
	answerService := service.NewAnswerService(topicRepo, answerRepo, users, txManager, logger)
	courseService := service.NewCourseService(courseRepo, categories, users, logger)

	// Create handlers
	topicHandler := handler.NewTopicHandler(topicService, logger)
	answerHandler := handler.NewAnswerHandler(answerService, logger)
	courseHandler := handler.NewCourseHandler(courseService, categories, logger)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", topicHandler.HealthCheck)

	// Topic routes
	mux.HandleFunc("POST /topics/create", topicHandler.CreateTopic)
	mux.HandleFunc("PUT /topics/edit", topicHandler.UpdateTopic)
	mux.HandleFunc("DELETE /topics/delete", topicHandler.DeleteTopic)
	mux.HandleFunc("GET /topics", topicHandler.ListTopics)
	mux.HandleFunc("GET /topics/{id}", topicHandler.GetTopic)

	// Answer routes
	mux.HandleFunc("POST /topics/{id}/answer", answerHandler.AddAnswer)
	mux.HandleFunc("POST /topics/{id}/markBestAnswer", answerHandler.MarkBestAnswer)
	mux.HandleFunc("PUT /topics/{id}/answers", answerHandler.UpdateAnswer)
	mux.HandleFunc("DELETE /topics/{id}/answers/delete", answerHandler.DeleteAnswer)

	// Course routes
	mux.HandleFunc("GET /courses", courseHandler.ListCourses)
	mux.HandleFunc("GET /courses/categories", courseHandler.ListCategories)
	mux.HandleFunc("GET /courses/{id}", courseHandler.GetCourse)
	mux.HandleFunc("POST /courses", courseHandler.CreateCourse)

	// Build middleware chain
	var root http.Handler = mux

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → RequestID → Recovery → Auth → Routes
	root = middleware.AuthMiddleware(tokenVerifier, logger)(root)
	root = middleware.Recovery(logger)(root)
	root = middleware.RequestID(root)

	// CORS - Must be before auth to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
	})
	root = corsHandler.Handler(root)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      root,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	logger.Info("server listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
