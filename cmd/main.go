// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"learning_tracker/internal/config"
	"learning_tracker/internal/handlers"
	"learning_tracker/internal/middleware"
	"learning_tracker/internal/model"
	"learning_tracker/internal/repository"
	"learning_tracker/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// Temporary logger until the config-driven one is ready.
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		tempLogger.Info("No .env file found, relying on environment variables")
	}

	if err := config.LoadConfig("configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		tintOpts := &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		}
		handler = tint.NewHandler(os.Stderr, tintOpts)
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		jsonOpts := &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		}
		handler = slog.NewJSONHandler(os.Stderr, jsonOpts)
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	logger := slog.New(handler)
	log.Println("Log Config Loaded...")

	slog.SetDefault(logger)

	slog.Info("Application starting...")

	// 2. Initialize Database Connection (GORM)
	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	if err := db.AutoMigrate(
		&model.User{},
		&model.Language{},
		&model.Topic{},
		&model.DailyProgress{},
		&model.Resource{},
		&model.Milestone{},
		&model.Goal{},
	); err != nil {
		slog.Error("Error running database migrations", slog.Any("error", err))
		os.Exit(1)
	}

	// 3. Dependency Injection
	userRepo := repository.NewUserRepository()
	languageRepo := repository.NewLanguageRepository()
	topicRepo := repository.NewTopicRepository()
	progressRepo := repository.NewProgressRepository()
	resourceRepo := repository.NewResourceRepository()
	milestoneRepo := repository.NewMilestoneRepository()
	goalRepo := repository.NewGoalRepository()

	resolver := service.NewLanguageResolver(languageRepo)

	var mailer service.Mailer
	switch strings.ToLower(config.Cfg.Mailer.Provider) {
	case "ses":
		mailer = service.NewSESMailer(&config.Cfg)
		slog.Info("Using SES mailer")
	default:
		mailer = &service.LogMailer{}
		slog.Info("Using log mailer")
	}

	languageService := service.NewLanguageService(db, languageRepo, topicRepo, progressRepo, resourceRepo, milestoneRepo)
	topicService := service.NewTopicService(db, topicRepo, progressRepo, resolver)
	progressService := service.NewProgressService(db, progressRepo, topicRepo, resolver)
	resourceService := service.NewResourceService(db, resourceRepo, resolver)
	milestoneService := service.NewMilestoneService(db, milestoneRepo, resolver)
	goalService := service.NewGoalService(db, goalRepo)
	dashboardService := service.NewDashboardService(db, languageRepo, progressRepo, goalRepo, milestoneRepo, &config.Cfg)
	authService := service.NewAuthService(db, userRepo, mailer, &config.Cfg)

	languageHandler := handlers.NewCrudHandler(languageService, "language", logger)
	topicHandler := handlers.NewCrudHandler(topicService, "topic", logger)
	progressHandler := handlers.NewCrudHandler(progressService, "progress entry", logger)
	resourceHandler := handlers.NewCrudHandler(resourceService, "resource", logger)
	milestoneHandler := handlers.NewCrudHandler(milestoneService, "milestone", logger)
	goalHandler := handlers.NewCrudHandler(goalService, "goal", logger)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, logger)
	authHandler := handlers.NewAuthHandler(authService, logger)

	// 4. Setup Router
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsOptions := cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
		Debug:            false,
	}
	corsHandler := cors.New(corsOptions)
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// API Routes
	r.Route("/api/v1", func(r chi.Router) {
		// --- Public routes ---
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// --- Protected routes (require a valid access token) ---
		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuthMiddleware(&config.Cfg))

			r.Get("/dashboard", dashboardHandler.GetDashboard)

			r.Route("/languages", languageHandler.Routes)
			r.Route("/topics", topicHandler.Routes)
			r.Route("/progress", progressHandler.Routes)
			r.Route("/resources", resourceHandler.Routes)
			r.Route("/milestones", milestoneHandler.Routes)
			r.Route("/goals", goalHandler.Routes)
		})
	})

	// Health Check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sqlDB, err := db.DB()
		if err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not get DB object", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// 5. Start Server
	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
