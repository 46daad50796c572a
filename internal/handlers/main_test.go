// internal/handlers/main_test.go
package handlers_test

import (
	"fmt"
	"log/slog"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"learning_tracker/internal/config"
	"learning_tracker/internal/handlers"
	"learning_tracker/internal/middleware"
	"learning_tracker/internal/model"
	"learning_tracker/internal/repository"
	"learning_tracker/internal/service"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var testLogger *slog.Logger

func TestMain(m *testing.M) {
	testLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(testLogger)
	os.Exit(m.Run())
}

type testApp struct {
	db     *gorm.DB
	router *chi.Mux
	server *httptest.Server
}

// setupTestApp wires the full application against a fresh in-memory database,
// with the dev auth middleware in place of JWT so tests authenticate by
// sending an X-User-ID header.
func setupTestApp(t *testing.T) *testApp {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err, "failed to connect database for testing")

	err = db.AutoMigrate(
		&model.User{},
		&model.Language{},
		&model.Topic{},
		&model.DailyProgress{},
		&model.Resource{},
		&model.Milestone{},
		&model.Goal{},
	)
	require.NoError(t, err, "failed to migrate database for testing")

	cfg := &config.Config{}
	cfg.App.UpcomingGoalLimit = 5
	cfg.App.RecentMilestoneLimit = 5
	cfg.JWT.SecretKey = "test-secret"
	cfg.JWT.ExpiryHours = 1

	userRepo := repository.NewUserRepository()
	languageRepo := repository.NewLanguageRepository()
	topicRepo := repository.NewTopicRepository()
	progressRepo := repository.NewProgressRepository()
	resourceRepo := repository.NewResourceRepository()
	milestoneRepo := repository.NewMilestoneRepository()
	goalRepo := repository.NewGoalRepository()

	resolver := service.NewLanguageResolver(languageRepo)

	languageService := service.NewLanguageService(db, languageRepo, topicRepo, progressRepo, resourceRepo, milestoneRepo)
	topicService := service.NewTopicService(db, topicRepo, progressRepo, resolver)
	progressService := service.NewProgressService(db, progressRepo, topicRepo, resolver)
	resourceService := service.NewResourceService(db, resourceRepo, resolver)
	milestoneService := service.NewMilestoneService(db, milestoneRepo, resolver)
	goalService := service.NewGoalService(db, goalRepo)
	dashboardService := service.NewDashboardService(db, languageRepo, progressRepo, goalRepo, milestoneRepo, cfg)
	authService := service.NewAuthService(db, userRepo, &service.LogMailer{}, cfg)

	languageHandler := handlers.NewCrudHandler(languageService, "language", testLogger)
	topicHandler := handlers.NewCrudHandler(topicService, "topic", testLogger)
	progressHandler := handlers.NewCrudHandler(progressService, "progress entry", testLogger)
	resourceHandler := handlers.NewCrudHandler(resourceService, "resource", testLogger)
	milestoneHandler := handlers.NewCrudHandler(milestoneService, "milestone", testLogger)
	goalHandler := handlers.NewCrudHandler(goalService, "goal", testLogger)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, testLogger)
	authHandler := handlers.NewAuthHandler(authService, testLogger)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(5 * time.Second))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.DevUserContextMiddleware)

			r.Get("/dashboard", dashboardHandler.GetDashboard)

			r.Route("/languages", languageHandler.Routes)
			r.Route("/topics", topicHandler.Routes)
			r.Route("/progress", progressHandler.Routes)
			r.Route("/resources", resourceHandler.Routes)
			r.Route("/milestones", milestoneHandler.Routes)
			r.Route("/goals", goalHandler.Routes)
		})
	})

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	return &testApp{db: db, router: r, server: server}
}
