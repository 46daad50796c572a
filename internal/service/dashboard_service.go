// internal/service/dashboard_service.go
package service

import (
	"context"

	"learning_tracker/internal/config"
	"learning_tracker/internal/middleware"
	"learning_tracker/internal/model"
	"learning_tracker/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DashboardService interface {
	GetDashboard(ctx context.Context, userID uuid.UUID) (*model.DashboardResponse, error)
}

type dashboardService struct {
	db         *gorm.DB
	languages  *repository.LanguageRepository
	progress   *repository.ProgressRepository
	goals      *repository.GoalRepository
	milestones *repository.MilestoneRepository
	cfg        *config.Config
}

func NewDashboardService(
	db *gorm.DB,
	languages *repository.LanguageRepository,
	progress *repository.ProgressRepository,
	goals *repository.GoalRepository,
	milestones *repository.MilestoneRepository,
	cfg *config.Config,
) DashboardService {
	return &dashboardService{
		db:         db,
		languages:  languages,
		progress:   progress,
		goals:      goals,
		milestones: milestones,
		cfg:        cfg,
	}
}

// GetDashboard aggregates one user's learning state in a single read-only
// pass: entity counts, the nearest incomplete goals, the latest completed
// milestones, and per-language study minutes as parallel label/value slices.
// Languages keep the user's list order and languages without sessions report
// zero minutes rather than being skipped.
func (s *dashboardService) GetDashboard(ctx context.Context, userID uuid.UUID) (*model.DashboardResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	languages, err := s.languages.List(ctx, s.db, userID, "created_at ASC")
	if err != nil {
		logger.Error("Failed to list languages for dashboard", "error", err)
		return nil, model.ErrInternalServer
	}

	totalEntries, err := s.progress.CountByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to count progress entries for dashboard", "error", err)
		return nil, model.ErrInternalServer
	}

	upcomingGoals, err := s.goals.FindUpcoming(ctx, s.db, userID, s.cfg.App.UpcomingGoalLimit)
	if err != nil {
		logger.Error("Failed to find upcoming goals for dashboard", "error", err)
		return nil, model.ErrInternalServer
	}

	recentMilestones, err := s.milestones.FindRecentCompleted(ctx, s.db, userID, s.cfg.App.RecentMilestoneLimit)
	if err != nil {
		logger.Error("Failed to find recent milestones for dashboard", "error", err)
		return nil, model.ErrInternalServer
	}

	sums, err := s.progress.SumMinutesByLanguage(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to sum study minutes for dashboard", "error", err)
		return nil, model.ErrInternalServer
	}

	labels := make([]string, 0, len(languages))
	data := make([]int64, 0, len(languages))
	for _, language := range languages {
		labels = append(labels, language.Name)
		data = append(data, sums[language.ID])
	}

	if upcomingGoals == nil {
		upcomingGoals = []*model.Goal{}
	}
	if recentMilestones == nil {
		recentMilestones = []*model.Milestone{}
	}

	return &model.DashboardResponse{
		TotalLanguages:       int64(len(languages)),
		TotalProgressEntries: totalEntries,
		UpcomingGoals:        upcomingGoals,
		RecentMilestones:     recentMilestones,
		ChartLabels:          labels,
		ChartData:            data,
	}, nil
}
