// internal/service/crud_service_test.go
package service

import (
	"testing"
	"time"

	"learning_tracker/internal/model"
	"learning_tracker/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testServices struct {
	db         *gorm.DB
	languages  *CrudService[model.Language, model.LanguageRequest]
	topics     *CrudService[model.Topic, model.TopicRequest]
	progress   *CrudService[model.DailyProgress, model.DailyProgressRequest]
	resources  *CrudService[model.Resource, model.ResourceRequest]
	milestones *CrudService[model.Milestone, model.MilestoneRequest]
	goals      *CrudService[model.Goal, model.GoalRequest]
}

func setupTestServices(t *testing.T) *testServices {
	t.Helper()
	db := setupTestDB(t)

	languageRepo := repository.NewLanguageRepository()
	topicRepo := repository.NewTopicRepository()
	progressRepo := repository.NewProgressRepository()
	resourceRepo := repository.NewResourceRepository()
	milestoneRepo := repository.NewMilestoneRepository()
	goalRepo := repository.NewGoalRepository()

	resolver := NewLanguageResolver(languageRepo)

	return &testServices{
		db:         db,
		languages:  NewLanguageService(db, languageRepo, topicRepo, progressRepo, resourceRepo, milestoneRepo),
		topics:     NewTopicService(db, topicRepo, progressRepo, resolver),
		progress:   NewProgressService(db, progressRepo, topicRepo, resolver),
		resources:  NewResourceService(db, resourceRepo, resolver),
		milestones: NewMilestoneService(db, milestoneRepo, resolver),
		goals:      NewGoalService(db, goalRepo),
	}
}

func TestCrudService_OwnershipIsolation(t *testing.T) {
	ctx := testCtx()
	s := setupTestServices(t)
	alice := uuid.New()
	bob := uuid.New()

	language, err := s.languages.Create(ctx, alice, &model.LanguageRequest{Name: "Python"})
	require.NoError(t, err)

	t.Run("lists only own records", func(t *testing.T) {
		_, err := s.languages.Create(ctx, bob, &model.LanguageRequest{Name: "Ruby"})
		require.NoError(t, err)

		aliceLanguages, err := s.languages.List(ctx, alice)
		require.NoError(t, err)
		require.Len(t, aliceLanguages, 1)
		assert.Equal(t, "Python", aliceLanguages[0].Name)
	})

	t.Run("get of a foreign record is not found, not forbidden", func(t *testing.T) {
		_, err := s.languages.Get(ctx, bob, language.ID)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("update of a foreign record is not found", func(t *testing.T) {
		_, err := s.languages.Update(ctx, bob, language.ID, &model.LanguageRequest{Name: "Hijacked"})
		assert.ErrorIs(t, err, model.ErrNotFound)

		kept, err := s.languages.Get(ctx, alice, language.ID)
		require.NoError(t, err)
		assert.Equal(t, "Python", kept.Name)
	})

	t.Run("delete of a foreign record is not found", func(t *testing.T) {
		err := s.languages.Delete(ctx, bob, language.ID)
		assert.ErrorIs(t, err, model.ErrNotFound)

		_, err = s.languages.Get(ctx, alice, language.ID)
		assert.NoError(t, err)
	})
}

func TestLanguageService_CreateDefaults(t *testing.T) {
	ctx := testCtx()
	s := setupTestServices(t)
	userID := uuid.New()

	t.Run("defaults applied when omitted", func(t *testing.T) {
		language, err := s.languages.Create(ctx, userID, &model.LanguageRequest{Name: "Go"})
		require.NoError(t, err)
		assert.Equal(t, model.DifficultyBeginner, language.Difficulty)
		assert.WithinDuration(t, time.Now(), language.DateStarted, 25*time.Hour)
	})

	t.Run("explicit values kept", func(t *testing.T) {
		language, err := s.languages.Create(ctx, userID, &model.LanguageRequest{
			Name:        "Rust",
			Difficulty:  "Advanced",
			DateStarted: "2024-02-01",
		})
		require.NoError(t, err)
		assert.Equal(t, model.DifficultyAdvanced, language.Difficulty)
		assert.Equal(t, "2024-02-01", language.DateStarted.Format("2006-01-02"))
	})

	t.Run("duplicate name for the same user conflicts", func(t *testing.T) {
		_, err := s.languages.Create(ctx, userID, &model.LanguageRequest{Name: "Go"})
		assert.ErrorIs(t, err, model.ErrConflict)
	})

	t.Run("same name for another user is fine", func(t *testing.T) {
		_, err := s.languages.Create(ctx, uuid.New(), &model.LanguageRequest{Name: "Go"})
		assert.NoError(t, err)
	})
}

func TestLanguageService_DeleteCascades(t *testing.T) {
	ctx := testCtx()
	s := setupTestServices(t)
	userID := uuid.New()

	language, err := s.languages.Create(ctx, userID, &model.LanguageRequest{Name: "Python"})
	require.NoError(t, err)
	other, err := s.languages.Create(ctx, userID, &model.LanguageRequest{Name: "Go"})
	require.NoError(t, err)

	topic, err := s.topics.Create(ctx, userID, &model.TopicRequest{LanguageID: &language.ID, Name: "Decorators"})
	require.NoError(t, err)
	_, err = s.progress.Create(ctx, userID, &model.DailyProgressRequest{
		LanguageID: &language.ID, TopicID: &topic.ID, Notes: "studied decorators", TimeSpentMinutes: 30,
	})
	require.NoError(t, err)
	_, err = s.resources.Create(ctx, userID, &model.ResourceRequest{
		LanguageID: &language.ID, Title: "Fluent Python", Link: "https://example.com/fluent", ResourceType: "Book",
	})
	require.NoError(t, err)
	_, err = s.milestones.Create(ctx, userID, &model.MilestoneRequest{
		LanguageID: &language.ID, Title: "First script",
	})
	require.NoError(t, err)

	// An unrelated record under another language must survive the cascade.
	keptProgress, err := s.progress.Create(ctx, userID, &model.DailyProgressRequest{
		LanguageID: &other.ID, Notes: "goroutines", TimeSpentMinutes: 20,
	})
	require.NoError(t, err)

	require.NoError(t, s.languages.Delete(ctx, userID, language.ID))

	_, err = s.languages.Get(ctx, userID, language.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)

	for _, dest := range []interface{}{&model.Topic{}, &model.Resource{}, &model.Milestone{}} {
		var count int64
		require.NoError(t, s.db.Model(dest).Where("language_id = ?", language.ID).Count(&count).Error)
		assert.Zero(t, count)
	}
	var progressCount int64
	require.NoError(t, s.db.Model(&model.DailyProgress{}).Where("language_id = ?", language.ID).Count(&progressCount).Error)
	assert.Zero(t, progressCount)

	survivor, err := s.progress.Get(ctx, userID, keptProgress.ID)
	require.NoError(t, err)
	assert.Equal(t, other.ID, survivor.LanguageID)
}

func TestTopicService_DeleteDetachesProgress(t *testing.T) {
	ctx := testCtx()
	s := setupTestServices(t)
	userID := uuid.New()

	topic, err := s.topics.Create(ctx, userID, &model.TopicRequest{NewLanguage: "Python", Name: "Generators"})
	require.NoError(t, err)
	entry, err := s.progress.Create(ctx, userID, &model.DailyProgressRequest{
		LanguageID: &topic.LanguageID, TopicID: &topic.ID, Notes: "yield", TimeSpentMinutes: 15,
	})
	require.NoError(t, err)

	require.NoError(t, s.topics.Delete(ctx, userID, topic.ID))

	// The session survives with its topic reference cleared.
	kept, err := s.progress.Get(ctx, userID, entry.ID)
	require.NoError(t, err)
	assert.Nil(t, kept.TopicID)
	assert.Equal(t, "yield", kept.Notes)
}

func TestProgressService_CreateAndOrder(t *testing.T) {
	ctx := testCtx()
	s := setupTestServices(t)
	userID := uuid.New()

	language, err := s.languages.Create(ctx, userID, &model.LanguageRequest{Name: "Go"})
	require.NoError(t, err)

	t.Run("date and confidence default", func(t *testing.T) {
		entry, err := s.progress.Create(ctx, userID, &model.DailyProgressRequest{
			LanguageID: &language.ID, Notes: "channels", TimeSpentMinutes: 25,
		})
		require.NoError(t, err)
		assert.Equal(t, 3, entry.Confidence)
		assert.Equal(t, time.Now().Format("2006-01-02"), entry.Date.Format("2006-01-02"))
	})

	t.Run("zero minutes rejected", func(t *testing.T) {
		// The gt=0 rule is enforced at the handler; the service still refuses
		// a topic reference it cannot resolve.
		missingTopic := uuid.New()
		_, err := s.progress.Create(ctx, userID, &model.DailyProgressRequest{
			LanguageID: &language.ID, TopicID: &missingTopic, Notes: "x", TimeSpentMinutes: 10,
		})
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("foreign topic reference is not found", func(t *testing.T) {
		otherUser := uuid.New()
		foreignTopic, err := s.topics.Create(ctx, otherUser, &model.TopicRequest{NewLanguage: "Go", Name: "Maps"})
		require.NoError(t, err)

		_, err = s.progress.Create(ctx, userID, &model.DailyProgressRequest{
			LanguageID: &language.ID, TopicID: &foreignTopic.ID, Notes: "x", TimeSpentMinutes: 10,
		})
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("list is newest study date first", func(t *testing.T) {
		_, err := s.progress.Create(ctx, userID, &model.DailyProgressRequest{
			LanguageID: &language.ID, Date: "2024-01-10", Notes: "older", TimeSpentMinutes: 10,
		})
		require.NoError(t, err)
		_, err = s.progress.Create(ctx, userID, &model.DailyProgressRequest{
			LanguageID: &language.ID, Date: "2024-03-05", Notes: "newer", TimeSpentMinutes: 10,
		})
		require.NoError(t, err)

		entries, err := s.progress.List(ctx, userID)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(entries), 3)
		for i := 1; i < len(entries); i++ {
			assert.False(t, entries[i-1].Date.Before(entries[i].Date),
				"entries must be ordered by date descending")
		}
	})
}

func TestMilestoneService_DateCreatedImmutable(t *testing.T) {
	ctx := testCtx()
	s := setupTestServices(t)
	userID := uuid.New()

	milestone, err := s.milestones.Create(ctx, userID, &model.MilestoneRequest{
		NewLanguage: "Go", Title: "First CLI tool",
	})
	require.NoError(t, err)
	created := milestone.DateCreated

	updated, err := s.milestones.Update(ctx, userID, milestone.ID, &model.MilestoneRequest{
		LanguageID: &milestone.LanguageID, Title: "First CLI tool", IsCompleted: true,
	})
	require.NoError(t, err)
	assert.True(t, updated.IsCompleted)
	assert.Equal(t, created.Format("2006-01-02"), updated.DateCreated.Format("2006-01-02"))
}

func TestResourceService_Update(t *testing.T) {
	ctx := testCtx()
	s := setupTestServices(t)
	userID := uuid.New()

	resource, err := s.resources.Create(ctx, userID, &model.ResourceRequest{
		NewLanguage: "Go", Title: "Tour of Go", Link: "https://go.dev/tour", ResourceType: "Course",
	})
	require.NoError(t, err)
	assert.Equal(t, model.ResourceCourse, resource.ResourceType)

	// Moving the resource to a new language via free text creates it.
	updated, err := s.resources.Update(ctx, userID, resource.ID, &model.ResourceRequest{
		NewLanguage: "Zig", Title: "Tour of Go", Link: "https://go.dev/tour", ResourceType: "Course",
	})
	require.NoError(t, err)
	assert.NotEqual(t, resource.LanguageID, updated.LanguageID)

	var language model.Language
	require.NoError(t, s.db.Where("user_id = ? AND name = ?", userID, "Zig").First(&language).Error)
	assert.Equal(t, language.ID, updated.LanguageID)
}

func TestGoalService_Crud(t *testing.T) {
	ctx := testCtx()
	s := setupTestServices(t)
	userID := uuid.New()

	goal, err := s.goals.Create(ctx, userID, &model.GoalRequest{
		Title: "Ship a side project", TargetDate: "2026-12-31",
	})
	require.NoError(t, err)
	assert.False(t, goal.IsCompleted)
	assert.Equal(t, "2026-12-31", goal.TargetDate.Format("2006-01-02"))

	updated, err := s.goals.Update(ctx, userID, goal.ID, &model.GoalRequest{
		Title: "Ship a side project", TargetDate: "2026-12-31", IsCompleted: true,
	})
	require.NoError(t, err)
	assert.True(t, updated.IsCompleted)

	require.NoError(t, s.goals.Delete(ctx, userID, goal.ID))
	_, err = s.goals.Get(ctx, userID, goal.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)
}
