// internal/service/main_test.go
package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"learning_tracker/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupTestDB opens a fresh in-memory database per test. The uuid in the DSN
// keeps parallel tests from sharing state through sqlite's shared cache.
func setupTestDB(t *testing.T) *gorm.DB {
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
	return db
}

func mustCreateLanguage(t *testing.T, db *gorm.DB, userID uuid.UUID, name string) *model.Language {
	t.Helper()
	language := &model.Language{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        name,
		Difficulty:  model.DifficultyBeginner,
		DateStarted: time.Now().Truncate(24 * time.Hour),
	}
	require.NoError(t, db.Create(language).Error)
	return language
}

func countRows(t *testing.T, db *gorm.DB, dest interface{}) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(dest).Count(&count).Error)
	return count
}

func testCtx() context.Context {
	return context.Background()
}
