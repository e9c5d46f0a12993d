package database

import (
	"testing"

	"booksmart/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, Migrate(db))
	return db
}

func TestSeedLoadsFixtures(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Seed(db))

	count := func(model interface{}) int64 {
		var n int64
		require.NoError(t, db.Model(model).Count(&n).Error)
		return n
	}
	assert.Equal(t, int64(3), count(&models.Participant{}))
	assert.Equal(t, int64(3), count(&models.Category{}))
	assert.Equal(t, int64(2), count(&models.Task{}))
	assert.Equal(t, int64(2), count(&models.Meeting{}))
	assert.Equal(t, int64(1), count(&models.RecurrenceRule{}))

	var kickoff models.Meeting
	require.NoError(t, db.Preload("Participants").Preload("Categories").
		First(&kickoff, "title = ?", "Project Kickoff").Error)
	assert.Len(t, kickoff.Participants, 3)
	assert.Len(t, kickoff.Categories, 1)

	var rule models.RecurrenceRule
	require.NoError(t, db.Preload("Meeting").First(&rule).Error)
	assert.Equal(t, "Weekly Sync", rule.Meeting.Title)
	assert.Equal(t, models.Weekly, rule.Frequency)
	require.NotNil(t, rule.EndDate)
	assert.Equal(t, "2025-06-30", rule.EndDate.Format(models.DateFormat))
}

func TestSeedIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Seed(db))
	require.NoError(t, Seed(db))

	var n int64
	require.NoError(t, db.Model(&models.Participant{}).Count(&n).Error)
	assert.Equal(t, int64(3), n)
}
