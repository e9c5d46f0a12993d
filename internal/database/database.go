package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"booksmart/internal/config"
	"booksmart/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the database and runs migrations. A sqlite store file is
// the default; setting DATABASE_URL switches to postgres.
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	gormConfig := &gorm.Config{
		Logger: gormLogger,
	}

	var dialector gorm.Dialector
	if cfg.URL != "" {
		dialector = postgres.Open(cfg.URL)
	} else {
		if err := ensureDirForSQLite(cfg.Path); err != nil {
			return nil, err
		}
		dialector = sqlite.Open(cfg.Path)
	}

	// Open connection with retry logic
	var db *gorm.DB
	var err error
	maxRetries := 5
	retryDelay := 5 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = gorm.Open(dialector, gormConfig)
		if err == nil {
			break
		}
		log.Printf("Database connection attempt %d failed: %v", i+1, err)
		if i < maxRetries-1 {
			time.Sleep(retryDelay)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates or updates the schema for every entity and join table
func Migrate(db *gorm.DB) error {
	joins := []struct {
		model interface{}
		field string
		join  interface{}
	}{
		{&models.Task{}, "Participants", &models.TaskParticipant{}},
		{&models.Task{}, "Categories", &models.CategoryTask{}},
		{&models.Meeting{}, "Participants", &models.MeetingParticipant{}},
		{&models.Meeting{}, "Categories", &models.CategoryMeeting{}},
		{&models.Reminder{}, "Participants", &models.ReminderParticipant{}},
		{&models.Participant{}, "Tasks", &models.TaskParticipant{}},
		{&models.Participant{}, "Meetings", &models.MeetingParticipant{}},
		{&models.Participant{}, "Reminders", &models.ReminderParticipant{}},
		{&models.Category{}, "Tasks", &models.CategoryTask{}},
		{&models.Category{}, "Meetings", &models.CategoryMeeting{}},
	}
	for _, j := range joins {
		if err := db.SetupJoinTable(j.model, j.field, j.join); err != nil {
			return fmt.Errorf("failed to set up join table %T: %w", j.join, err)
		}
	}

	if err := db.AutoMigrate(
		&models.Participant{},
		&models.Category{},
		&models.Task{},
		&models.Meeting{},
		&models.RecurrenceRule{},
		&models.Reminder{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// ensureDirForSQLite creates the parent dir for the sqlite file if needed
func ensureDirForSQLite(dsn string) error {
	if strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory") {
		return nil
	}
	clean := strings.TrimPrefix(dsn, "file:")
	clean = strings.Split(clean, "?")[0]
	dir := filepath.Dir(clean)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create database directory: %w", err)
	}
	return nil
}
