package database

import (
	"fmt"
	"time"

	"booksmart/internal/models"

	"gorm.io/gorm"
)

// Seed wipes the store and loads a small fixture set for development
func Seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, table := range []string{
			"task_participant", "meeting_participant", "category_task",
			"category_meeting", "reminder_participant",
		} {
			if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
		}
		for _, model := range []interface{}{
			&models.Reminder{}, &models.RecurrenceRule{}, &models.Task{},
			&models.Meeting{}, &models.Participant{}, &models.Category{},
		} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return err
			}
		}

		alice := models.Participant{Name: "Alice Johnson", Email: "alice@example.com"}
		bob := models.Participant{Name: "Bob Smith", Email: "bob@example.com"}
		charlie := models.Participant{Name: "Charlie Lee", Email: "charlie@example.com"}
		if err := tx.Create(&[]*models.Participant{&alice, &bob, &charlie}).Error; err != nil {
			return err
		}

		work := models.Category{Name: "Work", Color: "#4287F5"}
		personal := models.Category{Name: "Personal", Color: "#33FF57"}
		urgent := models.Category{Name: "Urgent", Color: "#FF5733"}
		if err := tx.Create(&[]*models.Category{&work, &personal, &urgent}).Error; err != nil {
			return err
		}

		tasks := []*models.Task{
			{
				Title:       "Complete Project Proposal",
				Description: "Write and submit the project proposal document.",
				DueDate:     time.Date(2025, 1, 30, 0, 0, 0, 0, time.UTC),
				Color:       "#FF5733",
				Categories:  []models.Category{work, urgent},
			},
			{
				Title:       "Buy Groceries",
				Description: "Purchase groceries for the week.",
				DueDate:     time.Date(2025, 1, 27, 0, 0, 0, 0, time.UTC),
				Color:       "#33FF57",
				Categories:  []models.Category{personal},
			},
		}
		if err := tx.Create(&tasks).Error; err != nil {
			return err
		}

		standup := models.Meeting{
			Title:        "Project Kickoff",
			Description:  "Kickoff meeting with the whole team.",
			Date:         time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC),
			StartTime:    "09:00:00",
			EndTime:      "10:00:00",
			Color:        "#4287F5",
			Participants: []models.Participant{alice, bob, charlie},
			Categories:   []models.Category{work},
		}
		if err := tx.Create(&standup).Error; err != nil {
			return err
		}

		weekly := models.Meeting{
			Title:       "Weekly Sync",
			Description: "Recurring team sync.",
			Date:        time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC),
			StartTime:   "14:00:00",
			EndTime:     "14:30:00",
			Participants: []models.Participant{
				alice, bob,
			},
		}
		if err := tx.Create(&weekly).Error; err != nil {
			return err
		}
		end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
		rule := models.RecurrenceRule{
			MeetingID: weekly.ID,
			Frequency: models.Weekly,
			Interval:  1,
			EndDate:   &end,
		}
		return tx.Create(&rule).Error
	})
}
