package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"booksmart/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateReminder creates a reminder pinned to exactly one task or meeting
func (h *Handler) CreateReminder(c *gin.Context) {
	var req models.CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, http.StatusBadRequest, "Invalid input: "+err.Error(), err)
		return
	}

	if req.TaskID == nil && req.MeetingID == nil {
		h.handleError(c, http.StatusBadRequest, "Either task_id or meeting_id must be provided.",
			fmt.Errorf("neither task_id nor meeting_id supplied"))
		return
	}
	if req.TaskID != nil && req.MeetingID != nil {
		h.handleError(c, http.StatusBadRequest, "Only one of task_id or meeting_id can be provided.",
			fmt.Errorf("both task_id and meeting_id supplied"))
		return
	}

	reminderTime, err := parseDateTime(req.ReminderTime, "reminder_time")
	if err != nil {
		h.handleError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	reminder := models.Reminder{
		Message:      req.Message,
		ReminderTime: reminderTime,
		TaskID:       req.TaskID,
		MeetingID:    req.MeetingID,
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if req.TaskID != nil {
			var task models.Task
			if err := tx.First(&task, "id = ?", *req.TaskID).Error; err != nil {
				return fmt.Errorf("task: %w", err)
			}
		}
		if req.MeetingID != nil {
			var meeting models.Meeting
			if err := tx.First(&meeting, "id = ?", *req.MeetingID).Error; err != nil {
				return fmt.Errorf("meeting: %w", err)
			}
		}
		participants, err := loadParticipants(tx, req.ParticipantIDs)
		if err != nil {
			return err
		}
		reminder.Participants = participants
		return tx.Create(&reminder).Error
	})
	if err != nil {
		var missing missingRefsError
		if errors.As(err, &missing) {
			h.handleError(c, http.StatusNotFound, "One or more participants not found", err)
			return
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if req.TaskID != nil {
				h.handleError(c, http.StatusNotFound, "Task not found", err)
			} else {
				h.handleError(c, http.StatusNotFound, "Meeting not found", err)
			}
			return
		}
		h.handleError(c, http.StatusInternalServerError, "Failed to create reminder", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reminder created successfully", "reminder_id": reminder.ID})
}

// GetReminders lists all reminders with their participant summaries
func (h *Handler) GetReminders(c *gin.Context) {
	var reminders []models.Reminder
	if err := h.db.Preload("Participants").Find(&reminders).Error; err != nil {
		h.handleError(c, http.StatusInternalServerError, "Failed to list reminders", err)
		return
	}

	ids := make([]uint, 0, len(reminders))
	for _, reminder := range reminders {
		ids = append(ids, reminder.ID)
	}
	participantOrder, err := joinOrder(h.db, "reminder_participant", "reminder_id", "participant_id", ids)
	if err != nil {
		h.handleError(c, http.StatusInternalServerError, "Failed to list reminders", err)
		return
	}
	for i := range reminders {
		reminders[i].Participants = orderParticipants(reminders[i].Participants, participantOrder[reminders[i].ID])
	}

	out := make([]gin.H, 0, len(reminders))
	for _, reminder := range reminders {
		out = append(out, gin.H{
			"id":            reminder.ID,
			"message":       reminder.Message,
			"reminder_time": reminder.ReminderTime.Format(models.DateTimeFormat),
			"task_id":       reminder.TaskID,
			"meeting_id":    reminder.MeetingID,
			"participants":  participantSummaries(reminder.Participants),
		})
	}
	c.JSON(http.StatusOK, out)
}
