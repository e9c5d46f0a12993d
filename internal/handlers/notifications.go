package handlers

import (
	"errors"
	"net/http"

	"booksmart/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// NotifyMeetingRequest identifies the meeting whose participants to email
type NotifyMeetingRequest struct {
	MeetingID uint `json:"meeting_id" binding:"required"`
}

// NotifyTaskRequest identifies the task whose participants to email
type NotifyTaskRequest struct {
	TaskID uint `json:"task_id" binding:"required"`
}

// NotifyMeeting emails every participant of a meeting. A meeting without
// participants is a successful no-op.
func (h *Handler) NotifyMeeting(c *gin.Context) {
	var req NotifyMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, http.StatusBadRequest, "Invalid input: "+err.Error(), err)
		return
	}

	var meeting models.Meeting
	if err := h.db.Preload("Participants").First(&meeting, "id = ?", req.MeetingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.handleError(c, http.StatusNotFound, "Meeting not found", err)
			return
		}
		h.handleError(c, http.StatusInternalServerError, "Failed to retrieve meeting", err)
		return
	}

	if len(meeting.Participants) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "No participants to notify"})
		return
	}

	if err := h.notifier.MeetingInvite(meeting, meeting.Participants); err != nil {
		h.handleError(c, http.StatusInternalServerError, "Failed to send emails: "+err.Error(), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification sent to participants"})
}

// NotifyTask emails every participant assigned to a task
func (h *Handler) NotifyTask(c *gin.Context) {
	var req NotifyTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, http.StatusBadRequest, "Invalid input: "+err.Error(), err)
		return
	}

	var task models.Task
	if err := h.db.Preload("Participants").First(&task, "id = ?", req.TaskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.handleError(c, http.StatusNotFound, "Task not found", err)
			return
		}
		h.handleError(c, http.StatusInternalServerError, "Failed to retrieve task", err)
		return
	}

	if len(task.Participants) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "No participants to notify"})
		return
	}

	if err := h.notifier.TaskAssignment(task, task.Participants); err != nil {
		h.handleError(c, http.StatusInternalServerError, "Failed to send emails: "+err.Error(), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification sent to participants"})
}
