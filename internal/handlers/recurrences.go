package handlers

import (
	"net/http"
	"time"

	"booksmart/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateRecurrence creates a meeting together with its recurrence rule.
// Both rows are written in one transaction so a failed rule insert never
// leaves an orphaned meeting behind.
func (h *Handler) CreateRecurrence(c *gin.Context) {
	var req models.CreateRecurrenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, http.StatusBadRequest, "Invalid input: "+err.Error(), err)
		return
	}

	meeting, err := meetingFromRequest(models.CreateMeetingRequest{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Color:       req.Color,
	})
	if err != nil {
		h.handleError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	var endDate *time.Time
	if req.EndDate != "" {
		parsed, err := parseDate(req.EndDate, "end_date")
		if err != nil {
			h.handleError(c, http.StatusBadRequest, err.Error(), err)
			return
		}
		endDate = &parsed
	}

	interval := req.Interval
	if interval == 0 {
		interval = 1
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&meeting).Error; err != nil {
			return err
		}
		rule := models.RecurrenceRule{
			MeetingID: meeting.ID,
			Frequency: req.Frequency,
			Interval:  interval,
			EndDate:   endDate,
		}
		return tx.Create(&rule).Error
	})
	if err != nil {
		h.handleError(c, http.StatusInternalServerError, "Failed to create recurring meeting", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Recurring meeting created", "meeting_id": meeting.ID})
}

// GetRecurrences lists every recurrence rule joined with its meeting
// fields. Rules are metadata only; no occurrence dates are computed.
func (h *Handler) GetRecurrences(c *gin.Context) {
	var rules []models.RecurrenceRule
	if err := h.db.Preload("Meeting").Find(&rules).Error; err != nil {
		h.handleError(c, http.StatusInternalServerError, "Failed to list recurring meetings", err)
		return
	}

	out := make([]gin.H, 0, len(rules))
	for _, rule := range rules {
		entry := gin.H{
			"recurrence_id": rule.ID,
			"meeting_id":    rule.Meeting.ID,
			"title":         rule.Meeting.Title,
			"description":   rule.Meeting.Description,
			"date":          rule.Meeting.Date.Format(models.DateFormat),
			"start_time":    rule.Meeting.StartTime,
			"end_time":      rule.Meeting.EndTime,
			"frequency":     rule.Frequency,
			"interval":      rule.Interval,
			"end_date":      nil,
		}
		if rule.EndDate != nil {
			entry["end_date"] = rule.EndDate.Format(models.DateFormat)
		}
		out = append(out, entry)
	}
	c.JSON(http.StatusOK, gin.H{"recurring_meetings": out})
}
