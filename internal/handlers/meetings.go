package handlers

import (
	"errors"
	"net/http"

	"booksmart/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func meetingResponse(meeting models.Meeting) gin.H {
	return gin.H{
		"id":           meeting.ID,
		"title":        meeting.Title,
		"description":  meeting.Description,
		"date":         meeting.Date.Format(models.DateFormat),
		"start_time":   meeting.StartTime,
		"end_time":     meeting.EndTime,
		"color":        meeting.Color,
		"participants": participantSummaries(meeting.Participants),
		"categories":   categorySummaries(meeting.Categories),
	}
}

// CreateMeeting creates a meeting. Every referenced participant and
// category id must resolve, otherwise nothing is created.
func (h *Handler) CreateMeeting(c *gin.Context) {
	var req models.CreateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, http.StatusBadRequest, "Invalid input: "+err.Error(), err)
		return
	}

	meeting, err := meetingFromRequest(req)
	if err != nil {
		h.handleError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		participants, err := loadParticipants(tx, req.ParticipantIDs)
		if err != nil {
			return err
		}
		categories, err := loadCategories(tx, req.CategoryIDs)
		if err != nil {
			return err
		}
		meeting.Participants = participants
		meeting.Categories = categories
		return tx.Create(&meeting).Error
	})
	if err != nil {
		var missing missingRefsError
		if errors.As(err, &missing) {
			h.handleError(c, http.StatusNotFound, "One or more "+missing.kind+" not found", err)
			return
		}
		h.handleError(c, http.StatusInternalServerError, "Failed to create meeting", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Meeting created successfully", "meeting_id": meeting.ID})
}

func meetingFromRequest(req models.CreateMeetingRequest) (models.Meeting, error) {
	date, err := parseDate(req.Date, "date")
	if err != nil {
		return models.Meeting{}, err
	}
	startTime, err := parseTimeOfDay(req.StartTime, "start_time")
	if err != nil {
		return models.Meeting{}, err
	}
	endTime, err := parseTimeOfDay(req.EndTime, "end_time")
	if err != nil {
		return models.Meeting{}, err
	}
	return models.Meeting{
		Title:       req.Title,
		Description: req.Description,
		Date:        date,
		StartTime:   startTime,
		EndTime:     endTime,
		Color:       req.Color,
	}, nil
}

// orderMeetingAssociations rewrites preloaded association slices into
// join-row insertion order.
func (h *Handler) orderMeetingAssociations(meetings []models.Meeting) error {
	ids := make([]uint, 0, len(meetings))
	for _, meeting := range meetings {
		ids = append(ids, meeting.ID)
	}
	participantOrder, err := joinOrder(h.db, "meeting_participant", "meeting_id", "participant_id", ids)
	if err != nil {
		return err
	}
	categoryOrder, err := joinOrder(h.db, "category_meeting", "meeting_id", "category_id", ids)
	if err != nil {
		return err
	}
	for i := range meetings {
		meetings[i].Participants = orderParticipants(meetings[i].Participants, participantOrder[meetings[i].ID])
		meetings[i].Categories = orderCategories(meetings[i].Categories, categoryOrder[meetings[i].ID])
	}
	return nil
}

// GetMeetings lists all meetings with their association summaries
func (h *Handler) GetMeetings(c *gin.Context) {
	var meetings []models.Meeting
	if err := h.db.Preload("Participants").Preload("Categories").Find(&meetings).Error; err != nil {
		h.handleError(c, http.StatusInternalServerError, "Failed to list meetings", err)
		return
	}
	if err := h.orderMeetingAssociations(meetings); err != nil {
		h.handleError(c, http.StatusInternalServerError, "Failed to list meetings", err)
		return
	}

	out := make([]gin.H, 0, len(meetings))
	for _, meeting := range meetings {
		out = append(out, meetingResponse(meeting))
	}
	c.JSON(http.StatusOK, out)
}

// GetMeeting retrieves one meeting by id
func (h *Handler) GetMeeting(c *gin.Context) {
	var meeting models.Meeting
	if err := h.db.Preload("Participants").Preload("Categories").
		First(&meeting, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.handleError(c, http.StatusNotFound, "Meeting not found", err)
			return
		}
		h.handleError(c, http.StatusInternalServerError, "Failed to retrieve meeting", err)
		return
	}

	meetings := []models.Meeting{meeting}
	if err := h.orderMeetingAssociations(meetings); err != nil {
		h.handleError(c, http.StatusInternalServerError, "Failed to retrieve meeting", err)
		return
	}
	c.JSON(http.StatusOK, meetingResponse(meetings[0]))
}

// UpdateMeeting applies a partial patch with the same semantics as
// UpdateTask.
func (h *Handler) UpdateMeeting(c *gin.Context) {
	var req models.UpdateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, http.StatusBadRequest, "Invalid input: "+err.Error(), err)
		return
	}

	var meeting models.Meeting
	if err := h.db.First(&meeting, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.handleError(c, http.StatusNotFound, "Meeting not found", err)
			return
		}
		h.handleError(c, http.StatusInternalServerError, "Failed to retrieve meeting", err)
		return
	}

	if req.Title != nil {
		meeting.Title = *req.Title
	}
	if req.Description != nil {
		meeting.Description = *req.Description
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date, "date")
		if err != nil {
			h.handleError(c, http.StatusBadRequest, err.Error(), err)
			return
		}
		meeting.Date = date
	}
	if req.StartTime != nil {
		startTime, err := parseTimeOfDay(*req.StartTime, "start_time")
		if err != nil {
			h.handleError(c, http.StatusBadRequest, err.Error(), err)
			return
		}
		meeting.StartTime = startTime
	}
	if req.EndTime != nil {
		endTime, err := parseTimeOfDay(*req.EndTime, "end_time")
		if err != nil {
			h.handleError(c, http.StatusBadRequest, err.Error(), err)
			return
		}
		meeting.EndTime = endTime
	}
	if req.Color != nil {
		meeting.Color = *req.Color
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&meeting).
			Select("Title", "Description", "Date", "StartTime", "EndTime", "Color").
			Updates(&meeting).Error; err != nil {
			return err
		}
		// Clear before appending so the join rows are rewritten in the
		// supplied order; Replace would keep surviving rows in place.
		if req.ParticipantIDs != nil {
			participants, err := loadParticipants(tx, *req.ParticipantIDs)
			if err != nil {
				return err
			}
			if err := tx.Model(&meeting).Association("Participants").Clear(); err != nil {
				return err
			}
			if len(participants) > 0 {
				// A fresh Association is required after Clear; reusing the
				// cleared one panics inside gorm's saveAssociation.
				if err := tx.Model(&meeting).Association("Participants").Append(participants); err != nil {
					return err
				}
			}
		}
		if req.CategoryIDs != nil {
			categories, err := loadCategories(tx, *req.CategoryIDs)
			if err != nil {
				return err
			}
			if err := tx.Model(&meeting).Association("Categories").Clear(); err != nil {
				return err
			}
			if len(categories) > 0 {
				if err := tx.Model(&meeting).Association("Categories").Append(categories); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		var missing missingRefsError
		if errors.As(err, &missing) {
			h.handleError(c, http.StatusNotFound, "One or more "+missing.kind+" not found", err)
			return
		}
		h.handleError(c, http.StatusInternalServerError, "Failed to update meeting", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Meeting updated successfully"})
}

// DeleteMeeting removes a meeting and its association rows. Reminders and
// recurrence rules that reference the meeting are left in place.
func (h *Handler) DeleteMeeting(c *gin.Context) {
	var meeting models.Meeting
	if err := h.db.First(&meeting, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.handleError(c, http.StatusNotFound, "Meeting not found", err)
			return
		}
		h.handleError(c, http.StatusInternalServerError, "Failed to retrieve meeting", err)
		return
	}

	if err := h.db.Select("Participants", "Categories").Delete(&meeting).Error; err != nil {
		h.handleError(c, http.StatusInternalServerError, "Failed to delete meeting", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meeting deleted successfully"})
}
