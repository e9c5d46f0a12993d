package handlers

import (
	"errors"
	"net/http"

	"booksmart/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateParticipant registers a participant without credentials
func (h *Handler) CreateParticipant(c *gin.Context) {
	var req models.CreateParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, http.StatusBadRequest, "Invalid input: "+err.Error(), err)
		return
	}

	var existing models.Participant
	if err := h.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		h.handleError(c, http.StatusConflict, "Email already registered", gorm.ErrDuplicatedKey)
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		h.handleError(c, http.StatusInternalServerError, "Failed to create participant", err)
		return
	}

	participant := models.Participant{Name: req.Name, Email: req.Email}
	if err := h.db.Create(&participant).Error; err != nil {
		h.handleError(c, http.StatusInternalServerError, "Failed to create participant", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Participant created successfully",
		"participant_id": participant.ID,
	})
}

// GetParticipants lists all participants
func (h *Handler) GetParticipants(c *gin.Context) {
	var participants []models.Participant
	if err := h.db.Find(&participants).Error; err != nil {
		h.handleError(c, http.StatusInternalServerError, "Failed to list participants", err)
		return
	}
	c.JSON(http.StatusOK, participantSummaries(participants))
}

// GetParticipant retrieves one participant by id
func (h *Handler) GetParticipant(c *gin.Context) {
	var participant models.Participant
	if err := h.db.First(&participant, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.handleError(c, http.StatusNotFound, "Participant not found", err)
			return
		}
		h.handleError(c, http.StatusInternalServerError, "Failed to retrieve participant", err)
		return
	}
	c.JSON(http.StatusOK, participantSummary(participant))
}

// DeleteParticipant removes a participant and its association rows
func (h *Handler) DeleteParticipant(c *gin.Context) {
	var participant models.Participant
	if err := h.db.First(&participant, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.handleError(c, http.StatusNotFound, "Participant not found", err)
			return
		}
		h.handleError(c, http.StatusInternalServerError, "Failed to retrieve participant", err)
		return
	}

	if err := h.db.Select(clause.Associations).Delete(&participant).Error; err != nil {
		h.handleError(c, http.StatusInternalServerError, "Failed to delete participant", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Participant deleted successfully"})
}
