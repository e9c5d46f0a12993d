package handlers

import (
	"errors"
	"net/http"

	"booksmart/internal/auth"
	"booksmart/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Signup registers a participant with credentials
func (h *Handler) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, http.StatusBadRequest, "Invalid input: "+err.Error(), err)
		return
	}

	var existing models.Participant
	if err := h.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		h.handleError(c, http.StatusConflict, "Email already registered", gorm.ErrDuplicatedKey)
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		h.handleError(c, http.StatusInternalServerError, "Failed to sign up", err)
		return
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		h.handleError(c, http.StatusInternalServerError, "Failed to sign up", err)
		return
	}

	participant := models.Participant{
		Name:       req.Name,
		Email:      req.Email,
		HashedPass: hashed,
	}
	if err := h.db.Create(&participant).Error; err != nil {
		h.handleError(c, http.StatusInternalServerError, "Failed to sign up", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User signed up successfully", "user_id": participant.ID})
}

// Login verifies credentials and issues a session token. The failure is
// deliberately undifferentiated so email addresses cannot be enumerated.
func (h *Handler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, http.StatusBadRequest, "Invalid input: "+err.Error(), err)
		return
	}

	var participant models.Participant
	if err := h.db.Where("email = ?", req.Email).First(&participant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.handleError(c, http.StatusUnauthorized, "Invalid email or password", err)
			return
		}
		h.handleError(c, http.StatusInternalServerError, "Login attempt failed", err)
		return
	}

	if !auth.VerifyPassword(req.Password, participant.HashedPass) {
		h.handleError(c, http.StatusUnauthorized, "Invalid email or password",
			errors.New("password verification failed"))
		return
	}

	token, err := h.tokens.Generate(participant.ID, participant.Email)
	if err != nil {
		h.handleError(c, http.StatusInternalServerError, "Failed to generate token", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "session_token": token})
}

// Me returns the authenticated participant
func (h *Handler) Me(c *gin.Context) {
	participantID := auth.ParticipantIDFromContext(c)
	if participantID == 0 {
		h.handleError(c, http.StatusUnauthorized, "Not authenticated", errors.New("no participant in context"))
		return
	}

	var participant models.Participant
	if err := h.db.First(&participant, "id = ?", participantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.handleError(c, http.StatusNotFound, "Participant not found", err)
			return
		}
		h.handleError(c, http.StatusInternalServerError, "Failed to retrieve participant", err)
		return
	}
	c.JSON(http.StatusOK, participantSummary(participant))
}
