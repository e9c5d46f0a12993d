package handlers

import (
	"context"
	"net/http"

	"booksmart/internal/auth"
	"booksmart/internal/logger"
	"booksmart/internal/models"
	"booksmart/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Summarizer generates a summary for a user's documents. Satisfied by
// summarizer.Service.
type Summarizer interface {
	Summarize(ctx context.Context, userID string, docs []string, userInstructions string) (string, error)
}

// Handler carries the dependencies shared by all route handlers
type Handler struct {
	db         *gorm.DB
	log        *logger.Logger
	tokens     *auth.Manager
	notifier   *services.Notifier
	summarizer Summarizer
}

func New(db *gorm.DB, log *logger.Logger, tokens *auth.Manager, notifier *services.Notifier, summarizer Summarizer) *Handler {
	return &Handler{
		db:         db,
		log:        log,
		tokens:     tokens,
		notifier:   notifier,
		summarizer: summarizer,
	}
}

// handleError provides a consistent way to handle and log errors
func (h *Handler) handleError(c *gin.Context, status int, message string, err error) {
	h.log.Errorw("request failed",
		"status", status,
		"path", c.FullPath(),
		"error", err,
	)
	c.JSON(status, gin.H{"error": message})
}

// Home handles requests to the root path "/"
func (h *Handler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello World"})
}

// Health is a simple health check endpoint
func (h *Handler) Health(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// participantSummary is the nested rendering of a participant inside other
// entities. Never the full entity, to keep responses flat.
func participantSummary(p models.Participant) gin.H {
	return gin.H{"id": p.ID, "name": p.Name, "email": p.Email}
}

func participantSummaries(participants []models.Participant) []gin.H {
	out := make([]gin.H, 0, len(participants))
	for _, p := range participants {
		out = append(out, participantSummary(p))
	}
	return out
}

func categorySummaries(categories []models.Category) []gin.H {
	out := make([]gin.H, 0, len(categories))
	for _, cat := range categories {
		out = append(out, gin.H{"id": cat.ID, "name": cat.Name})
	}
	return out
}
