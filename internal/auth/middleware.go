package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Context keys set by the middleware for downstream handlers
const (
	ContextParticipantID = "participant_id"
	ContextEmail         = "email"
)

// Middleware validates the Authorization bearer token and stores the
// participant identity in the request context.
func (m *Manager) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing authorization header"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			return
		}

		claims, err := m.Validate(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(ContextParticipantID, claims.ParticipantID)
		c.Set(ContextEmail, claims.Email)
		c.Next()
	}
}

// ParticipantIDFromContext returns the authenticated participant id, or 0
func ParticipantIDFromContext(c *gin.Context) uint {
	id, ok := c.Get(ContextParticipantID)
	if !ok {
		return 0
	}
	participantID, ok := id.(uint)
	if !ok {
		return 0
	}
	return participantID
}
