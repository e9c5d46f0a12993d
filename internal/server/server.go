package server

import (
	"fmt"
	"strings"
	"time"

	"booksmart/internal/auth"
	"booksmart/internal/config"
	"booksmart/internal/handlers"
	"booksmart/internal/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter assembles the gin engine with middleware and the route table
func NewRouter(cfg *config.Config, log *logger.Logger, h *handlers.Handler, tokens *auth.Manager) (*gin.Engine, error) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(log))

	if cfg.Server.TrustedProxies != "" {
		if err := router.SetTrustedProxies(strings.Split(cfg.Server.TrustedProxies, ",")); err != nil {
			return nil, fmt.Errorf("invalid trusted proxies %q: %w", cfg.Server.TrustedProxies, err)
		}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.Origins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/", h.Home)
	router.GET("/health", h.Health)

	participants := router.Group("/participants")
	{
		participants.POST("", h.CreateParticipant)
		participants.GET("", h.GetParticipants)
		participants.GET("/:id", h.GetParticipant)
		participants.DELETE("/:id", h.DeleteParticipant)
	}

	categories := router.Group("/categories")
	{
		categories.POST("", h.CreateCategory)
		categories.GET("", h.GetCategories)
		categories.GET("/:id", h.GetCategory)
		categories.PUT("/:id", h.UpdateCategory)
		categories.DELETE("/:id", h.DeleteCategory)
	}

	tasks := router.Group("/tasks")
	{
		tasks.POST("", h.CreateTask)
		tasks.GET("", h.GetTasks)
		tasks.GET("/:id", h.GetTask)
		tasks.PUT("/:id", h.UpdateTask)
		tasks.DELETE("/:id", h.DeleteTask)
	}

	meetings := router.Group("/meetings")
	{
		meetings.POST("", h.CreateMeeting)
		meetings.GET("", h.GetMeetings)
		meetings.GET("/:id", h.GetMeeting)
		meetings.PUT("/:id", h.UpdateMeeting)
		meetings.DELETE("/:id", h.DeleteMeeting)
	}

	recurrences := router.Group("/recurrences")
	{
		recurrences.POST("", h.CreateRecurrence)
		recurrences.GET("", h.GetRecurrences)
	}

	reminders := router.Group("/reminders")
	{
		reminders.POST("", h.CreateReminder)
		reminders.GET("", h.GetReminders)
	}

	notifications := router.Group("/notifications")
	{
		notifications.POST("/notify-meeting", h.NotifyMeeting)
		notifications.POST("/notify-task", h.NotifyTask)
	}

	router.POST("/signup", h.Signup)
	router.POST("/login", h.Login)

	router.POST("/summarizer", h.Summarize)

	protected := router.Group("/auth")
	protected.Use(tokens.Middleware())
	{
		protected.GET("/me", h.Me)
	}

	return router, nil
}

// requestLogger logs every completed request through the zap logger
func requestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.LogHTTPRequest(
			c.Request.Method,
			c.Request.URL.Path,
			c.ClientIP(),
			c.Writer.Status(),
			float64(time.Since(start).Microseconds())/1000.0,
		)
	}
}
