package server_test

import (
	"testing"

	"booksmart/internal/auth"
	"booksmart/internal/config"
	"booksmart/internal/handlers"
	"booksmart/internal/logger"
	"booksmart/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRouterRejectsMalformedTrustedProxies(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.Default()
	cfg.Server.TrustedProxies = "not-an-ip"

	log := logger.NewNop()
	tokens := auth.NewManager(cfg.JWT)
	h := handlers.New(nil, log, tokens, nil, nil)

	router, err := server.NewRouter(cfg, log, h, tokens)
	require.Error(t, err)
	assert.Nil(t, router)
	assert.Contains(t, err.Error(), "not-an-ip")
}

func TestNewRouterAcceptsDefaultConfig(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.Default()

	log := logger.NewNop()
	tokens := auth.NewManager(cfg.JWT)
	h := handlers.New(nil, log, tokens, nil, nil)

	router, err := server.NewRouter(cfg, log, h, tokens)
	require.NoError(t, err)
	assert.NotNil(t, router)
}
