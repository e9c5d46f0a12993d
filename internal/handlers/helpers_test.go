package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"booksmart/internal/auth"
	"booksmart/internal/config"
	"booksmart/internal/database"
	"booksmart/internal/handlers"
	"booksmart/internal/logger"
	"booksmart/internal/server"
	"booksmart/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type sentEmail struct {
	ToName  string
	ToEmail string
	Subject string
	Body    string
}

// fakeSender records deliveries instead of calling SendGrid
type fakeSender struct {
	sent []sentEmail
	err  error
}

func (f *fakeSender) Send(toName, toEmail, subject, body string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentEmail{ToName: toName, ToEmail: toEmail, Subject: subject, Body: body})
	return nil
}

// fakeSummarizer satisfies handlers.Summarizer without network calls
type fakeSummarizer struct {
	summary string
	err     error

	gotUserID string
	gotDocs   []string
}

func (f *fakeSummarizer) Summarize(_ context.Context, userID string, docs []string, _ string) (string, error) {
	f.gotUserID = userID
	f.gotDocs = docs
	if f.err != nil {
		return "", f.err
	}
	return f.summary, nil
}

type testEnv struct {
	db         *gorm.DB
	router     *gin.Engine
	sender     *fakeSender
	summarizer *fakeSummarizer
	tokens     *auth.Manager
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps the in-memory database alive for the test
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	log := logger.NewNop()
	tokens := auth.NewManager(config.JWTConfig{
		Secret:    "test-secret",
		ExpiresIn: time.Hour,
		Issuer:    "booksmart",
	})
	sender := &fakeSender{}
	summaries := &fakeSummarizer{summary: "a summary"}

	h := handlers.New(db, log, tokens, services.NewNotifier(sender), summaries)
	router, err := server.NewRouter(config.Default(), log, h, tokens)
	require.NoError(t, err)

	return &testEnv{db: db, router: router, sender: sender, summarizer: summaries, tokens: tokens}
}

// do performs a JSON request against the test router
func (e *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// decode unmarshals a JSON response body into a map
func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// createParticipant inserts a participant through the API and returns its id
func (e *testEnv) createParticipant(t *testing.T, name, email string) uint {
	t.Helper()
	w := e.do(t, http.MethodPost, "/participants", gin.H{"name": name, "email": email})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return uint(decode(t, w)["participant_id"].(float64))
}

// createCategory inserts a category through the API and returns its id
func (e *testEnv) createCategory(t *testing.T, name string) uint {
	t.Helper()
	w := e.do(t, http.MethodPost, "/categories", gin.H{"name": name})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return uint(decode(t, w)["category_id"].(float64))
}

// idPath joins a resource path with an id
func idPath(resource string, id uint) string {
	return fmt.Sprintf("%s/%d", resource, id)
}
