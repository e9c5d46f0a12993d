package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateParticipantDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	env.createParticipant(t, "Alice", "alice@x.com")

	w := env.do(t, http.MethodPost, "/participants", gin.H{"name": "Other Alice", "email": "alice@x.com"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Email already registered", decode(t, w)["error"])
}

func TestCreateParticipantRejectsBadEmail(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(t, http.MethodPost, "/participants", gin.H{"name": "Alice", "email": "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListParticipantsOmitsCredentials(t *testing.T) {
	env := newTestEnv(t)
	env.createParticipant(t, "Alice", "alice@x.com")
	env.createParticipant(t, "Bob", "bob@x.com")

	w := env.do(t, http.MethodGet, "/participants", nil)
	require.Equal(t, http.StatusOK, w.Code)
	participants := decodeList(t, w)
	require.Len(t, participants, 2)
	assert.Equal(t, "Alice", participants[0]["name"])
	_, leaked := participants[0]["hashed_password"]
	assert.False(t, leaked)
}

func TestDeleteParticipantDetachesFromMeetings(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createParticipant(t, "Alice", "alice@x.com")
	bob := env.createParticipant(t, "Bob", "bob@x.com")
	meetingID := createMeeting(t, env, "Pair", []uint{alice, bob})

	w := env.do(t, http.MethodDelete, idPath("/participants", alice), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Participant deleted successfully", decode(t, w)["message"])

	// The meeting survives with the remaining participant
	w = env.do(t, http.MethodGet, idPath("/meetings", meetingID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	participants := decode(t, w)["participants"].([]interface{})
	require.Len(t, participants, 1)
	assert.Equal(t, "Bob", participants[0].(map[string]interface{})["name"])

	w = env.do(t, http.MethodGet, idPath("/participants", alice), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
