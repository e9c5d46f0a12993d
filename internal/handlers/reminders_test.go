package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTask(t *testing.T, env *testEnv, title string) uint {
	t.Helper()
	w := env.do(t, http.MethodPost, "/tasks", gin.H{"title": title, "due_date": "2025-03-01"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return uint(decode(t, w)["task_id"].(float64))
}

func createMeeting(t *testing.T, env *testEnv, title string, participantIDs []uint) uint {
	t.Helper()
	w := env.do(t, http.MethodPost, "/meetings", gin.H{
		"title":           title,
		"date":            "2025-04-01",
		"start_time":      "09:00:00",
		"end_time":        "10:00:00",
		"participant_ids": participantIDs,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return uint(decode(t, w)["meeting_id"].(float64))
}

func TestCreateReminderMutualExclusion(t *testing.T) {
	env := newTestEnv(t)
	taskID := createTask(t, env, "T")
	meetingID := createMeeting(t, env, "M", nil)

	// Neither target
	w := env.do(t, http.MethodPost, "/reminders", gin.H{
		"message":       "m",
		"reminder_time": "2025-02-28 09:00:00",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Either task_id or meeting_id must be provided.", decode(t, w)["error"])

	// Both targets
	w = env.do(t, http.MethodPost, "/reminders", gin.H{
		"message":       "m",
		"reminder_time": "2025-02-28 09:00:00",
		"task_id":       taskID,
		"meeting_id":    meetingID,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Only one of task_id or meeting_id can be provided.", decode(t, w)["error"])
}

func TestCreateReminderDanglingReference(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/reminders", gin.H{
		"message":       "m",
		"reminder_time": "2025-02-28 09:00:00",
		"task_id":       9999,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Task not found", decode(t, w)["error"])

	w = env.do(t, http.MethodPost, "/reminders", gin.H{
		"message":       "m",
		"reminder_time": "2025-02-28 09:00:00",
		"meeting_id":    9999,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Meeting not found", decode(t, w)["error"])
}

func TestCreateReminderBadTimeFormat(t *testing.T) {
	env := newTestEnv(t)
	taskID := createTask(t, env, "T")

	w := env.do(t, http.MethodPost, "/reminders", gin.H{
		"message":       "m",
		"reminder_time": "2025-02-28T09:00:00Z",
		"task_id":       taskID,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w)["error"], "YYYY-MM-DD HH:MM:SS")
}

func TestCreateAndListReminders(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createParticipant(t, "Alice", "alice@x.com")
	taskID := createTask(t, env, "T")

	w := env.do(t, http.MethodPost, "/reminders", gin.H{
		"message":         "Finish it",
		"reminder_time":   "2025-02-28 09:00:00",
		"task_id":         taskID,
		"participant_ids": []uint{alice},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = env.do(t, http.MethodGet, "/reminders", nil)
	require.Equal(t, http.StatusOK, w.Code)
	reminders := decodeList(t, w)
	require.Len(t, reminders, 1)
	assert.Equal(t, "Finish it", reminders[0]["message"])
	assert.Equal(t, "2025-02-28 09:00:00", reminders[0]["reminder_time"])
	assert.Equal(t, float64(taskID), reminders[0]["task_id"])
	assert.Nil(t, reminders[0]["meeting_id"])

	participants := reminders[0]["participants"].([]interface{})
	require.Len(t, participants, 1)
	assert.Equal(t, "alice@x.com", participants[0].(map[string]interface{})["email"])
}

func TestCreateReminderMissingParticipant(t *testing.T) {
	env := newTestEnv(t)
	taskID := createTask(t, env, "T")

	w := env.do(t, http.MethodPost, "/reminders", gin.H{
		"message":         "m",
		"reminder_time":   "2025-02-28 09:00:00",
		"task_id":         taskID,
		"participant_ids": []uint{777},
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "One or more participants not found", decode(t, w)["error"])
}
