package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// TestManagerMemberFlow walks the whole product loop: a manager sets up a
// room with a task, a member joins via the referral code, sees the room and
// the task, completes it, and the progress over the room's tasks hits 100%.
func TestManagerMemberFlow(t *testing.T) {
	r, _ := newTestRouter(t)

	managerToken, referralCode, _ := makeManager(t, r, "boss@example.com", "boss")
	roomID := createRoom(t, r, managerToken, "launch prep")
	createTask(t, r, managerToken, roomID, "write release notes")

	memberToken, _ := makeMember(t, r, "worker@example.com", "worker", referralCode)

	// The member sees the room.
	w := doJSON(t, r, http.MethodGet, "/api/rooms", memberToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	rooms := decodeList(t, w)
	require.Len(t, rooms, 1)
	require.Equal(t, "launch prep", rooms[0]["name"])

	// And the task, not yet completed.
	tasksPath := fmt.Sprintf("/api/rooms/%d/tasks", roomID)

	w = doJSON(t, r, http.MethodGet, tasksPath, memberToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	tasks := decodeList(t, w)
	require.Len(t, tasks, 1)
	require.Equal(t, false, tasks[0]["completed"])

	// The member completes it.
	taskID := tasks[0]["id"].(float64)
	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("%s/%.0f", tasksPath, taskID), memberToken,
		gin.H{"completed": true})
	require.Equal(t, http.StatusOK, w.Code)

	// The manager's progress over the room is now 100%.
	w = doJSON(t, r, http.MethodGet, tasksPath, managerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	tasks = decodeList(t, w)
	completed := 0
	for _, task := range tasks {
		if task["completed"] == true {
			completed++
		}
	}
	require.Equal(t, 100, completed*100/len(tasks))

	// Chat round-trip between the two.
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/rooms/%d/messages", roomID), memberToken,
		gin.H{"content": "all done"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/rooms/%d/messages", roomID), managerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	messages := decodeList(t, w)
	require.Len(t, messages, 1)
	require.Equal(t, "worker", messages[0]["username"])
	require.Equal(t, "all done", messages[0]["content"])
}
