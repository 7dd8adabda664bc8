package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/novaet12/teamsync/internal/models"
	"github.com/stretchr/testify/require"
)

func createRoom(t *testing.T, r *gin.Engine, token, name string) uint {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/rooms", token, gin.H{"name": name})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	roomID, _ := decodeBody(t, w)["roomId"].(float64)
	require.NotZero(t, roomID)
	return uint(roomID)
}

func TestCreateRoomRequiresManager(t *testing.T) {
	r, _ := newTestRouter(t)

	_, code, _ := makeManager(t, r, "boss@example.com", "boss")
	memberToken, _ := makeMember(t, r, "worker@example.com", "worker", code)

	w := doJSON(t, r, http.MethodPost, "/api/rooms", memberToken, gin.H{"name": "sneaky"})
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestCreateRoomBlankName(t *testing.T) {
	r, _ := newTestRouter(t)

	token, _, _ := makeManager(t, r, "boss@example.com", "boss")

	w := doJSON(t, r, http.MethodPost, "/api/rooms", token, gin.H{"name": "   "})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListRoomsAttachesManagerName(t *testing.T) {
	r, _ := newTestRouter(t)

	token, _, managerID := makeManager(t, r, "boss@example.com", "bossname")
	createRoom(t, r, token, "standup")

	w := doJSON(t, r, http.MethodGet, "/api/rooms", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	rooms := decodeList(t, w)
	require.Len(t, rooms, 1)
	require.Equal(t, "standup", rooms[0]["name"])
	require.Equal(t, "bossname", rooms[0]["managerName"])
	require.EqualValues(t, managerID, rooms[0]["managerId"])
}

func TestDeleteRoomCascades(t *testing.T) {
	r, database := newTestRouter(t)

	token, _, _ := makeManager(t, r, "boss@example.com", "boss")

	roomA := createRoom(t, r, token, "doomed")
	roomB := createRoom(t, r, token, "survivor")

	for _, roomID := range []uint{roomA, roomB} {
		w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/rooms/%d/tasks", roomID), token,
			gin.H{"name": "a task"})
		require.Equal(t, http.StatusCreated, w.Code)

		w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/rooms/%d/messages", roomID), token,
			gin.H{"content": "hello"})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/rooms/%d", roomA), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, database.Model(&models.Task{}).Where("room_id = ?", roomA).Count(&count).Error)
	require.Zero(t, count, "tasks of the deleted room must be gone")

	require.NoError(t, database.Model(&models.Message{}).Where("room_id = ?", roomA).Count(&count).Error)
	require.Zero(t, count, "messages of the deleted room must be gone")

	require.NoError(t, database.Model(&models.Room{}).Where("id = ?", roomA).Count(&count).Error)
	require.Zero(t, count)

	// The other room keeps its rows.
	require.NoError(t, database.Model(&models.Task{}).Where("room_id = ?", roomB).Count(&count).Error)
	require.EqualValues(t, 1, count)

	require.NoError(t, database.Model(&models.Message{}).Where("room_id = ?", roomB).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestDeleteRoomNotOwned(t *testing.T) {
	r, database := newTestRouter(t)

	ownerToken, _, _ := makeManager(t, r, "owner@example.com", "owner")
	otherToken, _, _ := makeManager(t, r, "other@example.com", "other")

	roomID := createRoom(t, r, ownerToken, "mine")

	w := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/rooms/%d", roomID), otherToken, nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	var count int64
	require.NoError(t, database.Model(&models.Room{}).Where("id = ?", roomID).Count(&count).Error)
	require.EqualValues(t, 1, count, "a foreign manager must not delete the room")
}
