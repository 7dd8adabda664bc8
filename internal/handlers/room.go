package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/novaet12/teamsync/internal/models"
	"github.com/novaet12/teamsync/internal/types"
	"github.com/novaet12/teamsync/internal/utils"
	"gorm.io/gorm"
)

type CreateRoomRequest struct {
	Name string `json:"name"`
}

type RoomResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	ManagerID   uint   `json:"managerId"`
	ManagerName string `json:"managerName"`
}

func (h *Handler) ListRooms(ctx *gin.Context) {
	var rooms []models.Room

	if err := h.DB.Preload("Manager").Find(&rooms).Error; err != nil {
		log.Printf("Failed to fetch rooms: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch rooms"})
		return
	}

	response := make([]RoomResponse, 0, len(rooms))

	for _, room := range rooms {
		response = append(response, RoomResponse{
			ID:          room.ID,
			Name:        room.Name,
			ManagerID:   room.ManagerID,
			ManagerName: room.Manager.Username,
		})
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *Handler) CreateRoom(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if currentUser.Role != types.RoleManager {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
		return
	}

	var body CreateRoomRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	name := strings.TrimSpace(body.Name)

	if name == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Room name is required"})
		return
	}

	room := models.Room{
		Name:      name,
		ManagerID: currentUser.ID,
	}

	if err := h.DB.Create(&room).Error; err != nil {
		log.Printf("Failed to create room: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add room"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "Room added", "roomId": room.ID})
}

// DeleteRoom removes a room the caller manages along with its tasks and
// messages. The cascade runs in one transaction so a crash cannot strand
// orphaned rows.
func (h *Handler) DeleteRoom(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if currentUser.Role != types.RoleManager {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
		return
	}

	var room models.Room
	roomID := ctx.Param("roomId")

	if err := h.DB.Where("id = ? AND manager_id = ?", roomID, currentUser.ID).
		First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		} else {
			log.Printf("Failed to fetch room: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove room"})
		}
		return
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("room_id = ?", room.ID).Delete(&models.Task{}).Error; err != nil {
			return err
		}
		if err := tx.Where("room_id = ?", room.ID).Delete(&models.Message{}).Error; err != nil {
			return err
		}
		return tx.Delete(&room).Error
	})

	if err != nil {
		log.Printf("Failed to remove room: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove room"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Room removed"})
}
