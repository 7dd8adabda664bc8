package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/novaet12/teamsync/internal/middleware"
	"github.com/novaet12/teamsync/internal/models"
	"github.com/novaet12/teamsync/internal/types"
	"github.com/novaet12/teamsync/internal/utils"
	"gorm.io/gorm"
)

type SendMessageRequest struct {
	Content string `json:"content"`
}

type PinRequest struct {
	Pinned *bool `json:"pinned"`
}

func (h *Handler) ListMessages(ctx *gin.Context) {
	var messages []models.Message

	if err := h.DB.Where("room_id = ?", ctx.Param("roomId")).Find(&messages).Error; err != nil {
		log.Printf("Failed to fetch messages: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch messages"})
		return
	}

	ctx.JSON(http.StatusOK, messages)
}

// SendMessage stores a room chat entry. The sender's username and picture are
// denormalized onto the row at send time.
func (h *Handler) SendMessage(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var body SendMessageRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	content := strings.TrimSpace(body.Content)

	if content == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Message content is required"})
		return
	}

	var room models.Room

	if err := h.DB.First(&room, "id = ?", ctx.Param("roomId")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		} else {
			log.Printf("Failed to fetch room: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		}
		return
	}

	message := models.Message{
		Content:        content,
		RoomID:         room.ID,
		UserID:         currentUser.ID,
		Username:       currentUser.Username,
		ProfilePicture: currentUser.ProfilePicture,
	}

	if err := h.DB.Create(&message).Error; err != nil {
		log.Printf("Failed to create message: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "Message sent", "messageId": message.ID})
}

// PinMessage sets the pin flag. Only the room's manager and that manager's
// members may pin or unpin.
func (h *Handler) PinMessage(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var body PinRequest

	if err := ctx.BindJSON(&body); err != nil || body.Pinned == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Pinned status must be a boolean"})
		return
	}

	var message models.Message

	if err := h.DB.Where("id = ? AND room_id = ?", ctx.Param("messageId"), ctx.Param("roomId")).
		First(&message).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		} else {
			log.Printf("Failed to fetch message: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update pin"})
		}
		return
	}

	var room models.Room

	if err := h.DB.First(&room, message.RoomID).Error; err != nil {
		log.Printf("Failed to fetch room: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update pin"})
		return
	}

	if !onTeam(currentUser, room.ManagerID) {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.DB.Model(&message).Update("pinned", *body.Pinned).Error; err != nil {
		log.Printf("Failed to update pin: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update pin"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Message pin updated"})
}

// onTeam reports whether the user is the given manager or one of that
// manager's members.
func onTeam(user middleware.AuthenticatedUser, managerID uint) bool {
	if user.ID == managerID {
		return true
	}
	return user.Role == types.RoleMember && user.ManagerID != nil && *user.ManagerID == managerID
}
