package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/novaet12/teamsync/internal/models"
	"github.com/novaet12/teamsync/internal/utils"
	"gorm.io/gorm"
)

// ListPrivateMessages returns the conversation between the caller and the
// given peer. The filter is symmetric, so both parties see the same log.
func (h *Handler) ListPrivateMessages(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	peerID := ctx.Param("id")

	var messages []models.PrivateMessage

	err = h.DB.Where(
		"(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
		currentUser.ID, peerID, peerID, currentUser.ID,
	).Find(&messages).Error

	if err != nil {
		log.Printf("Failed to fetch private messages: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch private messages"})
		return
	}

	ctx.JSON(http.StatusOK, messages)
}

func (h *Handler) SendPrivateMessage(ctx *gin.Context) {
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

	var receiver models.User

	if err := h.DB.First(&receiver, "id = ?", ctx.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			log.Printf("Failed to fetch receiver: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send private message"})
		}
		return
	}

	message := models.PrivateMessage{
		Content:        content,
		SenderID:       currentUser.ID,
		ReceiverID:     receiver.ID,
		Username:       currentUser.Username,
		ProfilePicture: currentUser.ProfilePicture,
	}

	if err := h.DB.Create(&message).Error; err != nil {
		log.Printf("Failed to create private message: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send private message"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "Private message sent", "messageId": message.ID})
}

// PinPrivateMessage sets the pin flag; only the two conversation parties may
// touch it.
func (h *Handler) PinPrivateMessage(ctx *gin.Context) {
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

	var message models.PrivateMessage

	if err := h.DB.First(&message, "id = ?", ctx.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		} else {
			log.Printf("Failed to fetch private message: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update pin"})
		}
		return
	}

	if message.SenderID != currentUser.ID && message.ReceiverID != currentUser.ID {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.DB.Model(&message).Update("pinned", *body.Pinned).Error; err != nil {
		log.Printf("Failed to update pin: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update pin"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Private message pin updated"})
}
