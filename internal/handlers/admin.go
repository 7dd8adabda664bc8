package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/novaet12/teamsync/internal/models"
	"github.com/novaet12/teamsync/internal/types"
	"github.com/novaet12/teamsync/internal/utils"
)

// ListCollection dumps an entire collection for debugging. Manager-only;
// password hashes never serialize.
func (h *Handler) ListCollection(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if currentUser.Role != types.RoleManager {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
		return
	}

	collection := ctx.Param("collection")

	var (
		data  interface{}
		query error
	)

	switch collection {
	case "users":
		var users []models.User
		query = h.DB.Find(&users).Error
		data = users
	case "rooms":
		var rooms []models.Room
		query = h.DB.Find(&rooms).Error
		data = rooms
	case "tasks":
		var tasks []models.Task
		query = h.DB.Find(&tasks).Error
		data = tasks
	case "messages":
		var messages []models.Message
		query = h.DB.Find(&messages).Error
		data = messages
	case "privateMessages":
		var messages []models.PrivateMessage
		query = h.DB.Find(&messages).Error
		data = messages
	default:
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid collection name"})
		return
	}

	if query != nil {
		log.Printf("Failed to fetch %s: %v", collection, query)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch " + collection})
		return
	}

	ctx.JSON(http.StatusOK, data)
}
