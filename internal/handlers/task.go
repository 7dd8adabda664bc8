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

type CreateTaskRequest struct {
	Name string `json:"name"`
}

type UpdateTaskRequest struct {
	Completed *bool `json:"completed"`
}

func (h *Handler) ListTasks(ctx *gin.Context) {
	var tasks []models.Task

	if err := h.DB.Where("room_id = ?", ctx.Param("roomId")).Find(&tasks).Error; err != nil {
		log.Printf("Failed to fetch tasks: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tasks"})
		return
	}

	ctx.JSON(http.StatusOK, tasks)
}

func (h *Handler) CreateTask(ctx *gin.Context) {
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

	if err := h.DB.Where("id = ? AND manager_id = ?", ctx.Param("roomId"), currentUser.ID).
		First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		} else {
			log.Printf("Failed to fetch room: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add task"})
		}
		return
	}

	var body CreateTaskRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	name := strings.TrimSpace(body.Name)

	if name == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Task name is required"})
		return
	}

	task := models.Task{
		Name:   name,
		RoomID: room.ID,
	}

	if err := h.DB.Create(&task).Error; err != nil {
		log.Printf("Failed to create task: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add task"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "Task added", "taskId": task.ID})
}

// UpdateTask toggles the completion flag. Any member of the team can check a
// task off; only the completed field is writable.
func (h *Handler) UpdateTask(ctx *gin.Context) {
	var body UpdateTaskRequest

	if err := ctx.BindJSON(&body); err != nil || body.Completed == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Completed status must be a boolean"})
		return
	}

	var task models.Task

	if err := h.DB.Where("id = ? AND room_id = ?", ctx.Param("taskId"), ctx.Param("roomId")).
		First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		} else {
			log.Printf("Failed to fetch task: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		}
		return
	}

	if err := h.DB.Model(&task).Update("completed", *body.Completed).Error; err != nil {
		log.Printf("Failed to update task: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Task updated"})
}

func (h *Handler) DeleteTask(ctx *gin.Context) {
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

	if err := h.DB.Where("id = ? AND manager_id = ?", ctx.Param("roomId"), currentUser.ID).
		First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		} else {
			log.Printf("Failed to fetch room: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove task"})
		}
		return
	}

	var task models.Task

	if err := h.DB.Where("id = ? AND room_id = ?", ctx.Param("taskId"), room.ID).
		First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		} else {
			log.Printf("Failed to fetch task: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove task"})
		}
		return
	}

	if err := h.DB.Delete(&task).Error; err != nil {
		log.Printf("Failed to delete task: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove task"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Task removed"})
}
