package handlers

import (
	"errors"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novaet12/teamsync/internal/auth"
	"github.com/novaet12/teamsync/internal/models"
	"github.com/novaet12/teamsync/internal/types"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Signup accepts a multipart form (email, password, username, optional
// profilePicture). The upload is buffered to the upload directory and served
// back by path; without one the user gets a placeholder URL.
func (h *Handler) Signup(ctx *gin.Context) {
	email := strings.ToLower(strings.TrimSpace(ctx.PostForm("email")))
	password := ctx.PostForm("password")
	username := strings.TrimSpace(ctx.PostForm("username"))

	if email == "" || password == "" || username == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Email, password, and username are required"})
		return
	}

	var existingUser models.User

	err := h.DB.Where("email = ?", email).First(&existingUser).Error

	if err == nil {
		ctx.JSON(http.StatusConflict, gin.H{"error": "Email already in use"})
		return
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Database error when checking existing user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	if err != nil {
		log.Printf("Failed to hash password: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	profilePicture := types.DefaultProfilePicture

	if file, err := ctx.FormFile("profilePicture"); err == nil {
		filename := uuid.NewString() + filepath.Ext(file.Filename)

		if err := ctx.SaveUploadedFile(file, filepath.Join(h.UploadDir, filename)); err != nil {
			log.Printf("Failed to save profile picture: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save profile picture"})
			return
		}

		profilePicture = "/uploads/" + filename
	}

	user := models.User{
		Email:          email,
		PasswordHash:   string(passwordHash),
		Username:       username,
		ProfilePicture: profilePicture,
	}

	if err := h.DB.Create(&user).Error; err != nil {
		log.Printf("Failed to create user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	token, err := auth.GenerateJWT(user.ID, user.Email, user.Username, "")

	if err != nil {
		log.Printf("Failed to generate JWT: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Signup successful",
		"userId":  user.ID,
		"token":   token,
	})
}

func (h *Handler) Login(ctx *gin.Context) {
	var body LoginRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(body.Email))

	var user models.User

	err := h.DB.Where("email = ?", email).First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		log.Printf("Database error when fetching user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.Password)); err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := auth.GenerateJWT(user.ID, user.Email, user.Username, user.Role)

	if err != nil {
		log.Printf("Failed to generate JWT: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"token": token,
		"role":  user.Role,
	})
}
