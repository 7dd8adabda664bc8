package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/novaet12/teamsync/internal/auth"
	"github.com/novaet12/teamsync/internal/models"
	"github.com/novaet12/teamsync/internal/types"
	"github.com/novaet12/teamsync/internal/utils"
	"gorm.io/gorm"
)

type SetRoleRequest struct {
	Role         string `json:"role"`
	ReferralCode string `json:"referralCode"`
}

type MemberResponse struct {
	ID             uint   `json:"id"`
	Username       string `json:"username"`
	ProfilePicture string `json:"profilePicture"`
}

// SetRole assigns the caller's role once. Managers get a freshly minted
// referral code; members attach to the manager owning the submitted code.
func (h *Handler) SetRole(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var body SetRoleRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	var user models.User

	if err := h.DB.First(&user, currentUser.ID).Error; err != nil {
		log.Printf("Failed to fetch user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if user.Role != "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Role already set"})
		return
	}

	switch body.Role {
	case types.RoleManager:
		code, err := auth.NewReferralCode()

		if err != nil {
			log.Printf("Failed to generate referral code: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		user.Role = types.RoleManager
		user.ReferralCode = code

		if err := h.DB.Save(&user).Error; err != nil {
			log.Printf("Failed to set manager role: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		ctx.JSON(http.StatusOK, gin.H{"referralCode": code})
	case types.RoleMember:
		if body.ReferralCode == "" {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Referral code is required"})
			return
		}

		var manager models.User

		err := h.DB.Where("role = ? AND referral_code = ?", types.RoleManager, body.ReferralCode).
			First(&manager).Error

		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid referral code"})
				return
			}
			log.Printf("Database error when looking up referral code: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		user.Role = types.RoleMember
		user.ManagerID = &manager.ID

		if err := h.DB.Save(&user).Error; err != nil {
			log.Printf("Failed to set member role: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		ctx.JSON(http.StatusOK, gin.H{"message": "Role set successfully"})
	default:
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role specified"})
	}
}

func (h *Handler) ReferralCode(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if currentUser.Role != types.RoleManager {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
		return
	}

	var user models.User

	if err := h.DB.First(&user, currentUser.ID).Error; err != nil {
		log.Printf("Failed to fetch user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if user.ReferralCode == "" {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Referral code not found"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"referralCode": user.ReferralCode})
}

func (h *Handler) TeamMembers(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if currentUser.Role != types.RoleManager {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
		return
	}

	var members []models.User

	if err := h.DB.Where("role = ? AND manager_id = ?", types.RoleMember, currentUser.ID).
		Find(&members).Error; err != nil {
		log.Printf("Failed to fetch team members: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch team members"})
		return
	}

	response := make([]MemberResponse, 0, len(members))

	for _, member := range members {
		response = append(response, MemberResponse{
			ID:             member.ID,
			Username:       member.Username,
			ProfilePicture: member.ProfilePicture,
		})
	}

	ctx.JSON(http.StatusOK, response)
}
