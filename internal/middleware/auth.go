package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/novaet12/teamsync/internal/auth"
	"github.com/novaet12/teamsync/internal/models"
	"github.com/novaet12/teamsync/internal/types"
	"gorm.io/gorm"
)

type AuthenticatedUser struct {
	ID             uint   `json:"id"`
	Email          string `json:"email"`
	Username       string `json:"username"`
	ProfilePicture string `json:"profilePicture"`
	Role           string `json:"role"`
	ManagerID      *uint  `json:"managerId"`
}

// AuthMiddleware verifies the token and re-reads the user row, so role checks
// downstream never act on a stale role claim.
func AuthMiddleware(database *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")

		if authHeader == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
			return
		}

		// The client sends the raw token value; a Bearer prefix is tolerated.
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

		token, err := auth.VerifyJWT(tokenString)

		if err != nil || !token.Valid {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)

		if !ok {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid token claims"})
			return
		}

		userIDFloat, ok := claims["id"].(float64)

		if !ok {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid user ID in token claims"})
			return
		}

		var user models.User

		if err := database.First(&user, uint(userIDFloat)).Error; err != nil {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "User not found"})
			return
		}

		ctx.Set(types.ContextUserKey, AuthenticatedUser{
			ID:             user.ID,
			Email:          user.Email,
			Username:       user.Username,
			ProfilePicture: user.ProfilePicture,
			Role:           user.Role,
			ManagerID:      user.ManagerID,
		})
		ctx.Next()
	}
}
