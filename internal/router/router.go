package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/novaet12/teamsync/internal/config"
	"github.com/novaet12/teamsync/internal/handlers"
	"github.com/novaet12/teamsync/internal/middleware"
	"gorm.io/gorm"
)

func New(database *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	h := handlers.New(database, cfg.UploadDir)

	// Static frontend and uploaded profile pictures.
	r.StaticFile("/", "./public/index.html")
	r.StaticFile("/scripts.js", "./public/scripts.js")
	r.StaticFile("/styles.css", "./public/styles.css")
	r.Static("/uploads", cfg.UploadDir)

	api := r.Group("/api")
	{
		api.GET("/health", h.HealthCheck)
		api.POST("/signup", h.Signup)
		api.POST("/login", h.Login)

		authed := api.Group("", middleware.AuthMiddleware(database))
		{
			authed.POST("/set-role", h.SetRole)
			authed.GET("/referral-code", h.ReferralCode)
			authed.GET("/team-members", h.TeamMembers)

			authed.GET("/rooms", h.ListRooms)
			authed.POST("/rooms", h.CreateRoom)
			authed.DELETE("/rooms/:roomId", h.DeleteRoom)

			authed.GET("/rooms/:roomId/tasks", h.ListTasks)
			authed.POST("/rooms/:roomId/tasks", h.CreateTask)
			authed.PUT("/rooms/:roomId/tasks/:taskId", h.UpdateTask)
			authed.DELETE("/rooms/:roomId/tasks/:taskId", h.DeleteTask)

			authed.GET("/rooms/:roomId/messages", h.ListMessages)
			authed.POST("/rooms/:roomId/messages", h.SendMessage)
			authed.PUT("/rooms/:roomId/messages/:messageId/pin", h.PinMessage)

			authed.GET("/private-messages/:id", h.ListPrivateMessages)
			authed.POST("/private-messages/:id", h.SendPrivateMessage)
			authed.PUT("/private-messages/:id/pin", h.PinPrivateMessage)

			authed.GET("/list/:collection", h.ListCollection)
		}
	}

	return r
}
