package routes

import (
	"task-manager-bot/internal/handlers"
	"task-manager-bot/internal/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(h *handlers.Handler) *gin.Engine {
	// Create a new GIN Router
	ginRouter := gin.Default()

	// CORS middleware (for dashboard frontend integration)
	ginRouter.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check endpoint
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Task Manager Bot is running",
		})
	})

	// Bot endpoints (called by the messaging platform)
	botGroup := ginRouter.Group("/bot")
	{
		botGroup.POST("/commands", h.Command)
		botGroup.POST("/interactions", h.Interaction)
		botGroup.POST("/forms", h.Form)
	}

	// Public API routes (no authentication required)
	api := ginRouter.Group("/api")
	{
		// Login endpoint
		api.POST("/login", h.Login)
	}

	// Protected dashboard routes (authentication required)
	protectedRoutes := api.Group("")
	protectedRoutes.Use(middleware.JWTAuthMiddleware())
	{
		// Task endpoints
		protectedRoutes.GET("/tasks", h.GetTasks)
		protectedRoutes.GET("/tasks/:id", h.GetTaskByID)
		protectedRoutes.DELETE("/tasks/:id", h.DeleteTask)
		protectedRoutes.GET("/stats", h.GetStats)
		protectedRoutes.GET("/stats/:userid", h.GetStatsByUser)
		// Users endpoint
		protectedRoutes.GET("/users", h.GetAllUsers)
		// Realtime dashboard updates
		protectedRoutes.GET("/ws", h.WebSocket)
	}

	return ginRouter
}
