package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/lly61/TaskFlow/controllers"
	"github.com/lly61/TaskFlow/middleware"
	"github.com/lly61/TaskFlow/utils"
)

// RegisterRoutes wires every endpoint. Everything under the private group
// passes through the session gate first.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger, issuer *utils.TokenIssuer, limiter *utils.LoginLimiter) {
	authController := controllers.AuthController{DB: db, Logger: logger, Issuer: issuer, Limiter: limiter}
	taskController := controllers.TaskController{DB: db, Logger: logger}
	subtaskController := controllers.SubtaskController{DB: db, Logger: logger}
	statsController := controllers.StatsController{DB: db, Logger: logger}

	public := r.Group("/api")
	{
		public.POST("/register", authController.Register)
		public.POST("/login", authController.Login)
		public.POST("/logout", authController.Logout)
	}

	private := r.Group("/api")
	private.Use(middleware.AuthMiddleware(issuer))
	{
		private.GET("/me", authController.Me)
		private.GET("/tasks", taskController.ListTasks)
		private.POST("/tasks", taskController.CreateTask)
		private.PUT("/tasks/:id", taskController.UpdateTask)
		private.DELETE("/tasks/:id", taskController.DeleteTask)
		private.POST("/tasks/:id/subtasks", subtaskController.CreateSubtask)
		private.PUT("/subtasks/:id", subtaskController.UpdateSubtask)
		private.GET("/stats", statsController.GetStats)
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
