package http

import (
	"taskmanager/internal/adapter/http/handlers"
	"taskmanager/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, healthHandler *handlers.HealthHandler, taskHandler *handlers.TaskHandler) {
	r.Use(middleware.LanguageMiddleware())

	r.GET("/health", healthHandler.CheckHealth)
	r.GET("/health/report", healthHandler.CheckHealthReport)

	tasks := r.Group("/tasks")
	{
		tasks.POST("", taskHandler.CreateTask)
		tasks.GET("", taskHandler.ListTasks)
		tasks.GET("/:id", taskHandler.GetTask)
		tasks.PATCH("/:id", taskHandler.UpdateTask)
		tasks.DELETE("/:id", taskHandler.DeleteTask)
	}
}
