package routes

import (
	"github.com/gin-gonic/gin"

	"ealert.io/config"
	"ealert.io/src/handlers"
	"ealert.io/src/middlewares"
)

func SetupAdminRoutes(r *gin.Engine, cfg *config.Config) {
	adminHandler := handlers.NewAdminHandler(cfg)

	admin := r.Group("/api/admin")
	{
		admin.POST("/login", adminHandler.Login)

		protected := admin.Group("")
		protected.Use(middlewares.AdminAuth(cfg.JWTSecret))
		{
			protected.GET("/users", adminHandler.ListUsers)
			protected.GET("/alerts", adminHandler.ListAlerts)
		}
	}
}
