package routes

import (
	"github.com/gin-gonic/gin"

	"ealert.io/src/handlers"
)

func SetupAuthRoutes(r *gin.Engine) {
	authHandler := handlers.NewAuthHandler()

	api := r.Group("/api")
	{
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)
	}
}
