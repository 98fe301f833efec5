package routes

import (
	"github.com/gin-gonic/gin"

	"ealert.io/src/handlers"
)

func SetupAlertRoutes(r *gin.Engine) {
	alertHandler := handlers.NewAlertHandler()

	api := r.Group("/api")
	{
		api.POST("/alert", alertHandler.Create)
	}
}
