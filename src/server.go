package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"ealert.io/config"
	"ealert.io/src/middlewares"
	"ealert.io/src/routes"
)

func main() {
	godotenv.Load()

	cfg := config.LoadConfig()

	config.ConnectDB(cfg)
	if err := config.CreateIndexes(); err != nil {
		log.Printf("Warning: failed to create indexes: %v", err)
	}

	r := gin.Default()

	r.Use(cors.Default())
	r.Use(middlewares.RequestID())

	routes.SetupAuthRoutes(r)
	routes.SetupAlertRoutes(r)
	routes.SetupAdminRoutes(r, cfg)

	log.Printf("Backend server running on http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
