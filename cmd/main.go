package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Cristian7B/SoundCloudClone/config"
	"github.com/Cristian7B/SoundCloudClone/controllers"
	"github.com/Cristian7B/SoundCloudClone/routes"
	"github.com/Cristian7B/SoundCloudClone/ws"
)

func main() {
	if os.Getenv("DOCKER_ENV") != "true" {
		_ = godotenv.Load()
	}

	config.ConnectDB()

	go ws.HandleFeedMessages()

	// Limpieza periódica de refresh tokens vencidos en la blacklist
	go func() {
		for range time.Tick(time.Hour) {
			controllers.LimpiarBlacklist()
		}
	}()

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "https://your-frontend-domain.com"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.SetupRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Info("Servidor escuchando", "port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("El servidor terminó con error", "err", err)
	}
}
