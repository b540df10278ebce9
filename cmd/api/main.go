package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"bakery-catalog/internal/config"
	"bakery-catalog/internal/database"
	"bakery-catalog/internal/routes"
)

func main() {
	cfg := config.LoadConfig()
	client := database.Connect(cfg.MongoURL)
	db := client.Database(cfg.MongoDB)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	routes.RegisterRoutes(router, db, cfg)

	log.Println("🚀 Server running on port", cfg.Port)
	log.Printf("📦 Products API: http://localhost:%s/api/products", cfg.Port)
	log.Printf("🖼️  Serving product media from %s at http://localhost:%s%s", cfg.StaticAssetsDir, cfg.Port, cfg.MediaURLPrefix)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("❌ Server error:", err)
	}
}
