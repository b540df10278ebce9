package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"bakery-catalog/internal/config"
	"bakery-catalog/internal/handlers"
	"bakery-catalog/internal/media"
	"bakery-catalog/internal/repository"
)

func RegisterRoutes(router *gin.Engine, db *mongo.Database, cfg *config.Config) {
	repo := repository.NewProductRepository(db)
	h := handlers.NewProductHandler(repo, media.NewResolver(cfg), cfg)

	router.Use(corsMiddleware())

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Backend API is Running!",
			"version": "1.0.0",
			"endpoints": gin.H{
				"products":    "/api/products",
				"productById": "/api/products/:id",
				"search":      "/api/products/search?q=query",
			},
		})
	})

	api := router.Group("/api/products")
	{
		api.GET("", h.ListProducts)
		api.GET("/search", h.SearchProducts)
		api.GET("/:id", h.GetProduct)
		api.POST("", h.CreateProduct)
		api.PUT("/:id", h.UpdateProduct)
		api.DELETE("/:id", h.DeleteProduct)
	}

	// Product images from the shared public folder, cacheable for 30 days.
	mediaGroup := router.Group(cfg.MediaURLPrefix)
	mediaGroup.Use(func(c *gin.Context) {
		c.Header("Cache-Control", "public, max-age=2592000")
		c.Header("Access-Control-Allow-Origin", "*")
	})
	mediaGroup.StaticFS("/", http.Dir(cfg.StaticAssetsDir))

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Route not found"})
	})
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
