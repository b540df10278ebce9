package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURL            string
	MongoDB             string
	Port                string
	CloudinaryCloudName string
	AssetBaseURL        string
	MediaURLPrefix      string
	StaticAssetsDir     string
	Env                 string
}

// IsProduction reports whether raw error detail should be hidden from clients.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func LoadConfig() *Config {
	// Only load .env for local development; deployed environments
	// provide real environment variables.
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Error loading .env file:", err)
		} else {
			log.Println("✅ .env file loaded successfully")
		}
	} else {
		log.Println("🌐 Using system environment variables")
	}

	return &Config{
		MongoURL:            getEnv("MONGO_URL", ""),
		MongoDB:             getEnv("MONGO_DB", "bakery"),
		Port:                getEnv("PORT", "5000"),
		CloudinaryCloudName: getEnv("CLOUDINARY_CLOUD_NAME", ""),
		AssetBaseURL:        getEnv("ASSET_BASE_URL", ""),
		MediaURLPrefix:      getEnv("MEDIA_URL_PREFIX", "/media"),
		StaticAssetsDir:     getEnv("STATIC_ASSETS_DIR", "public"),
		Env:                 getEnv("APP_ENV", "development"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
