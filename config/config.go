package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the process needs from the environment.
type Config struct {
	Port      string
	MongoURL  string
	DBName    string
	JWTSecret string
	UploadDir string
}

// Load reads .env (when present) and the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	return Config{
		Port:      getEnv("PORT", "8080"),
		MongoURL:  getEnv("MONGO_URL", "mongodb://localhost:27017"),
		DBName:    getEnv("DB_NAME", "apparel_store"),
		JWTSecret: getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		UploadDir: getEnv("UPLOAD_DIR", "uploads"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
