package config

import (
	"os"
)

type Config struct {
	Port      string
	MongoURI  string
	DBName    string
	JWTSecret string

	// Image host settings
	ImgBBEndpoint string
	ImgBBAPIKey   string
}

func Load() *Config {
	return &Config{
		Port:      getEnv("PORT", "8080"),
		MongoURI:  getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:    getEnv("DB_NAME", "inkwell"),
		JWTSecret: getEnv("SECRET_KEY", "your-secret-key"),

		ImgBBEndpoint: getEnv("IMGBB_ENDPOINT", "https://api.imgbb.com/1/upload"),
		ImgBBAPIKey:   getEnv("IMGBB_API_KEY", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
