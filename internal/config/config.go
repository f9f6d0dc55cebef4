package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI          string
	Database          string
	AccessTokenSecret string
	StripeSecretKey   string
	Port              string
}

// Load reads the .env file if present and returns the process configuration.
// Every value is read exactly once here; nothing else touches the environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}
	return Config{
		MongoURI:          getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		Database:          getEnvOrDefault("MONGO_DATABASE", "dochouseDB"),
		AccessTokenSecret: getEnvOrDefault("ACCESS_TOKEN", ""),
		StripeSecretKey:   getEnvOrDefault("STRIPE_SECRET_KEY", ""),
		Port:              getEnvOrDefault("PORT", "5000"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
