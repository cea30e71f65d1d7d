package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config carries everything the embedding layer needs to wire the engine:
// the Mongo connection for the assignment store and the base URLs of the
// collaborator services.
type Config struct {
	MongoURI        string
	MongoDBName     string
	MongoCollection string

	TechniciansServiceURL string
	ClientsServiceURL     string
	ActivitiesServiceURL  string

	LogFilePath string
}

// Load reads configuration from the environment, consulting a .env file when
// one is present. MONGO_URI has no sensible default and must be set.
func Load() (*Config, error) {
	// A missing .env is fine; the environment may already be populated.
	_ = godotenv.Load(".env")

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI is not set in the environment")
	}

	return &Config{
		MongoURI:              mongoURI,
		MongoDBName:           getEnv("MONGO_DB_NAME", "assignments_db"),
		MongoCollection:       getEnv("MONGO_COLLECTION", "assignments"),
		TechniciansServiceURL: getEnv("TECHNICIANS_SERVICE_URL", "http://localhost:8081"),
		ClientsServiceURL:     getEnv("CLIENTS_SERVICE_URL", "http://localhost:8082"),
		ActivitiesServiceURL:  getEnv("ACTIVITIES_SERVICE_URL", "http://localhost:8083"),
		LogFilePath:           getEnv("LOG_FILE_PATH", "logs/assignments.log"),
	}, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
