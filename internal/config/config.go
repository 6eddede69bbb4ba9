package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config is the full runtime configuration of the server. Values come
// from the environment, with a .env file loaded first when present.
type Config struct {
	Port         string
	DatabaseURL  string
	AIServiceURL string
	AIAPIKey     string
	AITimeout    time.Duration
	ChromePath   string
	SchemaPath   string
}

// Load reads configuration from the environment. A missing .env file is
// not an error; deployment environments inject variables directly.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:         getEnv("PORT", "3000"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		AIServiceURL: getEnv("AI_SERVICE_URL", "http://ai-service:8000"),
		AIAPIKey:     os.Getenv("AI_API_KEY"),
		AITimeout:    getDuration("AI_TIMEOUT", 60*time.Second),
		ChromePath:   os.Getenv("CHROME_PATH"),
		SchemaPath:   getEnv("SCHEMA_PATH", "templates/resume.schema.json"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
