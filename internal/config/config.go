package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	ServerPort     string
	DatabaseType   string
	DatabasePath   string
	DatabaseURL    string
	MigrationsPath string
	WordPairsPath  string
	AssetsPath     string

	// Parent dashboard auth
	TokenSecret   string
	TokenDuration time.Duration

	// Progress report email
	AWSRegion       string
	ReportFromEmail string
	ReportFromName  string

	Debug bool
}

// Load reads configuration from a .env file (when present) and environment
// variables, with sensible defaults for local use
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env file")
	}

	return &Config{
		ServerPort:     getEnv("PORT", "8080"),
		DatabaseType:   getEnv("DB_TYPE", "sqlite"),
		DatabasePath:   getEnv("DB_PATH", "./hearingheroes.db"),
		DatabaseURL:    getEnv("DB_URL", ""),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "./migrations"),
		WordPairsPath:  getEnv("WORD_PAIRS_PATH", "./data/wordpairs.yml"),
		AssetsPath:     getEnv("ASSETS_PATH", "./assets"),

		TokenSecret:   getEnv("TOKEN_SECRET", "dev-only-secret"),
		TokenDuration: getEnvDuration("TOKEN_DURATION", 2*time.Hour),

		AWSRegion:       getEnv("AWS_REGION", "us-east-1"),
		ReportFromEmail: getEnv("REPORT_FROM_EMAIL", ""),
		ReportFromName:  getEnv("REPORT_FROM_NAME", "Hearing Heroes"),

		Debug: getEnvBool("DEBUG", false),
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Invalid boolean for %s: %q, using default", key, value)
		return defaultValue
	}
	return parsed
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Invalid duration for %s: %q, using default", key, value)
		return defaultValue
	}
	return parsed
}
