package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables from .env file
func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}
}

// GetEnv gets an environment variable or returns a default value if not present
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// GetEnvInt gets an integer environment variable or returns a default value
func GetEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
		log.Printf("Warning: %s is not a valid integer, using default %d", key, fallback)
	}
	return fallback
}

// SecretKey returns the JWT signing secret
func SecretKey() string {
	return GetEnv("SECRET_KEY", "your-super-secret-key-change-in-production-12345")
}

// Algorithm returns the JWT signing algorithm name
func Algorithm() string {
	return GetEnv("ALGORITHM", "HS256")
}

// AccessTokenTTL returns the lifetime of issued access tokens
func AccessTokenTTL() time.Duration {
	minutes := GetEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30)
	return time.Duration(minutes) * time.Minute
}

// FrontendURL returns the allowed CORS origin for the frontend
func FrontendURL() string {
	return GetEnv("FRONTEND_URL", "http://localhost:3000")
}

// SuperwiseAPIURL returns the base URL of the Superwise AI app-worker API
func SuperwiseAPIURL() string {
	return GetEnv("SUPERWISE_API_URL", "https://api.superwise.ai/v1/app-worker")
}

// SuperwiseAgentID returns the configured Superwise agent identifier
func SuperwiseAgentID() string {
	return GetEnv("SUPERWISE_AGENT_ID", "81244be2-569b-4730-af1b-f2b70d6737fa")
}

// TestUserEmail returns the single configured login email
func TestUserEmail() string {
	return GetEnv("TEST_USER_EMAIL", "admin@superwise.ai")
}

// TestUserPassword returns the single configured login password
func TestUserPassword() string {
	return GetEnv("TEST_USER_PASSWORD", "Admin123")
}

// TestUserFullName returns the display name of the configured user
func TestUserFullName() string {
	return GetEnv("TEST_USER_FULL_NAME", "Admin")
}

// TestUserID returns the identity id of the configured user
func TestUserID() string {
	return GetEnv("TEST_USER_ID", "1")
}
