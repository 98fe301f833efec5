package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the process-wide settings, all overridable from the
// environment.
type Config struct {
	MongoURI string
	MongoDB  string

	Port string

	// AdminPassword is the single operator credential. The fallback is a
	// development value only; deployments must set ADMIN_PASSWORD.
	AdminPassword string

	JWTSecret string
	JWTTTL    time.Duration
}

// LoadConfig reads settings from the environment, falling back to
// development defaults.
func LoadConfig() *Config {
	ttlMinutes, err := strconv.Atoi(getEnv("JWT_TTL_MINUTES", "60"))
	if err != nil || ttlMinutes <= 0 {
		ttlMinutes = 60
	}

	return &Config{
		MongoURI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDB:       getEnv("MONGODB_DB", "ealert"),
		Port:          getEnv("PORT", "4000"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "25042006"),
		JWTSecret:     getEnv("JWT_SECRET", "ealert-dev-secret"),
		JWTTTL:        time.Duration(ttlMinutes) * time.Minute,
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
