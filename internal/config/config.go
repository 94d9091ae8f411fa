package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DatabaseConfig struct {
	// Path of the SQLite database file. Created on first startup.
	Path string
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
	// Default account seeded once at schema creation.
	SeedUsername string
	SeedPassword string
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", ":8080"),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "university_events.db"),
		},
		Auth: AuthConfig{
			JWTSecret:    getEnv("JWT_SECRET", "dev-only-secret"),
			TokenTTL:     time.Duration(getEnvInt("TOKEN_TTL_MINUTES", 480)) * time.Minute,
			SeedUsername: getEnv("SEED_USERNAME", "kalokoh"),
			SeedPassword: getEnv("SEED_PASSWORD", "kalokoh"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
