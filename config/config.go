package config

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port              string
	MongoURI          string
	MongoDatabase     string
	PasetoSecret      string
	AdminEmail        string
	AdminPasswordHash string
}

// LoadConfig loads configuration from .env (when present) and the
// process environment.
func LoadConfig() (*AppConfig, error) {
	// Missing .env is fine in production; env vars take over.
	_ = godotenv.Load()

	cfg := &AppConfig{
		Port:              getEnv("PORT", "3000"),
		MongoURI:          getEnv("MONGOSTRING", ""),
		MongoDatabase:     getEnv("MONGO_DATABASE", "escala-parlacom"),
		PasetoSecret:      getEnv("PASETO_SECRET", ""),
		AdminEmail:        getEnv("ADMIN_EMAIL", ""),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGOSTRING is not set")
	}
	if cfg.PasetoSecret == "" {
		return nil, fmt.Errorf("PASETO_SECRET is not set")
	}
	secret, err := base64.URLEncoding.DecodeString(cfg.PasetoSecret)
	if err != nil {
		return nil, fmt.Errorf("PASETO_SECRET is not valid base64 URL encoding: %w", err)
	}
	if len(secret) != 32 {
		return nil, fmt.Errorf("PASETO_SECRET must decode to exactly 32 bytes, got %d", len(secret))
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
