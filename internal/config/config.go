package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the binaries read from the environment.
type Config struct {
	AppName string
	Port    string

	DatabaseURL string
	DBLogLevel  string

	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	CORSOrigins string

	// Optional superuser created on server start when AdminPassword is set
	AdminUsername string
	AdminEmail    string
	AdminPassword string
}

// Load reads .env (if present) and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	cfg := &Config{
		AppName:       getEnv("APP_NAME", "Smart Sales API"),
		Port:          getEnv("PORT", "3000"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		DBLogLevel:    getEnv("DB_LOG_LEVEL", "info"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		CORSOrigins:   getEnv("CORS_ORIGINS", "*"),
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@example.com"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=%s",
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_USER", "postgres"),
			os.Getenv("DB_PASSWORD"),
			getEnv("DB_NAME", "smart_sales"),
			getEnv("DB_PORT", "5432"),
			getEnv("DB_TIMEZONE", "UTC"),
		)
	}

	if cfg.JWTSecret == "" {
		log.Println("Warning: JWT_SECRET not set, using an insecure development secret")
		cfg.JWTSecret = "dev-secret-change-in-production"
	}

	var err error
	if cfg.AccessTokenTTL, err = getDuration("ACCESS_TOKEN_TTL", 5*time.Minute); err != nil {
		return nil, err
	}
	if cfg.RefreshTokenTTL, err = getDuration("REFRESH_TOKEN_TTL", 24*time.Hour); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
