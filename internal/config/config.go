package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config carries everything the process reads from the environment. Values
// come from a .env file in development and real env vars everywhere else.
type Config struct {
	Port    string
	LogMode string

	DatabaseDSN string

	JWTSecret      string
	AccessTokenTTL time.Duration

	UploadDir string

	RedisAddr string

	GeminiAPIKey  string
	MatchStrategy string

	SendGridAPIKey    string
	SendGridFromEmail string
}

func Load() Config {
	return Config{
		Port:           Get("PORT", "8080"),
		LogMode:        Get("LOG_MODE", "development"),
		DatabaseDSN:    databaseDSN(),
		JWTSecret:      Get("JWT_SECRET_KEY", "devsecret"),
		AccessTokenTTL: time.Duration(Int("ACCESS_TOKEN_TTL", 3600)) * time.Second,
		UploadDir:      Get("UPLOAD_DIR", "./uploads"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		MatchStrategy:  Get("MATCH_STRATEGY", "weighted"),

		SendGridAPIKey:    os.Getenv("SENDGRID_API_KEY"),
		SendGridFromEmail: Get("SENDGRID_FROM_EMAIL", "no-reply@jobflix.app"),
	}
}

func databaseDSN() string {
	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		return dsn
	}
	host := Get("POSTGRES_HOST", "localhost")
	port := Get("POSTGRES_PORT", "5432")
	user := Get("POSTGRES_USER", "postgres")
	password := Get("POSTGRES_PASSWORD", "password")
	name := Get("POSTGRES_DB", "jobflix")
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, name, port)
}

func Get(name, def string) string {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	return v
}

func Int(name string, def int) int {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}
