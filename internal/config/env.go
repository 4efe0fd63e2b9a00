package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr     string
	GinMode     string
	StoreDriver string // file (default) or mysql
	StorePath   string
	MySQLDSN    string
	RedisAddr   string
	JWTSecret   string
}

// LoadEnv reads configuration from the environment, loading a local
// .env file first when present.
func LoadEnv() Env {
	_ = godotenv.Load()

	env := Env{
		AppAddr:     getenv("APP_ADDR", ":8080"),
		GinMode:     getenv("GIN_MODE", ""),
		StoreDriver: strings.ToLower(getenv("STORE_DRIVER", "file")),
		StorePath:   getenv("STORE_PATH", "data/bookings.json"),
		MySQLDSN:    getenv("MYSQL_DSN", ""),
		RedisAddr:   getenv("REDIS_ADDR", ""),
		JWTSecret:   getenv("JWT_SECRET", "dev-secret-change-me"),
	}
	return env
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
