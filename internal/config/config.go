package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	BackendBaseURL string
	AdminAddr      string
	HTTPTimeoutSec int
	LogLevel       string
	LogEncoding    string
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func Load() Config {
	_ = godotenv.Load() // load .env if it exists
	cfg := Config{
		BackendBaseURL: getenv("BACKEND_BASE_URL", "http://localhost:3000"),
		AdminAddr:      getenv("ADMIN_ADDR", ":8080"),
		HTTPTimeoutSec: getenvInt("HTTP_TIMEOUT_SECONDS", 5),
		LogLevel:       getenv("LOG_LEVEL", "info"),
		LogEncoding:    getenv("LOG_ENCODING", "json"),
	}
	log.Printf("[config] BACKEND_BASE_URL=%s", cfg.BackendBaseURL)
	log.Printf("[config] ADMIN_ADDR=%s", cfg.AdminAddr)
	return cfg
}
