package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration

	// Storage
	DBDriver string // "sqlite" or "postgres"
	DBDSN    string

	// Practice engine
	AdvanceDelay  time.Duration
	SwipeCooldown time.Duration

	CORSOrigins   []string
	ImportWorkers int
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	return &Config{
		ServerAddress:   getenvDefault("SERVER_ADDRESS", ":8080"),
		ShutdownTimeout: getDurationDefault("SHUTDOWN_TIMEOUT", 10*time.Second),
		DBDriver:        getenvDefault("DB_DRIVER", "sqlite"),
		DBDSN:           getenvDefault("DB_DSN", "quizbank.db"),
		AdvanceDelay:    getDurationDefault("ADVANCE_DELAY", 500*time.Millisecond),
		SwipeCooldown:   getDurationDefault("SWIPE_COOLDOWN", 300*time.Millisecond),
		CORSOrigins:     splitList(getenvDefault("CORS_ORIGINS", "*")),
		ImportWorkers:   getIntDefault("IMPORT_WORKERS", 4),
	}
}

func getDurationDefault(k string, fallback time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func getIntDefault(k string, fallback int) int {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		log.Fatalf("config: %s=%q is not a positive integer", k, v)
	}
	return n
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
