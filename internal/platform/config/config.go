package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Load reads the .env file from the current working directory and sets
// environment variables that are not already set. A missing .env is reported
// as an error that callers usually ignore. With no paths, ".env" is used.
func Load(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	return godotenv.Load(paths...)
}

// Server holds the settings of cmd/server.
type Server struct {
	Port         string
	MaxSchedules int
	PlanFile     string
	LogLevel     string
	LogFormat    string
}

// LoadServer reads server settings from the environment.
// maxSchedules is used when MAX_SCHEDULES is unset or invalid.
func LoadServer(maxSchedules int) Server {
	return Server{
		Port:         GetEnv("PORT", "8080"),
		MaxSchedules: GetEnvInt("MAX_SCHEDULES", maxSchedules),
		PlanFile:     GetEnv("PLAN_FILE", ""),
		LogLevel:     GetEnv("LOG_LEVEL", "info"),
		LogFormat:    GetEnv("LOG_FORMAT", "json"),
	}
}

// GetEnv returns the value of the environment variable named by key, or fallback
// if the variable is unset or empty.
func GetEnv(key, fallback string) string {
	if s := os.Getenv(key); s != "" {
		return s
	}
	return fallback
}

// GetEnvInt returns the integer value of the environment variable named by key,
// or fallback if the variable is unset, empty, or not a valid integer.
func GetEnvInt(key string, fallback int) int {
	if s := os.Getenv(key); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
	}
	return fallback
}
