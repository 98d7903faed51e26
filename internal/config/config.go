package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Storage
	StorageType string // "file" | "redis"
	StoragePath string
	RedisURL    string

	// Gemini AI
	GeminiAPIKey         string
	GeminiConcurrentReqs int

	// Reminder engine
	ReminderScanInterval time.Duration
	ReminderLookahead    time.Duration

	// Meetings
	MeetingBaseURL string

	// Frontend
	FrontendURL string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:        getEnvOrDefault("PORT", "8080"),
		Env:         getEnvOrDefault("ENV", "development"),
		StorageType: getEnvOrDefault("STORAGE_TYPE", "file"),
		StoragePath: getEnvOrDefault("STORAGE_PATH", "./data"),
		RedisURL:    getEnvOrDefault("REDIS_URL", ""),

		GeminiAPIKey:         mustGetEnv("GEMINI_API_KEY"),
		GeminiConcurrentReqs: getEnvAsIntOrDefault("GEMINI_CONCURRENT_REQUESTS", 5),

		ReminderScanInterval: getEnvAsDurationOrDefault("REMINDER_SCAN_INTERVAL", 30*time.Second),
		ReminderLookahead:    getEnvAsDurationOrDefault("REMINDER_LOOKAHEAD", 15*time.Minute+30*time.Second),

		MeetingBaseURL: getEnvOrDefault("MEETING_BASE_URL", "https://skillflow.meet/"),
		FrontendURL:    getEnvOrDefault("FRONTEND_URL", "http://localhost:5173"),
	}

	if cfg.StorageType == "redis" && cfg.RedisURL == "" {
		panic("REDIS_URL is required when STORAGE_TYPE=redis")
	}

	return cfg
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return val
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}

func getEnvAsDurationOrDefault(key string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}
	return d
}
