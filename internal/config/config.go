package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Config carries the document paths and logging setup. Everything has a
// default matching the original data layout, overridable via environment
// or a .env file.
type Config struct {
	DataDir      string
	ProductsFile string
	OrdersFile   string
	UsersFile    string
	SessionFile  string
	ErrorLogFile string
	LogLevel     slog.Level
}

func Load() *Config {
	// Load .env file if exists
	godotenv.Load()

	dataDir := getEnv("DATA_DIR", "data")
	return &Config{
		DataDir:      dataDir,
		ProductsFile: getEnv("PRODUCTS_FILE", filepath.Join(dataDir, "products.json")),
		OrdersFile:   getEnv("ORDERS_FILE", filepath.Join(dataDir, "orders.json")),
		UsersFile:    getEnv("USERS_FILE", filepath.Join(dataDir, "users.json")),
		SessionFile:  getEnv("SESSION_FILE", filepath.Join(dataDir, "session.json")),
		ErrorLogFile: getEnv("ERROR_LOG_FILE", "error_log.txt"),
		LogLevel:     parseLevel(getEnv("LOG_LEVEL", "info")),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
