package config

import "os"

// Supported database drivers.
const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort  string
	DatabaseDSN string
	DBDriver    string
	SwaggerHost string
}

// Load builds Config from environment with sensible defaults. DATABASE_DSN has
// no default on purpose: an empty DSN makes Connect a logged no-op and every
// query after it fails with ErrNotConnected.
func Load() *Config {
	return &Config{
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		DatabaseDSN: os.Getenv("DATABASE_DSN"),
		DBDriver:    getEnv("DB_DRIVER", DriverMySQL),
		SwaggerHost: os.Getenv("SWAGGER_HOST"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
