package config

import (
	"os"
	"strconv"
	"strings"
)

// Drivers understood by ConnectDatabase.
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Settings is the process configuration. Every value can be overridden from
// the environment; Load falls back to the defaults below.
type Settings struct {
	Driver     string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	// DatabaseURL takes precedence over the individual DB_* values.
	DatabaseURL string
	SQLitePath  string

	MaxOpenConns int
	MaxIdleConns int
	SQLLog       bool

	Port          string
	AdminEmail    string
	AdminPassword string
	CORSOrigins   []string

	LogLevel  string
	LogFormat string
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func envInt(key string, def int) int {
	n, err := strconv.Atoi(envOrDefault(key, ""))
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func envBool(key string, def bool) bool {
	b, err := strconv.ParseBool(envOrDefault(key, ""))
	if err != nil {
		return def
	}
	return b
}

func parseCorsOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// Load reads Settings from the environment.
func Load() Settings {
	driver := strings.ToLower(envOrDefault("DB_DRIVER", DriverMySQL))
	defaultPort := "3306"
	if driver == DriverPostgres {
		defaultPort = "5432"
	}

	databaseURL := envOrDefault("MYSQL_URL", "")
	if databaseURL == "" {
		databaseURL = envOrDefault("DATABASE_URL", "")
	}

	return Settings{
		Driver: driver,
		DBHost: envOrDefault("DB_HOST", "localhost"),
		DBPort: envOrDefault("DB_PORT", defaultPort),
		DBUser: envOrDefault("DB_USER", "root"),
		// DB_PASS is still honoured for older deployments.
		DBPassword:  envOrDefault("DB_PASSWORD", envOrDefault("DB_PASS", "")),
		DBName:      envOrDefault("DB_NAME", "hostel_management"),
		DatabaseURL: databaseURL,
		SQLitePath:  envOrDefault("SQLITE_PATH", "hostel.db"),

		MaxOpenConns: envInt("DB_MAX_OPEN_CONNS", 10),
		MaxIdleConns: envInt("DB_MAX_IDLE_CONNS", 5),
		SQLLog:       envBool("DB_LOG", false),

		Port:          envOrDefault("PORT", "5000"),
		AdminEmail:    envOrDefault("ADMIN_EMAIL", "admin@hostel.com"),
		AdminPassword: envOrDefault("ADMIN_PASSWORD", "admin123"),
		CORSOrigins:   parseCorsOrigins(os.Getenv("CORS_ORIGINS")),

		LogLevel:  envOrDefault("LOG_LEVEL", "info"),
		LogFormat: envOrDefault("LOG_FORMAT", "text"),
	}
}
