package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	App struct {
		ENV string
	}

	Log struct {
		Level     string
		Format    string
		Component string
		Source    bool
	}

	DB struct {
		Driver string // "sqlite" (embedded, default) or "mysql"
		DSN    string
		Path   string
	}

	Redis struct {
		Addr     string
		Password string
		DB       int
	}

	HTTP struct {
		Host string
		Port string
	}

	Admin struct {
		// Secret gates the operator analytics endpoints. A static shared
		// secret is deliberately weak; hardening is out of scope.
		Secret string
	}

	Retention struct {
		HistoryCap       int
		AnalyticsCap     int
		RegistrationsCap int
	}
}

func New() *Config {
	cfg := &Config{}

	cfg.App.ENV = getEnvDefault("APP_ENV", "development")

	// Logger
	cfg.Log.Level = getEnvDefault("LOG_LEVEL", "info")
	cfg.Log.Format = getEnvDefault("LOG_FORMAT", "text")
	cfg.Log.Component = getEnvDefault("LOG_COMPONENT", "http_server")
	cfg.Log.Source = isTruthy(os.Getenv("LOG_SOURCE"))

	// Database: embedded SQLite by default, MYSQL_DSN switches to a
	// server deployment.
	cfg.DB.DSN = os.Getenv("MYSQL_DSN")
	if cfg.DB.DSN != "" {
		cfg.DB.Driver = "mysql"
	} else {
		cfg.DB.Driver = getEnvDefault("DB_DRIVER", "sqlite")
		cfg.DB.Path = getEnvDefault("SQLITE_PATH", "heartwire.db")
	}

	// Redis
	cfg.Redis.Addr = getEnvDefault("REDIS_ADDR", "localhost:6379")
	cfg.Redis.Password = getEnvDefault("REDIS_PASSWORD", "")
	if dbStr := getEnvDefault("REDIS_DB", "0"); dbStr != "" {
		if dbInt, err := strconv.Atoi(dbStr); err == nil {
			cfg.Redis.DB = dbInt
		}
	}

	// HTTP
	cfg.HTTP.Host = getEnvDefault("HTTP_HOST", "127.0.0.1")
	cfg.HTTP.Port = getEnvDefault("HTTP_PORT", "8080")

	// Operator access
	cfg.Admin.Secret = getEnvDefault("ADMIN_SECRET", "")

	// Event log retention caps
	cfg.Retention.HistoryCap = getEnvInt("HISTORY_CAP", 100)
	cfg.Retention.AnalyticsCap = getEnvInt("ANALYTICS_CAP", 1000)
	cfg.Retention.RegistrationsCap = getEnvInt("REGISTRATIONS_CAP", 1000)

	return cfg
}

func getEnvDefault(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) int {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "y", "on":
		return true
	}
	return false
}
