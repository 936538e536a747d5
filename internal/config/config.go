package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// app config, loaded once at startup
type Config struct {
	Port      string
	Provider  string
	JWTSecret string

	Postgres PostgresConfig

	ReportExportEnabled  bool
	ReportExportSchedule string
	ReportExportDir      string

	AnalyticsCacheTTL time.Duration
}

type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// loads configuration from environment variables
func LoadConfig() (*Config, error) {
	config := &Config{
		Port:      getEnvOrDefault("PORT", "8080"),
		Provider:  getEnvOrDefault("AI_PROVIDER", "gemini"),
		JWTSecret: os.Getenv("JWT_SECRET"),

		Postgres: PostgresConfig{
			Host:     getEnvOrDefault("POSTGRES_HOST", "localhost"),
			Port:     getEnvOrDefault("POSTGRES_PORT", "5432"),
			User:     getEnvOrDefault("POSTGRES_USER", "postgres"),
			Password: getEnvOrDefault("POSTGRES_PASSWORD", "postgres"),
			DBName:   getEnvOrDefault("POSTGRES_DB", "interviewpro"),
			SSLMode:  getEnvOrDefault("POSTGRES_SSLMODE", "disable"),
		},

		ReportExportEnabled:  getEnvBool("REPORT_EXPORT_ENABLED", false),
		ReportExportSchedule: getEnvOrDefault("REPORT_EXPORT_SCHEDULE", "0 3 * * *"),
		ReportExportDir:      getEnvOrDefault("REPORT_EXPORT_DIR", "./exports"),

		AnalyticsCacheTTL: getEnvDuration("ANALYTICS_CACHE_TTL", 15*time.Minute),
	}
	if err := validateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Provider != "gemini" {
		return errors.New("unsupported AI provider: " + config.Provider + ". Currently supported: gemini")
	}
	if config.JWTSecret == "" {
		return errors.New("JWT_SECRET environment variable is required")
	}
	// Gemini validation is handled by gemini.NewConfig()
	return nil
}

// DSN builds a gorm postgres DSN from the individual settings.
func (p PostgresConfig) DSN() string {
	return "host=" + p.Host +
		" user=" + p.User +
		" password=" + p.Password +
		" dbname=" + p.DBName +
		" port=" + p.Port +
		" sslmode=" + p.SSLMode
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
