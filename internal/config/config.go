package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig holds the settings read from the environment at startup.
type AppConfig struct {
	Port            string
	Env             string
	LogLevel        string
	CountriesFile   string
	CORSOrigins     string
	RateLimitMax    int
	RateLimitWindow time.Duration
	Redis           RedisConfig
}

// RedisConfig is only used when Host is set.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// Enabled reports whether a Redis host was configured.
func (r RedisConfig) Enabled() bool {
	return r.Host != ""
}

// IsProduction reports whether ENV was set to production.
func (c AppConfig) IsProduction() bool {
	return c.Env == "production"
}

// LoadEnv loads variables from a .env file if present.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found: %v", err)
	}
}

// Load reads the application config from the environment.
func Load() AppConfig {
	return AppConfig{
		Port:            GetEnv("PORT", "3000"),
		Env:             GetEnv("ENV", "development"),
		LogLevel:        strings.ToLower(GetEnv("LOG_LEVEL", "info")),
		CountriesFile:   GetEnv("COUNTRIES_FILE", ""),
		CORSOrigins:     GetEnv("CORS_ORIGINS", "*"),
		RateLimitMax:    GetIntEnv("RATE_LIMIT_MAX", 60),
		RateLimitWindow: GetDurationEnv("RATE_LIMIT_WINDOW", time.Minute),
		Redis: RedisConfig{
			Host:     GetEnv("REDIS_HOST", ""),
			Port:     GetEnv("REDIS_PORT", "6379"),
			Password: GetEnv("REDIS_PASSWORD", ""),
			DB:       GetIntEnv("REDIS_DB", 0),
		},
	}
}

// GetEnv returns an environment variable or a default value.
func GetEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

// GetIntEnv returns an int environment variable or a default value.
func GetIntEnv(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// GetDurationEnv returns a duration environment variable or a default value.
func GetDurationEnv(key string, defaultVal time.Duration) time.Duration {
	if val, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
