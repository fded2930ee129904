package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type envConfig struct {
	APP_PORT      string
	QUERIES_DIR   string
	LOG_FILE_PATH string

	DB_HOST     string
	DB_PORT     string
	DB_USER     string
	DB_PASSWORD string
	DB_NAME     string
	DB_SSL_MODE string

	DB_MAX_OPEN_CONNS    int
	DB_MAX_IDLE_CONNS    int
	DB_CONN_MAX_LIFETIME time.Duration
}

// DefaultEnvConfig is populated by LoadEnvConfig and read by bootstrap.
var DefaultEnvConfig envConfig

// LoadEnvConfig reads .env (when present) and the process environment into
// DefaultEnvConfig. Missing optional values fall back to development defaults;
// malformed numeric values are errors.
func LoadEnvConfig() error {
	// .env is a development convenience; its absence is not an error.
	_ = godotenv.Load()

	DefaultEnvConfig.APP_PORT = getEnv("APP_PORT", "8080")
	DefaultEnvConfig.QUERIES_DIR = getEnv("QUERIES_DIR", "queries")
	DefaultEnvConfig.LOG_FILE_PATH = getEnv("LOG_FILE_PATH", "")

	DefaultEnvConfig.DB_HOST = getEnv("DB_HOST", "localhost")
	DefaultEnvConfig.DB_PORT = getEnv("DB_PORT", "5432")
	DefaultEnvConfig.DB_USER = getEnv("DB_USER", "postgres")
	DefaultEnvConfig.DB_PASSWORD = getEnv("DB_PASSWORD", "")
	DefaultEnvConfig.DB_NAME = getEnv("DB_NAME", "postgres")
	DefaultEnvConfig.DB_SSL_MODE = getEnv("DB_SSL_MODE", "disable")

	var err error
	if DefaultEnvConfig.DB_MAX_OPEN_CONNS, err = getEnvInt("DB_MAX_OPEN_CONNS", 10); err != nil {
		return err
	}
	if DefaultEnvConfig.DB_MAX_IDLE_CONNS, err = getEnvInt("DB_MAX_IDLE_CONNS", 5); err != nil {
		return err
	}
	if DefaultEnvConfig.DB_CONN_MAX_LIFETIME, err = getEnvDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute); err != nil {
		return err
	}

	return nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
