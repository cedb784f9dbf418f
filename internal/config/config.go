package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	DatabaseURL string
	APIPort     string
}

func New() (*Config, error) {
	cfg := &Config{
		APIPort: "8080",
	}

	if port := os.Getenv("API_PORT"); port != "" {
		cfg.APIPort = port
	}

	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		cfg.DatabaseURL = databaseURL
		return cfg, nil
	}

	connStr, err := connStringFromEnv()
	if err != nil {
		return nil, err
	}
	cfg.DatabaseURL = connStr

	return cfg, nil
}

// connStringFromEnv builds a pgx connection string from the discrete DB_*
// variables. Used when DATABASE_URL is not set.
func connStringFromEnv() (string, error) {
	host := getEnv("DB_HOST", "localhost")

	port, err := getEnvAsInt("DB_PORT", 5432)
	if err != nil {
		return "", err
	}

	user := os.Getenv("DB_USER")
	if user == "" {
		return "", fmt.Errorf("DB_USER environment variable is not set")
	}

	password := os.Getenv("DB_PASSWORD")
	dbName := getEnv("DB_NAME", user)

	sslMode := "disable"
	if ssl, err := getEnvAsBool("DB_SSL", false); err != nil {
		return "", err
	} else if ssl {
		sslMode = "require"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		user, password, host, port, dbName, sslMode), nil
}

func getEnv(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: expected an integer, got '%s'", key, valueStr)
	}

	return value, nil
}

func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return false, fmt.Errorf("invalid value for %s: expected a boolean, got '%s'", key, valueStr)
	}

	return value, nil
}
