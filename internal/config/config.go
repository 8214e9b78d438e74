package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Env                string
	HTTPAddr           string
	StorePath          string
	RabbitMQURL        string
	CorsAllowedOrigins []string
	BestSellerLimit    int
}

func Load() Config {
	return Config{
		Env:                getEnv("APP_ENV", "development"),
		HTTPAddr:           getEnv("HTTP_ADDR", ":3000"),
		StorePath:          getEnv("STORE_PATH", "db.json"),
		RabbitMQURL:        getEnv("RABBITMQ_URL", ""),
		CorsAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "")),
		BestSellerLimit:    getEnvInt("BEST_SELLER_LIMIT", 5),
	}
}

func getEnv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func getEnvInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func splitCSV(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
