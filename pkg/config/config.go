package config

import (
	"os"
	"strconv"
)

type Config struct {
	AppEnv   string
	LogLevel string

	HTTPPort int

	// Cart snapshot storage. "file" keeps a JSON snapshot on disk,
	// "redis" keeps it at a single key with pub/sub change events.
	CartStore     string
	CartStorePath string
	CartStoreKey  string
	RedisAddr     string

	PageSize int
}

func Load() Config {
	return Config{
		AppEnv:   getEnv("APP_ENV", "dev"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		HTTPPort: getEnvInt("HTTP_PORT", 8080),

		CartStore:     getEnv("CART_STORE", "file"),
		CartStorePath: getEnv("CART_STORE_PATH", "cart.json"),
		CartStoreKey:  getEnv("CART_STORE_KEY", "cart"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),

		PageSize: getEnvInt("PAGE_SIZE", 12),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}

	return n
}
