package app

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	Env      string
	HTTPAddr string

	SendTimeout time.Duration // per-participant broadcast send bound

	RedisAddr string // host:port, empty disables the cross-instance bus
	RedisDB   int
}

func LoadConfig() Config {
	cfg := Config{
		Env:       getEnv("APP_ENV", "dev"),
		HTTPAddr:  getEnv("HTTP_ADDR", "127.0.0.1:8080"),
		RedisAddr: getEnv("REDIS_ADDR", ""),
	}
	cfg.RedisDB = getEnvInt("REDIS_DB", 0)
	cfg.SendTimeout = time.Duration(getEnvInt("SEND_TIMEOUT_MS", 5000)) * time.Millisecond
	return cfg
}

// getEnv returns the env var or a default
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// getEnvInt parses an int env var with a fallback
func getEnvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		var i int
		_, _ = fmt.Sscanf(v, "%d", &i)
		if i > 0 {
			return i
		}
	}
	return def
}
