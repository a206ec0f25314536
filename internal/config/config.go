package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application configuration, loaded once at startup.
type Config struct {
	Port          string
	LogLevel      string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	AuthRateRPS   float64
	AuthRateBurst int
	PaymentDelay  time.Duration
	SeedOnStart   bool
}

// Load reads configuration from the environment, falling back to
// demo-friendly defaults.
func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getInt("REDIS_DB", 0),
		AuthRateRPS:   getFloat("AUTH_RATE_RPS", 5),
		AuthRateBurst: getInt("AUTH_RATE_BURST", 10),
		PaymentDelay:  getDuration("PAYMENT_DELAY", 2*time.Second),
		SeedOnStart:   getBool("SEED_ON_START", true),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
