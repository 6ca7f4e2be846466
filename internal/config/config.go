package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"go-hrms/internal/shared/connection"
)

type Config struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	DB            connection.DBConfig
	CentralDBName string

	TenantDBPrefix      string
	TenantCacheSize     int
	TenantStrictResolve bool
	TenantEvictGrace    time.Duration

	RedisAddr   string
	KafkaBroker string
	JWTSecret   string

	PunchRateLimit float64
	PunchRateBurst int

	OutboxPollInterval time.Duration
}

// Load reads the process environment. godotenv.Load is expected to have
// run already in main.
func Load() Config {
	return Config{
		Port:         getString("PORT", "3000"),
		ReadTimeout:  getDuration("HTTP_READ_TIMEOUT", 5*time.Second),
		WriteTimeout: getDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
		IdleTimeout:  getDuration("HTTP_IDLE_TIMEOUT", 60*time.Second),

		DB: connection.DBConfig{
			Host:            os.Getenv("DB_HOST"),
			User:            os.Getenv("DB_USER"),
			Password:        os.Getenv("DB_PASSWORD"),
			Port:            getString("DB_PORT", "5432"),
			SSLMode:         getString("DB_SSLMODE", "disable"),
			MaxOpenConns:    getInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getInt("DB_MAX_IDLE_CONNS", 10),
			ConnMaxLifetime: getDuration("DB_CONN_MAX_LIFETIME", time.Hour),
			ConnectTimeout:  getDuration("DB_CONNECT_TIMEOUT", 10*time.Second),
		},
		CentralDBName: getString("DB_NAME", "hrms_central"),

		TenantDBPrefix:      getString("TENANT_DB_PREFIX", "hrms"),
		TenantCacheSize:     getInt("TENANT_CACHE_SIZE", 50),
		TenantStrictResolve: getBool("TENANT_STRICT_RESOLUTION", true),
		TenantEvictGrace:    getDuration("TENANT_EVICT_GRACE", 30*time.Second),

		RedisAddr:   getString("REDIS_ADDR", "localhost:6379"),
		KafkaBroker: os.Getenv("KAFKA_BROKER"),
		JWTSecret:   os.Getenv("JWT_SECRET"),

		PunchRateLimit: getFloat("PUNCH_RATE_LIMIT", 1),
		PunchRateBurst: getInt("PUNCH_RATE_BURST", 3),

		OutboxPollInterval: getDuration("OUTBOX_POLL_INTERVAL", 3*time.Second),
	}
}

func getString(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return fallback
	}
	return v
}

func getFloat(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(os.Getenv(key)), 64)
	if err != nil {
		return fallback
	}
	return v
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return fallback
	}
	return v
}
