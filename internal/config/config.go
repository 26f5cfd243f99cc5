package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	RedisAddr    string
	KafkaBrokers []string

	OrderServiceURL        string
	PaymentsServiceURL     string
	NotificationServiceURL string

	ServiceName   string
	ClientTimeout time.Duration

	OutboxPollInterval time.Duration
	OutboxBatchSize    int
	OutboxMaxAttempts  int
}

// Load reads a .env file if one is present (working directory or up to two
// levels above, so tests under internal/ pick it up too) and falls back to
// process environment with defaults.
func Load() Config {
	loadDotEnv()

	return Config{
		HTTPAddr: getenv("HTTP_ADDR", ":9000"),

		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBUser:     getenv("POSTGRES_USER", "postgres"),
		DBPassword: getenv("POSTGRES_PASSWORD", "postgres"),
		DBName:     getenv("POSTGRES_DB", "devoluciones"),

		RedisAddr:    getenv("REDIS_ADDR", "localhost:6379"),
		KafkaBrokers: splitCSV(getenv("KAFKA_BROKERS", "localhost:9092")),

		OrderServiceURL:        getenv("ORDER_SERVICE_URL", "http://localhost:3001"),
		PaymentsServiceURL:     getenv("PAYMENTS_SERVICE_URL", "http://localhost:3002"),
		NotificationServiceURL: getenv("NOTIFICATION_SERVICE_URL", "http://localhost:3003"),

		ServiceName:   getenv("SERVICE_NAME", "devoluciones-service"),
		ClientTimeout: getdur("CLIENT_TIMEOUT", 10*time.Second),

		OutboxPollInterval: getdur("OUTBOX_POLL_INTERVAL", 2*time.Second),
		OutboxBatchSize:    getint("OUTBOX_BATCH_SIZE", 20),
		OutboxMaxAttempts:  getint("OUTBOX_MAX_ATTEMPTS", 5),
	}
}

func loadDotEnv() {
	wd, err := os.Getwd()
	if err != nil {
		return
	}
	for _, p := range []string{
		filepath.Join(wd, ".env"),
		filepath.Join(wd, "..", ".env"),
		filepath.Join(wd, "..", "..", ".env"),
	} {
		if err := godotenv.Load(p); err == nil {
			log.Printf("Loaded environment variables from %s", p)
			return
		}
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getdur(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getint(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
