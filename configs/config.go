package configs

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig holds all runtime configuration.
type AppConfig struct {
	ListenAddr     string
	JWTSecret      string
	AdminEmail     string
	AdminPassword  string
	AdminName      string
	SessionFile    string
	LogLevel       string
	Environment    string
	LoginDelay     time.Duration
	LogoutDelay    time.Duration
	FederatedDelay time.Duration
	PaymentDelay   time.Duration
	MetricsCron    string
}

// Load reads configuration from the environment, with .env as a fallback.
// Existing environment variables are never overridden by the file.
func Load() (*AppConfig, error) {
	_ = godotenv.Load()

	cfg := &AppConfig{
		ListenAddr:     getEnv("LISTEN_ADDR", ":8080"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		AdminEmail:     getEnv("ADMIN_EMAIL", "admin@admindocentes.com"),
		AdminPassword:  getEnv("ADMIN_PASSWORD", "admin123"),
		AdminName:      getEnv("ADMIN_FULL_NAME", "Administrador"),
		SessionFile:    getEnv("SESSION_FILE", "data/session.json"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		MetricsCron:    getEnv("METRICS_CRON", "*/5 * * * *"),
		LoginDelay:     getDuration("LOGIN_DELAY", 0),
		LogoutDelay:    getDuration("LOGOUT_DELAY", 300*time.Millisecond),
		FederatedDelay: getDuration("FEDERATED_DELAY", 1500*time.Millisecond),
		PaymentDelay:   getDuration("PAYMENT_DELAY", 2*time.Second),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
