package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App    AppConfig
	Server ServerConfig
	DB     PostgresConfig
	Auth   AuthConfig
	Kafka  KafkaConfig
	Relay  RelayConfig
}

type AppConfig struct {
	Name        string
	Env         string
	SeedCatalog bool
}

type ServerConfig struct {
	Host            string
	Port            int
	AllowedOrigins  []string
	ShutdownTimeout time.Duration
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	Schema   string
	SSLMode  string
	MaxConns int
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

type KafkaConfig struct {
	Brokers    []string
	OrderTopic string
}

type RelayConfig struct {
	Interval  time.Duration
	BatchSize int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "ev-storefront"),
			Env:         getEnv("APP_ENV", "development"),
			SeedCatalog: getEnvAsBool("SEED_CATALOG", false),
		},
		Server: ServerConfig{
			Host:            getEnv("HTTP_HOST", "0.0.0.0"),
			Port:            getEnvAsInt("HTTP_PORT", 5000),
			AllowedOrigins:  splitAndTrim(getEnv("CORS_ALLOWED_ORIGINS", "*")),
			ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 15*time.Second),
		},
		DB: PostgresConfig{
			Host:     getEnv("BLUEPRINT_DB_HOST", "localhost"),
			Port:     getEnvAsInt("BLUEPRINT_DB_PORT", 5432),
			User:     getEnv("BLUEPRINT_DB_USERNAME", "postgres"),
			Password: getEnv("BLUEPRINT_DB_PASSWORD", ""),
			DBName:   getEnv("BLUEPRINT_DB_DATABASE", "storefront"),
			Schema:   getEnv("BLUEPRINT_DB_SCHEMA", "public"),
			SSLMode:  getEnv("BLUEPRINT_DB_SSLMODE", "disable"),
			MaxConns: getEnvAsInt("BLUEPRINT_DB_MAX_CONNS", 10),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
			TokenTTL:  getEnvAsDuration("JWT_TTL", 7*24*time.Hour),
		},
		Kafka: KafkaConfig{
			Brokers:    splitAndTrim(getEnv("KAFKA_BROKERS", "")),
			OrderTopic: getEnv("KAFKA_ORDER_TOPIC", "orders.placed"),
		},
		Relay: RelayConfig{
			Interval:  getEnvAsDuration("RELAY_INTERVAL", 5*time.Second),
			BatchSize: getEnvAsInt("RELAY_BATCH_SIZE", 100),
		},
	}

	return cfg, cfg.validate()
}

func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s&search_path=%s",
		p.User,
		p.Password,
		p.Host,
		p.Port,
		p.DBName,
		p.SSLMode,
		p.Schema,
	)
}

// RelayEnabled reports whether placed orders should be relayed to Kafka.
func (c *Config) RelayEnabled() bool {
	return len(c.Kafka.Brokers) > 0 && c.Kafka.OrderTopic != ""
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("HTTP_PORT is invalid")
	}
	if c.DB.Host == "" || c.DB.User == "" || c.DB.DBName == "" {
		return fmt.Errorf("database config is incomplete")
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is empty")
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be positive")
	}
	if c.RelayEnabled() && (c.Relay.Interval <= 0 || c.Relay.BatchSize <= 0) {
		return fmt.Errorf("relay interval and batch size must be positive")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvAsBool(key string, defaultVal bool) bool {
	if v, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultVal
}

func getEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if val := strings.TrimSpace(p); val != "" {
			out = append(out, val)
		}
	}
	return out
}
