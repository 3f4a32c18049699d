package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

type DatabaseConfig struct {
	Driver   string `yaml:"driver"`
	DSN      string `yaml:"dsn"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	Seed     bool   `yaml:"seed"`
}

type AuthConfig struct {
	Username     string        `yaml:"username"`
	PasswordHash string        `yaml:"passwordHash"`
	JWTSecret    string        `yaml:"jwtSecret"`
	TokenTTL     time.Duration `yaml:"tokenTTL"`
}

type BillingDefaults struct {
	RestaurantName    string  `yaml:"restaurantName"`
	Currency          string  `yaml:"currency"`
	GSTRate           float64 `yaml:"gstRate"`
	ServiceChargeRate float64 `yaml:"serviceChargeRate"`
}

type RabbitConfig struct {
	URL      string `yaml:"url"`
	Exchange string `yaml:"exchange"`
	Queue    string `yaml:"queue"`
}

type KafkaConfig struct {
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

type Config struct {
	Port           string          `yaml:"port"`
	AllowedOrigins []string        `yaml:"allowedOrigins"`
	Database       DatabaseConfig  `yaml:"database"`
	Auth           AuthConfig      `yaml:"auth"`
	Billing        BillingDefaults `yaml:"billing"`
	Rabbit         RabbitConfig    `yaml:"rabbitmq"`
	Kafka          KafkaConfig     `yaml:"kafka"`
	Logging        LoggingConfig   `yaml:"logging"`
	FonnteToken    string          `yaml:"fonnteToken"`
}

// Load reads .env (if present), the optional YAML file named by CONFIG_FILE and
// finally the environment. Environment variables win over the file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file found, using process environment")
	}

	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Default() *Config {
	return &Config{
		Port:           "8080",
		AllowedOrigins: []string{"http://localhost:3000"},
		Database: DatabaseConfig{
			Driver: "mysql",
			Host:   "127.0.0.1",
			Port:   3306,
			User:   "root",
			Name:   "resto",
			Seed:   true,
		},
		Auth: AuthConfig{
			Username: "admin",
			TokenTTL: 12 * time.Hour,
		},
		Billing: BillingDefaults{
			RestaurantName:    "Resto",
			Currency:          "INR",
			GSTRate:           5,
			ServiceChargeRate: 10,
		},
		Rabbit: RabbitConfig{
			Exchange: "kitchen",
			Queue:    "kitchen.tickets",
		},
		Kafka: KafkaConfig{
			Topic: "sales",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

func applyEnv(cfg *Config) {
	cfg.Port = getEnvOrDefault("PORT", cfg.Port)
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = splitList(origins)
	}

	cfg.Database.Driver = getEnvOrDefault("DB_DRIVER", cfg.Database.Driver)
	cfg.Database.DSN = getEnvOrDefault("DB_DSN", cfg.Database.DSN)
	cfg.Database.Host = getEnvOrDefault("DB_HOST", cfg.Database.Host)
	cfg.Database.Port = getEnvAsIntOrDefault("DB_PORT", cfg.Database.Port)
	cfg.Database.User = getEnvOrDefault("DB_USER", cfg.Database.User)
	cfg.Database.Password = getEnvOrDefault("DB_PASSWORD", cfg.Database.Password)
	cfg.Database.Name = getEnvOrDefault("DB_NAME", cfg.Database.Name)
	if v := os.Getenv("DB_SEED"); v != "" {
		cfg.Database.Seed = strings.EqualFold(v, "true") || v == "1"
	}

	cfg.Auth.Username = getEnvOrDefault("ADMIN_USERNAME", cfg.Auth.Username)
	cfg.Auth.PasswordHash = getEnvOrDefault("ADMIN_PASSWORD_HASH", cfg.Auth.PasswordHash)
	cfg.Auth.JWTSecret = getEnvOrDefault("JWT_SECRET", cfg.Auth.JWTSecret)
	if v := os.Getenv("TOKEN_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Auth.TokenTTL = d
		} else {
			log.WithField("value", v).Warn("invalid TOKEN_TTL, keeping default")
		}
	}

	cfg.Rabbit.URL = getEnvOrDefault("RABBITMQ_URL", cfg.Rabbit.URL)
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.Kafka.Brokers = splitList(brokers)
	}
	cfg.Kafka.Topic = getEnvOrDefault("KAFKA_TOPIC", cfg.Kafka.Topic)

	cfg.Logging.Level = getEnvOrDefault("LOG_LEVEL", cfg.Logging.Level)
	cfg.Logging.File = getEnvOrDefault("LOG_FILE", cfg.Logging.File)

	cfg.FonnteToken = getEnvOrDefault("FONNTE_TOKEN", cfg.FonnteToken)
}

func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "mysql", "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.Auth.PasswordHash == "" {
		return fmt.Errorf("ADMIN_PASSWORD_HASH is required")
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("token TTL must be > 0")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
		log.WithField("key", key).Warn("environment variable is not a number, using default value")
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
