package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv   string
	LogLevel string
	Port     string

	DBDriver    string
	SQLitePath  string
	DatabaseURL string
	DB          DBConfig

	JWTSecret    string
	JWTAccessTTL time.Duration

	AdminAPIKey string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN returns DatabaseURL when set, otherwise a key/value Postgres DSN.
func (c Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.DB.Host, c.DB.User, c.DB.Password, c.DB.Name, c.DB.Port, c.DB.SSLMode,
	)
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Load reads .env (if present) and then the process environment.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppEnv:   getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Port:     getEnv("PORT", "8082"),

		DBDriver:    getEnv("DB_DRIVER", "postgres"),
		SQLitePath:  getEnv("SQLITE_PATH", "qkart.db"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "qkart"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     getEnv("DB_NAME", "qkart"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},

		JWTSecret:    getEnv("JWT_SECRET", "thisisasamplesecret"),
		JWTAccessTTL: time.Duration(getEnvInt("JWT_ACCESS_EXPIRATION_MINUTES", 240)) * time.Minute,

		AdminAPIKey: os.Getenv("COST_API_KEY"),
	}
}

func (c Config) Validate() error {
	if c.IsProduction() {
		if c.JWTSecret == "" || c.JWTSecret == "thisisasamplesecret" {
			return errors.New("JWT_SECRET must be set in production")
		}
		if c.AdminAPIKey == "" {
			return errors.New("COST_API_KEY must be set in production")
		}
	}
	if c.DBDriver != "postgres" && c.DBDriver != "sqlite" {
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.JWTAccessTTL <= 0 {
		return errors.New("JWT_ACCESS_EXPIRATION_MINUTES must be positive")
	}
	return nil
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
