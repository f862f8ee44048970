package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type DBConfig struct {
	Host        string
	User        string
	Password    string
	Name        string
	Port        string
	SSLMode     string
	AutoMigrate bool
}

type Config struct {
	Port            string
	AppEnv          string
	DB              DBConfig
	RedisAddr       string
	KafkaBroker     string
	JWTSecret       string
	DefaultPassword string
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

var ErrMissingJWTSecret = errors.New("JWT_SECRET is required")

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load membaca .env (kalau ada) lalu environment variable.
func Load() (Config, error) {
	_ = godotenv.Load()

	autoMigrate, _ := strconv.ParseBool(os.Getenv("DB_AUTO_MIGRATE"))

	cfg := Config{
		Port:   getenv("PORT", "3000"),
		AppEnv: getenv("APP_ENV", "development"),
		DB: DBConfig{
			Host:        getenv("DB_HOST", "localhost"),
			User:        getenv("DB_USER", "postgres"),
			Password:    os.Getenv("DB_PASSWORD"),
			Name:        getenv("DB_NAME", "groupware"),
			Port:        getenv("DB_PORT", "5432"),
			SSLMode:     getenv("DB_SSLMODE", "disable"),
			AutoMigrate: autoMigrate,
		},
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		KafkaBroker:     os.Getenv("KAFKA_BROKER"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		DefaultPassword: getenv("DEFAULT_PASSWORD", "0000"),
	}

	if cfg.JWTSecret == "" {
		return cfg, ErrMissingJWTSecret
	}

	return cfg, nil
}
