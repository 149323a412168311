// Package config loads application configuration from environment variables.
package config

import (
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable; required variables are enforced by must() and
// missing values halt startup.
type Config struct {
	Env         string // application environment (dev/test/prod)
	Port        string // HTTP port to listen on
	DBUser      string // database username
	DBPass      string // database password (optional)
	DBHost      string // database host address
	DBPort      string // database port number
	DBName      string // database name
	JWTSecret   string // secret used to sign JWTs
	TokenTTLHrs int    // access token time-to-live in hours
	BcryptCost  int    // bcrypt cost for password hashing
	AMQPURL     string // RabbitMQ URL for audit events (empty disables publishing)
}

// Load reads configuration from the environment. Optional values fall back
// to defaults: an 8 hour token lifetime and bcrypt's default cost.
func Load() Config {
	return Config{
		Env:         must("APP_ENV"),
		Port:        must("APP_PORT"),
		DBUser:      must("DB_USER"),
		DBPass:      os.Getenv("DB_PASS"),
		DBHost:      must("DB_HOST"),
		DBPort:      must("DB_PORT"),
		DBName:      must("DB_NAME"),
		JWTSecret:   must("JWT_SECRET"),
		TokenTTLHrs: envInt("TOKEN_TTL_HOURS", 8),
		BcryptCost:  envInt("BCRYPT_COST", 10),
		AMQPURL:     os.Getenv("RABBITMQ_URL"),
	}
}

// must retrieves a required environment variable, halting when unset.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		logrus.Fatalf("missing required env var: %s", key)
	}
	return v
}

// envInt reads an optional integer variable with a default.
func envInt(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		logrus.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}
