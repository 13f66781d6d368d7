package config // package config loads application configuration from environment variables

import (
	"log"
	"os"
	"strconv"
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  DB_USER, the broker URL and JWT_SECRET are
// optional; leaving one empty switches off the feature that needs it.
type Config struct {
	Env         string // application environment (e.g. "dev", "prod")
	Host        string // interface to bind, all interfaces by default
	Port        string // HTTP port to listen on
	DBUser      string // database username; empty disables query stats storage
	DBPass      string // database password (optional)
	DBHost      string // database host address
	DBPort      string // database port number
	DBName      string // database name
	AMQPURL     string // broker URL; empty disables served-query events
	JWTSecret   string // secret for admin tokens; empty disables /v1/stats
	AdminTTLMin int    // admin token time-to-live in minutes
}

// Load reads configuration values from environment variables and returns a
// Config.  Malformed integers are fatal.
func Load() Config {
	return Config{
		Env:         envStr("APP_ENV", "dev"),
		Host:        envStr("APP_HOST", "0.0.0.0"),
		Port:        envStr("APP_PORT", "5010"),
		DBUser:      os.Getenv("DB_USER"),
		DBPass:      os.Getenv("DB_PASS"),
		DBHost:      envStr("DB_HOST", "localhost"),
		DBPort:      envStr("DB_PORT", "3306"),
		DBName:      envStr("DB_NAME", "letter_pairs"),
		AMQPURL:     amqpURL(),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		AdminTTLMin: mustInt("ADMIN_TOKEN_TTL_MIN", 60),
	}
}

// Addr is the host:port pair handed to the HTTP server.
func (c Config) Addr() string { return c.Host + ":" + c.Port }

// DBEnabled reports whether a MySQL user was configured.
func (c Config) DBEnabled() bool { return c.DBUser != "" }

// IsProduction reports whether APP_ENV selects production presets.
func (c Config) IsProduction() bool { return c.Env == "prod" || c.Env == "production" }

func amqpURL() string {
	if v := os.Getenv("RABBITMQ_URL"); v != "" {
		return v
	}
	return os.Getenv("AMQP_URL")
}

// mustInt reads an integer variable, falling back to def when unset.  A
// value that does not parse logs a fatal error and exits.
func mustInt(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}
