// Package config loads gateway configuration from environment variables.
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration values.  Each field corresponds
// to an environment variable.  The gateway owns no storage of its own;
// everything it needs is the upstream API location, the shared JWT
// secret and the optional Redis/RabbitMQ infrastructure.
type Config struct {
	Env        string        // application environment (dev/test/prod)
	Port       string        // HTTP port to listen on
	APIBaseURL string        // base URL of the upstream cinema API
	APITimeout time.Duration // per-request timeout for upstream calls
	JWTSecret  string        // secret the upstream API signs tokens with
}

// Load reads configuration from the environment.  Outside production a
// .env file is loaded first so local runs need no exported variables.
// Required variables are enforced by must(); missing values cause the
// program to exit with a fatal log message.
func Load() Config {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	if env != "prod" {
		if err := godotenv.Load(); err != nil {
			log.Printf("config: no .env file loaded: %v", err)
		}
	}
	return Config{
		Env:        env,
		Port:       must("APP_PORT"),
		APIBaseURL: must("API_BASE_URL"),
		APITimeout: time.Duration(envInt("API_TIMEOUT_SEC", 10)) * time.Second,
		JWTSecret:  must("JWT_SECRET"),
	}
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and
// exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func envStr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func envInt(k string, d int) int {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return d
}

func envBool(k string, d bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "True", "yes", "on":
		return true
	case "0", "false", "FALSE", "False", "no", "off":
		return false
	}
	return d
}

func envDur(k string, d time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if dur, err := time.ParseDuration(v); err == nil {
		return dur
	}
	return d
}
