// Package config resolves runtime settings from the environment.
// Nothing is ever written to disk; a .env file in the working directory is
// honored for development, after which process environment wins.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultServerURL is the production design service.
	DefaultServerURL = "https://api.meetyourai.com"

	// LoginPath and GeneratePath are fixed by the backend contract.
	LoginPath    = "/api/login"
	GeneratePath = "/api/generate-design"

	defaultLoginTimeout    = 30 * time.Second
	defaultGenerateTimeout = 3 * time.Minute
)

// Config holds the resolved runtime settings.
type Config struct {
	ServerURL       string
	LoginTimeout    time.Duration
	GenerateTimeout time.Duration
	Debug           bool
}

// Load resolves configuration from the environment. A missing .env file is
// not an error.
func Load() Config {
	_ = godotenv.Load()

	c := Config{
		ServerURL:       DefaultServerURL,
		LoginTimeout:    defaultLoginTimeout,
		GenerateTimeout: defaultGenerateTimeout,
	}
	if v := os.Getenv("AICODER_SERVER_URL"); v != "" {
		c.ServerURL = v
	}
	if d, ok := envDuration("AICODER_LOGIN_TIMEOUT"); ok {
		c.LoginTimeout = d
	}
	if d, ok := envDuration("AICODER_GENERATE_TIMEOUT"); ok {
		c.GenerateTimeout = d
	}
	c.Debug = envBool("AICODER_DEBUG")
	return c
}

func envDuration(key string) (time.Duration, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, false
	}
	return d, true
}

func envBool(key string) bool {
	b, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && b
}
