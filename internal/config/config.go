package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultEnv             = "dev"
	defaultHost            = ""
	defaultPort            = 8080
	defaultShutdownTimeout = 10 * time.Second
)

// Config holds server settings sourced from the environment.
type Config struct {
	// Env is the deployment environment name (dev, staging, prod).
	Env string
	// Host is the listen interface; empty binds all interfaces.
	Host string
	// Port is the TCP listen port.
	Port uint16
	// ShutdownTimeout bounds graceful shutdown after a stop signal.
	ShutdownTimeout time.Duration
}

// Load reads configuration from the environment, consulting a .env file
// in the working directory when one exists. Unset variables fall back to
// defaults; malformed values are rejected rather than silently replaced.
func Load() (*Config, error) {
	// Missing .env is the normal case in deployed environments.
	_ = godotenv.Load()

	cfg := &Config{
		Env:             defaultEnv,
		Host:            defaultHost,
		Port:            defaultPort,
		ShutdownTimeout: defaultShutdownTimeout,
	}

	if v := os.Getenv("ENV"); v != "" {
		cfg.Env = v
	}
	if v := os.Getenv("HOST"); v != "" {
		cfg.Host = v
	}
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.ParseUint(v, 10, 16)
		if err != nil || port == 0 {
			return nil, fmt.Errorf("invalid PORT %q: must be 1-65535", v)
		}
		cfg.Port = uint16(port)
	}
	if v := os.Getenv("SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT %q: must be a positive duration", v)
		}
		cfg.ShutdownTimeout = d
	}

	return cfg, nil
}

// Addr returns the listen address in host:port form.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(int(c.Port)))
}
