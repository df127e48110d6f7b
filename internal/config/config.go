package config

import (
	"fmt"
	"os"
	"strings"
)

// Config aggregates service configuration.
type Config struct {
	Server ServerConfig
	Store  StoreConfig
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

// StoreConfig selects the session persistence backend. An empty DSN keeps
// the in-memory store.
type StoreConfig struct {
	PostgresDSN string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Server: server,
		Store: StoreConfig{
			PostgresDSN: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		},
	}, nil
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// Allow ":8080" or "127.0.0.1:8080" directly.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}
