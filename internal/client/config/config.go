package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sethvargo/go-envconfig"
)

// Config holds the admin client settings.
type Config struct {
	// BaseURL is the backend host; paths are fixed by the API contract.
	BaseURL  string `env:"CONTACTS_API_URL, default=http://localhost:8080"`
	LogLevel string `env:"CONTACTS_LOG_LEVEL, default=info"`

	// StateFile is where the session (token, user id) is persisted. Defaults
	// to <user config dir>/contactsctl/session.json.
	StateFile string `env:"CONTACTS_STATE_FILE"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	if cfg.StateFile == "" {
		cfg.StateFile = defaultStateFile()
	}
	return &cfg
}

func defaultStateFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "contactsctl", "session.json")
}
